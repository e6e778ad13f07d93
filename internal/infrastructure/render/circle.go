package render

import (
	"image"
	"image/color"
)

// Circle is a circle centered at (X, Y). Filled selects a solid disk,
// otherwise only the outline is drawn.
type Circle struct {
	X, Y   int
	Radius int
	Filled bool
	Color  color.Color
}

// Render implements Renderable.
func (c Circle) Render(s Surface) {
	s.SetColor(c.Color)

	var points []image.Point
	if c.Filled {
		points = DiskPoints(c.Radius)
	} else {
		points = OutlinePoints(c.Radius)
	}
	for _, p := range points {
		s.DrawPoint(c.X+p.X, c.Y+p.Y)
	}
}

// OutlinePoints returns the offsets, relative to the center, of the midpoint
// circle outline for the given radius. Every offset appears once.
func OutlinePoints(radius int) []image.Point {
	if radius <= 0 {
		return nil
	}

	diameter := radius * 2
	x := radius - 1
	y := 0
	tx := 1
	ty := 1
	err := tx - diameter

	seen := make(map[image.Point]struct{}, diameter*4)
	points := make([]image.Point, 0, diameter*4)
	plot := func(px, py int) {
		p := image.Pt(px, py)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}

	for x >= y {
		// 8-way symmetry
		plot(x, -y)
		plot(x, y)
		plot(-x, -y)
		plot(-x, y)
		plot(y, -x)
		plot(y, x)
		plot(-y, -x)
		plot(-y, x)

		if err <= 0 {
			y++
			err += ty
			ty += 2
		}
		if err > 0 {
			x--
			tx += 2
			err += tx - diameter
		}
	}

	return points
}

// DiskPoints returns the offsets of every point of the bounding square
// [-radius, radius] x [-radius, radius] with dx*dx + dy*dy <= radius*radius.
func DiskPoints(radius int) []image.Point {
	if radius <= 0 {
		return nil
	}

	r2 := radius * radius
	points := make([]image.Point, 0, 4*r2)
	// Both ends are inclusive, so (-radius, 0) and (0, -radius) are drawn too.
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= r2 {
				points = append(points, image.Pt(dx, dy))
			}
		}
	}
	return points
}
