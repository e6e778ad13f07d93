package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red    = color.RGBA{255, 0, 0, 255}
	green  = color.RGBA{0, 255, 0, 255}
	blue   = color.RGBA{0, 0, 255, 255}
	yellow = color.RGBA{255, 255, 0, 255}
)

// recordingSurface is a test double that records every call
type recordingSurface struct {
	calls  []string
	points []image.Point
}

func (r *recordingSurface) SetColor(color.Color)    { r.calls = append(r.calls, "color") }
func (r *recordingSurface) Clear()                  { r.calls = append(r.calls, "clear") }
func (r *recordingSurface) FillRect(_, _, _, _ int) { r.calls = append(r.calls, "rect") }
func (r *recordingSurface) DrawPoint(x, y int) {
	r.calls = append(r.calls, "point")
	r.points = append(r.points, image.Pt(x, y))
}

func TestNothing_DoesNotTouchSurface(t *testing.T) {
	s := &recordingSurface{}
	Nothing.Render(s)
	assert.Empty(t, s.calls)
}

func TestFill_OverwritesWholeSurface(t *testing.T) {
	c := NewCanvas(8, 6)
	Rect{X: 1, Y: 1, W: 3, H: 3, Color: red}.Render(c)

	Fill{Color: yellow}.Render(c)

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			require.Equal(t, yellow, c.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestRect_FillsExactArea(t *testing.T) {
	c := NewCanvas(10, 10)
	Fill{Color: color.RGBA{0, 0, 0, 255}}.Render(c)

	Rect{X: 2, Y: 3, W: 4, H: 2, Color: blue}.Render(c)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 6 && y >= 3 && y < 5
			if inside {
				assert.Equal(t, blue, c.At(x, y), "inside (%d,%d)", x, y)
			} else {
				assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.At(x, y), "outside (%d,%d)", x, y)
			}
		}
	}
}

func TestRect_ClippedToSurface(t *testing.T) {
	c := NewCanvas(4, 4)
	assert.NotPanics(t, func() {
		Rect{X: -2, Y: 2, W: 10, H: 10, Color: red}.Render(c)
	})
	assert.Equal(t, red, c.At(0, 3))
	assert.Equal(t, red, c.At(3, 2))
	assert.Equal(t, color.RGBA{}, c.At(0, 1))
}

func TestDrawOrder_LaterCallsWin(t *testing.T) {
	c := NewCanvas(10, 10)
	Fill{Color: yellow}.Render(c)
	Rect{X: 0, Y: 0, W: 5, H: 5, Color: red}.Render(c)
	Rect{X: 3, Y: 3, W: 5, H: 5, Color: green}.Render(c)

	assert.Equal(t, red, c.At(1, 1))
	assert.Equal(t, green, c.At(4, 4), "overlap belongs to the later rect")
	assert.Equal(t, yellow, c.At(9, 0))
}

func TestOutlinePoints_Symmetric(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 17, 64} {
		points := OutlinePoints(r)
		require.NotEmpty(t, points, "radius %d", r)

		set := make(map[image.Point]struct{}, len(points))
		for _, p := range points {
			set[p] = struct{}{}
		}

		transforms := []func(image.Point) image.Point{
			func(p image.Point) image.Point { return image.Pt(p.X, p.Y) },
			func(p image.Point) image.Point { return image.Pt(-p.X, p.Y) },
			func(p image.Point) image.Point { return image.Pt(p.X, -p.Y) },
			func(p image.Point) image.Point { return image.Pt(-p.X, -p.Y) },
			func(p image.Point) image.Point { return image.Pt(p.Y, p.X) },
			func(p image.Point) image.Point { return image.Pt(-p.Y, p.X) },
			func(p image.Point) image.Point { return image.Pt(p.Y, -p.X) },
			func(p image.Point) image.Point { return image.Pt(-p.Y, -p.X) },
		}
		for _, p := range points {
			for i, tr := range transforms {
				_, ok := set[tr(p)]
				assert.True(t, ok, "radius %d: transform %d of %v missing", r, i, p)
			}
		}
	}
}

func TestOutlinePoints_NoDuplicates(t *testing.T) {
	for r := 1; r <= 40; r++ {
		points := OutlinePoints(r)
		seen := make(map[image.Point]bool, len(points))
		for _, p := range points {
			require.False(t, seen[p], "radius %d: duplicate %v", r, p)
			seen[p] = true
		}
	}
}

func TestOutlinePoints_MatchesMidpointReference(t *testing.T) {
	// radius 3: x starts at r-1 = 2
	points := OutlinePoints(3)

	want := []image.Point{
		{2, 0}, {-2, 0}, {0, -2}, {0, 2},
		{2, -1}, {2, 1}, {-2, -1}, {-2, 1}, {1, -2}, {1, 2}, {-1, -2}, {-1, 2},
		{2, -2}, {2, 2}, {-2, -2}, {-2, 2},
	}
	assert.ElementsMatch(t, want, points)
}

func TestOutlinePoints_NonPositiveRadius(t *testing.T) {
	assert.Empty(t, OutlinePoints(0))
	assert.Empty(t, OutlinePoints(-3))
}

func TestDiskPoints_WithinRadius(t *testing.T) {
	r := 10
	points := DiskPoints(r)

	set := make(map[image.Point]bool, len(points))
	for _, p := range points {
		assert.LessOrEqual(t, p.X*p.X+p.Y*p.Y, r*r)
		set[p] = true
	}
	assert.True(t, set[image.Pt(0, 0)])
	assert.True(t, set[image.Pt(-r, 0)])
	assert.True(t, set[image.Pt(r, 0)])
	assert.True(t, set[image.Pt(0, r)])
	assert.True(t, set[image.Pt(0, -r)])
	assert.False(t, set[image.Pt(r, 1)])
	assert.False(t, set[image.Pt(r, r)])

	for p := range set {
		assert.True(t, set[image.Pt(-p.X, p.Y)], "mirror of %v", p)
		assert.True(t, set[image.Pt(p.X, -p.Y)], "mirror of %v", p)
	}
}

func TestCircle_OutlineVsFilled(t *testing.T) {
	t.Run("outline leaves center untouched", func(t *testing.T) {
		c := NewCanvas(40, 40)
		Circle{X: 20, Y: 20, Radius: 10, Color: green}.Render(c)

		assert.Equal(t, color.RGBA{}, c.At(20, 20))
		assert.Equal(t, green, c.At(29, 20))
	})

	t.Run("filled covers center", func(t *testing.T) {
		c := NewCanvas(40, 40)
		Circle{X: 20, Y: 20, Radius: 10, Filled: true, Color: green}.Render(c)

		assert.Equal(t, green, c.At(20, 20))
		assert.Equal(t, green, c.At(30, 20))
		assert.Equal(t, color.RGBA{}, c.At(30, 30))
	})

	t.Run("plots offset points", func(t *testing.T) {
		s := &recordingSurface{}
		Circle{X: 100, Y: 50, Radius: 3, Color: green}.Render(s)

		require.Len(t, s.points, len(OutlinePoints(3)))
		assert.Equal(t, "color", s.calls[0])
		assert.Contains(t, s.points, image.Pt(102, 50))
		assert.Contains(t, s.points, image.Pt(100, 48))
	})
}

func TestCanvas_DrawPointOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)
	assert.NotPanics(t, func() {
		c.DrawPoint(-1, 0)
		c.DrawPoint(2, 2)
		c.DrawPoint(100, -100)
	})
}

func TestRenderFunc(t *testing.T) {
	called := 0
	var f Renderable = RenderFunc(func(s Surface) {
		called++
		s.Clear()
	})

	s := &recordingSurface{}
	f.Render(s)

	assert.Equal(t, 1, called)
	assert.Equal(t, []string{"clear"}, s.calls)
}
