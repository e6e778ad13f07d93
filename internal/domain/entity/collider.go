package entity

import "iter"

// BoundingBox is an axis-aligned rectangle in screen pixels.
type BoundingBox struct {
	X, Y int
	W, H int
}

// NewBox creates a bounding box.
func NewBox(x, y, w, h int) BoundingBox {
	return BoundingBox{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (b BoundingBox) Right() int {
	return b.X + b.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (b BoundingBox) Bottom() int {
	return b.Y + b.H
}

// Empty reports whether the box covers no pixels.
func (b BoundingBox) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Intersects reports whether the two boxes share at least one pixel.
// Empty boxes intersect nothing.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	if b.Empty() || other.Empty() {
		return false
	}
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Intersecting yields, in scene order, every collider in world that
// intersects box. The querying entity is not excluded: if it has a collider
// overlapping box, that collider is yielded too.
func Intersecting(world World, box BoundingBox) iter.Seq[BoundingBox] {
	return func(yield func(BoundingBox) bool) {
		for e := range world.All() {
			other, ok := e.Collider()
			if !ok || !box.Intersects(other) {
				continue
			}
			if !yield(other) {
				return
			}
		}
	}
}
