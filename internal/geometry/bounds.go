package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box.
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box ready to be extended.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Extend expands the bounding box to include a point.
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// ExtendBox expands the bounding box to include another box.
func (b *BoundingBox) ExtendBox(other BoundingBox) {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
}

// Size returns the dimensions of the bounding box.
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box.
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal.
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// MaxExtent returns the largest of the three dimensions.
func (b BoundingBox) MaxExtent() float64 {
	s := b.Size()
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// IsDegenerate reports whether any dimension of the box collapsed to zero
// (or the box was never extended).
func (b BoundingBox) IsDegenerate() bool {
	s := b.Size()
	return s.X <= 0 || s.Y <= 0 || s.Z <= 0
}

// IntersectsRay reports whether a ray hits the box, using the slab method.
// dir does not need to be normalized; invDir must be 1/dir per component
// (infinities for zero components are handled by IEEE semantics).
func (b BoundingBox) IntersectsRay(origin, invDir Vector3, maxDist float64) bool {
	t1 := (b.Min.X - origin.X) * invDir.X
	t2 := (b.Max.X - origin.X) * invDir.X
	tmin := math.Min(t1, t2)
	tmax := math.Max(t1, t2)

	t1 = (b.Min.Y - origin.Y) * invDir.Y
	t2 = (b.Max.Y - origin.Y) * invDir.Y
	tmin = math.Max(tmin, math.Min(t1, t2))
	tmax = math.Min(tmax, math.Max(t1, t2))

	t1 = (b.Min.Z - origin.Z) * invDir.Z
	t2 = (b.Max.Z - origin.Z) * invDir.Z
	tmin = math.Max(tmin, math.Min(t1, t2))
	tmax = math.Min(tmax, math.Max(t1, t2))

	return tmax >= math.Max(tmin, 0) && tmin <= maxDist
}
