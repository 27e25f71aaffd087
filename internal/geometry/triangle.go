package geometry

// Triangle represents a single triangular facet of a surface mesh.
// The Normal is the stored facet normal as read from the source file;
// it may be zero, in which case CalculateNormal derives one from winding.
type Triangle struct {
	Normal Vector3
	V1     Vector3
	V2     Vector3
	V3     Vector3
}

// NewTriangle creates a new triangle.
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{Normal: normal, V1: v1, V2: v2, V3: v3}
}

// CalculateNormal computes the outward normal from the vertex winding.
func (t Triangle) CalculateNormal() Vector3 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Normalize()
}

// Area returns the surface area of the triangle.
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	return edge1.Cross(edge2).Length() / 2.0
}

// Center returns the centroid of the triangle.
func (t Triangle) Center() Vector3 {
	return Vector3{
		X: (t.V1.X + t.V2.X + t.V3.X) / 3.0,
		Y: (t.V1.Y + t.V2.Y + t.V3.Y) / 3.0,
		Z: (t.V1.Z + t.V2.Z + t.V3.Z) / 3.0,
	}
}

// SignedVolume returns the signed volume of the tetrahedron formed by the
// triangle and the origin. Summed over a closed, consistently wound mesh
// this yields the enclosed volume.
func (t Triangle) SignedVolume() float64 {
	return t.V1.Dot(t.V2.Cross(t.V3)) / 6.0
}

// Flip returns the triangle with reversed winding (and negated normal).
func (t Triangle) Flip() Triangle {
	return Triangle{
		Normal: t.Normal.Mul(-1),
		V1:     t.V1,
		V2:     t.V3,
		V3:     t.V2,
	}
}
