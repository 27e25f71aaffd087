package geometry

import "math"

// Mesh represents a triangulated surface as a triangle soup.
type Mesh struct {
	Name      string
	Triangles []Triangle
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name, Triangles: make([]Triangle, 0)}
}

// AddTriangle appends a triangle to the mesh.
func (m *Mesh) AddTriangle(t Triangle) {
	m.Triangles = append(m.Triangles, t)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// VertexCount returns the number of distinct vertex positions in the mesh.
func (m *Mesh) VertexCount() int {
	seen := make(map[Vector3]struct{}, len(m.Triangles))
	for _, t := range m.Triangles {
		seen[t.V1] = struct{}{}
		seen[t.V2] = struct{}{}
		seen[t.V3] = struct{}{}
	}
	return len(seen)
}

// BoundingBox calculates the axis-aligned bounding box of the mesh.
func (m *Mesh) BoundingBox() BoundingBox {
	bbox := NewBoundingBox()
	for _, t := range m.Triangles {
		bbox.Extend(t.V1)
		bbox.Extend(t.V2)
		bbox.Extend(t.V3)
	}
	return bbox
}

// SurfaceArea returns the total surface area of the mesh in mm².
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// Volume returns the enclosed volume of the mesh in mm³, computed as the
// absolute sum of signed tetrahedron volumes against the origin. The result
// is only meaningful for a closed, consistently wound mesh; open meshes
// produce a silently wrong value, which is why callers track measurement
// confidence separately.
func (m *Mesh) Volume() float64 {
	signed := 0.0
	for _, t := range m.Triangles {
		signed += t.SignedVolume()
	}
	return math.Abs(signed)
}

// Centroid returns the volume-weighted centroid of the mesh in mm.
// Each tetrahedron against the origin contributes its centroid weighted by
// its signed volume. Falls back to the bounding box center when the signed
// volume sums to zero (open or flat geometry).
func (m *Mesh) Centroid() Vector3 {
	var weighted Vector3
	signed := 0.0
	for _, t := range m.Triangles {
		v := t.SignedVolume()
		// Tetrahedron centroid = (origin + v1 + v2 + v3) / 4
		c := t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 4.0)
		weighted = weighted.Add(c.Mul(v))
		signed += v
	}
	if math.Abs(signed) < 1e-12 {
		return m.BoundingBox().Center()
	}
	return weighted.Mul(1.0 / signed)
}

// Translate returns a copy of the mesh shifted by the given offset.
func (m *Mesh) Translate(offset Vector3) *Mesh {
	out := &Mesh{Name: m.Name, Triangles: make([]Triangle, len(m.Triangles))}
	for i, t := range m.Triangles {
		out.Triangles[i] = Triangle{
			Normal: t.Normal,
			V1:     t.V1.Add(offset),
			V2:     t.V2.Add(offset),
			V3:     t.V3.Add(offset),
		}
	}
	return out
}

// edgeKey identifies an undirected edge between two vertex positions.
type edgeKey struct {
	a, b Vector3
}

func newEdgeKey(a, b Vector3) edgeKey {
	if less(b, a) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

func less(a, b Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// IsWatertight reports whether every edge of the mesh is shared by exactly
// two triangles. This is the manifold precondition for the volume integral
// and for inward ray casting to terminate on an opposite wall.
func (m *Mesh) IsWatertight() bool {
	if len(m.Triangles) == 0 {
		return false
	}
	edges := make(map[edgeKey]int, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		edges[newEdgeKey(t.V1, t.V2)]++
		edges[newEdgeKey(t.V2, t.V3)]++
		edges[newEdgeKey(t.V3, t.V1)]++
	}
	for _, count := range edges {
		if count != 2 {
			return false
		}
	}
	return true
}

// Repair returns a copy of the mesh with degenerate (zero-area) triangles
// removed and windings flipped where they contradict the stored facet
// normal. This is a single best-effort pass; it cannot close holes, so
// callers re-check IsWatertight afterwards.
func (m *Mesh) Repair() *Mesh {
	out := NewMesh(m.Name)
	for _, t := range m.Triangles {
		if t.Area() < 1e-12 {
			continue
		}
		wound := t.CalculateNormal()
		if t.Normal.Length() == 0 {
			t.Normal = wound
		} else if t.Normal.Normalize().Dot(wound) < 0 {
			// Stored normal is trusted over winding; re-wind to match it.
			t = Triangle{Normal: t.Normal, V1: t.V1, V2: t.V3, V3: t.V2}
		}
		out.AddTriangle(t)
	}
	return out
}
