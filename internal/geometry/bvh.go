package geometry

import (
	"math"
	"sort"
)

// SurfaceQuery is the acceleration capability the analysis pipeline needs
// from a geometry kernel: first-hit ray casting and nearest-surface-point
// lookup. BVH is the default implementation; the interface keeps the kernel
// swappable without touching callers.
type SurfaceQuery interface {
	// RayIntersect returns the distance to the first triangle hit by the ray,
	// or ok=false when nothing is hit.
	RayIntersect(origin, dir Vector3) (dist float64, ok bool)
	// NearestPoint returns the closest point on the mesh surface to p,
	// together with the index of the triangle it lies on.
	NearestPoint(p Vector3) (point Vector3, triangle int)
}

// bvhLeafSize is the maximum triangle count per leaf node.
const bvhLeafSize = 4

// BVH is a bounding-volume hierarchy over mesh triangles.
type BVH struct {
	tris  []Triangle
	nodes []bvhNode
}

type bvhNode struct {
	box   BoundingBox
	left  int // child index, or -1 for leaves
	right int
	start int // leaf triangle range [start, end)
	end   int
}

// NewBVH builds a hierarchy over the mesh triangles using median splits on
// the longest axis of each node's centroid bounds.
func NewBVH(m *Mesh) *BVH {
	tris := make([]Triangle, len(m.Triangles))
	copy(tris, m.Triangles)
	b := &BVH{tris: tris}
	if len(tris) > 0 {
		b.build(0, len(tris))
	}
	return b
}

// build recursively partitions tris[start:end) and returns the node index.
func (b *BVH) build(start, end int) int {
	box := NewBoundingBox()
	for i := start; i < end; i++ {
		box.Extend(b.tris[i].V1)
		box.Extend(b.tris[i].V2)
		box.Extend(b.tris[i].V3)
	}

	idx := len(b.nodes)
	b.nodes = append(b.nodes, bvhNode{box: box, left: -1, right: -1, start: start, end: end})

	if end-start <= bvhLeafSize {
		return idx
	}

	size := box.Size()
	axis := 0
	if size.Y > size.X && size.Y >= size.Z {
		axis = 1
	} else if size.Z > size.X && size.Z > size.Y {
		axis = 2
	}

	seg := b.tris[start:end]
	sort.Slice(seg, func(i, j int) bool {
		return component(seg[i].Center(), axis) < component(seg[j].Center(), axis)
	})

	mid := start + (end-start)/2
	left := b.build(start, mid)
	right := b.build(mid, end)
	b.nodes[idx].left = left
	b.nodes[idx].right = right
	b.nodes[idx].start = 0
	b.nodes[idx].end = 0
	return idx
}

func component(v Vector3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// RayIntersect returns the distance to the first triangle hit along dir.
func (b *BVH) RayIntersect(origin, dir Vector3) (float64, bool) {
	if len(b.nodes) == 0 {
		return 0, false
	}
	invDir := Vector3{X: 1 / dir.X, Y: 1 / dir.Y, Z: 1 / dir.Z}
	best := math.MaxFloat64
	b.rayWalk(0, origin, dir, invDir, &best)
	if best == math.MaxFloat64 {
		return 0, false
	}
	return best, true
}

func (b *BVH) rayWalk(node int, origin, dir, invDir Vector3, best *float64) {
	n := b.nodes[node]
	if !n.box.IntersectsRay(origin, invDir, *best) {
		return
	}
	if n.left < 0 {
		for i := n.start; i < n.end; i++ {
			if t, ok := rayTriangle(origin, dir, b.tris[i]); ok && t < *best {
				*best = t
			}
		}
		return
	}
	b.rayWalk(n.left, origin, dir, invDir, best)
	b.rayWalk(n.right, origin, dir, invDir, best)
}

// rayTriangle is the Möller–Trumbore intersection test. Returns the hit
// distance along dir for hits in front of the origin.
func rayTriangle(origin, dir Vector3, tri Triangle) (float64, bool) {
	const eps = 1e-9
	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)
	h := dir.Cross(edge2)
	a := edge1.Dot(h)
	if a > -eps && a < eps {
		return 0, false // Ray parallel to triangle plane
	}
	f := 1.0 / a
	s := origin.Sub(tri.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := f * edge2.Dot(q)
	if t <= eps {
		return 0, false
	}
	return t, true
}

// NearestPoint returns the closest surface point to p and its triangle index.
func (b *BVH) NearestPoint(p Vector3) (Vector3, int) {
	bestDist := math.MaxFloat64
	var bestPoint Vector3
	bestTri := -1
	for i, t := range b.tris {
		q := closestPointOnTriangle(p, t)
		if d := p.Distance(q); d < bestDist {
			bestDist = d
			bestPoint = q
			bestTri = i
		}
	}
	return bestPoint, bestTri
}

// closestPointOnTriangle projects p onto the triangle, clamping to edges
// and vertices (Ericson, Real-Time Collision Detection, §5.1.5).
func closestPointOnTriangle(p Vector3, t Triangle) Vector3 {
	ab := t.V2.Sub(t.V1)
	ac := t.V3.Sub(t.V1)
	ap := p.Sub(t.V1)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.V1
	}

	bp := p.Sub(t.V2)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.V2
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.V1.Add(ab.Mul(v))
	}

	cp := p.Sub(t.V3)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.V3
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.V1.Add(ac.Mul(w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.V2.Add(t.V3.Sub(t.V2).Mul(w))
	}

	denom := 1.0 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return t.V1.Add(ab.Mul(v)).Add(ac.Mul(w))
}

// Triangle returns the triangle at the given index.
func (b *BVH) Triangle(i int) Triangle {
	return b.tris[i]
}
