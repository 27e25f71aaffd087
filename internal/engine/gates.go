package engine

import (
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// Parts larger than this along any axis get a second gate to balance fill.
const secondaryGateExtentMM = 200.0

// RecommendGateLocations proposes melt entry points. The primary gate sits
// on the surface point nearest the centroid; large parts get a secondary
// gate on the opposite side.
func RecommendGateLocations(mesh *geometry.Mesh) []model.GatePoint {
	if mesh == nil || mesh.TriangleCount() == 0 {
		return nil
	}

	bvh := geometry.NewBVH(mesh)
	centroid := mesh.Centroid()

	primary, triIdx := bvh.NearestPoint(centroid)
	gates := []model.GatePoint{{
		Location:  primary,
		Normal:    gateNormal(bvh.Triangle(triIdx)),
		Primary:   true,
		Rationale: "Near part centroid for balanced fill",
	}}

	if mesh.BoundingBox().MaxExtent() > secondaryGateExtentMM {
		opposite := centroid.Mul(2).Sub(primary)
		secondary, idx2 := bvh.NearestPoint(opposite)
		gates = append(gates, model.GatePoint{
			Location:  secondary,
			Normal:    gateNormal(bvh.Triangle(idx2)),
			Primary:   false,
			Rationale: "Balance fill for large part",
		})
	}

	return gates
}

func gateNormal(tri geometry.Triangle) geometry.Vector3 {
	n := tri.Normal
	if n.Length() < 1e-12 {
		n = tri.CalculateNormal()
	}
	return n.Normalize()
}
