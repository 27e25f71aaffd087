package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendGateLocationsSmallPart(t *testing.T) {
	mesh := boxMesh(10, 10, 10)
	gates := RecommendGateLocations(mesh)
	require.Len(t, gates, 1)

	gate := gates[0]
	assert.True(t, gate.Primary)
	assert.Equal(t, "Near part centroid for balanced fill", gate.Rationale)

	// The nearest surface point to the cube center is 5mm away on a face.
	centroid := mesh.Centroid()
	assert.InDelta(t, 5.0, gate.Location.Distance(centroid), 1e-6)
	assert.InDelta(t, 1.0, gate.Normal.Length(), 1e-9)
}

func TestRecommendGateLocationsLargePart(t *testing.T) {
	mesh := boxMesh(300, 50, 50)
	gates := RecommendGateLocations(mesh)
	require.Len(t, gates, 2)

	assert.True(t, gates[0].Primary)
	assert.False(t, gates[1].Primary)
	assert.Equal(t, "Balance fill for large part", gates[1].Rationale)

	// Both gates sit on the part surface.
	box := mesh.BoundingBox()
	for _, g := range gates {
		assert.GreaterOrEqual(t, g.Location.X, box.Min.X-1e-9)
		assert.LessOrEqual(t, g.Location.X, box.Max.X+1e-9)
		assert.GreaterOrEqual(t, g.Location.Z, box.Min.Z-1e-9)
		assert.LessOrEqual(t, g.Location.Z, box.Max.Z+1e-9)
	}
	assert.Greater(t, gates[0].Location.Distance(gates[1].Location), 0.0)
}

func TestRecommendGateLocationsEmptyMesh(t *testing.T) {
	assert.Nil(t, RecommendGateLocations(nil))
}

func TestGateNormalFallsBackToWinding(t *testing.T) {
	mesh := boxMesh(10, 10, 10)
	tri := mesh.Triangles[0]
	tri.Normal = tri.Normal.Mul(0)

	n := gateNormal(tri)
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
	assert.False(t, math.IsNaN(n.X))
}
