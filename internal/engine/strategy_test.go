package engine

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
)

// binarySTL serializes a mesh as binary STL with an empty header name.
func binarySTL(t *testing.T, mesh *geometry.Mesh) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(mesh.TriangleCount())))

	writeVec := func(v geometry.Vector3) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(v.X)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(v.Y)))
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, float32(v.Z)))
	}
	for _, tri := range mesh.Triangles {
		writeVec(tri.Normal)
		writeVec(tri.V1)
		writeVec(tri.V2)
		writeVec(tri.V3)
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	}
	return buf.Bytes()
}

func TestExtractorStrictPath(t *testing.T) {
	data := binarySTL(t, boxMesh(10, 10, 10))

	mesh, summary, err := NewExtractor().Extract(data, "part.stl")
	require.NoError(t, err)
	require.NotNil(t, mesh)

	assert.Equal(t, "part.stl", mesh.Name)
	assert.Equal(t, "mesh", summary.Method)
	assert.InDelta(t, 1.0, summary.VolumeCm3, 1e-6)
	assert.True(t, summary.Quality.Watertight)
}

func TestExtractorLenientPathAcceptsFlatMesh(t *testing.T) {
	// A flat sheet fails the strict degenerate-bbox check; the lenient
	// strategy still yields a summary.
	data := binarySTL(t, flatMesh())

	mesh, summary, err := NewExtractor().Extract(data, "sheet.stl")
	require.NoError(t, err)
	require.NotNil(t, mesh)

	assert.Equal(t, "mesh-lenient", summary.Method)
	assert.True(t, summary.Quality.Repaired)
	assert.InDelta(t, 0.5, summary.SurfaceAreaCm2, 1e-6)
	assert.False(t, math.IsNaN(summary.VolumeCm3))
}

func TestExtractorAllStrategiesFail(t *testing.T) {
	_, _, err := NewExtractor().Extract([]byte("not geometry at all"), "junk.bin")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Len(t, extractionErr.Attempts, 2)
	assert.Contains(t, extractionErr.Attempts, "mesh")
	assert.Contains(t, extractionErr.Attempts, "mesh-lenient")
	assert.Contains(t, err.Error(), "all extraction strategies failed")
}
