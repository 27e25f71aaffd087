package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// writeFlatSTL writes a binary STL holding a single z=0 triangle. The flat
// sheet has a degenerate bounding box, so only the lenient extraction
// strategy accepts it.
func writeFlatSTL(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(make([]byte, 80))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	tri := []float32{
		0, 0, 1, // normal
		0, 0, 0,
		10, 0, 0,
		0, 10, 0,
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, tri))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(0)))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestLoadMeshFromFileFallsBackToLenient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.stl")
	writeFlatSTL(t, path)

	mesh, summary, err := loadMeshFromFile(path)
	require.NoError(t, err)
	require.NotNil(t, mesh)

	assert.Equal(t, "mesh-lenient", summary.Method)
	assert.True(t, summary.Quality.Repaired)
	assert.InDelta(t, 0.5, summary.SurfaceAreaCm2, 1e-6)
}

func TestLoadMeshFromFileReportsEveryStrategy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.stl")
	require.NoError(t, os.WriteFile(path, []byte("not geometry at all"), 0644))

	_, _, err := loadMeshFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all extraction strategies failed")
}

func TestLoadMeshFromFileMissing(t *testing.T) {
	_, _, err := loadMeshFromFile(filepath.Join(t.TempDir(), "absent.stl"))
	require.Error(t, err)
}

func TestApplyConfigDefaults(t *testing.T) {
	cfg := model.AppConfig{
		DefaultMaterial:     "PP Homopolymer",
		DefaultCavityCount:  4,
		DefaultGateType:     model.GatePin,
		DefaultSafetyFactor: 1.3,
		ThicknessSeed:       9,
		ReportStyle:         "customer",
	}
	opts := analyzeOptions{cavities: 1, gateType: "edge", safety: model.DefaultSafetyFactor, seed: 1, style: "designer"}

	applyConfigDefaults(&opts, cfg, func(string) bool { return false })

	assert.Equal(t, "PP Homopolymer", opts.material)
	assert.Equal(t, 4, opts.cavities)
	assert.Equal(t, string(model.GatePin), opts.gateType)
	assert.InDelta(t, 1.3, opts.safety, 1e-9)
	assert.Equal(t, int64(9), opts.seed)
	assert.Equal(t, "customer", opts.style)
}

func TestApplyConfigDefaultsKeepsExplicitFlags(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.DefaultCavityCount = 8
	cfg.DefaultGateType = model.GateFan
	cfg.ThicknessSeed = 99
	opts := analyzeOptions{material: "ABS General Purpose", cavities: 2, gateType: "pin", safety: 1.25, seed: 5, style: "designer"}

	applyConfigDefaults(&opts, cfg, func(string) bool { return true })

	assert.Equal(t, "ABS General Purpose", opts.material)
	assert.Equal(t, 2, opts.cavities)
	assert.Equal(t, "pin", opts.gateType)
	assert.InDelta(t, 1.25, opts.safety, 1e-9)
	assert.Equal(t, int64(5), opts.seed)
}
