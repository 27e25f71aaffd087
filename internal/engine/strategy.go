package engine

import (
	"fmt"
	"strings"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/stl"
)

// ExtractionStrategy is one way of turning raw geometry bytes into a mesh
// and its volumetric summary. Strategies are tried in order; each failure
// carries a reason rather than aborting the pipeline.
type ExtractionStrategy interface {
	Name() string
	Extract(data []byte, fileName string) (*geometry.Mesh, model.GeometrySummary, error)
}

// ExtractionError aggregates the failure reason of every attempted
// strategy. Returned only when all strategies fail.
type ExtractionError struct {
	Attempts map[string]error
	order    []string
}

func (e *ExtractionError) Error() string {
	var sb strings.Builder
	sb.WriteString("all extraction strategies failed:")
	for _, name := range e.order {
		fmt.Fprintf(&sb, " [%s: %v]", name, e.Attempts[name])
	}
	return sb.String()
}

// Extractor tries its strategies in order and returns the first success.
type Extractor struct {
	strategies []ExtractionStrategy
}

// NewExtractor builds the default pipeline: a strict STL parse with the
// watertight metric path, then a lenient parse that accepts open meshes
// and estimates what it cannot measure.
func NewExtractor() *Extractor {
	return &Extractor{strategies: []ExtractionStrategy{
		stlStrategy{},
		lenientStrategy{},
	}}
}

// Extract runs the strategy chain over the file content.
func (e *Extractor) Extract(data []byte, fileName string) (*geometry.Mesh, model.GeometrySummary, error) {
	failure := &ExtractionError{Attempts: make(map[string]error)}
	for _, s := range e.strategies {
		mesh, summary, err := s.Extract(data, fileName)
		if err == nil {
			summary.Method = s.Name()
			return mesh, summary, nil
		}
		failure.Attempts[s.Name()] = err
		failure.order = append(failure.order, s.Name())
	}
	return nil, model.GeometrySummary{}, failure
}

// stlStrategy parses STL and requires metrics extraction to succeed,
// including the degenerate bounding box check.
type stlStrategy struct{}

func (stlStrategy) Name() string { return "mesh" }

func (stlStrategy) Extract(data []byte, fileName string) (*geometry.Mesh, model.GeometrySummary, error) {
	mesh, err := stl.ParseBytes(data)
	if err != nil {
		return nil, model.GeometrySummary{}, err
	}
	if mesh.Name == "" {
		mesh.Name = fileName
	}
	summary, err := ExtractGeometry(mesh)
	if err != nil {
		return nil, model.GeometrySummary{}, err
	}
	return mesh, summary, nil
}

// lenientStrategy accepts meshes the strict path rejects: it repairs what
// it can and substitutes bounding box estimates for metrics a broken mesh
// cannot support.
type lenientStrategy struct{}

func (lenientStrategy) Name() string { return "mesh-lenient" }

func (lenientStrategy) Extract(data []byte, fileName string) (*geometry.Mesh, model.GeometrySummary, error) {
	mesh, err := stl.ParseBytes(data)
	if err != nil {
		return nil, model.GeometrySummary{}, err
	}
	if mesh.TriangleCount() == 0 {
		return nil, model.GeometrySummary{}, &InputError{Field: "mesh", Reason: "no triangles"}
	}
	if mesh.Name == "" {
		mesh.Name = fileName
	}
	*mesh = *mesh.Repair()

	box := mesh.BoundingBox()
	size := box.Size()
	if size.X <= 0 && size.Y <= 0 && size.Z <= 0 {
		return nil, model.GeometrySummary{}, &GeometryDegenerateError{Reason: "all bounding box extents are zero"}
	}

	volume := mesh.Volume()
	if volume <= 0 {
		// Open shell: approximate with a quarter of the bounding volume.
		volume = size.X * size.Y * size.Z * 0.25
	}

	summary := model.GeometrySummary{
		VolumeCm3:        volume / 1000.0,
		SurfaceAreaCm2:   mesh.SurfaceArea() / 100.0,
		ProjectedAreaCm2: size.X * size.Y / 100.0,
		BBox:             size,
		Centroid:         mesh.Centroid(),
		Quality: model.MeshQuality{
			Watertight:    mesh.IsWatertight(),
			Repaired:      true,
			TriangleCount: mesh.TriangleCount(),
			VertexCount:   mesh.VertexCount(),
		},
	}
	return mesh, summary, nil
}
