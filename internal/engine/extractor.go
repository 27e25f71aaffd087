// Package engine derives part geometry metrics, wall thickness profiles and
// gate locations, and orchestrates the full moldability analysis.
package engine

import (
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// ExtractGeometry computes the volumetric summary of a triangulated mesh.
// Linear dimensions stay in mm; volume converts to cm³ and areas to cm².
// Projected area assumes Z is the clamp direction, so it is the bounding
// box X*Y footprint.
//
// A mesh that fails the watertight check gets one repair pass before
// metrics are taken. Repair failure is not fatal; the quality flags record
// what happened and downstream confidence handling takes over.
func ExtractGeometry(mesh *geometry.Mesh) (model.GeometrySummary, error) {
	if mesh == nil || mesh.TriangleCount() == 0 {
		return model.GeometrySummary{}, &InputError{Field: "mesh", Reason: "no triangles"}
	}

	repaired := false
	if !mesh.IsWatertight() {
		*mesh = *mesh.Repair()
		repaired = true
	}

	box := mesh.BoundingBox()
	if box.IsDegenerate() {
		return model.GeometrySummary{}, &InputError{Field: "mesh", Reason: "degenerate bounding box"}
	}
	size := box.Size()

	return model.GeometrySummary{
		VolumeCm3:        mesh.Volume() / 1000.0,
		SurfaceAreaCm2:   mesh.SurfaceArea() / 100.0,
		ProjectedAreaCm2: size.X * size.Y / 100.0,
		BBox:             size,
		Centroid:         mesh.Centroid(),
		Quality: model.MeshQuality{
			Watertight:    mesh.IsWatertight(),
			Repaired:      repaired,
			TriangleCount: mesh.TriangleCount(),
			VertexCount:   mesh.VertexCount(),
		},
		Method: "mesh",
	}, nil
}

// ManualInput is a hollow-box approximation typed in when no CAD file is
// available. All dimensions in mm.
type ManualInput struct {
	Length    float64
	Width     float64
	Height    float64
	Thickness float64
}

// Validate checks that every dimension is positive and the wall fits
// inside the box.
func (m ManualInput) Validate() error {
	switch {
	case m.Length <= 0:
		return &InputError{Field: "length", Reason: "must be positive"}
	case m.Width <= 0:
		return &InputError{Field: "width", Reason: "must be positive"}
	case m.Height <= 0:
		return &InputError{Field: "height", Reason: "must be positive"}
	case m.Thickness <= 0:
		return &InputError{Field: "thickness", Reason: "must be positive"}
	}
	return nil
}

// ProcessManualInput derives geometry and thickness from box dimensions.
// Volume is the outer box minus the inner cavity shrunk by twice the wall
// thickness; surface area is the outer shell only.
func ProcessManualInput(in ManualInput) (model.GeometrySummary, model.ThicknessProfile, []model.GatePoint, error) {
	if err := in.Validate(); err != nil {
		return model.GeometrySummary{}, model.ThicknessProfile{}, nil, err
	}

	outer := in.Length * in.Width * in.Height
	inner := (in.Length - 2*in.Thickness) * (in.Width - 2*in.Thickness) * (in.Height - 2*in.Thickness)
	if inner < 0 {
		inner = 0
	}
	surface := 2 * (in.Length*in.Width + in.Width*in.Height + in.Height*in.Length)

	geom := model.GeometrySummary{
		VolumeCm3:        (outer - inner) / 1000.0,
		SurfaceAreaCm2:   surface / 100.0,
		ProjectedAreaCm2: in.Length * in.Width / 100.0,
		BBox:             geometry.NewVector3(in.Length, in.Width, in.Height),
		Centroid:         geometry.NewVector3(in.Length/2, in.Width/2, in.Height/2),
		Method:           "manual",
	}

	minT := in.Thickness * 0.8
	maxT := in.Thickness * 1.5
	thickness := model.ThicknessProfile{
		MinMM:       minT,
		AvgMM:       in.Thickness,
		MaxMM:       maxT,
		StdDevMM:    (maxT - minT) / 4.0,
		Variation:   0.7,
		SampleCount: 0,
		Confidence:  model.ConfidenceEstimated,
	}

	gates := []model.GatePoint{{
		Location:  geometry.NewVector3(in.Length/2, in.Width/2, 0),
		Primary:   true,
		Rationale: "Manual input - center location assumed",
	}}

	return geom, thickness, gates, nil
}
