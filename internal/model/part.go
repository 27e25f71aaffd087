package model

import (
	"github.com/google/uuid"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
)

// GeometrySource records how a part's geometry was obtained.
type GeometrySource string

const (
	SourceMesh   GeometrySource = "mesh"   // triangulated surface (STL)
	SourceManual GeometrySource = "manual" // box dimensions typed in by hand
)

// MeshQuality summarizes mesh reliability for downstream confidence tracking.
type MeshQuality struct {
	Watertight    bool `json:"watertight"`
	Repaired      bool `json:"repaired"`
	TriangleCount int  `json:"triangle_count"`
	VertexCount   int  `json:"vertex_count"`
}

// GeometrySummary holds the volumetric metrics extracted from a part's
// geometry. Computed once per uploaded geometry (or manual input) and
// reused by every subsequent analysis of the part.
type GeometrySummary struct {
	VolumeCm3        float64          `json:"volume_cm3"`
	SurfaceAreaCm2   float64          `json:"surface_area_cm2"`
	ProjectedAreaCm2 float64          `json:"projected_area_cm2"`
	BBox             geometry.Vector3 `json:"bbox"`     // mm per axis
	Centroid         geometry.Vector3 `json:"centroid"` // mm
	Quality          MeshQuality      `json:"quality"`
	Method           string           `json:"method"` // extraction strategy that produced this
}

// Part is an analyzed component: its identity, where the geometry came
// from, and the metrics derived from it.
type Part struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Source   GeometrySource `json:"source"`
	FileName string         `json:"file_name,omitempty"`

	// Manual box input, set when Source == SourceManual (mm).
	ManualLength    float64 `json:"manual_length,omitempty"`
	ManualWidth     float64 `json:"manual_width,omitempty"`
	ManualHeight    float64 `json:"manual_height,omitempty"`
	ManualThickness float64 `json:"manual_thickness,omitempty"`

	Geometry  GeometrySummary  `json:"geometry"`
	Thickness ThicknessProfile `json:"thickness"`
	Gates     []GatePoint      `json:"gates,omitempty"`
}

// NewPart creates a part with a generated short ID.
func NewPart(name string, source GeometrySource) Part {
	return Part{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Source: source,
	}
}

// GatePoint is a recommended melt entry location on the part surface.
type GatePoint struct {
	Location  geometry.Vector3 `json:"location"`
	Normal    geometry.Vector3 `json:"normal,omitempty"`
	Primary   bool             `json:"primary"`
	Rationale string           `json:"rationale"`
}
