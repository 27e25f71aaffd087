package engine

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/model"
)

// Thickness sampling parameters. Measurements outside the plausibility
// window are discarded as self-intersections or pass-throughs.
const (
	defaultSampleCount = 100
	rayOriginOffset    = 0.01 // mm along the outward normal
	minPlausibleMM     = 0.1
	maxPlausibleMM     = 50.0
	histogramBins      = 8
	maxThickSections   = 5
)

// ThicknessLimits bound the work a single analysis may perform. Zero means
// the corresponding limit is not enforced.
type ThicknessLimits struct {
	MaxTriangles int
	MaxSamples   int
	MaxDuration  time.Duration
}

// DefaultThicknessLimits is sized for interactive use on desktop hardware.
var DefaultThicknessLimits = ThicknessLimits{
	MaxTriangles: 2_000_000,
	MaxSamples:   10_000,
	MaxDuration:  30 * time.Second,
}

// ThicknessAnalyzer measures wall thickness by ray casting from surface
// sample points through the part. Samples are drawn area-weighted with a
// caller-supplied seed, so a given mesh and seed always produce the same
// profile.
type ThicknessAnalyzer struct {
	Samples int
	Limits  ThicknessLimits
	Workers int
}

// NewThicknessAnalyzer returns an analyzer with default sampling density
// and resource limits.
func NewThicknessAnalyzer() *ThicknessAnalyzer {
	return &ThicknessAnalyzer{
		Samples: defaultSampleCount,
		Limits:  DefaultThicknessLimits,
		Workers: runtime.NumCPU(),
	}
}

type surfaceSample struct {
	point  geometry.Vector3
	normal geometry.Vector3
}

// Analyze measures the thickness profile of the mesh. When no ray yields a
// plausible measurement the profile falls back to the volume/area estimate
// with estimated confidence.
func (a *ThicknessAnalyzer) Analyze(mesh *geometry.Mesh, seed int64) (model.ThicknessProfile, error) {
	if mesh == nil || mesh.TriangleCount() == 0 {
		return model.ThicknessProfile{}, &InputError{Field: "mesh", Reason: "no triangles"}
	}
	if a.Limits.MaxTriangles > 0 && mesh.TriangleCount() > a.Limits.MaxTriangles {
		return model.ThicknessProfile{}, &ResourceExceededError{
			Resource: "triangles",
			Limit:    fmt.Sprintf("%d", a.Limits.MaxTriangles),
		}
	}
	samples := a.Samples
	if samples <= 0 {
		samples = defaultSampleCount
	}
	if a.Limits.MaxSamples > 0 && samples > a.Limits.MaxSamples {
		return model.ThicknessProfile{}, &ResourceExceededError{
			Resource: "samples",
			Limit:    fmt.Sprintf("%d", a.Limits.MaxSamples),
		}
	}

	started := time.Now()
	var deadline time.Time
	if a.Limits.MaxDuration > 0 {
		deadline = started.Add(a.Limits.MaxDuration)
	}
	points := sampleSurface(mesh, samples, seed)
	bvh := geometry.NewBVH(mesh)

	measurements := a.castAll(bvh, points, deadline)
	if a.Limits.MaxDuration > 0 && time.Since(started) > a.Limits.MaxDuration {
		return model.ThicknessProfile{}, &ResourceExceededError{
			Resource: "wall clock",
			Limit:    a.Limits.MaxDuration.String(),
		}
	}

	var (
		values    []float64
		locations []geometry.Vector3
	)
	for i, thickness := range measurements {
		if thickness > minPlausibleMM && thickness < maxPlausibleMM {
			values = append(values, thickness)
			locations = append(locations, points[i].point)
		}
	}

	if len(values) == 0 {
		return EstimateThicknessFromVolume(mesh.Volume(), mesh.SurfaceArea()), nil
	}

	return buildProfile(values, locations), nil
}

// castAll runs the thickness rays over a worker pool. Results land in a
// slice indexed by sample so ordering never depends on scheduling; a
// negative value means the ray missed. Once the deadline passes no further
// rays are submitted and the unfilled slots read as misses.
func (a *ThicknessAnalyzer) castAll(bvh *geometry.BVH, points []surfaceSample, deadline time.Time) []float64 {
	workers := a.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(points) {
		workers = len(points)
	}

	results := make([]float64, len(points))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = castThicknessRay(bvh, points[i])
			}
		}()
	}
	for i := range points {
		if !deadline.IsZero() && time.Now().After(deadline) {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// castThicknessRay shoots inward from just outside the surface and returns
// the distance from the sample point to the far wall, or -1 on a miss.
// The nearest hit is usually the sample's own surface, so hits closer than
// the plausibility floor are stepped past and the cast retried.
func castThicknessRay(bvh *geometry.BVH, s surfaceSample) float64 {
	origin := s.point.Add(s.normal.Mul(rayOriginOffset))
	dir := s.normal.Mul(-1)
	for i := 0; i < 4; i++ {
		dist, ok := bvh.RayIntersect(origin, dir)
		if !ok {
			return -1
		}
		hit := origin.Add(dir.Mul(dist))
		thickness := hit.Distance(s.point)
		if thickness >= minPlausibleMM {
			return thickness
		}
		origin = hit.Add(dir.Mul(1e-3))
	}
	return -1
}

// sampleSurface draws area-weighted random points on the mesh surface.
// Rejected zero-area triangles never receive samples. Each sample carries
// the winding normal of its triangle.
func sampleSurface(mesh *geometry.Mesh, n int, seed int64) []surfaceSample {
	rng := rand.New(rand.NewSource(seed))

	cumulative := make([]float64, len(mesh.Triangles))
	total := 0.0
	for i, tri := range mesh.Triangles {
		total += tri.Area()
		cumulative[i] = total
	}

	samples := make([]surfaceSample, 0, n)
	for i := 0; i < n; i++ {
		var tri geometry.Triangle
		if total <= 0 {
			tri = mesh.Triangles[rng.Intn(len(mesh.Triangles))]
		} else {
			target := rng.Float64() * total
			idx := sort.SearchFloat64s(cumulative, target)
			if idx >= len(mesh.Triangles) {
				idx = len(mesh.Triangles) - 1
			}
			tri = mesh.Triangles[idx]
		}

		// Uniform point in the triangle via reflected barycentric coords.
		u, v := rng.Float64(), rng.Float64()
		if u+v > 1 {
			u, v = 1-u, 1-v
		}
		e1 := tri.V2.Sub(tri.V1)
		e2 := tri.V3.Sub(tri.V1)
		point := tri.V1.Add(e1.Mul(u)).Add(e2.Mul(v))

		normal := tri.Normal
		if normal.Length() < 1e-12 {
			normal = tri.CalculateNormal()
		}
		samples = append(samples, surfaceSample{point: point, normal: normal.Normalize()})
	}
	return samples
}

// buildProfile turns accepted measurements into statistics, an 8-bin
// histogram and the flagged thick sections.
func buildProfile(values []float64, locations []geometry.Vector3) model.ThicknessProfile {
	minT, maxT := values[0], values[0]
	sum := 0.0
	for _, v := range values {
		if v < minT {
			minT = v
		}
		if v > maxT {
			maxT = v
		}
		sum += v
	}
	avg := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - avg
		variance += d * d
	}
	std := math.Sqrt(variance / float64(len(values)))

	return model.ThicknessProfile{
		MinMM:         minT,
		AvgMM:         avg,
		MaxMM:         maxT,
		StdDevMM:      std,
		Variation:     (maxT - minT) / avg,
		Distribution:  buildHistogram(values, minT, maxT),
		ThickSections: findThickSections(values, locations, avg),
		SampleCount:   len(values),
		Confidence:    model.ConfidenceMeasured,
	}
}

func buildHistogram(values []float64, minT, maxT float64) []model.HistogramBin {
	width := (maxT - minT) / histogramBins
	bins := make([]model.HistogramBin, histogramBins)
	counts := make([]int, histogramBins)
	for _, v := range values {
		idx := histogramBins - 1
		if width > 0 {
			idx = int((v - minT) / width)
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
		}
		counts[idx]++
	}
	for i := range bins {
		bins[i] = model.HistogramBin{
			RangeStart: minT + float64(i)*width,
			RangeEnd:   minT + float64(i+1)*width,
			Percentage: float64(counts[i]) / float64(len(values)) * 100.0,
		}
	}
	return bins
}

// findThickSections flags samples more than 50% over the average, keeping
// the five thickest.
func findThickSections(values []float64, locations []geometry.Vector3, avg float64) []model.ThickSection {
	var sections []model.ThickSection
	for i, v := range values {
		if v <= avg*1.5 {
			continue
		}
		risk := model.RiskMedium
		if v > avg*2.0 {
			risk = model.RiskHigh
		}
		sections = append(sections, model.ThickSection{
			Location:    locations[i],
			ThicknessMM: v,
			RatioToAvg:  v / avg,
			Risk:        risk,
		})
	}
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].ThicknessMM > sections[j].ThicknessMM
	})
	if len(sections) > maxThickSections {
		sections = sections[:maxThickSections]
	}
	return sections
}

// EstimateThicknessFromVolume is the fallback when ray casting yields no
// plausible measurements. Average thickness follows from the shell
// approximation V = A*t/2, clamped to a typical molding range.
func EstimateThicknessFromVolume(volumeMm3, surfaceAreaMm2 float64) model.ThicknessProfile {
	avg := 2.0
	if surfaceAreaMm2 > 0 {
		avg = 2 * volumeMm3 / surfaceAreaMm2
	}
	minT := math.Max(0.8, avg*0.6)
	maxT := math.Min(15.0, avg*1.8)
	avg = math.Max(minT, math.Min(avg, maxT))

	return model.ThicknessProfile{
		MinMM:       minT,
		AvgMM:       avg,
		MaxMM:       maxT,
		StdDevMM:    (maxT - minT) / 4.0,
		Variation:   (maxT - minT) / avg,
		SampleCount: 0,
		Confidence:  model.ConfidenceEstimated,
	}
}
