package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

const asciiTriangle = `solid tetra
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 0 10 0
    endloop
  endfacet
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 0 10 0
      vertex 10 0 0
    endloop
  endfacet
endsolid tetra
`

func TestParseASCII(t *testing.T) {
	mesh, err := ParseBytes([]byte(asciiTriangle))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if mesh.Name != "tetra" {
		t.Errorf("expected solid name 'tetra', got %q", mesh.Name)
	}
	if mesh.TriangleCount() != 2 {
		t.Fatalf("expected 2 triangles, got %d", mesh.TriangleCount())
	}

	tri := mesh.Triangles[0]
	if tri.Normal.Z != 1 {
		t.Errorf("expected normal (0,0,1), got (%.1f,%.1f,%.1f)", tri.Normal.X, tri.Normal.Y, tri.Normal.Z)
	}
	if tri.V2.X != 10 {
		t.Errorf("expected second vertex x=10, got %.1f", tri.V2.X)
	}
	if math.Abs(tri.Area()-50) > 1e-9 {
		t.Errorf("expected area 50, got %.4f", tri.Area())
	}
}

// binarySTL builds a minimal binary STL with the given facets.
func binarySTL(facets [][12]float32) []byte {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary test part")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(len(facets)))
	for _, f := range facets {
		for _, v := range f {
			binary.Write(&buf, binary.LittleEndian, v)
		}
		binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestParseBinary(t *testing.T) {
	data := binarySTL([][12]float32{
		{0, 0, 1, 0, 0, 0, 10, 0, 0, 0, 10, 0},
	})

	mesh, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if mesh.TriangleCount() != 1 {
		t.Fatalf("expected 1 triangle, got %d", mesh.TriangleCount())
	}
	tri := mesh.Triangles[0]
	if tri.Normal.Z != 1 || tri.V2.X != 10 || tri.V3.Y != 10 {
		t.Error("binary facet decoded incorrectly")
	}
}

func TestParseBinaryTruncated(t *testing.T) {
	data := binarySTL([][12]float32{
		{0, 0, 1, 0, 0, 0, 10, 0, 0, 0, 10, 0},
	})
	if _, err := ParseBytes(data[:len(data)-10]); err == nil {
		t.Error("expected error for truncated binary STL")
	}
}

func TestParseEmptyInput(t *testing.T) {
	if _, err := ParseBytes(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part.stl")
	if err := os.WriteFile(path, []byte(asciiTriangle), 0644); err != nil {
		t.Fatal(err)
	}

	mesh, err := ParseFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if mesh.TriangleCount() != 2 {
		t.Errorf("expected 2 triangles, got %d", mesh.TriangleCount())
	}
}
