// Package stl reads triangulated surface meshes from binary or ASCII STL
// buffers. The analysis core never touches the filesystem; callers hand in
// an io.Reader or byte slice and receive a geometry.Mesh.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kirankarpur29/IM-MouldFlow-App-Basic1/internal/geometry"
)

// MaxTriangles caps the triangle count accepted from a file. Pathological
// inputs beyond this bound are rejected instead of exhausting memory.
const MaxTriangles = 5_000_000

// ParseFile reads an STL file from disk.
func ParseFile(filename string) (*geometry.Mesh, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	mesh, err := ParseBytes(data)
	if err != nil {
		return nil, err
	}
	if mesh.Name == "" {
		mesh.Name = filename
	}
	return mesh, nil
}

// ParseBytes parses an STL buffer, detecting ASCII vs binary format.
func ParseBytes(data []byte) (*geometry.Mesh, error) {
	return Parse(bytes.NewReader(data))
}

// Parse reads an STL stream and returns a Mesh. ASCII files start with
// "solid "; everything else is treated as binary.
func Parse(r io.Reader) (*geometry.Mesh, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty STL data")
	}
	if looksASCII(data) {
		return parseASCII(bytes.NewReader(data))
	}
	return parseBinary(bytes.NewReader(data))
}

// looksASCII reports whether the buffer is an ASCII STL. The "solid" prefix
// alone is not enough: some binary exporters write it into the 80-byte
// header, so the body is checked for a "facet" keyword as well.
func looksASCII(data []byte) bool {
	if !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return false
	}
	probe := data
	if len(probe) > 512 {
		probe = probe[:512]
	}
	return bytes.Contains(probe, []byte("facet"))
}

func parseASCII(reader io.Reader) (*geometry.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	mesh := geometry.NewMesh("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, _ := strconv.ParseFloat(fields[2], 64)
				y, _ := strconv.ParseFloat(fields[3], 64)
				z, _ := strconv.ParseFloat(fields[4], 64)
				currentNormal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				mesh.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
				if mesh.TriangleCount() > MaxTriangles {
					return nil, fmt.Errorf("STL exceeds %d triangles", MaxTriangles)
				}
			}
			vertices = vertices[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	if mesh.TriangleCount() == 0 {
		return nil, fmt.Errorf("ASCII STL contains no facets")
	}
	return mesh, nil
}

func parseBinary(reader io.Reader) (*geometry.Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read binary STL header: %w", err)
	}

	mesh := geometry.NewMesh(strings.TrimRight(string(bytes.TrimRight(header, "\x00")), " "))

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("binary STL contains no triangles")
	}
	if count > MaxTriangles {
		return nil, fmt.Errorf("STL exceeds %d triangles", MaxTriangles)
	}

	// 12 floats (normal + 3 vertices) + 2-byte attribute count per facet
	buf := make([]byte, 50)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("truncated binary STL at facet %d: %w", i, err)
		}
		vals := make([]float64, 12)
		for j := range vals {
			vals[j] = float64(floatAt(buf, j*4))
		}
		mesh.AddTriangle(geometry.NewTriangle(
			geometry.NewVector3(vals[0], vals[1], vals[2]),
			geometry.NewVector3(vals[3], vals[4], vals[5]),
			geometry.NewVector3(vals[6], vals[7], vals[8]),
			geometry.NewVector3(vals[9], vals[10], vals[11]),
		))
	}
	return mesh, nil
}

func floatAt(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}
