// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package meshio

import (
	"os"
	"path/filepath"
	"testing"
)

// Property 8: writing a mesh then reading it back reproduces the same
// vertex, tet and triangle arrays.
func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.meshb")

	vertices := []Vertex{
		{X: 0, Y: 0, Z: 0, Ref: 1},
		{X: 1, Y: 0, Z: 0, Ref: 1},
		{X: 1, Y: 1, Z: 0, Ref: 2},
		{X: 0, Y: 1, Z: 1, Ref: 0},
	}
	tets := []Tet{
		{Idx: [4]int{1, 2, 3, 4}, Ref: 7},
	}
	triangles := []Triangle{
		{V: [3]int{1, 2, 3}, Ref: 0},
		{V: [3]int{1, 2, 4}, Ref: 0},
	}

	w, err := Create(path, 3, len(vertices), len(tets), len(triangles))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.WriteVertices(vertices); err != nil {
		t.Fatalf("WriteVertices: %v", err)
	}
	if err := w.WriteTets(tets); err != nil {
		t.Fatalf("WriteTets: %v", err)
	}
	if err := w.WriteTriangles(triangles); err != nil {
		t.Fatalf("WriteTriangles: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if r.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", r.Dim())
	}
	if got := r.Cardinality(Vertices); got != len(vertices) {
		t.Errorf("Cardinality(Vertices) = %d, want %d", got, len(vertices))
	}
	if got := r.Cardinality(Tetrahedra); got != len(tets) {
		t.Errorf("Cardinality(Tetrahedra) = %d, want %d", got, len(tets))
	}
	if got := r.Cardinality(Triangles); got != len(triangles) {
		t.Errorf("Cardinality(Triangles) = %d, want %d", got, len(triangles))
	}

	gotVertices, err := r.ReadVertices()
	if err != nil {
		t.Fatalf("ReadVertices: %v", err)
	}
	if len(gotVertices) != len(vertices) {
		t.Fatalf("got %d vertices, want %d", len(gotVertices), len(vertices))
	}
	for i, v := range vertices {
		if gotVertices[i] != v {
			t.Errorf("vertex %d = %+v, want %+v", i, gotVertices[i], v)
		}
	}

	gotTets, err := r.ReadTets()
	if err != nil {
		t.Fatalf("ReadTets: %v", err)
	}
	for i, tt := range tets {
		if gotTets[i] != tt {
			t.Errorf("tet %d = %+v, want %+v", i, gotTets[i], tt)
		}
	}

	gotTriangles, err := r.ReadTriangles()
	if err != nil {
		t.Fatalf("ReadTriangles: %v", err)
	}
	for i, tr := range triangles {
		if gotTriangles[i] != tr {
			t.Errorf("triangle %d = %+v, want %+v", i, gotTriangles[i], tr)
		}
	}
}

func TestOpenRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notamesh.bin")
	w, err := Create(path, 3, 0, 0, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	w.Close()

	// Corrupt the first byte so the magic check fails.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	data[0] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatalf("Open: expected error for corrupted magic")
	}
}

func TestOpenRejectsEmptyVertexMesh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.meshb")
	w, err := Create(path, 3, 0, 0, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path); err != ErrNoVertices {
		t.Fatalf("Open: got %v, want ErrNoVertices", err)
	}
}

func TestOpenRejectsNon3D(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flat.meshb")
	w, err := Create(path, 2, 3, 0, 0)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if _, err := Open(path); err != ErrUnsupportedDim {
		t.Fatalf("Open: got %v, want ErrUnsupportedDim", err)
	}
}
