// Copyright 2025 The LPlib-Go Authors. SPDX-License-Identifier: Apache-2.0

package meshio

import (
	"encoding/binary"
	"fmt"
)

// vertexRecord and tetRecord/triRecord are the fixed-width wire records;
// field order matches what Create/Open write and expect.
type vertexRecord struct {
	X, Y, Z float64
	Ref     int32
}

type tetRecord struct {
	V0, V1, V2, V3 int32
	Ref            int32
}

type triRecord struct {
	V0, V1, V2 int32
	Ref        int32
}

// ReadVertices reads the mesh's full vertex block. Must be called before
// ReadTets (blocks are written/read in fixed order: vertices, tets,
// triangles).
func (m *Mesh) ReadVertices() ([]Vertex, error) {
	n := m.Cardinality(Vertices)
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		var rec vertexRecord
		if err := binary.Read(m.r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("meshio: read vertex %d: %w", i, err)
		}
		out[i] = Vertex{X: rec.X, Y: rec.Y, Z: rec.Z, Ref: int(rec.Ref)}
	}
	return out, nil
}

// WriteVertices writes the vertex block. len(vertices) must equal the
// cardinality given to Create.
func (m *Mesh) WriteVertices(vertices []Vertex) error {
	if len(vertices) != m.Cardinality(Vertices) {
		return fmt.Errorf("meshio: WriteVertices: got %d, want %d", len(vertices), m.Cardinality(Vertices))
	}
	for i, v := range vertices {
		rec := vertexRecord{X: v.X, Y: v.Y, Z: v.Z, Ref: int32(v.Ref)}
		if err := binary.Write(m.w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("meshio: write vertex %d: %w", i, err)
		}
	}
	return nil
}

// ReadTets reads the mesh's full tetrahedron block.
func (m *Mesh) ReadTets() ([]Tet, error) {
	n := m.Cardinality(Tetrahedra)
	out := make([]Tet, n)
	for i := 0; i < n; i++ {
		var rec tetRecord
		if err := binary.Read(m.r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("meshio: read tet %d: %w", i, err)
		}
		out[i] = Tet{Idx: [4]int{int(rec.V0), int(rec.V1), int(rec.V2), int(rec.V3)}, Ref: int(rec.Ref)}
	}
	return out, nil
}

// WriteTets writes the tetrahedron block.
func (m *Mesh) WriteTets(tets []Tet) error {
	if len(tets) != m.Cardinality(Tetrahedra) {
		return fmt.Errorf("meshio: WriteTets: got %d, want %d", len(tets), m.Cardinality(Tetrahedra))
	}
	for i, t := range tets {
		rec := tetRecord{V0: int32(t.Idx[0]), V1: int32(t.Idx[1]), V2: int32(t.Idx[2]), V3: int32(t.Idx[3]), Ref: int32(t.Ref)}
		if err := binary.Write(m.w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("meshio: write tet %d: %w", i, err)
		}
	}
	return nil
}

// ReadTriangles reads the mesh's full triangle block.
func (m *Mesh) ReadTriangles() ([]Triangle, error) {
	n := m.Cardinality(Triangles)
	out := make([]Triangle, n)
	for i := 0; i < n; i++ {
		var rec triRecord
		if err := binary.Read(m.r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("meshio: read triangle %d: %w", i, err)
		}
		out[i] = Triangle{V: [3]int{int(rec.V0), int(rec.V1), int(rec.V2)}, Ref: int(rec.Ref)}
	}
	return out, nil
}

// WriteTriangles writes the triangle block.
func (m *Mesh) WriteTriangles(triangles []Triangle) error {
	if len(triangles) != m.Cardinality(Triangles) {
		return fmt.Errorf("meshio: WriteTriangles: got %d, want %d", len(triangles), m.Cardinality(Triangles))
	}
	for i, tr := range triangles {
		rec := triRecord{V0: int32(tr.V[0]), V1: int32(tr.V[1]), V2: int32(tr.V[2]), Ref: int32(tr.Ref)}
		if err := binary.Write(m.w, binary.LittleEndian, rec); err != nil {
			return fmt.Errorf("meshio: write triangle %d: %w", i, err)
		}
	}
	return nil
}
