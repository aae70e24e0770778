// Package geom generates vertex and index data for parametric primitives.
//
// A shape fills caller-provided interleaved vertex buffers and triangle
// index buffers; where each attribute lands inside a vertex record is
// described by a VertexLayout. The package does no GL calls of its own,
// so generation is plain, testable computation.
package geom

import "fmt"

// NoAttrib disables an optional attribute in a VertexLayout.
const NoAttrib = -1

// VertexLayout describes one interleaved vertex record. All values are
// in floats (not bytes). PosOffset is mandatory; NormalOffset and
// TexCoordOffset may be NoAttrib to skip that attribute. Stride is the
// total number of floats per record.
type VertexLayout struct {
	PosOffset      int
	NormalOffset   int
	TexCoordOffset int
	Stride         int
}

// HasNormals reports whether normals are generated.
func (l VertexLayout) HasNormals() bool { return l.NormalOffset >= 0 }

// HasTexCoords reports whether texture coordinates are generated.
// Texture coordinates change the vertex count: the seam at slice 0 must
// be duplicated when they are present.
func (l VertexLayout) HasTexCoords() bool { return l.TexCoordOffset >= 0 }

// mustValid panics on a malformed layout. A bad layout is a programming
// error, not a runtime condition, so there is no error return.
func (l VertexLayout) mustValid() {
	if l.PosOffset < 0 {
		panic(fmt.Sprintf("geom: position offset is mandatory, got %d", l.PosOffset))
	}
	if l.Stride <= 0 {
		panic(fmt.Sprintf("geom: stride must be positive, got %d", l.Stride))
	}
	if l.PosOffset+3 > l.Stride {
		panic(fmt.Sprintf("geom: position at offset %d does not fit in stride %d", l.PosOffset, l.Stride))
	}
	if l.HasNormals() && l.NormalOffset+3 > l.Stride {
		panic(fmt.Sprintf("geom: normal at offset %d does not fit in stride %d", l.NormalOffset, l.Stride))
	}
	if l.HasTexCoords() && l.TexCoordOffset+2 > l.Stride {
		panic(fmt.Sprintf("geom: texcoord at offset %d does not fit in stride %d", l.TexCoordOffset, l.Stride))
	}
}

// Shape is a parametric primitive that can fill interleaved vertex and
// triangle-index buffers. Implementations own their resolution state; a
// generation counter ticks whenever the state changes, so a consumer
// holding GPU copies of the buffers knows when they went stale.
type Shape interface {
	// Generation increases every time the mesh resolution changes.
	Generation() uint64

	// VertexCount returns the number of vertex records Generate writes.
	// The count differs with texture coordinates because seam vertices
	// must be duplicated.
	VertexCount(withTexCoords bool) int

	// ElementCount returns the number of index entries Generate writes.
	// Every three consecutive entries form one CCW triangle.
	ElementCount() int

	// Generate fills vbuf and ebuf with the complete geometry. vbuf must
	// hold at least VertexCount(layout.HasTexCoords())*layout.Stride
	// floats and ebuf at least ElementCount() entries; Generate panics
	// otherwise rather than writing a partial mesh.
	Generate(vbuf []float32, ebuf []uint32, layout VertexLayout)
}

// clampRange clamps v to [lo, hi].
func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
