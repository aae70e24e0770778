// Package mesh keeps a parametric shape's geometry resident on the GPU
// and issues indexed draw calls against it.
//
// A Mesh pairs one geom.Shape with one Device (the GPU-side buffer
// objects). Vertex data is regenerated and re-uploaded lazily: remeshing
// the shape only advances its generation counter, and the next render
// notices the stale upload and refreshes it before drawing.
package mesh

import (
	"fmt"

	"github.com/Faultbox/glgeom/pkg/geom"
)

// NoLocation disables an optional shader attribute.
const NoLocation int32 = -1

// AttribLocations holds the shader attribute slots for the interleaved
// vertex record. Position is mandatory; Normal and TexCoord may be
// NoLocation, in which case that attribute is neither generated nor
// bound. Whether TexCoord is present changes the vertex count (seam
// duplication), so it must match the shader actually used.
type AttribLocations struct {
	Position int32
	Normal   int32
	TexCoord int32
}

// layout derives the interleaved record layout from which attributes
// are present: position first, then normal, then texcoord.
func (a AttribLocations) layout() geom.VertexLayout {
	l := geom.VertexLayout{
		PosOffset:      0,
		NormalOffset:   geom.NoAttrib,
		TexCoordOffset: geom.NoAttrib,
		Stride:         3,
	}
	if a.Normal >= 0 {
		l.NormalOffset = l.Stride
		l.Stride += 3
	}
	if a.TexCoord >= 0 {
		l.TexCoordOffset = l.Stride
		l.Stride += 2
	}
	return l
}

// Device is the GPU side of an indexed triangle mesh: upload an
// interleaved vertex buffer plus an index buffer, then draw ranges of
// the index buffer. Each Device backs exactly one Mesh.
type Device interface {
	// Upload replaces the device's buffer contents. Offsets and strides
	// in layout are in floats; the device converts to bytes.
	Upload(vertexData []float32, indexData []uint32, layout geom.VertexLayout, attribs AttribLocations)

	// DrawRange draws count indices starting at index first.
	DrawRange(first, count int)

	// Release frees the GPU resources.
	Release()
}

// Mesh owns the GPU-resident copy of one shape's geometry. It must not
// be copied after creation: the Device handles it holds have exactly
// one owner.
type Mesh struct {
	noCopy noCopy

	shape   geom.Shape
	dev     Device
	attribs AttribLocations
	layout  geom.VertexLayout

	configured  bool
	uploadedGen uint64
	elemCount   int
}

// New creates a Mesh for the given shape on the given device. The mesh
// is unconfigured until Init is called.
func New(shape geom.Shape, dev Device) *Mesh {
	return &Mesh{shape: shape, dev: dev}
}

// Init binds the shader attribute locations, then generates and uploads
// the current geometry. It must be called once before the first render;
// calling it again rebinds and re-uploads.
func (m *Mesh) Init(attribs AttribLocations) {
	m.attribs = attribs
	m.layout = attribs.layout()
	m.configured = true
	m.upload()
}

// Render draws the entire mesh, refreshing the GPU buffers first if the
// shape was remeshed since the last upload.
func (m *Mesh) Render() {
	m.prepare()
	m.dev.DrawRange(0, m.elemCount)
}

// RenderRange draws a slice of the index buffer, letting callers render
// named subregions (a cone's base or side) without separate buffers.
func (m *Mesh) RenderRange(first, count int) {
	m.prepare()
	if first < 0 || count < 0 || first+count > m.elemCount {
		panic(fmt.Sprintf("mesh: range [%d,%d) outside %d elements", first, first+count, m.elemCount))
	}
	m.dev.DrawRange(first, count)
}

// ElementCount returns the index count of the last upload.
func (m *Mesh) ElementCount() int {
	return m.elemCount
}

// Release frees the GPU resources. The mesh cannot be rendered after.
func (m *Mesh) Release() {
	m.dev.Release()
	m.configured = false
}

// prepare re-uploads stale geometry. Rendering an unconfigured mesh is
// a programming error.
func (m *Mesh) prepare() {
	if !m.configured {
		panic("mesh: Render called before Init")
	}
	if m.uploadedGen != m.shape.Generation() {
		m.upload()
	}
}

func (m *Mesh) upload() {
	withTex := m.layout.HasTexCoords()
	vbuf := make([]float32, m.shape.VertexCount(withTex)*m.layout.Stride)
	ebuf := make([]uint32, m.shape.ElementCount())
	m.shape.Generate(vbuf, ebuf, m.layout)

	m.dev.Upload(vbuf, ebuf, m.layout, m.attribs)
	m.uploadedGen = m.shape.Generation()
	m.elemCount = len(ebuf)
}

// noCopy triggers `go vet -copylocks` when a Mesh is copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
