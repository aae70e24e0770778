package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/glgeom/pkg/geom"
)

// GLDevice implements Device on an OpenGL VAO/VBO/EBO triple. Buffer
// objects are created on first upload and live until Release; the
// owning Mesh is the only holder of the handles.
type GLDevice struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// NewGLDevice returns an empty device. A GL context must be current on
// the calling thread before any other method is used.
func NewGLDevice() *GLDevice {
	return &GLDevice{}
}

// Upload implements Device.
func (d *GLDevice) Upload(vertexData []float32, indexData []uint32, layout geom.VertexLayout, attribs AttribLocations) {
	if d.vao == 0 {
		gl.GenVertexArrays(1, &d.vao)
		gl.GenBuffers(1, &d.vbo)
		gl.GenBuffers(1, &d.ebo)
	}
	gl.BindVertexArray(d.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertexData)*4, unsafe.Pointer(&vertexData[0]), gl.STATIC_DRAW)

	stride := int32(layout.Stride * 4)
	gl.VertexAttribPointerWithOffset(uint32(attribs.Position), 3, gl.FLOAT, false, stride, uintptr(layout.PosOffset*4))
	gl.EnableVertexAttribArray(uint32(attribs.Position))
	if attribs.Normal >= 0 {
		gl.VertexAttribPointerWithOffset(uint32(attribs.Normal), 3, gl.FLOAT, false, stride, uintptr(layout.NormalOffset*4))
		gl.EnableVertexAttribArray(uint32(attribs.Normal))
	}
	if attribs.TexCoord >= 0 {
		gl.VertexAttribPointerWithOffset(uint32(attribs.TexCoord), 2, gl.FLOAT, false, stride, uintptr(layout.TexCoordOffset*4))
		gl.EnableVertexAttribArray(uint32(attribs.TexCoord))
	}

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indexData)*4, unsafe.Pointer(&indexData[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
}

// DrawRange implements Device.
func (d *GLDevice) DrawRange(first, count int) {
	gl.BindVertexArray(d.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(count), gl.UNSIGNED_INT, uintptr(first*4))
	gl.BindVertexArray(0)
}

// Release implements Device.
func (d *GLDevice) Release() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
		d.ebo = 0
	}
}
