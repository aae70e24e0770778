package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Resolution limits. Out-of-range values are clamped, never rejected.
const (
	MinSlices = 3
	MinStacks = 1
	MinRings  = 1
	MaxRes    = 255
)

// Cone is a unit cone: base radius 1 in the x/z plane centered on the
// origin, apex at (0,1,0). The surface is tessellated into angular
// slices, vertical stacks up the side, and concentric rings across the
// base disk.
//
// Vertex data is laid out disk first (1 center vertex, then rings x
// slices ring vertices), followed by one column of stacks+1 vertices
// per slice for the side. When texture coordinates are generated the
// seam column at slice 0 is duplicated with s=1, since s differs at the
// wrap boundary while positions and normals do not.
type Cone struct {
	slices int
	stacks int
	rings  int
	gen    uint64
}

// NewCone returns a cone with the given resolution, clamped to the
// valid ranges. NewCone(0, 0, 0) yields the minimal 3/1/1 cone.
func NewCone(slices, stacks, rings int) *Cone {
	return &Cone{
		slices: clampRange(slices, MinSlices, MaxRes),
		stacks: clampRange(stacks, MinStacks, MaxRes),
		rings:  clampRange(rings, MinRings, MaxRes),
	}
}

// Remesh changes the tessellation resolution. Inputs are clamped; if
// the clamped triple equals the current one this is a no-op and
// previously generated buffers stay valid. Otherwise the generation
// counter advances and consumers must regenerate.
func (c *Cone) Remesh(slices, stacks, rings int) {
	slices = clampRange(slices, MinSlices, MaxRes)
	stacks = clampRange(stacks, MinStacks, MaxRes)
	rings = clampRange(rings, MinRings, MaxRes)
	if slices == c.slices && stacks == c.stacks && rings == c.rings {
		return
	}
	c.slices = slices
	c.stacks = stacks
	c.rings = rings
	c.gen++
}

// Slices returns the number of angular subdivisions.
func (c *Cone) Slices() int { return c.slices }

// Stacks returns the number of subdivisions from base to apex.
func (c *Cone) Stacks() int { return c.stacks }

// Rings returns the number of concentric base subdivisions.
func (c *Cone) Rings() int { return c.rings }

// Generation implements Shape.
func (c *Cone) Generation() uint64 { return c.gen }

// ElementCountDisk returns the index count for the base disk.
func (c *Cone) ElementCountDisk() int { return 3 * (2*c.rings - 1) * c.slices }

// ElementCountSide returns the index count for the sloped side.
func (c *Cone) ElementCountSide() int { return 3 * (2*c.stacks - 1) * c.slices }

// ElementCount implements Shape. Disk triangles come first in the
// index buffer, then side triangles, so the two regions can be drawn
// separately as ranges of the one buffer.
func (c *Cone) ElementCount() int { return c.ElementCountDisk() + c.ElementCountSide() }

// VertexCountDisk returns the vertex count of the base disk region.
func (c *Cone) VertexCountDisk() int { return 1 + c.rings*c.slices }

// VertexCountSide returns the vertex count of the side region. With
// texture coordinates each slice column carries its own apex vertex and
// the seam column is duplicated; without them the apex and seam are
// shared.
func (c *Cone) VertexCountSide(withTexCoords bool) int {
	if withTexCoords {
		return c.slices + c.stacks*(c.slices+1)
	}
	return c.slices + c.stacks*c.slices
}

// VertexCount implements Shape.
func (c *Cone) VertexCount(withTexCoords bool) int {
	return c.VertexCountDisk() + c.VertexCountSide(withTexCoords)
}

// Generate implements Shape. It fills vbuf with interleaved vertex
// records per layout and ebuf with CCW triangle indices, disk region
// first. Both buffers must be pre-sized from VertexCount and
// ElementCount; undersized buffers panic before anything is written.
func (c *Cone) Generate(vbuf []float32, ebuf []uint32, layout VertexLayout) {
	layout.mustValid()
	withTex := layout.HasTexCoords()
	if need := c.VertexCount(withTex) * layout.Stride; len(vbuf) < need {
		panic(fmt.Sprintf("geom: vertex buffer holds %d floats, cone needs %d", len(vbuf), need))
	}
	if need := c.ElementCount(); len(ebuf) < need {
		panic(fmt.Sprintf("geom: index buffer holds %d entries, cone needs %d", len(ebuf), need))
	}

	c.generateVertices(vbuf, layout)
	c.generateIndices(ebuf, withTex)
}

func (c *Cone) generateVertices(vbuf []float32, layout VertexLayout) {
	withTex := layout.HasTexCoords()

	// Shared center of the base disk.
	c.putBaseVertex(vbuf, layout, 0, 0, 0, 0)

	// With texture coordinates the loop runs one extra column to emit
	// the duplicated seam at s=1.
	stop := c.slices - 1
	if withTex {
		stop = c.slices
	}
	for i := 0; i <= stop; i++ {
		// theta measures from the negative z-axis, counterclockwise
		// viewed from above.
		theta := float32(i%c.slices) * 2 * math32.Pi / float32(c.slices)
		s := -math32.Sin(theta)
		z := -math32.Cos(theta)

		if i < c.slices {
			for j := 1; j <= c.rings; j++ {
				radius := float32(j) / float32(c.rings)
				c.putBaseVertex(vbuf, layout, s*radius, z*radius, i, j)
			}
		}

		// Side column for this slice, base upward.
		col := (c.VertexCountDisk() + i*(c.stacks+1)) * layout.Stride
		sCoord := float32(i) / float32(c.slices) // exactly 1 on the seam column
		for j := 0; j < c.stacks; j++ {
			rec := vbuf[col+j*layout.Stride:]
			t := float32(j) / float32(c.stacks)
			taper := 1 - t
			rec[layout.PosOffset] = s * taper
			rec[layout.PosOffset+1] = t
			rec[layout.PosOffset+2] = z * taper
			if layout.HasNormals() {
				// Fixed 45-degree slope normal; the shader normalizes.
				// Only exact for the unit base-radius/unit-height cone.
				rec[layout.NormalOffset] = s * math32.Sqrt2
				rec[layout.NormalOffset+1] = math32.Sqrt2
				rec[layout.NormalOffset+2] = z * math32.Sqrt2
			}
			if withTex {
				rec[layout.TexCoordOffset] = sCoord
				rec[layout.TexCoordOffset+1] = t
			}
		}

		// Apex vertex finishing the column. The duplicated seam column
		// has no apex of its own.
		if i < c.slices {
			rec := vbuf[col+c.stacks*layout.Stride:]
			rec[layout.PosOffset] = 0
			rec[layout.PosOffset+1] = 1
			rec[layout.PosOffset+2] = 0
			if layout.HasNormals() {
				// Midway between the two adjacent slice boundaries, so
				// the tip shades seamlessly.
				thetaApex := float32(2*i+1) * math32.Pi / float32(c.slices)
				rec[layout.NormalOffset] = -math32.Sin(thetaApex) * math32.Sqrt2
				rec[layout.NormalOffset+1] = math32.Sqrt2
				rec[layout.NormalOffset+2] = -math32.Cos(thetaApex) * math32.Sqrt2
			}
			if withTex {
				// Apex maps to top center of the texture.
				rec[layout.TexCoordOffset] = 0.5
				rec[layout.TexCoordOffset+1] = 1
			}
		}
	}
}

// putBaseVertex writes disk vertex (i,j): slice i, ring j, where j==0
// is the shared center (i must be 0 there). The base faces downward.
func (c *Cone) putBaseVertex(vbuf []float32, layout VertexLayout, x, z float32, i, j int) {
	rec := vbuf[(i*c.rings+j)*layout.Stride:]
	rec[layout.PosOffset] = x
	rec[layout.PosOffset+1] = 0
	rec[layout.PosOffset+2] = z
	if layout.HasNormals() {
		rec[layout.NormalOffset] = 0
		rec[layout.NormalOffset+1] = -1
		rec[layout.NormalOffset+2] = 0
	}
	if layout.HasTexCoords() {
		rec[layout.TexCoordOffset] = 0.5 * (1 - x)
		rec[layout.TexCoordOffset+1] = 0.5 * (1 - z)
	}
}

func (c *Cone) generateIndices(ebuf []uint32, withTex bool) {
	k := 0

	// Disk: a fan from the center vertex out to ring 1, then split
	// quads between consecutive rings. CCW viewed from below, since the
	// base faces down.
	for i := 0; i < c.slices; i++ {
		r := uint32(i*c.rings + 1)
		rightR := uint32(((i+1)%c.slices)*c.rings + 1)
		ebuf[k] = 0
		ebuf[k+1] = rightR
		ebuf[k+2] = r
		k += 3
		for j := 0; j < c.rings-1; j++ {
			jj := uint32(j)
			ebuf[k] = r + jj
			ebuf[k+1] = rightR + jj
			ebuf[k+2] = rightR + jj + 1

			ebuf[k+3] = r + jj
			ebuf[k+4] = rightR + jj + 1
			ebuf[k+5] = r + jj + 1
			k += 6
		}
	}

	// Side: split quads up each slice strip; the final triangle of a
	// strip closes on the apex vertex. Without texture coordinates the
	// wrap at slice 0 shares vertices, so the right column index wraps
	// modulo slices; with them the duplicated seam column is addressed
	// directly.
	diskVerts := uint32(c.VertexCountDisk())
	for i := 0; i < c.slices; i++ {
		r := uint32(i*(c.stacks+1)) + diskVerts
		ii := (i + 1) % c.slices
		if withTex {
			ii = i + 1
		}
		rightR := uint32(ii*(c.stacks+1)) + diskVerts
		j := 0
		for ; j < c.stacks-1; j++ {
			jj := uint32(j)
			ebuf[k] = rightR + jj
			ebuf[k+1] = r + jj + 1
			ebuf[k+2] = r + jj

			ebuf[k+3] = rightR + jj
			ebuf[k+4] = rightR + jj + 1
			ebuf[k+5] = r + jj + 1
			k += 6
		}
		jj := uint32(j)
		ebuf[k] = rightR + jj
		ebuf[k+1] = r + jj + 1
		ebuf[k+2] = r + jj
		k += 3
	}
}
