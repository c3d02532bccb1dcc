//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BillboardBatchMax bounds how many point sprites (ring particles + live
// explosions) the streaming billboard buffer accepts in a single frame.
const BillboardBatchMax = 20000

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer owns the two GL programs needed to draw the scene: a lit model
// program for ships and planetoids, and a streaming billboard program for
// ring particles and explosion flashes. Both are thin opaque-handle
// adapters: World owns no GL state, it is translated into draw calls here.
type Renderer struct {
	modelProg      uint32
	modelUModel    int32
	modelUVP       int32
	modelUTint     int32
	modelULightDir int32
	modelUAmbient  int32

	billboardProg     uint32
	billboardVAO      uint32
	billboardVBO      uint32
	billboardUVP      int32
	billboardUVpHeight int32

	meshes map[string]*meshHandle

	lastTint    RGB
	hasLastTint bool
}

type meshHandle struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func NewRenderer() (*Renderer, error) {
	modelProg, err := linkProgram(modelVertSrc, modelFragSrc)
	if err != nil {
		return nil, fmt.Errorf("model program: %w", err)
	}
	billboardProg, err := linkProgram(billboardVertSrc, billboardFragSrc)
	if err != nil {
		gl.DeleteProgram(modelProg)
		return nil, fmt.Errorf("billboard program: %w", err)
	}

	r := &Renderer{
		modelProg:     modelProg,
		billboardProg: billboardProg,
		meshes:        make(map[string]*meshHandle),
	}

	gl.UseProgram(modelProg)
	r.modelUModel = gl.GetUniformLocation(modelProg, gl.Str("uModel\x00"))
	r.modelUVP = gl.GetUniformLocation(modelProg, gl.Str("uViewProj\x00"))
	r.modelUTint = gl.GetUniformLocation(modelProg, gl.Str("uTint\x00"))
	r.modelULightDir = gl.GetUniformLocation(modelProg, gl.Str("uLightDir\x00"))
	r.modelUAmbient = gl.GetUniformLocation(modelProg, gl.Str("uAmbient\x00"))
	gl.Uniform1f(r.modelUAmbient, 0.25)

	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)

	stride := int32(8 * 4) // x,y,z, radius, r,g,b,a
	gl.BufferData(gl.ARRAY_BUFFER, BillboardBatchMax*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.billboardVAO = bVAO
	r.billboardVBO = bVBO

	gl.UseProgram(billboardProg)
	r.billboardUVP = gl.GetUniformLocation(billboardProg, gl.Str("uViewProj\x00"))
	r.billboardUVpHeight = gl.GetUniformLocation(billboardProg, gl.Str("uViewportHeight\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, m := range r.meshes {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	gl.DeleteBuffers(1, &r.billboardVBO)
	gl.DeleteVertexArrays(1, &r.billboardVAO)
	gl.DeleteProgram(r.modelProg)
	gl.DeleteProgram(r.billboardProg)
}

// LoadMesh registers (or replaces) the geometry addressed by name, to be
// referenced by later DrawModel calls. vertices are interleaved
// position+normal floats; indices are triangle-list indices.
func (r *Renderer) LoadMesh(name string, vertices []float32, indices []uint32) {
	if old, ok := r.meshes[name]; ok {
		gl.DeleteBuffers(1, &old.vbo)
		gl.DeleteBuffers(1, &old.ebo)
		gl.DeleteVertexArrays(1, &old.vao)
	}

	var vao, vbo, ebo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.GenBuffers(1, &ebo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)

	r.meshes[name] = &meshHandle{vao: vao, vbo: vbo, ebo: ebo, indexCount: int32(len(indices))}
}

// BeginFrame clears the framebuffer and binds the model program for the
// scene's static-mesh pass.
func (r *Renderer) BeginFrame(fbW, fbH int, viewProj Mat4, lightDir Vector3) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Enable(gl.DEPTH_TEST)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.modelProg)
	gl.UniformMatrix4fv(r.modelUVP, 1, false, &viewProj[0])
	gl.Uniform3f(r.modelULightDir, float32(lightDir.X), float32(lightDir.Y), float32(lightDir.Z))
}

// DrawModel draws the named mesh with the given model matrix and flat tint.
func (r *Renderer) DrawModel(name string, model Mat4, tint RGB) {
	m, ok := r.meshes[name]
	if !ok {
		return
	}
	gl.UniformMatrix4fv(r.modelUModel, 1, false, &model[0])
	if !r.hasLastTint || !rgbEq(r.lastTint, tint) {
		gl.Uniform3f(r.modelUTint, float32(tint.R)/255, float32(tint.G)/255, float32(tint.B)/255)
		r.lastTint = tint
		r.hasLastTint = true
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, glOffset(0))
}

// BillboardVertex is one streamed point-sprite instance: world position,
// world-space radius, and an RGBA tint in [0,1].
type BillboardVertex struct {
	Position     Vector3
	Radius       float64
	R, G, B, A   float64
}

// DrawBillboards streams verts to the billboard program and issues one
// point-sprite draw call, used for both ring particles and explosion
// flashes each frame.
func (r *Renderer) DrawBillboards(verts []BillboardVertex, viewProj Mat4, viewportHeight float32) {
	if len(verts) == 0 {
		return
	}
	if len(verts) > BillboardBatchMax {
		verts = verts[:BillboardBatchMax]
	}

	buf := make([]float32, 0, len(verts)*8)
	for _, v := range verts {
		buf = append(buf,
			float32(v.Position.X), float32(v.Position.Y), float32(v.Position.Z),
			float32(v.Radius),
			float32(v.R), float32(v.G), float32(v.B), float32(v.A),
		)
	}

	gl.UseProgram(r.billboardProg)
	gl.UniformMatrix4fv(r.billboardUVP, 1, false, &viewProj[0])
	gl.Uniform1f(r.billboardUVpHeight, viewportHeight)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(r.billboardVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.billboardVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(len(verts)))

	gl.Disable(gl.BLEND)
}
