package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"campsite-renderer/math"
	"campsite-renderer/scene"
)

// Spark quads arrive from the CPU already in world space; the shader only
// projects them.
const sparkVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPos;
layout(location = 1) in vec2 inUV;
layout(location = 2) in vec4 inColor;

uniform mat4 viewProj;

out vec2 fragUV;
out vec4 fragColor;

void main() {
    gl_Position = viewProj * vec4(inPos, 1.0);
    fragUV      = inUV;
    fragColor   = inColor;
}
` + "\x00"

// Every spark is a procedural soft circle: alpha falls off quadratically
// from the quad centre, no texture involved.
const sparkFragSrc = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

void main() {
    float d  = length(fragUV - vec2(0.5)) * 2.0;
    vec4 col = fragColor;
    col.a   *= clamp(1.0 - d * d, 0.0, 1.0);
    outColor = col;
}
` + "\x00"

// floats per billboard vertex: position(3) + uv(2) + color(4).
const sparkVertFloats = 9

// sparkRenderer owns the GPU resources for the billboard spark pass. It is
// created lazily by Renderer.DrawParticles on first use.
type sparkRenderer struct {
	prog        uint32
	vao         uint32
	vbo         uint32
	viewProjLoc int32
	vboCap      int // current VBO capacity in vertices
}

func newSparkRenderer() (*sparkRenderer, error) {
	prog, err := newProgram(sparkVertSrc, sparkFragSrc)
	if err != nil {
		return nil, fmt.Errorf("spark shader: %w", err)
	}

	sr := &sparkRenderer{
		prog:        prog,
		viewProjLoc: gl.GetUniformLocation(prog, gl.Str("viewProj\x00")),
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.GenBuffers(1, &sr.vbo)

	gl.BindVertexArray(sr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)

	stride := int32(sparkVertFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(12))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, gl.PtrOffset(20))
	gl.BindVertexArray(0)

	return sr, nil
}

// billboardCorners maps the six triangle vertices of a quad to corner
// signs and UVs: two triangles, counter-clockwise.
var billboardCorners = [6]struct {
	sx, sy float32 // sign of the right/up offset
	u, v   float32
}{
	{-1, +1, 0, 1}, {+1, +1, 1, 1}, {+1, -1, 1, 0},
	{-1, +1, 0, 1}, {+1, -1, 1, 0}, {-1, -1, 0, 0},
}

// draw renders the emitter's live particles as camera-facing billboards.
// The camera basis comes out of the view matrix: in the [col][row] layout
// right is (view[0][0], view[1][0], view[2][0]) and up the next row down.
func (sr *sparkRenderer) draw(emitter *scene.ParticleEmitter, view, proj math.Mat4) {
	n := len(emitter.Particles)
	if n == 0 {
		return
	}

	camRight := math.Vec3{X: view[0][0], Y: view[1][0], Z: view[2][0]}
	camUp := math.Vec3{X: view[0][1], Y: view[1][1], Z: view[2][1]}

	buf := make([]float32, 0, n*len(billboardCorners)*sparkVertFloats)
	for i := range emitter.Particles {
		p := &emitter.Particles[i]
		r := camRight.Scale(p.Size)
		u := camUp.Scale(p.Size)

		for _, c := range billboardCorners {
			pos := p.Position.Add(r.Scale(c.sx)).Add(u.Scale(c.sy))
			buf = append(buf,
				pos.X, pos.Y, pos.Z,
				c.u, c.v,
				p.Color.R, p.Color.G, p.Color.B, p.Color.A,
			)
		}
	}

	// Grow the VBO only when the particle count exceeds past peaks.
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	vertCount := n * len(billboardCorners)
	if vertCount > sr.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.DYNAMIC_DRAW)
		sr.vboCap = vertCount
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	// Additive for fire sparks, standard alpha for smoke. Depth is tested
	// against the scene but never written.
	if emitter.BlendMode == scene.BlendAdditive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	}
	gl.DepthMask(false)

	vp := view.Mul(proj)
	gl.UseProgram(sr.prog)
	gl.UniformMatrix4fv(sr.viewProjLoc, 1, false, (*float32)(unsafe.Pointer(&vp[0][0])))

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(vertCount))
	gl.BindVertexArray(0)

	// The mesh pass keeps blending enabled with standard alpha.
	gl.DepthMask(true)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (sr *sparkRenderer) destroy() {
	gl.DeleteVertexArrays(1, &sr.vao)
	gl.DeleteBuffers(1, &sr.vbo)
	gl.DeleteProgram(sr.prog)
}
