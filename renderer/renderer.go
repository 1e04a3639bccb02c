package renderer

import (
	"fmt"
	"sort"

	"campsite-renderer/core"
	"campsite-renderer/internal/opengl"
	"campsite-renderer/math"
	"campsite-renderer/picking"
	"campsite-renderer/scene"
)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
// Each frame it draws the opaque scene front to back of the graph order,
// then the additive glow geometry sorted back to front, then particles and
// finally the selection highlight.
type RenderEngine struct {
	gl             *opengl.Renderer
	window         *core.Window
	Scene          *scene.Scene
	FrustumCulling bool

	// Highlighted is the current pick result; picking.NoHit disables the
	// highlight box.
	Highlighted   int
	highlightBox  picking.AABB
	highlightMesh *scene.Mesh

	// Per-frame stats (populated during Render)
	lastObjects   int
	lastVertices  int
	lastTriangles int
	lastCulled    int
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	glRenderer.SetViewport(window.Width, window.Height)

	fmt.Println("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:             glRenderer,
		window:         window,
		FrustumCulling: true,
		Highlighted:    picking.NoHit,
	}, nil
}

func (re *RenderEngine) SetScene(s *scene.Scene) {
	re.Scene = s
}

// SetHighlight sets the object whose bounds get the wireframe outline.
// Pass picking.NoHit to clear.
func (re *RenderEngine) SetHighlight(id int, box picking.AABB) {
	re.Highlighted = id
	re.highlightBox = box
}

// ClearHighlight removes the selection outline.
func (re *RenderEngine) ClearHighlight() {
	re.Highlighted = picking.NoHit
}

func (re *RenderEngine) Render() error {
	if re.Scene == nil || re.Scene.Camera == nil {
		return fmt.Errorf("no scene or camera")
	}

	cam := re.Scene.Camera
	proj := cam.GetProjectionMatrix()
	view := cam.GetViewMatrix()

	re.gl.BeginFrame(
		re.Scene.SkyColor,
		re.Scene.Lights,
		re.Scene.Ambient,
		cam.Position,
	)

	frustum := scene.FrustumFromVP(cam.GetViewProjectionMatrix())

	objects, vertices, triangles, culled := 0, 0, 0, 0

	// additive geometry is deferred and depth sorted
	type deferredDraw struct {
		node  *scene.Node
		model math.Mat4
		depth float32
	}
	var additive []deferredDraw

	for _, node := range re.Scene.GetVisibleNodes() {
		if node.Mesh == nil {
			continue
		}
		if node.HideInOrtho && !cam.Perspective {
			continue
		}

		model := node.GetWorldMatrix()

		if re.FrustumCulling {
			aabb := scene.ComputeAABB(node.Mesh, model)
			if !aabb.IntersectsFrustum(&frustum) {
				culled++
				continue
			}
		}

		if mat := node.Mesh.Material; mat != nil && mat.Additive {
			// column 3 holds the world translation in [col][row] layout
			pos := math.Vec3{X: model[3][0], Y: model[3][1], Z: model[3][2]}
			additive = append(additive, deferredDraw{
				node:  node,
				model: model,
				depth: pos.Sub(cam.Position).LengthSqr(),
			})
			continue
		}

		mvp := model.Mul(view).Mul(proj)
		re.gl.DrawMesh(node.Mesh, mvp, model)

		objects++
		vertices += len(node.Mesh.Vertices)
		triangles += len(node.Mesh.Indices) / 3
	}

	// back to front so nearer glow layers composite over farther ones
	sort.Slice(additive, func(i, j int) bool {
		return additive[i].depth > additive[j].depth
	})
	for _, d := range additive {
		mvp := d.model.Mul(view).Mul(proj)
		re.gl.DrawMesh(d.node.Mesh, mvp, d.model)

		objects++
		vertices += len(d.node.Mesh.Vertices)
		triangles += len(d.node.Mesh.Indices) / 3
	}

	re.lastObjects = objects
	re.lastVertices = vertices
	re.lastTriangles = triangles
	re.lastCulled = culled

	for _, emitter := range re.Scene.Emitters {
		re.gl.DrawParticles(emitter, view, proj)
	}

	if re.Highlighted != picking.NoHit {
		re.drawHighlight(view, proj)
	}

	return nil
}

// Present swaps buffers. Call after Render() and any extra draw passes.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height uint32) {
	re.gl.SetViewport(int(width), int(height))
	if re.Scene != nil && re.Scene.Camera != nil {
		re.Scene.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

// DrawParticles renders one emitter outside the normal scene pass.
func (re *RenderEngine) DrawParticles(emitter *scene.ParticleEmitter) {
	if re.Scene == nil || re.Scene.Camera == nil || emitter == nil {
		return
	}
	view := re.Scene.Camera.GetViewMatrix()
	proj := re.Scene.Camera.GetProjectionMatrix()
	re.gl.DrawParticles(emitter, view, proj)
}

// SetWireframe toggles wireframe rendering mode on/off.
func (re *RenderEngine) SetWireframe(enabled bool) {
	re.gl.SetWireframe(enabled)
}

// IsWireframe returns whether wireframe mode is currently active.
func (re *RenderEngine) IsWireframe() bool {
	return re.gl.IsWireframe()
}

// UploadTexture uploads a texture to the GPU. Must be called from the main thread.
func (re *RenderEngine) UploadTexture(tex *scene.Texture) error {
	return opengl.UploadTexture(tex)
}

// DeleteTexture frees a previously uploaded GPU texture.
func (re *RenderEngine) DeleteTexture(tex *scene.Texture) {
	opengl.DeleteTexture(tex)
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// DrawStats returns stats from the most recent Render call.
func (re *RenderEngine) DrawStats() (objects, vertices, triangles, culled int) {
	return re.lastObjects, re.lastVertices, re.lastTriangles, re.lastCulled
}

// drawHighlight outlines the picked object with a wireframe box stretched
// over its world bounds. The unit box mesh is created lazily on first call.
func (re *RenderEngine) drawHighlight(view, proj math.Mat4) {
	if re.highlightMesh == nil {
		re.highlightMesh = scene.CreateWireBox()
		re.highlightMesh.Material = scene.NewUnlitMaterial("highlight", core.ColorYellow)
	}

	box := re.highlightBox
	cx := (box.Min.X + box.Max.X) * 0.5
	cy := (box.Min.Y + box.Max.Y) * 0.5
	cz := (box.Min.Z + box.Max.Z) * 0.5
	sx := box.Max.X - box.Min.X
	sy := box.Max.Y - box.Min.Y
	sz := box.Max.Z - box.Min.Z

	// scale on the diagonal, translation in column 3 ([col][row] layout)
	model := math.Mat4Identity()
	model[0][0] = sx
	model[1][1] = sy
	model[2][2] = sz
	model[3][0] = cx
	model[3][1] = cy
	model[3][2] = cz

	mvp := model.Mul(view).Mul(proj)
	re.gl.DrawMesh(re.highlightMesh, mvp, model)
}
