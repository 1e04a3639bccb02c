package main

import (
	"fmt"
	"time"

	"campsite-renderer/campsite"
	"campsite-renderer/core"
	"campsite-renderer/math"
	"campsite-renderer/picking"
	"campsite-renderer/renderer"
	"campsite-renderer/scene"
)

const configPath = "campsite.toml"

// mouseState tracks cursor deltas for the look controls. The first sample
// after capture is swallowed so the camera does not jump.
type mouseState struct {
	lastX, lastY float64
	firstMouse   bool
}

func main() {
	fmt.Println("Starting campsite...")

	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}

	window, err := core.NewWindow(cfg.WindowConfig())
	if err != nil {
		fmt.Printf("Failed to create window: %v\n", err)
		return
	}
	defer window.Destroy()

	renderEngine, err := renderer.NewRenderEngine(window)
	if err != nil {
		fmt.Printf("Failed to create render engine: %v\n", err)
		return
	}
	defer renderEngine.Destroy()

	// Textures load before the builders run so material lookups resolve.
	for _, terr := range campsite.LoadTextures() {
		fmt.Printf("Texture warning: %v\n", terr)
	}

	site := campsite.Build()
	s := site.Scene

	// optional extra prop from the config, e.g. a scanned lantern model
	if cfg.Scene.PropPath != "" {
		res, err := scene.LoadGLTF(cfg.Scene.PropPath)
		if err != nil {
			fmt.Printf("Prop load failed: %v\n", err)
		} else {
			for _, root := range res.Roots {
				s.AddNode(root)
			}
			for _, tex := range res.Textures {
				if err := renderEngine.UploadTexture(tex); err != nil {
					fmt.Printf("Prop texture upload: %v\n", err)
				}
			}
		}
	}

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	camera := scene.NewCamera(math.Vec3{X: 0, Y: 5, Z: 12}, aspect)
	camera.Zoom = cfg.Camera.FOV
	camera.MovementSpeed = cfg.Camera.MoveSpeed
	camera.MouseSensitivity = cfg.Camera.Sensitivity
	s.Camera = camera

	renderEngine.SetScene(s)

	// Upload every registered scene texture now that GL is live.
	uploadTextures(renderEngine)

	anim := campsite.NewAnimator(site.Fire)

	mouse := &mouseState{firstMouse: true}
	window.SetCursorPosCallback(func(x, y float64) {
		if mouse.firstMouse {
			mouse.lastX, mouse.lastY = x, y
			mouse.firstMouse = false
			return
		}
		dx := float32(x - mouse.lastX)
		dy := float32(mouse.lastY - y)
		mouse.lastX, mouse.lastY = x, y
		if camera.Perspective {
			camera.ProcessMouseMovement(dx, dy)
		}
	})

	window.SetScrollCallback(func(_, yoff float64) {
		camera.ProcessMouseScroll(float32(yoff))
	})

	// Left click picks the object under the cursor and outlines it.
	window.SetMouseButtonCallback(func(button int) {
		if button != core.MouseButtonLeft {
			return
		}
		mx, my := window.GetCursorPos()
		w, h := window.GetFramebufferSize()
		if w == 0 || h == 0 {
			return
		}
		ray := picking.ScreenToRay(
			float32(mx), float32(my),
			float32(w), float32(h),
			camera.GetProjectionMatrix(), camera.GetViewMatrix(),
			camera.Position,
		)
		id := picking.PickFrom(ray, site)
		if id == picking.NoHit {
			renderEngine.ClearHighlight()
			fmt.Println("[Pick] nothing")
			return
		}
		if box, ok := site.BoundsFor(id); ok {
			renderEngine.SetHighlight(id, box)
		}
		fmt.Printf("[Pick] %s\n", campsite.ObjectName(id))
	})

	fmt.Println("===========================================")
	fmt.Println("  Campsite")
	fmt.Println("===========================================")
	fmt.Println("")
	fmt.Println("CONTROLS:")
	fmt.Println("  W / A / S / D   - Move")
	fmt.Println("  Q / E           - Down / up")
	fmt.Println("  Mouse           - Look around")
	fmt.Println("  Scroll          - Adjust movement speed")
	fmt.Println("  O               - Top-down orthographic view")
	fmt.Println("  P               - Perspective view")
	fmt.Println("  Left click      - Pick an object")
	fmt.Println("  ESC             - Quit")
	fmt.Println("===========================================")
	fmt.Println("")

	orthoKeyWasDown := false
	perspKeyWasDown := false

	frameCount := 0
	titleTime := time.Now()
	prevFrame := time.Now()
	deltaTime := float32(0.016)

	for !window.ShouldClose() {
		window.PollEvents()

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		// O snaps to the top-down orthographic layout view
		oDown := window.IsKeyPressed(core.KeyO)
		if oDown && !orthoKeyWasDown && camera.Perspective {
			camera.SetPerspective(false)
			camera.Position = math.Vec3{X: 0, Y: 9, Z: 0.01}
			camera.Front = math.Vec3Down
			camera.Up = math.Vec3{X: 0, Y: 0, Z: -1}
			fmt.Println("[View] orthographic")
		}
		orthoKeyWasDown = oDown

		// P returns to the free perspective camera
		pDown := window.IsKeyPressed(core.KeyP)
		if pDown && !perspKeyWasDown && !camera.Perspective {
			camera.SetPerspective(true)
			camera.Position = math.Vec3{X: 0, Y: 5, Z: 12}
			fmt.Println("[View] perspective")
		}
		perspKeyWasDown = pDown

		if camera.Perspective {
			if window.IsKeyPressed(core.KeyW) {
				camera.ProcessKeyboard(scene.MoveForward, deltaTime)
			}
			if window.IsKeyPressed(core.KeyS) {
				camera.ProcessKeyboard(scene.MoveBackward, deltaTime)
			}
			if window.IsKeyPressed(core.KeyA) {
				camera.ProcessKeyboard(scene.MoveLeft, deltaTime)
			}
			if window.IsKeyPressed(core.KeyD) {
				camera.ProcessKeyboard(scene.MoveRight, deltaTime)
			}
			if window.IsKeyPressed(core.KeyE) {
				camera.ProcessKeyboard(scene.MoveUp, deltaTime)
			}
			if window.IsKeyPressed(core.KeyQ) {
				camera.ProcessKeyboard(scene.MoveDown, deltaTime)
			}
		}

		anim.Update(deltaTime)
		s.Update(deltaTime)

		if err := renderEngine.Render(); err != nil {
			w, h := window.GetFramebufferSize()
			if w > 0 && h > 0 {
				renderEngine.Resize(uint32(w), uint32(h))
			}
		}

		renderEngine.Present()

		frameCount++
		now := time.Now()
		deltaTime = float32(now.Sub(prevFrame).Seconds())
		prevFrame = now
		// cap so hitches do not fling the camera or the fire
		if deltaTime > 0.05 {
			deltaTime = 0.05
		}

		if now.Sub(titleTime).Seconds() >= 1.0 {
			window.SetTitle(fmt.Sprintf("%s | FPS: %d | (%.1f, %.1f, %.1f)",
				cfg.Window.Title, frameCount,
				camera.Position.X, camera.Position.Y, camera.Position.Z))
			frameCount = 0
			titleTime = now
		}
	}

	fmt.Println("Exiting...")
}

// uploadTextures pushes every registered texture to the GPU once.
func uploadTextures(re *renderer.RenderEngine) {
	for _, tag := range []string{
		"grass", "bark", "granite", "moon", "canvas", "canvas2",
		"pebblestone", "rope", "pine-needle", "tan-leather",
	} {
		tex := scene.GetTexture(tag)
		if tex == nil {
			continue
		}
		if err := re.UploadTexture(tex); err != nil {
			fmt.Printf("Texture upload %s: %v\n", tag, err)
		}
	}
}
