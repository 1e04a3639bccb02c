package scene

import (
	"campsite-renderer/core"
	"campsite-renderer/math"
)

// Scene manages a collection of nodes, lights and the active camera.
type Scene struct {
	Root     *Node
	Camera   *Camera
	Lights   []*Light
	Emitters []*ParticleEmitter
	Ambient  core.Color
	SkyColor core.Color
}

// Light types
const (
	LightTypeDirectional = iota
	LightTypePoint
)

// Light represents a light source. Point lights attenuate with distance
// using the constant/linear/quadratic model.
type Light struct {
	Type      int
	Position  math.Vec3
	Direction math.Vec3
	Color     core.Color
	Intensity float32

	// Attenuation coefficients, point lights only.
	Constant  float32
	Linear    float32
	Quadratic float32
}

// NewPointLight builds a point light with moderate-range falloff.
func NewPointLight(position math.Vec3, color core.Color, intensity float32) *Light {
	return &Light{
		Type:      LightTypePoint,
		Position:  position,
		Color:     color,
		Intensity: intensity,
		Constant:  1.0,
		Linear:    0.07,
		Quadratic: 0.017,
	}
}

// NewDirectionalLight builds a directional light shining along direction.
func NewDirectionalLight(direction math.Vec3, color core.Color, intensity float32) *Light {
	return &Light{
		Type:      LightTypeDirectional,
		Direction: direction.Normalize(),
		Color:     color,
		Intensity: intensity,
	}
}

func NewScene() *Scene {
	return &Scene{
		Root:     NewNode("Root"),
		Lights:   make([]*Light, 0),
		Ambient:  core.Color{R: 0.08, G: 0.09, B: 0.14, A: 1.0},
		SkyColor: core.Color{R: 0.02, G: 0.03, B: 0.08, A: 1.0},
	}
}

func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

func (s *Scene) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *Scene) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

func (s *Scene) AddLight(light *Light) {
	s.Lights = append(s.Lights, light)
}

func (s *Scene) RemoveLight(light *Light) {
	for i, l := range s.Lights {
		if l == light {
			s.Lights = append(s.Lights[:i], s.Lights[i+1:]...)
			return
		}
	}
}

func (s *Scene) AddEmitter(e *ParticleEmitter) {
	s.Emitters = append(s.Emitters, e)
}

// Update advances particle emitters. Node animation is driven externally.
func (s *Scene) Update(deltaTime float32) {
	for _, e := range s.Emitters {
		e.Update(deltaTime)
	}
}

// GetVisibleNodes returns all nodes with meshes that are visible.
func (s *Scene) GetVisibleNodes() []*Node {
	var visible []*Node

	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			visible = append(visible, node)
		}
	})

	return visible
}
