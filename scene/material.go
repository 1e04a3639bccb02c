package scene

import (
	"sync"

	"campsite-renderer/core"
)

// Material describes Phong surface properties for a mesh.
type Material struct {
	Name      string
	Albedo    core.Color // base diffuse color (multiplied with albedo texture if set)
	Specular  core.Color // specular highlight color
	Shininess float32    // shininess exponent (1-256+)
	Unlit     bool       // skip lighting, output raw albedo/texture color
	Additive  bool       // blend additively; drawn after opaque geometry, sorted back to front

	// Emissive adds self-illumination on top of the lit result. Scaled per
	// frame for effects such as firelight flicker.
	Emissive core.Color

	// UVScale tiles the albedo texture. Zero means no tiling (treated as 1).
	UVScale float32

	// Optional albedo texture; if set, it is multiplied with Albedo.
	// Upload via opengl.UploadTexture before rendering.
	AlbedoTexture *Texture
}

// DefaultMaterial returns a plain white matte material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Albedo:    core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}

// NewMaterial creates a material with the given albedo color.
func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:      name,
		Albedo:    albedo,
		Specular:  core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Shininess: 32,
	}
}

// NewUnlitMaterial creates a material that ignores scene lighting, for
// self-luminous surfaces such as flames and the moon.
func NewUnlitMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:   name,
		Albedo: albedo,
		Unlit:  true,
	}
}

// materialRegistry maps names to shared material instances so scene
// builders and animation code can reach the same material.
var materialRegistry = struct {
	sync.RWMutex
	byName map[string]*Material
}{byName: make(map[string]*Material)}

// RegisterMaterial stores a material under its name, replacing any
// previous registration.
func RegisterMaterial(m *Material) {
	materialRegistry.Lock()
	defer materialRegistry.Unlock()
	materialRegistry.byName[m.Name] = m
}

// GetMaterial returns the registered material, or nil.
func GetMaterial(name string) *Material {
	materialRegistry.RLock()
	defer materialRegistry.RUnlock()
	return materialRegistry.byName[name]
}
