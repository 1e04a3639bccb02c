package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"
)

// Texture holds CPU-side pixel data for a 2D texture.
// GLID is set by the OpenGL backend after upload; do not access directly.
type Texture struct {
	Name   string
	Width  int
	Height int
	// Pixels in RGBA8 format (4 bytes per pixel, row-major, top-to-bottom).
	Pixels []byte
	// GLID is the OpenGL texture object ID, set by opengl.UploadTexture.
	GLID uint32
}

// LoadTexture reads a PNG or JPEG file from disk and returns a CPU-side
// Texture. The image is converted to RGBA8 automatically.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}

	return &Texture{
		Name:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: rgba.Pix,
	}, nil
}

// NewSolidTexture creates a 1x1 texture with the given RGBA color values (0-255).
func NewSolidTexture(name string, r, g, b, a uint8) *Texture {
	return &Texture{
		Name:   name,
		Width:  1,
		Height: 1,
		Pixels: []byte{r, g, b, a},
	}
}

// textureRegistry maps tags to loaded textures so builders can reference
// textures by name without passing handles around.
var textureRegistry = struct {
	sync.RWMutex
	byTag map[string]*Texture
}{byTag: make(map[string]*Texture)}

// RegisterTexture stores a texture under a tag, replacing any previous
// registration.
func RegisterTexture(tag string, t *Texture) {
	textureRegistry.Lock()
	defer textureRegistry.Unlock()
	textureRegistry.byTag[tag] = t
}

// LoadAndRegisterTexture loads a file and registers it under the tag. When
// the file cannot be loaded the tag is bound to a solid fallback color so
// the scene still renders, and the error is returned for logging.
func LoadAndRegisterTexture(tag, path string, fallback [4]uint8) (*Texture, error) {
	t, err := LoadTexture(path)
	if err != nil {
		t = NewSolidTexture(tag, fallback[0], fallback[1], fallback[2], fallback[3])
		RegisterTexture(tag, t)
		return t, err
	}
	RegisterTexture(tag, t)
	return t, nil
}

// GetTexture returns the texture registered under tag, or nil.
func GetTexture(tag string) *Texture {
	textureRegistry.RLock()
	defer textureRegistry.RUnlock()
	return textureRegistry.byTag[tag]
}
