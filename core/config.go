package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration, loaded from a TOML file.
type Config struct {
	Window WindowSettings `toml:"window"`
	Camera CameraSettings `toml:"camera"`
	Scene  SceneSettings  `toml:"scene"`
}

type WindowSettings struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	VSync      bool   `toml:"vsync"`
	Fullscreen bool   `toml:"fullscreen"`
}

type CameraSettings struct {
	FOV         float32 `toml:"fov"`
	MoveSpeed   float32 `toml:"move_speed"`
	Sensitivity float32 `toml:"sensitivity"`
}

type SceneSettings struct {
	// PropPath optionally names a glTF file to load as an extra prop.
	PropPath string `toml:"prop_path"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowSettings{
			Width:  1280,
			Height: 720,
			Title:  "Campsite",
			VSync:  true,
		},
		Camera: CameraSettings{
			FOV:         80,
			MoveSpeed:   20,
			Sensitivity: 0.1,
		},
	}
}

// LoadConfig reads a TOML config file, falling back to defaults when the
// file does not exist. A malformed file is an error, not a silent default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config %s: window size must be positive", path)
	}
	if cfg.Camera.FOV <= 0 || cfg.Camera.FOV >= 180 {
		return cfg, fmt.Errorf("config %s: fov must be in (0, 180)", path)
	}

	return cfg, nil
}

func (c Config) WindowConfig() WindowConfig {
	return WindowConfig{
		Width:         c.Window.Width,
		Height:        c.Window.Height,
		Title:         c.Window.Title,
		Resizable:     true,
		VSync:         c.Window.VSync,
		Fullscreen:    c.Window.Fullscreen,
		CaptureCursor: true,
	}
}
