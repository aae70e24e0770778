// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Mesh     MeshConfig     `yaml:"mesh"`
	Render   RenderConfig   `yaml:"render"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// MeshConfig holds the startup tessellation resolution. Values outside
// the valid ranges are clamped by the geometry layer, not rejected
// here.
type MeshConfig struct {
	Slices int `yaml:"slices"`
	Stacks int `yaml:"stacks"`
	Rings  int `yaml:"rings"`
}

// RenderConfig holds scene presentation settings.
type RenderConfig struct {
	ShowBase    bool    `yaml:"show_base"`
	ShowSide    bool    `yaml:"show_side"`
	Textured    bool    `yaml:"textured"`
	TexturePath string  `yaml:"texture_path"` // optional TGA; checkerboard when empty
	SpinSpeed   float32 `yaml:"spin_speed"`   // radians per second, 0 disables
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Mesh: MeshConfig{
			Slices: 32,
			Stacks: 8,
			Rings:  4,
		},
		Render: RenderConfig{
			ShowBase:  true,
			ShowSide:  true,
			Textured:  true,
			SpinSpeed: 0.5,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
