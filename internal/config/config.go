// Package config handles tool configuration loading and management.
package config

// Config holds all settings shared by the math tools.
type Config struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Math     MathConfig     `yaml:"math"`
	Culling  CullingConfig  `yaml:"culling"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewportConfig holds the size of the virtual screen used for projection and picking.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MathConfig holds numeric policy settings.
type MathConfig struct {
	EulerOrder string `yaml:"euler_order"` // Order used when printing and parsing Euler angles
	// GeneralInverse makes cameras invert their world matrix with the
	// pivoting solver instead of the cofactor fast path.
	GeneralInverse bool `yaml:"general_inverse"`
}

// CullingConfig holds frustum culling settings.
type CullingConfig struct {
	Enabled bool `yaml:"enabled"`
	// ShadowCasters additionally keeps objects that are outside the view but
	// inside the directional light's shadow volume.
	ShadowCasters  bool       `yaml:"shadow_casters"`
	LightDirection [3]float64 `yaml:"light_direction"`
}

// OutputConfig holds debug image settings.
type OutputConfig struct {
	Format      string `yaml:"format"` // png or webp
	ImageSize   int    `yaml:"image_size"`
	Supersample int    `yaml:"supersample"`
	Labels      bool   `yaml:"labels"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewport: ViewportConfig{
			Width:  1280,
			Height: 720,
		},
		Math: MathConfig{
			EulerOrder:     "zxy",
			GeneralInverse: false,
		},
		Culling: CullingConfig{
			Enabled:        true,
			ShadowCasters:  false,
			LightDirection: [3]float64{-0.5, -1, -0.3},
		},
		Output: OutputConfig{
			Format:      "png",
			ImageSize:   512,
			Supersample: 2,
			Labels:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
