package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Viewport width")
	flagHeight  = flag.Int("height", 0, "Viewport height")
	flagEuler   = flag.String("euler", "", "Euler order (xyz, xzy, yxz, yzx, zxy, zyx)")
	flagGeneral = flag.Bool("general", false, "Invert camera matrices with Gauss-Jordan")
	flagNoCull  = flag.Bool("nocull", false, "Disable frustum culling")
	flagShadows = flag.Bool("shadows", false, "Keep shadow casters outside the view")
	flagFormat  = flag.String("format", "", "Debug image format (png, webp)")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Viewport.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Viewport.Height = *flagHeight
	}
	if *flagEuler != "" {
		cfg.Math.EulerOrder = *flagEuler
	}
	if *flagGeneral {
		cfg.Math.GeneralInverse = true
	}
	if *flagNoCull {
		cfg.Culling.Enabled = false
	}
	if *flagShadows {
		cfg.Culling.ShadowCasters = true
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
}
