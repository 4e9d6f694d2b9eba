package config

import (
	"time"

	"github.com/spf13/viper"
)

// Default configuration constants
const (
	defaultWindowWidth         = 1280
	defaultWindowHeight        = 720
	defaultRotationDuration    = 3 * time.Second
	defaultRotationDegrees     = 360.0
	defaultDoubleClickInterval = 400 * time.Millisecond
	defaultDoubleClickDistance = 5 // px
)

// DefaultConfig returns the default configuration values for spinrect.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     defaultWindowWidth,
			Height:    defaultWindowHeight,
			Title:     appName,
			Resizable: true,
		},
		Canvas: CanvasConfig{
			Background: "#000000",
		},
		Rotation: RotationConfig{
			Duration: defaultRotationDuration,
			Degrees:  defaultRotationDegrees,
		},
		Input: InputConfig{
			DoubleClickInterval: defaultDoubleClickInterval,
			DoubleClickDistance: defaultDoubleClickDistance,
		},
		Export: ExportConfig{
			Dir:       ".",
			UseDialog: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.resizable", d.Window.Resizable)

	v.SetDefault("canvas.background", d.Canvas.Background)

	v.SetDefault("rotation.duration", d.Rotation.Duration)
	v.SetDefault("rotation.degrees", d.Rotation.Degrees)

	v.SetDefault("input.double_click_interval", d.Input.DoubleClickInterval)
	v.SetDefault("input.double_click_distance", d.Input.DoubleClickDistance)

	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("export.use_dialog", d.Export.UseDialog)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
