package config

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/example/spinrect/internal/logging"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	if config.Window.Width <= 0 || config.Window.Height <= 0 {
		validationErrors = append(validationErrors, "window.width and window.height must be positive")
	}

	if _, err := colorful.Hex(config.Canvas.Background); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("canvas.background must be a #RRGGBB color (got: %s)", config.Canvas.Background))
	}

	if config.Rotation.Duration <= 0 {
		validationErrors = append(validationErrors, "rotation.duration must be positive")
	}
	if config.Rotation.Degrees == 0 {
		validationErrors = append(validationErrors, "rotation.degrees cannot be zero")
	}

	if config.Input.DoubleClickInterval <= 0 {
		validationErrors = append(validationErrors, "input.double_click_interval must be positive")
	}
	if config.Input.DoubleClickDistance < 0 {
		validationErrors = append(validationErrors, "input.double_click_distance must be non-negative")
	}

	if !config.Export.UseDialog && config.Export.Dir == "" {
		validationErrors = append(validationErrors, "export.dir cannot be empty when export.use_dialog is false")
	}

	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}
