// Package export renders canvas snapshots to PNG without a display.
package export

import (
	"fmt"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
)

// Shape is one rectangle as it appears on screen.
type Shape struct {
	Bounds image.Rectangle
	Color  string
	// Angle is the current rotation in degrees, clockwise about the center.
	Angle float64
}

// Scene is everything needed to reproduce a frame.
type Scene struct {
	Width      int
	Height     int
	Background string
	Shapes     []Shape
}

// Render rasterizes the scene in shape order.
func Render(s Scene) (image.Image, error) {
	dc, err := draw(s)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// Encode renders the scene and writes it to w as PNG.
func Encode(w io.Writer, s Scene) error {
	dc, err := draw(s)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// draw returns a context holding the rasterized scene. The caller closes it.
func draw(s Scene) (*gg.Context, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", s.Width, s.Height)
	}

	dc := gg.NewContext(s.Width, s.Height)
	dc.ClearWithColor(gg.Hex(s.Background))

	for _, sh := range s.Shapes {
		if sh.Bounds.Empty() {
			continue
		}
		cx := float64(sh.Bounds.Min.X) + float64(sh.Bounds.Dx())/2
		cy := float64(sh.Bounds.Min.Y) + float64(sh.Bounds.Dy())/2

		dc.Push()
		if sh.Angle != 0 {
			dc.RotateAbout(sh.Angle*math.Pi/180, cx, cy)
		}
		dc.DrawRectangle(float64(sh.Bounds.Min.X), float64(sh.Bounds.Min.Y), float64(sh.Bounds.Dx()), float64(sh.Bounds.Dy()))
		dc.SetHexColor(sh.Color)
		err := dc.Fill()
		dc.Pop()
		if err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to fill shape: %w", err)
		}
	}
	return dc, nil
}

// Save writes the scene to path, creating parent directories.
func Save(path string, s Scene) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(f, s); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}

// Filename returns the default snapshot name for t.
func Filename(t time.Time) string {
	return fmt.Sprintf("spinrect_%s.png", t.Format("20060102_150405"))
}
