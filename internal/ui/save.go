package ui

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"

	"github.com/example/spinrect/internal/export"
)

func dialogPath(dir, _ string) (string, error) {
	p, err := dialog.File().Filter("PNG image", "png").Title("Save canvas").SetStartDir(dir).Save()
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(p), ".png") {
		p += ".png"
	}
	return p, nil
}

func fixedPath(dir, name string) (string, error) {
	return filepath.Join(dir, name), nil
}

// save writes the canvas area below the toolbar to a PNG.
func (g *Game) save() {
	now := g.clock.Now()
	path, err := g.choosePath(g.cfg.Export.Dir, export.Filename(now))
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		g.log.Error().Err(err).Msg("failed to choose export path")
		g.status = "save failed"
		return
	}

	scene := export.Scene{
		Width:      g.viewW,
		Height:     g.viewH - toolbarHeight,
		Background: g.cfg.Canvas.Background,
		Shapes:     g.surface.shapes(now, image.Pt(0, -toolbarHeight)),
	}
	if err := export.Save(path, scene); err != nil {
		g.log.Error().Err(err).Str("path", path).Msg("failed to save canvas")
		g.status = "save failed"
		return
	}
	g.log.Info().Str("path", path).Int("shapes", len(scene.Shapes)).Msg("canvas saved")
	g.status = fmt.Sprintf("saved %s", filepath.Base(path))
}
