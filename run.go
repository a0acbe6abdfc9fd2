package spritecut

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// Run opens a resizable window and runs the editor until the window is
// closed or the editor quits. The editor is closed on return.
func Run(e *Editor, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.Title == "" {
		cfg.Title = "spritecut"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	e.live = true
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return errors.Join(err, e.Close())
}
