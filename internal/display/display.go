// SPDX-License-Identifier: MIT
/*
Package display runs the window and the render loop.

Each frame the viewer loads the shared state cell once, copies the selected
bank buffer into its persistent frame buffer (bounds- and length-checked),
and presents it. The render path never blocks on the audio path; it only ever
sees whatever index was last published.
*/
package display

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"audiovis/internal/config"
	"audiovis/internal/imagebank"
	"audiovis/internal/state"
)

// Viewer implements ebiten.Game. It owns a persistent frame buffer so that a
// skipped copy (out-of-range index or length mismatch) leaves the previous
// frame on screen rather than clearing it.
type Viewer struct {
	width  int
	height int

	cell *state.Cell
	bank *imagebank.Bank

	frame      []byte
	fullscreen bool
}

// NewViewer builds a viewer presenting bank frames at the bank's resolution.
func NewViewer(cell *state.Cell, bank *imagebank.Bank, fullscreen bool) *Viewer {
	return &Viewer{
		width:      bank.Width(),
		height:     bank.Height(),
		cell:       cell,
		bank:       bank,
		frame:      make([]byte, bank.Width()*bank.Height()*4),
		fullscreen: fullscreen,
	}
}

// Update handles input: ESC or a close request ends the loop, F toggles
// borderless fullscreen.
func (v *Viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		v.fullscreen = !v.fullscreen
		ebiten.SetFullscreen(v.fullscreen)
	}
	return nil
}

// Draw reads the current visual state index once and presents the matching
// bank buffer. Runs on every frame tick; the windowing layer scales the
// logical frame to the actual window size.
func (v *Viewer) Draw(screen *ebiten.Image) {
	index := v.cell.Load()
	composeFrame(v.frame, v.bank.Frames(), int(index))
	screen.WritePixels(v.frame)
}

// Layout fixes the logical resolution regardless of window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

// Run opens the window and drives the render loop until the user exits or
// presentation fails. A presentation failure is returned as an error; the
// caller treats it as fatal.
func Run(cfg *config.Config, cell *state.Cell, bank *imagebank.Bank) error {
	ebiten.SetWindowTitle(cfg.Canvas.Title)
	ebiten.SetWindowSize(cfg.Canvas.Width, cfg.Canvas.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Canvas.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	viewer := NewViewer(cell, bank, cfg.Canvas.Fullscreen)

	if err := ebiten.RunGame(viewer); err != nil {
		return err
	}
	return nil
}
