package bough

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often the readout text is refreshed.
const fpsInterval = 500 * time.Millisecond

// fpsOverlay draws the current FPS and TPS in the top-left corner of the
// screen, outside the widget tree so it never takes input.
type fpsOverlay struct {
	img     *ebiten.Image
	sys     *System
	last    time.Time
	refresh bool
}

func newFPSOverlay(sys *System) *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), sys: sys, refresh: true}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	now := f.sys.clock()
	if f.refresh || now.Sub(f.last) >= fpsInterval {
		f.refresh = false
		f.last = now
		f.img.Clear()
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
