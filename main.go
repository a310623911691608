package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"glimmer/particles"
)

const (
	defaultWidth  = 960
	defaultHeight = 600
	particleCount = 140
)

var colorBackground = color.NRGBA{R: 3, G: 5, B: 16, A: 255}

// liveBounds tracks the window size so placement and recycling follow
// resizes without any extra plumbing.
type liveBounds struct {
	w, h float64
}

func (b *liveBounds) Size() (float64, float64) {
	return b.w, b.h
}

// demo drives one particle field from the ebiten frame loop.
type demo struct {
	field  *particles.Field
	bounds *liveBounds
}

func (d *demo) Update() error {
	d.field.Step()
	return nil
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	d.field.Draw(particles.NewCanvas(screen))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.0f  particles %d", ebiten.ActualTPS(), d.field.Len()))
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.bounds.w = float64(outsideWidth)
	d.bounds.h = float64(outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	bounds := &liveBounds{w: defaultWidth, h: defaultHeight}
	field, err := particles.NewField(particles.DefaultConfig(), particleCount, bounds)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("Glimmer")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(&demo{field: field, bounds: bounds}); err != nil {
		log.Fatal(err)
	}
}
