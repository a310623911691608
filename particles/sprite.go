package particles

import (
	"bytes"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

// Shape names accepted in Config.Shapes.
const (
	ShapeCircle = "circle"
	ShapeSquare = "square"
	ShapeStar   = "star"
	// ShapeImage, as the first entry of Config.Shapes, replaces the whole
	// shape set with Config.Images.
	ShapeImage = "image"
)

const imagePrefix = "image:"

// imageShapeName is the cache key for the i-th entry of Config.Images.
func imageShapeName(i int) string {
	return fmt.Sprintf("%s%d", imagePrefix, i)
}

// Sprite is one pre-rasterized square bitmap from the cache.
type Sprite struct {
	Image *ebiten.Image
	Size  int // native edge length in pixels
}

// SpriteSource resolves a particle's (color, shape) choice to its baked
// sprite. The particle core only reads from it.
type SpriteSource interface {
	Sprite(color, shape string) *Sprite
}

type spriteKey struct {
	color string
	shape string
}

// SpriteCache bakes every color/shape combination up front so the
// per-frame render path never rasterizes.
type SpriteCache struct {
	sprites map[spriteKey]*Sprite
	size    int
}

// NewSpriteCache pre-rasterizes every combination cfg can sample. Shapes
// are rendered from generated SVG; user images are rescaled into the
// cache's square native size.
func NewSpriteCache(cfg Config) (*SpriteCache, error) {
	size := cfg.SizeMax * 2
	if size < 2 {
		size = 2
	}
	c := &SpriteCache{sprites: make(map[spriteKey]*Sprite), size: size}

	if len(cfg.Shapes) > 0 && cfg.Shapes[0] == ShapeImage {
		for i, src := range cfg.Images {
			img := scaleImage(src, size)
			c.sprites[spriteKey{shape: imageShapeName(i)}] = &Sprite{
				Image: ebiten.NewImageFromImage(img),
				Size:  size,
			}
		}
		return c, nil
	}

	for _, col := range cfg.Colors {
		for _, shape := range cfg.Shapes {
			img, err := rasterizeShape(shape, col, size)
			if err != nil {
				return nil, err
			}
			c.sprites[spriteKey{color: col, shape: shape}] = &Sprite{
				Image: ebiten.NewImageFromImage(img),
				Size:  size,
			}
		}
	}
	return c, nil
}

// Sprite returns the baked bitmap for the choice pair, or nil if the pair
// was never baked. Image sprites ignore the color component.
func (c *SpriteCache) Sprite(color, shape string) *Sprite {
	if strings.HasPrefix(shape, imagePrefix) {
		color = ""
	}
	return c.sprites[spriteKey{color: color, shape: shape}]
}

// NativeSize returns the edge length every cached sprite is baked at.
func (c *SpriteCache) NativeSize() int {
	return c.size
}

// rasterizeShape renders the generated SVG document for a shape into an
// RGBA bitmap.
func rasterizeShape(shape, color string, size int) (image.Image, error) {
	doc, err := shapeSVG(shape, color, size)
	if err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(doc)))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// shapeSVG builds an SVG document drawing shape filled with color inside a
// size x size viewport.
func shapeSVG(shape, color string, size int) (string, error) {
	s := float64(size)
	switch shape {
	case ShapeCircle:
		return fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><circle cx="%g" cy="%g" r="%g" fill="%s"/></svg>`,
			size, size, s/2, s/2, s/2, color), nil
	case ShapeSquare:
		return fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect x="0" y="0" width="%d" height="%d" fill="%s"/></svg>`,
			size, size, size, size, color), nil
	case ShapeStar:
		return fmt.Sprintf(
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><polygon points="%s" fill="%s"/></svg>`,
			size, size, starPoints(s), color), nil
	}
	return "", fmt.Errorf("particles: unknown shape %q", shape)
}

// starPoints lists the ten vertices of a five-pointed star centered in a
// size x size box, tip up.
func starPoints(s float64) string {
	var b strings.Builder
	outer := s / 2
	inner := outer * 0.5
	cx, cy := s/2, s/2
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", cx+math.Cos(a)*r, cy+math.Sin(a)*r)
	}
	return b.String()
}

// scaleImage resamples a user image into a size x size bitmap.
func scaleImage(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return dst
}
