package particles

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestRasterizeShapesProducePixels(t *testing.T) {
	for _, shape := range []string{ShapeCircle, ShapeSquare, ShapeStar} {
		img, err := rasterizeShape(shape, "#ffffff", 16)
		if err != nil {
			t.Fatalf("%s: %v", shape, err)
		}
		if _, _, _, a := img.At(8, 8).RGBA(); a == 0 {
			t.Errorf("%s: center pixel is fully transparent", shape)
		}
	}

	// A circle leaves its corners empty; a square does not.
	img, err := rasterizeShape(ShapeCircle, "#ffffff", 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("circle corner pixel should be transparent")
	}
}

func TestShapeSVGRejectsUnknownShape(t *testing.T) {
	if _, err := shapeSVG("blob", "#ffffff", 16); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestStarPointsHasTenVertices(t *testing.T) {
	pts := strings.Fields(starPoints(16))
	if len(pts) != 10 {
		t.Fatalf("star has %d vertices, want 10", len(pts))
	}
	for _, p := range pts {
		if strings.Count(p, ",") != 1 {
			t.Fatalf("vertex %q is not an x,y pair", p)
		}
	}
}

func TestScaleImageResamplesToSquare(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}

	dst := scaleImage(src, 8)
	if got := dst.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("scaled bounds = %v, want 8x8", got)
	}
	if r, _, _, a := dst.At(4, 4).RGBA(); r == 0 || a == 0 {
		t.Error("center pixel lost its color during scaling")
	}
}

func TestSpriteLookup(t *testing.T) {
	sp := &Sprite{Size: 8}
	c := &SpriteCache{
		sprites: map[spriteKey]*Sprite{
			{color: "#ffffff", shape: ShapeCircle}: sp,
			{shape: imageShapeName(0)}:             sp,
		},
		size: 8,
	}

	if c.Sprite("#ffffff", ShapeCircle) != sp {
		t.Error("baked shape sprite not found")
	}
	if c.Sprite("#000000", ShapeCircle) != nil {
		t.Error("lookup for an unbaked color should miss")
	}
	// Image sprites are color-independent.
	if c.Sprite("#ffffff", imageShapeName(0)) != sp {
		t.Error("image sprite lookup should ignore the color choice")
	}
	if c.NativeSize() != 8 {
		t.Errorf("NativeSize() = %d, want 8", c.NativeSize())
	}
}

func TestImageShapeName(t *testing.T) {
	if got := imageShapeName(2); got != "image:2" {
		t.Errorf("imageShapeName(2) = %q, want %q", got, "image:2")
	}
}
