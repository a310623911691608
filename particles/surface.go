package particles

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the capability set the renderer needs from a drawing target.
// Canvas implements it over an ebiten image; tests substitute a recorder.
// Transform, alpha and composite state is global to the surface, so every
// render call must leave the transform at identity before returning.
type Surface interface {
	SetAlpha(a float64)
	SetComposite(mode string)
	SetTransform(a, b, c, d, e, f float64)
	Translate(x, y float64)
	Rotate(rad float64)
	ResetTransform()
	DrawBitmap(sp *Sprite, x, y float64)
}

// affine is a 2D transform in canvas element order:
//
//	| a c e |
//	| b d f |
type affine struct {
	a, b, c, d, e, f float64
}

var identity = affine{a: 1, d: 1}

// mul composes m with n so that n applies first, matching canvas
// transform call order.
func (m affine) mul(n affine) affine {
	return affine{
		a: m.a*n.a + m.c*n.b,
		b: m.b*n.a + m.d*n.b,
		c: m.a*n.c + m.c*n.d,
		d: m.b*n.c + m.d*n.d,
		e: m.a*n.e + m.c*n.f + m.e,
		f: m.b*n.e + m.d*n.f + m.f,
	}
}

// Canvas adapts an ebiten image to the Surface interface. It keeps the
// current composite mode so redundant mode writes are skipped.
type Canvas struct {
	dst   *ebiten.Image
	tf    affine
	alpha float64
	blend ebiten.Blend
	mode  string
}

// NewCanvas wraps dst as a particle drawing surface.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{
		dst:   dst,
		tf:    identity,
		alpha: 1,
		blend: ebiten.BlendSourceOver,
		mode:  "source-over",
	}
}

func (cv *Canvas) SetAlpha(a float64) {
	cv.alpha = a
}

// SetComposite switches the blending rule. The mode string is only
// translated and stored when it differs from the current one.
func (cv *Canvas) SetComposite(mode string) {
	if mode == cv.mode {
		return
	}
	cv.mode = mode
	cv.blend = blendFor(mode)
}

func (cv *Canvas) SetTransform(a, b, c, d, e, f float64) {
	cv.tf = affine{a: a, b: b, c: c, d: d, e: e, f: f}
}

func (cv *Canvas) Translate(x, y float64) {
	cv.tf = cv.tf.mul(affine{a: 1, d: 1, e: x, f: y})
}

func (cv *Canvas) Rotate(rad float64) {
	sin, cos := math.Sincos(rad)
	cv.tf = cv.tf.mul(affine{a: cos, b: sin, c: -sin, d: cos})
}

func (cv *Canvas) ResetTransform() {
	cv.tf = identity
}

// DrawBitmap draws sp with its top-left corner at (x, y) in the current
// transform's coordinate space.
func (cv *Canvas) DrawBitmap(sp *Sprite, x, y float64) {
	if sp == nil || sp.Image == nil {
		return
	}
	m := cv.tf.mul(affine{a: 1, d: 1, e: x, f: y})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.SetElement(0, 0, m.a)
	op.GeoM.SetElement(0, 1, m.c)
	op.GeoM.SetElement(0, 2, m.e)
	op.GeoM.SetElement(1, 0, m.b)
	op.GeoM.SetElement(1, 1, m.d)
	op.GeoM.SetElement(1, 2, m.f)
	op.ColorScale.ScaleAlpha(float32(cv.alpha))
	op.Blend = cv.blend
	op.Filter = ebiten.FilterLinear
	cv.dst.DrawImage(sp.Image, op)
}

// blendFor maps canvas-style composite mode names onto ebiten blends.
// Unknown modes fall back to source-over.
func blendFor(mode string) ebiten.Blend {
	switch mode {
	case "lighter":
		return ebiten.BlendLighter
	case "copy":
		return ebiten.BlendCopy
	case "xor":
		return ebiten.BlendXor
	case "source-in":
		return ebiten.BlendSourceIn
	case "source-out":
		return ebiten.BlendSourceOut
	case "source-atop":
		return ebiten.BlendSourceAtop
	case "destination-over":
		return ebiten.BlendDestinationOver
	case "destination-in":
		return ebiten.BlendDestinationIn
	case "destination-out":
		return ebiten.BlendDestinationOut
	case "destination-atop":
		return ebiten.BlendDestinationAtop
	default:
		return ebiten.BlendSourceOver
	}
}
