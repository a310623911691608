package particles

import "math"

// lifecycleParams is the full set of values drawn together at every birth
// and recycle. Resampling is all-or-nothing: no field is ever redrawn on
// its own mid-lifecycle.
type lifecycleParams struct {
	size          int
	color         string
	shape         string
	vel           vec2
	base          float64 // pre-decomposition speed magnitude, used by drift
	alphaDelta    float64 // signed per-tick alpha step
	driftDelta    float64 // oscillation magnitude
	rotationDelta float64 // signed per-tick rotation step in radians
	frameOffset   int     // phase offset of the drift wave in ticks
}

// resampleParams draws one lifecycle's worth of parameters from cfg.
func resampleParams(cfg *Config, rng *sampler) lifecycleParams {
	p := lifecycleParams{
		size:        rng.intBetween(cfg.SizeMin, cfg.SizeMax),
		frameOffset: rng.intBetween(0, 359),
	}

	if cfg.Shapes[0] == ShapeImage {
		p.shape = imageShapeName(rng.intBetween(0, len(cfg.Images)-1))
	} else {
		p.color = rng.pick(cfg.Colors)
		p.shape = rng.pick(cfg.Shapes)
	}

	p.base = cfg.Speed * 0.1
	if cfg.Parallax > 0 {
		p.base += float64(p.size) * cfg.Parallax / 50
	}
	dir := degToRad(cfg.Direction)
	p.vel = vec2{
		x: math.Sin(dir) * p.base,
		y: math.Cos(dir) * p.base,
	}
	if cfg.XVariance > 0 {
		p.vel.x += rng.between(-cfg.XVariance, cfg.XVariance) * cfg.Speed / 100
	}
	if cfg.YVariance > 0 {
		p.vel.y += rng.between(-cfg.YVariance, cfg.YVariance) * cfg.Speed / 100
	}

	// Twinkle only ever uses the magnitude; the sign matters to fade.
	p.alphaDelta = rng.between(1, cfg.AlphaVariance)
	if rng.chance(0.5) {
		p.alphaDelta = -p.alphaDelta
	}

	if cfg.Drift > 0 {
		p.driftDelta = rng.between(cfg.Drift/2, cfg.Drift*1.5)
	}

	if cfg.Rotate && cfg.Rotation != 0 {
		p.rotationDelta = degToRad(rng.between(0.5, 1.5) * cfg.Rotation)
		if rng.chance(0.5) {
			p.rotationDelta = -p.rotationDelta
		}
	}

	return p
}
