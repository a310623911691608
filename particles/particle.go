package particles

import "math"

// driftWindow is the half-width in degrees of the direction windows that
// enable drift around straight-vertical and straight-horizontal movement.
const driftWindow = 30

// Particle is one simulated visual element. It holds non-owning references
// to the field's shared config, bounds provider and random source; the
// field owns its lifetime.
type Particle struct {
	cfg    *Config
	bounds Bounds
	rng    *sampler

	pos   vec2
	alpha float64
	angle float64 // accumulated rotation in radians
	frame int     // ticks since last (re)initialization
	phase twinklePhase

	lifecycleParams
}

// newParticle wires a particle to its owner's shared state and places it.
// Constructing one without that context is a programmer error.
func newParticle(cfg *Config, bounds Bounds, rng *sampler) *Particle {
	if cfg == nil || bounds == nil || rng == nil {
		panic("particles: particle constructed without owner context")
	}
	p := &Particle{cfg: cfg, bounds: bounds, rng: rng}
	p.init()
	return p
}

// init resamples every lifecycle-scoped field and scatters the particle
// across the bounds plus margin, so the first frame looks mid-flight
// rather than freshly seeded.
func (p *Particle) init() {
	p.lifecycleParams = resampleParams(p.cfg, p.rng)
	w, h := p.bounds.Size()
	m := float64(p.size)
	p.pos = vec2{
		x: p.rng.between(-2*m, w+m),
		y: p.rng.between(-2*m, h+m),
	}
	p.alpha = p.rng.between(p.cfg.AlphaMin, p.cfg.AlphaMax)
	p.angle = 0
	p.frame = 0
	p.phase = twinkleDecaying
}

// recycle resamples the particle and snaps each out-of-bounds axis to the
// opposite edge with a 2x-size margin. An in-bounds axis keeps its value,
// so the re-entry trajectory continues the exit trajectory.
func (p *Particle) recycle() {
	p.lifecycleParams = resampleParams(p.cfg, p.rng)
	w, h := p.bounds.Size()
	m := float64(p.size)
	switch {
	case p.pos.x < -m*3:
		p.pos.x = w + m*2
	case p.pos.x > w+m*3:
		p.pos.x = -m * 2
	}
	switch {
	case p.pos.y < -m*3:
		p.pos.y = h + m*2
	case p.pos.y > h+m*3:
		p.pos.y = -m * 2
	}
	p.frame = 0
	p.phase = twinkleDecaying
}

// offBounds reports whether the particle is more than three sizes past any
// edge. The extra size over the 2x recycle placement margin keeps a fresh
// recycle from being flagged off-bounds again on the next tick.
func (p *Particle) offBounds() bool {
	w, h := p.bounds.Size()
	m := float64(p.size) * 3
	return p.pos.x < -m || p.pos.x > w+m || p.pos.y < -m || p.pos.y > h+m
}

// update advances the particle by one tick: a recycle when it has crossed
// the off-bounds line, otherwise a translate with drift and rotation.
// Either way the alpha animation steps.
func (p *Particle) update() {
	p.frame++
	if p.offBounds() {
		p.recycle()
	} else {
		p.pos.x += p.vel.x
		p.pos.y += p.vel.y
		p.applyDrift()
		p.applyRotation()
	}
	p.updateAlpha()
}

// applyDrift superimposes the oscillation on whichever axis is roughly
// perpendicular to the configured movement direction. Directions outside
// both windows get no drift.
func (p *Particle) applyDrift() {
	if p.driftDelta == 0 || p.cfg.Speed == 0 || p.base == 0 {
		return
	}
	amp := p.driftDelta / (p.base * 15)
	phase := degToRad(float64(p.frame + p.frameOffset))
	dir := math.Mod(p.cfg.Direction, 360)
	if dir < 0 {
		dir += 360
	}
	switch {
	case dir <= driftWindow || dir >= 360-driftWindow || math.Abs(dir-180) <= driftWindow:
		p.pos.x += math.Cos(phase) * amp
	case math.Abs(dir-90) <= driftWindow || math.Abs(dir-270) <= driftWindow:
		p.pos.y += math.Sin(phase) * amp
	}
}

// applyRotation accumulates the spin without clamping or bouncing.
func (p *Particle) applyRotation() {
	if p.rotationDelta == 0 {
		return
	}
	p.angle += p.rotationDelta
}
