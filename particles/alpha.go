package particles

import "math"

// twinklePhase labels the two states of the twinkle alpha machine.
type twinklePhase uint8

const (
	// twinkleDecaying fades the particle toward AlphaMin at its own rate.
	twinkleDecaying twinklePhase = iota
	// twinkleResetting flashes it back toward AlphaMax at a fixed rate.
	twinkleResetting
)

// updateAlpha advances the active alpha animation by one tick. Alpha never
// leaves [AlphaMin, AlphaMax]; an overshoot is corrected in the same tick.
func (p *Particle) updateAlpha() {
	if p.cfg.AlphaSpeed <= 0 {
		return
	}
	if p.cfg.Twinkle {
		p.updateTwinkle()
		return
	}
	p.updateFade()
}

// updateFade oscillates alpha between the bounds, reversing the lifecycle
// delta whenever a bound is crossed.
func (p *Particle) updateFade() {
	p.alpha += p.alphaDelta / 1000 * p.cfg.AlphaSpeed * 0.5
	if p.alphaDelta > 0 && p.alpha > p.cfg.AlphaMax {
		p.alpha = p.cfg.AlphaMax
		p.alphaDelta = -p.alphaDelta
	} else if p.alphaDelta < 0 && p.alpha < p.cfg.AlphaMin {
		p.alpha = p.cfg.AlphaMin
		p.alphaDelta = -p.alphaDelta
	}
}

// updateTwinkle decays at the particle's own rate and resets at a fixed
// one, giving the fast-flash/slow-fade asymmetry of a twinkle.
func (p *Particle) updateTwinkle() {
	if p.phase == twinkleResetting {
		p.alpha += 0.02 * p.cfg.AlphaSpeed
		if p.alpha > p.cfg.AlphaMax {
			p.alpha = p.cfg.AlphaMax
			p.phase = twinkleDecaying
		}
		return
	}
	p.alpha -= math.Abs(p.alphaDelta) / 1000 * p.cfg.AlphaSpeed * 0.5
	if p.alpha < p.cfg.AlphaMin {
		p.alpha = p.cfg.AlphaMin
		p.phase = twinkleResetting
	}
}
