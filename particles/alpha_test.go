package particles

import "testing"

func TestFadeStaysWithinBounds(t *testing.T) {
	cfg := testConfig()
	cfg.AlphaSpeed = 3
	cfg.AlphaVariance = 5
	p := newTestParticle(t, cfg, 100, 100)

	for i := 0; i < 20000; i++ {
		p.updateAlpha()
		if p.alpha < cfg.AlphaMin || p.alpha > cfg.AlphaMax {
			t.Fatalf("alpha = %v at tick %d, outside [%v, %v]", p.alpha, i+1, cfg.AlphaMin, cfg.AlphaMax)
		}
	}
}

func TestFadeReversesAtBounds(t *testing.T) {
	p := newTestParticle(t, testConfig(), 100, 100)

	p.alpha = 0.8
	p.alphaDelta = 3
	p.updateFade()
	if p.alpha != 0.8 {
		t.Errorf("overshoot not clamped to max: alpha = %v", p.alpha)
	}
	if p.alphaDelta != -3 {
		t.Errorf("delta not inverted at max: %v", p.alphaDelta)
	}

	p.alpha = 0.2
	p.alphaDelta = -3
	p.updateFade()
	if p.alpha != 0.2 {
		t.Errorf("undershoot not clamped to min: alpha = %v", p.alpha)
	}
	if p.alphaDelta != 3 {
		t.Errorf("delta not inverted at min: %v", p.alphaDelta)
	}
}

func TestFadeFullCycleReturnsToStart(t *testing.T) {
	p := newTestParticle(t, testConfig(), 100, 100)
	p.alpha = 0.2
	p.alphaDelta = 2
	step := p.alphaDelta / 1000 * p.cfg.AlphaSpeed * 0.5

	flips := 0
	prev := p.alphaDelta
	for i := 0; i < 100000 && flips < 2; i++ {
		p.updateFade()
		if (p.alphaDelta > 0) != (prev > 0) {
			flips++
		}
		prev = p.alphaDelta
	}
	if flips != 2 {
		t.Fatal("fade never completed a full cycle")
	}
	if diff := p.alpha - 0.2; diff < 0 || diff > step {
		t.Errorf("after full cycle alpha = %v, want within one step of 0.2", p.alpha)
	}
}

func TestTwinkleStaysWithinBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Twinkle = true
	p := newTestParticle(t, cfg, 100, 100)

	for i := 0; i < 20000; i++ {
		p.updateAlpha()
		if p.alpha < cfg.AlphaMin || p.alpha > cfg.AlphaMax {
			t.Fatalf("alpha = %v at tick %d, outside [%v, %v]", p.alpha, i+1, cfg.AlphaMin, cfg.AlphaMax)
		}
	}
}

func TestTwinkleResetsAfterReachingMin(t *testing.T) {
	cfg := testConfig()
	cfg.Twinkle = true
	p := newTestParticle(t, cfg, 100, 100)

	p.phase = twinkleDecaying
	p.alpha = cfg.AlphaMin + 1e-6
	p.alphaDelta = 3
	p.updateTwinkle()
	if p.alpha != cfg.AlphaMin {
		t.Fatalf("alpha = %v, want clamp to min %v", p.alpha, cfg.AlphaMin)
	}
	if p.phase != twinkleResetting {
		t.Fatal("phase did not switch to resetting at min")
	}

	p.updateTwinkle()
	if p.alpha <= cfg.AlphaMin {
		t.Errorf("alpha did not strictly increase after reaching min: %v", p.alpha)
	}
}

func TestTwinkleDecaysAfterReachingMax(t *testing.T) {
	cfg := testConfig()
	cfg.Twinkle = true
	p := newTestParticle(t, cfg, 100, 100)

	p.phase = twinkleResetting
	p.alpha = cfg.AlphaMax - 1e-6
	p.alphaDelta = 3
	p.updateTwinkle()
	if p.alpha != cfg.AlphaMax {
		t.Fatalf("alpha = %v, want clamp to max %v", p.alpha, cfg.AlphaMax)
	}
	if p.phase != twinkleDecaying {
		t.Fatal("phase did not switch to decaying at max")
	}

	p.updateTwinkle()
	if p.alpha >= cfg.AlphaMax {
		t.Errorf("alpha did not strictly decrease after reaching max: %v", p.alpha)
	}
}

func TestTwinkleUsesDeltaMagnitudeOnly(t *testing.T) {
	cfg := testConfig()
	cfg.Twinkle = true
	p := newTestParticle(t, cfg, 100, 100)

	p.phase = twinkleDecaying
	p.alpha = 0.5
	p.alphaDelta = -3
	p.updateTwinkle()
	if p.alpha >= 0.5 {
		t.Errorf("negative delta should still decay: alpha = %v", p.alpha)
	}
}

func TestAlphaFrozenWhenRateZero(t *testing.T) {
	cfg := testConfig()
	cfg.AlphaSpeed = 0
	p := newTestParticle(t, cfg, 100, 100)
	start := p.alpha

	for i := 0; i < 100; i++ {
		p.updateAlpha()
	}
	if p.alpha != start {
		t.Errorf("alpha changed with zero rate: %v -> %v", start, p.alpha)
	}
}
