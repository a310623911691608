package particles

import (
	"errors"
	"fmt"
	"time"
)

// Bounds reports the current visible region. Implementations may change
// the size between frames; placement and recycling always read the live
// value.
type Bounds interface {
	Size() (w, h float64)
}

// FixedBounds is a Bounds with a constant size.
type FixedBounds struct {
	W, H float64
}

func (b FixedBounds) Size() (float64, float64) {
	return b.W, b.H
}

// Field owns a fixed pool of particles animating over shared settings, a
// bounds provider and a sprite source. It is single-threaded by design:
// the frame driver calls Step and Draw in sequence.
type Field struct {
	cfg     Config
	bounds  Bounds
	rng     *sampler
	sprites SpriteSource
	pool    []*Particle
}

// Option tweaks field construction.
type Option func(*Field)

// WithSeed pins the random source, for reproducible fields.
func WithSeed(seed int64) Option {
	return func(f *Field) {
		f.rng = newSampler(seed)
	}
}

// WithSpriteSource substitutes the pre-baked sprite cache.
func WithSpriteSource(s SpriteSource) Option {
	return func(f *Field) {
		f.sprites = s
	}
}

// NewField validates cfg and scatters count particles over bounds. The
// count policy belongs to the caller; the field never grows or shrinks.
func NewField(cfg Config, count int, bounds Bounds, opts ...Option) (*Field, error) {
	if bounds == nil {
		return nil, errors.New("particles: field needs a bounds provider")
	}
	if count <= 0 {
		return nil, fmt.Errorf("particles: invalid particle count %d", count)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	f := &Field{cfg: cfg, bounds: bounds}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = newSampler(time.Now().UnixNano())
	}
	if f.sprites == nil {
		cache, err := NewSpriteCache(f.cfg)
		if err != nil {
			return nil, err
		}
		f.sprites = cache
	}

	f.pool = make([]*Particle, count)
	for i := range f.pool {
		f.pool[i] = newParticle(&f.cfg, f.bounds, f.rng)
	}
	return f, nil
}

// Step advances every particle by one tick.
func (f *Field) Step() {
	for _, p := range f.pool {
		p.update()
	}
}

// Draw renders the field onto dst in pool order.
func (f *Field) Draw(dst Surface) {
	for _, p := range f.pool {
		p.draw(dst, f.sprites)
	}
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.pool)
}
