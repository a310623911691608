package particles

// draw projects the particle onto dst through its baked sprite. Render
// coordinates are expressed in the sprite's native unit system; the affine
// scale stretches the whole surface back to simulation scale. The surface
// transform is left at identity on return so state never leaks into the
// next draw call.
func (p *Particle) draw(dst Surface, sprites SpriteSource) {
	sp := sprites.Sprite(p.color, p.shape)
	if sp == nil || sp.Size <= 0 {
		return
	}
	scale := float64(p.size) / float64(sp.Size)
	x := p.pos.x / scale
	y := p.pos.y / scale

	dst.SetComposite(p.cfg.Composite)
	dst.SetAlpha(clamp(p.alpha, 0, 1))
	dst.SetTransform(scale, 0, 0, scale, 0, 0)
	if p.cfg.Rotate {
		// Rotate about the particle's own center, not the origin.
		half := float64(sp.Size) / 2
		dst.Translate(x+half, y+half)
		dst.Rotate(p.angle)
		dst.Translate(-(x + half), -(y + half))
	}
	dst.DrawBitmap(sp, x, y)
	dst.ResetTransform()
}
