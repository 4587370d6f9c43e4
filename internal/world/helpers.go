package world

import "math"

// ============================================================================
// UTILITY & HELPER FUNCTIONS
// ============================================================================

// InSafeZone reports whether the player stands inside the safe zone.
func (w *World) InSafeZone() bool {
	return w.SafeZone.Contains(w.Player.Pos)
}

// clampToWorld keeps p inside [0,W]x[0,H].
func (w *World) clampToWorld(p Vec2) Vec2 {
	return Vec2{X: clamp(p.X, 0, w.W), Y: clamp(p.Y, 0, w.H)}
}

func (w *World) outOfBounds(p Vec2) bool {
	return p.X < 0 || p.Y < 0 || p.X > w.W || p.Y > w.H
}

func (w *World) removeEnemyAt(idx int) {
	last := len(w.Enemies) - 1

	if idx != last {
		w.Enemies[idx] = w.Enemies[last]
	}

	w.Enemies = w.Enemies[:last]
}

func (w *World) removeProjectileAt(i int) {
	last := len(w.Projectiles) - 1
	if i != last {
		w.Projectiles[i] = w.Projectiles[last]
	}
	w.Projectiles = w.Projectiles[:last]
}

func (w *World) removeDropAt(i int) {
	last := len(w.Drops) - 1
	if i != last {
		w.Drops[i] = w.Drops[last]
	}
	w.Drops = w.Drops[:last]
}

func dist(a, b Vec2) float32 {
	return a.Sub(b).Len()
}

func dist2(a, b Vec2) float32 {
	d := a.Sub(b)

	return d.X*d.X + d.Y*d.Y
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi float32) float32 {
	return float32(math.Max(float64(lo), math.Min(float64(hi), float64(v))))
}
