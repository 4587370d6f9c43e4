package world

// neverShot is the LastShot value of a weapon that has not fired yet.
const neverShot float32 = -1e6

func newWeapon(cfg Config) Weapon {
	return Weapon{
		MagSize:    cfg.MagSize,
		AmmoInMag:  cfg.MagSize,
		Reserve:    cfg.StartReserve,
		FireRate:   cfg.FireRate,
		ShotSpeed:  cfg.ProjectileSpeed,
		BaseDamage: cfg.ProjectileDamage,
		ReloadTime: cfg.ReloadTime,
		LastShot:   neverShot,
	}
}

// ============================================================================
// FIRING
// ============================================================================

// fire launches one projectile from the player toward target.
// All preconditions are checked before anything is mutated.
func (w *World) fire(target Vec2) error {
	if w.Mode != ModePlaying {
		return ErrNotPlaying
	}

	g := &w.Player.Weapon
	if g.Reloading {
		return ErrReloading
	}
	if w.Clock-g.LastShot < 1/g.FireRate {
		return ErrRateLimited
	}
	if g.AmmoInMag <= 0 {
		w.setHint(hintEmpty, false)
		return ErrMagEmpty
	}

	g.LastShot = w.Clock
	g.AmmoInMag--

	dir := target.Sub(w.Player.Pos).Norm()
	if dir.IsZero() {
		// aiming at our own feet: shoot along +X
		dir = Vec2{X: 1}
	}

	w.Projectiles = append(w.Projectiles, Projectile{
		Pos:    w.Player.Pos,
		Vel:    dir.Mul(g.ShotSpeed),
		R:      w.Cfg.ProjectileRadius,
		Damage: g.BaseDamage * w.Player.DamageMul,
		Life:   w.Cfg.ProjectileLife,
	})
	w.Stats.ShotsFired++

	return nil
}

// ============================================================================
// RELOADING
// ============================================================================

func (w *World) tryReload() error {
	if w.Mode != ModePlaying {
		return ErrNotPlaying
	}

	g := &w.Player.Weapon
	if g.Reloading {
		return ErrReloading
	}
	if g.AmmoInMag >= g.MagSize {
		return ErrMagFull
	}
	if g.Reserve <= 0 {
		w.setHint(hintNoReserve, false)
		return ErrNoReserve
	}

	g.Reloading = true
	g.ReloadT = 0
	w.setHint(hintReloading, true)

	return nil
}

// updateReload advances an active reload. Callers skip it while paused.
func (w *World) updateReload(dt float32) {
	g := &w.Player.Weapon
	if !g.Reloading {
		return
	}

	g.ReloadT += dt
	if g.ReloadT < g.ReloadTime {
		return
	}

	take := min(g.MagSize-g.AmmoInMag, g.Reserve)
	if take < 0 {
		take = 0
	}
	g.Reserve -= take
	g.AmmoInMag += take
	g.Reloading = false
	g.ReloadT = 0
	w.setHint(hintReloaded, true)
}

// ReloadProgress is the fraction of the current reload completed, 0 when idle.
func (g Weapon) ReloadProgress() float32 {
	if !g.Reloading || g.ReloadTime <= 0 {
		return 0
	}
	return clamp(g.ReloadT/g.ReloadTime, 0, 1)
}
