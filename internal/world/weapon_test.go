package world

import (
	"errors"
	"testing"
)

func TestFireTwiceWithinCadenceCreatesOneProjectile(t *testing.T) {
	w := newTestWorld(t)
	target := w.Player.Pos.Add(Vec2{X: 100})

	if err := w.fire(target); err != nil {
		t.Fatalf("first shot: %v", err)
	}

	w.Clock += 0.5 / w.Player.Weapon.FireRate
	if err := w.fire(target); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("second shot: got %v want %v", err, ErrRateLimited)
	}

	if len(w.Projectiles) != 1 {
		t.Fatalf("projectiles: got %d want 1", len(w.Projectiles))
	}
	if got := w.Player.Weapon.AmmoInMag; got != w.Cfg.MagSize-1 {
		t.Fatalf("ammo: got %d want %d", got, w.Cfg.MagSize-1)
	}

	w.Clock += 1 / w.Player.Weapon.FireRate
	if err := w.fire(target); err != nil {
		t.Fatalf("shot after cadence: %v", err)
	}
	if len(w.Projectiles) != 2 {
		t.Fatalf("projectiles: got %d want 2", len(w.Projectiles))
	}
}

func TestFireCreatesProjectileTowardAim(t *testing.T) {
	w := newTestWorld(t)
	w.Player.DamageMul = 1.5

	if err := w.fire(w.Player.Pos.Add(Vec2{Y: -50})); err != nil {
		t.Fatalf("fire: %v", err)
	}

	p := w.Projectiles[0]
	if p.Pos != w.Player.Pos {
		t.Fatalf("projectile should start at the player, got %+v", p.Pos)
	}
	if !approxEqual(p.Vel.X, 0) || !approxEqual(p.Vel.Y, -w.Cfg.ProjectileSpeed) {
		t.Fatalf("velocity: got %+v", p.Vel)
	}
	if !approxEqual(p.Damage, w.Cfg.ProjectileDamage*1.5) {
		t.Fatalf("damage: got %.3f want %.3f", p.Damage, w.Cfg.ProjectileDamage*1.5)
	}
	if !approxEqual(p.Life, w.Cfg.ProjectileLife) {
		t.Fatalf("life: got %.3f want %.3f", p.Life, w.Cfg.ProjectileLife)
	}

	// later upgrades do not touch shots already in flight
	w.Player.DamageMul *= 2
	if !approxEqual(w.Projectiles[0].Damage, w.Cfg.ProjectileDamage*1.5) {
		t.Fatalf("in-flight damage changed to %.3f", w.Projectiles[0].Damage)
	}
}

func TestFireDeclines(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World)
		want  error
	}{
		{"not playing", func(w *World) { w.Mode = ModeShop }, ErrNotPlaying},
		{"reloading", func(w *World) { w.Player.Weapon.Reloading = true }, ErrReloading},
		{"empty", func(w *World) { w.Player.Weapon.AmmoInMag = 0 }, ErrMagEmpty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			tc.setup(w)
			before := w.Player.Weapon

			err := w.fire(Vec2{})
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
			if len(w.Projectiles) != 0 {
				t.Fatalf("declined shot created %d projectiles", len(w.Projectiles))
			}
			if w.Player.Weapon != before {
				t.Fatalf("declined shot mutated weapon: %+v -> %+v", before, w.Player.Weapon)
			}
		})
	}
}

func TestFireEmptyHintsReload(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Weapon.AmmoInMag = 0

	_ = w.fire(Vec2{})

	if w.Hint.Text != hintEmpty || w.Hint.OK {
		t.Fatalf("hint: got %+v", w.Hint)
	}
}

func TestReloadTransfersMissingRounds(t *testing.T) {
	tests := []struct {
		name        string
		mag         int
		reserve     int
		wantMag     int
		wantReserve int
	}{
		{"plenty reserve", 5, 48, 12, 41},
		{"short reserve", 5, 3, 8, 0},
		{"empty mag", 0, 12, 12, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			g := &w.Player.Weapon
			g.AmmoInMag = tc.mag
			g.Reserve = tc.reserve

			if err := w.tryReload(); err != nil {
				t.Fatalf("reload: %v", err)
			}

			w.updateReload(g.ReloadTime / 2)
			if g.AmmoInMag != tc.mag || !g.Reloading {
				t.Fatalf("reload finished early: %+v", *g)
			}

			w.updateReload(g.ReloadTime)
			if g.AmmoInMag != tc.wantMag || g.Reserve != tc.wantReserve {
				t.Fatalf("after reload: mag=%d reserve=%d want mag=%d reserve=%d",
					g.AmmoInMag, g.Reserve, tc.wantMag, tc.wantReserve)
			}
			if g.Reloading {
				t.Fatal("reload flag still set")
			}
		})
	}
}

func TestReloadDeclines(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *World)
		want  error
	}{
		{"full magazine", func(w *World) {}, ErrMagFull},
		{"no reserve", func(w *World) { w.Player.Weapon.AmmoInMag = 3; w.Player.Weapon.Reserve = 0 }, ErrNoReserve},
		{"already reloading", func(w *World) { w.Player.Weapon.AmmoInMag = 3; w.Player.Weapon.Reloading = true }, ErrReloading},
		{"dead", func(w *World) { w.Player.Weapon.AmmoInMag = 3; w.Mode = ModeDead }, ErrNotPlaying},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			tc.setup(w)
			before := w.Player.Weapon

			if err := w.tryReload(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
			if w.Player.Weapon != before {
				t.Fatalf("declined reload mutated weapon: %+v -> %+v", before, w.Player.Weapon)
			}
		})
	}
}

func TestReloadThroughTickBlocksFiring(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Weapon.AmmoInMag = 0

	w.Enqueue(MsgReload{})
	w.Tick(0.01)
	if !w.Player.Weapon.Reloading {
		t.Fatal("reload message did not start a reload")
	}
	if err := w.fire(Vec2{}); !errors.Is(err, ErrReloading) {
		t.Fatalf("fire while reloading: got %v", err)
	}

	for range 40 {
		w.Tick(0.03)
	}
	if w.Player.Weapon.Reloading || w.Player.Weapon.AmmoInMag != w.Cfg.MagSize {
		t.Fatalf("reload did not complete: %+v", w.Player.Weapon)
	}
}
