package world

import (
	"fmt"
	"math"

	"horde-shop/internal/ai"
)

// ============================================================================
// PROJECTILES
// ============================================================================

func (w *World) updateProjectiles(dt float32) {
	for i := 0; i < len(w.Projectiles); {
		p := &w.Projectiles[i]
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Life -= dt

		if p.Life <= 0 || w.outOfBounds(p.Pos) {
			w.removeProjectileAt(i)
			continue
		}
		i++
	}
}

// ============================================================================
// ENEMY MOVEMENT & AI
// ============================================================================

func (w *World) intentRequest() ai.IntentRequest {
	req := ai.IntentRequest{
		PlayerX: w.Player.Pos.X,
		PlayerY: w.Player.Pos.Y,
		SafeX:   w.SafeZone.Pos.X,
		SafeY:   w.SafeZone.Pos.Y,
		SafeR:   w.SafeZone.R,
		Tuning: ai.Tuning{
			RunnerScale:   w.Cfg.RunnerSpeedScale,
			SafeZoneScale: w.Cfg.SafeZoneEnemySlowing,
		},
		Enemies: make([]ai.EnemySnapshot, len(w.Enemies)),
	}

	for i, e := range w.Enemies {
		req.Enemies[i] = ai.EnemySnapshot{
			EnemyID: e.ID,
			Role:    roleFromEnemyKind(e.Kind),
			X:       e.Pos.X,
			Y:       e.Pos.Y,
		}
	}

	return req
}

func (w *World) updateEnemies(dt float32) {
	if len(w.Enemies) == 0 {
		return
	}

	// intents are index-aligned with w.Enemies
	res := ai.ComputeIntents(w.intentRequest())

	for i := range w.Enemies {
		e := &w.Enemies[i]
		in := res.Intents[i]

		dir := Vec2{X: in.MoveX, Y: in.MoveY}
		if !dir.IsZero() {
			e.Pos = w.clampToWorld(e.Pos.Add(dir.Mul(e.Speed * in.SpeedScale * dt)))
		}

		if e.HitCD > 0 {
			e.HitCD = maxf(0, e.HitCD-dt)
		}
	}
}

func roleFromEnemyKind(kind EnemyKind) ai.EnemyRole {
	switch kind {
	case EnemyRunner:
		return ai.EnemyRoleRunner
	default:
		return ai.EnemyRoleWalker
	}
}

// ============================================================================
// COMBAT SYSTEM
// ============================================================================

// updateContactDamage lets every touching enemy off cooldown bite the player.
// It reports true when the player died; the tick must stop there.
func (w *World) updateContactDamage() bool {
	pr := w.Player.R
	p := w.Player.Pos

	for i := range w.Enemies {
		e := &w.Enemies[i]
		rr := pr + e.R
		if dist2(p, e.Pos) >= rr*rr || e.HitCD > 0 {
			continue
		}

		e.HitCD = w.Cfg.EnemyHitCooldown
		// only the hp actually lost counts
		w.Stats.DamageTaken += minf(e.Damage, w.Player.HP)
		w.Player.HP = maxf(0, w.Player.HP-e.Damage)
		w.setHint(hintChewed, false)

		if w.Player.HP <= 0 {
			w.die()
			return true
		}
	}

	return false
}

// updateProjectileHits resolves projectile/enemy overlaps. A projectile hits
// the first overlapping enemy in slice order and is consumed.
func (w *World) updateProjectileHits() {
	for i := 0; i < len(w.Projectiles); {
		p := w.Projectiles[i]

		hit := -1
		for j := range w.Enemies {
			rr := p.R + w.Enemies[j].R
			if dist2(p.Pos, w.Enemies[j].Pos) < rr*rr {
				hit = j
				break
			}
		}
		if hit < 0 {
			i++
			continue
		}

		w.removeProjectileAt(i)

		e := &w.Enemies[hit]
		e.HP -= p.Damage
		if e.HP <= 0 {
			deathPos := e.Pos
			w.removeEnemyAt(hit)
			w.spawnDrop(deathPos)
			w.Stats.EnemiesKilled++
		}
	}
}

// ============================================================================
// LOOT
// ============================================================================

// dropAmount is floor(U(min,max) + wave*perWave).
func (w *World) dropAmount() int {
	cfg := w.Cfg
	raw := w.randRange(cfg.DropMinCash, cfg.DropMaxCash) + float32(w.Wave)*cfg.DropCashPerWave
	return int(math.Floor(float64(raw)))
}

func (w *World) spawnDrop(pos Vec2) {
	w.Drops = append(w.Drops, LootDrop{
		Pos:    pos,
		R:      w.Cfg.DropRadius,
		Amount: w.dropAmount(),
		TTL:    w.Cfg.DropTTL,
	})
}

func (w *World) updateDrops(dt float32) {
	p := w.Player.Pos
	pickupR := w.Player.R + w.Cfg.DropPickupExtra

	for i := 0; i < len(w.Drops); {
		d := &w.Drops[i]
		d.TTL -= dt

		rr := pickupR + d.R
		if dist2(p, d.Pos) < rr*rr {
			amount := d.Amount
			w.Player.Cash += amount
			w.Stats.CashCollected += amount
			w.removeDropAt(i)
			w.setHint(fmt.Sprintf(hintPickupFmt, amount), true)
			continue
		}

		if d.TTL <= 0 {
			w.removeDropAt(i)
			continue
		}
		i++
	}
}
