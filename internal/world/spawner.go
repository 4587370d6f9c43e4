package world

import (
	"fmt"

	"horde-shop/internal/commons/logger_config"
)

// ============================================================================
// SPAWNING & WAVES
// ============================================================================

// updateWave advances the wave once survival time passes wave*WaveDuration.
func (w *World) updateWave(dt float32) {
	w.TimeSurvived += dt
	if w.Cfg.WaveDuration <= 0 {
		return
	}
	if w.TimeSurvived > float32(w.Wave)*w.Cfg.WaveDuration {
		w.Wave++
		w.setHint(fmt.Sprintf(hintWaveFmt, w.Wave), true)
		logger_config.Infof("[world] wave %d at %.1fs", w.Wave, w.TimeSurvived)
	}
}

func (w *World) updateSpawning(dt float32) {
	w.spawnTimer -= dt

	if w.spawnTimer > 0 || len(w.Enemies) >= w.Cfg.WaveTargetCount(w.Wave) {
		return
	}

	w.trySpawnEnemy()
	// consumed even when the attempt aborts inside the safe zone
	w.spawnTimer = w.Cfg.SpawnInterval(w.Wave)
}

// spawnPosition picks a point just beyond one of the four viewport edges.
func (w *World) spawnPosition() Vec2 {
	margin := w.Cfg.SpawnMargin
	halfW, halfH := w.ViewW/2, w.ViewH/2
	center := w.Camera.Add(Vec2{X: halfW, Y: halfH})

	var p Vec2
	switch w.randIntn(4) {
	case 0: // top
		p = Vec2{X: center.X + w.randRange(-halfW, halfW), Y: center.Y - halfH - margin}
	case 1: // bottom
		p = Vec2{X: center.X + w.randRange(-halfW, halfW), Y: center.Y + halfH + margin}
	case 2: // left
		p = Vec2{X: center.X - halfW - margin, Y: center.Y + w.randRange(-halfH, halfH)}
	default: // right
		p = Vec2{X: center.X + halfW + margin, Y: center.Y + w.randRange(-halfH, halfH)}
	}

	return w.clampToWorld(p)
}

// trySpawnEnemy creates one enemy scaled to the current wave. It reports
// false when the chosen spot is too close to the safe zone.
func (w *World) trySpawnEnemy() bool {
	pos := w.spawnPosition()

	if dist(pos, w.SafeZone.Pos) < w.SafeZone.R+w.Cfg.SpawnSafeExtra {
		w.Stats.SpawnsAborted++
		return false
	}

	w.Enemies = append(w.Enemies, w.newEnemy(pos))
	w.Stats.EnemiesSpawned++
	return true
}

func (w *World) newEnemy(pos Vec2) Enemy {
	cfg := w.Cfg
	wave := w.Wave

	hp := cfg.EnemyHP(wave)
	e := Enemy{
		ID:     w.nextEnemyID,
		Pos:    pos,
		R:      w.randRange(cfg.EnemyRadiusMin, cfg.EnemyRadiusMax),
		HP:     hp,
		MaxHP:  hp,
		Speed:  cfg.EnemySpeed(wave) * w.randRange(cfg.EnemySpeedJitterMin, cfg.EnemySpeedJitterMax),
		Damage: cfg.EnemyDamage(wave),
		Kind:   w.chooseEnemyKind(),
	}
	w.nextEnemyID++

	return e
}

func (w *World) chooseEnemyKind() EnemyKind {
	if w.randFloat32() < w.Cfg.RunnerChance {
		return EnemyRunner
	}
	return EnemyWalker
}
