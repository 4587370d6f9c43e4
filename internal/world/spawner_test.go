package world

import "testing"

func TestSpawnScheduleScalesWithWave(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.WaveTargetCount(1); got != 11 {
		t.Fatalf("wave 1 target: got %d want 11", got)
	}
	if got := cfg.SpawnInterval(1); !approxEqual(got, 0.53) {
		t.Fatalf("wave 1 interval: got %.3f want 0.53", got)
	}
	if got := cfg.SpawnInterval(100); !approxEqual(got, cfg.SpawnMinInterval) {
		t.Fatalf("late interval should floor at %.2f, got %.3f", cfg.SpawnMinInterval, got)
	}
}

func TestNewEnemyWaveOneStats(t *testing.T) {
	w := newTestWorld(t)
	base := w.Cfg.EnemySpeed(1)

	for range 100 {
		e := w.newEnemy(Vec2{X: 10, Y: 10})
		if !approxEqual(e.HP, 63) || !approxEqual(e.MaxHP, 63) {
			t.Fatalf("hp: got %.2f/%.2f want 63", e.HP, e.MaxHP)
		}
		if !approxEqual(e.Damage, 11.5) {
			t.Fatalf("damage: got %.2f want 11.5", e.Damage)
		}
		if e.Speed < base*w.Cfg.EnemySpeedJitterMin || e.Speed > base*w.Cfg.EnemySpeedJitterMax {
			t.Fatalf("speed %.2f outside jitter range", e.Speed)
		}
		if e.R < w.Cfg.EnemyRadiusMin || e.R > w.Cfg.EnemyRadiusMax {
			t.Fatalf("radius %.2f outside [%.0f, %.0f]", e.R, w.Cfg.EnemyRadiusMin, w.Cfg.EnemyRadiusMax)
		}
	}
}

func TestSpawnAppearsOutsideViewport(t *testing.T) {
	w := newTestWorld(t)
	w.spawnTimer = 0

	w.updateSpawning(0.01)

	if len(w.Enemies) != 1 || w.Stats.EnemiesSpawned != 1 {
		t.Fatalf("enemies=%d spawned=%d, want 1 and 1", len(w.Enemies), w.Stats.EnemiesSpawned)
	}
	s := w.BuildSnapshot().WorldToScreen(w.Enemies[0].Pos)
	if s.X >= 0 && s.X <= w.ViewW && s.Y >= 0 && s.Y <= w.ViewH {
		t.Fatalf("enemy spawned on screen at %+v", s)
	}
	if !approxEqual(w.spawnTimer, w.Cfg.SpawnInterval(1)) {
		t.Fatalf("spawn timer: got %.3f want %.3f", w.spawnTimer, w.Cfg.SpawnInterval(1))
	}
}

func TestSpawnAbortsNearSafeZone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SpawnMargin = 0
	w := NewWorld(cfg, 5)
	if err := w.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	w.SetViewport(10, 10)
	w.spawnTimer = 0

	w.updateSpawning(0.01)

	if len(w.Enemies) != 0 {
		t.Fatalf("enemy spawned inside the safe zone buffer at %+v", w.Enemies[0].Pos)
	}
	if w.Stats.SpawnsAborted != 1 {
		t.Fatalf("aborted: got %d want 1", w.Stats.SpawnsAborted)
	}
	if !approxEqual(w.spawnTimer, w.Cfg.SpawnInterval(1)) {
		t.Fatalf("aborted attempt should still reset the timer, got %.3f", w.spawnTimer)
	}
}

func TestSpawnerHoldsAtTargetCount(t *testing.T) {
	w := newTestWorld(t)
	for i := range w.Cfg.WaveTargetCount(1) {
		placeEnemy(w, Vec2{X: float32(100 + i*40), Y: 100})
	}
	w.spawnTimer = 0

	w.updateSpawning(0.01)

	if got := len(w.Enemies); got != w.Cfg.WaveTargetCount(1) {
		t.Fatalf("enemies: got %d want %d", got, w.Cfg.WaveTargetCount(1))
	}
	if w.Stats.EnemiesSpawned != 0 || w.Stats.SpawnsAborted != 0 {
		t.Fatalf("spawner acted at capacity: %+v", w.Stats)
	}
}

func TestRunnerShareMatchesChance(t *testing.T) {
	w := newTestWorld(t)
	w.Seed(1)

	const n = 20000
	runners := 0
	for range n {
		if w.newEnemy(Vec2{}).Kind == EnemyRunner {
			runners++
		}
	}

	share := float32(runners) / n
	if d := share - w.Cfg.RunnerChance; d < -0.02 || d > 0.02 {
		t.Fatalf("runner share %.4f, want %.2f +- 0.02", share, w.Cfg.RunnerChance)
	}
}

func TestSpawnPositionSitsMarginBeyondViewEdge(t *testing.T) {
	w := newTestWorld(t)
	halfW, halfH := w.ViewW/2, w.ViewH/2
	margin := w.Cfg.SpawnMargin
	center := w.Camera.Add(Vec2{X: halfW, Y: halfH})

	// the default camera sits well inside the world, so nothing is clamped
	if center != w.Player.Pos {
		t.Fatalf("camera centre %+v should be the player %+v", center, w.Player.Pos)
	}

	sides := map[string]int{}
	for range 400 {
		p := w.spawnPosition()
		d := p.Sub(center)

		switch {
		case approxEqual(d.Y, -(halfH + margin)):
			sides["top"]++
		case approxEqual(d.Y, halfH+margin):
			sides["bottom"]++
		case approxEqual(d.X, -(halfW + margin)):
			sides["left"]++
		case approxEqual(d.X, halfW+margin):
			sides["right"]++
		default:
			t.Fatalf("spawn %+v is not margin beyond any edge (offset %+v)", p, d)
		}

		vertical := approxEqual(d.Y, -(halfH+margin)) || approxEqual(d.Y, halfH+margin)
		if vertical && (d.X < -halfW || d.X > halfW) {
			t.Fatalf("top/bottom spawn x offset %.1f outside +-%.0f", d.X, halfW)
		}
		if !vertical && (d.Y < -halfH || d.Y > halfH) {
			t.Fatalf("left/right spawn y offset %.1f outside +-%.0f", d.Y, halfH)
		}
	}

	if len(sides) != 4 {
		t.Fatalf("expected spawns on all four sides, got %v", sides)
	}
}

func TestSpawnPositionClampedToWorld(t *testing.T) {
	w := newTestWorld(t)
	w.Player.Pos = Vec2{X: 50, Y: 50}
	w.updateCamera()

	clamped := 0
	for range 400 {
		p := w.spawnPosition()
		if p.X < 0 || p.Y < 0 || p.X > w.W || p.Y > w.H {
			t.Fatalf("spawn %+v outside the world", p)
		}
		if p.X == 0 || p.Y == 0 {
			clamped++
		}
	}
	if clamped == 0 {
		t.Fatal("top and left spawns near the corner should clamp to the world edge")
	}
}
