package world

import (
	"horde-shop/internal/commons/logger_config"
)

func newPlayer(cfg Config) Player {
	return Player{
		Pos:       Vec2{X: cfg.SafeZoneX, Y: cfg.SafeZoneY},
		Speed:     cfg.PlayerSpeed,
		R:         cfg.PlayerRadius,
		MaxHP:     cfg.PlayerMaxHP,
		HP:        cfg.PlayerMaxHP,
		DamageMul: 1,
		Weapon:    newWeapon(cfg),
	}
}

// NewWorld builds a world in ModeStart. The same cfg, seed and message
// sequence always produce the same run.
func NewWorld(cfg Config, seed int64) *World {
	w := &World{
		W: cfg.WorldW, H: cfg.WorldH,
		Cfg:      cfg,
		SafeZone: Circle{Pos: Vec2{X: cfg.SafeZoneX, Y: cfg.SafeZoneY}, R: cfg.SafeZoneR},

		Player:      newPlayer(cfg),
		Enemies:     make([]Enemy, 0, 64),
		Projectiles: make([]Projectile, 0, 64),
		Drops:       make([]LootDrop, 0, 32),

		ViewW: cfg.DefaultViewW,
		ViewH: cfg.DefaultViewH,

		Mode: ModeStart,
		Wave: 1,
	}
	w.Seed(seed)
	w.updateCamera()

	return w
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

// SetViewport tells the world how much of it the host can show.
// Spawns are placed just beyond this region.
func (w *World) SetViewport(viewW, viewH float32) {
	if viewW <= 0 || viewH <= 0 {
		return
	}
	w.ViewW, w.ViewH = viewW, viewH
	w.updateCamera()
}

// ScreenToWorld maps a viewport position to world coordinates.
func (w *World) ScreenToWorld(sx, sy float32) Vec2 {
	return Vec2{X: sx + w.Camera.X, Y: sy + w.Camera.Y}
}

// Tick advances the simulation by one frame. dt is clamped to Cfg.MaxFrameDt
// so long stalls are truncated rather than replayed.
func (w *World) Tick(dt float32) {
	// discrete actions are applied in every mode; each one checks its own guard
	for _, m := range w.inbox {
		w.handle(m)
	}
	w.inbox = w.inbox[:0]

	if dt != dt { // NaN would poison the clock and every position
		dt = 0
	}
	dt = clamp(dt, 0, w.Cfg.MaxFrameDt)
	w.Clock += dt

	// start/dead are inert; shop freezes everything in the world
	if w.Mode != ModePlaying {
		return
	}

	w.updateReload(dt)
	w.applyMovement(dt)
	w.updateCamera()

	if w.input.Fire {
		_ = w.fire(Vec2{X: w.input.AimX, Y: w.input.AimY})
	}

	w.updateWave(dt)
	w.updateSpawning(dt)
	w.updateProjectiles(dt)
	w.updateEnemies(dt)
	if w.updateContactDamage() {
		return
	}
	w.updateProjectileHits()
	w.updateDrops(dt)

	if w.InSafeZone() {
		w.setHint(hintSafeZone, true)
	}
}

func (w *World) handle(m Msg) {
	var err error

	switch msg := m.(type) {
	case MsgInput:
		w.input = msg.Input
	case MsgBegin:
		err = w.Begin()
	case MsgReload:
		err = w.tryReload()
	case MsgToggleShop:
		err = w.ToggleShop()
	case MsgCloseShop:
		if w.Mode == ModeShop {
			err = w.CloseShop()
		}
	case MsgBuy:
		err = w.Buy(msg.Item)
	case MsgRestart:
		err = w.Restart()
	}

	if err != nil {
		logger_config.Debugf("[world] %T declined: %v", m, err)
	}
}

// ============================================================================
// PLAYER MOVEMENT & CAMERA
// ============================================================================

func (w *World) applyMovement(dt float32) {
	dir := Vec2{X: w.input.MoveX, Y: w.input.MoveY}
	if dir.IsZero() {
		return
	}
	if dir.Len() > 1 {
		dir = dir.Norm()
	}

	speed := w.Player.Speed
	if w.InSafeZone() {
		speed *= w.Cfg.SafeZoneSpeed
	}

	w.Player.Pos = w.clampToWorld(w.Player.Pos.Add(dir.Mul(speed * dt)))
}

// updateCamera centres the viewport on the player without leaving the world.
func (w *World) updateCamera() {
	w.Camera = Vec2{
		X: clamp(w.Player.Pos.X-w.ViewW/2, 0, maxf(0, w.W-w.ViewW)),
		Y: clamp(w.Player.Pos.Y-w.ViewH/2, 0, maxf(0, w.H-w.ViewH)),
	}
}
