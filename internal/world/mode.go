package world

import (
	"fmt"

	"horde-shop/internal/commons/logger_config"
)

// ============================================================================
// GAME-MODE STATE MACHINE
// ============================================================================
//
//	start --Begin--> playing <--OpenShop/CloseShop--> shop
//	playing --(hp <= 0)--> dead --Restart--> playing
//
// Reset is the permissive escape hatch and works from any mode.

func (w *World) setMode(m Mode) {
	if w.Mode == m {
		return
	}
	logger_config.Debugf("[world] mode %s -> %s", w.Mode, m)
	w.Mode = m
}

func invalidTransition(from Mode, action string) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, action, from)
}

// Begin starts the first run.
func (w *World) Begin() error {
	if w.Mode != ModeStart {
		return invalidTransition(w.Mode, "begin")
	}
	w.setMode(ModePlaying)
	w.setHint(hintBegin, true)
	return nil
}

// OpenShop pauses the world. Only allowed while playing inside the safe zone.
func (w *World) OpenShop() error {
	if w.Mode != ModePlaying {
		return invalidTransition(w.Mode, "open shop")
	}
	if !w.InSafeZone() {
		w.setHint(hintNotInZone, false)
		return ErrNotInSafeZone
	}
	w.setMode(ModeShop)
	w.setHint(hintShopOpen, true)
	return nil
}

// CloseShop resumes play.
func (w *World) CloseShop() error {
	if w.Mode != ModeShop {
		return invalidTransition(w.Mode, "close shop")
	}
	w.setMode(ModePlaying)
	w.setHint(hintShopClosed, true)
	return nil
}

// ToggleShop opens the shop while playing and closes it while shopping.
func (w *World) ToggleShop() error {
	if w.Mode == ModeShop {
		return w.CloseShop()
	}
	return w.OpenShop()
}

// Restart begins a fresh run after death.
func (w *World) Restart() error {
	if w.Mode != ModeDead {
		return invalidTransition(w.Mode, "restart")
	}
	w.Reset()
	return nil
}

// Reset clears every entity, restores player, weapon and economy to their
// initial values, and drops straight into play at wave 1. Config, viewport,
// the clock and the random stream survive.
func (w *World) Reset() {
	cfg := w.Cfg
	w.Player = newPlayer(cfg)
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Drops = w.Drops[:0]
	w.Wave = 1
	w.TimeSurvived = 0
	w.spawnTimer = 0
	w.Stats = Stats{}
	w.updateCamera()
	w.setMode(ModePlaying)
	w.setHint(hintRestarted, true)
	logger_config.Infof("[world] run reset")
}

// die is the only way into ModeDead.
func (w *World) die() {
	if w.Mode != ModePlaying {
		return
	}
	w.Player.HP = 0
	w.setMode(ModeDead)
	w.setHint(hintDead, false)
	logger_config.Infof("[world] player died wave=%d time=%.1fs kills=%d",
		w.Wave, w.TimeSurvived, w.Stats.EnemiesKilled)
}
