package telemetry

import (
	"time"

	"horde-shop/internal/world"
)

// Tracker turns cumulative run stats into per-frame delta events. A run
// reset shows up as counters going backwards and just rebases the tracker.
type Tracker struct {
	kills  int
	damage float32
	cash   int
	spent  int
}

func (t *Tracker) Deltas(s world.Stats, at time.Time) []Event {
	var out []Event

	if d := s.EnemiesKilled - t.kills; d > 0 {
		out = append(out, Event{Kind: KindKill, I: d, At: at})
	}
	t.kills = s.EnemiesKilled

	if d := s.DamageTaken - t.damage; d > 0 {
		out = append(out, Event{Kind: KindDamage, F: d, At: at})
	}
	t.damage = s.DamageTaken

	if d := s.CashCollected - t.cash; d > 0 {
		out = append(out, Event{Kind: KindCash, I: d, At: at})
	}
	t.cash = s.CashCollected

	if d := s.CashSpent - t.spent; d > 0 {
		out = append(out, Event{Kind: KindSpend, I: d, At: at})
	}
	t.spent = s.CashSpent

	return out
}
