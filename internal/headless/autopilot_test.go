package headless

import (
	"testing"

	"horde-shop/internal/world"
)

func playingWorld(t *testing.T) *world.World {
	t.Helper()
	w := world.NewWorld(world.DefaultConfig(), 9)
	if err := w.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	return w
}

func lastInput(t *testing.T, msgs []world.Msg) world.MsgInput {
	t.Helper()
	for i := len(msgs) - 1; i >= 0; i-- {
		if in, ok := msgs[i].(world.MsgInput); ok {
			return in
		}
	}
	t.Fatalf("no input message in %#v", msgs)
	return world.MsgInput{}
}

func has(msgs []world.Msg, want world.Msg) bool {
	for _, m := range msgs {
		if m == want {
			return true
		}
	}
	return false
}

func TestAutopilotBeginsFromStart(t *testing.T) {
	w := world.NewWorld(world.DefaultConfig(), 1)

	msgs := DefaultAutopilot().Decide(w)
	if len(msgs) != 1 || msgs[0] != (world.MsgBegin{}) {
		t.Fatalf("got %#v", msgs)
	}
}

func TestAutopilotAimsAndFiresAtNearestEnemy(t *testing.T) {
	w := playingWorld(t)
	p := w.Player.Pos
	w.Enemies = append(w.Enemies,
		world.Enemy{ID: 1, Pos: p.Add(world.Vec2{X: 400}), R: 18, HP: 10, MaxHP: 10},
		world.Enemy{ID: 2, Pos: p.Add(world.Vec2{Y: 300}), R: 18, HP: 10, MaxHP: 10},
	)

	in := lastInput(t, DefaultAutopilot().Decide(w)).Input
	if in.AimX != p.X || in.AimY != p.Y+300 || !in.Fire {
		t.Fatalf("input: %+v", in)
	}
	if in.MoveX != 0 || in.MoveY != 0 {
		t.Fatalf("no need to kite at 300: %+v", in)
	}
}

func TestAutopilotKitesAndReloads(t *testing.T) {
	w := playingWorld(t)
	p := w.Player.Pos
	w.Enemies = append(w.Enemies, world.Enemy{ID: 1, Pos: p.Add(world.Vec2{X: 50}), R: 18, HP: 10, MaxHP: 10})
	w.Player.Weapon.AmmoInMag = 0

	msgs := DefaultAutopilot().Decide(w)
	if !has(msgs, world.MsgReload{}) {
		t.Fatalf("expected reload in %#v", msgs)
	}
	in := lastInput(t, msgs).Input
	if in.MoveX >= 0 || in.Fire {
		t.Fatalf("should back off without firing: %+v", in)
	}
}

func TestAutopilotRetreatsAndShops(t *testing.T) {
	w := playingWorld(t)
	w.Player.Pos = world.Vec2{X: 300, Y: 300}
	w.Player.Cash = 80

	in := lastInput(t, DefaultAutopilot().Decide(w)).Input
	if in.MoveX <= 0 || in.MoveY <= 0 {
		t.Fatalf("should head to the safe zone: %+v", in)
	}

	w.Player.Pos = w.SafeZone.Pos
	if msgs := DefaultAutopilot().Decide(w); !has(msgs, world.MsgToggleShop{}) {
		t.Fatalf("should open the shop in the zone: %#v", msgs)
	}
}

func TestAutopilotShoppingEndsWithClose(t *testing.T) {
	w := playingWorld(t)
	w.Player.Cash = 100
	w.Player.HP = 40
	if err := w.OpenShop(); err != nil {
		t.Fatalf("open shop: %v", err)
	}

	pilot := DefaultAutopilot()
	for range 20 {
		for _, m := range pilot.Decide(w) {
			w.Enqueue(m)
		}
		w.Tick(1.0 / 60)
		if w.Mode == world.ModePlaying {
			break
		}
	}

	if w.Mode != world.ModePlaying {
		t.Fatalf("autopilot never left the shop, mode=%s", w.Mode)
	}
	if w.Stats.Purchases == 0 || w.Player.HP <= 40 {
		t.Fatalf("expected a medkit purchase: purchases=%d hp=%.0f", w.Stats.Purchases, w.Player.HP)
	}
	if w.Player.Cash >= w.Cfg.DamagePrice {
		t.Fatalf("left the shop with $%d unspent", w.Player.Cash)
	}
}
