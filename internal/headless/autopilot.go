package headless

import (
	"horde-shop/internal/shared/input"
	"horde-shop/internal/world"
)

// Autopilot is a simple scripted player: shoot the nearest enemy, keep some
// distance, and fall back to the safe zone to heal and spend.
type Autopilot struct {
	RetreatHP   float32 // fraction of max hp that triggers a retreat
	ShopCash    int     // cash that triggers a shopping trip
	FireRange   float32
	KiteRange   float32 // back off from enemies closer than this
	MedkitBelow float32 // buy medkits while hp fraction is under this
}

func DefaultAutopilot() Autopilot {
	return Autopilot{
		RetreatHP:   0.45,
		ShopCash:    60,
		FireRange:   520,
		KiteRange:   140,
		MedkitBelow: 0.7,
	}
}

// Decide returns the messages to enqueue before the next tick.
func (a Autopilot) Decide(w *world.World) []world.Msg {
	switch w.Mode {
	case world.ModeStart:
		return []world.Msg{world.MsgBegin{}}
	case world.ModeShop:
		return []world.Msg{a.shop(w)}
	case world.ModePlaying:
		return a.play(w)
	default:
		return nil
	}
}

func (a Autopilot) shop(w *world.World) world.Msg {
	p := w.Player
	cfg := w.Cfg

	switch {
	case p.HP < p.MaxHP*a.MedkitBelow && p.Cash >= cfg.MedkitPrice:
		return world.MsgBuy{Item: world.ItemMedkit}
	case p.Weapon.Reserve < 2*p.Weapon.MagSize && p.Cash >= cfg.AmmoPrice:
		return world.MsgBuy{Item: world.ItemAmmo}
	case p.Cash >= cfg.DamagePrice:
		return world.MsgBuy{Item: world.ItemDamage}
	default:
		return world.MsgCloseShop{}
	}
}

func (a Autopilot) wantsShop(w *world.World) bool {
	p := w.Player
	if p.Cash >= a.ShopCash {
		return true
	}
	if p.HP < p.MaxHP*a.MedkitBelow && p.Cash >= w.Cfg.MedkitPrice {
		return true
	}
	outOfAmmo := p.Weapon.AmmoInMag == 0 && p.Weapon.Reserve == 0
	return outOfAmmo && p.Cash >= w.Cfg.AmmoPrice
}

func (a Autopilot) play(w *world.World) []world.Msg {
	var out []world.Msg
	p := w.Player
	g := p.Weapon

	if g.AmmoInMag == 0 && g.Reserve > 0 && !g.Reloading {
		out = append(out, world.MsgReload{})
	}

	in := input.State{AimX: p.Pos.X + 1, AimY: p.Pos.Y}

	target, d, ok := nearestEnemy(w)
	if ok {
		in.AimX, in.AimY = target.X, target.Y
		in.Fire = d <= a.FireRange && g.AmmoInMag > 0
	}

	retreat := p.HP < p.MaxHP*a.RetreatHP || a.wantsShop(w) || (g.AmmoInMag == 0 && g.Reserve == 0)
	switch {
	case retreat && !w.InSafeZone():
		dir := w.SafeZone.Pos.Sub(p.Pos).Norm()
		in.MoveX, in.MoveY = dir.X, dir.Y
	case retreat && a.wantsShop(w):
		out = append(out, world.MsgToggleShop{})
	case ok && d < a.KiteRange:
		dir := p.Pos.Sub(target).Norm()
		in.MoveX, in.MoveY = dir.X, dir.Y
	}

	return append(out, world.MsgInput{Input: in})
}

func nearestEnemy(w *world.World) (world.Vec2, float32, bool) {
	best := float32(-1)
	var pos world.Vec2
	for _, e := range w.Enemies {
		d := e.Pos.Sub(w.Player.Pos).Len()
		if best < 0 || d < best {
			best, pos = d, e.Pos
		}
	}
	return pos, best, best >= 0
}
