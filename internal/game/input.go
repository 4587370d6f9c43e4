package game

import (
	"horde-shop/internal/shared/input"
	"horde-shop/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ReadInput samples held keys and the mouse. Aim is converted to world space
// through the camera of the last tick.
func ReadInput(w *world.World) input.State {
	var s input.State

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		s.MoveY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		s.MoveY++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		s.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		s.MoveX++
	}

	cx, cy := ebiten.CursorPosition()
	aim := w.ScreenToWorld(float32(cx), float32(cy))
	s.AimX, s.AimY = aim.X, aim.Y
	s.Fire = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return s
}

// ReadActions turns edge-triggered keys into discrete messages for the
// current mode. The world re-checks every guard, so this only filters noise.
func ReadActions(mode world.Mode) []world.Msg {
	var out []world.Msg

	switch mode {
	case world.ModeStart:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			out = append(out, world.MsgBegin{})
		}

	case world.ModePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			out = append(out, world.MsgReload{})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyE) {
			out = append(out, world.MsgToggleShop{})
		}

	case world.ModeShop:
		if inpututil.IsKeyJustPressed(ebiten.KeyE) {
			out = append(out, world.MsgToggleShop{})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			out = append(out, world.MsgCloseShop{})
		}
		buyKeys := [][2]ebiten.Key{
			{ebiten.Key1, ebiten.KeyKP1},
			{ebiten.Key2, ebiten.KeyKP2},
			{ebiten.Key3, ebiten.KeyKP3},
		}
		for i, keys := range buyKeys {
			if i >= len(world.ShopItems) {
				break
			}
			if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
				out = append(out, world.MsgBuy{Item: world.ShopItems[i]})
			}
		}

	case world.ModeDead:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
			out = append(out, world.MsgRestart{})
		}
	}

	return out
}
