package tty

import (
	"time"

	"horde-shop/internal/world"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeat but never key-ups, so a
// press counts as held for holdWindow.
const holdWindow = 150 * time.Millisecond

type holdKey int

const (
	holdUp holdKey = iota
	holdDown
	holdLeft
	holdRight
	holdFire
	holdCount
)

type keyHold struct {
	last   [holdCount]time.Time
	window time.Duration
}

func newKeyHold() *keyHold {
	return &keyHold{window: holdWindow}
}

func (k *keyHold) press(key holdKey, now time.Time) {
	k.last[key] = now
}

func (k *keyHold) held(key holdKey, now time.Time) bool {
	t := k.last[key]
	return !t.IsZero() && now.Sub(t) < k.window
}

// move returns the held direction; opposite keys cancel out.
func (k *keyHold) move(now time.Time) (x, y float32) {
	if k.held(holdUp, now) {
		y--
	}
	if k.held(holdDown, now) {
		y++
	}
	if k.held(holdLeft, now) {
		x--
	}
	if k.held(holdRight, now) {
		x++
	}
	return x, y
}

func (k *keyHold) reset() {
	k.last = [holdCount]time.Time{}
}

func holdKeyFor(key tcell.Key, r rune) (holdKey, bool) {
	switch key {
	case tcell.KeyUp:
		return holdUp, true
	case tcell.KeyDown:
		return holdDown, true
	case tcell.KeyLeft:
		return holdLeft, true
	case tcell.KeyRight:
		return holdRight, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return holdUp, true
		case 's', 'S':
			return holdDown, true
		case 'a', 'A':
			return holdLeft, true
		case 'd', 'D':
			return holdRight, true
		case ' ':
			return holdFire, true
		}
	}
	return 0, false
}

func isQuit(key tcell.Key, r rune) bool {
	return key == tcell.KeyCtrlC || (key == tcell.KeyRune && (r == 'q' || r == 'Q'))
}

// actionFor maps a discrete key to a world message for the current mode.
func actionFor(mode world.Mode, key tcell.Key, r rune) (world.Msg, bool) {
	switch mode {
	case world.ModeStart:
		if key == tcell.KeyEnter {
			return world.MsgBegin{}, true
		}

	case world.ModePlaying:
		if key != tcell.KeyRune {
			break
		}
		switch r {
		case 'r', 'R':
			return world.MsgReload{}, true
		case 'e', 'E':
			return world.MsgToggleShop{}, true
		}

	case world.ModeShop:
		if key == tcell.KeyEscape {
			return world.MsgCloseShop{}, true
		}
		if key != tcell.KeyRune {
			break
		}
		if r == 'e' || r == 'E' {
			return world.MsgToggleShop{}, true
		}
		if i := int(r - '1'); i >= 0 && i < len(world.ShopItems) {
			return world.MsgBuy{Item: world.ShopItems[i]}, true
		}

	case world.ModeDead:
		if key == tcell.KeyEnter || (key == tcell.KeyRune && (r == 'r' || r == 'R')) {
			return world.MsgRestart{}, true
		}
	}

	return nil, false
}
