package tty

import (
	"testing"
	"time"

	"horde-shop/internal/world"
)

func TestModeChangeDropsHeldKeys(t *testing.T) {
	w := world.NewWorld(world.DefaultConfig(), 1)
	h := &Host{w: w, keys: newKeyHold(), faceX: 1}
	now := time.Unix(20, 0)

	h.keys.press(holdLeft, now)
	h.mouseFire = true
	h.syncMode()
	if !h.keys.held(holdLeft, now) || !h.mouseFire {
		t.Fatal("held input cleared without a mode change")
	}

	if err := w.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	h.syncMode()

	if h.keys.held(holdLeft, now) || h.mouseFire {
		t.Fatal("held input survived the mode change")
	}
	if in := h.input(now); in.Moving() || in.Fire {
		t.Fatalf("input after mode change: %+v", in)
	}
}
