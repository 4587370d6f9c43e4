package tty

import (
	"context"
	"time"

	"horde-shop/internal/commons/logger_config"
	"horde-shop/internal/shared/input"
	"horde-shop/internal/telemetry"
	"horde-shop/internal/world"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond // ~30 FPS is plenty for a terminal

// Host runs a world inside a terminal. Only Run's goroutine touches the world.
type Host struct {
	screen tcell.Screen
	w      *world.World

	cols, rows int

	keys      *keyHold
	mouseX    int
	mouseY    int
	mouseSeen bool
	mouseFire bool

	// last held direction, used for aiming without a mouse
	faceX, faceY float32

	// mode seen after the previous frame
	lastMode world.Mode

	// telemetry sink, nil when disabled
	telemetry *telemetry.Sink
	stats     telemetry.Tracker
}

// New takes an initialised screen; the caller owns Fini.
func New(screen tcell.Screen, cfg world.Config, seed int64, sink *telemetry.Sink) *Host {
	h := &Host{
		screen:    screen,
		w:         world.NewWorld(cfg, seed),
		keys:      newKeyHold(),
		faceX:     1,
		telemetry: sink,
	}
	screen.EnableMouse()
	screen.HideCursor()
	h.resize()
	return h
}

// Run pumps terminal events and frames until ctx is done or the player quits.
func (h *Host) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := h.handleEvent(ev, time.Now()); quit {
				logger_config.Infof("[tty] quit requested")
				return nil
			}

		case now := <-ticker.C:
			h.frame(now.Sub(last), now)
			last = now
		}
	}
}

func (h *Host) resize() {
	h.cols, h.rows = h.screen.Size()
	vw, vh := viewportFor(max(h.cols, minCols), max(h.rows, minRows))
	h.w.SetViewport(vw, vh)
}

// handleEvent applies one terminal event and reports whether to quit.
func (h *Host) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()

	case *tcell.EventKey:
		key, r := ev.Key(), ev.Rune()
		if isQuit(key, r) {
			return true
		}
		if hk, ok := holdKeyFor(key, r); ok {
			h.keys.press(hk, now)
			return false
		}
		if msg, ok := actionFor(h.w.Mode, key, r); ok {
			h.w.Enqueue(msg)
		}

	case *tcell.EventMouse:
		h.mouseX, h.mouseY = ev.Position()
		h.mouseSeen = true
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.mouseFire && h.w.Mode == world.ModeStart {
			h.w.Enqueue(world.MsgBegin{})
		}
		h.mouseFire = pressed
	}

	return false
}

func (h *Host) frame(dt time.Duration, now time.Time) {
	h.sendTelemetry(telemetry.Event{Kind: telemetry.KindFrame, F: float32(dt.Seconds()), At: now})

	h.w.Enqueue(world.MsgInput{Input: h.input(now)})
	h.w.Tick(float32(dt.Seconds()))
	h.syncMode()

	for _, ev := range h.stats.Deltas(h.w.Stats, now) {
		h.sendTelemetry(ev)
	}

	if h.cols < minCols || h.rows < minRows {
		h.screen.Clear()
		putStr(h.screen, 0, 0, h.cols, "terminal too small", styleBad)
		h.screen.Show()
		return
	}
	drawSnapshot(h.screen, h.w.BuildSnapshot(), h.w.Cfg, h.cols, h.rows)
	h.screen.Show()
}

// syncMode drops held keys whenever the mode changes, so a direction held
// into the shop or death screen does not carry over into the next run.
func (h *Host) syncMode() {
	if h.w.Mode == h.lastMode {
		return
	}
	h.lastMode = h.w.Mode
	h.keys.reset()
	h.mouseFire = false
}

// input composes held keys and the mouse into one input state. Without a
// mouse the player aims along the last movement direction.
func (h *Host) input(now time.Time) input.State {
	mx, my := h.keys.move(now)
	s := input.State{
		MoveX: mx,
		MoveY: my,
		Fire:  h.mouseFire || h.keys.held(holdFire, now),
	}

	if s.Moving() {
		h.faceX, h.faceY = mx, my
	}

	if h.mouseSeen {
		sx, sy := cellToScreen(h.mouseX, h.mouseY)
		aim := h.w.ScreenToWorld(sx, sy)
		s.AimX, s.AimY = aim.X, aim.Y
	} else {
		p := h.w.Player.Pos
		s.AimX, s.AimY = p.X+h.faceX*100, p.Y+h.faceY*100
	}

	return s
}

func (h *Host) sendTelemetry(ev telemetry.Event) {
	if h.telemetry == nil {
		return
	}
	h.telemetry.Emit(ev)
}
