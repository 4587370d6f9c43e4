package game

import (
	"time"

	"horde-shop/internal/telemetry"
	"horde-shop/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	w *world.World

	last time.Time

	// telemetry sink, nil when disabled
	telemetry *telemetry.Sink
	stats     telemetry.Tracker
}

func New(cfg world.Config, seed int64, withTelemetry bool) *Game {
	g := &Game{
		w:    world.NewWorld(cfg, seed),
		last: time.Now(),
	}
	if withTelemetry {
		g.telemetry = telemetry.NewSink()
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()

	frameDt := now.Sub(g.last)
	g.last = now
	g.sendTelemetry(telemetry.Event{
		Kind: telemetry.KindFrame,
		F:    float32(frameDt.Seconds()),
		At:   now,
	})

	for _, m := range ReadActions(g.w.Mode) {
		g.w.Enqueue(m)
	}
	g.w.Enqueue(world.MsgInput{Input: ReadInput(g.w)})

	// the world clamps long frames itself
	g.w.Tick(float32(frameDt.Seconds()))

	for _, ev := range g.stats.Deltas(g.w.Stats, now) {
		g.sendTelemetry(ev)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	render(screen, g.w.BuildSnapshot(), g.w.Cfg)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	g.w.SetViewport(float32(outsideW), float32(outsideH))
	return outsideW, outsideH
}

func (g *Game) Close() {
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}
	// Emit drops on backpressure so the frame never stalls.
	g.telemetry.Emit(ev)
}
