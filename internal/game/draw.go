package game

import (
	"fmt"
	"image/color"

	"horde-shop/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

const gridStep = 100

var (
	bgColor      = color.RGBA{15, 15, 18, 255}
	floorColor   = color.RGBA{30, 30, 36, 255}
	gridColor    = color.RGBA{40, 40, 48, 255}
	zoneFill     = color.RGBA{10, 34, 24, 70}
	zoneEdge     = colornames.Mediumseagreen
	walkerColor  = color.RGBA{220, 80, 80, 255}
	runnerColor  = colornames.Darkorange
	shotColor    = color.RGBA{255, 255, 100, 255}
	dropColor    = colornames.Gold
	playerColor  = color.RGBA{80, 200, 120, 255}
	barBack      = color.RGBA{0, 0, 0, 160}
	barFront     = colornames.Limegreen
	hintGood     = colornames.Palegreen
	hintBad      = colornames.Salmon
	overlayColor = color.RGBA{0, 0, 0, 180}
)

// render draws one snapshot. It never reads the live world.
func render(screen *ebiten.Image, s world.Snapshot, cfg world.Config) {
	screen.Fill(bgColor)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawFloor(screen, s)

	// safe zone
	c := s.WorldToScreen(s.SafeZone.Pos)
	vector.FillCircle(screen, c.X, c.Y, s.SafeZone.R, zoneFill, true)
	vector.StrokeCircle(screen, c.X, c.Y, s.SafeZone.R, 2, zoneEdge, true)

	// loot
	for _, d := range s.Drops {
		p := s.WorldToScreen(d.Pos)
		vector.FillCircle(screen, p.X, p.Y, d.R, dropColor, true)
	}

	// enemies
	for _, e := range s.Enemies {
		p := s.WorldToScreen(e.Pos)
		clr := walkerColor
		if e.Kind == world.EnemyRunner {
			clr = runnerColor
		}
		vector.FillCircle(screen, p.X, p.Y, e.R, clr, true)
		if e.HPFrac < 1 {
			drawBar(screen, p.X-e.R, p.Y-e.R-6, e.R*2, 3, e.HPFrac)
		}
	}

	// projectiles, drawn as short tracers
	for _, pr := range s.Projectiles {
		head := s.WorldToScreen(pr.Pos)
		tail := head.Sub(pr.Vel.Norm().Mul(10))
		vector.StrokeLine(screen, tail.X, tail.Y, head.X, head.Y, 2, shotColor, true)
	}

	// player
	pp := s.WorldToScreen(s.Player.Pos)
	vector.FillCircle(screen, pp.X, pp.Y, s.Player.R, playerColor, true)
	if s.Player.Reloading {
		drawBar(screen, pp.X-s.Player.R, pp.Y+s.Player.R+4, s.Player.R*2, 3, s.Player.ReloadFrac)
	}

	drawHUD(screen, s, sh)

	switch s.Mode {
	case world.ModeStart:
		drawStart(screen, sw, sh)
	case world.ModeShop:
		drawShop(screen, s, cfg, sw, sh)
	case world.ModeDead:
		drawDead(screen, s, sw, sh)
	}
}

func drawFloor(screen *ebiten.Image, s world.Snapshot) {
	o := s.WorldToScreen(world.Vec2{})
	vector.FillRect(screen, o.X, o.Y, s.W, s.H, floorColor, false)

	startX := float32(int(s.Camera.X/gridStep)) * gridStep
	for x := startX; x <= s.Camera.X+s.ViewW && x <= s.W; x += gridStep {
		a := s.WorldToScreen(world.Vec2{X: x, Y: 0})
		b := s.WorldToScreen(world.Vec2{X: x, Y: s.H})
		vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 1, gridColor, false)
	}
	startY := float32(int(s.Camera.Y/gridStep)) * gridStep
	for y := startY; y <= s.Camera.Y+s.ViewH && y <= s.H; y += gridStep {
		a := s.WorldToScreen(world.Vec2{X: 0, Y: y})
		b := s.WorldToScreen(world.Vec2{X: s.W, Y: y})
		vector.StrokeLine(screen, a.X, a.Y, b.X, b.Y, 1, gridColor, false)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h, frac float32) {
	vector.FillRect(screen, x, y, w, h, barBack, false)
	vector.FillRect(screen, x, y, w*frac, h, barFront, false)
}

func drawHUD(screen *ebiten.Image, s world.Snapshot, sh int) {
	p := s.Player

	ammo := fmt.Sprintf("Ammo: %d/%d  Reserve: %d", p.Ammo, p.MagSize, p.Reserve)
	if p.Reloading {
		ammo += fmt.Sprintf("  (reloading %.0f%%)", p.ReloadFrac*100)
	}
	zone := ""
	if s.InSafeZone {
		zone = "  [SAFE ZONE]"
	}

	hud := fmt.Sprintf(
		"HP: %.0f/%.0f  Cash: $%d\n%s\nWave: %d  Time: %.1fs  Kills: %d\nDamage: x%.2f  Enemies: %d%s",
		p.HP, p.MaxHP, p.Cash,
		ammo,
		s.Wave, s.TimeSurvived, s.Stats.EnemiesKilled,
		p.DamageMul, len(s.Enemies), zone,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if s.Hint.Text == "" {
		return
	}
	clr := hintBad
	if s.Hint.OK {
		clr = hintGood
	}
	y := sh - 24
	vector.FillRect(screen, 8, float32(y)+2, 4, 12, clr, false)
	ebitenutil.DebugPrintAt(screen, s.Hint.Text, 18, y)
}

func dim(screen *ebiten.Image, sw, sh int) {
	vector.FillRect(screen, 0, 0, float32(sw), float32(sh), overlayColor, false)
}

func drawStart(screen *ebiten.Image, sw, sh int) {
	dim(screen, sw, sh)
	x, y := 12, 120
	lines := []string{
		"HORDE SHOP",
		"",
		"WASD / arrows: move      Mouse: aim, hold to fire",
		"R: reload                E: shop (inside the Safe Zone)",
		"",
		"Press Enter or click to begin",
	}
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += 18
	}
}

func drawShop(screen *ebiten.Image, s world.Snapshot, cfg world.Config, sw, sh int) {
	dim(screen, sw, sh)
	x, y := 12, 120
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SHOP  (cash: $%d)", s.Player.Cash), x, y)
	y += 22

	for i, item := range world.ShopItems {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("[%d] %s", i+1, cfg.ItemLabel(item)), x, y)
		y += 18
	}
	y += 8
	ebitenutil.DebugPrintAt(screen, "Press 1-3 to buy, E or Esc to close", x, y)
}

func drawDead(screen *ebiten.Image, s world.Snapshot, sw, sh int) {
	dim(screen, sw, sh)
	x, y := 8, 90
	lines := []string{
		"GAME OVER",
		"Press Enter or R to restart",
		fmt.Sprintf("Time: %.1fs", s.TimeSurvived),
		fmt.Sprintf("Wave: %d", s.Wave),
		fmt.Sprintf("Kills: %d", s.Stats.EnemiesKilled),
		fmt.Sprintf("Damage Taken: %.0f", s.Stats.DamageTaken),
		fmt.Sprintf("Cash Collected: $%d", s.Stats.CashCollected),
	}
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y)
		y += 20
	}
}
