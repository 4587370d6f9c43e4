package tty

import (
	"fmt"

	"horde-shop/internal/world"

	"github.com/gdamore/tcell/v2"
)

// Each terminal cell covers cellW x cellH world units; cells are about twice
// as tall as they are wide.
const (
	cellW    = 12
	cellH    = 24
	hudRows  = 3
	minCols  = 20
	minRows  = hudRows + 4
	gridStep = 200
)

// cellSetter is the part of tcell.Screen the renderer needs.
type cellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleZone   = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleDrop   = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	styleWalker = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleRunner = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleShot   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGood   = tcell.StyleDefault.Foreground(tcell.ColorPaleGreen)
	styleBad    = tcell.StyleDefault.Foreground(tcell.ColorSalmon)
	styleMenu   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// mapRows is how many rows of the terminal show the world.
func mapRows(rows int) int {
	return max(1, rows-hudRows)
}

// viewportFor is the world-space viewport of a cols x rows terminal.
func viewportFor(cols, rows int) (float32, float32) {
	return float32(cols * cellW), float32(mapRows(rows) * cellH)
}

// cellToScreen maps a terminal cell to the centre of the viewport area it covers.
func cellToScreen(x, y int) (float32, float32) {
	return (float32(x) + 0.5) * cellW, (float32(y) + 0.5) * cellH
}

func worldToCell(s world.Snapshot, p world.Vec2) (int, int) {
	sp := s.WorldToScreen(p)
	if sp.X < 0 || sp.Y < 0 {
		return -1, -1
	}
	return int(sp.X / cellW), int(sp.Y / cellH)
}

func drawSnapshot(dst cellSetter, s world.Snapshot, cfg world.Config, cols, rows int) {
	mr := mapRows(rows)

	put := func(x, y int, r rune, st tcell.Style) {
		if x >= 0 && y >= 0 && x < cols && y < mr {
			dst.SetContent(x, y, r, nil, st)
		}
	}

	// floor and safe zone
	for y := range mr {
		for x := range cols {
			sx, sy := cellToScreen(x, y)
			p := s.Camera.Add(world.Vec2{X: sx, Y: sy})

			r, st := ' ', tcell.StyleDefault
			inside := p.X <= s.W && p.Y <= s.H
			if inside && int(p.X)%gridStep < cellW && int(p.Y)%gridStep < cellH {
				r, st = '.', styleFloor
			}
			if s.SafeZone.Contains(p) {
				st = styleZone
			}
			dst.SetContent(x, y, r, nil, st)
		}
	}

	for _, d := range s.Drops {
		x, y := worldToCell(s, d.Pos)
		put(x, y, '$', styleDrop)
	}
	for _, e := range s.Enemies {
		x, y := worldToCell(s, e.Pos)
		if e.Kind == world.EnemyRunner {
			put(x, y, 'Z', styleRunner)
		} else {
			put(x, y, 'z', styleWalker)
		}
	}
	for _, p := range s.Projectiles {
		x, y := worldToCell(s, p.Pos)
		put(x, y, '*', styleShot)
	}
	px, py := worldToCell(s, s.Player.Pos)
	put(px, py, '@', stylePlayer)

	// HUD
	for y := mr; y < rows; y++ {
		for x := range cols {
			dst.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
	putStr(dst, 0, mr, cols, hudLine(s), styleHUD)
	hintStyle := styleBad
	if s.Hint.OK {
		hintStyle = styleGood
	}
	putStr(dst, 0, mr+1, cols, s.Hint.Text, hintStyle)
	putStr(dst, 0, mr+2, cols, controlsLine(s.Mode), styleHUD)

	if lines := overlayLines(s, cfg); len(lines) > 0 {
		drawBox(dst, lines, cols, mr)
	}
}

func hudLine(s world.Snapshot) string {
	p := s.Player
	ammo := fmt.Sprintf("%d/%d [%d]", p.Ammo, p.MagSize, p.Reserve)
	if p.Reloading {
		ammo = fmt.Sprintf("reloading %.0f%%", p.ReloadFrac*100)
	}
	return fmt.Sprintf("HP %.0f/%.0f  $%d  Ammo %s  Wave %d  %.1fs  Kills %d  Dmg x%.2f",
		p.HP, p.MaxHP, p.Cash, ammo, s.Wave, s.TimeSurvived, s.Stats.EnemiesKilled, p.DamageMul)
}

func controlsLine(m world.Mode) string {
	switch m {
	case world.ModeStart:
		return "Enter/click: begin  q: quit"
	case world.ModeShop:
		return "1-3: buy  e/Esc: close  q: quit"
	case world.ModeDead:
		return "Enter/r: restart  q: quit"
	default:
		return "wasd/arrows: move  mouse: aim+fire  space: fire  r: reload  e: shop  q: quit"
	}
}

func overlayLines(s world.Snapshot, cfg world.Config) []string {
	switch s.Mode {
	case world.ModeStart:
		return []string{
			"HORDE SHOP",
			"",
			"Survive the horde. Loot cash.",
			"The green Safe Zone is where the shop opens.",
			"",
			"Press Enter to begin",
		}
	case world.ModeShop:
		lines := []string{fmt.Sprintf("SHOP  (cash: $%d)", s.Player.Cash), ""}
		for i, item := range world.ShopItems {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, cfg.ItemLabel(item)))
		}
		return lines
	case world.ModeDead:
		return []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Time: %.1fs  Wave: %d", s.TimeSurvived, s.Wave),
			fmt.Sprintf("Kills: %d  Cash collected: $%d", s.Stats.EnemiesKilled, s.Stats.CashCollected),
		}
	}
	return nil
}

func drawBox(dst cellSetter, lines []string, cols, rows int) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	x0 := max(0, (cols-w)/2)
	y0 := max(0, (rows-h)/2)
	for y := y0; y < y0+h && y < rows; y++ {
		for x := x0; x < x0+w && x < cols; x++ {
			dst.SetContent(x, y, ' ', nil, styleMenu)
		}
	}
	for i, l := range lines {
		if y := y0 + 1 + i; y < rows {
			putStr(dst, x0+2, y, cols, l, styleMenu)
		}
	}
}

func putStr(dst cellSetter, x, y, cols int, s string, st tcell.Style) {
	for _, r := range s {
		if x >= cols {
			return
		}
		dst.SetContent(x, y, r, nil, st)
		x++
	}
}
