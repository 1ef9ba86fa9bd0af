package recall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hue-recall/internal/core"
)

const (
	hudHeight = 3
	swatchGap = 2
	hintColor = "#9a9a9a"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)

	switch g.phase {
	case PhaseRemember:
		g.renderRemember(dst)
	case PhaseRecall:
		g.renderRecall(dst)
	case PhaseReward:
		g.renderReward(dst)
	case PhaseOver:
		g.renderOver(dst)
	}

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, round counter and score.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	rounds := fmt.Sprintf("Round %d/%d", g.round, g.cfg.Gameplay.MaxRounds)
	dst.DrawText(1, 1, rounds)

	score := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(dst.Width()-len(score)-1, 1, score)

	if g.phase == PhaseRemember || g.phase == PhaseRecall {
		status := fmt.Sprintf("%s  %ds", g.phase, g.secondsLeft())
		dst.DrawTextCentered(1, status)
	}
}

// secondsLeft rounds the remaining phase time up to whole seconds.
func (g *Game) secondsLeft() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return int(math.Ceil(float64(g.ticksLeft) / float64(rate)))
}

// playArea returns the region below the HUD, leaving a line for hints.
func playArea(dst *core.Screen) core.Rect {
	return core.NewRect(2, hudHeight, dst.Width()-4, dst.Height()-hudHeight-2)
}

// renderRemember shows the target as one large swatch.
func (g *Game) renderRemember(dst *core.Screen) {
	area := playArea(dst)
	w := core.Min(area.W, 40)
	h := core.Min(area.H, 10)
	swatch := core.NewRect((dst.Width()-w)/2, area.Y+(area.H-h)/2, w, h)

	dst.FillRect(swatch, g.targetHex())
	dst.DrawTextColor(area.X, dst.Height()-1, "Memorize this color  [Enter] ready", hintColor)
}

// renderRecall draws the candidate grid with a box around the cursor.
func (g *Game) renderRecall(dst *core.Screen) {
	cells := g.swatchCells(dst)
	for i, cell := range cells {
		dst.FillRect(cell, g.choices[i].Hex)
	}
	if g.cursor < len(cells) {
		c := cells[g.cursor]
		dst.DrawBox(core.NewRect(c.X-1, c.Y-1, c.W+2, c.H+2))
	}
	dst.DrawTextColor(2, dst.Height()-1, "Arrows move  [Enter] pick", hintColor)
}

// swatchCells lays out one cell per candidate, leaving room for the cursor box.
func (g *Game) swatchCells(dst *core.Screen) []core.Rect {
	area := playArea(dst).Inset(1)
	return core.Grid(area, len(g.choices), g.columns(), swatchGap)
}

// renderReward compares the target with the pick.
func (g *Game) renderReward(dst *core.Screen) {
	if len(g.results) == 0 {
		return
	}
	r := g.results[len(g.results)-1]

	area := playArea(dst)
	w := core.Min((area.W-swatchGap)/2, 24)
	h := core.Min(area.H-3, 6)
	left := core.NewRect(dst.Width()/2-w-swatchGap/2, area.Y+1, w, h)
	right := core.NewRect(dst.Width()/2+swatchGap/2, area.Y+1, w, h)

	dst.DrawText(left.X, area.Y, "Target "+r.Target.Hex)
	dst.FillRect(left, r.Target.Hex)

	if r.TimedOut {
		dst.DrawText(right.X, area.Y, "Time's up!")
	} else {
		dst.DrawText(right.X, area.Y, "Picked "+r.Picked.Hex)
		dst.FillRect(right, r.Picked.Hex)
	}

	y := left.Bottom() + 1
	switch {
	case r.TimedOut:
		dst.DrawTextCentered(y, "No pick this round")
	case r.Picked.Correct:
		dst.DrawTextCentered(y, "Exact match!")
	case g.mode == ModeAccuracy:
		dst.DrawTextCentered(y, fmt.Sprintf("Off by %.1f ΔE", r.Picked.DeltaE))
	default:
		dst.DrawTextCentered(y, "Wrong color")
	}
	dst.DrawTextCentered(y+1, fmt.Sprintf("+%d points", r.Score))
	dst.DrawTextColor(2, dst.Height()-1, "[Enter] next round", hintColor)
}

// renderOver shows the per-round breakdown.
func (g *Game) renderOver(dst *core.Screen) {
	y := hudHeight
	if g.err != nil {
		dst.DrawTextCentered(y, "Could not generate colors")
		dst.DrawTextCentered(y+1, g.err.Error())
		return
	}

	dst.DrawTextCentered(y, "GAME OVER")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Total: %d", g.score))

	for i, r := range g.results {
		line := fmt.Sprintf("Round %d  %s  %3d", i+1, r.Target.Hex, r.Score)
		x := (dst.Width() - len([]rune(line)) - 3) / 2
		dst.DrawText(x, y+3+i, line)
		dst.FillRect(core.NewRect(x+len([]rune(line))+1, y+3+i, 2, 1), r.Target.Hex)
	}

	if g.unlocked {
		dst.DrawTextCentered(y+4+len(g.results), "Next difficulty unlocked!")
	}
	dst.DrawTextColor(2, dst.Height()-1, "[R] restart  [B] menu  [Q] quit", hintColor)
}

func (g *Game) targetHex() string {
	if len(g.set.Colors) == 0 {
		return ""
	}
	return g.set.Colors[g.set.TargetIndex()].Hex
}
