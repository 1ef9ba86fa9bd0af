// Package recall implements the color memory game.
// Each round shows a target color for a few seconds, then asks the player to
// find it among decoys: perceptually similar ones in accuracy mode, random
// unrelated ones in speed mode.
package recall

import (
	"math/rand"

	"github.com/vovakirdan/hue-recall/internal/config"
	"github.com/vovakirdan/hue-recall/internal/core"
	"github.com/vovakirdan/hue-recall/internal/palette"
	"github.com/vovakirdan/hue-recall/internal/registry"
)

// Mode selects which decoys a round uses.
type Mode int

const (
	ModeAccuracy Mode = iota // Similar decoys, scored by distance
	ModeSpeed                // Unrelated decoys, scored by time left
)

// String returns the mode name used in menus and score tables.
func (m Mode) String() string {
	if m == ModeSpeed {
		return "speed"
	}
	return "accuracy"
}

// Phase is the screen a round is currently on.
type Phase int

const (
	PhaseRemember Phase = iota // Target shown, countdown running
	PhaseRecall                // Swatch grid shown, player picks
	PhaseReward                // Round result shown
	PhaseOver                  // All rounds played
)

// String returns a short label for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRemember:
		return "Remember"
	case PhaseRecall:
		return "Recall"
	case PhaseReward:
		return "Reward"
	case PhaseOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Layout limits
const (
	minScreenW = 30
	minScreenH = 14
	maxColumns = 5
)

// RoundResult records how one round went.
type RoundResult struct {
	Target   palette.Candidate
	Picked   palette.Candidate
	TimedOut bool
	Score    int
}

// Game implements the recall game logic.
type Game struct {
	mode Mode

	// Set before Reset; survive restarts
	configPath       string
	difficultyPreset config.DifficultyPreset
	difficultyNumber int

	runtime    core.RuntimeConfig
	cfg        config.RecallConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	phase      Phase
	round      int // 1-based
	set        palette.Set
	generation palette.GenerationConfig
	choices    []palette.Candidate // set.Colors in display order
	cursor     int
	ticksLeft  int
	phaseTicks int
	results    []RoundResult
	score      int
	unlocked   bool
	err        error

	paused   bool
	tooSmall bool
}

// New creates an accuracy mode game.
func New() *Game {
	return &Game{mode: ModeAccuracy}
}

// NewSpeed creates a speed mode game.
func NewSpeed() *Game {
	return &Game{mode: ModeSpeed}
}

func init() {
	registry.Register("recall", func() registry.Game {
		return New()
	})
	registry.Register("recall_speed", func() registry.Game {
		return NewSpeed()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSpeed {
		return "recall_speed"
	}
	return "recall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSpeed {
		return "Hue Recall (Speed)"
	}
	return "Hue Recall"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetConfigPath sets the custom config path used on the next Reset.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func (g *Game) SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		g.difficultyPreset = config.DifficultyEasy
	case "normal":
		g.difficultyPreset = config.DifficultyNormal
	case "hard":
		g.difficultyPreset = config.DifficultyHard
	case "fixed":
		g.difficultyPreset = config.DifficultyFixed
	default:
		g.difficultyPreset = ""
	}
}

// SetDifficulty selects a difficulty number (1..config.MaxDifficulty).
// Zero falls back to the preset or config.
func (g *Game) SetDifficulty(n int) {
	g.difficultyNumber = core.Clamp(n, 0, config.MaxDifficulty)
}

// Difficulty returns the difficulty number scores are filed under.
func (g *Game) Difficulty() int {
	if g.difficultyNumber > 0 {
		return g.difficultyNumber
	}
	return config.DifficultyForLevel(g.cfg.Difficulty.InitialLevel)
}

// Unlocked reports whether the finished game earned the next difficulty.
func (g *Game) Unlocked() bool {
	return g.unlocked
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRecall(g.configPath)
	if err != nil {
		cfg = config.DefaultRecallConfig()
	}
	if g.difficultyPreset != "" {
		config.ApplyRecallPreset(&cfg, g.difficultyPreset)
	}
	if g.difficultyNumber > 0 {
		config.ApplyDifficultyNumber(&cfg, g.difficultyNumber)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = palette.NewSource(runtime.Seed)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.results = g.results[:0]
	g.score = 0
	g.unlocked = false
	g.paused = false
	g.err = nil

	g.startRound(1)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// startRound generates the colors for a round and shows the target.
func (g *Game) startRound(round int) {
	g.round = round

	var (
		set palette.Set
		err error
	)
	if g.mode == ModeSpeed {
		set, err = palette.GenerateUnrelatedSet(g.difficulty.SpeedDecoys(g.cfg.Gameplay.SpeedDecoys, round), g.rng)
	} else {
		g.generation = g.difficulty.Generation(g.cfg.Generation, round)
		set, err = palette.GenerateFairSet(g.generation, g.rng)
	}
	if err != nil {
		g.err = err
		g.phase = PhaseOver
		return
	}

	g.set = set
	g.choices = append(g.choices[:0], set.Colors...)
	palette.Shuffle(g.choices, g.rng)
	g.cursor = 0
	g.enterPhase(PhaseRemember, g.cfg.Gameplay.RememberSeconds)
}

func (g *Game) enterPhase(p Phase, seconds float64) {
	g.phase = p
	g.phaseTicks = core.Max(1, g.runtime.TicksFor(seconds))
	g.ticksLeft = g.phaseTicks
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseOver || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseRemember:
		g.ticksLeft--
		if in.Has(core.ActionConfirm) || g.ticksLeft <= 0 {
			g.enterPhase(PhaseRecall, g.difficulty.RecallSeconds(g.cfg.Gameplay.RecallSeconds, g.round))
		}

	case PhaseRecall:
		g.moveCursor(in)
		if in.Has(core.ActionConfirm) {
			g.pick(g.cursor)
			break
		}
		g.ticksLeft--
		if g.ticksLeft <= 0 {
			g.timeout()
		}

	case PhaseReward:
		g.ticksLeft--
		if in.Has(core.ActionConfirm) || g.ticksLeft <= 0 {
			g.nextRound()
		}
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input to the swatch cursor.
func (g *Game) moveCursor(in core.InputFrame) {
	n := len(g.choices)
	cols := g.columns()

	switch {
	case in.Has(core.ActionLeft):
		if g.cursor > 0 {
			g.cursor--
		}
	case in.Has(core.ActionRight):
		if g.cursor < n-1 {
			g.cursor++
		}
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < n {
			g.cursor += cols
		}
	}
}

// columns returns how many swatches fit on one grid row.
func (g *Game) columns() int {
	return core.Min(len(g.choices), maxColumns)
}

// pick scores the chosen swatch and shows the reward screen.
func (g *Game) pick(i int) {
	picked := g.choices[i]
	var score int
	if g.mode == ModeSpeed {
		score = SpeedScore(picked, g.ticksLeft, g.phaseTicks, g.cfg.Gameplay.MaxRoundScore)
	} else {
		score = AccuracyScore(picked, g.generation.DeltaLimit, g.cfg.Gameplay.MaxRoundScore)
	}
	g.finishRound(RoundResult{Picked: picked, Score: score})
}

// timeout ends the round with no pick.
func (g *Game) timeout() {
	g.finishRound(RoundResult{TimedOut: true})
}

func (g *Game) finishRound(r RoundResult) {
	r.Target = g.set.Colors[g.set.TargetIndex()]
	g.results = append(g.results, r)
	g.score += r.Score
	g.enterPhase(PhaseReward, g.cfg.Gameplay.RewardSeconds)
}

// nextRound starts the following round or ends the game.
func (g *Game) nextRound() {
	if g.round >= g.cfg.Gameplay.MaxRounds {
		g.phase = PhaseOver
		g.unlocked = g.earnedUnlock()
		return
	}
	g.startRound(g.round + 1)
}

// earnedUnlock reports whether the total reached the unlock share of the
// best possible total.
func (g *Game) earnedUnlock() bool {
	best := g.cfg.Gameplay.MaxRounds * g.cfg.Gameplay.MaxRoundScore
	return best > 0 && float64(g.score) >= g.cfg.Gameplay.UnlockRatio*float64(best)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Round returns the 1-based round number.
func (g *Game) Round() int {
	return g.round
}

// Results returns the finished rounds so far.
func (g *Game) Results() []RoundResult {
	return g.results
}

// Err returns the generation error that ended the game early, if any.
func (g *Game) Err() error {
	return g.err
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused || g.tooSmall,
	}
}
