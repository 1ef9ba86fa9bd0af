package recall

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hue-recall/internal/config"
	"github.com/vovakirdan/hue-recall/internal/core"
	"github.com/vovakirdan/hue-recall/internal/palette"
	"github.com/vovakirdan/hue-recall/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     seed,
	}
}

// newTestGame pins the config to the shipped defaults so a user config
// cannot change the outcome.
func newTestGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recall.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML("recall"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.SetConfigPath(path)
	g.Reset(testConfig(seed))
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func targetIndex(choices []palette.Candidate) int {
	for i, c := range choices {
		if c.Correct {
			return i
		}
	}
	return -1
}

func TestRegistered(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"recall", "Hue Recall"},
		{"recall_speed", "Hue Recall (Speed)"},
	}
	for _, tt := range tests {
		g, err := registry.Create(tt.id)
		if err != nil {
			t.Fatalf("Create(%q) error = %v", tt.id, err)
		}
		if g.ID() != tt.id || g.Title() != tt.title {
			t.Errorf("Create(%q) = %s/%s, expected %s/%s", tt.id, g.ID(), g.Title(), tt.id, tt.title)
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s does not implement Configurable", tt.id)
		}
		if _, ok := g.(registry.Leveled); !ok {
			t.Errorf("%s does not implement Leveled", tt.id)
		}
	}
}

func TestResetStartsFirstRound(t *testing.T) {
	tests := []struct {
		name    string
		game    *Game
		choices int
	}{
		{"accuracy", New(), 5},
		{"speed", NewSpeed(), 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.game, 7)
			if g.Phase() != PhaseRemember {
				t.Errorf("Phase() = %v, expected Remember", g.Phase())
			}
			if g.Round() != 1 {
				t.Errorf("Round() = %d, expected 1", g.Round())
			}
			if len(g.choices) != tt.choices {
				t.Errorf("len(choices) = %d, expected %d", len(g.choices), tt.choices)
			}
			correct := 0
			for _, c := range g.choices {
				if c.Correct {
					correct++
				}
			}
			if correct != 1 {
				t.Errorf("correct candidates = %d, expected 1", correct)
			}
		})
	}
}

func TestRememberCountdown(t *testing.T) {
	g := newTestGame(t, New(), 1)

	// 5 seconds at 10 ticks per second
	for i := 0; i < 49; i++ {
		g.Step(frame())
	}
	if g.Phase() != PhaseRemember {
		t.Fatalf("Phase() after 49 ticks = %v, expected Remember", g.Phase())
	}
	g.Step(frame())
	if g.Phase() != PhaseRecall {
		t.Errorf("Phase() after 50 ticks = %v, expected Recall", g.Phase())
	}
}

func TestConfirmSkipsRemember(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhaseRecall {
		t.Errorf("Phase() = %v, expected Recall", g.Phase())
	}
}

func TestPickTarget(t *testing.T) {
	g := newTestGame(t, New(), 3)
	g.Step(frame(core.ActionConfirm))

	g.cursor = targetIndex(g.choices)
	g.Step(frame(core.ActionConfirm))

	if g.Phase() != PhaseReward {
		t.Fatalf("Phase() = %v, expected Reward", g.Phase())
	}
	r := g.Results()[0]
	if !r.Picked.Correct || r.Score != 100 {
		t.Errorf("result = %+v, expected correct pick worth 100", r)
	}
	if g.State().Score != 100 {
		t.Errorf("State().Score = %d, expected 100", g.State().Score)
	}
}

func TestPickDecoyScoresByDistance(t *testing.T) {
	g := newTestGame(t, New(), 3)
	g.Step(frame(core.ActionConfirm))

	i := (targetIndex(g.choices) + 1) % len(g.choices)
	picked := g.choices[i]
	g.cursor = i
	g.Step(frame(core.ActionConfirm))

	expected := AccuracyScore(picked, 40, 100)
	if got := g.Results()[0].Score; got != expected {
		t.Errorf("Score = %d, expected %d", got, expected)
	}
	if expected >= 100 {
		t.Errorf("decoy score %d should be below the maximum", expected)
	}
}

func TestRecallTimeout(t *testing.T) {
	g := newTestGame(t, New(), 5)
	g.Step(frame(core.ActionConfirm))

	for i := 0; i < 50 && g.Phase() == PhaseRecall; i++ {
		g.Step(frame())
	}
	if g.Phase() != PhaseReward {
		t.Fatalf("Phase() = %v, expected Reward after timeout", g.Phase())
	}
	r := g.Results()[0]
	if !r.TimedOut || r.Score != 0 {
		t.Errorf("result = %+v, expected timed out with 0", r)
	}
}

func playPerfect(g *Game) {
	for g.Phase() != PhaseOver {
		g.Step(frame(core.ActionConfirm)) // Remember -> Recall
		g.cursor = targetIndex(g.choices)
		g.Step(frame(core.ActionConfirm)) // pick
		g.Step(frame(core.ActionConfirm)) // Reward -> next
	}
}

func TestPerfectGame(t *testing.T) {
	for _, g := range []*Game{New(), NewSpeed()} {
		t.Run(g.Mode().String(), func(t *testing.T) {
			newTestGame(t, g, 11)
			playPerfect(g)

			st := g.State()
			if !st.GameOver {
				t.Error("State().GameOver = false, expected true")
			}
			if st.Score != 500 {
				t.Errorf("Score = %d, expected 500", st.Score)
			}
			if len(g.Results()) != 5 {
				t.Errorf("len(Results()) = %d, expected 5", len(g.Results()))
			}
			if !g.Unlocked() {
				t.Error("Unlocked() = false after a perfect game")
			}

			// Steps after game over are ignored
			g.Step(frame(core.ActionConfirm))
			if g.State().Score != 500 {
				t.Error("score changed after game over")
			}
		})
	}
}

func TestTimedOutGameDoesNotUnlock(t *testing.T) {
	g := newTestGame(t, New(), 13)
	for i := 0; i < 10000 && g.Phase() != PhaseOver; i++ {
		g.Step(frame())
	}
	if g.Phase() != PhaseOver {
		t.Fatal("game did not end")
	}
	if g.State().Score != 0 || g.Unlocked() {
		t.Errorf("Score = %d, Unlocked = %v, expected 0/false", g.State().Score, g.Unlocked())
	}
}

func TestRoundsGetHarder(t *testing.T) {
	g := newTestGame(t, New(), 17)
	first := len(g.choices)
	for g.Round() < 5 {
		g.Step(frame(core.ActionConfirm))
		g.Step(frame(core.ActionConfirm))
		g.Step(frame(core.ActionConfirm))
	}
	if len(g.choices) <= first {
		t.Errorf("round 5 has %d choices, expected more than %d", len(g.choices), first)
	}
	if g.generation.DeltaLimit >= 40 {
		t.Errorf("round 5 delta limit = %v, expected below 40", g.generation.DeltaLimit)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, New(), 42)
	g2 := newTestGame(t, New(), 42)

	if len(g1.choices) != len(g2.choices) {
		t.Fatalf("choice counts differ: %d vs %d", len(g1.choices), len(g2.choices))
	}
	for i := range g1.choices {
		if g1.choices[i].Hex != g2.choices[i].Hex {
			t.Errorf("choice %d differs: %s vs %s", i, g1.choices[i].Hex, g2.choices[i].Hex)
		}
	}
}

func TestCursorMovement(t *testing.T) {
	g := newTestGame(t, NewSpeed(), 19) // 6 choices, 5 columns
	g.Step(frame(core.ActionConfirm))

	steps := []struct {
		action core.Action
		cursor int
	}{
		{core.ActionLeft, 0},
		{core.ActionRight, 1},
		{core.ActionDown, 1},
		{core.ActionLeft, 0},
		{core.ActionDown, 5},
		{core.ActionRight, 5},
		{core.ActionUp, 0},
		{core.ActionUp, 0},
	}
	for i, s := range steps {
		g.Step(frame(s.action))
		if g.cursor != s.cursor {
			t.Errorf("step %d (%v): cursor = %d, expected %d", i, s.action, g.cursor, s.cursor)
		}
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, New(), 1)
	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}
	left := g.ticksLeft
	g.Step(frame())
	if g.ticksLeft != left {
		t.Error("countdown advanced while paused")
	}
	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("State().Paused = true after unpause")
	}
}

func TestDifficultySelection(t *testing.T) {
	g := New()
	g.SetDifficultyPreset("hard")
	newTestGame(t, g, 1)
	if g.Difficulty() != 4 {
		t.Errorf("Difficulty() with hard preset = %d, expected 4", g.Difficulty())
	}

	g = New()
	g.SetDifficulty(3)
	newTestGame(t, g, 1)
	if g.Difficulty() != 3 {
		t.Errorf("Difficulty() = %d, expected 3", g.Difficulty())
	}
	if g.cfg.Difficulty.InitialLevel != 0.5 {
		t.Errorf("InitialLevel = %v, expected 0.5", g.cfg.Difficulty.InitialLevel)
	}

	g.SetDifficulty(99)
	if g.Difficulty() != config.MaxDifficulty {
		t.Errorf("Difficulty() = %d, expected clamp to %d", g.Difficulty(), config.MaxDifficulty)
	}
}

func TestAccuracyScore(t *testing.T) {
	tests := []struct {
		name   string
		picked palette.Candidate
		score  int
	}{
		{"target", palette.Candidate{Correct: true}, 100},
		{"half way", palette.Candidate{DeltaE: 20}, 50},
		{"near", palette.Candidate{DeltaE: 10}, 75},
		{"at limit", palette.Candidate{DeltaE: 40}, 0},
		{"past limit", palette.Candidate{DeltaE: 55}, 0},
		{"unrelated", palette.Candidate{DeltaE: palette.UnrelatedDeltaE}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AccuracyScore(tt.picked, 40, 100); got != tt.score {
				t.Errorf("AccuracyScore() = %d, expected %d", got, tt.score)
			}
		})
	}
}

func TestSpeedScore(t *testing.T) {
	correct := palette.Candidate{Correct: true}
	tests := []struct {
		name   string
		picked palette.Candidate
		left   int
		score  int
	}{
		{"instant", correct, 50, 100},
		{"half time", correct, 25, 50},
		{"rounds up", correct, 1, 2},
		{"no time", correct, 0, 0},
		{"wrong", palette.Candidate{DeltaE: palette.UnrelatedDeltaE}, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SpeedScore(tt.picked, tt.left, 50, 100); got != tt.score {
				t.Errorf("SpeedScore() = %d, expected %d", got, tt.score)
			}
		})
	}
}

func hasBackground(s *core.Screen, hex string) bool {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y).BG == hex {
				return true
			}
		}
	}
	return false
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New(), 23)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !hasBackground(screen, g.targetHex()) {
		t.Error("Remember screen does not show the target swatch")
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	for _, c := range g.choices {
		if !hasBackground(screen, c.Hex) {
			t.Errorf("Recall screen is missing swatch %s", c.Hex)
		}
	}

	playPerfect(g)
	g.Render(screen)
	found := false
	for y := 0; y < screen.Height(); y++ {
		if strings.Contains(screen.Row(y), "GAME OVER") {
			found = true
		}
	}
	if !found {
		t.Error("game over screen missing title")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	path := filepath.Join(t.TempDir(), "recall.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML("recall"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.SetConfigPath(path)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 10, Seed: 1})

	if !g.State().Paused {
		t.Error("small screen should report paused")
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.Row(4), "Window too small") {
		t.Errorf("Row(4) = %q, expected too-small message", screen.Row(4))
	}
}

func TestResizeKeepsProgress(t *testing.T) {
	g := newTestGame(t, New(), 29)
	g.Step(frame(core.ActionConfirm))
	round, phase := g.Round(), g.Phase()

	g.Resize(20, 8)
	if !g.State().Paused {
		t.Error("shrinking below the minimum should pause")
	}
	g.Resize(100, 30)
	if g.State().Paused {
		t.Error("growing back should unpause")
	}
	if g.Round() != round || g.Phase() != phase {
		t.Errorf("Resize changed progress: round %d phase %v", g.Round(), g.Phase())
	}
}
