package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hue-recall/internal/core"
	_ "github.com/vovakirdan/hue-recall/internal/games/recall"
	"github.com/vovakirdan/hue-recall/internal/storage"
)

// leveledGame is a game that ends on its first step.
type leveledGame struct {
	score      int
	difficulty int
	unlocked   bool
	resets     int
	resizes    int
	over       bool
}

func (g *leveledGame) ID() string { return "stub" }
func (g *leveledGame) Title() string { return "Stub" }
func (g *leveledGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
}
func (g *leveledGame) Step(core.InputFrame) core.StepResult {
	g.over = true
	return core.StepResult{State: g.State()}
}
func (g *leveledGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *leveledGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}
func (g *leveledGame) Difficulty() int { return g.difficulty }
func (g *leveledGame) Unlocked() bool { return g.unlocked }
func (g *leveledGame) Resize(width, height int) { g.resizes++ }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordResult(t *testing.T) {
	store := openStore(t)

	g := &leveledGame{score: 420, difficulty: 2, unlocked: true}
	if err := recordResult(store, g, g.State(), "session-1"); err != nil {
		t.Fatalf("recordResult() error = %v", err)
	}

	scores, err := store.TopScores("stub", 2, 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 420 || scores[0].SessionID != "session-1" {
		t.Errorf("saved scores = %+v, expected one 420 entry for session-1", scores)
	}

	level, _ := store.MaxDifficulty("stub")
	if level != 3 {
		t.Errorf("MaxDifficulty() = %d, expected 3 after unlock", level)
	}
}

func TestRecordResultSkipsZeroAndCapsUnlock(t *testing.T) {
	store := openStore(t)

	g := &leveledGame{score: 0, difficulty: 5, unlocked: true}
	if err := recordResult(store, g, g.State(), "s"); err != nil {
		t.Fatalf("recordResult() error = %v", err)
	}

	if scores, _ := store.TopScores("stub", 0, 10); len(scores) != 0 {
		t.Errorf("zero score was saved: %+v", scores)
	}
	if level, _ := store.MaxDifficulty("stub"); level != 1 {
		t.Errorf("MaxDifficulty() = %d, expected no unlock past the maximum", level)
	}

	if err := recordResult(nil, g, g.State(), "s"); err != nil {
		t.Errorf("recordResult(nil store) error = %v", err)
	}
}

func TestModelSavesOnceOnGameOver(t *testing.T) {
	store := openStore(t)
	g := &leveledGame{score: 100, difficulty: 1}
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, "s", nil)
	m.Init()

	var model tea.Model = m
	for range 3 {
		model, _ = model.Update(TickMsg{})
	}

	scores, _ := store.TopScores("stub", 0, 10)
	if len(scores) != 1 {
		t.Errorf("saved %d scores, expected 1", len(scores))
	}
}

func TestModelKeys(t *testing.T) {
	g := &leveledGame{score: 10}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, "", nil)
	m.Init()

	// Back is ignored while playing
	model, _ := m.Update(runeKey("b"))
	if model.(Model).BackToMenu() {
		t.Error("BackToMenu() = true during play")
	}

	// After game over, back returns to the menu
	model, _ = model.Update(TickMsg{})
	model, _ = model.Update(runeKey("b"))
	if !model.(Model).BackToMenu() {
		t.Error("BackToMenu() = false after game over")
	}

	model, cmd := model.Update(runeKey("q"))
	if !model.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelRestart(t *testing.T) {
	g := &leveledGame{score: 10}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, "", nil)
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(TickMsg{}) // game over
	model, _ = model.Update(runeKey("r"))
	model.Update(TickMsg{})

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 (init + restart)", g.resets)
	}
}

func TestModelResizeUsesResizable(t *testing.T) {
	g := &leveledGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 30, Seed: 1}, "", nil)
	m.Init()

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resizes != 1 || g.resets != 1 {
		t.Errorf("resizes = %d, resets = %d, expected 1/1", g.resizes, g.resets)
	}
}

func TestMenuDifficultySelection(t *testing.T) {
	store := openStore(t)
	if err := store.SaveMaxDifficulty("recall", 3); err != nil {
		t.Fatal(err)
	}
	store.SaveScore("recall", 2, 250, "s")

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30}, nil)

	cursor := -1
	for i, item := range m.items {
		if item.GameID == "recall" {
			cursor = i
		}
	}
	if cursor < 0 {
		t.Fatal("recall not listed in menu")
	}
	m.cursor = cursor

	if m.items[cursor].Difficulty != 3 || m.items[cursor].MaxUnlocked != 3 {
		t.Errorf("item = %+v, expected difficulty 3 of 3", m.items[cursor])
	}

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = model.(MenuModel)
	if m.items[cursor].Difficulty != 3 {
		t.Errorf("Difficulty = %d, expected clamp at 3", m.items[cursor].Difficulty)
	}

	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = model.(MenuModel)
	if m.items[cursor].Difficulty != 2 || m.items[cursor].Best != 250 {
		t.Errorf("item = %+v, expected difficulty 2 with best 250", m.items[cursor])
	}

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(MenuModel)
	if cmd == nil || m.Selected() == nil || m.Selected().Difficulty != 2 {
		t.Errorf("Selected() = %+v, expected recall at difficulty 2", m.Selected())
	}
}

func TestLevelPicker(t *testing.T) {
	tests := []struct {
		level, max int
		expected   string
	}{
		{1, 1, " 1 "},
		{1, 3, " 1>"},
		{2, 3, "<2>"},
		{3, 3, "<3 "},
	}
	for _, tt := range tests {
		if got := levelPicker(tt.level, tt.max); got != tt.expected {
			t.Errorf("levelPicker(%d, %d) = %q, expected %q", tt.level, tt.max, got, tt.expected)
		}
	}
}

func TestSessionModelFlow(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 30}, nil, "")
	if m.SessionID() == "" {
		t.Fatal("SessionID() is empty")
	}

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if model.(SessionModel).view != viewScoreboard {
		t.Fatalf("view = %v, expected scoreboard", model.(SessionModel).view)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if model.(SessionModel).view != viewMenu {
		t.Fatalf("view = %v, expected menu after back", model.(SessionModel).view)
	}

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := model.(SessionModel)
	if sm.view != viewGame || sm.game == nil {
		t.Fatalf("view = %v, expected game after select", sm.view)
	}
	if sm.View() == "" {
		t.Error("game view is empty")
	}
}
