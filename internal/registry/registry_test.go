package registry

import (
	"testing"

	"github.com/vovakirdan/hue-recall/internal/core"
)

type stubGame struct {
	id         string
	configPath string
	preset     string
	difficulty int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) SetConfigPath(path string) { g.configPath = path }
func (g *stubGame) SetDifficultyPreset(preset string) { g.preset = preset }
func (g *stubGame) SetDifficulty(n int) { g.difficulty = n }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })

	if !Exists("zz_stub_a") {
		t.Error("Exists(zz_stub_a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("Create().ID() = %q, expected zz_stub_b", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) expected error")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) did not panic")
		}
	}()
	Register("zz_stub_dup", func() Game { return &stubGame{id: "zz_stub_dup"} })
}

func TestConfigure(t *testing.T) {
	g := &stubGame{id: "x"}
	Configure(g, "/tmp/recall.yaml", "hard", 3)

	if g.configPath != "/tmp/recall.yaml" || g.preset != "hard" || g.difficulty != 3 {
		t.Errorf("Configure() = %+v", g)
	}

	g = &stubGame{id: "y"}
	Configure(g, "", "", 0)
	if g.configPath != "" || g.preset != "" || g.difficulty != 0 {
		t.Errorf("Configure(empty) changed game: %+v", g)
	}
}
