package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

type stubGame struct {
	id, title string
}

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return g.title }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return stubGame{id: id, title: title} }
}

func TestRegistryListSorted(t *testing.T) {
	r := New()
	r.Register("stacker_classic", stub("stacker_classic", "Classic"))
	r.Register("stacker", stub("stacker", "Gravity"))

	got := r.List()
	if len(got) != 2 {
		t.Fatalf("List() returned %d games, expected 2", len(got))
	}
	if got[0].ID != "stacker" || got[1].ID != "stacker_classic" {
		t.Errorf("List() order = %v, expected stacker first", got)
	}
	if got[0].Title != "Gravity" {
		t.Errorf("Title = %q, expected Gravity", got[0].Title)
	}
}

func TestRegistryCreate(t *testing.T) {
	r := New()
	r.Register("stacker", stub("stacker", "Gravity"))

	g, err := r.Create("stacker")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stacker" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := r.Create("tetris"); err == nil || !strings.Contains(err.Error(), "unknown game") {
		t.Errorf("Create(unknown) error = %v, expected unknown game", err)
	}
	if !r.Exists("stacker") || r.Exists("tetris") {
		t.Error("Exists() disagrees with registrations")
	}
}

func TestRegistryPanics(t *testing.T) {
	tests := []struct {
		name string
		reg  func(r *Registry)
	}{
		{"duplicate", func(r *Registry) {
			r.Register("stacker", stub("stacker", "A"))
			r.Register("stacker", stub("stacker", "B"))
		}},
		{"empty id", func(r *Registry) { r.Register("", stub("", "A")) }},
		{"nil factory", func(r *Registry) { r.Register("x", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register did not panic")
				}
			}()
			tt.reg(New())
		})
	}
}
