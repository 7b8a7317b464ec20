package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "hello")
	s.DrawTextColored(6, 0, "world", core.ColorCyan)
	s.SetColored(0, 2, '█', core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() produced %d lines, expected 3", len(lines))
	}
	if w := lipgloss.Width(lines[0]); w != 12 {
		t.Errorf("line width = %d, expected 12", w)
	}
	if !strings.Contains(lines[0], "hello") || !strings.Contains(lines[0], "world") {
		t.Errorf("line 0 = %q, expected hello and world", lines[0])
	}
	if !strings.ContainsRune(lines[2], '█') {
		t.Errorf("line 2 = %q, expected a block", lines[2])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(250)).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("styleFor(unknown).Render = %q", got)
	}
	for c := range palette {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style built for color %v", c)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs int
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{95, "1:35"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(time.Duration(tt.secs) * time.Second); got != tt.want {
			t.Errorf("formatDuration(%ds) = %q, expected %q", tt.secs, got, tt.want)
		}
	}
}
