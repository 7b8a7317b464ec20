package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gravity-stacker/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"s", runeKey('s'), core.ActionDown},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotateCW},
		{"x", runeKey('x'), core.ActionRotateCW},
		{"z", runeKey('z'), core.ActionRotateCCW},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{"g", runeKey('g'), core.ActionFlip},
		{"f", runeKey('f'), core.ActionFlip},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"b", runeKey('b'), core.ActionBack},
		{"unbound", runeKey('m'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.msg.String())
			}
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		if !quit || action != core.ActionQuit {
			t.Errorf("MapKey(%q) = %v, %v, expected Quit, true", msg.String(), action, quit)
		}
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	for _, r := range "xa " {
		msg := runeKey(r)
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		}
		if km.MapKeyToFrame(msg, &frame) {
			t.Fatalf("MapKeyToFrame(%q) reported quit", msg.String())
		}
	}

	got := frame.Ordered()
	want := []core.Action{core.ActionRotateCW, core.ActionLeft, core.ActionHardDrop}
	if len(got) != len(want) {
		t.Fatalf("Ordered() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ordered()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("MapKeyToFrame(q) did not report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit was recorded in the frame")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	keys := DefaultGameKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 13 {
		t.Errorf("FullHelp() lists %d bindings, expected 13", total)
	}
}
