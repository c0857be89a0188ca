package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey("w"), core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionRestart},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound rune", runeKey("x"), core.ActionNone},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.want {
				t.Errorf("MapKey(%s) = %s, expected %s", tc.msg, got, tc.want)
			}
		})
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   snake.Direction
	}{
		{core.ActionUp, snake.DirUp},
		{core.ActionDown, snake.DirDown},
		{core.ActionLeft, snake.DirLeft},
		{core.ActionRight, snake.DirRight},
	}
	for _, tc := range tests {
		got, ok := directionFor(tc.action)
		if !ok || got != tc.want {
			t.Errorf("directionFor(%s) = %s, %v", tc.action, got, ok)
		}
	}

	for _, a := range []core.Action{core.ActionNone, core.ActionRestart, core.ActionQuit} {
		if _, ok := directionFor(a); ok {
			t.Errorf("directionFor(%s) should not be a direction", a)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) != 6 {
		t.Errorf("ShortHelp() has %d bindings, expected 6", len(keys.ShortHelp()))
	}

	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp() has %d bindings, expected 6", total)
	}
}
