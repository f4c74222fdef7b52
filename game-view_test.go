package main

import (
	"strings"
	"testing"
)

func TestView_GlyphContract(t *testing.T) {
	m, _ := testGame(t)
	m.snake = snake{
		cells:   []cell{{row: 5, col: 5}, {row: 5, col: 4}},
		heading: dirRight,
		moved:   dirRight,
	}
	m.food = cell{row: 7, col: 10}

	view := m.View()

	for _, expected := range []string{
		"Score: 0",
		"@", // head
		"o", // body
		"*", // food
		"┌", "┐", "└", "┘", "─", "│",
		instructions,
	} {
		if !strings.Contains(view, expected) {
			t.Errorf("Expected view to contain %q", expected)
		}
	}
}

func TestView_LineCountMatchesTerminal(t *testing.T) {
	m, _ := testGame(t)

	lines := strings.Split(m.View(), "\n")

	if len(lines) != m.rows {
		t.Errorf("Expected %d lines, got %d", m.rows, len(lines))
	}
}

func TestView_PausedShowsMenu(t *testing.T) {
	m, _ := testGame(t)
	m.paused = true

	view := m.View()

	if !strings.Contains(view, "Game Paused") {
		t.Errorf("Expected the pause menu title in the view")
	}
	if !strings.Contains(view, pauseMenuResume) {
		t.Errorf("Expected the resume item in the view")
	}
}
