package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#3ddc84"))

var gameOverStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#e7471d"))

var promptStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#e3c567"))

func (m sessionModel) View() string {
	switch m.state {
	case startScreen:
		return m.startScreenView()
	case playingGame:
		return m.game.View()
	case gameOver:
		return m.gameOverView()
	case tooSmall:
		return m.tooSmallView()
	}
	return "No view"
}

func (m sessionModel) centered(content string) string {
	return lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, content)
}

func (m sessionModel) startScreenView() string {
	lines := []string{
		titleStyle.Render("SNAKE GAME"),
		"",
		promptStyle.Render("How to play:"),
		promptStyle.Render("Use arrow keys to move the snake"),
		promptStyle.Render("Eat food (*) to grow and earn points"),
		promptStyle.Render("Avoid hitting walls and yourself"),
		promptStyle.Render("Press 'q' any time to quit"),
		"",
		promptStyle.Render("Press any key to start!"),
	}
	return m.centered(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m sessionModel) gameOverView() string {
	lines := []string{
		gameOverStyle.Render("GAME OVER"),
		"",
		promptStyle.Render(fmt.Sprintf("Final Score: %d", m.finalScore)),
		promptStyle.Render(fmt.Sprintf("Best this session: %d", m.bestScore)),
		"",
		promptStyle.Render("Play again? (y/n)"),
	}
	return m.centered(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m sessionModel) tooSmallView() string {
	msg := strings.Join([]string{
		promptStyle.Render("Terminal too small!"),
		promptStyle.Render("Please resize and try again."),
	}, "\n")
	return m.centered(msg)
}
