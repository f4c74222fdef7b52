package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var scoreStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#e3c567"))

var instructionsStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#e3c567"))

var boardBorderStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#46c2cb"))

var snakeHeadStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#3ddc84"))

var snakeBodyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#3ddc84"))

var foodStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#e7471d"))

var dialogBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#874BFD")).
	Margin(0, 5).
	Padding(1, 0).Height(15)

const instructions = "Use arrow keys to move. Press 'q' to quit."

func (m gameModel) View() string {
	if m.paused {
		return lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center,
			dialogBoxStyle.Render(m.pauseMenuList.View()))
	}

	innerWidth := m.arena.innerCols()
	leftPad := strings.Repeat(" ", m.arena.borderLeft)

	r := strings.Builder{}
	r.WriteString(lipgloss.PlaceHorizontal(m.cols, lipgloss.Center,
		scoreStyle.Render(fmt.Sprintf("Score: %d", m.score))))
	r.WriteRune('\n')

	r.WriteString(leftPad)
	r.WriteString(boardBorderStyle.Render("┌" + strings.Repeat("─", innerWidth) + "┐"))
	r.WriteRune('\n')

	wall := boardBorderStyle.Render("│")
	for row := m.arena.borderTop + 1; row < m.arena.borderBottom; row++ {
		r.WriteString(leftPad)
		r.WriteString(wall)
		for col := m.arena.borderLeft + 1; col < m.arena.borderRight; col++ {
			c := cell{row: row, col: col}
			switch {
			case c == m.snake.head():
				r.WriteString(snakeHeadStyle.Render("@"))
			case snakeContains(m.snake.cells[1:], c):
				r.WriteString(snakeBodyStyle.Render("o"))
			case c == m.food:
				r.WriteString(foodStyle.Render("*"))
			default:
				r.WriteRune(' ')
			}
		}
		r.WriteString(wall)
		r.WriteRune('\n')
	}

	r.WriteString(leftPad)
	r.WriteString(boardBorderStyle.Render("└" + strings.Repeat("─", innerWidth) + "┘"))
	r.WriteRune('\n')

	r.WriteString(lipgloss.PlaceHorizontal(m.cols, lipgloss.Center,
		instructionsStyle.Render(instructions)))
	return r.String()
}
