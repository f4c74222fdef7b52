package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

const (
	baseTickInterval  = 100 * time.Millisecond
	tickIntervalFloor = 50 * time.Millisecond
	tickIntervalDecay = 2 * time.Millisecond
)

type tickMsg time.Time

type gameModel struct {
	rows, cols int
	arena      arena
	snake      snake
	food       cell
	score      int
	paused     bool
	over       bool

	pauseMenuList list.Model
	rng           *rand.Rand
	sounds        soundPlayer
}

type pauseMenuItem struct {
	title, desc string
}

func (i pauseMenuItem) Title() string       { return i.title }
func (i pauseMenuItem) Description() string { return i.desc }
func (i pauseMenuItem) FilterValue() string { return i.title }

const (
	pauseMenuResume = "Resume (ESC or space)"
	pauseMenuQuit   = "End game (q)"
)

func newGame(rows, cols int, sounds soundPlayer, rng *rand.Rand) gameModel {
	items := []list.Item{
		pauseMenuItem{title: pauseMenuResume},
		pauseMenuItem{title: pauseMenuQuit},
	}
	pauseMenuList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	pauseMenuList.Title = "Game Paused"
	pauseMenuList.SetSize(30, 15)
	pauseMenuList.SetShowStatusBar(false)
	pauseMenuList.SetFilteringEnabled(false)
	pauseMenuList.SetShowHelp(false)
	pauseMenuList.DisableQuitKeybindings()

	a := newArena(rows, cols)
	m := gameModel{
		rows:          rows,
		cols:          cols,
		arena:         a,
		snake:         newSnake(cell{row: rows / 2, col: cols / 4}, dirRight),
		pauseMenuList: pauseMenuList,
		rng:           rng,
		sounds:        sounds,
	}
	m.food = placeFood(m.rng, m.snake.cells, m.arena)
	return m
}

// tickInterval derives the frame clock from the score. The game speeds up
// as the score rises, down to a fixed floor.
func (m gameModel) tickInterval() time.Duration {
	interval := baseTickInterval - time.Duration(m.score)*tickIntervalDecay
	if interval < tickIntervalFloor {
		return tickIntervalFloor
	}
	return interval
}

func (m gameModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m gameModel) Init() tea.Cmd {
	return m.tickCmd()
}

// step runs one simulation tick: decide whether the move lands on food,
// advance, then check collisions on the post-move snake. Food, score and
// speed are only touched once the move is known to be safe.
func (m gameModel) step() gameModel {
	ateFood := m.snake.nextHead() == m.food
	m.snake, _ = m.snake.advance(ateFood)

	if m.arena.hitsWall(m.snake.head()) || m.snake.hitsSelf() {
		m.over = true
		m.sounds.play(crashSound)
		return m
	}

	if ateFood {
		m.food = placeFood(m.rng, m.snake.cells, m.arena)
		m.score++
		m.sounds.play(eatSound)
	}
	return m
}

func (m gameModel) Update(msg tea.Msg) (gameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.over {
			return m, nil
		}
		if m.paused {
			return m, m.tickCmd()
		}
		m = m.step()
		if m.over {
			return m, nil
		}
		return m, m.tickCmd()
	case tea.KeyMsg:
		if m.paused {
			return m.updatePauseMenu(msg)
		}

		switch msg.String() {
		case "q", "Q":
			// A deliberate exit ends the game like a collision would,
			// keeping the score for the game-over screen.
			log.Info("Player quit game")
			m.over = true
		case "esc", " ":
			m.paused = true
		case "up", "k":
			m.snake = m.snake.withDirection(dirUp)
		case "down", "j":
			m.snake = m.snake.withDirection(dirDown)
		case "left", "h":
			m.snake = m.snake.withDirection(dirLeft)
		case "right", "l":
			m.snake = m.snake.withDirection(dirRight)
		}
	}
	return m, nil
}

func (m gameModel) updatePauseMenu(msg tea.KeyMsg) (gameModel, tea.Cmd) {
	switch msg.String() {
	case "esc", " ":
		m.paused = false
		return m, nil
	case "enter":
		i, ok := m.pauseMenuList.SelectedItem().(pauseMenuItem)
		if ok {
			switch i.title {
			case pauseMenuResume:
				m.paused = false
			case pauseMenuQuit:
				log.Info("Player quit game from pause menu")
				m.over = true
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pauseMenuList, cmd = m.pauseMenuList.Update(msg)
	return m, cmd
}
