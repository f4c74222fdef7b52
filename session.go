package main

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type sessionState int

const (
	startScreen sessionState = iota
	playingGame
	gameOver
	tooSmall
)

// sessionModel runs repeated games: the start screen, the too-small gate,
// one gameModel per game, and the game-over replay prompt. The best score
// lives only for the lifetime of the process.
type sessionModel struct {
	state      sessionState
	game       gameModel
	rows, cols int
	finalScore int
	bestScore  int
	sounds     soundPlayer
	rng        *rand.Rand
}

func initialSessionModel(sounds soundPlayer) sessionModel {
	return sessionModel{
		state:  startScreen,
		sounds: sounds,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m sessionModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func isForceQuitMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return true
		}
	}
	return false
}

func (m sessionModel) startGame() (sessionModel, tea.Cmd) {
	if terminalTooSmall(m.rows, m.cols) {
		log.Infof("Terminal %dx%d below %dx%d minimum", m.rows, m.cols, minTerminalRows, minTerminalCols)
		m.state = tooSmall
		return m, nil
	}
	log.Infof("Starting game on %dx%d terminal", m.rows, m.cols)
	m.game = newGame(m.rows, m.cols, m.sounds, m.rng)
	m.state = playingGame
	return m, m.game.Init()
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if isForceQuitMsg(msg) {
		log.Info("Force quit")
		return m, tea.Quit
	}

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.rows, m.cols = msg.Height, msg.Width
		if m.state == tooSmall && !terminalTooSmall(m.rows, m.cols) {
			return m.startGame()
		}
		return m, nil
	}

	switch m.state {
	case startScreen:
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.startGame()
		}
	case playingGame:
		var cmd tea.Cmd
		m.game, cmd = m.game.Update(msg)
		if m.game.over {
			m.finalScore = m.game.score
			if m.finalScore > m.bestScore {
				m.bestScore = m.finalScore
			}
			log.Infof("Game over, score %d", m.finalScore)
			m.state = gameOver
			return m, nil
		}
		return m, cmd
	case gameOver:
		// The replay prompt accepts exactly y or n; everything else is
		// ignored, not deferred.
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				return m.startGame()
			case "n", "N":
				return m, tea.Quit
			}
		}
	case tooSmall:
		// Wait for a window-size message that satisfies the minimum.
	}
	return m, nil
}
