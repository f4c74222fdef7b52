package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	f, err := tea.LogToFile("debug.log", "debug")
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}
	defer f.Close()

	p := tea.NewProgram(initialSessionModel(&beepSpeaker{}))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v", err)
		os.Exit(1)
	}

	// The terminal is back in its normal mode by the time Run returns,
	// on quit and on interrupt alike.
	fmt.Println("Thanks for playing Snake Game!")
}
