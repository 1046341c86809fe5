// cmd/technex/main.go
//
// Entry point for the technex resume builder. Running `technex` in any
// directory creates a .technex/ folder there (config, journals, exports)
// and opens the chat intake TUI.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/Diveyam-Mishra/Resume-Technex/internal/config"
	"github.com/Diveyam-Mishra/Resume-Technex/internal/tui"
)

func main() {
	// Optional .env, same convention as the rest of our tooling.
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitTechnexDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .technex directory: %v\n", err)
		os.Exit(1)
	}

	app, err := tui.NewApp(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting technex: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // use the alternate screen buffer (like vim does)
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
