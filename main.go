package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zam-dot/tintype/internal/clipboard"
	"github.com/zam-dot/tintype/internal/logger"
)

func main() {
	config, warnings, err := ParseFlags()
	if err != nil {
		log.Fatal("Error: ", err)
	}

	// stdout belongs to the TUI; logs only go to a file when asked for.
	if config.LogFile != "" {
		f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal("Error opening log file: ", err)
		}
		defer f.Close()

		level, _ := logger.ParseLevel(config.LogLevel)
		logger.Init(level, f)
	} else {
		// Without a log file the only chance to see these is before the TUI
		// takes over the screen.
		for _, w := range warnings {
			log.Print("Warning: ", w)
		}
	}
	for _, w := range warnings {
		logger.Warnf("%s", w)
	}
	logger.Infof("starting %s (clipboard=%s mouse=%v)", appName, config.Clipboard, config.Mouse)

	clip, err := clipboard.New(config.Clipboard, os.Stderr)
	if err != nil {
		log.Fatal("Error: ", err)
	}

	opts := []tea.ProgramOption{}
	if config.AltScreen {
		// tea.WithAltScreen() gives us a clean terminal canvas to work with
		opts = append(opts, tea.WithAltScreen())
	}
	if config.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(newModel(config, clip), opts...)
	if _, err := p.Run(); err != nil {
		logger.Errorf("program exited: %v", err)
		log.Fatal("Error running TUI: ", err)
	}
	logger.Infof("%s finished", appName)
}
