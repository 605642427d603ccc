// Command dialogterm shows a dialog box in the terminal. Enter or space
// pages through it, X skips it, O opens a new one once it is closed and
// C copies the current page to the clipboard and Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gompdf/gomdialog/internal/logger"
	"github.com/gompdf/gomdialog/internal/sound"
	"github.com/gompdf/gomdialog/pkg/api"
)

const introText = "Hello World! Press Enter to proceed.\n" +
	"I will be on the next pane! " +
	"And wordwrap will occur, especially if there are some longer words!\n" +
	"Every character takes one cell here, so monospace comes for free.\n" +
	"After this dialog box finishes, you can press the O key to open a new one."

func main() {
	var (
		message string
		beep    bool
		verbose bool
	)
	flag.StringVar(&message, "text", introText, "Text of the first dialog box")
	flag.BoolVar(&beep, "sound", false, "Play a cue on every page turn")
	flag.BoolVar(&verbose, "verbose", false, "Log dialog transitions to stderr")
	flag.Parse()

	m, err := newModel(message, "New dialog box!",
		api.WithDebug(verbose),
		api.WithLogOutput(os.Stderr),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if beep {
		log := logger.ForDebug(verbose, os.Stderr)
		if m.sound, err = sound.NewPlayer(log); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		}
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
