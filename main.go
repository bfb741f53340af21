package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bootloops/pydu/internal/ui"
)

func main() {
	root := "/"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pydu: %v\n", err)
		os.Exit(1)
	}
	info, err := os.Stat(abs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pydu: path does not exist: %s\n", abs)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "pydu: not a directory: %s\n", abs)
		os.Exit(1)
	}

	p := tea.NewProgram(ui.InitialModel(abs, 0), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
