package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bootloops/pydu/internal/fsys"
	"github.com/bootloops/pydu/internal/nav"
	"github.com/bootloops/pydu/internal/scan"
	"github.com/bootloops/pydu/internal/tree"
)

// redrawInterval decouples rendering from scan rate: ~20 frames/second
// regardless of how fast workers report.
const redrawInterval = 50 * time.Millisecond

// Model represents the application state
type Model struct {
	tree  *tree.Tree
	stats *scan.Progress
	nav   nav.State
	keys  KeyMap

	scanner *scan.Scanner
	scanCtx context.Context
	cancel  context.CancelFunc

	spinner  spinner.Model
	progress progress.Model

	scanning bool
	offset   int // scroll offset into the visible child list
	width    int
	height   int
}

// InitialModel builds the model for a validated root directory. workers
// <= 0 selects the default pool size.
func InitialModel(root string, workers int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	t := tree.New(root)
	stats := scan.NewProgress()
	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		tree:     t,
		stats:    stats,
		nav:      nav.New(t.Root()),
		keys:     DefaultKeyMap(),
		scanner:  scan.New(fsys.OS{}, t, stats, workers),
		scanCtx:  ctx,
		cancel:   cancel,
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		scanning: true,
	}
}

// Init starts the scan, the spinner and the redraw timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		redrawTick(),
		startScan(m.scanner, m.scanCtx),
	)
}
