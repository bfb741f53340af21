package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bootloops/pydu/internal/scan"
)

// Messages
type redrawMsg time.Time

type scanDoneMsg struct{}

// startScan runs the worker pool off the event loop; the tree fills in
// concurrently and the redraw tick picks the changes up.
func startScan(s *scan.Scanner, ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		_ = s.Run(ctx)
		return scanDoneMsg{}
	}
}

func redrawTick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return redrawMsg(t)
	})
}
