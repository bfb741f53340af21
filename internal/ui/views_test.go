package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bootloops/pydu/internal/fsys"
)

func testModel(t *testing.T) Model {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "f.dat"), make([]byte, 1048576), 0o644); err != nil {
		t.Fatal(err)
	}
	m := InitialModel(root, 1)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func TestViewWhileScanning(t *testing.T) {
	m := testModel(t)
	out := m.View()
	if !strings.Contains(out, "pydu") {
		t.Error("view missing title")
	}
	if !strings.Contains(out, "scanning") {
		t.Error("view missing scanning footer")
	}
	if !strings.Contains(out, "q quit") {
		t.Error("view missing help line")
	}
}

func TestViewAfterScanDone(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(scanDoneMsg{})
	out := next.(Model).View()
	if !strings.Contains(out, "Scan complete") {
		t.Error("view missing completion footer")
	}
	if strings.Contains(out, "scanning") {
		t.Error("view still shows scanning footer")
	}
}

func TestViewRendersReportedEntries(t *testing.T) {
	m := testModel(t)
	// Feed the tree directly; the renderer reads whatever is there.
	m.tree.ReportEntry(m.tree.Root().Path, "blob.bin", fsys.KindFile, 1048576)
	out := m.View()
	if !strings.Contains(out, "blob.bin") {
		t.Error("row for reported entry missing")
	}
	if !strings.Contains(out, "1.0M") {
		t.Error("human size missing from row")
	}
}

func TestQuitCancelsScan(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit produced no command")
	}
	if err := m.scanCtx.Err(); err == nil {
		t.Error("scan context not cancelled on quit")
	}
}
