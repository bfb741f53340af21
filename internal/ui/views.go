package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bootloops/pydu/internal/format"
	"github.com/bootloops/pydu/internal/fsys"
)

// viewportHeight is the number of listing rows that fit on screen.
func (m Model) viewportHeight() int {
	h := m.height - 8 // title, status, column header, footer lines
	if h < 5 {
		h = 5
	}
	return h
}

// syncOffset keeps the cursor inside the viewport after a move.
func (m *Model) syncOffset() {
	vh := m.viewportHeight()
	if m.nav.Selected < m.offset {
		m.offset = m.nav.Selected
	}
	if m.nav.Selected >= m.offset+vh {
		m.offset = m.nav.Selected - vh + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	pathWidth := m.width - 10
	if pathWidth < 20 {
		pathWidth = 60
	}
	s.WriteString(TitleStyle.Render(" pydu "))
	s.WriteString("  ")
	s.WriteString(HeaderStyle.Render(format.TruncatePath(m.nav.Current.Path, pathWidth)))
	s.WriteString("\n")

	files := "on"
	if !m.nav.ShowFiles {
		files = "off"
	}
	status := fmt.Sprintf("Total: %s  •  sort: %s  •  files: %s",
		format.Size(m.nav.Current.SubtreeSize()), m.nav.Sort, files)
	s.WriteString(DimStyle.Render(status))
	s.WriteString("\n\n")

	s.WriteString(m.renderRows())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderRows() string {
	var s strings.Builder

	visible := m.nav.Visible()
	sel := m.nav.Selected
	if sel >= len(visible) {
		sel = len(visible) - 1
	}
	if sel < 0 {
		sel = 0
	}

	if len(visible) == 0 {
		s.WriteString("  " + DimStyle.Render("(empty)") + "\n")
		return s.String()
	}

	s.WriteString(DimStyle.Render("      SIZE     PCT  BAR") + "\n")

	// Bars are proportional to the largest sibling, so the top entry is
	// always a full bar.
	var largest int64
	sizes := make([]int64, len(visible))
	for i, c := range visible {
		sizes[i] = c.SubtreeSize()
		if sizes[i] > largest {
			largest = sizes[i]
		}
	}

	barWidth := m.width / 4
	if barWidth < 10 {
		barWidth = 10
	} else if barWidth > 40 {
		barWidth = 40
	}

	vh := m.viewportHeight()
	top := m.offset
	if top > sel {
		top = sel
	}
	end := top + vh
	if end > len(visible) {
		end = len(visible)
	}

	for i := top; i < end; i++ {
		c := visible[i]
		frac := 0.0
		if largest > 0 {
			frac = float64(sizes[i]) / float64(largest)
		}

		suffix := ""
		if c.Kind == fsys.KindDir {
			suffix = "/"
		}
		line := fmt.Sprintf("%8s  %5.1f%%  [%s]  %s%s",
			format.Size(sizes[i]), frac*100, format.Bar(frac, barWidth), c.Name, suffix)

		switch {
		case i == sel:
			s.WriteString("▸ " + SelectedStyle.Render(line))
		case c.Kind == fsys.KindDir:
			s.WriteString("  " + DirStyle.Render(line))
		default:
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
	}

	if len(visible) > vh {
		s.WriteString(DimStyle.Render(fmt.Sprintf("  [%d-%d of %d]", top+1, end, len(visible))))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderFooter() string {
	var s strings.Builder

	st := m.stats.Snapshot()
	if m.scanning {
		eta := "???"
		if st.ETA > 0 {
			eta = fmt.Sprintf("%ds", int(st.ETA.Seconds()))
		}
		s.WriteString(m.spinner.View())
		s.WriteString(" scanning ")
		s.WriteString(m.progress.ViewAs(st.Fraction))
		s.WriteString("\n")
		s.WriteString(DimStyle.Render(fmt.Sprintf(
			"%s entries  •  %s dirs pending  •  %ds elapsed  •  ETA %s  •  errs: %d",
			humanize.Comma(st.Entries), humanize.Comma(st.Pending),
			int(st.Elapsed.Seconds()), eta, st.Errors)))
	} else {
		done := fmt.Sprintf("Scan complete  •  %s entries in %ds",
			humanize.Comma(st.Entries), int(st.Elapsed.Seconds()))
		s.WriteString(SuccessStyle.Render(done))
		if st.Errors > 0 {
			s.WriteString("  ")
			s.WriteString(ErrorStyle.Render(fmt.Sprintf("errs: %d", st.Errors)))
		}
	}
	s.WriteString("\n")
	s.WriteString(DimStyle.Render("↑/↓ move • →/enter open • ← up • s sort • f files • q quit"))
	return s.String()
}
