// Package nav holds the browser's navigation state: current directory,
// cursor, sort mode and file visibility. Transitions are pure and
// synchronous; scan workers never touch this state.
package nav

import (
	"github.com/bootloops/pydu/internal/fsys"
	"github.com/bootloops/pydu/internal/tree"
)

// State is the view state driving what the renderer shows.
type State struct {
	Current   *tree.Node
	Selected  int
	Sort      tree.SortMode
	ShowFiles bool
}

// New starts at the tree root with size-descending order and files shown.
func New(root *tree.Node) State {
	return State{Current: root, Sort: tree.BySizeDesc, ShowFiles: true}
}

// Visible returns the current directory's children in display order.
func (s *State) Visible() []*tree.Node {
	return s.Current.SortedChildren(s.Sort, s.ShowFiles)
}

// Clamp pins the cursor into the visible range. The child set grows
// while the scan runs, so this is also applied before each render.
func (s *State) Clamp(visible []*tree.Node) {
	if len(visible) == 0 {
		s.Selected = 0
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= len(visible) {
		s.Selected = len(visible) - 1
	}
}

// MoveUp moves the cursor one row up.
func (s *State) MoveUp() {
	s.Selected--
	s.Clamp(s.Visible())
}

// MoveDown moves the cursor one row down.
func (s *State) MoveDown() {
	s.Selected++
	s.Clamp(s.Visible())
}

// Descend enters the selected child if it is a directory; files,
// symlinks and inaccessible entries are no-ops.
func (s *State) Descend() {
	visible := s.Visible()
	s.Clamp(visible)
	if len(visible) == 0 {
		return
	}
	sel := visible[s.Selected]
	if sel.Kind != fsys.KindDir {
		return
	}
	s.Current = sel
	s.Selected = 0
}

// Ascend moves to the parent directory. The cursor lands on the
// directory just left, if it is still visible there, else on row 0.
func (s *State) Ascend() {
	parent := s.Current.Parent()
	if parent == nil {
		return
	}
	child := s.Current
	s.Current = parent
	s.Selected = indexOf(s.Visible(), child)
}

// CycleSort advances the sort mode, keeping the same node under the
// cursor when it remains visible.
func (s *State) CycleSort() {
	sel := s.selectedNode()
	s.Sort = s.Sort.Next()
	s.Selected = indexOf(s.Visible(), sel)
}

// ToggleFiles flips file visibility, remapping the cursor like CycleSort.
func (s *State) ToggleFiles() {
	sel := s.selectedNode()
	s.ShowFiles = !s.ShowFiles
	s.Selected = indexOf(s.Visible(), sel)
}

func (s *State) selectedNode() *tree.Node {
	visible := s.Visible()
	s.Clamp(visible)
	if len(visible) == 0 {
		return nil
	}
	return visible[s.Selected]
}

func indexOf(visible []*tree.Node, n *tree.Node) int {
	for i, c := range visible {
		if c == n {
			return i
		}
	}
	return 0
}
