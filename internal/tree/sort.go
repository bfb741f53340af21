package tree

import (
	"sort"

	"github.com/bootloops/pydu/internal/fsys"
)

// SortMode selects the ordering of a directory listing.
type SortMode int

const (
	BySizeDesc SortMode = iota
	ByNameAsc
	ByTypeThenName
)

func (m SortMode) String() string {
	switch m {
	case ByNameAsc:
		return "name"
	case ByTypeThenName:
		return "type"
	default:
		return "size"
	}
}

// Next advances to the following mode in the fixed cycle.
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

// typeRank orders directories before files before symlinks before
// inaccessible entries.
func typeRank(k fsys.Kind) int {
	switch k {
	case fsys.KindDir:
		return 0
	case fsys.KindFile:
		return 1
	case fsys.KindSymlink:
		return 2
	default:
		return 3
	}
}

// SortedChildren returns the node's children in the given order. With
// showFiles false, file entries are dropped; directories, symlinks and
// inaccessible entries always remain. Ties always break by name
// ascending so repeated sorts of an unmodified tree are identical.
func (n *Node) SortedChildren(mode SortMode, showFiles bool) []*Node {
	kids := n.Children()
	if !showFiles {
		visible := kids[:0]
		for _, c := range kids {
			if c.Kind != fsys.KindFile {
				visible = append(visible, c)
			}
		}
		kids = visible
	}

	// Sizes are snapshotted once so the comparator stays a total order
	// even while workers keep adding bytes underneath.
	sizes := make(map[*Node]int64, len(kids))
	for _, c := range kids {
		sizes[c] = c.SubtreeSize()
	}

	sort.Slice(kids, func(i, j int) bool {
		a, b := kids[i], kids[j]
		switch mode {
		case ByNameAsc:
			return a.Name < b.Name
		case ByTypeThenName:
			if ra, rb := typeRank(a.Kind), typeRank(b.Kind); ra != rb {
				return ra < rb
			}
			return a.Name < b.Name
		default: // BySizeDesc
			if sizes[a] != sizes[b] {
				return sizes[a] > sizes[b]
			}
			return a.Name < b.Name
		}
	})
	return kids
}
