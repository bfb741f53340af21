package tree

import (
	"sync"
	"sync/atomic"

	"github.com/bootloops/pydu/internal/fsys"
)

// Node is one filesystem entry's aggregated state. Size and error fields
// are atomics so scan workers can propagate deltas while the renderer
// reads, without a tree-wide lock. Cross-node consistency is not
// promised; each field read is individually consistent, which is enough
// for a live-updating display.
type Node struct {
	Path string
	Name string
	Kind fsys.Kind

	// OwnSize is bytes owned directly: the file (or link) size, 0 for
	// directories. Written once when the entry is reported.
	OwnSize int64

	subtreeSize  atomic.Int64
	errorCount   atomic.Int64
	scanComplete atomic.Bool

	// parent is a back-reference only; ownership flows parent -> children.
	parent *Node

	mu       sync.Mutex
	children map[string]*Node
}

// SubtreeSize is OwnSize plus the sum of all descendant subtree sizes.
// Monotonically non-decreasing while any descendant is still scanning.
func (n *Node) SubtreeSize() int64 { return n.subtreeSize.Load() }

// ErrorCount is the number of entries under this subtree that failed to
// list or stat.
func (n *Node) ErrorCount() int64 { return n.errorCount.Load() }

// ScanComplete reports whether this directory's own listing finished.
// Children may still be mid-scan.
func (n *Node) ScanComplete() bool { return n.scanComplete.Load() }

// Parent returns the owning directory, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Child returns the named child, or nil.
func (n *Node) Child(name string) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.children[name]
}

// Children returns a point-in-time copy of the child set, unordered.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	kids := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, c)
	}
	return kids
}
