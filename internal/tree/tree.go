package tree

import (
	"path/filepath"
	"sync"

	"github.com/bootloops/pydu/internal/fsys"
)

// Tree is the authoritative hierarchy built up during a scan. Nodes are
// addressed by absolute path through an index; entries are only ever
// added, never removed, so partial and cancelled scans stay displayable.
type Tree struct {
	root *Node

	mu    sync.RWMutex
	index map[string]*Node
}

// New creates a tree rooted at the absolute path rootPath.
func New(rootPath string) *Tree {
	root := &Node{
		Path:     rootPath,
		Name:     filepath.Base(rootPath),
		Kind:     fsys.KindDir,
		children: make(map[string]*Node),
	}
	return &Tree{
		root:  root,
		index: map[string]*Node{rootPath: root},
	}
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// Lookup returns the node for path, or nil if it has not been reported.
func (t *Tree) Lookup(path string) *Node {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.index[path]
}

// ReportEntry records one listed entry under parentPath, creating the
// child node if absent, and propagates the size delta to every ancestor.
// Each ancestor update is a single atomic add, so concurrent reports
// from different workers never lose bytes; cost is O(depth).
// Returns the child node, or nil if parentPath is unknown.
func (t *Tree) ReportEntry(parentPath, name string, kind fsys.Kind, size int64) *Node {
	parent := t.Lookup(parentPath)
	if parent == nil {
		return nil
	}

	parent.mu.Lock()
	child, ok := parent.children[name]
	if !ok {
		child = &Node{
			Path:   filepath.Join(parentPath, name),
			Name:   name,
			Kind:   kind,
			parent: parent,
		}
		if kind == fsys.KindDir {
			child.children = make(map[string]*Node)
		}
		parent.children[name] = child
	}
	parent.mu.Unlock()

	if !ok {
		t.mu.Lock()
		t.index[child.Path] = child
		t.mu.Unlock()
	}

	delta := size - child.OwnSize
	if delta == 0 {
		return child
	}
	child.OwnSize = size
	child.subtreeSize.Add(delta)
	for p := parent; p != nil; p = p.parent {
		p.subtreeSize.Add(delta)
	}
	return child
}

// ReportError counts one failed list/stat against the node at path and
// every ancestor, so each directory's count covers its whole subtree.
func (t *Tree) ReportError(path string) {
	for n := t.Lookup(path); n != nil; n = n.parent {
		n.errorCount.Add(1)
	}
}

// MarkComplete flags the directory at path as fully listed.
func (t *Tree) MarkComplete(path string) {
	if n := t.Lookup(path); n != nil {
		n.scanComplete.Store(true)
	}
}
