package scan

import (
	"context"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/bootloops/pydu/internal/fsys"
	"github.com/bootloops/pydu/internal/tree"
)

// maxWorkers bounds the pool regardless of core count; each worker holds
// an open directory handle, and very wide trees would otherwise exhaust
// file descriptors.
const maxWorkers = 32

// DefaultWorkers is the pool size used when none is configured.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if n > maxWorkers {
		n = maxWorkers
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Scanner drains a work queue of directories with a pool of workers,
// reporting every listed entry into the aggregation tree.
type Scanner struct {
	probe   fsys.Prober
	tree    *tree.Tree
	stats   *Progress
	workers int

	queue *queue
	// outstanding counts directories queued but not yet fully processed.
	// The queue closes when it reaches zero, never on emptiness alone: a
	// worker mid-listing may still be about to enqueue children.
	outstanding atomic.Int64
}

// New builds a scanner over the given tree. workers <= 0 selects the
// default pool size.
func New(probe fsys.Prober, t *tree.Tree, stats *Progress, workers int) *Scanner {
	if workers <= 0 {
		workers = DefaultWorkers()
	}
	return &Scanner{
		probe:   probe,
		tree:    t,
		stats:   stats,
		workers: workers,
		queue:   newQueue(),
	}
}

// Run scans the tree's root until every discovered directory has been
// listed or ctx is cancelled. Cancellation is cooperative: workers
// observe ctx between entries, finish the one in flight, and exit
// without draining the queue. The tree remains valid either way.
func (s *Scanner) Run(ctx context.Context) error {
	defer s.stats.finish()

	s.enqueue(s.tree.Root().Path)

	// Wake workers blocked in pop if the context dies first.
	stop := context.AfterFunc(ctx, s.queue.close)
	defer stop()

	var g errgroup.Group
	for i := 0; i < s.workers; i++ {
		g.Go(func() error {
			return s.worker(ctx)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Scanner) enqueue(path string) {
	s.outstanding.Add(1)
	s.stats.dirQueued()
	s.queue.push(path)
}

func (s *Scanner) worker(ctx context.Context) error {
	for {
		path, ok := s.queue.pop()
		if !ok {
			return nil
		}
		s.scanDir(ctx, path)
		s.stats.dirFinished()
		if s.outstanding.Add(-1) == 0 {
			// No queued or in-flight directories remain anywhere, so no
			// new paths can ever be produced.
			s.queue.close()
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// scanDir lists one directory and reports its entries. A single bad
// entry never aborts its siblings; a refused listing is charged to the
// directory's parent and the node stays in the tree with size zero.
func (s *Scanner) scanDir(ctx context.Context, path string) {
	entries, err := s.probe.List(path)
	if err != nil {
		s.tree.ReportError(filepath.Dir(path))
		s.stats.addError()
		return
	}

	for _, e := range entries {
		if ctx.Err() != nil {
			return
		}
		if e.Kind == fsys.KindInaccessible {
			s.tree.ReportEntry(path, e.Name, e.Kind, 0)
			s.tree.ReportError(path)
			s.stats.addError()
			s.stats.addEntry()
			continue
		}
		s.tree.ReportEntry(path, e.Name, e.Kind, e.Size)
		s.stats.addEntry()
		if e.Kind == fsys.KindDir {
			s.enqueue(filepath.Join(path, e.Name))
		}
	}
	s.tree.MarkComplete(path)
}
