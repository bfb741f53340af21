package tree

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bootloops/pydu/internal/fsys"
)

func TestReportEntryAggregates(t *testing.T) {
	tr := New("/r")
	tr.ReportEntry("/r", "a", fsys.KindFile, 100)
	tr.ReportEntry("/r", "b", fsys.KindFile, 50)
	tr.ReportEntry("/r", "c", fsys.KindDir, 0)
	tr.ReportEntry("/r/c", "d", fsys.KindFile, 200)

	if got := tr.Root().SubtreeSize(); got != 350 {
		t.Errorf("root subtree size = %d, want 350", got)
	}
	c := tr.Lookup("/r/c")
	if c == nil {
		t.Fatal("lookup /r/c returned nil")
	}
	if got := c.SubtreeSize(); got != 200 {
		t.Errorf("c subtree size = %d, want 200", got)
	}
	if c.Parent() != tr.Root() {
		t.Error("c parent is not root")
	}

	kids := tr.Root().SortedChildren(BySizeDesc, true)
	names := make([]string, len(kids))
	for i, k := range kids {
		names[i] = k.Name
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("BySizeDesc order = %v, want %v", names, want)
		}
	}
}

func TestReportEntryIdempotentSize(t *testing.T) {
	tr := New("/r")
	tr.ReportEntry("/r", "a", fsys.KindFile, 100)
	// Re-reporting the same size must not double count.
	tr.ReportEntry("/r", "a", fsys.KindFile, 100)
	if got := tr.Root().SubtreeSize(); got != 100 {
		t.Errorf("root subtree size = %d, want 100", got)
	}
}

func TestReportEntryUnknownParent(t *testing.T) {
	tr := New("/r")
	if n := tr.ReportEntry("/elsewhere", "a", fsys.KindFile, 1); n != nil {
		t.Error("expected nil for unknown parent")
	}
	if got := tr.Root().SubtreeSize(); got != 0 {
		t.Errorf("root subtree size = %d, want 0", got)
	}
}

func TestConcurrentReporters(t *testing.T) {
	tr := New("/r")
	const dirs = 8
	const filesPerDir = 200
	for i := 0; i < dirs; i++ {
		tr.ReportEntry("/r", fmt.Sprintf("d%d", i), fsys.KindDir, 0)
	}

	var wg sync.WaitGroup
	for i := 0; i < dirs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dir := filepath.Join("/r", fmt.Sprintf("d%d", i))
			for j := 0; j < filesPerDir; j++ {
				tr.ReportEntry(dir, fmt.Sprintf("f%d", j), fsys.KindFile, 3)
			}
		}(i)
	}
	wg.Wait()

	want := int64(dirs * filesPerDir * 3)
	if got := tr.Root().SubtreeSize(); got != want {
		t.Errorf("root subtree size = %d, want %d", got, want)
	}
	for i := 0; i < dirs; i++ {
		d := tr.Lookup(filepath.Join("/r", fmt.Sprintf("d%d", i)))
		if got := d.SubtreeSize(); got != filesPerDir*3 {
			t.Errorf("d%d subtree size = %d, want %d", i, got, filesPerDir*3)
		}
	}
}

func TestReportErrorPropagates(t *testing.T) {
	tr := New("/r")
	tr.ReportEntry("/r", "c", fsys.KindDir, 0)
	tr.ReportEntry("/r/c", "d", fsys.KindDir, 0)
	tr.ReportError("/r/c/d")

	for _, path := range []string{"/r/c/d", "/r/c", "/r"} {
		if got := tr.Lookup(path).ErrorCount(); got != 1 {
			t.Errorf("error count at %s = %d, want 1", path, got)
		}
	}
}

func TestMarkComplete(t *testing.T) {
	tr := New("/r")
	if tr.Root().ScanComplete() {
		t.Error("root complete before scan")
	}
	tr.MarkComplete("/r")
	if !tr.Root().ScanComplete() {
		t.Error("root not complete after MarkComplete")
	}
}
