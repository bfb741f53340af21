package fsys

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListClassifiesEntries(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "file.dat"), make([]byte, 42), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	symlinks := true
	if err := os.Symlink(filepath.Join(dir, "sub"), filepath.Join(dir, "link")); err != nil {
		symlinks = false
	}

	entries, err := OS{}.List(dir)
	if err != nil {
		t.Fatalf("List: %v", err)
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	f, ok := byName["file.dat"]
	if !ok || f.Kind != KindFile {
		t.Errorf("file.dat = %+v, want a file entry", f)
	}
	if f.Size != 42 {
		t.Errorf("file.dat size = %d, want 42", f.Size)
	}

	d, ok := byName["sub"]
	if !ok || d.Kind != KindDir {
		t.Errorf("sub = %+v, want a dir entry", d)
	}
	if d.Size != 0 {
		t.Errorf("dir size = %d, want 0", d.Size)
	}

	if symlinks {
		l, ok := byName["link"]
		if !ok || l.Kind != KindSymlink {
			t.Errorf("link = %+v, want a symlink entry", l)
		}
	}
}

func TestListMissingDirectory(t *testing.T) {
	if _, err := (OS{}).List(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindFile:         "file",
		KindDir:          "dir",
		KindSymlink:      "symlink",
		KindInaccessible: "inaccessible",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
