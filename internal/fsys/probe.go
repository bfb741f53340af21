package fsys

import (
	"io/fs"
	"os"
)

// Kind classifies a filesystem entry.
type Kind uint8

const (
	KindFile Kind = iota
	KindDir
	KindSymlink
	KindInaccessible
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindSymlink:
		return "symlink"
	default:
		return "inaccessible"
	}
}

// Entry is one directory entry as observed by the probe.
// Size is meaningful for files and symlinks only; directories report 0
// and get their sizes from aggregation.
type Entry struct {
	Name string
	Kind Kind
	Size int64
}

// Prober lists directory contents. It is the only abstraction over the
// OS in this program; tests substitute a fake.
type Prober interface {
	// List returns the entries of the directory at path. A non-nil error
	// means the listing itself was refused; per-entry stat failures are
	// reported as KindInaccessible entries instead.
	List(path string) ([]Entry, error)
}

// OS probes the real filesystem.
type OS struct{}

func (OS) List(path string) ([]Entry, error) {
	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, classify(d))
	}
	return entries, nil
}

func classify(d fs.DirEntry) Entry {
	// Type() comes from the readdir record and never follows links.
	switch typ := d.Type(); {
	case typ.IsDir():
		return Entry{Name: d.Name(), Kind: KindDir}
	case typ&fs.ModeSymlink != 0:
		// Lstat size of the link itself; the target is never traversed,
		// which keeps the tree acyclic and avoids double counting.
		info, err := d.Info()
		if err != nil {
			return Entry{Name: d.Name(), Kind: KindInaccessible}
		}
		return Entry{Name: d.Name(), Kind: KindSymlink, Size: info.Size()}
	case typ.IsRegular():
		info, err := d.Info()
		if err != nil {
			// Vanished or permission-denied between list and stat.
			return Entry{Name: d.Name(), Kind: KindInaccessible}
		}
		return Entry{Name: d.Name(), Kind: KindFile, Size: info.Size()}
	default:
		// Sockets, devices, fifos: present but own no countable bytes.
		return Entry{Name: d.Name(), Kind: KindFile}
	}
}
