package scan

import (
	"sync/atomic"
	"time"
)

// Progress holds process-wide scan counters, written by workers through
// atomics and read by the renderer on every frame.
type Progress struct {
	entries  atomic.Int64 // entries reported (files, dirs, links)
	dirsDone atomic.Int64 // directories fully listed
	pending  atomic.Int64 // directories queued or in flight
	errors   atomic.Int64 // list/stat failures
	active   atomic.Bool
	endNanos atomic.Int64 // wall clock when the scan finished

	start time.Time
}

// NewProgress starts the clock.
func NewProgress() *Progress {
	p := &Progress{start: time.Now()}
	p.active.Store(true)
	return p
}

// Snapshot is a consistent-enough copy of the counters plus derived
// quantities for one rendered frame.
type Snapshot struct {
	Entries  int64
	DirsDone int64
	Pending  int64
	Errors   int64
	Active   bool
	Elapsed  time.Duration
	// ETA estimates time to drain the pending directories at the rate
	// observed so far; zero when unknown or done.
	ETA time.Duration
	// Fraction of directories finished out of those discovered, in [0,1].
	Fraction float64
}

func (p *Progress) Snapshot() Snapshot {
	s := Snapshot{
		Entries:  p.entries.Load(),
		DirsDone: p.dirsDone.Load(),
		Pending:  p.pending.Load(),
		Errors:   p.errors.Load(),
		Active:   p.active.Load(),
		Elapsed:  p.elapsed(),
	}
	if total := s.DirsDone + s.Pending; total > 0 {
		s.Fraction = float64(s.DirsDone) / float64(total)
	}
	if !s.Active {
		s.Fraction = 1
		return s
	}
	if s.DirsDone > 0 && s.Elapsed > 0 {
		rate := float64(s.DirsDone) / s.Elapsed.Seconds()
		if rate > 0 {
			s.ETA = time.Duration(float64(s.Pending) / rate * float64(time.Second))
		}
	}
	return s
}

func (p *Progress) addEntry()  { p.entries.Add(1) }
func (p *Progress) addError()  { p.errors.Add(1) }
func (p *Progress) dirQueued() { p.pending.Add(1) }

func (p *Progress) dirFinished() {
	p.pending.Add(-1)
	p.dirsDone.Add(1)
}

func (p *Progress) finish() {
	p.endNanos.Store(time.Now().UnixNano())
	p.active.Store(false)
}

// elapsed stops advancing once the scan is done.
func (p *Progress) elapsed() time.Duration {
	if end := p.endNanos.Load(); end != 0 {
		return time.Unix(0, end).Sub(p.start)
	}
	return time.Since(p.start)
}
