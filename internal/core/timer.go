package core

import (
	"math"
	"time"
)

// DefaultFrameWindow is the number of samples FrameStats keeps.
const DefaultFrameWindow = 100

// FrameStats estimates frames per second over a sliding window of recent
// frames.
type FrameStats struct {
	samples []float64
	next    int
	full    bool
	latest  float64
	last    time.Time
}

// NewFrameStats constructs a FrameStats keeping the given number of samples.
func NewFrameStats(window int) *FrameStats {
	if window <= 0 {
		window = DefaultFrameWindow
	}
	return &FrameStats{samples: make([]float64, window)}
}

// Tick records a frame boundary at now. The first call only sets the
// reference time.
func (f *FrameStats) Tick(now time.Time) {
	if f.last.IsZero() {
		f.last = now
		return
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta <= 0 {
		return
	}
	f.Add(float64(time.Second) / float64(delta))
}

// Add records a single frames-per-second sample, evicting the oldest one
// once the window is full.
func (f *FrameStats) Add(fps float64) {
	f.latest = fps
	f.samples[f.next] = fps
	f.next++
	if f.next == len(f.samples) {
		f.next = 0
		f.full = true
	}
}

// Len returns the number of samples currently in the window.
func (f *FrameStats) Len() int {
	if f.full {
		return len(f.samples)
	}
	return f.next
}

// Latest returns the most recent sample.
func (f *FrameStats) Latest() float64 { return f.latest }

// Mean returns the average of the window, or 0 when empty.
func (f *FrameStats) Mean() float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range f.samples[:n] {
		sum += s
	}
	return sum / float64(n)
}

// Min returns the smallest sample in the window, or 0 when empty.
func (f *FrameStats) Min() float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(1)
	for _, s := range f.samples[:n] {
		m = math.Min(m, s)
	}
	return m
}

// Max returns the largest sample in the window, or 0 when empty.
func (f *FrameStats) Max() float64 {
	n := f.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(-1)
	for _, s := range f.samples[:n] {
		m = math.Max(m, s)
	}
	return m
}
