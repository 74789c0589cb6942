package utils

import (
	"sync"
	"time"
)

// Rotator cycles an index over a fixed number of slides at a fixed interval.
// The timer has an explicit lifecycle: the owner starts it, reads or steers
// the index, and stops it when the view goes away.
type Rotator struct {
	mu       sync.Mutex
	count    int
	interval time.Duration
	current  int
	ticker   *time.Ticker
	done     chan struct{}
}

// NewRotator creates a stopped rotator over count slides. A count below 1 is
// treated as a single slide so Index is always valid.
func NewRotator(count int, interval time.Duration) *Rotator {
	if count < 1 {
		count = 1
	}
	return &Rotator{count: count, interval: interval}
}

// Start begins auto-advancing. Starting a running rotator is a no-op.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ticker != nil || r.count < 2 {
		return
	}
	r.ticker = time.NewTicker(r.interval)
	r.done = make(chan struct{})
	go r.run(r.ticker, r.done)
}

func (r *Rotator) run(ticker *time.Ticker, done chan struct{}) {
	for {
		select {
		case <-ticker.C:
			r.step(1)
		case <-done:
			return
		}
	}
}

// Stop halts auto-advance and releases the timer. Stopping a stopped
// rotator is a no-op; the index keeps its last value.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	close(r.done)
	r.ticker = nil
	r.done = nil
}

// Index returns the active slide.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Next advances manually and resets the auto-advance interval, like tapping
// the carousel arrows.
func (r *Rotator) Next() int { return r.manual(1) }

// Prev steps back manually and resets the auto-advance interval.
func (r *Rotator) Prev() int { return r.manual(-1) }

func (r *Rotator) manual(delta int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = wrap(r.current+delta, r.count)
	if r.ticker != nil {
		r.ticker.Reset(r.interval)
	}
	return r.current
}

func (r *Rotator) step(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = wrap(r.current+delta, r.count)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
