package alarm

import (
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/countdown/internal/config"
)

const bel = "\a"

// Bell rings the terminal bell on out until stopped.
type Bell struct {
	out      io.Writer
	interval time.Duration

	mu    sync.Mutex
	stop  chan struct{}
	done  chan struct{}
	rings int
}

// NewBell returns a bell that repeats every interval.
func NewBell(out io.Writer, interval time.Duration) *Bell {
	if interval <= 0 {
		interval = config.DefaultBellInterval
	}
	return &Bell{out: out, interval: interval}
}

// Play starts ringing. Calling Play while ringing does nothing.
func (b *Bell) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stop != nil {
		return nil
	}
	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.loop(b.stop, b.done)
	return nil
}

// Stop silences the bell and waits for the ringing goroutine to exit.
func (b *Bell) Stop() error {
	b.mu.Lock()
	stop, done := b.stop, b.done
	b.stop, b.done = nil, nil
	b.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)
	<-done
	return nil
}

// Rewind resets the ring counter, the bell's notion of playback position.
func (b *Bell) Rewind() error {
	b.mu.Lock()
	b.rings = 0
	b.mu.Unlock()
	return nil
}

// Rings is the number of bells rung since the last rewind.
func (b *Bell) Rings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rings
}

func (b *Bell) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	b.ring()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.ring()
		}
	}
}

func (b *Bell) ring() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.out != nil {
		_, _ = io.WriteString(b.out, bel)
	}
	b.rings++
}
