package alarm

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// Command plays the alarm by running an external program, for example
// an audio player pointed at a sound file. Stopping kills the process.
type Command struct {
	name string
	args []string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewCommand returns a device running name with args on Play.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// Play starts the program unless it is already running.
func (c *Command) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.done != nil {
		select {
		case <-c.done:
			c.cancel()
		default:
			return nil
		}
	}
	if c.name == "" {
		return errors.New("alarm command is empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("start alarm command: %w", err)
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()
	c.cancel, c.done = cancel, done
	return nil
}

// Stop kills the running program, if any, and waits for it to exit.
func (c *Command) Stop() error {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}

// Rewind is a no-op: every Play starts the program from the beginning.
func (c *Command) Rewind() error { return nil }

// Playing reports whether the program is still running.
func (c *Command) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}
