package alarm

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCommandPlayAndStop(t *testing.T) {
	t.Parallel()

	sleep, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}

	c := NewCommand(sleep, "30")
	require.NoError(t, c.Play())
	require.True(t, c.Playing())
	require.NoError(t, c.Play())

	done := make(chan struct{})
	go func() {
		_ = c.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
	require.False(t, c.Playing())
	require.NoError(t, c.Stop())
	require.NoError(t, c.Rewind())
}

func TestCommandMissingBinary(t *testing.T) {
	t.Parallel()

	c := NewCommand("definitely-not-an-audio-player-binary")
	require.Error(t, c.Play())
	require.False(t, c.Playing())
	require.Error(t, NewCommand("").Play())
}
