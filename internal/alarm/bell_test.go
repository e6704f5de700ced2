package alarm

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestBellRingsUntilStopped(t *testing.T) {
	t.Parallel()

	out := &syncBuffer{}
	b := NewBell(out, 5*time.Millisecond)

	require.NoError(t, b.Play())
	require.NoError(t, b.Play())
	require.Eventually(t, func() bool { return b.Rings() >= 2 }, time.Second, time.Millisecond)
	require.NoError(t, b.Stop())

	rung := b.Rings()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, rung, b.Rings())
	require.Equal(t, strings.Repeat(bel, rung), out.String())

	require.NoError(t, b.Rewind())
	require.Zero(t, b.Rings())
	require.NoError(t, b.Stop())
}

func TestBellCanReplayAfterStop(t *testing.T) {
	t.Parallel()

	b := NewBell(nil, 0)
	require.NoError(t, b.Play())
	require.Eventually(t, func() bool { return b.Rings() >= 1 }, time.Second, time.Millisecond)
	require.NoError(t, b.Stop())
	require.NoError(t, b.Rewind())

	require.NoError(t, b.Play())
	require.Eventually(t, func() bool { return b.Rings() >= 1 }, time.Second, time.Millisecond)
	require.NoError(t, b.Stop())
}
