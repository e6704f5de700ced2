package alarm

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akyairhashvil/countdown/internal/config"
)

func TestNewSelectsDevice(t *testing.T) {
	t.Parallel()

	d, err := New(config.Alarm{Mode: config.AlarmModeBell}, io.Discard)
	require.NoError(t, err)
	require.IsType(t, &Bell{}, d)

	d, err = New(config.Alarm{Mode: config.AlarmModeCommand, Command: []string{"paplay", "x.oga"}}, io.Discard)
	require.NoError(t, err)
	require.IsType(t, &Command{}, d)

	d, err = New(config.Alarm{Mode: config.AlarmModeNone}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, Silent{}, d)

	_, err = New(config.Alarm{Mode: config.AlarmModeCommand}, io.Discard)
	require.Error(t, err)
	_, err = New(config.Alarm{Mode: "siren"}, io.Discard)
	require.Error(t, err)
}
