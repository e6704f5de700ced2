package alarm

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/countdown/internal/config"
)

// Device plays, stops and rewinds an alarm sound.
type Device interface {
	Play() error
	Stop() error
	Rewind() error
}

// New builds the device selected by cfg. Bell output goes to out.
func New(cfg config.Alarm, out io.Writer) (Device, error) {
	switch cfg.Mode {
	case config.AlarmModeBell:
		return NewBell(out, cfg.Interval), nil
	case config.AlarmModeCommand:
		if len(cfg.Command) == 0 {
			return nil, fmt.Errorf("alarm command is empty")
		}
		return NewCommand(cfg.Command[0], cfg.Command[1:]...), nil
	case config.AlarmModeNone, "":
		return Silent{}, nil
	default:
		return nil, fmt.Errorf("unknown alarm mode %q", cfg.Mode)
	}
}

// Silent is a device that never makes a sound.
type Silent struct{}

func (Silent) Play() error   { return nil }
func (Silent) Stop() error   { return nil }
func (Silent) Rewind() error { return nil }
