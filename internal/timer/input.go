package timer

import "github.com/akyairhashvil/countdown/internal/config"

// Input accumulates typed digits and mirrors the duration they encode.
// It knows nothing about run state; the engine decides when it may change.
type Input struct {
	digits  []byte
	seconds int
}

// Append adds a digit and re-parses the buffer. It reports false when the
// digit is out of range or the buffer is full.
func (in *Input) Append(d int) bool {
	if d < 0 || d > 9 || len(in.digits) >= config.MaxDigits {
		return false
	}
	in.digits = append(in.digits, byte('0'+d))
	in.seconds = Parse(string(in.digits))
	return true
}

// Backspace drops the last digit. An empty buffer is left untouched so a
// preset value survives.
func (in *Input) Backspace() bool {
	if len(in.digits) == 0 {
		return false
	}
	in.digits = in.digits[:len(in.digits)-1]
	in.seconds = Parse(string(in.digits))
	return true
}

// Preset replaces the buffer with a direct duration.
func (in *Input) Preset(seconds int) {
	in.digits = in.digits[:0]
	in.seconds = seconds
}

// Clear empties the buffer and zeroes the mirrored duration.
func (in *Input) Clear() {
	in.digits = in.digits[:0]
	in.seconds = 0
}

func (in *Input) Digits() string { return string(in.digits) }

func (in *Input) Seconds() int { return in.seconds }
