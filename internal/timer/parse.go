// Package timer implements the countdown core: digit parsing, display
// formatting, the run/pause/expire state machine and the alarm controller.
package timer

import "strconv"

// oneHourShortcut is the padded buffer that maps straight to one hour
// instead of going through the two-digit grouping.
const oneHourShortcut = "6000"

// Parse converts a digit buffer into seconds. The buffer is read from the
// right in pairs: seconds, then minutes, then everything left is hours.
// Values of 60 or more in the minute and second pairs are taken literally.
func Parse(buffer string) int {
	raw := buffer
	for len(raw) < 2 {
		raw = "0" + raw
	}
	if raw == oneHourShortcut {
		return 3600
	}

	n := len(raw)
	s := atoi(raw[n-2:])
	m, h := 0, 0
	if n > 2 {
		m = atoi(raw[max(n-4, 0) : n-2])
	}
	if n > 4 {
		h = atoi(raw[:n-4])
	}
	return h*3600 + m*60 + s
}

func atoi(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
