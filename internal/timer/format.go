package timer

import "fmt"

// Split breaks seconds into hour, minute and second fields.
func Split(seconds int) (h, m, s int) {
	if seconds < 0 {
		seconds = 0
	}
	return seconds / 3600, (seconds % 3600) / 60, seconds % 60
}

// Format renders seconds as MM:SS, or HH:MM:SS once there is at least one hour.
func Format(seconds int) string {
	h, m, s := Split(seconds)
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
