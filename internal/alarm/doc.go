// Package alarm provides the devices played when a countdown expires:
// a repeating terminal bell, an external audio command and a silent device.
// Each device is safe to call from the event loop while its own playback
// goroutine or process runs in the background.
package alarm
