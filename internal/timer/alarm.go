package timer

import "go.uber.org/zap"

// Alarm is the audible device played when a countdown expires.
//
//go:generate mockgen -source=alarm.go -destination=mock_alarm_test.go -package=timer
type Alarm interface {
	Play() error
	Stop() error
	Rewind() error
}

// Interaction is a kind of user input that may dismiss a ringing alarm.
type Interaction int

const (
	InteractionPointer Interaction = iota
	InteractionTouch
	InteractionKey
)

// resetter is the part of the engine the controller hands control back to.
type resetter interface {
	Reset()
}

// dismissal is a one-shot listener armed on expiry.
type dismissal struct {
	id uint64
}

// AlarmController plays the alarm on expiry and turns the next user
// interaction into a full reset. At most one dismissal listener is armed.
type AlarmController struct {
	device  Alarm
	target  resetter
	log     *zap.SugaredLogger
	ringing bool
	pending *dismissal
	seq     uint64
}

func newAlarmController(device Alarm, target resetter, log *zap.SugaredLogger) *AlarmController {
	return &AlarmController{device: device, target: target, log: log}
}

// Expired starts the alarm and arms the dismissal listener.
func (c *AlarmController) Expired() {
	c.disarm()
	if c.device != nil {
		if err := c.device.Play(); err != nil {
			c.log.Errorw("alarm play failed", "error", err)
		}
	}
	c.ringing = true
	c.seq++
	c.pending = &dismissal{id: c.seq}
}

// Armed reports whether a dismissal listener is waiting.
func (c *AlarmController) Armed() bool { return c.pending != nil }

// Ringing reports whether the device was told to play and not yet stopped.
func (c *AlarmController) Ringing() bool { return c.ringing }

// Interact feeds a user interaction to the armed listener. It reports true
// when the interaction was consumed as a dismissal.
func (c *AlarmController) Interact(kind Interaction) bool {
	if c.pending == nil {
		return false
	}
	switch kind {
	case InteractionPointer, InteractionTouch, InteractionKey:
		c.Dismiss()
		return true
	default:
		return false
	}
}

// Dismiss stops the alarm, disarms the listener and resets the timer.
func (c *AlarmController) Dismiss() {
	if c.pending != nil {
		c.log.Debugw("alarm dismissed", "listener", c.pending.id)
	}
	c.silence()
	if c.target != nil {
		c.target.Reset()
	}
}

// Silence stops and rewinds the device and drops any armed listener
// without touching the timer.
func (c *AlarmController) Silence() {
	c.silence()
}

func (c *AlarmController) silence() {
	c.disarm()
	if !c.ringing {
		return
	}
	c.ringing = false
	if c.device == nil {
		return
	}
	if err := c.device.Stop(); err != nil {
		c.log.Errorw("alarm stop failed", "error", err)
	}
	if err := c.device.Rewind(); err != nil {
		c.log.Errorw("alarm rewind failed", "error", err)
	}
}

func (c *AlarmController) disarm() {
	c.pending = nil
}
