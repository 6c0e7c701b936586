package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period before a search term is committed
const DefaultDelay = 500 * time.Millisecond

// Msg is delivered when a debounce window elapses
type Msg struct {
	Tag   uint64
	Value string
	At    time.Time
}

// Scheduler fires fn after d. tea.Tick satisfies it.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Debouncer turns a stream of raw values into trailing-edge commits. Every
// Trigger supersedes the previous one; only the tick carrying the latest tag
// can commit.
type Debouncer struct {
	delay     time.Duration
	schedule  Scheduler
	tag       uint64
	pending   string
	committed string
}

// New creates a debouncer with the given quiet period
func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{
		delay:    delay,
		schedule: tea.Tick,
	}
}

// WithScheduler replaces tea.Tick, mostly for tests
func (d *Debouncer) WithScheduler(s Scheduler) *Debouncer {
	d.schedule = s
	return d
}

// Delay returns the quiet period
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger records value as the latest raw input and restarts the window
func (d *Debouncer) Trigger(value string) tea.Cmd {
	d.tag++
	d.pending = value
	tag := d.tag
	return d.schedule(d.delay, func(t time.Time) tea.Msg {
		return Msg{Tag: tag, Value: value, At: t}
	})
}

// Settle handles an elapsed window. It returns the committed value and true
// when msg belongs to the latest Trigger and the value actually changed.
func (d *Debouncer) Settle(msg Msg) (string, bool) {
	if msg.Tag != d.tag {
		return "", false
	}
	if msg.Value == d.committed {
		return "", false
	}
	d.committed = msg.Value
	return d.committed, true
}

// Committed returns the last committed value
func (d *Debouncer) Committed() string {
	return d.committed
}

// Pending returns the latest raw value
func (d *Debouncer) Pending() string {
	return d.pending
}
