package debounce

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock records scheduled callbacks against a virtual timeline
type fakeClock struct {
	now   time.Duration
	timer []timer
}

type timer struct {
	at time.Duration
	fn func(time.Time) tea.Msg
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func (c *fakeClock) schedule(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	c.timer = append(c.timer, timer{at: c.now + d, fn: fn})
	return func() tea.Msg { return nil }
}

// runAll fires every pending timer in time order
func (c *fakeClock) runAll(d *Debouncer) []commit {
	sort.SliceStable(c.timer, func(i, j int) bool { return c.timer[i].at < c.timer[j].at })
	var commits []commit
	for _, tm := range c.timer {
		c.now = tm.at
		msg := tm.fn(epoch.Add(tm.at)).(Msg)
		if v, ok := d.Settle(msg); ok {
			commits = append(commits, commit{at: tm.at, value: v})
		}
	}
	c.timer = nil
	return commits
}

type commit struct {
	at    time.Duration
	value string
}

func TestBurstCommitsOnceAfterQuietPeriod(t *testing.T) {
	clock := &fakeClock{}
	d := New(500 * time.Millisecond).WithScheduler(clock.schedule)

	for _, step := range []struct {
		at    time.Duration
		value string
	}{
		{0, "d"},
		{100 * time.Millisecond, "du"},
		{200 * time.Millisecond, "dun"},
	} {
		clock.now = step.at
		require.NotNil(t, d.Trigger(step.value))
	}

	commits := clock.runAll(d)
	require.Len(t, commits, 1)
	assert.Equal(t, 700*time.Millisecond, commits[0].at)
	assert.Equal(t, "dun", commits[0].value)
	assert.Equal(t, "dun", d.Committed())
}

func TestStaleTickIsIgnored(t *testing.T) {
	d := New(time.Second)

	d.Trigger("a")
	d.Trigger("ab")

	_, ok := d.Settle(Msg{Tag: 1, Value: "a"})
	assert.False(t, ok)

	v, ok := d.Settle(Msg{Tag: 2, Value: "ab"})
	assert.True(t, ok)
	assert.Equal(t, "ab", v)
}

func TestUnchangedValueDoesNotCommit(t *testing.T) {
	clock := &fakeClock{}
	d := New(500 * time.Millisecond).WithScheduler(clock.schedule)

	d.Trigger("alien")
	require.Len(t, clock.runAll(d), 1)

	// typing then deleting a character lands on the same term
	d.Trigger("alie")
	d.Trigger("alien")
	assert.Empty(t, clock.runAll(d))
}

func TestClearingCommitsEmptyTerm(t *testing.T) {
	clock := &fakeClock{}
	d := New(500 * time.Millisecond).WithScheduler(clock.schedule)

	d.Trigger("heat")
	clock.runAll(d)

	d.Trigger("")
	commits := clock.runAll(d)
	require.Len(t, commits, 1)
	assert.Equal(t, "", commits[0].value)
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultDelay, New(0).Delay())
	assert.Equal(t, 500*time.Millisecond, DefaultDelay)
}

func TestTickCommandProducesMsg(t *testing.T) {
	d := New(time.Millisecond)
	cmd := d.Trigger("x")
	require.NotNil(t, cmd)

	msg, ok := cmd().(Msg)
	require.True(t, ok)
	assert.Equal(t, uint64(1), msg.Tag)
	assert.Equal(t, "x", msg.Value)
	assert.Equal(t, "x", d.Pending())
}
