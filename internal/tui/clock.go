package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const clockInterval = time.Second

// tickMsg carries one clock advance. tag identifies the clock generation
// that scheduled it.
type tickMsg struct {
	tag int
	at  time.Time
}

// clock is the shell's once-per-second time source. Each tick re-arms the
// next one, so at most one tick is in flight. start and stop bump the tag,
// which makes any tick scheduled by an earlier generation a no-op; a
// stop/start cycle can therefore never leave two tickers running.
type clock struct {
	now      time.Time
	interval time.Duration
	tag      int
	running  bool
}

func newClock(now time.Time) clock {
	return clock{now: now, interval: clockInterval}
}

// start begins ticking and returns the first scheduled tick.
func (c *clock) start() tea.Cmd {
	c.tag++
	c.running = true
	return c.schedule()
}

// stop halts ticking. Ticks already in flight are discarded on arrival.
func (c *clock) stop() {
	c.tag++
	c.running = false
}

// update applies a tick and schedules the next one. Ticks from another
// generation, or arriving after stop, are ignored and not re-armed.
func (c *clock) update(msg tickMsg) tea.Cmd {
	if !c.running || msg.tag != c.tag {
		return nil
	}
	c.now = msg.at
	return c.schedule()
}

func (c *clock) schedule() tea.Cmd {
	tag := c.tag
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return tickMsg{tag: tag, at: t}
	})
}
