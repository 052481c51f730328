package browsertest

import "time"

// Clock is a browser.Clock that only advances when Sleep is called.
type Clock struct {
	now    time.Time
	Sleeps int
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	return c.now
}

func (c *Clock) Sleep(d time.Duration) {
	c.Sleeps++
	c.now = c.now.Add(d)
}

// Elapsed reports how much fake time has passed since NewClock.
func (c *Clock) Elapsed() time.Duration {
	return c.now.Sub(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}
