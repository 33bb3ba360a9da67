package engine

import "github.com/cbegin/lofisynth/internal/hal"

// Scheduler paces frames off the compare-match timer.
//
// There is no missed-tick detection. If a frame overruns its period the
// match flag is already set when WaitForTick is called and it returns at
// once, shortening the next frame.
type Scheduler struct {
	timer  hal.Timer
	period uint16
}

func NewScheduler(timer hal.Timer) *Scheduler {
	return &Scheduler{timer: timer}
}

// WaitForTick spins until the next compare match and clears it.
func (s *Scheduler) WaitForTick() {
	s.timer.WaitForTickAndClear()
}

// SetNextPeriod programs the length of the following countdown. The one
// already running keeps its length, so a pitch change lags by up to one
// frame.
func (s *Scheduler) SetNextPeriod(ticks uint16) {
	if ticks == 0 {
		ticks = 1
	}
	s.period = ticks
	s.timer.SetPeriod(ticks)
}

// Period returns the last programmed period.
func (s *Scheduler) Period() uint16 { return s.period }
