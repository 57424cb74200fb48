package core

import "time"

// FixedStep converts wall-clock time into a whole number of fixed-duration
// simulation ticks, carrying the remainder between frames.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxTicks    int
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// maxTicks caps the ticks returned by a single Advance; 0 disables the cap.
func NewFixedStep(tps, maxTicks int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	if maxTicks > 0 {
		fs.maxTicks = maxTicks
	}
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// Debt returns the time accumulated but not yet spent on ticks.
func (f *FixedStep) Debt() time.Duration { return f.accumulator }

// Advance adds the time elapsed since the previous call to the debt and
// returns how many ticks are due. The first call only primes the clock.
// When the cap is hit the surplus whole ticks are dropped and only the
// fractional remainder is carried.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	delta := now.Sub(f.last)
	f.last = now
	if delta > 0 {
		f.accumulator += delta
	}

	ticks := 0
	for f.accumulator >= f.step {
		if f.maxTicks > 0 && ticks == f.maxTicks {
			f.accumulator %= f.step
			break
		}
		f.accumulator -= f.step
		ticks++
	}
	return ticks
}
