package timer

import "time"

// BlockTimer times a region of code the caller delimits: construction marks
// the start, End marks the end.
type BlockTimer struct {
	_ noCopy

	emitter
	clock Clock
	start time.Time
	end   time.Time
	ended bool
}

// StartBlock marks the start of a timed region.
func StartBlock(settings Settings) (*BlockTimer, error) {
	s, err := settings.normalize(2)
	if err != nil {
		return nil, err
	}

	b := &BlockTimer{
		emitter: newEmitter(s, "timer.block"),
		clock:   s.Clock,
	}
	b.start = s.Clock.Now()

	b.log.Debug("block timing started")

	return b, nil
}

// End marks the end of the region. Calling End again moves the end to the
// latest call.
func (b *BlockTimer) End() {
	b.end = b.clock.Now()
	b.ended = true

	b.log.WithField("elapsed", b.Elapsed()).Debug("block timing ended")
}

// Show writes the output line unless the timer is quiet. Only the first call
// writes. Show before End returns ErrNotEnded.
func (b *BlockTimer) Show() error {
	if !b.ended {
		return ErrNotEnded
	}

	if !b.emitted && b.settings.Observer != nil {
		b.settings.Observer.ObserveMeasurement(b.settings.Label, b.Measurement())
	}

	return b.emit(b.Elapsed())
}

// EndAndShow ends the region and writes the output line.
func (b *BlockTimer) EndAndShow() error {
	b.End()
	return b.Show()
}

// Ended reports whether End has been called.
func (b *BlockTimer) Ended() bool {
	return b.ended
}

// Elapsed is the length of the region. While the region is still open it is
// the time since the start.
func (b *BlockTimer) Elapsed() time.Duration {
	if !b.ended {
		return elapsedBetween(b.start, b.clock.Now())
	}

	return elapsedBetween(b.start, b.end)
}

// Nanoseconds is Elapsed as an integer nanosecond count.
func (b *BlockTimer) Nanoseconds() int64 {
	return b.Elapsed().Nanoseconds()
}

// Measurement returns the timing of the region. Block timings carry no result.
func (b *BlockTimer) Measurement() Measurement {
	return Measurement{Elapsed: b.Elapsed()}
}
