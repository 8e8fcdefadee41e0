package bench

import "time"

//go:generate mockgen -source=clock.go -destination=mock_clock_test.go -package=bench

// Clock is the time source for measurements.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
