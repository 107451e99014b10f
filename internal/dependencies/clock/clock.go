package clock

import "time"

// Clock stamps game creation and moves. Mocked in tests.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// New creates a System clock
func New() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}
