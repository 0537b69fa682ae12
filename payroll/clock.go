package payroll

import "time"

// =============================================================================
// CLOCK - Injectable time source for processed timestamps
// =============================================================================

// Clock supplies the wall-clock time stamped onto records. The processor
// takes a Clock so tests can pin ProcessedAt to a known instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant. For tests.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
