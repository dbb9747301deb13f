package shipment

import (
	"shippix/internal/pkg/errs"
)

const (
	MinProgressLevel = 1
	MaxProgressLevel = 3
)

// ProgressLevel is the filled fraction of a shipment's progress bar, from 1
// (just left) to 3 (almost there).
type ProgressLevel int

// NewProgressLevel rejects levels outside [MinProgressLevel, MaxProgressLevel].
func NewProgressLevel(level int) (ProgressLevel, error) {
	if level < MinProgressLevel || level > MaxProgressLevel {
		return 0, errs.NewValueIsOutOfRangeError("progress level", level, MinProgressLevel, MaxProgressLevel)
	}
	return ProgressLevel(level), nil
}

// Percent returns the bar width for the level.
func (l ProgressLevel) Percent() int {
	return int(l) * 100 / MaxProgressLevel
}
