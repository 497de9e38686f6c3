package model

// Signal values produced by comparing the short and long moving averages.
const (
	SignalLong    = 1.0
	SignalShort   = -1.0
	SignalNeutral = 0.0
)

// SignalRow is the per-day output of the signal deriver. PositionChange is
// the day-over-day signal delta executed one day late: the value at day i is
// signal[i-1] - signal[i-2], so the action taken on day i reflects the
// crossing that completed on day i-1. Days 0 and 1 have no prior delta and
// carry a PositionChange of 0.
type SignalRow struct {
	Day            int
	Price          float64
	ShortMavg      float64
	LongMavg       float64
	Signal         float64
	PositionChange float64
}
