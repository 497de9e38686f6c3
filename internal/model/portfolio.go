package model

// Action is the trade executed on a given day.
type Action string

const (
	ActionNone Action = ""
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// LedgerEntry records the portfolio state at the end of one day.
type LedgerEntry struct {
	Day        int
	Price      float64
	Action     Action
	Cash       float64
	Holdings   float64
	TotalValue float64
}

// Ledger is the ordered day-by-day record produced by the simulator,
// aligned 1:1 with the price series.
type Ledger []LedgerEntry

// Trades returns the number of executed buy and sell actions.
func (l Ledger) Trades() int {
	n := 0
	for _, e := range l {
		if e.Action != ActionNone {
			n++
		}
	}
	return n
}

// Summary is the final performance report for a completed run.
type Summary struct {
	InitialCash     float64
	FinalValue      float64
	Profit          float64
	BuyAndHoldValue float64
	Trades          int
}
