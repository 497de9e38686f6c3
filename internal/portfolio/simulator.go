package portfolio

import (
	"fmt"
	"math"

	"TrendBench/internal/model"
)

// Trade triggers use exact floating-point equality on purpose: only a full
// trend reversal (-1 to +1 or +1 to -1, a delta of exactly ±2) trades.
// Deltas of ±1, which pass through the neutral zone, never do. Relaxing the
// comparison to a threshold would change which days trade.
const (
	buyTrigger  = 2.0
	sellTrigger = -2.0
)

// Simulate executes the signal rows against an initial cash balance and
// returns the day-by-day ledger. One transition per day, strictly
// sequential: each day carries the previous day's cash and holdings forward,
// then applies at most one trade.
//
// A buy converts all cash into holdings at the day's price (full
// reinvestment, no partial sizing). A sell converts all holdings back into
// cash; selling with zero holdings is a silent no-op. Any position change
// other than exactly ±2 is a hold.
func Simulate(rows []model.SignalRow, initialCash float64) (model.Ledger, error) {
	if initialCash < 0 {
		return nil, fmt.Errorf("%w: initial cash must be non-negative, got %g", model.ErrInvalidParameter, initialCash)
	}

	ledger := make(model.Ledger, 0, len(rows))
	cash, holdings := initialCash, 0.0
	for _, row := range rows {
		action := model.ActionNone
		switch {
		case row.PositionChange == buyTrigger:
			if err := checkBuyPrice(row); err != nil {
				return nil, err
			}
			holdings += cash / row.Price
			cash = 0
			action = model.ActionBuy
		case row.PositionChange == sellTrigger && holdings > 0:
			cash += holdings * row.Price
			holdings = 0
			action = model.ActionSell
		}
		ledger = append(ledger, model.LedgerEntry{
			Day:        row.Day,
			Price:      row.Price,
			Action:     action,
			Cash:       cash,
			Holdings:   holdings,
			TotalValue: cash + holdings*row.Price,
		})
	}
	return ledger, nil
}

func checkBuyPrice(row model.SignalRow) error {
	if row.Price == 0 || math.IsNaN(row.Price) || math.IsInf(row.Price, 0) {
		return fmt.Errorf("%w: cannot buy at price %g on day %d", model.ErrInvalidPrice, row.Price, row.Day)
	}
	return nil
}

// Summarize computes the final performance figures for a completed ledger,
// including the buy-and-hold comparison: what the initial cash would be
// worth had it all been converted at the day-0 price and held to the end.
func Summarize(ledger model.Ledger, initialCash float64) model.Summary {
	sum := model.Summary{InitialCash: initialCash}
	if len(ledger) == 0 {
		return sum
	}
	first, last := ledger[0], ledger[len(ledger)-1]
	sum.FinalValue = last.TotalValue
	sum.Profit = sum.FinalValue - initialCash
	sum.BuyAndHoldValue = initialCash / first.Price * last.Price
	sum.Trades = ledger.Trades()
	return sum
}
