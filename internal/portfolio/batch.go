package portfolio

import (
	"fmt"

	"TrendBench/internal/model"
)

// SimulateBatch is an array-batched variant of Simulate. Balances only move
// on trade days, so it resolves the trades first and then fills the constant
// spans between them in bulk. It must produce a ledger numerically identical
// to Simulate's; the equivalence is covered by tests, never assumed.
func SimulateBatch(rows []model.SignalRow, initialCash float64) (model.Ledger, error) {
	if initialCash < 0 {
		return nil, fmt.Errorf("%w: initial cash must be non-negative, got %g", model.ErrInvalidParameter, initialCash)
	}

	n := len(rows)
	cashCol := make([]float64, n)
	holdCol := make([]float64, n)
	actions := make([]model.Action, n)

	cash, holdings := initialCash, 0.0
	spanStart := 0
	fill := func(from, to int) {
		for i := from; i < to; i++ {
			cashCol[i] = cash
			holdCol[i] = holdings
		}
	}

	for _, day := range tradeDays(rows) {
		row := rows[day]
		if row.PositionChange == sellTrigger && holdings == 0 {
			// no-op sell, the span continues unchanged
			continue
		}
		fill(spanStart, day)
		if row.PositionChange == buyTrigger {
			if err := checkBuyPrice(row); err != nil {
				return nil, err
			}
			holdings += cash / row.Price
			cash = 0
			actions[day] = model.ActionBuy
		} else {
			cash += holdings * row.Price
			holdings = 0
			actions[day] = model.ActionSell
		}
		spanStart = day
	}
	fill(spanStart, n)

	ledger := make(model.Ledger, n)
	for i, row := range rows {
		ledger[i] = model.LedgerEntry{
			Day:        row.Day,
			Price:      row.Price,
			Action:     actions[i],
			Cash:       cashCol[i],
			Holdings:   holdCol[i],
			TotalValue: cashCol[i] + holdCol[i]*row.Price,
		}
	}
	return ledger, nil
}

// tradeDays returns the indices whose position change hits a trade trigger
// exactly. A pure function of the rows, independent of portfolio state.
func tradeDays(rows []model.SignalRow) []int {
	var days []int
	for i, row := range rows {
		if row.PositionChange == buyTrigger || row.PositionChange == sellTrigger {
			days = append(days, i)
		}
	}
	return days
}
