package signal

import (
	"errors"
	"testing"

	"TrendBench/internal/model"
)

func seriesFrom(prices ...float64) model.PriceSeries {
	s := make(model.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = model.PricePoint{Day: i, Price: p}
	}
	return s
}

func TestDerive_InvalidWindows(t *testing.T) {
	series := seriesFrom(100, 101, 102)
	tests := []struct {
		name        string
		short, long int
	}{
		{"zero short", 0, 30},
		{"negative short", -1, 30},
		{"zero long", 7, 0},
		{"negative long", 7, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Derive(series, tt.short, tt.long)
			if !errors.Is(err, model.ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestDerive_WindowOrderingNotEnforced(t *testing.T) {
	// short >= long is degenerate but legal; the caller owns the choice.
	if _, err := Derive(seriesFrom(100, 101, 102), 5, 2); err != nil {
		t.Fatalf("expected no error for short > long, got %v", err)
	}
}

func TestDerive_FlatSeriesIsAllNeutral(t *testing.T) {
	rows, err := Derive(seriesFrom(100, 100, 100, 100), 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range rows {
		if row.Signal != model.SignalNeutral {
			t.Errorf("day %d: expected neutral signal, got %v", row.Day, row.Signal)
		}
		if row.PositionChange != 0 {
			t.Errorf("day %d: expected zero position change, got %v", row.Day, row.PositionChange)
		}
		if row.ShortMavg != 100 || row.LongMavg != 100 {
			t.Errorf("day %d: expected both averages 100, got %v and %v", row.Day, row.ShortMavg, row.LongMavg)
		}
	}
}

func TestDerive_DeathCrossWithLag(t *testing.T) {
	// Short(2) rises above long(3) on day 3 and falls below on day 5.
	rows, err := Derive(seriesFrom(100, 100, 100, 130, 130, 70, 70), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	wantSignals := []float64{0, 0, 0, 1, 1, -1, -1}
	for i, want := range wantSignals {
		if rows[i].Signal != want {
			t.Errorf("day %d: expected signal %v, got %v", i, want, rows[i].Signal)
		}
	}

	// The 0 -> +1 move on day 3 is only a +1 delta, surfacing on day 4: no
	// trade threshold. The +1 -> -1 reversal on day 5 surfaces as -2 on day 6.
	wantChanges := []float64{0, 0, 0, 0, 1, 0, -2}
	for i, want := range wantChanges {
		if rows[i].PositionChange != want {
			t.Errorf("day %d: expected position change %v, got %v", i, want, rows[i].PositionChange)
		}
	}
}

func TestDerive_GoldenCrossWithLag(t *testing.T) {
	// Short(2) drops below long(3) on day 2, then reverses above on day 3:
	// a -1 -> +1 reversal whose +2 delta surfaces on day 4.
	rows, err := Derive(seriesFrom(100, 60, 60, 140, 140), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	wantSignals := []float64{0, 0, -1, 1, 1}
	for i, want := range wantSignals {
		if rows[i].Signal != want {
			t.Errorf("day %d: expected signal %v, got %v", i, want, rows[i].Signal)
		}
	}

	if rows[3].PositionChange != -1 {
		t.Errorf("day 3: expected position change -1, got %v", rows[3].PositionChange)
	}
	if rows[4].PositionChange != 2 {
		t.Errorf("day 4: expected buy trigger +2, got %v", rows[4].PositionChange)
	}
}

func TestDerive_FirstTwoDaysNeverTrade(t *testing.T) {
	rows, err := Derive(seriesFrom(50, 500, 5000), 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if rows[0].PositionChange != 0 || rows[1].PositionChange != 0 {
		t.Errorf("days 0 and 1 must carry zero position change, got %v and %v",
			rows[0].PositionChange, rows[1].PositionChange)
	}
}

func TestDerive_RowAlignment(t *testing.T) {
	series := seriesFrom(10, 11, 12, 13, 14, 15)
	rows, err := Derive(series, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(series) {
		t.Fatalf("expected %d rows, got %d", len(series), len(rows))
	}
	for i, row := range rows {
		if row.Day != i || row.Price != series[i].Price {
			t.Errorf("row %d misaligned: day=%d price=%v", i, row.Day, row.Price)
		}
	}
}
