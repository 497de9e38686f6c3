package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"TrendBench/internal/model"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto" // color only when writing to a TTY
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ANSI escape codes.
const (
	ansiGreen = "\033[92m"
	ansiRed   = "\033[91m"
	ansiCyan  = "\033[96m"
	ansiReset = "\033[0m"
)

// Options configures a Reporter. The zero value writes to stdout with
// auto-detected color and no interval rows.
type Options struct {
	Writer io.Writer
	Color  ColorMode
	// EveryN additionally prints every Nth ledger row. Trade days and the
	// first and last day always print regardless. 0 disables interval rows.
	EveryN int
}

// Reporter prints the ledger and summary to a console. It holds no global
// state; color and throttling behavior are fixed at construction so the
// simulator output stays independent of presentation.
type Reporter struct {
	w      io.Writer
	everyN int
	color  bool
}

// NewReporter builds a Reporter from options.
func NewReporter(opts Options) *Reporter {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		w:      w,
		everyN: opts.EveryN,
		color:  colorEnabled(opts.Color, w),
	}
}

func colorEnabled(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
	}
}

func (r *Reporter) paint(code, s string) string {
	if !r.color || s == "" {
		return s
	}
	return code + s + ansiReset
}

// PrintLedger writes the day-by-day ledger. Output is throttled to trade
// days, the first and last day, and every Nth day; throttling is purely a
// display policy and never alters the ledger itself.
func (r *Reporter) PrintLedger(ledger model.Ledger) {
	header := fmt.Sprintf("%-4s | %-8s | %-12s | %-10s | %-12s | %-15s",
		"Day", "Action", "Price", "Held", "Cash", "Portfolio Value")
	fmt.Fprintf(r.w, "\n%s\n", r.paint(ansiCyan, header))
	fmt.Fprintln(r.w, strings.Repeat("-", 75))

	for i, e := range ledger {
		if !r.shouldPrint(ledger, i) {
			continue
		}
		action := string(e.Action)
		switch e.Action {
		case model.ActionBuy:
			action = r.paint(ansiGreen, action)
		case model.ActionSell:
			action = r.paint(ansiRed, action)
		}
		// pad manually: ANSI codes would skew %-8s on colored actions
		pad := 8 - len(e.Action)
		if pad < 0 {
			pad = 0
		}
		fmt.Fprintf(r.w, "%-4d | %s%s | $%-11.2f | %-10.4f | $%-11.2f | $%-14.2f\n",
			e.Day, action, strings.Repeat(" ", pad), e.Price, e.Holdings, e.Cash, e.TotalValue)
	}
}

func (r *Reporter) shouldPrint(ledger model.Ledger, i int) bool {
	if ledger[i].Action != model.ActionNone {
		return true
	}
	if i == 0 || i == len(ledger)-1 {
		return true
	}
	return r.everyN > 0 && i%r.everyN == 0
}

// PrintSummary writes the final performance table and the buy-and-hold
// comparison.
func (r *Reporter) PrintSummary(sum model.Summary) {
	fmt.Fprintf(r.w, "\n------ Final Portfolio Performance ------\n")

	table := tablewriter.NewWriter(r.w)
	table.Header("Metric", "Value")
	table.Append("Initial Cash", dollars(sum.InitialCash))
	table.Append("Final Portfolio Value", dollars(sum.FinalValue))
	table.Append("Profit/Loss", dollars(sum.Profit))
	table.Append("Buy and Hold Value", dollars(sum.BuyAndHoldValue))
	table.Append("Trades Executed", fmt.Sprintf("%d", sum.Trades))
	table.Render()

	verdict := fmt.Sprintf("Strategy P/L: %s", dollars(sum.Profit))
	if sum.Profit >= 0 {
		verdict = r.paint(ansiGreen, verdict)
	} else {
		verdict = r.paint(ansiRed, verdict)
	}
	fmt.Fprintln(r.w, verdict)
}

func dollars(v float64) string {
	if v < 0 {
		return "-$" + humanize.CommafWithDigits(-v, 2)
	}
	return "$" + humanize.CommafWithDigits(v, 2)
}
