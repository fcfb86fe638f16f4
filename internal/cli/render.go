package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/rustyeddy/folio/dashboard"
)

func fmtOptional(p *float64) string {
	if p == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *p)
}

func renderPositions(w io.Writer, rows []dashboard.PositionRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no positions yet — add the first one")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTRUMENT\tENTRY\tCURRENT\tQTY\tLEV\tCAPITAL\tPROFIT")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%.2f\t%.1fx\t%.2f\t%s\n",
			r.Instrument, r.EntryPrice, fmtOptional(r.CurrentPrice),
			r.Quantity, r.Leverage, r.OwnCapital, fmtOptional(r.Profit))
	}
	tw.Flush()
}

func renderDistribution(w io.Writer, dist map[string]float64) {
	if len(dist) == 0 {
		return
	}

	symbols := make([]string, 0, len(dist))
	for sym := range dist {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	fmt.Fprintln(w, "capital distribution:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sym := range symbols {
		fmt.Fprintf(tw, "  %s\t%.2f\n", sym, dist[sym])
	}
	tw.Flush()
}

func renderHistory(w io.Writer, v *dashboard.View) {
	if len(v.History) == 0 {
		fmt.Fprintf(w, "no balance records in the last %s\n", v.Window)
		return
	}

	fmt.Fprintf(w, "balance history (last %s):\n", v.Window)
	for _, snap := range v.History {
		fmt.Fprintf(w, "  %s  %.2f\n", snap.Time.Format(time.RFC3339), snap.Balance)
	}
	abs, pct := v.BalanceDelta()
	fmt.Fprintf(w, "  change: %+.2f (%+.2f%%)\n", abs, pct)
}

func renderView(w io.Writer, v *dashboard.View, showBalance bool) {
	balance := dashboard.MaskBalance(v.Balance)
	if showBalance {
		balance = fmt.Sprintf("%.2f", v.Balance)
	}
	fmt.Fprintf(w, "balance: %s USD  (as of %s)\n\n", balance, v.GeneratedAt.Format("15:04:05"))

	renderPositions(w, v.Positions)
	fmt.Fprintln(w)
	renderDistribution(w, v.Distribution)
	fmt.Fprintln(w)
	renderHistory(w, v)
}
