// Package output - CLI rendering
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"motor-premium/core/quote"
	"motor-premium/core/types"
)

var vnd = message.NewPrinter(language.Vietnamese)

// Money renders a VND amount with Vietnamese digit grouping
func Money(amount int64) string {
	return vnd.Sprintf("%d ₫", amount)
}

// CLIFormatter writes human-readable tables
type CLIFormatter struct {
	NoColor bool
}

// Format implements Formatter
func (CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderQuote implements Formatter
func (f CLIFormatter) RenderQuote(w io.Writer, rec *quote.Record) error {
	p := painter(f.NoColor)
	q := rec.Quote

	fmt.Fprintln(w, p.paint(bold, "Motor premium quote "+rec.ID.String()))
	fmt.Fprintf(w, "%s, %d years (%s), liability %s", q.Usage, q.Classification.AgeYears, q.Classification.Age, q.Classification.Liability)
	if q.Classification.Value != nil {
		fmt.Fprintf(w, ", value band %s", q.Classification.Value)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	TierRatesTable(q.TierRates, q.SurchargedTierRates, q.Tier).Render(w, f.NoColor)
	fmt.Fprintln(w)

	source := "tariff"
	if q.Rate.IsCustom {
		source = p.paint(yellow, "custom")
	}
	hull := "Hull damage"
	if q.FloorApplied {
		hull += " " + p.paint(dim, "(minimum fee)")
	}

	items := NewTable("Item", "Basis", "Amount").AlignRight(2)
	items.AddRow(hull, fmt.Sprintf("%s%% (%s) of %s", q.HullRate, source, Money(q.InsurableValue)), Money(q.HullFee))
	if q.LiabilityCovered {
		items.AddRow("Third-party liability", q.Classification.Liability.String(), Money(q.LiabilityFee))
	}
	if q.AccidentPackage != "" {
		items.AddRow("Passenger accident", q.AccidentPackage, Money(q.AccidentFee))
	}
	if q.RenewalAdjustment != 0 {
		items.AddRow("Renewal adjustment", q.RenewalPercent.String()+"%", Money(q.RenewalAdjustment))
	}
	items.AddRow("GRAND TOTAL", "", Money(q.GrandTotal))
	items.Render(w, f.NoColor)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Deductible per claim: %s\n", Money(q.Deductible))
	fmt.Fprintln(w, p.paint(dim, "Tariff snapshot: "+rec.SnapshotID))
	return nil
}

// RenderBatch implements Formatter
func (f CLIFormatter) RenderBatch(w io.Writer, results []quote.Result) error {
	p := painter(f.NoColor)
	report := Summarize(results)

	table := NewTable("#", "Usage", "Tier", "Status", "Grand total").AlignRight(0, 4)
	for _, item := range report.Items {
		if item.Record == nil {
			table.AddRow(strconv.Itoa(item.Index), "", "", p.paint(red, "rejected"), "")
			continue
		}
		q := item.Record.Quote
		table.AddRow(strconv.Itoa(item.Index), q.Usage.String(), q.Tier.String(), p.paint(green, "quoted"), Money(q.GrandTotal))
	}
	table.Render(w, f.NoColor)

	for _, item := range report.Items {
		if item.Error != "" {
			fmt.Fprintf(w, "#%d: %s\n", item.Index, item.Error)
		}
	}
	fmt.Fprintf(w, "\n%d quoted, %d rejected, total %s\n", report.Quoted, report.Rejected, Money(report.Total))
	return nil
}

// TierRatesTable lists the five tier rates; selected is marked with "*".
// Pass the same rates twice when no battery surcharge applies.
func TierRatesTable(rates, surcharged types.TierRates, selected types.PackageTier) *Table {
	withBattery := false
	for i := range rates {
		if !rates[i].Equal(surcharged[i]) {
			withBattery = true
		}
	}
	headers := []string{"", "Tier", "Rate"}
	if withBattery {
		headers = append(headers, "With battery")
	}
	headers = append(headers, "Riders")

	table := NewTable(headers...).AlignRight(2)
	for i := range rates {
		tier := types.PackageTier(i)
		mark := ""
		if tier == selected {
			mark = "*"
		}
		row := []string{mark, fmt.Sprintf("%d %s", i, tier), rates[i].String()}
		if withBattery {
			row = append(row, surcharged[i].String())
		}
		codes := make([]string, 0, len(tier.Riders()))
		for _, r := range tier.Riders() {
			codes = append(codes, strings.Fields(r)[0])
		}
		row = append(row, strings.Join(codes, ", "))
		table.AddRow(row...)
	}
	return table
}
