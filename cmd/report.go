package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/hourfmt"
)

var (
	reportMonth  string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show hours aggregated by place",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportMonth, "month", "", "Restrict to a month (YYYY-MM)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "md", "Output format: md, csv, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	st, _ := openStore()
	entries := st.List()

	// Aggregate by place.
	totals := map[string]float64{}
	var order []string
	for _, e := range entries {
		if reportMonth != "" && !hourfmt.InMonth(e.Date, reportMonth) {
			continue
		}
		if _, seen := totals[e.Place]; !seen {
			order = append(order, e.Place)
		}
		totals[e.Place] += e.Hours
	}
	sort.Strings(order)

	var grandTotal float64
	for _, h := range totals {
		grandTotal += h
	}

	label := "all time"
	if reportMonth != "" {
		label = reportMonth
	}

	switch reportFormat {
	case "csv":
		fmt.Println("place,hours")
		for _, p := range order {
			fmt.Printf("%s,%s\n", csvEscape(p), formatHoursNumber(totals[p]))
		}
	case "json":
		fmt.Println("{")
		fmt.Printf("  \"period\": %q,\n", label)
		fmt.Println("  \"places\": [")
		for i, p := range order {
			comma := ","
			if i == len(order)-1 {
				comma = ""
			}
			fmt.Printf("    {\"place\": %q, \"hours\": %s}%s\n",
				p, formatHoursNumber(totals[p]), comma)
		}
		fmt.Println("  ],")
		fmt.Printf("  \"total_hours\": %s\n", formatHoursNumber(grandTotal))
		fmt.Println("}")
	default: // md
		fmt.Printf("Volunteer hours (%s)\n", label)
		fmt.Println("--------------------------------")
		for _, p := range order {
			fmt.Printf("%-24s%s\n", p, hourfmt.FormatHours(totals[p]))
		}
		fmt.Println("--------------------------------")
		fmt.Printf("%-24s%s\n", "Total", hourfmt.FormatHours(grandTotal))
	}

	return nil
}

// formatHoursNumber renders an hour total without trailing zeros.
func formatHoursNumber(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
