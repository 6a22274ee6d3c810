package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all volunteer entries to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Output format: csv, json, md (default from config)")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, cfg := openStore()
	entries := st.List()

	format := exportFormat
	if format == "" {
		format = cfg.ExportFormat
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	case "md":
		printEntries(entries)
	default: // csv
		printCSV(entries)
	}

	return nil
}

func printCSV(entries []model.Entry) {
	fmt.Println("id,place,date,hours,notes")
	for _, e := range entries {
		fmt.Printf("%s,%s,%s,%s,%s\n",
			csvEscape(e.ID),
			csvEscape(e.Place),
			csvEscape(e.Date),
			formatHoursNumber(e.Hours),
			csvEscape(e.Notes),
		)
	}
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	needsQuote := false
	for _, c := range s {
		if c == ',' || c == '"' || c == '\n' || c == '\r' {
			needsQuote = true
			break
		}
	}
	if !needsQuote {
		return s
	}
	// Escape internal double quotes by doubling them.
	escaped := ""
	for _, c := range s {
		if c == '"' {
			escaped += "\""
		}
		escaped += string(c)
	}
	return `"` + escaped + `"`
}
