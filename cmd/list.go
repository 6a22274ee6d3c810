package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/hourfmt"
	"github.com/taliafield/simple-volunteer-log/internal/model"
)

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all volunteer entries",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format: table, json")
}

func runList(cmd *cobra.Command, args []string) error {
	st, _ := openStore()
	entries := st.List()

	switch listFormat {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default: // table
		printEntries(entries)
	}
	return nil
}

// printEntries prints entries in insertion order, one line each.
func printEntries(entries []model.Entry) {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return
	}

	for _, e := range entries {
		notes := ""
		if e.Notes != "" {
			notes = "  " + e.Notes
		}
		fmt.Printf("%-24s  %-10s  %-24s  %6s%s\n",
			e.ID, e.Date, e.Place, hourfmt.FormatHours(e.Hours), notes)
	}
}
