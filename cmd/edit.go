package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/hourfmt"
)

var (
	editPlace string
	editDate  string
	editHours string
	editNotes string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a volunteer entry",
	Long: `Edit an existing entry. Only the given flags change; everything
else keeps its current value. The ID itself is immutable.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editPlace, "place", "", "New place")
	editCmd.Flags().StringVar(&editDate, "date", "", "New date")
	editCmd.Flags().StringVar(&editHours, "hours", "", "New hours (decimal or 2h30m form)")
	editCmd.Flags().StringVar(&editNotes, "notes", "", "New notes")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := args[0]

	st, _ := openStore()

	// The store replaces all four mutable fields at once, so prefill the
	// ones the user did not pass from the current entry.
	var found bool
	place, date, notes := editPlace, editDate, editNotes
	var hours float64
	for _, e := range st.List() {
		if e.ID == id {
			found = true
			if !cmd.Flags().Changed("place") {
				place = e.Place
			}
			if !cmd.Flags().Changed("date") {
				date = e.Date
			}
			if !cmd.Flags().Changed("notes") {
				notes = e.Notes
			}
			hours = e.Hours
			break
		}
	}
	if !found {
		fmt.Printf("No entry with ID %s.\n", id)
		return nil
	}
	if cmd.Flags().Changed("hours") {
		v, err := hourfmt.ParseHours(editHours)
		if err != nil {
			return err
		}
		hours = v
	}

	if _, err := st.Update(id, place, date, hours, notes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Updated %s: %s on %s (%s)\n", id, place, date, hourfmt.FormatHours(hours))
	return nil
}
