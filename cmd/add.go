package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/hourfmt"
)

var addNotes string

var addCmd = &cobra.Command{
	Use:   "add <place> <date> <hours>",
	Short: "Add a volunteer entry",
	Long: `Add a new entry to the volunteer log.

Hours accept a decimal ("2.5") or an hours-and-minutes form ("2h30m").
The date is stored as given; YYYY-MM-DD keeps listings and reports tidy.`,
	Args: cobra.ExactArgs(3),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	place, date := args[0], args[1]
	hours, err := hourfmt.ParseHours(args[2])
	if err != nil {
		return err
	}

	st, _ := openStore()
	entries, err := st.Add(place, date, hours, addNotes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	added := entries[len(entries)-1]
	fmt.Printf("Added %s: %s on %s (%s)\n",
		added.ID, added.Place, added.Date, hourfmt.FormatHours(added.Hours))
	fmt.Printf("%d entries total.\n", len(entries))
	return nil
}
