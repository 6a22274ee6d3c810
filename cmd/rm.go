package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a volunteer entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	id := args[0]

	st, _ := openStore()
	before := len(st.List())

	entries, err := st.Delete(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if len(entries) == before {
		fmt.Printf("No entry with ID %s.\n", id)
		return nil
	}
	fmt.Printf("Deleted %s. %d entries remain.\n", id, len(entries))
	return nil
}
