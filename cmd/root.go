package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/taliafield/simple-volunteer-log/internal/config"
	"github.com/taliafield/simple-volunteer-log/internal/storage"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "svl",
	Short: "Simple Volunteer Log – a minimal CLI volunteer-hours log",
	Long: `svl is a single-binary, file-based command-line volunteer log.
All data is stored as a human-readable JSON file in ~/.svl/.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}

// initLogger routes slog diagnostics to stderr; command output stays on
// stdout via fmt.
func initLogger() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

// openStore resolves the data directory (config override, else ~/.svl) and
// opens the store there. Fatal on any failure: without a writable data
// directory no command can do anything useful.
func openStore() (*storage.Store, config.Config) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("using default configuration", "err", err)
	}

	dir := cfg.DataDir
	if dir == "" {
		dir, err = storage.DefaultDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	st, err := storage.New(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return st, cfg
}
