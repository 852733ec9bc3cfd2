package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the levels found in --levels, or the bundled levels.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

// openLoader returns a loader over --levels or the bundled levels.
func openLoader() *levels.Loader {
	if flagLevels == "" {
		return levels.Bundled()
	}
	return levels.NewLoader(flagLevels)
}

func runLevels(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	loader := openLoader()
	loader.Logger = logger
	all, err := loader.LoadAll()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return nil
	}

	fmt.Fprintln(out, "Available levels:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Fprintf(out, "  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Homes", "Name")
	fmt.Fprintf(out, "  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")
	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Layout.Cols, len(l.Layout.Lanes))
		fmt.Fprintf(out, "  %-*s  %-7s  %-5d  %s\n", maxIDLen, l.ID, size, l.Goals(), l.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'froggit play <id>' to play a level.")
	return nil
}
