// froggit is a lane-crossing arcade game for the terminal.
//
// Usage:
//
//	froggit play [level]      - Play a level (picker when omitted)
//	froggit levels            - List available levels
//	froggit check <file>      - Validate a level file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
	flagLevels   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "froggit",
	Short: "Froggit - get the frogs home across road and river",
	Long: `Froggit is a lane-crossing arcade game played in the terminal.
Hop across traffic, ride the logs over the river and fill every
home in the hedge before you run out of lives.

Available commands:
  play     - Play a level
  levels   - Show all available levels
  check    - Validate a level file

Examples:
  froggit play
  froggit play level2 --difficulty hard
  froggit levels --levels ./my-levels
  froggit check ./my-levels/bridge.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (default: bundled levels)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
}
