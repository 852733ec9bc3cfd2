package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/froggit/internal/games/froggit/levels"
)

var flagHitboxes string

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level file",
	Long: `Parse and validate a level file without playing it.

The hitbox file defaults to hitboxes.yaml next to the level, then to the
bundled hitboxes.

Examples:
  froggit check ./my-levels/bridge.yaml
  froggit check bridge.json --hitboxes ./sprites/hitboxes.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagHitboxes, "hitboxes", "", "Path to the hitbox file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	lvl, err := levels.LoadPath(args[0], flagHitboxes)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%q, %dx%d, %d homes)\n",
		args[0], lvl.Name, lvl.Layout.Cols, len(lvl.Layout.Lanes), lvl.Goals())
	return nil
}
