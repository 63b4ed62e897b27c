package cmd

import (
	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/model"
	"github.com/swaykit/sway-session/internal/output"
	"github.com/swaykit/sway-session/internal/session"
)

var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Compare a saved session with the live one",
	Long: `Capture the running session and compare it against a saved state file.
Reports launched and missing windows, windows that moved between
workspaces, and workspaces that appeared, vanished, or changed output.

Windows are matched by app id, window class, and command. PIDs and
titles change across relaunches and are ignored.

Examples:
  sway-session diff
  sway-session diff --file ~/backups/work.json`,
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
	diffCmd.Flags().String("file", "", "State file path (default per-user cache)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	fileFlag, _ := cmd.Flags().GetString("file")

	path, err := statePath(fileFlag)
	if err != nil {
		return err
	}
	saved, err := session.Read(path)
	if err != nil {
		return err
	}

	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	live, err := session.Capture(client)
	if err != nil {
		return err
	}

	return output.Print(model.DiffSessions(*saved, *live))
}
