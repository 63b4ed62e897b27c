package cmd

import (
	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/output"
	"github.com/swaykit/sway-session/internal/session"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a saved session",
	Long: `Print the contents of a saved session state file without touching the
compositor.

Examples:
  sway-session show
  sway-session show --file ~/backups/work.json --format json --pretty`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("file", "", "State file path (default per-user cache)")
}

func runShow(cmd *cobra.Command, args []string) error {
	fileFlag, _ := cmd.Flags().GetString("file")

	path, err := statePath(fileFlag)
	if err != nil {
		return err
	}
	snap, err := session.Read(path)
	if err != nil {
		return err
	}
	return output.Print(snap)
}
