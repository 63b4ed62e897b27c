package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/session"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current session to disk",
	Long: `Capture every workspace and window of the running compositor and write
them to a JSON state file. Each window records the command line of its
owning process so a later restore can launch it again.

Examples:
  sway-session save
  sway-session save --file ~/backups/work.json
  sway-session save --history`,
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
	saveCmd.Flags().String("file", "", "State file path (default per-user cache)")
	saveCmd.Flags().Bool("history", false, "Also archive a timestamped copy")
}

func runSave(cmd *cobra.Command, args []string) error {
	fileFlag, _ := cmd.Flags().GetString("file")
	withHistory, _ := cmd.Flags().GetBool("history")

	path, err := statePath(fileFlag)
	if err != nil {
		return err
	}

	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	snap, err := session.Capture(client)
	if err != nil {
		return err
	}
	logger.Debug("captured session", "workspaces", len(snap.Workspaces), "windows", len(snap.Windows))

	if err := session.Write(path, snap); err != nil {
		return err
	}

	if withHistory || cfg.History.Enabled {
		dir, err := historyDir()
		if err != nil {
			return err
		}
		archived, err := session.WriteHistory(dir, snap)
		if err != nil {
			return err
		}
		logger.Debug("archived session", "path", archived)
		if removed := session.CleanHistory(dir, cfg.History.Keep); removed > 0 {
			logger.Debug("pruned session archive", "removed", removed)
		}
	}

	fmt.Printf("Saved session to %s\n", path)
	return nil
}
