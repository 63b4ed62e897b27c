package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/session"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a previously saved session",
	Long: `Replay a saved session against the running compositor. Workspaces are
recreated on their recorded outputs first, then every window with a
known command is launched on its workspace via exec.

Workspaces whose recorded output is no longer attached are skipped;
windows without a recorded command or workspace are skipped. The first
failed compositor command aborts the restore.

Examples:
  sway-session restore
  sway-session restore --file ~/backups/work.json`,
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
	restoreCmd.Flags().String("file", "", "State file path (default per-user cache)")
}

func runRestore(cmd *cobra.Command, args []string) error {
	fileFlag, _ := cmd.Flags().GetString("file")

	path, err := statePath(fileFlag)
	if err != nil {
		return err
	}
	snap, err := session.Read(path)
	if err != nil {
		return err
	}

	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	r := &session.Restorer{Client: client, Log: logger}
	if err := r.Restore(snap); err != nil {
		return err
	}

	fmt.Printf("Restored session from %s\n", path)
	return nil
}
