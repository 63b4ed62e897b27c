package cmd

import (
	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/output"
	"github.com/swaykit/sway-session/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived session snapshots",
	Long: `List the timestamped session archive written by save --history, newest
first. With --clean, entries older than the configured retention window
are pruned before listing.

Examples:
  sway-session history
  sway-session history --clean`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("clean", false, "Prune entries older than the retention window")
}

// HistoryResult is the output of the history command.
type HistoryResult struct {
	Dir     string                 `yaml:"dir"               json:"dir"`
	Removed int                    `yaml:"removed,omitempty" json:"removed,omitempty"`
	Entries []session.HistoryEntry `yaml:"entries"           json:"entries"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	clean, _ := cmd.Flags().GetBool("clean")

	dir, err := historyDir()
	if err != nil {
		return err
	}

	removed := 0
	if clean {
		removed = session.CleanHistory(dir, cfg.History.Keep)
		logger.Debug("pruned session archive", "removed", removed)
	}

	entries, err := session.ListHistory(dir)
	if err != nil {
		return err
	}
	return output.Print(HistoryResult{Dir: dir, Removed: removed, Entries: entries})
}
