package cmd

import (
	"github.com/spf13/cobra"
	"github.com/swaykit/sway-session/internal/model"
	"github.com/swaykit/sway-session/internal/output"
	"github.com/swaykit/sway-session/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List live workspaces and windows",
	Long:  "Capture the running session and print it without writing anything to disk.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("workspaces", false, "List workspaces only")
	listCmd.Flags().Bool("windows", false, "List windows only")
	listCmd.Flags().String("workspace", "", "Filter windows by workspace name")
}

// ListResult is the combined output when neither --workspaces nor
// --windows narrows the listing.
type ListResult struct {
	Workspaces []model.Workspace `yaml:"workspaces" json:"workspaces"`
	Windows    []model.Window    `yaml:"windows"    json:"windows"`
}

func runList(cmd *cobra.Command, args []string) error {
	workspacesOnly, _ := cmd.Flags().GetBool("workspaces")
	windowsOnly, _ := cmd.Flags().GetBool("windows")
	workspace, _ := cmd.Flags().GetString("workspace")

	client, err := dialCompositor()
	if err != nil {
		return err
	}
	defer client.Close()

	snap, err := session.Capture(client)
	if err != nil {
		return err
	}

	windows := snap.Windows
	if workspace != "" {
		filtered := []model.Window{}
		for _, w := range windows {
			if w.Workspace != nil && *w.Workspace == workspace {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}

	switch {
	case workspacesOnly && !windowsOnly:
		return output.Print(snap.Workspaces)
	case windowsOnly && !workspacesOnly:
		return output.Print(windows)
	}
	return output.Print(ListResult{Workspaces: snap.Workspaces, Windows: windows})
}
