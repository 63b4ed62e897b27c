// Package session captures, persists, and replays compositor sessions.
package session

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/swaykit/sway-session/internal/model"
	"github.com/swaykit/sway-session/internal/proc"
	"github.com/swaykit/sway-session/internal/sway"
)

// Capture queries the compositor and assembles a snapshot: every named
// workspace with its output, and every tiled window with the command
// line needed to launch its process again.
func Capture(client sway.Client) (*model.Snapshot, error) {
	return capture(client, proc.Cmdline)
}

func capture(client sway.Client, cmdline model.CmdlineFunc) (*model.Snapshot, error) {
	rawTree, err := client.Query(sway.TopicTree)
	if err != nil {
		return nil, fmt.Errorf("query tree: %w", err)
	}
	var root model.Node
	if err := json.Unmarshal(rawTree, &root); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}

	rawWorkspaces, err := client.Query(sway.TopicWorkspaces)
	if err != nil {
		return nil, fmt.Errorf("query workspaces: %w", err)
	}
	workspaces, err := decodeWorkspaces(rawWorkspaces)
	if err != nil {
		return nil, err
	}

	return &model.Snapshot{
		SavedAt:    model.EpochSeconds(time.Now()),
		Workspaces: workspaces,
		Windows:    model.CollectWindows(root, cmdline),
	}, nil
}

// decodeWorkspaces projects the get_workspaces reply onto workspace
// records. Entries without a name are dropped: they cannot be addressed
// by a workspace command on restore.
func decodeWorkspaces(raw json.RawMessage) ([]model.Workspace, error) {
	var entries []struct {
		Name    *string `json:"name"`
		Output  *string `json:"output"`
		Focused bool    `json:"focused"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode workspaces: %w", err)
	}
	workspaces := make([]model.Workspace, 0, len(entries))
	for _, e := range entries {
		if e.Name == nil || *e.Name == "" {
			continue
		}
		workspaces = append(workspaces, model.Workspace{
			Name:    *e.Name,
			Output:  e.Output,
			Focused: e.Focused,
		})
	}
	return workspaces, nil
}
