package session

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/swaykit/sway-session/internal/model"
	"github.com/swaykit/sway-session/internal/sway"
)

// Restorer replays a snapshot against a live compositor.
type Restorer struct {
	Client sway.Client
	Log    hclog.Logger
}

// Restore replays snap in two phases. Phase one recreates each recorded
// workspace and moves it to its recorded output, skipping workspaces
// whose output is no longer attached. Phase two revisits each window's
// workspace and launches its saved command. Records that cannot be
// replayed are skipped with a log line; a command the compositor rejects
// aborts the whole restore.
func (r *Restorer) Restore(snap *model.Snapshot) error {
	log := r.Log
	if log == nil {
		log = hclog.NewNullLogger()
	}

	available, err := availableOutputs(r.Client)
	if err != nil {
		return err
	}

	for _, ws := range snap.Workspaces {
		if ws.Name == "" {
			log.Debug("skipping workspace record without a name")
			continue
		}
		if ws.Output != nil && !available[*ws.Output] {
			log.Info("skipping workspace, output not present",
				"workspace", ws.Name, "output", *ws.Output)
			continue
		}
		if err := r.Client.Command(fmt.Sprintf("workspace \"%s\"", ws.Name)); err != nil {
			return err
		}
		if ws.Output != nil {
			if err := r.Client.Command(fmt.Sprintf("move workspace to output \"%s\"", *ws.Output)); err != nil {
				return err
			}
		}
	}

	for _, w := range snap.Windows {
		if w.Cmd == nil || w.Workspace == nil {
			log.Debug("skipping window without command or workspace",
				"pid", w.PID, "app_id", strVal(w.AppID), "title", strVal(w.Title))
			continue
		}
		if err := r.Client.Command(fmt.Sprintf("workspace \"%s\"", *w.Workspace)); err != nil {
			return err
		}
		if err := r.Client.Command(fmt.Sprintf("exec -- %s", *w.Cmd)); err != nil {
			return err
		}
	}

	return nil
}

// availableOutputs returns the names of every output currently attached.
func availableOutputs(client sway.Client) (map[string]bool, error) {
	raw, err := client.Query(sway.TopicOutputs)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}
	var outputs []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &outputs); err != nil {
		return nil, fmt.Errorf("decode outputs: %w", err)
	}
	available := make(map[string]bool, len(outputs))
	for _, o := range outputs {
		available[o.Name] = true
	}
	return available, nil
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
