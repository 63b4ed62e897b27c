package model

import (
	"crypto/sha256"
	"fmt"
)

// WindowMove records a matched window found on a different workspace than
// the earlier snapshot recorded.
type WindowMove struct {
	Window Window  `yaml:"window"          json:"window"`
	From   *string `yaml:"from_workspace"  json:"from_workspace"`
	To     *string `yaml:"to_workspace"    json:"to_workspace"`
}

// OutputChange records a workspace present in both snapshots but assigned
// to a different output.
type OutputChange struct {
	Workspace string  `yaml:"workspace"    json:"workspace"`
	From      *string `yaml:"from_output"  json:"from_output"`
	To        *string `yaml:"to_output"    json:"to_output"`
}

// SessionDiff is the result of comparing two snapshots, usually a saved
// session against a live capture.
type SessionDiff struct {
	Launched       []Window       `yaml:"launched,omitempty"        json:"launched,omitempty"`
	Missing        []Window       `yaml:"missing,omitempty"         json:"missing,omitempty"`
	Moved          []WindowMove   `yaml:"moved,omitempty"           json:"moved,omitempty"`
	OutputChanges  []OutputChange `yaml:"output_changes,omitempty"  json:"output_changes,omitempty"`
	WorkspacesGone []string       `yaml:"workspaces_gone,omitempty" json:"workspaces_gone,omitempty"`
	WorkspacesNew  []string       `yaml:"workspaces_new,omitempty"  json:"workspaces_new,omitempty"`
	UnchangedCount int            `yaml:"unchanged_count"           json:"unchanged_count"`
}

// WindowHash computes a stable identity hash for a window from the fields
// that survive a relaunch. PID and title are excluded: both change every
// time the same application starts again.
func WindowHash(w Window) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s", strVal(w.AppID), strVal(w.WMClass), strVal(w.Cmd))
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// DiffSessions compares two snapshots. Windows are matched by identity
// hash; duplicate identities (two terminals running the same command)
// pair off in slice order. Workspaces are matched by name.
func DiffSessions(prev, curr Snapshot) SessionDiff {
	var diff SessionDiff

	// Workspace presence and placement by name
	prevWS := make(map[string]Workspace, len(prev.Workspaces))
	for _, ws := range prev.Workspaces {
		prevWS[ws.Name] = ws
	}
	currWS := make(map[string]Workspace, len(curr.Workspaces))
	for _, ws := range curr.Workspaces {
		currWS[ws.Name] = ws
	}
	for _, ws := range prev.Workspaces {
		got, exists := currWS[ws.Name]
		if !exists {
			diff.WorkspacesGone = append(diff.WorkspacesGone, ws.Name)
			continue
		}
		if !sameStr(ws.Output, got.Output) {
			diff.OutputChanges = append(diff.OutputChanges, OutputChange{
				Workspace: ws.Name,
				From:      ws.Output,
				To:        got.Output,
			})
		}
	}
	for _, ws := range curr.Workspaces {
		if _, exists := prevWS[ws.Name]; !exists {
			diff.WorkspacesNew = append(diff.WorkspacesNew, ws.Name)
		}
	}

	// Build an index of earlier windows keyed by identity hash. Each entry
	// is a queue so duplicates are consumed one match at a time.
	prevByHash := make(map[string][]int)
	for i, w := range prev.Windows {
		h := WindowHash(w)
		prevByHash[h] = append(prevByHash[h], i)
	}
	matched := make([]bool, len(prev.Windows))

	// Check for launched and moved windows
	for _, w := range curr.Windows {
		h := WindowHash(w)
		queue := prevByHash[h]
		if len(queue) == 0 {
			diff.Launched = append(diff.Launched, w)
			continue
		}
		i := queue[0]
		prevByHash[h] = queue[1:]
		matched[i] = true
		if !sameStr(prev.Windows[i].Workspace, w.Workspace) {
			diff.Moved = append(diff.Moved, WindowMove{
				Window: w,
				From:   prev.Windows[i].Workspace,
				To:     w.Workspace,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	// Check for missing windows
	for i, w := range prev.Windows {
		if !matched[i] {
			diff.Missing = append(diff.Missing, w)
		}
	}

	return diff
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func sameStr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
