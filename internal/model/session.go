package model

import (
	"math"
	"time"
)

// Window is one captured application window. Nullable fields marshal as
// explicit JSON nulls so a reader can tell "not recorded" from "empty";
// Marks is always a list, never null.
type Window struct {
	Workspace *string  `json:"workspace" yaml:"workspace"` // enclosing workspace name
	Output    *string  `json:"output" yaml:"output"`       // enclosing output name
	PID       int      `json:"pid" yaml:"pid"`
	AppID     *string  `json:"app_id" yaml:"app_id"`     // Wayland app id
	WMClass   *string  `json:"wm_class" yaml:"wm_class"` // X11 class (Xwayland only)
	Title     *string  `json:"title" yaml:"title"`
	Cmd       *string  `json:"cmd" yaml:"cmd"` // launch command, null when unreadable
	Marks     []string `json:"marks" yaml:"marks"`
}

// Workspace records where a named workspace lived and whether it held
// focus at capture time.
type Workspace struct {
	Name    string  `json:"name" yaml:"name"`
	Output  *string `json:"output" yaml:"output"`
	Focused bool    `json:"focused" yaml:"focused"`
}

// Snapshot is the on-disk session format. SavedAt is seconds since the
// Unix epoch with a fractional part, matching what time.Time's Unix
// fields produce on capture.
type Snapshot struct {
	SavedAt    float64     `json:"saved_at" yaml:"saved_at"`
	Workspaces []Workspace `json:"workspaces" yaml:"workspaces"`
	Windows    []Window    `json:"windows" yaml:"windows"`
}

// SavedTime converts SavedAt back to a time.Time, preserving the
// sub-second part.
func (s Snapshot) SavedTime() time.Time {
	sec, frac := math.Modf(s.SavedAt)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// EpochSeconds renders t the way SavedAt stores it.
func EpochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
