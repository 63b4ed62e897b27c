package model

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"
)

func TestSnapshotMarshal_ExplicitNulls(t *testing.T) {
	snap := Snapshot{
		SavedAt: 1712345678.25,
		Workspaces: []Workspace{
			{Name: "1", Output: strp("eDP-1"), Focused: true},
			{Name: "scratch", Output: nil},
		},
		Windows: []Window{
			{
				Workspace: strp("1"),
				Output:    strp("eDP-1"),
				PID:       100,
				AppID:     strp("foot"),
				Title:     strp("~"),
				Cmd:       strp("foot"),
				Marks:     []string{},
			},
		},
	}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	out := string(data)

	// Unset optional fields must appear as explicit nulls, not vanish.
	for _, want := range []string{
		`"wm_class":null`,
		`"output":null`,
		`"marks":[]`,
		`"saved_at":1712345678.25`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got %s", want, out)
		}
	}
}

func TestSnapshotMarshal_MarksNeverNull(t *testing.T) {
	w := windowFromNode(Node{Type: KindCon, PID: intp(5)}, nil, nil, nil)
	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"marks":null`) {
		t.Errorf("marks marshalled as null: %s", data)
	}
	if !strings.Contains(string(data), `"marks":[]`) {
		t.Errorf("expected empty marks list, got %s", data)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	orig := Snapshot{
		SavedAt: 1700000000.5,
		Workspaces: []Workspace{
			{Name: "web", Output: strp("HDMI-A-1"), Focused: false},
		},
		Windows: []Window{
			{
				Workspace: strp("web"),
				Output:    strp("HDMI-A-1"),
				PID:       4242,
				WMClass:   strp("firefox"),
				Title:     strp("Mozilla Firefox"),
				Cmd:       strp("firefox --new-window"),
				Marks:     []string{"browser"},
			},
		},
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got Snapshot
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if got.SavedAt != orig.SavedAt {
		t.Errorf("expected saved_at %f, got %f", orig.SavedAt, got.SavedAt)
	}
	if len(got.Windows) != 1 || len(got.Workspaces) != 1 {
		t.Fatalf("expected 1 window and 1 workspace, got %d/%d", len(got.Windows), len(got.Workspaces))
	}
	w := got.Windows[0]
	if w.AppID != nil {
		t.Errorf("expected nil app_id after round trip, got %q", *w.AppID)
	}
	if w.Cmd == nil || *w.Cmd != "firefox --new-window" {
		t.Errorf("expected cmd to survive round trip, got %v", w.Cmd)
	}
	if got.Workspaces[0].Output == nil || *got.Workspaces[0].Output != "HDMI-A-1" {
		t.Errorf("expected workspace output to survive round trip, got %v", got.Workspaces[0].Output)
	}
}

func TestSavedTime(t *testing.T) {
	snap := Snapshot{SavedAt: 1712345678.5}
	got := snap.SavedTime()
	if got.Unix() != 1712345678 {
		t.Errorf("expected seconds 1712345678, got %d", got.Unix())
	}
	ms := got.Nanosecond() / int(time.Millisecond)
	if ms != 500 {
		t.Errorf("expected 500ms fractional part, got %dms", ms)
	}
}

func TestEpochSeconds_RoundTrip(t *testing.T) {
	now := time.Date(2024, 4, 5, 18, 14, 38, 250_000_000, time.UTC)
	secs := EpochSeconds(now)
	back := Snapshot{SavedAt: secs}.SavedTime()
	if diff := back.Sub(now); math.Abs(float64(diff)) > float64(time.Millisecond) {
		t.Errorf("round trip drifted by %v", diff)
	}
}
