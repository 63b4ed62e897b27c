package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/swaykit/sway-session/internal/model"
)

func strp(s string) *string { return &s }

func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe failed: %v", err)
	}
	os.Stdout = w

	callErr := fn()
	w.Close()
	os.Stdout = old

	if callErr != nil {
		t.Fatalf("print failed: %v", callErr)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func sampleSnapshot() model.Snapshot {
	return model.Snapshot{
		SavedAt: 1700000000.5,
		Workspaces: []model.Workspace{
			{Name: "1", Output: strp("eDP-1"), Focused: true},
		},
		Windows: []model.Window{
			{Workspace: strp("1"), Output: strp("eDP-1"), PID: 100, AppID: strp("foot"), Cmd: strp("foot"), Marks: []string{}},
		},
	}
}

func TestPrintYAML(t *testing.T) {
	out := capture(t, func() error { return PrintYAML(sampleSnapshot()) })

	if bytes.Count([]byte(out), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", out)
	}
	var decoded model.Snapshot
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.SavedAt != 1700000000.5 {
		t.Errorf("saved_at: got %f, want 1700000000.5", decoded.SavedAt)
	}
	if len(decoded.Windows) != 1 {
		t.Errorf("windows: got %d, want 1", len(decoded.Windows))
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := capture(t, func() error { return PrintJSON(sampleSnapshot()) })

	if strings.Count(out, "\n") != 1 {
		t.Errorf("compact JSON should be a single line, got:\n%s", out)
	}
	var decoded model.Snapshot
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Windows[0].PID != 100 {
		t.Errorf("pid: got %d, want 100", decoded.Windows[0].PID)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	out := capture(t, func() error { return PrintPrettyJSON(sampleSnapshot()) })

	if !strings.HasPrefix(out, "{\n  \"saved_at\"") {
		t.Errorf("expected indented JSON, got prefix %q", out[:20])
	}
}

func TestPrint_FollowsFormat(t *testing.T) {
	origFormat, origPretty := OutputFormat, PrettyOutput
	defer func() {
		OutputFormat, PrettyOutput = origFormat, origPretty
	}()

	OutputFormat = FormatJSON
	PrettyOutput = false
	out := capture(t, func() error { return Print(sampleSnapshot()) })
	if !strings.HasPrefix(out, `{"saved_at"`) {
		t.Errorf("expected compact JSON, got %q", out[:20])
	}

	OutputFormat = FormatYAML
	out = capture(t, func() error { return Print(sampleSnapshot()) })
	if !strings.HasPrefix(out, "saved_at:") {
		t.Errorf("expected YAML, got %q", out[:20])
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	origFormat := OutputFormat
	defer func() { OutputFormat = origFormat }()

	OutputFormat = Format("toml")
	if err := Print(sampleSnapshot()); err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := ParseFormat("yaml"); err != nil {
		t.Errorf("yaml should parse, got %v", err)
	}
	if _, err := ParseFormat("json"); err != nil {
		t.Errorf("json should parse, got %v", err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected an error for xml")
	}
}
