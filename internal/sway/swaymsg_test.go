package sway

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
)

// installFakeSwaymsg puts a shell script named swaymsg at the front of
// PATH. It answers -t queries with a canned workspace list, rejects any
// command starting with "fail", and accepts everything else.
func installFakeSwaymsg(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake swaymsg needs a POSIX shell")
	}
	dir := t.TempDir()
	script := `#!/bin/sh
if [ "$1" = "-t" ]; then
	echo '[{"name":"1","output":"eDP-1","focused":true}]'
	exit 0
fi
case "$1" in
fail*)
	echo "Unknown/invalid command" >&2
	exit 1
	;;
esac
echo '[{"success": true}]'
`
	path := filepath.Join(dir, "swaymsg")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("install fake swaymsg: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestNewMsgClient_BinaryMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if _, err := newMsgClient("", hclog.NewNullLogger()); err == nil {
		t.Fatal("expected an error when swaymsg is not on PATH")
	}
}

func TestMsgClient_Query(t *testing.T) {
	installFakeSwaymsg(t)
	c, err := newMsgClient("", hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("client setup failed: %v", err)
	}
	defer c.Close()

	raw, err := c.Query(TopicWorkspaces)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	var workspaces []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &workspaces); err != nil {
		t.Fatalf("query output did not parse: %v", err)
	}
	if len(workspaces) != 1 || workspaces[0].Name != "1" {
		t.Errorf("unexpected workspaces: %+v", workspaces)
	}
}

func TestMsgClient_CommandAccepted(t *testing.T) {
	installFakeSwaymsg(t)
	c, err := newMsgClient("", hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("client setup failed: %v", err)
	}
	if err := c.Command(`workspace "1"`); err != nil {
		t.Errorf("expected command to succeed, got %v", err)
	}
}

func TestMsgClient_CommandRejected(t *testing.T) {
	installFakeSwaymsg(t)
	c, err := newMsgClient("", hclog.NewNullLogger())
	if err != nil {
		t.Fatalf("client setup failed: %v", err)
	}
	err = c.Command("fail on purpose")
	if err == nil {
		t.Fatal("expected an error for a rejected command")
	}
	if !strings.Contains(err.Error(), "Unknown/invalid command") {
		t.Errorf("expected stderr in the error, got %v", err)
	}
}
