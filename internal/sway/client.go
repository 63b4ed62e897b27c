// Package sway talks to a running sway or i3 compositor, either natively
// over the IPC socket or through the swaymsg binary.
package sway

import (
	"encoding/json"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Topic is a read-only compositor query. The values are swaymsg's own
// -t names so the subprocess transport passes them through verbatim.
type Topic string

const (
	TopicTree       Topic = "get_tree"
	TopicWorkspaces Topic = "get_workspaces"
	TopicOutputs    Topic = "get_outputs"
)

// Client is a connection to the compositor. Query runs a read-only
// request and returns the raw JSON reply; Command submits one command
// string and fails if the compositor rejects it. Calls are synchronous
// with a single request in flight at a time.
type Client interface {
	Query(topic Topic) (json.RawMessage, error)
	Command(cmd string) error
	Close() error
}

// SocketPath returns the IPC socket advertised in the environment. sway
// sets SWAYSOCK; i3 sets I3SOCK.
func SocketPath() (string, bool) {
	for _, key := range []string{"SWAYSOCK", "I3SOCK"} {
		if path := os.Getenv(key); path != "" {
			return path, true
		}
	}
	return "", false
}

// Dial connects to the compositor. The advertised IPC socket is
// preferred; when no socket is advertised, or the advertised one is
// stale, the swaymsg binary takes over as a subprocess transport.
// swaymsg names the binary and may be empty for the PATH default.
func Dial(swaymsg string, log hclog.Logger) (Client, error) {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	if path, ok := SocketPath(); ok {
		c, err := dialSocket(path, log)
		if err == nil {
			return c, nil
		}
		log.Debug("ipc socket unreachable, falling back to swaymsg", "path", path, "error", err)
	}
	return newMsgClient(swaymsg, log)
}
