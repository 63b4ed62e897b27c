package sway

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// DefaultBinary is the swaymsg executable used when no other path is
// configured.
const DefaultBinary = "swaymsg"

// msgClient shells out to swaymsg for every request. Slower than the
// socket but works anywhere the binary does, including over SSH with the
// socket path unset.
type msgClient struct {
	bin string
	log hclog.Logger
}

func newMsgClient(bin string, log hclog.Logger) (*msgClient, error) {
	if bin == "" {
		bin = DefaultBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", bin, err)
	}
	log.Debug("using swaymsg transport", "bin", path)
	return &msgClient{bin: path, log: log}, nil
}

func (c *msgClient) Query(topic Topic) (json.RawMessage, error) {
	c.log.Debug("swaymsg query", "topic", string(topic))
	return c.run("-t", string(topic))
}

func (c *msgClient) Command(cmd string) error {
	c.log.Debug("swaymsg command", "cmd", cmd)
	// The whole command travels as one argument; swaymsg forwards it to
	// the compositor as-is and exits non-zero if it is rejected.
	_, err := c.run(cmd)
	return err
}

func (c *msgClient) Close() error {
	return nil
}

func (c *msgClient) run(args ...string) ([]byte, error) {
	out, err := exec.Command(c.bin, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("swaymsg failed: %s (%w)", strings.TrimSpace(string(exitErr.Stderr)), err)
		}
		return nil, fmt.Errorf("swaymsg failed: %w", err)
	}
	return out, nil
}
