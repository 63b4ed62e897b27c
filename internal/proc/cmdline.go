// Package proc reads process metadata from the /proc filesystem.
package proc

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Cmdline returns the command line that launched pid, with the NUL
// separated argv joined by single spaces. ok is false when the record
// cannot be read or is empty: the process exited, belongs to another
// user, or is a kernel thread. Lookups are best effort and never error.
func Cmdline(pid int) (string, bool) {
	raw, err := os.ReadFile(fmt.Sprintf("/proc/%d/cmdline", pid))
	if err != nil {
		return "", false
	}
	return parseCmdline(raw)
}

func parseCmdline(raw []byte) (string, bool) {
	var args []string
	for _, part := range bytes.Split(raw, []byte{0}) {
		if len(part) > 0 {
			args = append(args, string(part))
		}
	}
	if len(args) == 0 {
		return "", false
	}
	return strings.Join(args, " "), true
}
