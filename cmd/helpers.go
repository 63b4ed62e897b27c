package cmd

import (
	"github.com/swaykit/sway-session/internal/session"
	"github.com/swaykit/sway-session/internal/sway"
)

// dialCompositor connects to the running compositor using the
// configured swaymsg binary as fallback transport.
func dialCompositor() (sway.Client, error) {
	bin := ""
	if cfg != nil {
		bin = cfg.Swaymsg
	}
	return sway.Dial(bin, logger)
}

// statePath resolves the session state file: flag first, then the
// config file, then the per-user cache default.
func statePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if cfg != nil && cfg.File != "" {
		return cfg.File, nil
	}
	return session.DefaultPath()
}

// historyDir resolves the session archive directory from config or the
// per-user cache default.
func historyDir() (string, error) {
	if cfg != nil && cfg.History.Dir != "" {
		return cfg.History.Dir, nil
	}
	return session.DefaultHistoryDir()
}
