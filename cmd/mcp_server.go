package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/swaykit/sway-session/internal/model"
	"github.com/swaykit/sway-session/internal/session"
	"github.com/swaykit/sway-session/internal/version"
	"gopkg.in/yaml.v3"
)

// mcpServer exposes session operations as MCP tools. Compositor access
// is serialized through swayMu so concurrent tool calls cannot
// interleave restore commands.
type mcpServer struct {
	swayMu sync.Mutex
	mcp    *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all session tools.
func newMCPServer() *mcpServer {
	s := &mcpServer{}
	s.mcp = mcpserver.NewMCPServer(
		"sway-session",
		version.Version,
	)
	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// session_save
	s.mcp.AddTool(
		mcp.NewTool("session_save",
			mcp.WithDescription("Capture the current compositor session (workspaces, windows, launch commands) and write it to the state file"),
			mcp.WithString("file", mcp.Description("State file path (default: the configured location)")),
			mcp.WithBoolean("history", mcp.Description("Also archive a timestamped copy")),
		),
		s.handleSave,
	)

	// session_restore
	s.mcp.AddTool(
		mcp.NewTool("session_restore",
			mcp.WithDescription("Replay a saved session: recreate workspaces on their outputs and launch every window with a known command"),
			mcp.WithString("file", mcp.Description("State file path (default: the configured location)")),
		),
		s.handleRestore,
	)

	// session_show
	s.mcp.AddTool(
		mcp.NewTool("session_show",
			mcp.WithDescription("Return the contents of a saved session state file without touching the compositor"),
			mcp.WithString("file", mcp.Description("State file path (default: the configured location)")),
		),
		s.handleShow,
	)

	// session_list
	s.mcp.AddTool(
		mcp.NewTool("session_list",
			mcp.WithDescription("Capture and return the live session (workspaces and windows) without writing anything to disk"),
			mcp.WithString("workspace", mcp.Description("Filter windows by workspace name")),
		),
		s.handleList,
	)

	// session_diff
	s.mcp.AddTool(
		mcp.NewTool("session_diff",
			mcp.WithDescription("Compare a saved session against the live one: launched, missing, and moved windows plus workspace changes"),
			mcp.WithString("file", mcp.Description("State file path (default: the configured location)")),
		),
		s.handleDiff,
	)
}

func (s *mcpServer) handleSave(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	fileParam := stringParam(params, "file", "")
	withHistory := boolParam(params, "history", false)

	s.swayMu.Lock()
	defer s.swayMu.Unlock()

	path, err := statePath(fileParam)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	snap, err := session.Capture(client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := session.Write(path, snap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if withHistory || cfg.History.Enabled {
		dir, err := historyDir()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if _, err := session.WriteHistory(dir, snap); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		session.CleanHistory(dir, cfg.History.Keep)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Saved session to %s (%d workspaces, %d windows)",
		path, len(snap.Workspaces), len(snap.Windows))), nil
}

func (s *mcpServer) handleRestore(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	fileParam := stringParam(params, "file", "")

	s.swayMu.Lock()
	defer s.swayMu.Unlock()

	path, err := statePath(fileParam)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := session.Read(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	r := &session.Restorer{Client: client, Log: logger}
	if err := r.Restore(snap); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Restored session from %s (%d workspaces, %d windows)",
		path, len(snap.Workspaces), len(snap.Windows))), nil
}

func (s *mcpServer) handleShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	fileParam := stringParam(params, "file", "")

	path, err := statePath(fileParam)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	snap, err := session.Read(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(snap)
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	workspace := stringParam(params, "workspace", "")

	s.swayMu.Lock()
	defer s.swayMu.Unlock()

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	snap, err := session.Capture(client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	windows := snap.Windows
	if workspace != "" {
		filtered := []model.Window{}
		for _, w := range windows {
			if w.Workspace != nil && *w.Workspace == workspace {
				filtered = append(filtered, w)
			}
		}
		windows = filtered
	}

	b, _ := yaml.Marshal(ListResult{Workspaces: snap.Workspaces, Windows: windows})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleDiff(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	fileParam := stringParam(params, "file", "")

	s.swayMu.Lock()
	defer s.swayMu.Unlock()

	path, err := statePath(fileParam)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	saved, err := session.Read(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := dialCompositor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	defer client.Close()

	live, err := session.Capture(client)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	b, _ := yaml.Marshal(model.DiffSessions(*saved, *live))
	return mcp.NewToolResultText(string(b)), nil
}

// stringParam extracts a string parameter with a default value.
func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that clients may send for string params
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

// boolParam extracts a bool parameter with a default value.
func boolParam(params map[string]interface{}, key string, defaultVal bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return defaultVal
}
