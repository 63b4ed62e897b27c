package model

// CmdlineFunc resolves a process id to the command line that launched it.
// Implementations report ok=false when the record cannot be read; the
// walker stores a null cmd and keeps going.
type CmdlineFunc func(pid int) (cmd string, ok bool)

// CollectWindows flattens a scene tree into one Window per tiling leaf
// that carries a process id, in depth-first pre-order. Output and
// workspace context is inherited from the nearest enclosing node of each
// kind: context travels down the recursion as arguments, so sibling
// subtrees under different outputs never see each other's names.
//
// The tree is never mutated. The only side effect is the cmdline call; a
// nil cmdline leaves every record's Cmd null.
func CollectWindows(root Node, cmdline CmdlineFunc) []Window {
	// Initialized non-nil so an empty tree still persists as [].
	windows := []Window{}
	collectWindows(root, nil, nil, cmdline, &windows)
	return windows
}

func collectWindows(n Node, output, workspace *string, cmdline CmdlineFunc, result *[]Window) {
	switch n.Type {
	case KindOutput:
		// An unnamed output still overwrites context: descendants see nil.
		output = n.Name
	case KindWorkspace:
		workspace = n.Name
	case KindCon:
		if n.PID != nil && *n.PID != 0 {
			*result = append(*result, windowFromNode(n, output, workspace, cmdline))
		}
	}

	for _, child := range n.Nodes {
		collectWindows(child, output, workspace, cmdline, result)
	}
}

func windowFromNode(n Node, output, workspace *string, cmdline CmdlineFunc) Window {
	w := Window{
		Workspace: workspace,
		Output:    output,
		PID:       *n.PID,
		AppID:     n.AppID,
		Title:     n.Name,
		Marks:     []string{},
	}
	if n.Props != nil {
		w.WMClass = n.Props.Class
	}
	if len(n.Marks) > 0 {
		w.Marks = append(w.Marks, n.Marks...)
	}
	if cmdline != nil {
		if cmd, ok := cmdline(*n.PID); ok {
			w.Cmd = &cmd
		}
	}
	return w
}
