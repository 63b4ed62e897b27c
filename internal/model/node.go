package model

// Node is one vertex of the compositor scene tree as returned by the
// get_tree query. Only the keys the session tool reads are modeled; sway
// emits many more and they are ignored. Every field except Type is
// optional: absent keys decode to nil so partial payloads never fail.
type Node struct {
	Type  string       `json:"type"`              // "root", "output", "workspace", "con", "floating_con"
	Name  *string      `json:"name"`              // output/workspace name, or window title on leaves
	PID   *int         `json:"pid"`               // process id, present on window leaves only
	AppID *string      `json:"app_id"`            // Wayland application id
	Props *WindowProps `json:"window_properties"` // X11 properties (Xwayland clients only)
	Marks []string     `json:"marks"`             // user-assigned labels
	Nodes []Node       `json:"nodes"`             // tiling children; floating_nodes are not captured
}

// WindowProps carries the X11 window properties sway attaches to Xwayland
// clients. Wayland-native clients use app_id instead and omit this block.
type WindowProps struct {
	Class    *string `json:"class"`
	Instance *string `json:"instance"`
	Title    *string `json:"title"`
}

// Node kinds that matter to traversal. Any other kind is descended through
// without touching context.
const (
	KindOutput    = "output"
	KindWorkspace = "workspace"
	KindCon       = "con"
)
