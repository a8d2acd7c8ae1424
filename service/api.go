package service

import "encoding/json"

// JSON-RPC method names.
const (
	MethodOpen   = "archive/open"
	MethodMerge  = "archive/merge"
	MethodClose  = "archive/close"
	MethodList   = "archive/list"
	MethodRender = "archive/render"
)

// OpenParams opens a document under an alias for the rest of the
// session. Document carries the archive itself: raw JSON, or a string of
// YAML text when Format says so.
type OpenParams struct {
	Alias    string          `json:"alias"`
	Root     string          `json:"root"`
	Format   string          `json:"format,omitempty"`
	Document json.RawMessage `json:"document"`
	Filter   string          `json:"filter,omitempty"`
}

type OpenResult struct {
	Alias string   `json:"alias"`
	Keys  []string `json:"keys"`
}

// MergeParams reconciles a partial document fetch into an opened alias:
// objects merge recursively, arrays and scalars replace. The result is
// the rebuilt root, as for open.
type MergeParams struct {
	Alias    string          `json:"alias"`
	Format   string          `json:"format,omitempty"`
	Document json.RawMessage `json:"document"`
}

// ListParams enumerates child keys at a path below an opened document's
// root.
type ListParams struct {
	Alias string   `json:"alias"`
	Path  []string `json:"path,omitempty"`
}

type ListResult struct {
	Keys []string `json:"keys"`
}

// RenderParams describes the node at a path. The result is the
// browse.Render description verbatim.
type RenderParams struct {
	Alias   string   `json:"alias"`
	Path    []string `json:"path,omitempty"`
	ShowAll bool     `json:"show_all,omitempty"`
}

type CloseParams struct {
	Alias string `json:"alias"`
}
