package browse

import (
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// Context is the immutable bag shared by reference across one adaptor
// tree: the root document (for resolving document-relative references),
// the metainfo registry, and the visibility predicate. It is created once
// at the root and never mutated; replacing the document means building a
// new context and a new root adaptor.
type Context struct {
	root     *ir.Node
	registry *metainfo.Registry
	visible  Filter
}

type ContextOption func(*Context)

// WithFilter sets the visibility predicate applied to section property
// names during enumeration and rendering.
func WithFilter(f Filter) ContextOption {
	return func(c *Context) {
		if f != nil {
			c.visible = f
		}
	}
}

// NewContext creates the shared context for an adaptor tree over root.
func NewContext(root *ir.Node, registry *metainfo.Registry, opts ...ContextOption) *Context {
	ctx := &Context{
		root:     root,
		registry: registry,
		visible:  ShowAll,
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// Root returns the root document.
func (c *Context) Root() *ir.Node {
	return c.root
}

// Registry returns the metainfo registry.
func (c *Context) Registry() *metainfo.Registry {
	return c.registry
}
