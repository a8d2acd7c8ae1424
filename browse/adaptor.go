package browse

import (
	"fmt"

	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// MetainfoKey is the reserved child key that switches any adaptor from
// data navigation to definition navigation. It reuses NOMAD's
// self-definition key; declared properties can never collide with it
// because the "m_" prefix is reserved.
const MetainfoKey = "m_def"

// Adaptor is a uniform navigation wrapper over one data node plus its
// definition: child enumeration, on-demand child construction, and a pure
// render description.
type Adaptor interface {
	ListChildKeys() []string
	GetChild(key string) (Adaptor, error)
	Render(opts ...RenderOption) *Render
}

// NewAdaptor constructs the adaptor variant for a value and its
// definition. Dispatch is strictly on the definition's kind, never on the
// value's runtime shape. Construction is pure: no side effects, no I/O.
func NewAdaptor(value *ir.Node, def metainfo.Definition, ctx *Context) (Adaptor, error) {
	switch d := def.(type) {
	case *metainfo.Section:
		return &sectionAdaptor{value: value, def: d, ctx: ctx}, nil
	case *metainfo.SubSection:
		target, err := ctx.registry.ResolveSection(d.SectionDef)
		if err != nil {
			return nil, err
		}
		return &subSectionAdaptor{seq: value, def: d, target: target, ctx: ctx}, nil
	case *metainfo.Quantity:
		return &quantityAdaptor{value: value, def: d, ctx: ctx}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownDefinitionKind, def)
	}
}

// NewRoot builds the root adaptor for a browsing session, looking up the
// root section definition by name. This is the one fatal failure point: a
// document with no resolvable root definition cannot be browsed at all.
func NewRoot(ctx *Context, sectionName string) (Adaptor, error) {
	def, err := ctx.registry.ResolveSection(sectionName)
	if err != nil {
		return nil, fmt.Errorf("no root definition: %w", err)
	}
	return NewAdaptor(ctx.root, def, ctx)
}

// Navigate walks a key path from an adaptor, constructing children on
// demand.
func Navigate(a Adaptor, path []string) (Adaptor, error) {
	for _, key := range path {
		child, err := a.GetChild(key)
		if err != nil {
			return nil, err
		}
		a = child
	}
	return a, nil
}
