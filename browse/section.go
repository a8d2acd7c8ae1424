package browse

import (
	"fmt"

	"github.com/nomad-lab/go-archive/archive"
	"github.com/nomad-lab/go-archive/debug"
	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// sectionAdaptor wraps a section instance plus its section definition.
type sectionAdaptor struct {
	value *ir.Node
	def   *metainfo.Section
	ctx   *Context
}

// ListChildKeys returns, in declaration order, the declared property names
// whose value is present and non-empty in the instance, filtered by the
// context's visibility predicate.
func (a *sectionAdaptor) ListChildKeys() []string {
	var res []string
	for _, name := range a.def.Properties() {
		if !a.ctx.visible(name) {
			continue
		}
		if ir.Get(a.value, name).IsEmpty() {
			continue
		}
		res = append(res, name)
	}
	return res
}

func (a *sectionAdaptor) GetChild(key string) (Adaptor, error) {
	if key == MetainfoKey {
		return newMetaAdaptor(a.def, a.ctx.registry)
	}
	def, ok := a.def.Property(key)
	if !ok {
		if debug.Browse() {
			debug.Logf("section %s: no property %q\n", a.def.Name, key)
		}
		return nil, fmt.Errorf("%w: %q on section %q", ErrUnknownChildKey, key, a.def.Name)
	}
	value := ir.Get(a.value, key)

	switch d := def.(type) {
	case *metainfo.SubSection:
		return a.subSectionChild(d, value)
	case *metainfo.Quantity:
		return a.quantityChild(d, value)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownDefinitionKind, def)
	}
}

func (a *sectionAdaptor) subSectionChild(d *metainfo.SubSection, value *ir.Node) (Adaptor, error) {
	target, err := a.ctx.registry.ResolveSection(d.SectionDef)
	if err != nil {
		return nil, err
	}
	if d.Repeats && value != nil && value.Type == ir.ArrayType {
		// a single-element repeating slot collapses to direct section
		// navigation; the intermediate index level only appears for
		// 0 or >=2 elements
		if len(value.Values) == 1 {
			return &sectionAdaptor{value: value.Values[0], def: target, ctx: a.ctx}, nil
		}
		return &subSectionAdaptor{seq: value, def: d, target: target, ctx: a.ctx}, nil
	}
	return &sectionAdaptor{value: value, def: target, ctx: a.ctx}, nil
}

func (a *sectionAdaptor) quantityChild(d *metainfo.Quantity, value *ir.Node) (Adaptor, error) {
	if d.IsScalarReference() && value != nil && value.Type == ir.StringType {
		target, err := archive.ResolveRef(value.String, a.ctx.root)
		if err == nil {
			targetDef, defErr := a.ctx.registry.ResolveSection(d.Type.Ref)
			if defErr == nil {
				return &sectionAdaptor{value: target, def: targetDef, ctx: a.ctx}, nil
			}
			err = defErr
		}
		// degrade to the raw token: partial archives make dangling
		// references an expected condition
		if debug.Resolve() {
			debug.Logf("quantity %s: %v\n", d.Name, err)
		}
	}
	return &quantityAdaptor{value: value, def: d, ctx: a.ctx}, nil
}

func (a *sectionAdaptor) Render(opts ...RenderOption) *Render {
	r := &Render{
		Kind:        metainfo.SectionKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
	}
	for _, ss := range a.def.SubSections {
		if !a.ctx.visible(ss.Name) {
			continue
		}
		value := ir.Get(a.value, ss.Name)
		if value.IsEmpty() {
			continue
		}
		item := Item{Key: ss.Name, Preview: ss.SectionDef, Repeats: ss.Repeats}
		if ss.Repeats && value.Type == ir.ArrayType {
			item.Count = len(value.Values)
		}
		r.SubSections = append(r.SubSections, item)
	}
	for _, q := range a.def.Quantities {
		if !a.ctx.visible(q.Name) {
			continue
		}
		value := ir.Get(a.value, q.Name)
		if value.IsEmpty() {
			continue
		}
		r.Quantities = append(r.Quantities, Item{Key: q.Name, Preview: quantityPreview(value, q)})
	}
	return r
}
