package browse

import (
	"fmt"
	"strings"

	"github.com/nomad-lab/go-archive/metainfo"
)

// MetainfoAdaptor returns an adaptor over a definition object itself, so
// the same tree browser can recurse into "what does this field mean"
// without special-casing. It is what GetChild(MetainfoKey) delegates to on
// every data adaptor.
func MetainfoAdaptor(def metainfo.Definition) (Adaptor, error) {
	return newMetaAdaptor(def, nil)
}

// newMetaAdaptor is the bridge factory. The registry, when available,
// lets a sub-section definition navigate to its target section
// definition.
func newMetaAdaptor(def metainfo.Definition, reg *metainfo.Registry) (Adaptor, error) {
	switch d := def.(type) {
	case *metainfo.Section:
		return &sectionDefAdaptor{def: d, reg: reg}, nil
	case *metainfo.SubSection:
		return &subSectionDefAdaptor{def: d, reg: reg}, nil
	case *metainfo.Quantity:
		return &quantityDefAdaptor{def: d}, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownDefinitionKind, def)
	}
}

// sectionDefAdaptor navigates a section definition: its children are the
// declared properties, regardless of any instance data.
type sectionDefAdaptor struct {
	def *metainfo.Section
	reg *metainfo.Registry
}

func (a *sectionDefAdaptor) ListChildKeys() []string {
	return a.def.Properties()
}

func (a *sectionDefAdaptor) GetChild(key string) (Adaptor, error) {
	def, ok := a.def.Property(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q on section %q", ErrUnknownChildKey, key, a.def.Name)
	}
	return newMetaAdaptor(def, a.reg)
}

func (a *sectionDefAdaptor) Render(opts ...RenderOption) *Render {
	r := &Render{
		Kind:        metainfo.SectionKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
	}
	for _, ss := range a.def.SubSections {
		r.SubSections = append(r.SubSections, Item{
			Key:     ss.Name,
			Preview: ss.SectionDef,
			Repeats: ss.Repeats,
		})
	}
	for _, q := range a.def.Quantities {
		r.Quantities = append(r.Quantities, Item{Key: q.Name, Preview: typeText(q)})
	}
	return r
}

// subSectionDefAdaptor navigates a sub-section definition; its single
// child is the target section definition.
type subSectionDefAdaptor struct {
	def *metainfo.SubSection
	reg *metainfo.Registry
}

func (a *subSectionDefAdaptor) ListChildKeys() []string {
	return []string{"section_def"}
}

func (a *subSectionDefAdaptor) GetChild(key string) (Adaptor, error) {
	if key != "section_def" {
		return nil, fmt.Errorf("%w: %q on sub-section %q", ErrUnknownChildKey, key, a.def.Name)
	}
	if a.reg == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedReference, a.def.SectionDef)
	}
	target, err := a.reg.ResolveSection(a.def.SectionDef)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedReference, a.def.SectionDef)
	}
	return newMetaAdaptor(target, a.reg)
}

func (a *subSectionDefAdaptor) Render(opts ...RenderOption) *Render {
	preview := a.def.SectionDef
	if a.def.Repeats {
		preview = "repeats " + preview
	}
	return &Render{
		Kind:        metainfo.SubSectionKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
		Preview:     preview,
	}
}

// quantityDefAdaptor is a terminal view of a quantity definition: its
// declared type, shape, and unit.
type quantityDefAdaptor struct {
	def *metainfo.Quantity
}

func (a *quantityDefAdaptor) ListChildKeys() []string {
	return nil
}

func (a *quantityDefAdaptor) GetChild(key string) (Adaptor, error) {
	return nil, fmt.Errorf("%w: %q on quantity %q", ErrUnknownChildKey, key, a.def.Name)
}

func (a *quantityDefAdaptor) Render(opts ...RenderOption) *Render {
	return &Render{
		Kind:        metainfo.QuantityKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
		Unit:        a.def.Unit,
		Preview:     typeText(a.def),
		Value:       typeText(a.def),
	}
}

// typeText renders a quantity definition's declared type, like
// "float[n_atoms, 3]" or "reference(System)".
func typeText(q *metainfo.Quantity) string {
	res := q.Type.Kind.String()
	if q.Type.Ref != "" {
		res += "(" + q.Type.Ref + ")"
	}
	if len(q.Shape) > 0 {
		res += "[" + strings.Join(q.Shape, ", ") + "]"
	}
	return res
}
