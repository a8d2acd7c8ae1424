package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/nomad-lab/go-archive/browse"
)

type encState struct {
	depth        int
	indent       int
	level        int
	showAll      bool
	descriptions bool

	color func(ColorAttr, string) string
}

// Encode writes a text rendition of the node behind a, expanding children
// up to the configured depth. Without options it prints the node alone,
// uncolored.
func Encode(a browse.Adaptor, w io.Writer, opts ...EncodeOption) error {
	es := &encState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if es.color == nil {
		es.color = func(_ ColorAttr, s string) string { return s }
	}
	return encode(a, w, es, es.depth)
}

func encode(a browse.Adaptor, w io.Writer, es *encState, remaining int) error {
	var ropts []browse.RenderOption
	if es.showAll {
		ropts = append(ropts, browse.WithShowAll())
	}
	r := a.Render(ropts...)
	header := es.color(KindColor, r.Kind) + " " + es.color(NameColor, r.Name)
	if r.Preview != "" && len(r.Elements) == 0 && r.Elided == nil {
		header += es.color(SepColor, " = ") + es.color(PreviewColor, r.Preview)
	}
	if err := writeLine(w, es, header); err != nil {
		return err
	}
	es.level++
	defer func() { es.level-- }()
	if es.descriptions && r.Description != "" {
		if err := writeLine(w, es, es.color(DescriptionColor, r.Description)); err != nil {
			return err
		}
	}
	if r.Value != "" && r.Value != r.Preview {
		line := es.color(ValueColor, r.Value)
		if r.Unit != "" {
			line += " " + es.color(UnitColor, r.Unit)
		}
		if err := writeLine(w, es, line); err != nil {
			return err
		}
	} else if r.Unit != "" {
		if err := writeLine(w, es, es.color(UnitColor, r.Unit)); err != nil {
			return err
		}
	}
	if len(r.SubSections) > 0 {
		if err := encodeGroup(a, w, es, "sub_sections", r.SubSections, remaining); err != nil {
			return err
		}
	}
	if len(r.Quantities) > 0 {
		if err := encodeGroup(a, w, es, "quantities", r.Quantities, remaining); err != nil {
			return err
		}
	}
	return encodeElements(a, w, es, r, remaining)
}

func encodeGroup(a browse.Adaptor, w io.Writer, es *encState, name string, items []browse.Item, remaining int) error {
	if err := writeLine(w, es, es.color(SepColor, name+":")); err != nil {
		return err
	}
	es.level++
	defer func() { es.level-- }()
	for _, item := range items {
		if err := encodeItem(a, w, es, item, remaining); err != nil {
			return err
		}
	}
	return nil
}

func encodeElements(a browse.Adaptor, w io.Writer, es *encState, r *browse.Render, remaining int) error {
	for _, item := range r.Elements {
		if err := encodeItem(a, w, es, item, remaining); err != nil {
			return err
		}
		if r.Elided != nil && item.Key == fmt.Sprint(r.Elided.From-1) {
			hidden := fmt.Sprintf("... %d elided ...", r.Elided.To-r.Elided.From+1)
			if err := writeLine(w, es, es.color(ElisionColor, hidden)); err != nil {
				return err
			}
		}
	}
	return nil
}

func encodeItem(a browse.Adaptor, w io.Writer, es *encState, item browse.Item, remaining int) error {
	if remaining <= 0 {
		return writeLine(w, es, itemLine(es, item))
	}
	child, err := a.GetChild(item.Key)
	if err != nil {
		return fmt.Errorf("child %q: %w", item.Key, err)
	}
	if err := writeLine(w, es, es.color(KeyColor, item.Key)+es.color(SepColor, ":")); err != nil {
		return err
	}
	es.level++
	err = encode(child, w, es, remaining-1)
	es.level--
	return err
}

func itemLine(es *encState, item browse.Item) string {
	line := es.color(KeyColor, item.Key)
	if item.Preview != "" {
		line += es.color(SepColor, ": ") + es.color(PreviewColor, item.Preview)
	}
	if item.Repeats && item.Count > 0 {
		line += es.color(ElisionColor, fmt.Sprintf(" [%d]", item.Count))
	}
	return line
}

func writeLine(w io.Writer, es *encState, s string) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), es.level)
	_, err := io.WriteString(w, pad+s+"\n")
	return err
}
