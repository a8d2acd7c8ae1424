package browse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// referencePreview is the fixed compact-view text for reference-typed
// quantities. References are never dereferenced eagerly; navigation into
// the quantity (at the section level) does the resolution.
const referencePreview = "<reference>"

// quantityAdaptor wraps a leaf value and its quantity definition. It has
// no data children; only meta-inspection is reachable below it.
type quantityAdaptor struct {
	value *ir.Node
	def   *metainfo.Quantity
	ctx   *Context
}

func (a *quantityAdaptor) ListChildKeys() []string {
	return nil
}

func (a *quantityAdaptor) GetChild(key string) (Adaptor, error) {
	if key == MetainfoKey {
		return newMetaAdaptor(a.def, a.ctx.registry)
	}
	return nil, fmt.Errorf("%w: %q on quantity %q", ErrUnknownChildKey, key, a.def.Name)
}

// Render is the detail view: descriptive metadata plus the value's full
// string form, untruncated.
func (a *quantityAdaptor) Render(opts ...RenderOption) *Render {
	return &Render{
		Kind:        metainfo.QuantityKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
		Unit:        a.def.Unit,
		Preview:     quantityPreview(a.value, a.def),
		Value:       fullText(a.value),
	}
}

// quantityPreview produces the one-line type-aware compact form:
//
//   - reference type: a fixed placeholder
//   - array type: "[d1, d2, ...] <label>" where label follows the rank,
//     vector / matrix / tensor, or "list" for untyped elements
//   - scalar: the value's plain string form
func quantityPreview(value *ir.Node, def *metainfo.Quantity) string {
	if def.Type.Kind == metainfo.ReferenceData {
		return referencePreview
	}
	if len(def.Shape) > 0 {
		return dimsText(value, len(def.Shape)) + " " + rankLabel(def)
	}
	if value == nil {
		return ""
	}
	return value.Text()
}

// dimsText descends nested sequence levels exactly rank times, reading
// the length at each level. Levels the data does not reach read as 0.
func dimsText(value *ir.Node, rank int) string {
	dims := make([]string, rank)
	cur := value
	for i := range rank {
		if cur == nil || cur.Type != ir.ArrayType {
			dims[i] = "0"
			cur = nil
			continue
		}
		dims[i] = strconv.Itoa(len(cur.Values))
		if len(cur.Values) > 0 {
			cur = cur.Values[0]
		} else {
			cur = nil
		}
	}
	return "[" + strings.Join(dims, ", ") + "]"
}

func rankLabel(def *metainfo.Quantity) string {
	if def.Type.Kind == metainfo.AnyData {
		return "list"
	}
	switch len(def.Shape) {
	case 1:
		return "vector"
	case 2:
		return "matrix"
	default:
		return "tensor"
	}
}

// fullText is the untruncated string form used by detail views: scalars
// render plainly, composites as their JSON text.
func fullText(value *ir.Node) string {
	if value == nil {
		return ""
	}
	if value.Type.IsLeaf() {
		return value.Text()
	}
	d, err := ir.MarshalJSON(value)
	if err != nil {
		return value.Text()
	}
	return string(d)
}
