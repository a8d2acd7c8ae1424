package browse

import (
	"fmt"
	"strconv"

	"github.com/nomad-lab/go-archive/ir"
	"github.com/nomad-lab/go-archive/metainfo"
)

// window sizes for compact rendering of long element lists
const (
	windowMax  = 5
	windowHead = 3
	windowTail = 2
)

// subSectionAdaptor wraps a 0- or >=2-element sequence of section
// instances sharing one sub-section definition. Single-element sequences
// never reach it; they collapse at the parent section.
type subSectionAdaptor struct {
	seq    *ir.Node
	def    *metainfo.SubSection
	target *metainfo.Section
	ctx    *Context
}

func (a *subSectionAdaptor) length() int {
	if a.seq == nil || a.seq.Type != ir.ArrayType {
		return 0
	}
	return len(a.seq.Values)
}

// ListChildKeys returns the stringified valid indices, always complete:
// the compact render window is presentation only.
func (a *subSectionAdaptor) ListChildKeys() []string {
	n := a.length()
	res := make([]string, n)
	for i := range n {
		res[i] = strconv.Itoa(i)
	}
	return res
}

func (a *subSectionAdaptor) GetChild(key string) (Adaptor, error) {
	if key == MetainfoKey {
		return newMetaAdaptor(a.def, a.ctx.registry)
	}
	index, err := strconv.Atoi(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an index", ErrIndexOutOfRange, key)
	}
	if index < 0 || index >= a.length() {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, a.length())
	}
	return &sectionAdaptor{value: a.seq.Values[index], def: a.target, ctx: a.ctx}, nil
}

// Render describes the element list. Lists of more than windowMax
// elements are windowed to the first windowHead and last windowTail, with
// an Elision marking the hidden range; WithShowAll reveals everything.
// Rendering never constructs child adaptors.
func (a *subSectionAdaptor) Render(opts ...RenderOption) *Render {
	rs := &renderState{}
	for _, opt := range opts {
		opt(rs)
	}
	r := &Render{
		Kind:        metainfo.SubSectionKind.String(),
		Name:        a.def.Name,
		Description: a.def.Description,
		Preview:     fmt.Sprintf("%d %s", a.length(), a.target.Name),
	}
	n := a.length()
	if rs.showAll || n <= windowMax {
		for i := range n {
			r.Elements = append(r.Elements, a.elementItem(i))
		}
		return r
	}
	for i := range windowHead {
		r.Elements = append(r.Elements, a.elementItem(i))
	}
	r.Elided = &Elision{From: windowHead, To: n - windowTail - 1}
	for i := n - windowTail; i < n; i++ {
		r.Elements = append(r.Elements, a.elementItem(i))
	}
	return r
}

func (a *subSectionAdaptor) elementItem(i int) Item {
	return Item{
		Key:     strconv.Itoa(i),
		Preview: a.target.Name,
	}
}
