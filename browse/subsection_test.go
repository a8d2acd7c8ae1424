package browse

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nomad-lab/go-archive/ir"
)

func testCalculations(t *testing.T) Adaptor {
	t.Helper()
	root, _ := testRoot(t)
	child, err := root.GetChild("calculation")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := child.(*subSectionAdaptor); !ok {
		t.Fatalf("calculation child is %T, want sub-section adaptor", child)
	}
	return child
}

func TestSubSectionKeys(t *testing.T) {
	calcs := testCalculations(t)

	want := make([]string, 8)
	for i := range want {
		want[i] = strconv.Itoa(i)
	}
	if diff := cmp.Diff(want, calcs.ListChildKeys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestSubSectionGetChild(t *testing.T) {
	calcs := testCalculations(t)

	tests := []struct {
		key     string
		wantErr bool
	}{
		{key: "0"},
		{key: "7"},
		{key: "8", wantErr: true},
		{key: "-1", wantErr: true},
		{key: "first", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			child, err := calcs.GetChild(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Fatalf("GetChild(%q) err = %v, want ErrIndexOutOfRange", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			sec, ok := child.(*sectionAdaptor)
			if !ok {
				t.Fatalf("element is %T", child)
			}
			if sec.def.Name != "Calculation" {
				t.Errorf("element def = %q", sec.def.Name)
			}
		})
	}
}

func TestSubSectionWindowing(t *testing.T) {
	calcs := testCalculations(t)

	r := calcs.Render()
	gotKeys := make([]string, len(r.Elements))
	for i, item := range r.Elements {
		gotKeys[i] = item.Key
	}
	// 8 elements: first 3, elision, last 2
	if diff := cmp.Diff([]string{"0", "1", "2", "6", "7"}, gotKeys); diff != "" {
		t.Errorf("windowed elements (-want +got):\n%s", diff)
	}
	if r.Elided == nil || r.Elided.From != 3 || r.Elided.To != 5 {
		t.Errorf("elision = %+v", r.Elided)
	}

	// the reveal control shows everything; enumeration was never windowed
	full := calcs.Render(WithShowAll())
	if len(full.Elements) != 8 || full.Elided != nil {
		t.Errorf("revealed render: %d elements, elided %+v", len(full.Elements), full.Elided)
	}
	if len(calcs.ListChildKeys()) != 8 {
		t.Error("ListChildKeys must stay complete")
	}
}

func TestSubSectionSmallListNotWindowed(t *testing.T) {
	root, _ := testRoot(t)

	// build a sub-section adaptor over the 1-element system slot by
	// going through the factory directly: the factory dispatches on
	// kind, collapse is the parent section's concern
	sys, _ := root.(*sectionAdaptor)
	def, ok := sys.def.Property("system")
	if !ok {
		t.Fatal("system property missing")
	}
	a, err := NewAdaptor(ir.Get(sys.value, "system"), def, sys.ctx)
	if err != nil {
		t.Fatal(err)
	}
	r := a.Render()
	if len(r.Elements) != 1 || r.Elided != nil {
		t.Errorf("small list render: %+v", r)
	}
	if r.Preview != "1 System" {
		t.Errorf("preview = %q", r.Preview)
	}
}

func TestSubSectionMetaKey(t *testing.T) {
	calcs := testCalculations(t)

	meta, err := calcs.GetChild(MetainfoKey)
	if err != nil {
		t.Fatal(err)
	}
	r := meta.Render()
	if r.Name != "calculation" || r.Preview != "repeats Calculation" {
		t.Errorf("meta render = %+v", r)
	}
}
