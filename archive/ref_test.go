package archive

import (
	"errors"
	"testing"

	"github.com/nomad-lab/go-archive/ir"
)

func testArchive(t *testing.T) *ir.Node {
	t.Helper()
	doc, err := Parse([]byte(`{
		"run": [{
			"system": [
				{"atom_labels": ["H", "H", "O"]},
				{"atom_labels": ["O"]}
			],
			"calculation": [
				{"system_ref": "#/run/0/system/1", "energy_total": -76.4}
			]
		}]
	}`), JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestResolveRef(t *testing.T) {
	root := testArchive(t)

	tests := []struct {
		name    string
		ref     string
		wantErr bool
	}{
		{name: "fragment", ref: "#/run/0/system/1"},
		{name: "bare path", ref: "/run/0/calculation/0"},
		{name: "whole document", ref: "#"},
		{name: "missing target", ref: "#/run/0/system/7", wantErr: true},
		{name: "missing field", ref: "#/workflow", wantErr: true},
		{name: "cross document", ref: "../upload/archive/xyz#/run/0", wantErr: true},
		{name: "malformed", ref: "#run/0", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveRef(tt.ref, root)
			if tt.wantErr {
				if !errors.Is(err, ErrUnresolvedReference) {
					t.Fatalf("ResolveRef(%q) err = %v, want ErrUnresolvedReference", tt.ref, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got == nil {
				t.Fatal("nil target without error")
			}
		})
	}
}

func TestResolveRefFollowsStoredReference(t *testing.T) {
	root := testArchive(t)

	refNode, err := ir.Fragment(root, "/run/0/calculation/0/system_ref")
	if err != nil {
		t.Fatal(err)
	}
	target, err := ResolveRef(refNode.String, root)
	if err != nil {
		t.Fatal(err)
	}
	labels := ir.Get(target, "atom_labels")
	if labels == nil || len(labels.Values) != 1 || labels.Values[0].String != "O" {
		t.Errorf("resolved wrong target: %v", ir.ToAny(target))
	}
}
