package service

import (
	"errors"
	"testing"

	"github.com/nomad-lab/go-archive/archive"
	"github.com/nomad-lab/go-archive/browse"
	"github.com/nomad-lab/go-archive/metainfo"
)

const testPackage = `{
  "name": "svc",
  "section_definitions": [
    {
      "name": "Run",
      "sub_sections": [
        {"name": "system", "section_def": "System", "repeats": true}
      ],
      "quantities": [
        {"name": "program_name", "type": "str"},
        {"name": "x_code_hint", "type": "str"}
      ]
    },
    {
      "name": "System",
      "quantities": [
        {"name": "atom_count", "type": "int"}
      ]
    }
  ]
}`

const testArchive = `{
  "program_name": "VASP",
  "x_code_hint": "internal",
  "system": [{"atom_count": 2}, {"atom_count": 3}]
}`

func testRegistry(t *testing.T) *metainfo.Registry {
	t.Helper()
	pkg, err := metainfo.ParsePackage([]byte(testPackage))
	if err != nil {
		t.Fatal(err)
	}
	reg := metainfo.NewRegistry()
	if err := reg.RegisterPackage(pkg); err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestDocStoreOpenRootClose(t *testing.T) {
	reg := testRegistry(t)
	doc, err := archive.Parse([]byte(testArchive), archive.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	store := NewDocStore()

	root, err := store.Open("calc", doc, reg, "Run", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(root.ListChildKeys()) == 0 {
		t.Error("opened root has no children")
	}

	got, err := store.Root("calc")
	if err != nil {
		t.Fatal(err)
	}
	if got != root {
		t.Error("Root returned a different adaptor")
	}

	if _, err := store.Open("calc", doc, reg, "Run", ""); !errors.Is(err, ErrDuplicateAlias) {
		t.Errorf("got %v, want ErrDuplicateAlias", err)
	}

	if err := store.Close("calc"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Root("calc"); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("got %v, want ErrUnknownAlias", err)
	}
	if err := store.Close("calc"); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("got %v, want ErrUnknownAlias", err)
	}
}

func TestDocStoreFilter(t *testing.T) {
	reg := testRegistry(t)
	doc, err := archive.Parse([]byte(testArchive), archive.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	store := NewDocStore()

	root, err := store.Open("calc", doc, reg, "Run", `not (name startsWith "x_")`)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range root.ListChildKeys() {
		if key == "x_code_hint" {
			t.Error("filtered key still listed")
		}
	}

	if _, err := store.Open("bad", doc, reg, "Run", "name +"); err == nil {
		t.Error("malformed filter must fail open")
	}
}

func TestDocStoreMerge(t *testing.T) {
	reg := testRegistry(t)
	doc, err := archive.Parse([]byte(testArchive), archive.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	store := NewDocStore()

	oldRoot, err := store.Open("calc", doc, reg, "Run", `not (name startsWith "x_")`)
	if err != nil {
		t.Fatal(err)
	}

	partial, err := archive.Parse([]byte(`{
		"program_name": "exciting",
		"system": [{"atom_count": 7}]
	}`), archive.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}

	merged, err := store.Merge("calc", partial)
	if err != nil {
		t.Fatal(err)
	}
	if merged == oldRoot {
		t.Fatal("Merge must return a rebuilt root")
	}
	got, err := store.Root("calc")
	if err != nil {
		t.Fatal(err)
	}
	if got != merged {
		t.Error("Root does not return the merged root")
	}

	name, err := browse.Navigate(merged, []string{"program_name"})
	if err != nil {
		t.Fatal(err)
	}
	if r := name.Render(); r.Preview != "exciting" {
		t.Errorf("got %q, want merged value", r.Preview)
	}

	// Arrays replace wholesale, so the single remaining element collapses.
	atoms, err := browse.Navigate(merged, []string{"system", "atom_count"})
	if err != nil {
		t.Fatal(err)
	}
	if r := atoms.Render(); r.Preview != "7" {
		t.Errorf("got %q, want replaced element", r.Preview)
	}

	// The filter from open carries over to the rebuilt root.
	for _, key := range merged.ListChildKeys() {
		if key == "x_code_hint" {
			t.Error("filtered key listed after merge")
		}
	}

	// The pre-merge root keeps reading the old document.
	oldName, err := browse.Navigate(oldRoot, []string{"program_name"})
	if err != nil {
		t.Fatal(err)
	}
	if r := oldName.Render(); r.Preview != "VASP" {
		t.Errorf("got %q, want pre-merge value", r.Preview)
	}

	if _, err := store.Merge("nope", partial); !errors.Is(err, ErrUnknownAlias) {
		t.Errorf("got %v, want ErrUnknownAlias", err)
	}
}

func TestDocStoreUnknownRootSection(t *testing.T) {
	reg := testRegistry(t)
	doc, err := archive.Parse([]byte(testArchive), archive.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	store := NewDocStore()

	if _, err := store.Open("calc", doc, reg, "EntryArchive", ""); err == nil {
		t.Error("unknown root section must fail open")
	}
	if len(store.Aliases()) != 0 {
		t.Error("failed open left an alias behind")
	}
}
