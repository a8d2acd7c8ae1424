package metainfo

import (
	"strings"
	"testing"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	pkg, err := ParsePackage([]byte(runPackageJSON))
	if err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry()
	if err := reg.RegisterPackage(pkg); err != nil {
		t.Fatal(err)
	}
	return reg
}

func TestRegistryLookup(t *testing.T) {
	reg := testRegistry(t)

	sec, err := reg.LookupSection("System")
	if err != nil {
		t.Fatal(err)
	}
	if sec.Name != "System" {
		t.Errorf("got %q", sec.Name)
	}

	if _, err := reg.LookupSection("Molecule"); err == nil {
		t.Error("unknown section resolved")
	}
}

func TestRegistryResolveSection(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "plain name", ref: "Calculation", want: "Calculation"},
		{name: "qualified path", ref: "nomad.datamodel.run.System", want: "System"},
		{name: "unknown", ref: "Workflow", wantErr: true},
		{name: "empty", ref: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, err := reg.ResolveSection(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveSection(%q) succeeded", tt.ref)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if sec.Name != tt.want {
				t.Errorf("ResolveSection(%q) = %q, want %q", tt.ref, sec.Name, tt.want)
			}
		})
	}
}

func TestRegistryDuplicates(t *testing.T) {
	reg := testRegistry(t)

	pkg, err := ParsePackage([]byte(runPackageJSON))
	if err != nil {
		t.Fatal(err)
	}
	err = reg.RegisterPackage(pkg)
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Errorf("duplicate registration: %v", err)
	}
}
