package metainfo

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const runPackageJSON = `{
	"name": "run",
	"description": "Simulation run definitions",
	"section_definitions": [
		{
			"name": "Run",
			"sub_sections": [
				{"name": "system", "section_def": "System", "repeats": true},
				{"name": "calculation", "section_def": "Calculation", "repeats": true}
			],
			"quantities": [
				{"name": "program_name", "type": "str"},
				{"name": "energy", "type": "float", "unit": "eV"}
			]
		},
		{
			"name": "System",
			"quantities": [
				{"name": "atom_labels", "type": "str", "shape": ["n_atoms"]},
				{"name": "positions", "type": "float", "shape": ["n_atoms", "3"], "unit": "angstrom"}
			]
		},
		{
			"name": "Calculation",
			"quantities": [
				{"name": "system_ref", "type": {"kind": "reference", "data": "System"}},
				{"name": "energy_total", "type": "float"}
			]
		}
	]
}`

func TestParsePackage(t *testing.T) {
	pkg, err := ParsePackage([]byte(runPackageJSON))
	if err != nil {
		t.Fatal(err)
	}
	if pkg.Name != "run" {
		t.Errorf("package name = %q", pkg.Name)
	}

	run, ok := pkg.Section("Run")
	if !ok {
		t.Fatal("Run section missing")
	}
	wantProps := []string{"system", "calculation", "program_name", "energy"}
	if diff := cmp.Diff(wantProps, run.Properties()); diff != "" {
		t.Errorf("declaration order (-want +got):\n%s", diff)
	}

	calc, _ := pkg.Section("Calculation")
	def, ok := calc.Property("system_ref")
	if !ok {
		t.Fatal("system_ref missing from property table")
	}
	q, ok := def.(*Quantity)
	if !ok {
		t.Fatalf("system_ref is %T", def)
	}
	if !q.IsScalarReference() || q.Type.Ref != "System" {
		t.Errorf("system_ref type = %+v", q.Type)
	}

	sys, _ := pkg.Section("System")
	pos, _ := sys.Property("positions")
	if got := pos.(*Quantity).Shape; len(got) != 2 {
		t.Errorf("positions shape = %v", got)
	}

	if _, ok := run.Property("undeclared"); ok {
		t.Error("undeclared property resolved")
	}
}

func TestParsePackageYAML(t *testing.T) {
	pkg, err := ParsePackageYAML([]byte(`
name: common
section_definitions:
  - name: Method
    quantities:
      - name: basis_set
        type: str
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := pkg.Section("Method"); !ok {
		t.Error("Method section missing")
	}
}

func TestParsePackageErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "missing package name",
			input:  `{"section_definitions": []}`,
			errMsg: "must have a name",
		},
		{
			name: "duplicate property",
			input: `{"name": "p", "section_definitions": [{
				"name": "S",
				"sub_sections": [{"name": "x", "section_def": "T"}],
				"quantities": [{"name": "x", "type": "str"}]
			}]}`,
			errMsg: `property "x" declared twice`,
		},
		{
			name: "reference without target",
			input: `{"name": "p", "section_definitions": [{
				"name": "S",
				"quantities": [{"name": "r", "type": {"kind": "reference"}}]
			}]}`,
			errMsg: "requires a target section",
		},
		{
			name: "unknown data kind",
			input: `{"name": "p", "section_definitions": [{
				"name": "S",
				"quantities": [{"name": "q", "type": "quaternion"}]
			}]}`,
			errMsg: "unrecognized data kind",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePackage([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
		})
	}
}
