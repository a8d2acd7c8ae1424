package metainfo

import "fmt"

// Package is a metainfo package document: a named collection of section
// definitions, matching NOMAD's
// {name, description, section_definitions: [...]} file shape.
type Package struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Sections    []*Section `json:"section_definitions"`
}

// Validate checks the structural invariants a package must satisfy before
// registration: named definitions, one declaration per property name, and
// reference types with a target.
func (p *Package) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("package must have a name")
	}
	for _, sec := range p.Sections {
		if sec.Name == "" {
			return fmt.Errorf("package %q: section without a name", p.Name)
		}
		seen := map[string]bool{}
		for _, name := range sec.Properties() {
			if name == "" {
				return fmt.Errorf("section %q: property without a name", sec.Name)
			}
			if seen[name] {
				return fmt.Errorf("section %q: property %q declared twice", sec.Name, name)
			}
			seen[name] = true
		}
		for _, ss := range sec.SubSections {
			if ss.SectionDef == "" {
				return fmt.Errorf("section %q: sub-section %q has no section_def", sec.Name, ss.Name)
			}
		}
		for _, q := range sec.Quantities {
			if q.Type.Kind == ReferenceData && q.Type.Ref == "" {
				return fmt.Errorf("section %q: reference quantity %q has no target", sec.Name, q.Name)
			}
		}
	}
	return nil
}

// Section returns the package's section definition with the given name.
func (p *Package) Section(name string) (*Section, bool) {
	for _, sec := range p.Sections {
		if sec.Name == name {
			return sec, true
		}
	}
	return nil, false
}
