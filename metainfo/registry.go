package metainfo

import (
	"fmt"
	"strings"
	"sync"
)

// Registry manages all known metainfo packages and resolves section
// definitions by name.
type Registry struct {
	mu sync.RWMutex

	// Map of package name -> Package
	packages map[string]*Package

	// Map of section name -> Section, across all packages
	sections map[string]*Section
}

// NewRegistry creates a new metainfo registry.
func NewRegistry() *Registry {
	return &Registry{
		packages: make(map[string]*Package),
		sections: make(map[string]*Section),
	}
}

// RegisterPackage registers a package and all of its section definitions.
func (r *Registry) RegisterPackage(pkg *Package) error {
	if err := pkg.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.packages[pkg.Name]; exists {
		return fmt.Errorf("package %q already registered", pkg.Name)
	}
	for _, sec := range pkg.Sections {
		if _, exists := r.sections[sec.Name]; exists {
			return fmt.Errorf("section %q already registered", sec.Name)
		}
	}

	r.packages[pkg.Name] = pkg
	for _, sec := range pkg.Sections {
		r.sections[sec.Name] = sec
	}
	return nil
}

// LookupSection returns a section definition by name.
func (r *Registry) LookupSection(name string) (*Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if sec, exists := r.sections[name]; exists {
		return sec, nil
	}
	return nil, fmt.Errorf("section %q not found", name)
}

// ResolveSection resolves a section reference as it appears in definition
// files: a plain section name, or a qualified path whose last dotted
// segment is the section name (NOMAD emits python import
// paths like "nomad.datamodel.data.EntryData").
func (r *Registry) ResolveSection(ref string) (*Section, error) {
	if ref == "" {
		return nil, fmt.Errorf("section reference cannot be empty")
	}
	if sec, err := r.LookupSection(ref); err == nil {
		return sec, nil
	}
	if i := strings.LastIndex(ref, "."); i >= 0 {
		if sec, err := r.LookupSection(ref[i+1:]); err == nil {
			return sec, nil
		}
	}
	return nil, fmt.Errorf("section reference %q not found", ref)
}

// GetPackage returns a package by name.
func (r *Registry) GetPackage(name string) (*Package, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pkg, exists := r.packages[name]
	return pkg, exists
}

// AllSections returns all registered section definitions.
func (r *Registry) AllSections() []*Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*Section, 0, len(r.sections))
	for _, sec := range r.sections {
		res = append(res, sec)
	}
	return res
}
