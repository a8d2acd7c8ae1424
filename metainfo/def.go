package metainfo

// Definition is the schema-side description of a section, sub-section slot,
// or quantity slot. The variant is closed: only *Section, *SubSection, and
// *Quantity implement it, so callers can type switch exhaustively.
type Definition interface {
	Kind() Kind
	isDefinition()
}

// Section is a composite node type with named sub-section and quantity
// slots. SubSections and Quantities together form the property table;
// declaration order is sub-sections first, then quantities.
type Section struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	SubSections []*SubSection `json:"sub_sections,omitempty"`
	Quantities  []*Quantity   `json:"quantities,omitempty"`
}

func (s *Section) Kind() Kind { return SectionKind }
func (*Section) isDefinition() {}

// Properties returns the declared property names in declaration order.
func (s *Section) Properties() []string {
	res := make([]string, 0, len(s.SubSections)+len(s.Quantities))
	for _, ss := range s.SubSections {
		res = append(res, ss.Name)
	}
	for _, q := range s.Quantities {
		res = append(res, q.Name)
	}
	return res
}

// Property looks up a declared property by name. Lookups outside the
// property table report false; they are never synthesized from data.
func (s *Section) Property(name string) (Definition, bool) {
	for _, ss := range s.SubSections {
		if ss.Name == name {
			return ss, true
		}
	}
	for _, q := range s.Quantities {
		if q.Name == name {
			return q, true
		}
	}
	return nil, false
}

// SubSection is a named slot on a section pointing to child section
// instance(s). SectionDef names the target section definition; Repeats
// declares whether the slot holds an ordered sequence.
type SubSection struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SectionDef  string `json:"section_def"`
	Repeats     bool   `json:"repeats,omitempty"`
}

func (ss *SubSection) Kind() Kind { return SubSectionKind }
func (*SubSection) isDefinition() {}

// Quantity is a named leaf slot holding a scalar, array, or reference
// value. Shape declares the array rank symbolically (for example
// ["n_atoms", "3"]); an empty shape means scalar.
type Quantity struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        DataType `json:"type"`
	Shape       []string `json:"shape,omitempty"`
	Unit        string   `json:"unit,omitempty"`
}

func (q *Quantity) Kind() Kind { return QuantityKind }
func (*Quantity) isDefinition() {}

// IsScalarReference reports whether the quantity is a zero-rank reference,
// the only quantity form that navigates into its target.
func (q *Quantity) IsScalarReference() bool {
	return q.Type.Kind == ReferenceData && len(q.Shape) == 0
}

// NameOf returns the declared name of any definition.
func NameOf(def Definition) string {
	switch d := def.(type) {
	case *Section:
		return d.Name
	case *SubSection:
		return d.Name
	case *Quantity:
		return d.Name
	}
	return ""
}

// DescriptionOf returns the docstring of any definition.
func DescriptionOf(def Definition) string {
	switch d := def.(type) {
	case *Section:
		return d.Description
	case *SubSection:
		return d.Description
	case *Quantity:
		return d.Description
	}
	return ""
}
