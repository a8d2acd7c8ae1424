package browse

// Render is a pure description of one node, sufficient for a consumer to
// draw it without touching adaptors again. It is not tied to any rendering
// technology.
type Render struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Quantity views
	Preview string `json:"preview,omitempty"`
	Value   string `json:"value,omitempty"`
	Unit    string `json:"unit,omitempty"`

	// Section views: the two enumerable property groups
	SubSections []Item `json:"sub_sections,omitempty"`
	Quantities  []Item `json:"quantities,omitempty"`

	// Sub-section list views: the (possibly windowed) elements
	Elements []Item   `json:"elements,omitempty"`
	Elided   *Elision `json:"elided,omitempty"`
}

// Item is one enumerable entry of a rendered node.
type Item struct {
	Key     string `json:"key"`
	Preview string `json:"preview,omitempty"`
	Repeats bool   `json:"repeats,omitempty"`
	Count   int    `json:"count,omitempty"`
}

// Elision marks the index range [From, To] hidden by the compact window.
// The consumer must offer a control to reveal it; every element stays
// reachable through GetChild regardless.
type Elision struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type renderState struct {
	showAll bool
}

type RenderOption func(*renderState)

// WithShowAll disables the compact window on sub-section lists, revealing
// every element. This is the render-side effect of the consumer's reveal
// control.
func WithShowAll() RenderOption {
	return func(rs *renderState) { rs.showAll = true }
}
