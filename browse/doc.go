// Package browse is the archive navigation core: a lazy, polymorphic
// adaptor layer that maps a metainfo-typed archive document onto a uniform
// tree interface, so a generic tree browser can display any section or
// quantity without being coupled to the document's shape.
//
// Every adaptor wraps one data node plus its definition and exposes the
// same three operations:
//
//	keys := a.ListChildKeys()
//	child, err := a.GetChild(key)
//	desc := a.Render()
//
// Children are constructed on demand; GetChild is a pure function of
// (adaptor, key) and may be called repeatedly with identical results while
// the underlying document is unchanged. The adaptor tree holds no state of
// its own: expansion state belongs to the consumer, and when the document
// or schema changes the consumer builds a new Context and a new root.
//
// Navigation follows definitions, not data. A section's children are its
// declared properties present in the instance; a repeating sub-section
// with a single element collapses to direct section navigation; a scalar
// reference quantity navigates to its resolved target section. The
// reserved key MetainfoKey ("m_def") is available on every adaptor and
// switches navigation to the definition itself, so "what does this field
// mean" browses with the same machinery as "what is its value".
//
// All navigation failures (unknown keys, out-of-range indices, unresolved
// references, unknown definition kinds) are recoverable at the node where
// they occur and never poison siblings or ancestors.
package browse
