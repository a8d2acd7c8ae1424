// Package metainfo models the self-describing schema side of archives.
//
// A metainfo package declares section definitions; a section declares named
// sub-section slots and quantity slots. Every archive value is typed by
// exactly one definition, and a value's runtime kind (section, sub-section
// list, or leaf quantity) is always determined by its definition's kind,
// never inferred from the value's shape.
//
// Definition is a closed variant: only Section, SubSection, and Quantity
// implement it, so consumers dispatch with an exhaustive type switch.
//
// A Registry holds loaded packages and resolves section names, including
// the target of a sub-section's section_def and the target section of
// reference-typed quantities.
package metainfo
