// Package ir provides the in-memory representation of archive documents.
//
// An archive (the processed output of a simulation entry) is represented as
// a tree of nodes. All documents, whether decoded from JSON or YAML or
// constructed programmatically, are ir.Node trees.
//
// # Node Structure
//
// A Node represents a single value in an archive document. Nodes can be:
//
//   - Atomic types: null, boolean, number, string
//   - Composite types: object (key-value pairs), array (ordered list)
//
// Each node maintains parent-child relationships, allowing navigation up and
// down the tree. For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there are always the same number of fields as values.
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "energy": ir.FromFloat(1.5),
//	})
//
// FromAny converts decoded JSON/YAML values (map[string]any, []any,
// json.Number, ...) into nodes; ToAny is its inverse.
//
// # Fragment Paths
//
// Archive references are fragment paths in the style "#/run/0/system".
// Fragment navigates such a path within a document:
//
//	target, err := ir.Fragment(root, "/run/0/system")
//
// Fragment returns the node in place, never a copy: callers that resolve
// references need identity into the shared root document, and document
// trees are treated as read-only once constructed.
//
// # Thread Safety
//
// Node structures are not thread-safe to mutate. The browse layer shares
// fully constructed trees read-only, which is safe without synchronization.
package ir
