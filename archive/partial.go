package archive

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/nomad-lab/go-archive/ir"
)

// Merge reconciles a newly fetched partial document into a base document
// using JSON merge patch semantics (RFC 7386): objects merge recursively,
// arrays and scalars replace. The result is a fresh tree; neither input is
// modified, so adaptor trees built over the base stay valid until their
// owner swaps contexts.
func Merge(base, partial *ir.Node) (*ir.Node, error) {
	baseJSON, err := ir.MarshalJSON(base)
	if err != nil {
		return nil, err
	}
	partialJSON, err := ir.MarshalJSON(partial)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(baseJSON, partialJSON)
	if err != nil {
		return nil, err
	}
	return ir.ParseJSON(merged)
}

// Apply applies an RFC 6902 JSON patch document to an archive and returns
// the patched tree.
func Apply(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	docJSON, err := ir.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(docJSON)
	if err != nil {
		return nil, err
	}
	return ir.ParseJSON(out)
}
