package archive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nomad-lab/go-archive/ir"
)

// ErrUnresolvedReference reports a reference whose target is not resident
// in the root document. Partial archives make this an expected condition:
// callers degrade to showing the raw reference token.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ResolveRef resolves a reference value against the root document.
//
// In-document references are fragment paths, with or without the leading
// "#": "#/run/0/system/3" or "/run/0/system/3". References carrying a
// non-empty part before the fragment ("../upload/archive/ID#/run/0")
// point into another document; those are recognized but always fail with
// ErrUnresolvedReference, because the core only sees fully resident
// in-memory documents.
func ResolveRef(ref string, root *ir.Node) (*ir.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root document", ErrUnresolvedReference)
	}
	frag := ref
	if i := strings.Index(ref, "#"); i > 0 {
		return nil, fmt.Errorf("%w: %q targets another document", ErrUnresolvedReference, ref)
	} else if i == 0 {
		frag = ref[1:]
	}
	if frag == "" {
		return root, nil
	}
	target, err := ir.Fragment(root, frag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnresolvedReference, ref, err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedReference, ref)
	}
	return target, nil
}
