package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// FragmentOf returns the fragment path of a node's position in its tree,
// in the style used by archive references: "/run/0/system".
// The root node yields "".
func FragmentOf(node *Node) string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		return FragmentOf(node.Parent) + "/" + node.ParentField
	case ArrayType:
		return FragmentOf(node.Parent) + "/" + strconv.Itoa(node.ParentIndex)
	default:
		panic("parent but not in container")
	}
}

// Fragment navigates a node tree using a fragment path. A leading "#" is
// accepted and ignored, so both "#/run/0" and "/run/0" work. The empty path
// (or "#" alone) addresses the node itself.
//
// Returns (nil, nil) when the path shape is valid but the target does not
// exist in the document. Returns an error only for malformed paths or
// segments that cannot apply to the node kind they reach (for example an
// index into a scalar).
//
// The returned node is not cloned: reference resolution needs identity into
// the shared root document.
func Fragment(node *Node, path string) (*Node, error) {
	path = strings.TrimPrefix(path, "#")
	if path == "" {
		return node, nil
	}
	if !strings.HasPrefix(path, "/") {
		return nil, fmt.Errorf("%w: %q is not rooted", ErrBadPath, path)
	}
	res := node
	for _, seg := range strings.Split(path[1:], "/") {
		if seg == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrBadPath, path)
		}
		switch res.Type {
		case ObjectType:
			next := Get(res, seg)
			if next == nil {
				return nil, nil
			}
			res = next
		case ArrayType:
			index, err := strconv.Atoi(seg)
			if err != nil {
				return nil, fmt.Errorf("%w: segment %q indexes an array", ErrBadPath, seg)
			}
			if index < 0 || index >= len(res.Values) {
				return nil, nil
			}
			res = res.Values[index]
		default:
			return nil, fmt.Errorf("%w: segment %q descends into %s", ErrBadPath, seg, res.Type)
		}
	}
	return res, nil
}
