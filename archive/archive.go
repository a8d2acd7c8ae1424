package archive

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/nomad-lab/go-archive/ir"
)

// Parse decodes an archive document in the given format into a node tree.
func Parse(data []byte, f Format) (*ir.Node, error) {
	switch f {
	case JSONFormat:
		return ir.ParseJSON(data)
	case YAMLFormat:
		return ParseYAML(data)
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
}

// ParseYAML decodes a YAML archive document into a node tree.
func ParseYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	return ir.FromAny(v)
}
