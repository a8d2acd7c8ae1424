package metainfo

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ParsePackage decodes and validates a metainfo package from JSON.
func ParsePackage(data []byte) (*Package, error) {
	pkg := &Package{}
	if err := json.Unmarshal(data, pkg); err != nil {
		return nil, fmt.Errorf("failed to parse metainfo package: %w", err)
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	return pkg, nil
}

// ParsePackageYAML decodes and validates a metainfo package from YAML.
// The document is normalized through JSON so both inputs share one wire
// shape (the json struct tags).
func ParsePackageYAML(data []byte) (*Package, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse metainfo package: %w", err)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return ParsePackage(d)
}
