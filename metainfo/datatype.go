package metainfo

import (
	"encoding/json"
	"fmt"
)

// DataKind is the primitive kind of a quantity's element type. The zero
// value is AnyData, an untyped/dynamic element kind.
type DataKind int

const (
	AnyData DataKind = iota
	StrData
	IntData
	FloatData
	BoolData
	ReferenceData
)

func (k DataKind) String() string {
	s, ok := map[DataKind]string{
		AnyData:       "any",
		StrData:       "str",
		IntData:       "int",
		FloatData:     "float",
		BoolData:      "bool",
		ReferenceData: "reference",
	}[k]
	if ok {
		return s
	}
	return "<unknown data kind>"
}

// ParseDataKind accepts the kind names used in metainfo package files,
// including the numpy-flavored aliases NOMAD emits.
func ParseDataKind(v string) (DataKind, error) {
	k, ok := map[string]DataKind{
		"any":       AnyData,
		"dynamic":   AnyData,
		"str":       StrData,
		"string":    StrData,
		"int":       IntData,
		"int32":     IntData,
		"int64":     IntData,
		"float":     FloatData,
		"float32":   FloatData,
		"float64":   FloatData,
		"bool":      BoolData,
		"boolean":   BoolData,
		"reference": ReferenceData,
	}[v]
	if !ok {
		return AnyData, fmt.Errorf("unrecognized data kind %q", v)
	}
	return k, nil
}

// DataType is a quantity's declared element type. For references, Ref
// names the target section definition.
type DataType struct {
	Kind DataKind
	Ref  string
}

type dataTypeWire struct {
	Kind string `json:"kind"`
	Data string `json:"data,omitempty"`
}

// UnmarshalJSON accepts both the short form ("str") and the object form
// ({"kind": "reference", "data": "System"}).
func (dt *DataType) UnmarshalJSON(d []byte) error {
	var short string
	if err := json.Unmarshal(d, &short); err == nil {
		kind, err := ParseDataKind(short)
		if err != nil {
			return err
		}
		dt.Kind = kind
		dt.Ref = ""
		return nil
	}
	wire := dataTypeWire{}
	if err := json.Unmarshal(d, &wire); err != nil {
		return err
	}
	kind, err := ParseDataKind(wire.Kind)
	if err != nil {
		return err
	}
	if kind == ReferenceData && wire.Data == "" {
		return fmt.Errorf("reference type requires a target section")
	}
	dt.Kind = kind
	dt.Ref = wire.Data
	return nil
}

func (dt DataType) MarshalJSON() ([]byte, error) {
	if dt.Ref == "" {
		return json.Marshal(dt.Kind.String())
	}
	return json.Marshal(dataTypeWire{Kind: dt.Kind.String(), Data: dt.Ref})
}
