package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// FromAny converts a decoded JSON/YAML value (map[string]any, []any,
// json.Number, string, bool, nil, numeric kinds) into a node tree.
// Object keys are ordered lexically so conversion is deterministic.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > 1<<63-1 {
			return &Node{Type: NumberType, Number: strconv.FormatUint(x, 10)}, nil
		}
		return FromInt(int64(x)), nil
	case float64:
		return FromFloat(x), nil
	case json.Number:
		return fromNumber(x)
	case map[string]any:
		res := &Node{Type: ObjectType}
		keys := slices.Sorted(maps.Keys(x))
		res.Fields = make([]*Node, len(keys))
		res.Values = make([]*Node, len(keys))
		for i, key := range keys {
			val, err := FromAny(x[key])
			if err != nil {
				return nil, err
			}
			val.Parent = res
			val.ParentIndex = i
			val.ParentField = key
			res.Fields[i] = &Node{
				Parent:      res,
				ParentIndex: i,
				ParentField: key,
				Type:        StringType,
				String:      key,
			}
			res.Values[i] = val
		}
		return res, nil
	case []any:
		res := &Node{Type: ArrayType}
		res.Values = make([]*Node, len(x))
		for i, elt := range x {
			val, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			val.Parent = res
			val.ParentIndex = i
			res.Values[i] = val
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot represent %T in ir", v)
	}
}

func fromNumber(num json.Number) (*Node, error) {
	if i, err := num.Int64(); err == nil {
		return FromInt(i), nil
	}
	if f, err := num.Float64(); err == nil {
		return FromFloat(f), nil
	}
	return &Node{Type: NumberType, Number: num.String()}, nil
}

// ToAny converts a node tree back to plain JSON values.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ParseJSON decodes JSON data into a node tree, preserving integer
// precision via json.Number.
func ParseJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return FromAny(v)
}

// MarshalJSON encodes a node tree as plain JSON.
func MarshalJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToAny(node))
}
