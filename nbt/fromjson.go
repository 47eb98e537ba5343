package nbt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FromJSON converts a JSON object into a Compound, the shape every
// embedded registry element ships as. There is no third-party
// JSON-to-tagged-tree converter in the available dependency set, so
// this is a small hand-rolled mapping: JSON numbers become Double (JSON
// carries no int/float distinction to preserve), strings become
// String, booleans become Byte(0/1), objects become Compound, arrays
// become List, and null entries are dropped.
func FromJSON(raw []byte) (*Compound, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("nbt: decode json: %w", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("nbt: json root must be an object, got %T", v)
	}
	return compoundFromMap(obj), nil
}

func compoundFromMap(m map[string]any) *Compound {
	c := NewCompound()
	for k, v := range m {
		if tag := tagFromAny(v); tag != nil {
			c.Put(k, tag)
		}
	}
	return c
}

func tagFromAny(v any) Tag {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return String(val)
	case bool:
		if val {
			return Byte(1)
		}
		return Byte(0)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil
		}
		return Double(f)
	case map[string]any:
		return compoundFromMap(val)
	case []any:
		list := &List{}
		for _, elem := range val {
			if tag := tagFromAny(elem); tag != nil {
				list.Values = append(list.Values, tag)
			}
		}
		if len(list.Values) > 0 {
			list.ElemID = TagID(list.Values[0])
		}
		return list
	default:
		return nil
	}
}
