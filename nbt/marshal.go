package nbt

import (
	"reflect"
	"strings"
)

// MarshalCompound maps v, a struct, directly to a root Compound (field
// order = declaration order), the convenience form that skips the
// outer named/unnamed root wrapper.
func MarshalCompound(v any) (*Compound, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, errf("MarshalCompound: %T is not a struct", v)
	}
	return marshalStruct(rv)
}

// UnmarshalCompound maps a root Compound onto v, a pointer to a struct.
func UnmarshalCompound(c *Compound, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return errf("UnmarshalCompound: v must be a pointer to struct, got %T", v)
	}
	return unmarshalStruct(c, rv.Elem())
}

type fieldMeta struct {
	name string
	kind string // "", "byte_array", "int_array", "long_array"
	skip bool
}

func fieldOf(sf reflect.StructField) fieldMeta {
	tag := sf.Tag.Get("nbt")
	if tag == "-" {
		return fieldMeta{skip: true}
	}
	parts := strings.Split(tag, ",")
	m := fieldMeta{name: sf.Name}
	if len(parts) > 0 && parts[0] != "" {
		m.name = parts[0]
	}
	if len(parts) > 1 {
		m.kind = parts[1]
	}
	return m
}

func marshalStruct(rv reflect.Value) (*Compound, error) {
	c := NewCompound()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		meta := fieldOf(sf)
		if meta.skip {
			continue
		}
		tag, err := marshalValue(rv.Field(i), meta)
		if err != nil {
			return nil, err
		}
		if tag == nil {
			continue
		}
		c.Put(meta.name, tag)
	}
	return c, nil
}

func marshalValue(rv reflect.Value, meta fieldMeta) (Tag, error) {
	switch rv.Kind() {
	case reflect.Int8:
		return Byte(rv.Int()), nil
	case reflect.Int16:
		return Short(rv.Int()), nil
	case reflect.Int32, reflect.Int:
		return Int(rv.Int()), nil
	case reflect.Int64:
		return Long(rv.Int()), nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return nil, errf("unsupported unsigned field type %s: tagged-tree format is signed-only", rv.Kind())
	case reflect.Bool:
		if rv.Bool() {
			return Byte(1), nil
		}
		return Byte(0), nil
	case reflect.Float32:
		return Float(rv.Float()), nil
	case reflect.Float64:
		return Double(rv.Float()), nil
	case reflect.String:
		switch meta.kind {
		case "": // unit-variant-style enum string or plain string
			return String(rv.String()), nil
		default:
			return String(rv.String()), nil
		}
	case reflect.Slice, reflect.Array:
		return marshalSequence(rv, meta)
	case reflect.Map:
		return marshalMap(rv)
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return marshalValue(rv.Elem(), meta)
	case reflect.Struct:
		return marshalStruct(rv)
	default:
		return nil, errf("unsupported field kind %s", rv.Kind())
	}
}

func marshalSequence(rv reflect.Value, meta fieldMeta) (Tag, error) {
	switch meta.kind {
	case "byte_array":
		out := make([]byte, rv.Len())
		for i := range out {
			out[i] = byte(rv.Index(i).Uint())
		}
		return ByteArray(out), nil
	case "int_array":
		out := make(IntArray, rv.Len())
		for i := range out {
			out[i] = int32(rv.Index(i).Int())
		}
		return out, nil
	case "long_array":
		out := make(LongArray, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Int()
		}
		return out, nil
	}
	if rv.Len() == 0 {
		return &List{ElemID: TagEnd}, nil
	}
	values := make([]Tag, rv.Len())
	for i := range values {
		v, err := marshalValue(rv.Index(i), fieldMeta{})
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return &List{ElemID: TagID(values[0]), Values: values}, nil
}

func marshalMap(rv reflect.Value) (Tag, error) {
	if rv.Type().Key().Kind() != reflect.String {
		return nil, errf("unsupported map key type %s: only string keys map to Compound", rv.Type().Key())
	}
	c := NewCompound()
	iter := rv.MapRange()
	for iter.Next() {
		v, err := marshalValue(iter.Value(), fieldMeta{})
		if err != nil {
			return nil, err
		}
		c.Put(iter.Key().String(), v)
	}
	return c, nil
}

func unmarshalStruct(c *Compound, rv reflect.Value) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		meta := fieldOf(sf)
		if meta.skip {
			continue
		}
		tag, ok := c.Get(meta.name)
		if !ok {
			continue
		}
		if err := unmarshalValue(tag, rv.Field(i), meta); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalValue(t Tag, rv reflect.Value, meta fieldMeta) error {
	switch rv.Kind() {
	case reflect.Int8:
		v, ok := t.(Byte)
		if !ok {
			return errf("field %s: expected Byte, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetInt(int64(v))
	case reflect.Int16:
		v, ok := t.(Short)
		if !ok {
			return errf("field %s: expected Short, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetInt(int64(v))
	case reflect.Int32, reflect.Int:
		v, ok := t.(Int)
		if !ok {
			return errf("field %s: expected Int, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetInt(int64(v))
	case reflect.Int64:
		v, ok := t.(Long)
		if !ok {
			return errf("field %s: expected Long, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetInt(int64(v))
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return errf("unsupported unsigned field type %s: tagged-tree format is signed-only", rv.Kind())
	case reflect.Bool:
		v, ok := t.(Byte)
		if !ok {
			return errf("field %s: expected Byte for bool, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetBool(v != 0)
	case reflect.Float32:
		v, ok := t.(Float)
		if !ok {
			return errf("field %s: expected Float, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetFloat(float64(v))
	case reflect.Float64:
		v, ok := t.(Double)
		if !ok {
			return errf("field %s: expected Double, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetFloat(float64(v))
	case reflect.String:
		v, ok := t.(String)
		if !ok {
			return errf("field %s: expected String, got tag %d", rv.Type(), TagID(t))
		}
		rv.SetString(string(v))
	case reflect.Slice:
		return unmarshalSequence(t, rv, meta)
	case reflect.Pointer:
		rv.Set(reflect.New(rv.Type().Elem()))
		return unmarshalValue(t, rv.Elem(), meta)
	case reflect.Struct:
		sub, ok := t.(*Compound)
		if !ok {
			return errf("field %s: expected Compound, got tag %d", rv.Type(), TagID(t))
		}
		return unmarshalStruct(sub, rv)
	default:
		return errf("unsupported field kind %s", rv.Kind())
	}
	return nil
}

func unmarshalSequence(t Tag, rv reflect.Value, meta fieldMeta) error {
	switch meta.kind {
	case "byte_array":
		v, ok := t.(ByteArray)
		if !ok {
			return errf("field %s: expected ByteArray, got tag %d", rv.Type(), TagID(t))
		}
		out := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i := range v {
			out.Index(i).SetUint(uint64(v[i]))
		}
		rv.Set(out)
		return nil
	case "int_array":
		v, ok := t.(IntArray)
		if !ok {
			return errf("field %s: expected IntArray, got tag %d", rv.Type(), TagID(t))
		}
		out := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i := range v {
			out.Index(i).SetInt(int64(v[i]))
		}
		rv.Set(out)
		return nil
	case "long_array":
		v, ok := t.(LongArray)
		if !ok {
			return errf("field %s: expected LongArray, got tag %d", rv.Type(), TagID(t))
		}
		out := reflect.MakeSlice(rv.Type(), len(v), len(v))
		for i := range v {
			out.Index(i).SetInt(v[i])
		}
		rv.Set(out)
		return nil
	}
	list, ok := t.(*List)
	if !ok {
		return errf("field %s: expected List, got tag %d", rv.Type(), TagID(t))
	}
	out := reflect.MakeSlice(rv.Type(), len(list.Values), len(list.Values))
	for i, v := range list.Values {
		if err := unmarshalValue(v, out.Index(i), fieldMeta{}); err != nil {
			return err
		}
	}
	rv.Set(out)
	return nil
}
