package nbt_test

import (
	"testing"

	"github.com/basaltmc/basalt/nbt"
	"github.com/basaltmc/basalt/protocol"
	"github.com/stretchr/testify/require"
)

func buildSample() *nbt.Compound {
	c := nbt.NewCompound()
	c.Put("byte", nbt.Byte(-1))
	c.Put("short", nbt.Short(1234))
	c.Put("int", nbt.Int(-70000))
	c.Put("long", nbt.Long(1<<40))
	c.Put("float", nbt.Float(1.5))
	c.Put("double", nbt.Double(2.5))
	c.Put("bytes", nbt.ByteArray{1, 2, 3})
	c.Put("str", nbt.String("hello"))
	c.Put("ints", nbt.IntArray{1, 2, 3})
	c.Put("longs", nbt.LongArray{4, 5, 6})
	c.Put("list", &nbt.List{ElemID: nbt.TagInt, Values: []nbt.Tag{nbt.Int(1), nbt.Int(2)}})
	inner := nbt.NewCompound()
	inner.Put("nested", nbt.Byte(7))
	c.Put("compound", inner)
	return c
}

func TestNamedRoundTrip(t *testing.T) {
	c := buildSample()
	buf := protocol.NewBuffer(nil)
	require.NoError(t, nbt.EncodeNamed(buf, "root", c))

	name, got, err := nbt.DecodeNamed(protocol.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, "root", name)
	requireCompoundEqual(t, c, got)
}

func TestUnnamedRoundTrip(t *testing.T) {
	c := buildSample()
	buf := protocol.NewBuffer(nil)
	require.NoError(t, nbt.EncodeUnnamed(buf, c))

	got, err := nbt.DecodeUnnamed(protocol.NewBuffer(buf.Bytes()))
	require.NoError(t, err)
	requireCompoundEqual(t, c, got)
}

func TestNonCompoundRootFails(t *testing.T) {
	buf := protocol.NewBuffer(nil)
	buf.WriteUint8(nbt.TagInt)
	buf.WriteInt32(5)
	_, err := nbt.DecodeUnnamed(protocol.NewBuffer(buf.Bytes()))
	require.Error(t, err)
}

func TestMarshalStruct(t *testing.T) {
	type Inner struct {
		X int32
	}
	type Sample struct {
		Name   string
		Count  int32
		Nested Inner
		Tags   []int32 `nbt:"tags,int_array"`
	}
	in := Sample{Name: "a", Count: 3, Nested: Inner{X: 9}, Tags: []int32{1, 2}}
	c, err := nbt.MarshalCompound(in)
	require.NoError(t, err)

	var out Sample
	require.NoError(t, nbt.UnmarshalCompound(c, &out))
	require.Equal(t, in, out)
}

func TestMarshalUnsignedRejected(t *testing.T) {
	type Bad struct {
		V uint32
	}
	_, err := nbt.MarshalCompound(Bad{V: 1})
	require.Error(t, err)
}

func requireCompoundEqual(t *testing.T, want, got *nbt.Compound) {
	t.Helper()
	require.Equal(t, want.Len(), got.Len())
	want.Range(func(name string, v nbt.Tag) {
		gv, ok := got.Get(name)
		require.True(t, ok, "missing key %s", name)
		require.Equal(t, v, gv)
	})
}
