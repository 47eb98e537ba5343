package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromJSONScalars(t *testing.T) {
	c, err := FromJSON([]byte(`{"name":"overworld","natural":true,"dangerous":false,"height":384}`))
	require.NoError(t, err)

	v, ok := c.Get("name")
	require.True(t, ok)
	require.Equal(t, String("overworld"), v)

	v, ok = c.Get("natural")
	require.True(t, ok)
	require.Equal(t, Byte(1), v)

	v, ok = c.Get("dangerous")
	require.True(t, ok)
	require.Equal(t, Byte(0), v)

	v, ok = c.Get("height")
	require.True(t, ok)
	require.Equal(t, Double(384), v)
}

func TestFromJSONNested(t *testing.T) {
	c, err := FromJSON([]byte(`{"effects":{"fog_color":12638463},"tags":["a","b"]}`))
	require.NoError(t, err)

	nested, ok := c.Get("effects")
	require.True(t, ok)
	inner, ok := nested.(*Compound).Get("fog_color")
	require.True(t, ok)
	require.Equal(t, Double(12638463), inner)

	listTag, ok := c.Get("tags")
	require.True(t, ok)
	list := listTag.(*List)
	require.Len(t, list.Values, 2)
	require.Equal(t, String("a"), list.Values[0])
	require.Equal(t, String("b"), list.Values[1])
}

func TestFromJSONDropsNullAndRejectsNonObjectRoot(t *testing.T) {
	c, err := FromJSON([]byte(`{"a":null,"b":1}`))
	require.NoError(t, err)
	_, ok := c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)

	_, err = FromJSON([]byte(`[1,2,3]`))
	require.Error(t, err)
}
