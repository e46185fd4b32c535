package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesObjectOrder(t *testing.T) {
	n, err := DecodeJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
	require.NoError(t, err)
	obj, ok := n.Object()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestDecodeJSONNumberClassification(t *testing.T) {
	n, err := DecodeJSON([]byte(`[1, -1, 1.5, 18446744073709551615]`))
	require.NoError(t, err)
	items, ok := n.Array()
	require.True(t, ok)
	assert.Equal(t, KindUint, items[0].Kind())
	assert.Equal(t, KindInt, items[1].Kind())
	assert.Equal(t, KindFloat, items[2].Kind())
	assert.Equal(t, KindUint, items[3].Kind())
}

func TestDecodeYAMLPreservesObjectOrder(t *testing.T) {
	n, err := DecodeYAML([]byte("z: 1\na: 2\nm: 3\n"))
	require.NoError(t, err)
	obj, ok := n.Object()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())
}

func TestDecodeYAMLResolvesAliases(t *testing.T) {
	n, err := DecodeYAML([]byte("base: &base\n  type: string\nproperties:\n  tag: *base\n"))
	require.NoError(t, err)
	obj, ok := n.Object()
	require.True(t, ok)
	props, ok := obj.Get("properties")
	require.True(t, ok)
	propsObj, ok := props.Object()
	require.True(t, ok)
	tag, ok := propsObj.Get("tag")
	require.True(t, ok)
	tagObj, ok := tag.Object()
	require.True(t, ok)
	typ, ok := tagObj.Get("type")
	require.True(t, ok)
	s, _ := typ.String()
	assert.Equal(t, "string", s)
}

func TestEqualNumericCrossKind(t *testing.T) {
	assert.True(t, Equal(Int(1), Float(1.0)))
	assert.True(t, Equal(Uint(2), Float(2.0)))
	assert.False(t, Equal(Int(1), Int(2)))
}

func TestEqualNaNNeverEqual(t *testing.T) {
	nan := Float(nanValue())
	assert.False(t, Equal(nan, nan))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestEqualObjectsIgnoreOrder(t *testing.T) {
	a := Obj(NewObject().Set("x", Int(1)).Set("y", Int(2)))
	b := Obj(NewObject().Set("y", Int(2)).Set("x", Int(1)))
	assert.True(t, Equal(a, b))
}

func TestCloneIsDeep(t *testing.T) {
	orig := Obj(NewObject().Set("list", Array(Int(1), Int(2))))
	clone := Clone(orig)
	origObj, _ := orig.Object()
	cloneObj, _ := clone.Object()
	origList, _ := origObj.Get("list")
	origItems, _ := origList.Array()
	origItems[0] = Int(99)

	cloneList, _ := cloneObj.Get("list")
	cloneItems, _ := cloneList.Array()
	assert.Equal(t, int64(1), mustInt(t, cloneItems[0]))
	_ = origItems
}

func mustInt(t *testing.T, n *Node) int64 {
	t.Helper()
	f, ok := n.Float64()
	require.True(t, ok)
	return int64(f)
}
