package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Expansion_Toggle(t *testing.T) {
	x := NewExpansion()

	once := x.Toggle("3")
	twice := once.Toggle("3")

	assert.False(t, x.Has("3"), "receiver must be unchanged")
	assert.True(t, once.Has("3"))
	assert.False(t, twice.Has("3"))
	assert.Equal(t, 0, twice.Len())
}

func Test_Expansion_IndependentIDs(t *testing.T) {
	x := NewExpansion().Toggle("1").Toggle("2").Toggle("1")

	assert.False(t, x.Has("1"))
	assert.True(t, x.Has("2"))
	assert.Equal(t, 1, x.Len())
}

func Test_Expansion_ZeroValue(t *testing.T) {
	var x Expansion

	assert.False(t, x.Has("anything"))
	assert.Equal(t, 0, x.Len())
	assert.True(t, x.Toggle("a").Has("a"))
}

func Test_Expansion_Prune(t *testing.T) {
	x := NewExpansion().Toggle("kept").Toggle("stale")

	pruned := x.Prune(func(id string) bool { return id == "kept" })

	assert.True(t, pruned.Has("kept"))
	assert.False(t, pruned.Has("stale"))
	assert.True(t, x.Has("stale"), "receiver must be unchanged")
}
