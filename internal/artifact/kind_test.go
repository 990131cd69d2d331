package artifact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(string(k))
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("plugin")
	assert.Error(t, err)
	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestHeader_Accessors(t *testing.T) {
	h := Header{
		{Key: "name", Value: "My Skill"},
		{Key: "tags", Value: []any{"a", "b"}},
	}

	s, ok := h.GetString("name")
	assert.True(t, ok)
	assert.Equal(t, "My Skill", s)

	_, ok = h.GetString("tags")
	assert.False(t, ok, "GetString refuses non-string values")

	assert.True(t, h.Has("tags"))
	assert.False(t, h.Has("description"))
}
