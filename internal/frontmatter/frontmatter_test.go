package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ValidHeader(t *testing.T) {
	raw := []byte(`---
name: My Skill
description: Does X
tags:
  - a
  - b
---
# Body

Some instructions.
`)

	header, body, err := Parse(raw)
	require.NoError(t, err)

	name, ok := header.GetString("name")
	require.True(t, ok)
	assert.Equal(t, "My Skill", name)

	desc, ok := header.GetString("description")
	require.True(t, ok)
	assert.Equal(t, "Does X", desc)

	tags, ok := header.Get("tags")
	require.True(t, ok)
	assert.Len(t, tags, 2)

	assert.Contains(t, body, "# Body")
	assert.NotContains(t, body, "---")
}

func TestParse_PreservesKeyOrderAndUnknownFields(t *testing.T) {
	raw := []byte(`---
zeta: last-first
name: n
x-custom: kept verbatim
description: d
---
body
`)

	header, _, err := Parse(raw)
	require.NoError(t, err)

	// Unknown keys survive, in the order the author wrote them.
	require.Len(t, header, 4)
	assert.Equal(t, "zeta", header[0].Key)
	assert.Equal(t, "name", header[1].Key)
	assert.Equal(t, "x-custom", header[2].Key)
	assert.Equal(t, "description", header[3].Key)

	v, ok := header.GetString("x-custom")
	require.True(t, ok)
	assert.Equal(t, "kept verbatim", v)
}

func TestParse_NoFrontmatter(t *testing.T) {
	_, _, err := Parse([]byte("# Just a heading\n\nNo metadata block here.\n"))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, CodeNoFrontmatter, pe.Code)
}

func TestParse_UnclosedBlock(t *testing.T) {
	_, _, err := Parse([]byte("---\nname: n\nno closing delimiter"))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, CodeNoFrontmatter, pe.Code)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, _, err := Parse([]byte("---\nname: [unclosed\n---\nbody\n"))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidSyntax, pe.Code)
}

func TestParse_NonMappingBlock(t *testing.T) {
	_, _, err := Parse([]byte("---\n- just\n- a\n- list\n---\nbody\n"))
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidSyntax, pe.Code)
}

func TestParse_EmptyBlock(t *testing.T) {
	header, body, err := Parse([]byte("---\n---\nbody text\n"))
	require.NoError(t, err)
	assert.Len(t, header, 0)
	assert.Equal(t, "body text\n", body)
}

func TestParse_Deterministic(t *testing.T) {
	raw := []byte("---\nname: n\ndescription: d\n---\nbody\n")

	h1, b1, err1 := Parse(raw)
	h2, b2, err2 := Parse(raw)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, b1, b2)
}
