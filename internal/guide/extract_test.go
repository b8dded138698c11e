package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray_BareArray(t *testing.T) {
	raw, err := extractJSONArray(`[{"title":"Dinner"}]`)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Dinner"}]`, string(raw))
}

func TestExtractJSONArray_MarkdownFence(t *testing.T) {
	completion := "Here are your suggestions:\n```json\n[{\"title\":\"Dinner\"},{\"title\":\"Walk\"}]\n```\nEnjoy!"
	raw, err := extractJSONArray(completion)
	require.NoError(t, err)
	assert.Equal(t, `[{"title":"Dinner"},{"title":"Walk"}]`, string(raw))
}

func TestExtractJSONArray_SurroundingProse(t *testing.T) {
	raw, err := extractJSONArray(`Sure! ["a","b"] hope that helps`)
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(raw))
}

func TestExtractJSONArray_NestedArraysStayIntact(t *testing.T) {
	raw, err := extractJSONArray(`[{"tags":["cozy","quiet"]}]`)
	require.NoError(t, err)
	assert.Equal(t, `[{"tags":["cozy","quiet"]}]`, string(raw))
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := extractJSONArray("I could not come up with anything.")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestExtractJSONArray_InvalidArray(t *testing.T) {
	_, err := extractJSONArray(`[{"title": "broken"`)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
