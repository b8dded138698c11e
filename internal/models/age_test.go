package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAge_UnmarshalStringAndNumber(t *testing.T) {
	var a Age
	require.NoError(t, json.Unmarshal([]byte(`"29"`), &a))
	assert.Equal(t, "29", a.String())

	var b Age
	require.NoError(t, json.Unmarshal([]byte(`29`), &b))
	assert.Equal(t, "29", b.String())

	var c Age
	assert.Error(t, json.Unmarshal([]byte(`null`), &c))
	assert.Error(t, json.Unmarshal([]byte(`true`), &c))
	assert.Error(t, json.Unmarshal([]byte(`{}`), &c))
}

func TestAge_MarshalKeepsRepresentation(t *testing.T) {
	out, err := json.Marshal(AgeFromString("29"))
	require.NoError(t, err)
	assert.Equal(t, `"29"`, string(out))

	out, err = json.Marshal(AgeFromInt(29))
	require.NoError(t, err)
	assert.Equal(t, `29`, string(out))
}

func TestAge_RoundTripLossless(t *testing.T) {
	for _, raw := range []string{`"29"`, `29`, `"thirty-ish"`} {
		var a Age
		require.NoError(t, json.Unmarshal([]byte(raw), &a))
		out, err := json.Marshal(a)
		require.NoError(t, err)
		assert.Equal(t, raw, string(out))
	}
}

func TestAge_EqualComparesLogicalValue(t *testing.T) {
	assert.True(t, AgeFromString("29").Equal(AgeFromInt(29)))
	assert.True(t, AgeFromInt(29).Equal(AgeFromInt(29)))
	assert.False(t, AgeFromString("29").Equal(AgeFromInt(30)))
	assert.False(t, AgeFromString("abc").Equal(AgeFromString("def")))
	assert.True(t, AgeFromString("abc").Equal(AgeFromString("abc")))
}

func TestAge_IsZero(t *testing.T) {
	var a Age
	assert.True(t, a.IsZero())
	assert.False(t, AgeFromInt(1).IsZero())
}
