package profiles_test

import (
	"testing"

	"github.com/ruminaider/claude-switch/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	out, err := profiles.Format(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", out)
}

func TestFormat_KeepsKeyOrder(t *testing.T) {
	out, err := profiles.Format(`{"z":1,"a":{"y":[1,2],"b":{}}}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"z\": 1,\n  \"a\": {\n    \"y\": [\n      1,\n      2\n    ],\n    \"b\": {}\n  }\n}", out)
}

func TestFormat_Invalid(t *testing.T) {
	for _, in := range []string{`{"a":}`, ``, `   `, `{"a":1} {"b":2}`, `{"a":1`} {
		_, err := profiles.Format(in)
		assert.ErrorIs(t, err, profiles.ErrInvalidJSON, "input %q", in)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{
		`{"a":1}`,
		"\t{ \"env\" : { \"K\" : \"v\" } }\n",
		`[1, "two", null, true, {"x": 1.50}]`,
		`"just a string"`,
		`{"unicode":"新配置 é"}`,
		`{}`,
	}
	for _, in := range inputs {
		once, err := profiles.Format(in)
		require.NoError(t, err)
		twice, err := profiles.Format(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestSameJSON(t *testing.T) {
	assert.True(t, profiles.SameJSON([]byte(`{"a":1,"b":[1,2]}`), []byte("{\n  \"b\": [1, 2],\n  \"a\": 1\n}")))
	assert.False(t, profiles.SameJSON([]byte(`{"a":1}`), []byte(`{"a":2}`)))
	assert.False(t, profiles.SameJSON([]byte(`{"a":1}`), []byte(`not json`)))
}

func TestSameJSON_NumbersCompareByValue(t *testing.T) {
	assert.True(t, profiles.SameJSON([]byte(`{"x":1.50}`), []byte(`{"x":1.5}`)))
	assert.True(t, profiles.SameJSON([]byte(`{"a":1}`), []byte(`{"a":1.0}`)))
	assert.True(t, profiles.SameJSON([]byte(`[1e2,{"n":[0.10]}]`), []byte(`[100,{"n":[0.1]}]`)))
	assert.False(t, profiles.SameJSON([]byte(`{"x":1.5}`), []byte(`{"x":"1.5"}`)))
	assert.False(t, profiles.SameJSON([]byte(`{"x":1.5}`), []byte(`{"x":1.51}`)))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, profiles.Validate(`{"ok":true}`))
	assert.ErrorIs(t, profiles.Validate(`{"ok":}`), profiles.ErrInvalidJSON)
}
