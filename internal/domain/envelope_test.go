package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope_Empty(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "undefined"} {
		env, err := ParseEnvelope(in)
		require.NoError(t, err, in)
		assert.Nil(t, env, in)
	}
}

func TestParseEnvelope_Malformed(t *testing.T) {
	_, err := ParseEnvelope("{not json")
	assert.ErrorIs(t, err, ErrMalformedData)
}

func TestParseEnvelope_Valid(t *testing.T) {
	env, err := ParseEnvelope(`{
		"version": 1.1,
		"lastSaveTime": 1700000000000,
		"focus": "ship it",
		"tasks": [{"text": "A", "checked": true, "indentationLevel": 0, "type": "user"}]
	}`)
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.NoError(t, env.CheckVersion())
	assert.Equal(t, "ship it", env.Focus)
	assert.Equal(t, int64(1700000000000), env.LastSaveTime)
	assert.Equal(t, []TaskRecord{{Text: "A", Type: "user", Checked: true}}, env.Tasks)
}

func TestEnvelope_CheckVersion(t *testing.T) {
	tests := []struct {
		name    string
		version float64
		wantErr bool
	}{
		{"current", 1.1, false},
		{"too old", 1.0, true},
		{"missing", 0, true},
		{"too new", 1.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Envelope{Version: tt.version}).CheckVersion()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEnvelope_MarshalRoundTrip(t *testing.T) {
	env := NewEnvelope("focus", []TaskRecord{
		{Text: "A", Type: "routine-work"},
		{Text: "B", Type: "user", IndentationLevel: 1, Checked: true},
	}, 42)

	data, err := env.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1.1`)
	assert.Contains(t, string(data), `"indentationLevel": 1`)

	parsed, err := ParseEnvelope(string(data))
	require.NoError(t, err)
	assert.Equal(t, env, parsed)
}

func TestNewEnvelope_NilTasksEncodeAsArray(t *testing.T) {
	data, err := NewEnvelope("", nil, 0).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tasks": []`)
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "routinify-tasks-v1.1.json", ExportFileName(CurrentVersion))
	assert.Equal(t, "routinify-tasks-v2.json", ExportFileName(2))
}
