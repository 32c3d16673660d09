package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeCommand_Flags(t *testing.T) {
	cmd := NewRangeCommand(&RootOptions{})
	for flag, def := range map[string]string{"encoding": "standard", "from": "2", "to": "16"} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, flag)
		assert.Equal(t, def, f.DefValue, flag)
	}
}

func TestRangeCommand_Text(t *testing.T) {
	out, err := execute(t, "range", "--encoding", "interleaved", "--from", "3", "--to", "4")
	require.NoError(t, err)
	assert.Equal(t, "3 -2.5 2\n4 -6.5 6\n", out)

	out, err = execute(t, "range", "--from", "2", "--to", "3")
	require.NoError(t, err)
	assert.Equal(t, "2 -2 2\n3 -8 8\n", out)
}

func TestRangeCommand_JSON(t *testing.T) {
	out, err := execute(t, "range", "--format", "json", "--encoding", "interleaved", "--from", "3", "--to", "3")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   RangeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "interleaved", resp.Data.Encoding)
	assert.Equal(t, []WidthRange{{Width: 3, Min: -2.5, Max: 2}}, resp.Data.Widths)
}

func TestRangeCommand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown encoding", []string{"range", "--encoding", "ieee"}},
		{"width too small", []string{"range", "--from", "1"}},
		{"width too large", []string{"range", "--to", "65"}},
		{"inverted", []string{"range", "--from", "9", "--to", "8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "Error ["+ErrCodeArgument+"]")
		})
	}
}
