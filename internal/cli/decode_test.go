package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCommand_Text(t *testing.T) {
	out, err := execute(t, "decode", "--width", "8", "--length", "32", "0x7F90_1001")
	require.NoError(t, err)
	assert.Equal(t, "0.53125\n1\n-1\n124\n", out)
}

func TestDecodeCommand_StopsAtPartialValue(t *testing.T) {
	out, err := execute(t, "decode", "--encoding", "interleaved", "--width", "3", "--length", "7", "0b")
	require.NoError(t, err)
	// 0b0001011: values 0b011 and 0b001; the final bit is left over.
	assert.Equal(t, "-2\n-1\n", out)
}

func TestDecodeCommand_JSON(t *testing.T) {
	out, err := execute(t, "decode", "--format", "json", "--width", "64", "0", "1")
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   DecodeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, uint(64), resp.Data.Width)
	assert.Len(t, resp.Data.Values, 2)
	assert.Equal(t, 0.0, resp.Data.Values[0])
}

func TestDecodeCommand_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad hex", []string{"decode", "xyz"}},
		{"width too small", []string{"decode", "--width", "1", "ff"}},
		{"length beyond words", []string{"decode", "--length", "65", "ff"}},
		{"unknown encoding", []string{"decode", "--encoding", "posit", "ff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestParseWords(t *testing.T) {
	words, err := parseWords([]string{"0xFF", "10", "DEAD_BEEF"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0xFF, 0x10, 0xDEADBEEF}, words)

	_, err = parseWords([]string{"0x1_0000_0000_0000_0000"})
	assert.Error(t, err)
}
