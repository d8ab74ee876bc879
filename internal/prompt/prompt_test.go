package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "yes\n", want: true},
		{name: "y", input: "y\n", want: true},
		{name: "upper case", input: "YES\n", want: true},
		{name: "padded", input: "  n  \n", defaultYes: true, want: false},
		{name: "no", input: "no\n", defaultYes: true, want: false},
		{name: "crlf", input: "y\r\n", want: true},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", defaultYes: false, want: false},
		{name: "eof is no", input: "", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Proceed?", tt.defaultYes, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirm_PrintsQuestion(t *testing.T) {
	var out bytes.Buffer
	_, err := Confirm(strings.NewReader("y\n"), &out, "This will reset the project folder, continue?", false, false)
	require.NoError(t, err)
	assert.Equal(t, "This will reset the project folder, continue? [yes/no]{default: no}\n", out.String())
}

// TestConfirm_RepeatsOnInvalidAnswer checks that the question is asked
// again until a valid answer arrives.
func TestConfirm_RepeatsOnInvalidAnswer(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(strings.NewReader("maybe\nsure\nyes\n"), &out, "Go?", false, false)
	require.NoError(t, err)
	assert.True(t, got)

	assert.Equal(t,
		"Go? [yes/no]{default: no}\n"+
			"Please enter yes or no\n"+
			"Go? [yes/no]{default: no}\n"+
			"Please enter yes or no\n"+
			"Go? [yes/no]{default: no}\n",
		out.String())
}

func TestConfirm_Force(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(strings.NewReader("no\n"), &out, "Go?", false, true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, out.String())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }

func TestConfirm_ReadError(t *testing.T) {
	var out bytes.Buffer
	got, err := Confirm(failingReader{}, &out, "Go?", true, false)
	assert.EqualError(t, err, "read failed")
	assert.False(t, got)
}
