package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/momobuild/internal/model"
)

// TestRootCommand_PassesArgumentsThrough verifies that cobra hands
// Windows-style flags to the positional parser instead of rejecting them.
func TestRootCommand_PassesArgumentsThrough(t *testing.T) {
	env := newTestEnvAt(t, t.TempDir(), "")
	cmd := newRootCommand(env.app)
	cmd.SetArgs([]string{"/v"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Momobuild Version "+Version+"\n", env.stdout.String())
}

func TestRootCommand_DashFlagsAreNotCobraFlags(t *testing.T) {
	env := newTestEnvAt(t, t.TempDir(), "")
	cmd := newRootCommand(env.app)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, "Invalid config/subcommand `--help`", cliErr.Message)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		stderr string
	}{
		{
			name: "success",
			code: 0,
		},
		{
			name:   "cli error",
			err:    model.NewCLIError(model.ExitGeneralError, "Invalid flag `/X`"),
			code:   1,
			stderr: "ERROR: Invalid flag `/X`\n",
		},
		{
			name:   "wrapped cli error",
			err:    model.WrapCLIError(model.ExitCode(4), "MSBuild failed", errors.New("MSBuild exited with code 4")),
			code:   4,
			stderr: "ERROR: MSBuild failed: MSBuild exited with code 4\n",
		},
		{
			name: "silent exit status",
			err:  model.ExitStatus(9),
			code: 9,
		},
		{
			name:   "plain error",
			err:    errors.New("boom"),
			code:   1,
			stderr: "ERROR: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.code, exitCode(tt.err, &stderr))
			assert.Equal(t, tt.stderr, stderr.String())
		})
	}
}
