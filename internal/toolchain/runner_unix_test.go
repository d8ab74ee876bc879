//go:build unix

package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	platformHelpers["pgrp"] = func([]string) {
		fmt.Fprint(os.Stdout, syscall.Getpgrp())
	}
}

// TestExecRunner_NewConsoleSameProcessGroup checks that the program stays
// in momobuild's process group. A program in another group is stopped by
// SIGTTIN when it reads from the terminal.
func TestExecRunner_NewConsoleSameProcessGroup(t *testing.T) {
	var stdout bytes.Buffer
	r := &ExecRunner{Stdout: &stdout}

	cmd := helperCommand("pgrp")
	cmd.NewConsole = true
	require.NoError(t, r.Run(context.Background(), cmd))

	pgrp, err := strconv.Atoi(stdout.String())
	require.NoError(t, err)
	assert.Equal(t, syscall.Getpgrp(), pgrp)
}
