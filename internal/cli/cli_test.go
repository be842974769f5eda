package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs a fresh command tree with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// isolate runs the test from an empty directory with an empty HOME.
func isolate(t *testing.T) (cwd, home string) {
	t.Helper()
	cwd = t.TempDir()
	home = t.TempDir()
	t.Chdir(cwd)
	t.Setenv("HOME", home)
	return cwd, home
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	isolate(t)
	_, err := executeCommand(t, "unexpected")
	require.Error(t, err)
}
