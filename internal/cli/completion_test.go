package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"# bash completion for fasam", "__start_fasam"}},
		{"zsh", []string{"#compdef fasam", "_fasam()"}},
		{"fish", []string{"complete -c fasam"}},
		{"powershell", []string{"Register-ArgumentCompleter"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			out, err := executeCommand(t, "completion", tt.shell)
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	_, err := executeCommand(t, "completion", "tcsh")
	require.Error(t, err)
}
