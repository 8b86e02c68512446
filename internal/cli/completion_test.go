package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCompletion(t *testing.T, shell string) string {
	t.Helper()
	var buf bytes.Buffer
	completionCmd.SetOut(&buf)
	t.Cleanup(func() { completionCmd.SetOut(nil) })

	require.NoError(t, completionCmd.RunE(completionCmd, []string{shell}))
	return buf.String()
}

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell string
		want  []string
	}{
		{"bash", []string{"# bash completion", "__statboard_debug", "__start_statboard statboard"}},
		{"zsh", []string{"#compdef statboard", "_statboard()"}},
		{"fish", []string{"fish completion for statboard", "complete -c statboard"}},
		{"powershell", []string{"Register-ArgumentCompleter"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			output := runCompletion(t, tt.shell)
			for _, want := range tt.want {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestCompletionPowershellMentionsShell(t *testing.T) {
	output := runCompletion(t, "powershell")
	assert.Contains(t, strings.ToLower(output), "powershell completion")
}

func TestCompletionUnknownShell(t *testing.T) {
	err := completionCmd.RunE(completionCmd, []string{"tcsh"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown shell: tcsh")
}

func TestCompletionArgsValidation(t *testing.T) {
	assert.Error(t, completionCmd.Args(completionCmd, []string{}))
	assert.Error(t, completionCmd.Args(completionCmd, []string{"bash", "zsh"}))
	assert.Error(t, completionCmd.Args(completionCmd, []string{"tcsh"}))
	assert.NoError(t, completionCmd.Args(completionCmd, []string{"zsh"}))
}

func TestCompletionUsesDynamicRequests(t *testing.T) {
	output := runCompletion(t, "fish")
	assert.Contains(t, output, "__complete")
}
