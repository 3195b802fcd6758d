package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with the given args and returns the
// captured output. Callers are responsible for environment setup.
func runRoot(t *testing.T, args ...string) *bytes.Buffer {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return buf
}

// execute runs the root command hermetically: a throwaway config
// directory and no backend environment variables.
func execute(t *testing.T, args ...string) *bytes.Buffer {
	t.Helper()

	originalDir := configDir
	configDir = t.TempDir()
	t.Cleanup(func() { configDir = originalDir })

	t.Setenv(envAPIKey, "")
	t.Setenv(envBaseURL, "")

	return runRoot(t, args...)
}
