package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// runCommand executes the root command with captured output, resetting flag
// state afterwards so tests stay independent.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	err := Execute(zap.NewNop())
	require.NoError(t, RootCmd.Flags().Set("profile", ""))
	require.NoError(t, RootCmd.Flags().Set("debug", "false"))
	require.NoError(t, RootCmd.Flags().Set("quiet", "false"))
	return out.String(), err
}

func TestRootCommandMergesFolder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Bead Positions A.txt", "# H1\n1 2\n3 4\n")
	writeFile(t, dir, "Bead Positions B.txt", "# H1\n5 6\n")
	writeFile(t, dir, "Motor Positions X.txt", "# M\n7 8\n")

	out, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Bead files: 2")
	assert.Contains(t, out, "Motor files: 1")
	assert.Contains(t, out, "Bead output: "+filepath.Join(dir, "Bead Positions Combined.txt")+" (lines: 3)")
	assert.Contains(t, out, "Motor output: "+filepath.Join(dir, "Motor Positions Combined.txt")+" (lines: 1)")

	data, readErr := os.ReadFile(filepath.Join(dir, "Bead Positions Combined.txt"))
	require.NoError(t, readErr)
	assert.Equal(t, "# H1\n1 2\n3 4\n5 6\n", string(data))
}

func TestRootCommandReportsNoMatches(t *testing.T) {
	dir := t.TempDir()

	out, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Bead files: 0")
	assert.Contains(t, out, "Motor files: 0")
	assert.Contains(t, out, "No matching files found.")

	_, statErr := os.Stat(filepath.Join(dir, "Bead Positions Combined.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRootCommandAbsentGroupNotCreated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Motor Positions X.txt", "# M\n1 2\n")

	out, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Bead output: (not created)")
	assert.Contains(t, out, "Motor output: "+filepath.Join(dir, "Motor Positions Combined.txt"))
}

func TestRootCommandPrintsWarnings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Bead Positions A.txt", "# H1\n1 2\n")
	writeFile(t, dir, "Bead Positions B.txt", "# H2\n3 4\n")

	out, err := runCommand(t, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "Bead Positions B.txt")
	assert.Contains(t, out, "header mismatch")
}

func TestRootCommandPrintsErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Bead Positions A.txt", "# H\n1 2\n")
	broken := filepath.Join(dir, "Bead Positions B.txt")
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing-target"), broken))

	out, err := runCommand(t, dir)
	// Per-file read errors are reported but do not fail the run.
	require.NoError(t, err)

	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, broken)
}

func TestRootCommandRejectsMissingFolder(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestRootCommandQuiet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Bead Positions A.txt", "# H\n1 2\n")

	out, err := runCommand(t, "--quiet", dir)
	require.NoError(t, err)

	assert.NotContains(t, out, "Folder:")
	_, statErr := os.Stat(filepath.Join(dir, "Bead Positions Combined.txt"))
	assert.NoError(t, statErr)
}

func TestRootCommandCustomProfile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Stage Positions 1.txt", "# S\n1 2\n")
	profile := writeFile(t, dir, "profile.toml", `
[[class]]
name   = "Stage"
prefix = "Stage Positions"
output = "Stage Positions Combined.txt"
`)

	out, err := runCommand(t, "--profile", profile, dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Stage files: 1")
	_, statErr := os.Stat(filepath.Join(dir, "Stage Positions Combined.txt"))
	assert.NoError(t, statErr)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "magmerge version")

	out, err = runCommand(t, "version", "--short")
	require.NoError(t, err)
	assert.NotContains(t, out, "commit")
	require.NoError(t, versionCmd.Flags().Set("short", "false"))
}
