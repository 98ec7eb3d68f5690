package cmd

import (
	"path/filepath"
	"testing"

	"github.com/harrison/different/internal/diff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffCommand_RelativeNames(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a\nb\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "a\nc\n")
	chdir(t, dir)

	out, _, err := executeCommand(t, "diff", "a.txt", "b.txt")
	require.NoError(t, err)

	assert.Equal(t,
		"---- left:  ./a.txt\n"+
			"++++ right: ./b.txt\n"+
			"  1  1 | a\n"+
			"  2   - b\n"+
			"     2 + c\n",
		out)
}

func TestDiffCommand_IdenticalFilesPrintNothing(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "same\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "same\n")

	out, _, err := executeCommand(t, "diff", filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDiffCommand_Flags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "y\n")
	chdir(t, dir)

	out, _, err := executeCommand(t, "diff", "a.txt", "b.txt",
		"--left-name", "old", "--right-name", "new",
		"--left-marker", "<", "--right-marker", ">",
		"--marker-count", "2", "--indent-spaces", "0")
	require.NoError(t, err)

	assert.Equal(t, "<< left:  old\n>> right: new\n1  - x\n 1 + y\n", out)
}

func TestDiffCommand_ForceColor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "x\n")
	writeFile(t, filepath.Join(dir, "b.txt"), "y\n")

	out, _, err := executeCommand(t, "diff", "-f", "--left-color", "blue",
		filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[34m")
	assert.Contains(t, out, "\x1b[31m")
}

func TestDiffCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "x\n")

	t.Run("missing file", func(t *testing.T) {
		_, _, err := executeCommand(t, "diff", a, filepath.Join(dir, "missing.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})

	t.Run("conflicting color flags", func(t *testing.T) {
		_, _, err := executeCommand(t, "diff", "--force-color", "--no-color", a, a)
		assert.ErrorIs(t, err, diff.ErrConflictingColorFlags)
	})

	t.Run("bad marker", func(t *testing.T) {
		_, _, err := executeCommand(t, "diff", "--left-marker", "ab", a, a)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "left_marker")
	})

	t.Run("wrong arg count", func(t *testing.T) {
		_, _, err := executeCommand(t, "diff", a)
		assert.Error(t, err)
	})
}

func TestDisplayName(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	assert.Equal(t, "./a.txt", displayName("a.txt"))
	assert.Equal(t, "./sub/b.txt", displayName(filepath.Join("sub", "b.txt")))
	assert.Equal(t, "./a.txt", displayName(filepath.Join(dir, "a.txt")))

	outside := filepath.Join(filepath.Dir(dir), "elsewhere.txt")
	assert.Equal(t, outside, displayName(outside))
}
