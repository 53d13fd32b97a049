package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sandbox runs each test from an empty directory so no relist.yaml is picked up.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	return dir
}

func writeSeed(t *testing.T, dir string) string {
	t.Helper()
	p := filepath.Join(dir, "seed.json")
	body := `[{"id":"a","content":"A"},{"id":"b","content":"B"},{"id":"c","content":"C"},{"id":"d","content":"D"}]`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func TestApplyScenario(t *testing.T) {
	dir := sandbox(t)
	seed := writeSeed(t, dir)

	code, out, errOut := runArgs(t, "apply", "--seed", seed, "--separator", ", ",
		"move 0 2", "add", "edit 4 E", "edit 1 X", "emit")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "B, X, A, D, E\n", out)
}

func TestApplyEmitsFinalOrderWhenScriptDoesNot(t *testing.T) {
	sandbox(t)
	code, out, _ := runArgs(t, "apply", "move 3 0", "move 1 -")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Item 4\nItem 1\nItem 2\nItem 3\n", out)
}

func TestApplyFromFileWithDiff(t *testing.T) {
	dir := sandbox(t)
	script := filepath.Join(dir, "ops.txt")
	require.NoError(t, os.WriteFile(script, []byte("# drop the third\ndelete 2\ndelete 2\n"), 0o644))

	code, out, errOut := runArgs(t, "apply", "-f", script, "--diff", "--no-color")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "Item 1\nItem 2\nItem 4\n\n  Item 1\n  Item 2\n- Item 3\n  Item 4\n", out)
}

func TestApplyExitCodes(t *testing.T) {
	dir := sandbox(t)

	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{"no ops", []string{"apply"}, exitUsage, "no ops"},
		{"bad op", []string{"apply", "shuffle"}, exitUsage, "unknown op"},
		{"out of range", []string{"apply", "edit 7 x"}, exitUsage, "index out of range"},
		{"missing seed", []string{"apply", "add", "--seed", filepath.Join(dir, "none.json")}, exitError, "load seed"},
		{"bad theme", []string{"apply", "add", "--theme", "sepia"}, exitUsage, "unknown theme"},
		{"bad ids", []string{"apply", "add", "--ids", "random"}, exitUsage, "unknown id scheme"},
		{"bad flag", []string{"apply", "--nope"}, exitUsage, "unknown flag"},
		{"unknown command", []string{"shuffle"}, exitUsage, "unknown command"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runArgs(t, tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, errOut, tt.msg)
		})
	}
}

func TestApplyEditKeepsTextVerbatim(t *testing.T) {
	sandbox(t)
	code, out, errOut := runArgs(t, "apply", "--separator", "|", "edit 0 C# notes", "edit 1 two  spaces")
	require.Equal(t, exitOK, code, errOut)
	assert.Equal(t, "C# notes|two  spaces|Item 3|Item 4\n", out)
}

func TestSessionFlushesLogOnFailure(t *testing.T) {
	dir := sandbox(t)
	logFile := filepath.Join(dir, "relist.log")

	code, _, _ := runArgs(t, "apply", "add",
		"--log-file", logFile, "--log-level", "debug",
		"--seed", filepath.Join(dir, "none.json"))
	require.Equal(t, exitError, code)

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "session aborted")
	assert.Contains(t, string(b), "load seed")
}

func TestApplyUUIDs(t *testing.T) {
	sandbox(t)
	code, out, _ := runArgs(t, "apply", "--ids", "uuid", "add", "emit")
	require.Equal(t, exitOK, code)
	assert.True(t, strings.HasSuffix(out, "Item 5\n"))
}

func TestConfigFileSeparator(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "relist.yaml"), []byte("separator: \" | \"\n"), 0o644))

	code, out, _ := runArgs(t, "apply", "emit")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "Item 1 | Item 2 | Item 3 | Item 4\n", out)
}

func TestSeedPanel(t *testing.T) {
	sandbox(t)
	code, out, _ := runArgs(t, "seed", "--theme", "mono")
	require.Equal(t, exitOK, code)
	assert.Contains(t, out, "| Items  Total 4")
	assert.Contains(t, out, " 0. = Item 1")
	assert.Contains(t, out, " 3. = Item 4")
}

func TestVersion(t *testing.T) {
	code, out, _ := runArgs(t, "version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "relist dev\n", out)
}

func TestUnescape(t *testing.T) {
	got, err := unescape(`\n`)
	require.NoError(t, err)
	assert.Equal(t, "\n", got)

	got, err = unescape(`a"b`)
	require.NoError(t, err)
	assert.Equal(t, `a"b`, got)

	got, err = unescape(`,\t"`)
	require.NoError(t, err)
	assert.Equal(t, ",\t\"", got)
}
