package interp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xv6sh/shell/internal/interp"
	"github.com/xv6sh/shell/internal/shell"
)

func run(t *testing.T, line string) (*bytes.Buffer, error) {
	t.Helper()
	cc, err := shell.Parse(shell.Scan(line))
	require.NoError(t, err)
	plan, err := shell.Translate(cc, false)
	require.NoError(t, err)

	reaper := interp.NewReaper()
	in := interp.New(reaper)
	var out bytes.Buffer
	in.Stdin = bytes.NewReader(nil)
	in.Stdout = &out
	in.Stderr = &out

	return &out, in.Run(plan)
}

func TestInterp_SingleCommand(t *testing.T) {
	out, err := run(t, "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestInterp_Pipeline(t *testing.T) {
	out, err := run(t, "echo -n hello | wc -c")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out.String())
}

func TestInterp_OutputRedirectionTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0644))

	_, err := run(t, "echo fresh >"+path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestInterp_OutputRedirectionAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0644))

	_, err := run(t, "echo second >>"+path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestInterp_InputRedirection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("line1\nline2\n"), 0644))

	out, err := run(t, "wc -l <"+path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "2")
}

func TestInterp_SpawnFailureReportsError(t *testing.T) {
	_, err := run(t, "this-binary-does-not-exist-anywhere")
	require.Error(t, err)
}

func TestInterp_RedirectionOpenFailureIsReported(t *testing.T) {
	_, err := run(t, "cat </no/such/file/at/all")
	require.Error(t, err)
}

func TestInterp_CdChangesWorkingDirectory(t *testing.T) {
	original, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()
	defer os.Chdir(original)

	_, err = run(t, "cd "+dir)
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	resolvedDir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	resolvedCwd, err := filepath.EvalSymlinks(cwd)
	require.NoError(t, err)
	assert.Equal(t, resolvedDir, resolvedCwd)
}

func TestInterp_CdRejectsWrongArgCount(t *testing.T) {
	_, err := run(t, "cd")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: cd DIR")
}

func TestInterp_SequentialCommandsRunInOrder(t *testing.T) {
	out, err := run(t, "echo a;echo b")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out.String())
}

func TestInterp_VerboseTracePrintsBeforeSpawn(t *testing.T) {
	cc, err := shell.Parse(shell.Scan("echo hi"))
	require.NoError(t, err)
	plan, err := shell.Translate(cc, false)
	require.NoError(t, err)

	reaper := interp.NewReaper()
	in := interp.New(reaper)
	in.Verbose = true
	var stdout, stderr bytes.Buffer
	in.Stdin = bytes.NewReader(nil)
	in.Stdout = &stdout
	in.Stderr = &stderr

	require.NoError(t, in.Run(plan))
	assert.Contains(t, stderr.String(), "echo hi")
}
