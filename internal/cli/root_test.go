package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/pathkit/internal/cli"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	tc := cli.NewRootCmd("test_pathkit", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs(args)
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()

	return stdout.String(), stderr.String(), err
}

func TestNormalizeCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "normalize", "--platform=posix", "/a//b/../c")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Equal(t, "/a/c\n", stdout)
}

func TestNormalizeCmdWindows(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "normalize", "--platform=windows", `C:/a/./b`)
	require.NoError(t, err)
	assert.Equal(t, "C:\\a\\b\n", stdout)
}

func TestJoinCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "join", "--platform=posix", "/tmp/a/b/c", "..", "..", "d/e")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a/d/e\n", stdout)
}

func TestResolveCmdWithBase(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t,
		"resolve", "--platform=posix", "--base=/srv/app", "config.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app/config.yaml\n", stdout)
}

func TestRelativeCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "relative", "--platform=posix", "/a/b", "/a/c")
	require.NoError(t, err)
	assert.Equal(t, "../c\n", stdout)
}

func TestParseCmd(t *testing.T) {
	t.Parallel()

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t, "parse", "--platform=posix", "/home/user/file.txt")
		require.NoError(t, err)
		assert.Contains(t, stdout, "base: file.txt")
		assert.Contains(t, stdout, "ext:  .txt")
	})
	t.Run("json", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t,
			"parse", "--platform=posix", "--output=json", "/home/user/file.txt")
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"root": "/", "dir": "/home/user", "base": "file.txt",
			"name": "file", "ext": ".txt"
		}`, stdout)
	})
	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := execute(t,
			"parse", "--platform=posix", "--output=yaml", "/home/user/file.txt")
		require.NoError(t, err)
		assert.Contains(t, stdout, "base: file.txt")
		assert.Contains(t, stdout, "root: /")
	})
	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, _, err := execute(t, "parse", "--platform=posix", "--output=xml", "/a")
		require.ErrorIs(t, err, cli.ErrUnknownOutputFormat)
	})
}

func TestUnknownPlatform(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "normalize", "--platform=plan9", "/a")
	require.ErrorIs(t, err, cli.ErrUnknownPlatform)
}

func TestBadLogFormat(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "normalize", "--log_format=xml", "/a")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "version")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Regexp(t, `\d+\.\d+\.\d+`, stdout)
}
