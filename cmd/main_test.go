package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"-c", filepath.Join(t.TempDir(), "absent.yml")}, args...))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestNormalizeCommand_Args(t *testing.T) {
	stdout, _, err := execute(t, "",
		"normalize",
		"https://aliexpress.us/item/1005005952528890.html?spm=a2g0o",
		"https://example.com/a?b=c#d",
	)
	require.NoError(t, err)
	require.Equal(t,
		"https://www.aliexpress.com/item/1005005952528890.html\nhttps://example.com/a\n", stdout)
}

func TestNormalizeCommand_Stdin(t *testing.T) {
	stdout, _, err := execute(t, "https://m.aliexpress.com/i/1005005952528890\n\n  \nnot a url\n", "normalize")
	require.NoError(t, err)
	require.Equal(t, "https://www.aliexpress.com/item/1005005952528890.html\nnot a url\n", stdout)
}

func TestNormalizeCommand_EmptyStdin(t *testing.T) {
	stdout, stderr, err := execute(t, "\n  \n", "normalize")
	require.NoError(t, err)
	require.Empty(t, stdout)
	require.Equal(t, "⚠ no URLs to normalize\n", stderr)
}

func TestNormalizeCommand_Explain(t *testing.T) {
	stdout, _, err := execute(t, "", "normalize", "--explain", "https://m.aliexpress.com/i/1005005952528890")
	require.NoError(t, err)
	require.Contains(t, stdout, "ITEM_ID")
	require.Contains(t, stdout, "1005005952528890")
}

func TestNormalizeCommand_StrictHostMatch(t *testing.T) {
	t.Setenv("NORMALIZER_HOST_MATCH", "strict")

	stdout, _, err := execute(t, "", "normalize", "https://notaliexpress.example.com/item/1005005952528890.html?x=1")
	require.NoError(t, err)
	require.Equal(t, "https://notaliexpress.example.com/item/1005005952528890.html\n", stdout)
}

func TestRootCommand_InvalidHostMatch(t *testing.T) {
	t.Setenv("NORMALIZER_HOST_MATCH", "fuzzy")

	_, _, err := execute(t, "", "normalize", "https://example.com")
	require.Error(t, err)
}

func TestCopyCommand_PrintOnly(t *testing.T) {
	stdout, stderr, err := execute(t, "", "copy", "--print-only",
		"https://he.aliexpress.com/item/1005005952528890.html?gatewayAdapt=glo2isr#reviews")
	require.NoError(t, err)
	require.Equal(t, "https://www.aliexpress.com/item/1005005952528890.html\n", stdout)
	require.Empty(t, stderr)
}

func TestCopyCommand_PrintOnlyFromStdin(t *testing.T) {
	stdout, _, err := execute(t, "\nhttps://example.com/x?y=z\n", "copy", "--stdin", "-p")
	require.NoError(t, err)
	require.Equal(t, "https://example.com/x\n", stdout)
}

func TestCopyCommand_NoURL(t *testing.T) {
	stdout, stderr, err := execute(t, "   \n", "copy", "--stdin", "--print-only")
	require.ErrorIs(t, err, errReported)
	require.Empty(t, stdout)
	require.Contains(t, stderr, "❌ Copy failed")
	require.Contains(t, stderr, "no URL in input")
}

func TestCopyCommand_TooManyArgs(t *testing.T) {
	_, _, err := execute(t, "", "copy", "a", "b")
	require.Error(t, err)
}
