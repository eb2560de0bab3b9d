package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const sampleEntrySet = `
entries:
  - name: Overall merit
    tflags: 0
  - name: Overall review quality
    tflags: 0
  - name: xyz
    keyword: true
`

func writeSampleEntrySet(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "entries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleEntrySet), 0o644))
	return path
}

// captureStdout runs fn with os.Stdout redirected to a pipe, in the same
// style the teacher's cmd/dwscript tests use to assert on CLI output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestBuildIndexRejectsDuplicateEntryNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
entries:
  - name: Overall Merit
  - name: overall merit
`), 0o644))

	_, _, err := buildIndex(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicates")
	assert.Contains(t, err.Error(), "Overall Merit")
}

func TestQueryCommandJSONOutput(t *testing.T) {
	path := writeSampleEntrySet(t)
	rootCmd.SetArgs([]string{"query", "--file", path, "--json", "OveMer"})

	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	result := gjson.Parse(output)
	assert.Equal(t, "OveMer", result.Get("pattern").String())
	matches := result.Get("matches").Array()
	require.Len(t, matches, 1)
	assert.Equal(t, "Overall merit", matches[0].String())
}

func TestQueryCommandPedanticSuppressesAmbiguity(t *testing.T) {
	path := writeSampleEntrySet(t)
	rootCmd.SetArgs([]string{"query", "--file", path, "--pedantic", "overall"})

	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.Equal(t, "no match\n", output)
}

func TestLoadCommandDebugSnapshot(t *testing.T) {
	path := writeSampleEntrySet(t)
	rootCmd.SetArgs([]string{"load", "--file", path, "--debug"})

	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	snaps.MatchSnapshot(t, "load_debug_output", output)
}

func TestKeywordCommandResolvesByNameNotPosition(t *testing.T) {
	path := writeSampleEntrySet(t)
	rootCmd.SetArgs([]string{"keyword", "--file", path, "--ensure", "Overall review quality"})

	output := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.NotEmpty(t, output)
}
