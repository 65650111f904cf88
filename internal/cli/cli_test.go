package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const peopleYAML = `
- city: NYC
  age: 30
- city: SF
  age: 25
- city: NYC
  age: 35
`

// execute runs the CLI with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFilterTextOutput(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	out, _, err := execute(t, "filter", docs, "--query", `{city: "NYC"}`)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "filter_text", []byte(out))
}

func TestFilterJSONOutput(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	out, _, err := execute(t, "filter", docs, "--format", "json", "--query", `{age: {$gt: 28}}`)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.RunID)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(3), data["total"])
	assert.Equal(t, float64(2), data["matched"])
}

func TestFilterNoMatches(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	out, _, err := execute(t, "filter", docs, "--query", `{city: "LA"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "no documents matched")
}

func TestFilterUnknownOperator(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	_, _, err := execute(t, "filter", docs, "--query", `{age: {$frobnicate: 1}}`)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFilterRequiresQuery(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	_, _, err := execute(t, "filter", docs)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFilterQueryFileCUE(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)
	queryFile := writeFile(t, "q.cue", `city: "NYC"`)

	out, _, err := execute(t, "filter", docs, "--query-file", queryFile)
	require.NoError(t, err)
	assert.Contains(t, out, `"city":"NYC"`)
}

func TestMatchExitCodes(t *testing.T) {
	doc := writeFile(t, "doc.yaml", "city: NYC\nage: 30\n")

	// Match: no error.
	out, _, err := execute(t, "match", doc, "--query", `{city: "NYC"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "match")

	// No match: exit code 1.
	_, _, err = execute(t, "match", doc, "--query", `{city: "SF"}`)
	require.Error(t, err)
	assert.Equal(t, ExitNoMatch, GetExitCode(err))

	// Compile error: exit code 2.
	_, _, err = execute(t, "match", doc, "--query", `{city: {$bogus: 1}}`)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMatchJSON(t *testing.T) {
	doc := writeFile(t, "doc.yaml", "city: NYC\n")

	out, _, err := execute(t, "match", doc, "--format", "json", "--query", `{city: "NYC"}`)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["matched"])
}

func TestCountText(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	out, _, err := execute(t, "count", docs, "--query", `{city: "NYC"}`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestInvalidFormatRejected(t *testing.T) {
	docs := writeFile(t, "people.yaml", peopleYAML)

	_, _, err := execute(t, "count", docs, "--format", "xml", "--query", `{city: "NYC"}`)
	require.Error(t, err)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitNoMatch, GetExitCode(NewExitError(ExitNoMatch, "no match")))
	assert.Equal(t, ExitCommandError, GetExitCode(assert.AnError))
}
