package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/landmarkgrid/internal/cli"
	"github.com/vk/landmarkgrid/internal/testutil"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(out, errOut, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:")
	require.Empty(t, out.String(), "usage must not pollute the document stream")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestRun_InvalidConfigFile(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		assets {
			root = "x"
		// Missing closing brace here
	`
	filePath := filepath.Join(t.TempDir(), "grid.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-config", filePath})

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
	require.Empty(t, out.String())
}

func TestRun_WritesDocumentToStdout(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, testutil.AssetFiles("JinAB.x3d", "JinCD.x3d", "notes.txt"))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := run(out, errOut, []string{"-verify", root})
	require.NoError(t, err, "log output:\n%s", errOut.String())

	doc := out.String()
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, `DEF="shapeContainer"`)
	assert.Contains(t, doc, `DEF="ABChin"`)
	assert.Contains(t, doc, `DEF="CDAllBodyParts"`)
	assert.Equal(t, 2*47*3, strings.Count(doc, "<ROUTE "))
}

func TestRun_WritesFilesFromTOMLConfig(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, testutil.AssetFiles("art/JinAB.x3d"))
	cfgPath := filepath.Join(root, "grid.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[assets]
root = "art"

[layout]
categories = ["Chin", "Nose"]

[output]
format = "json"
`), 0o600))

	docPath := filepath.Join(root, "grid.json")
	manifestPath := filepath.Join(root, "grid.yaml")
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-config", cfgPath, "-o", docPath, "-manifest", manifestPath})
	require.NoError(t, err)
	assert.Empty(t, out.String())

	doc, err := os.ReadFile(docPath)
	require.NoError(t, err)
	assert.Contains(t, string(doc), `"@DEF": "ABNose"`)

	manifest, err := os.ReadFile(manifestPath)
	require.NoError(t, err)
	assert.Contains(t, string(manifest), "sensor: ABAllBodyParts")
}

func TestRun_DuplicateIdentifierFails(t *testing.T) {
	t.Parallel()

	root := testutil.WriteTree(t, testutil.AssetFiles("a/JinAB.x3d", "b/JinAB.x3d"))
	docPath := filepath.Join(t.TempDir(), "grid.x3d")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-o", docPath, root})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ABChin")
	assert.NoFileExists(t, docPath)
}
