package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Stdin(t *testing.T) {
	*file = ""
	var out bytes.Buffer

	err := run(strings.NewReader("Mercury Venus Mars Jupiter Saturn Uranus\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "walk: [Jupiter Mars Mercury Saturn Uranus Venus]\n")
	assert.Contains(t, out.String(), "iterator: Jupiter Mars Mercury Saturn Uranus Venus\n")
	assert.Contains(t, out.String(), "tree:\nMercury\n├─L─Mars\n")
}

func TestRun_NoTrailingNewline(t *testing.T) {
	*file = ""
	var out bytes.Buffer

	require.NoError(t, run(strings.NewReader("b a"), &out))
	assert.Contains(t, out.String(), "walk: [a b]\n")
}

func TestRun_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- mecha\n- Jaeger\n- robot\n- droid\n"), 0o600))

	*file = path
	defer func() { *file = "" }()

	var out bytes.Buffer
	require.NoError(t, run(strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "walk: [Jaeger droid mecha robot]\n")
}

func TestRun_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [1, 2\n"), 0o600))

	*file = path
	defer func() { *file = "" }()

	err := run(strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "parsing key file")

	*file = filepath.Join(dir, "missing.yaml")
	err = run(strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
