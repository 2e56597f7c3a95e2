package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stigoleg/clocktime/internal/cli"
)

func TestGenManListsFlags(t *testing.T) {
	var page bytes.Buffer
	require.NoError(t, genMan(cli.NewRootCommand("docs"), &page))

	out := page.String()
	assert.Contains(t, out, `.TH "CLOCKTIME" "1"`)
	assert.Contains(t, out, ".SH OPTIONS")
	for _, flag := range []string{"format", "interactive", "color", "debug", "version", "help"} {
		assert.Contains(t, out, flag)
	}
}

func TestWriteMan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeMan(cli.NewRootCommand("docs"), dir))

	data, err := os.ReadFile(filepath.Join(dir, "clocktime.1"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `.TH "CLOCKTIME"`)
}

func TestWriteCompletions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeCompletions(cli.NewRootCommand("docs"), dir))

	for _, name := range []string{"clocktime.bash", "_clocktime", "clocktime.fish"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "clocktime", name)
	}
}
