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

const episodeFixture = `{"tracks":[
	{"title":"Jazzy","artist":"Willie Colón","year":1973,"styles":["salsa"],"embedding":[0.1,0.2]},
	{"title":"Solo","artist":"Hector Lavoe"}
]}`

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "episode.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunDefaultCSV(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture))
	require.NoError(t, err)

	// Default field order, with blanks for fields the records lack.
	assert.True(t, strings.HasPrefix(out, "title,artist,album,year,local_tags,notes,"), out)
	assert.Contains(t, out, "\nJazzy,Willie Colón,,1973,")
	assert.Contains(t, out, "\nSolo,Hector Lavoe,,,")
}

func TestRunExplicitFields(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture), "--fields", "title, artist")
	require.NoError(t, err)

	assert.Equal(t, "title,artist\nJazzy,Willie Colón\nSolo,Hector Lavoe\n", out)
}

func TestRunAllFields(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture), "--all-fields")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "title,artist,year,styles\n"), out)
	assert.NotContains(t, out, "embedding")
}

func TestRunJSONL(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture),
		"--format", "jsonl", "--fields", "title,artist")
	require.NoError(t, err)

	assert.Equal(t, `{"title":"Jazzy","artist":"Willie Colón"}`+"\n"+
		`{"title":"Solo","artist":"Hector Lavoe"}`+"\n", out)
}

func TestRunYAML(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture),
		"--format", "yaml", "--fields", "title,artist", "--yaml-root-name", "tracks")
	require.NoError(t, err)

	assert.Equal(t, "tracks:\n  - title: Jazzy\n    artist: Willie Colón\n  - title: Solo\n    artist: Hector Lavoe\n", out)
}

func TestRunTable(t *testing.T) {
	out, err := runCommand(t, "-i", writeInput(t, episodeFixture),
		"--format", "table", "--fields", "title,artist")
	require.NoError(t, err)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Willie Colón")
	assert.Contains(t, out, "╭")
}

func TestRunOutputFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "tracks.csv")

	out, err := runCommand(t, "-i", writeInput(t, episodeFixture),
		"-o", outPath, "--fields", "title")
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "title\nJazzy\nSolo\n", string(written))
}

func TestRunUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "-i", writeInput(t, episodeFixture), "--format", "xml")

	assert.ErrorContains(t, err, `unknown output format "xml"`)
}

func TestRunMissingInputFlag(t *testing.T) {
	_, err := runCommand(t)

	assert.ErrorContains(t, err, "input")
}

func TestRunMissingInputFile(t *testing.T) {
	_, err := runCommand(t, "-i", filepath.Join(t.TempDir(), "missing.json"))

	assert.ErrorContains(t, err, "failed to read input file")
}
