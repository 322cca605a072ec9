package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saegey/pvr-tools/internal/frontmatter"
)

const postFixture = `---
title: Afronova
slug: afronova
host:
  - Saegey
tags:
  - highlife
tracklist:
  - title: Get Away
    artist: Umoja I-nity
    duration_seconds: 45
  - title: Next
    artist: X
    duration_seconds: 75
---

# Afronova

Body content.
`

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

func writePost(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "post.mdx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunPrompt(t *testing.T) {
	out, err := runCommand(t, writePost(t, postFixture))
	require.NoError(t, err)

	assert.Contains(t, out, `You are an expert YouTube copywriter for a vinyl DJ channel called "Public Vinyl Radio".`)
	assert.Contains(t, out, "- Post Title: Afronova\n")
	assert.Contains(t, out, "- Show URL: https://publicvinylradio.com/shows/afronova/\n")
	assert.Contains(t, out, "- Umoja I-nity – Get Away\n")
}

func TestRunComment(t *testing.T) {
	out, err := runCommand(t, writePost(t, postFixture), "--comment")
	require.NoError(t, err)

	assert.Equal(t, "0:00 *Get Away* – Umoja I-nity\n0:45 *Next* – X\n", out)
}

func TestRunCommentEmptyTracklist(t *testing.T) {
	post := "---\ntitle: Afronova\ntracklist: []\n---\nbody\n"

	out, err := runCommand(t, writePost(t, post), "--comment")
	require.NoError(t, err)

	assert.Empty(t, out)
}

func TestRunCommentStrayTracklistEntry(t *testing.T) {
	post := `---
title: Afronova
tracklist:
  - title: Get Away
    artist: Umoja I-nity
    duration_seconds: 45
  - stray note
  - title: Next
    artist: X
    duration_seconds: 75
---
body
`

	out, err := runCommand(t, writePost(t, post), "--comment")
	require.NoError(t, err)

	assert.Equal(t, "0:00 *Get Away* – Umoja I-nity\n0:45 *Next* – X\n", out)
}

func TestRunInstagram(t *testing.T) {
	out, err := runCommand(t, writePost(t, postFixture), "--instagram")
	require.NoError(t, err)

	assert.Contains(t, out, "You are an expert social copywriter for a vinyl DJ channel.")
	assert.Contains(t, out, "CAPTION:\n")
	assert.Contains(t, out, "title: Afronova\n")
	assert.Contains(t, out, "1. Get Away — Umoja I-nity () [45s]")
}

func TestRunBareYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontmatter.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Bare\nhost: Saegey\n"), 0644))

	out, err := runCommand(t, path)
	require.NoError(t, err)

	assert.Contains(t, out, "- Post Title: Bare\n")
}

func TestRunUnclosedFence(t *testing.T) {
	_, err := runCommand(t, writePost(t, "---\ntitle: Unclosed\nbody keeps going\n"))

	assert.ErrorIs(t, err, frontmatter.ErrNoClosingDelimiter)
}

func TestRunMissingFile(t *testing.T) {
	_, err := runCommand(t, filepath.Join(t.TempDir(), "missing.mdx"))

	assert.ErrorContains(t, err, "failed to read post")
}
