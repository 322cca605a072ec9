// Package frontmatter extracts the YAML metadata block at the top of an
// MDX or Markdown document.
package frontmatter

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Extract parses the front matter of text into out. If the first
// non-blank line is a "---" fence, the lines up to the matching closing
// fence are parsed as a YAML mapping; an empty fenced block is a valid
// empty record. Without an opening fence the whole text is parsed
// instead, and must itself be a mapping.
//
// Returns ErrNoClosingDelimiter when an opening fence is never closed
// and ErrNotMapping when the parsed document is not a mapping.
func Extract(text string, out any) error {
	block, fenced, err := locateBlock(text)
	if err != nil {
		return err
	}
	slog.Debug("front matter located", "fenced", fenced, "bytes", len(block))

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return fmt.Errorf("failed to parse front matter: %w", err)
	}
	if len(doc.Content) == 0 {
		if fenced {
			return nil
		}
		return ErrNotMapping
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return ErrNotMapping
	}
	if err := root.Decode(out); err != nil {
		return fmt.Errorf("failed to decode front matter: %w", err)
	}
	return nil
}

// locateBlock returns the YAML text to parse and whether it came from a
// fenced block.
func locateBlock(text string) (string, bool, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))

	first := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		first = line
		break
	}
	if first != delimiter {
		// No opening fence: the whole document is the candidate.
		return text, false, nil
	}

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == delimiter {
			return strings.Join(lines, "\n"), true, nil
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("failed to scan front matter: %w", err)
	}
	return "", false, ErrNoClosingDelimiter
}
