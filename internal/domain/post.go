// Package domain holds the episode post and tracklist model shared by
// the command-line tools.
package domain

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Post is the front matter of one show episode. Fields are best-effort:
// none are required, and unknown keys in the source are ignored.
type Post struct {
	Title     string     `yaml:"title"`
	Slug      string     `yaml:"slug"`
	Host      StringList `yaml:"host"`
	Hosts     StringList `yaml:"hosts"`
	Tags      StringList `yaml:"tags"`
	Styles    StringList `yaml:"styles"`
	Genres    StringList `yaml:"genres"`
	YouTubeID string     `yaml:"youtubeId"`
	Tracklist Tracklist  `yaml:"tracklist"`
}

// HostNames returns the display names of the episode hosts, preferring
// the singular host field over hosts.
func (p *Post) HostNames() []string {
	if len(p.Host) > 0 {
		return p.Host
	}
	return p.Hosts
}

// StyleList returns the first non-empty of tags, styles, or genres,
// falling back to the given defaults.
func (p *Post) StyleList(fallback []string) []string {
	for _, list := range []StringList{p.Tags, p.Styles, p.Genres} {
		if len(list) > 0 {
			return list
		}
	}
	return fallback
}

// EffectiveSlug returns the slug field, deriving one from the title
// when it is empty.
func (p *Post) EffectiveSlug() string {
	if p.Slug != "" {
		return p.Slug
	}
	return Slugify(p.Title)
}

// StringList is a list field that source documents write either as a
// YAML sequence or as a single comma-joined string.
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	*l = nil
	switch value.Kind {
	case yaml.SequenceNode:
		out := make(StringList, 0, len(value.Content))
		for _, item := range value.Content {
			out = append(out, item.Value)
		}
		*l = out
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		for _, part := range strings.Split(value.Value, ",") {
			if name := strings.TrimSpace(part); name != "" {
				*l = append(*l, name)
			}
		}
	}
	return nil
}

var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// Slugify lowercases s and reduces it to hyphen-separated words,
// falling back to "episode" when nothing remains.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "episode"
	}
	return s
}
