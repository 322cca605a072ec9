package domain

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Track is an individual entry of an episode tracklist.
type Track struct {
	Title    string  `yaml:"title"`
	Artist   string  `yaml:"artist"`
	Album    string  `yaml:"album"`
	Year     Year    `yaml:"year"`
	Duration Seconds `yaml:"duration_seconds"`
}

// Tracklist is the ordered sequence of tracks in one episode. Sequence
// entries that are not mappings are skipped when decoding; a
// non-sequence node decodes as empty.
type Tracklist []Track

func (t *Tracklist) UnmarshalYAML(value *yaml.Node) error {
	*t = nil
	if value.Kind != yaml.SequenceNode {
		return nil
	}
	out := make(Tracklist, 0, len(value.Content))
	for _, item := range value.Content {
		if item.Kind != yaml.MappingNode {
			continue
		}
		var track Track
		if err := item.Decode(&track); err != nil {
			return err
		}
		out = append(out, track)
	}
	*t = out
	return nil
}

// Seconds is a track duration. Front matter carries durations as
// integers, floats, or numeric strings; anything else decodes as zero.
type Seconds float64

var numericSeconds = regexp.MustCompile(`^\s*\d+(\.\d+)?\s*$`)

func (s *Seconds) UnmarshalYAML(value *yaml.Node) error {
	*s = 0
	if value.Kind != yaml.ScalarNode {
		return nil
	}
	switch value.Tag {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(value.Value, 64)
		if err == nil {
			*s = Seconds(f)
		}
	case "!!str":
		if numericSeconds.MatchString(value.Value) {
			f, err := strconv.ParseFloat(strings.TrimSpace(value.Value), 64)
			if err == nil {
				*s = Seconds(f)
			}
		}
	}
	return nil
}

// Whole returns the duration truncated to whole seconds.
func (s Seconds) Whole() int {
	return int(s)
}

// Year is a release year, carried as a number or a string in source
// data.
type Year string

func (y *Year) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.Tag == "!!null" {
		*y = ""
		return nil
	}
	*y = Year(strings.TrimSpace(value.Value))
	return nil
}

func (y Year) String() string {
	return string(y)
}

// Int returns the year as an integer when it is numeric.
func (y Year) Int() (int, bool) {
	n, err := strconv.Atoi(string(y))
	if err != nil {
		return 0, false
	}
	return n, true
}

// YearSpan summarizes the release years across the tracklist:
// "min–max" for multiple distinct years, the year itself for one, and
// "(unknown)" when no track carries a numeric year.
func (t Tracklist) YearSpan() string {
	lo, hi := 0, 0
	found := false
	for _, track := range t {
		y, ok := track.Year.Int()
		if !ok {
			continue
		}
		if !found {
			lo, hi = y, y
			found = true
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	if !found {
		return "(unknown)"
	}
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return strconv.Itoa(lo) + "–" + strconv.Itoa(hi)
}

var artistSeparators = regexp.MustCompile(`\s*[/,]\s*`)

// NotableArtists collects distinct artist names across the tracklist in
// order of first appearance, splitting collaboration credits on "/" and
// ",", up to limit names.
func (t Tracklist) NotableArtists(limit int) []string {
	var seen []string
	for _, track := range t {
		artist := strings.TrimSpace(track.Artist)
		if artist == "" {
			continue
		}
		for _, part := range artistSeparators.Split(artist, -1) {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			if !contains(seen, name) {
				seen = append(seen, name)
			}
			if len(seen) >= limit {
				return seen
			}
		}
	}
	return seen
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
