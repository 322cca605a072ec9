// Package youtube renders the YouTube-facing artifacts of an episode: a
// copywriting prompt, a timestamped tracklist comment, and an Instagram
// caption prompt.
package youtube

import (
	"fmt"
	"strings"

	"github.com/saegey/pvr-tools/internal/domain"
)

// FormatTimestamp renders whole seconds as M:SS below one hour and
// H:MM:SS from one hour up. Negative values clamp to zero.
func FormatTimestamp(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// CommentLines renders one line per track of the form
//
//	0:00 *Title* – Artist
//
// where the label is the track's start time: the cumulative sum of the
// preceding durations, truncated to whole seconds. Tracks with neither
// title nor artist are skipped and do not advance the clock; a missing
// duration counts as zero, so the next line repeats the timestamp.
func CommentLines(tracks domain.Tracklist) []string {
	var lines []string
	elapsed := 0
	for _, track := range tracks {
		title := strings.TrimSpace(track.Title)
		artist := strings.TrimSpace(track.Artist)

		var display []string
		if title != "" {
			display = append(display, "*"+title+"*")
		}
		if artist != "" {
			if len(display) > 0 {
				display = append(display, "–")
			}
			display = append(display, artist)
		}
		if len(display) == 0 {
			continue
		}
		lines = append(lines, FormatTimestamp(elapsed)+" "+strings.Join(display, " "))

		elapsed += track.Duration.Whole()
	}
	return lines
}

// Comment joins CommentLines into a pasteable YouTube comment. An empty
// or display-less tracklist yields an empty string, which is valid
// output rather than an error.
func Comment(tracks domain.Tracklist) string {
	return strings.Join(CommentLines(tracks), "\n")
}
