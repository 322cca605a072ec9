package youtube

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saegey/pvr-tools/config"
	"github.com/saegey/pvr-tools/internal/domain"
)

const instagramInstruction = "You are an expert social copywriter for a vinyl DJ channel. " +
	"Using only the DATA provided, write an Instagram post promoting the YouTube episode. " +
	"Do not invent tracks or artists. Respect copyright and avoid clickbait."

const instagramConstraints = "Output Format (MUST FOLLOW EXACTLY):\n" +
	"CAPTION:\n" +
	"<A single caption block, 1-4 short paragraphs, <= 2200 characters>\n\n" +
	"HASHTAGS:\n" +
	"<A single line of space-separated hashtags, 6-14 tags, each starting with #>\n\n"

const instagramGuidance = "Tone: musical, warm, slightly poetic; use 1-2 emojis maximum.\n" +
	"Start the caption by naming the host(s) (DJ names) in the opening sentence.\n" +
	"Do NOT include clickable URLs in the caption; instead instruct readers that the link is in the bio.\n" +
	"Prefer style and era cues (e.g., ‘Afrobeat, Highlife’) in the opening sentence.\n"

// InstagramPrompt renders a caption-writing prompt with the post's
// front matter and full tracklist inlined as a DATA block.
func InstagramPrompt(channel config.ChannelConfig, post *domain.Post) string {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		title = "Untitled Set"
	}

	hosts := post.HostNames()
	styles := post.StyleList(channel.DefaultStyles)

	lines := []string{"title: " + title}
	if len(hosts) > 0 {
		lines = append(lines, "hosts: "+strings.Join(hosts, ", "))
	}
	if len(styles) > 0 {
		lines = append(lines, "styles: "+strings.Join(styles, ", "))
	}
	if post.YouTubeID != "" {
		lines = append(lines, "youtube: "+post.YouTubeID)
	}

	lines = append(lines, "", "tracklist:")
	for i, track := range post.Tracklist {
		lines = append(lines, fmt.Sprintf("%d. %s — %s (%s) [%ss]",
			i+1, track.Title, track.Artist, track.Year, durationLabel(track.Duration)))
	}

	return strings.Join([]string{
		instagramInstruction,
		instagramConstraints,
		instagramGuidance,
		"DATA:",
		strings.Join(lines, "\n"),
	}, "\n\n")
}

// durationLabel renders a duration as the data carries it, blank when
// zero or absent.
func durationLabel(d domain.Seconds) string {
	if d == 0 {
		return ""
	}
	return strconv.FormatFloat(float64(d), 'f', -1, 64)
}
