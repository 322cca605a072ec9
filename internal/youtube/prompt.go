package youtube

import (
	"fmt"
	"strings"

	"github.com/saegey/pvr-tools/config"
	"github.com/saegey/pvr-tools/internal/domain"
)

const promptTemplate = `You are an expert YouTube copywriter for a vinyl DJ channel called "%s".
Write a compelling YouTube TITLE and DESCRIPTION for a DJ vinyl-mix video, using the data below.

# Content Data
- Post Title: %s
- Show URL: %s
- Channel: %s
- Channel IG: %s
- Mixcloud: %s
- Hosts (DJ names): %s
- Host Instagram mapping (use if present; otherwise omit a host line):
%s
- Styles/Tags (prioritize for SEO + vibe): %s
- Tracklist (use to infer era/regions/subgenres; do not invent):
%s
- Year span from tracklist: %s
- Notable artists: %s

# Title Requirements
- 70–100 characters when possible.
- Include “All-Vinyl” (or “100%% Vinyl”) and 1–2 key styles (e.g., “Latin Jazz, Salsa”).
- Append “| %s”.
- No clickbait or ALL CAPS; polished and musical.
 - When natural, include a region or era cue inferred from the tracklist (e.g., “West Africa”, “70s Highlife”).

# Description Requirements
- Open with a refined, mood-forward paragraph (sophisticated but rhythmic); mention that it’s all-vinyl and explicitly name the host(s) in the opening sentence.
- Include these link blocks (exact labels):
  🔗 Learn more about this episode, full tracklist, and %s:
  %s

  📸 Follow us on Instagram:
  %s
%s
  📻 Stream more vinyl sessions on Mixcloud:
  %s

- Add a short “Featured styles” line using %s plus any clear styles you infer from the tracklist; end with “All vinyl.”
- Include a brief, professional copyright notice.
- Finish with 8–12 relevant hashtags (mix of general and style-specific; no duplicates).

# Tone & SEO
- Sophisticated, musical, and cinematic; no hype spam.
- Naturally include 2–3 primary styles in the body copy.
- Avoid repeating the title verbatim in the first line of the description.

# Constraints
- Do not fabricate tracks, artists, or years. Use only what’s listed in the tracklist.

# Output Format (MUST follow exactly)
TITLE:
<one line title>

DESCRIPTION:
<multi-line description, including the blocks and hashtags>
`

// Prompt renders the YouTube title/description copywriting prompt for a
// post.
func Prompt(channel config.ChannelConfig, post *domain.Post) string {
	title := strings.TrimSpace(post.Title)
	if title == "" {
		title = "Untitled Set"
	}

	hosts := post.HostNames()
	hostsLine := strings.Join(hosts, ", ")
	if hostsLine == "" {
		hostsLine = "(none listed)"
	}

	notable := strings.Join(post.Tracklist.NotableArtists(8), ", ")
	if notable == "" {
		notable = "(none)"
	}

	showURL := channel.ShowURL(post.EffectiveSlug())
	stylesLine := strings.Join(post.StyleList(channel.DefaultStyles), ", ")

	return fmt.Sprintf(promptTemplate,
		channel.Name,
		title,
		showURL,
		channel.Name,
		channel.InstagramURL,
		channel.MixcloudURL,
		hostsLine,
		hostMapping(channel, hosts),
		stylesLine,
		TracklistBlock(post.Tracklist),
		post.Tracklist.YearSpan(),
		notable,
		channel.Name,
		channel.Name,
		showURL,
		channel.InstagramURL,
		followBlock(channel, hosts),
		channel.MixcloudURL,
		stylesLine,
	)
}

// TracklistBlock renders the tracklist as bullets of the form
// "- Artist – Title (year) — album", omitting empty fields, or "(none)"
// when no track renders anything.
func TracklistBlock(tracks domain.Tracklist) string {
	var lines []string
	for _, track := range tracks {
		title := strings.TrimSpace(track.Title)
		artist := strings.TrimSpace(track.Artist)
		year := strings.TrimSpace(track.Year.String())
		album := strings.TrimSpace(track.Album)

		var parts []string
		switch {
		case artist != "" && title != "":
			parts = append(parts, artist+" – "+title)
		case title != "":
			parts = append(parts, title)
		}
		if year != "" {
			parts = append(parts, "("+year+")")
		}
		if album != "" {
			parts = append(parts, "— "+album)
		}
		if len(parts) == 0 {
			continue
		}
		lines = append(lines, "- "+strings.Join(parts, " "))
	}
	if len(lines) == 0 {
		return "(none)"
	}
	return strings.Join(lines, "\n")
}

// hostMapping lists each host with their Instagram URL, or the channel
// account when no hosts are listed.
func hostMapping(channel config.ChannelConfig, hosts []string) string {
	if len(hosts) == 0 {
		return "Channel IG: " + channel.InstagramURL
	}
	lines := make([]string, len(hosts))
	for i, host := range hosts {
		lines[i] = fmt.Sprintf("%s: https://instagram.com/%s", host, channel.IGHandle(host))
	}
	return strings.Join(lines, "\n")
}

// followBlock renders the per-host follow lines of the description, or
// an empty string when no hosts are listed.
func followBlock(channel config.ChannelConfig, hosts []string) string {
	if len(hosts) == 0 {
		return ""
	}
	lines := make([]string, len(hosts))
	for i, host := range hosts {
		lines[i] = fmt.Sprintf("  🎛️ Follow %s on Instagram:\n  https://instagram.com/%s", host, channel.IGHandle(host))
	}
	return strings.Join(lines, "\n")
}
