// Package episode builds the blog-post generation prompt from an
// episode JSON document.
package episode

import (
	"fmt"

	"github.com/saegey/pvr-tools/internal/jsonval"
)

// defaultDropKeys are removed from every episode document before it is
// embedded in a prompt. They carry machine-learning payloads that only
// waste model context.
var defaultDropKeys = []string{
	"embedding", "embeddings", "vector", "vectors",
	"audio_embedding", "ml", "ai_meta", "openai_meta",
	"_meta", "_internal",
}

// DropSet builds the drop-set for one invocation: the built-in keys
// merged with any extras from config or flags.
func DropSet(extra ...string) jsonval.DropSet {
	keys := make([]string, 0, len(defaultDropKeys)+len(extra))
	keys = append(keys, defaultDropKeys...)
	keys = append(keys, extra...)
	return jsonval.NewDropSet(keys...)
}

const promptTemplate = `You are generating a new blog post in my standard YAML + markdown format for %s.

### INPUT DATA
Episode JSON:
%s

### OUTPUT FORMAT
1) Start with YAML front matter (between ` + "`---`" + `), including:
   - title
   - description
   - episode
   - date
   - tags
   - slug
   - coverImage
   - host
   - youtubeId
   - template
   - tracklist (array of objects with title and artist, same order as input)

2) After the YAML, write:
   - H1 with the episode title
   - 1–2 paragraphs expanding the description (vibe, styles, atmosphere, notable transitions)
   - <ResponsiveYouTube videoId={"<YOUTUBE ID>"} />
   - "Tracklist Deep Dive" section
   - For each track, in order:
     - **<Artist> – <Title>**
       1–2 sentence commentary (texture, groove, instrumentation, energy/mood shift)
   - End with a short wrap‑up line.

3) Style:
   - Warm, descriptive, music‑focused; concise but vivid.
   - Avoid inventing artists/tracks. Use exactly what’s in the input.
   - Keep commentary specific (mention textures/grooves/mood shifts/instrumental details).

4) Do NOT include any extra boilerplate besides the YAML front matter and the markdown body.

Return ONLY the YAML front matter and markdown body (no explanations).
`

// Prompt renders the blog-post prompt for the channel with the episode
// JSON embedded, compact unless pretty is set.
func Prompt(channelName string, doc jsonval.Value, pretty bool) (string, error) {
	encode := jsonval.Marshal
	if pretty {
		encode = jsonval.MarshalIndent
	}
	data, err := encode(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode episode JSON: %w", err)
	}
	return fmt.Sprintf(promptTemplate, channelName, data), nil
}
