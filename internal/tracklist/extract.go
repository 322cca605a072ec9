// Package tracklist projects episode JSON documents onto flat track
// tables and renders them as CSV, JSONL, YAML, or an aligned terminal
// table.
package tracklist

import (
	"log/slog"
	"sort"

	"github.com/saegey/pvr-tools/internal/jsonval"
)

// DefaultFields is the export field order used when no explicit field
// list is chosen.
var DefaultFields = []string{
	// core
	"title", "artist", "album", "year",
	// context / curation
	"local_tags", "notes",
	// timing / key / bpm
	"duration", "duration_seconds", "key", "bpm",
	// positions / ids
	"track_id", "position", "id",
	// links / art
	"soundcloud_url", "discogs_url", "apple_music_url", "spotify_url", "youtube_url",
	"album_thumbnail",
	// misc
	"apple_music_persistent_id", "local_audio_url", "star_rating", "username",
	// collections
	"styles", "genres",
}

// blacklistKeys are never auto-included by AllFields: they carry large
// vector payloads.
var blacklistKeys = map[string]struct{}{
	"embedding": {},
}

// Records returns the track-like objects of a decoded JSON document: a
// top-level array yields its objects, an object with a "tracks" array
// yields those, and any other object yields itself.
func Records(doc jsonval.Value) []*jsonval.Object {
	switch v := doc.(type) {
	case jsonval.Array:
		return objectsOf(v)
	case *jsonval.Object:
		if tracks, ok := v.Get("tracks"); ok {
			if arr, ok := tracks.(jsonval.Array); ok {
				return objectsOf(arr)
			}
		}
		return []*jsonval.Object{v}
	default:
		return nil
	}
}

func objectsOf(arr jsonval.Array) []*jsonval.Object {
	var records []*jsonval.Object
	for _, item := range arr {
		if obj, ok := item.(*jsonval.Object); ok {
			records = append(records, obj)
		}
	}
	return records
}

// AllFields infers the union of keys across records, keeping a stable
// order: DefaultFields first where present, the rest sorted, and
// blacklisted keys omitted.
func AllFields(records []*jsonval.Object) []string {
	seen := make(map[string]struct{})
	for _, record := range records {
		for _, m := range record.Members {
			if _, skip := blacklistKeys[m.Key]; skip {
				continue
			}
			seen[m.Key] = struct{}{}
		}
	}

	var ordered []string
	for _, f := range DefaultFields {
		if _, ok := seen[f]; ok {
			ordered = append(ordered, f)
			delete(seen, f)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	ordered = append(ordered, rest...)

	slog.Debug("inferred export fields", "count", len(ordered))
	return ordered
}

// Export is a set of records projected onto a fixed field order.
type Export struct {
	Fields []string
	Rows   [][]jsonval.Value
}

// Project builds the export table for records. Missing fields and JSON
// nulls project as empty strings.
func Project(records []*jsonval.Object, fields []string) Export {
	rows := make([][]jsonval.Value, len(records))
	for i, record := range records {
		row := make([]jsonval.Value, len(fields))
		for j, field := range fields {
			v, ok := record.Get(field)
			if !ok || v == nil {
				v = ""
			}
			row[j] = v
		}
		rows[i] = row
	}
	return Export{Fields: fields, Rows: rows}
}
