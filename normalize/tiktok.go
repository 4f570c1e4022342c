package normalize

import (
	"strings"

	"github.com/preniv-cli/preniv/media"
)

// TikTok reconciles the two observed upstream shapes into the bucketed form:
//
//   - current: downloads is an object of per-type lists {video:[], audio:[], image:[]}
//   - legacy:  downloads is a flat array of {url, text} records
//
// Which shape is present is detected structurally (presence of the video or
// audio keys), not from the variant hint - upstream shape is the only
// reliable signal. The result always carries the bucketed shape.
func TikTok(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{
		Title:     raw.StrOr("title", ""),
		Author:    FirstString(raw.StrOr("creator", ""), raw.StrOr("author", "")),
		Thumbnail: raw.StrOr("thumbnail", ""),
	}

	if meta, ok := raw.Obj("metadata"); ok {
		m.AudioTitle = meta.StrOr("audio_title", "")
	}
	if d, ok := raw.Num("duration"); ok {
		m.Duration = int(d)
	}

	switch downloads := raw["downloads"].(type) {
	case map[string]any:
		buckets := Raw(downloads)
		_, hasVideo := buckets["video"]
		_, hasAudio := buckets["audio"]
		if !hasVideo && !hasAudio {
			// Neither bucket key present: unrecognized object shape, fail closed.
			return m
		}
		m.Buckets.Video = tiktokVariants(buckets["video"], media.TypeVideo)
		m.Buckets.Audio = tiktokVariants(buckets["audio"], media.TypeAudio)
		m.Buckets.Image = tiktokVariants(buckets["image"], media.TypeImage)
	case []any:
		for _, entry := range downloads {
			url, label := tiktokEntry(entry)
			if url == "" {
				continue
			}
			t := tiktokTypeFromLabel(label)
			v := media.Variant{URL: url, Quality: label, Type: t, Format: media.FormatForType(t)}
			switch t {
			case media.TypeAudio:
				m.Buckets.Audio = append(m.Buckets.Audio, v)
			case media.TypeImage:
				m.Buckets.Image = append(m.Buckets.Image, v)
			default:
				m.Buckets.Video = append(m.Buckets.Video, v)
			}
		}
	}

	return m
}

// tiktokVariants lifts one bucket's entries, accepting both bare URL strings
// and {url} objects.
func tiktokVariants(v any, t media.Type) []media.Variant {
	entries, ok := v.([]any)
	if !ok {
		return nil
	}

	var out []media.Variant
	for _, entry := range entries {
		url, label := tiktokEntry(entry)
		if url == "" {
			continue
		}
		out = append(out, media.Variant{URL: url, Quality: label, Type: t, Format: media.FormatForType(t)})
	}
	return out
}

// tiktokEntry extracts the URL and optional label from a bucket entry.
func tiktokEntry(entry any) (url, label string) {
	switch e := entry.(type) {
	case string:
		return e, ""
	case map[string]any:
		r := Raw(e)
		return r.StrOr("url", ""), r.StrOr("text", "")
	default:
		return "", ""
	}
}

// tiktokTypeFromLabel classifies a legacy flat entry by its display text.
func tiktokTypeFromLabel(label string) media.Type {
	lower := strings.ToLower(label)
	switch {
	case strings.Contains(lower, "mp3"), strings.Contains(lower, "audio"), strings.Contains(lower, "music"):
		return media.TypeAudio
	case strings.Contains(lower, "image"), strings.Contains(lower, "photo"):
		return media.TypeImage
	default:
		return media.TypeVideo
	}
}
