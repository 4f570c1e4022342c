package normalize

import (
	"strings"

	"github.com/preniv-cli/preniv/media"
)

// Instagram lifts the upstream media list into carousel items. Entries are
// either bare URL strings or {url, thumbnail} objects.
func Instagram(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{Thumbnail: raw.StrOr("thumb", "")}

	entries, ok := raw.Arr("media")
	if !ok {
		// Historical shape kept the list under "urls".
		entries, _ = raw.Arr("urls")
	}

	for _, entry := range entries {
		switch e := entry.(type) {
		case string:
			m.Items = append(m.Items, media.Item{URL: e})
		case map[string]any:
			r := Raw(e)
			url := r.StrOr("url", "")
			if url == "" {
				continue
			}
			m.Items = append(m.Items, media.Item{URL: url, Thumbnail: r.StrOr("thumbnail", "")})
		}
	}

	return m
}

// Facebook maps the upstream quality list (an array of {url, resolution}
// records) into the flat download list.
func Facebook(data any, _ APIVariant) media.Media {
	entries, ok := data.([]any)
	if !ok {
		// Some responses nest the list under data.downloads.
		raw, isObj := AsRaw(data)
		if !isObj {
			return media.Media{}
		}
		entries, ok = raw.Arr("downloads")
		if !ok {
			return media.Media{Title: raw.StrOr("title", ""), Thumbnail: raw.StrOr("thumbnail", "")}
		}
	}

	var m media.Media
	for _, entry := range entries {
		r, ok := AsRaw(entry)
		if !ok {
			continue
		}
		url := r.StrOr("url", "")
		if url == "" {
			continue
		}
		m.Downloads = append(m.Downloads, media.Variant{
			URL:        url,
			Quality:    r.StrOr("quality", ""),
			Resolution: r.StrOr("resolution", ""),
			Type:       media.TypeVideo,
			Format:     media.ExtFromURL(url, "mp4"),
		})
	}
	return m
}

// YouTube buckets the upstream formats list by its declared type
// (video_with_audio, video, audio). Upstream durations arrive in seconds.
func YouTube(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{
		Title:     raw.StrOr("title", ""),
		Author:    FirstString(raw.StrOr("author", ""), raw.StrOr("channel", "")),
		Thumbnail: raw.StrOr("thumbnail", ""),
	}
	if d, ok := raw.Num("duration"); ok {
		m.Duration = int(d) * 1000
	}

	formats, _ := raw.Arr("formats")
	for _, entry := range formats {
		r, ok := AsRaw(entry)
		if !ok {
			continue
		}
		url := r.StrOr("url", "")
		if url == "" {
			continue
		}

		v := media.Variant{
			URL:     url,
			Quality: r.StrOr("quality", ""),
			Format:  strings.ToLower(r.StrOr("extension", "")),
		}

		switch r.StrOr("type", "") {
		case "audio":
			v.Type = media.TypeAudio
			if v.Format == "" {
				v.Format = "mp3"
			}
			m.Buckets.Audio = append(m.Buckets.Audio, v)
		default:
			// video_with_audio and video both land in the video bucket;
			// the link builder dedupes by resolution.
			v.Type = media.TypeVideo
			if v.Format == "" {
				v.Format = "mp4"
			}
			m.Buckets.Video = append(m.Buckets.Video, v)
		}
	}

	return m
}

// Spotify maps one track payload to a single audio download plus metadata.
// The fallback literals are part of the contract and reproduced exactly.
func Spotify(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{
		Title:     raw.StrOr("title", "No title"),
		Author:    raw.StrOr("artist", "Unknown artist"),
		Thumbnail: FirstString(raw.StrOr("image", ""), raw.StrOr("thumbnail", "")),
	}
	if d, ok := raw.Num("duration"); ok {
		m.Duration = int(d)
	}

	if url := raw.StrOr("download", ""); url != "" {
		m.Downloads = append(m.Downloads, media.Variant{
			URL:     url,
			Quality: "MP3",
			Type:    media.TypeAudio,
			Format:  "mp3",
		})
	}

	return m
}

// Kuaishou maps the post payload into a video variant and/or atlas image items.
func Kuaishou(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{Title: strings.TrimSpace(raw.StrOr("title", ""))}

	original, ok := raw.Obj("original")
	if !ok {
		return m
	}

	if raw.Truthy("hasVideo") {
		if url := original.StrOr("videoUrl", ""); url != "" {
			m.Buckets.Video = append(m.Buckets.Video, media.Variant{
				URL:     url,
				Quality: "Original Quality",
				Type:    media.TypeVideo,
				Format:  "mp4",
			})
		}
	}

	if raw.Truthy("hasAtlas") {
		atlas, _ := original.Arr("atlas")
		for _, entry := range atlas {
			if url, ok := entry.(string); ok && url != "" {
				m.Items = append(m.Items, media.Item{URL: url, Type: media.TypeImage, Format: "jpg"})
			}
		}
	}

	return m
}
