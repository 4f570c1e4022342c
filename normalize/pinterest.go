package normalize

import (
	"strings"

	"github.com/preniv-cli/preniv/media"
)

// Pinterest classifies each media_urls entry and selects the single default
// download by quality preference: "original" wins, then "large", then the
// first entry. Classification precedence per entry: the declared type field,
// then a ".gif" substring in the URL, then image.
func Pinterest(data any, _ APIVariant) media.Media {
	raw, ok := AsRaw(data)
	if !ok {
		return media.Media{}
	}

	m := media.Media{
		Title:  strings.TrimSpace(raw.StrOr("title", "")),
		Author: raw.StrOr("author", ""),
	}

	entries, _ := raw.Arr("media_urls")
	for _, entry := range entries {
		r, ok := AsRaw(entry)
		if !ok {
			continue
		}
		url := r.StrOr("url", "")
		if url == "" {
			continue
		}

		t, format := pinterestKind(r.StrOr("type", ""), url)
		m.Items = append(m.Items, media.Item{
			URL:     url,
			Type:    t,
			Quality: r.StrOr("quality", ""),
			Format:  format,
		})
	}

	if def, ok := pinterestDefault(m.Items); ok {
		m.Downloads = append(m.Downloads, media.Variant{
			URL:     def.URL,
			Quality: def.Quality,
			Type:    def.Type,
			Format:  def.Format,
		})
	}

	return m
}

// pinterestKind resolves the media type and file format for one entry.
func pinterestKind(declared, url string) (media.Type, string) {
	switch declared {
	case "video":
		return media.TypeVideo, "mp4"
	case "gif":
		return media.TypeImage, "gif"
	case "image":
		return media.TypeImage, "jpg"
	}
	if strings.Contains(url, ".gif") {
		return media.TypeImage, "gif"
	}
	return media.TypeImage, "jpg"
}

// pinterestDefault applies the quality preference order original > large > first.
func pinterestDefault(items []media.Item) (media.Item, bool) {
	for _, quality := range []string{"original", "large"} {
		for _, item := range items {
			if item.Quality == quality {
				return item, true
			}
		}
	}
	if len(items) > 0 {
		return items[0], true
	}
	return media.Item{}, false
}
