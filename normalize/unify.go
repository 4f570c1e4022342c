package normalize

import (
	"fmt"
	"strings"

	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/util"
	"github.com/samber/lo"
)

// youtubeResolutions is the allow-list of renditions exposed to callers;
// anything else upstream offers is dropped.
var youtubeResolutions = [...]string{"360p", "480p", "720p", "1080p"}

// BuildLinks combines a normalizer's output (or the generic extractor's, for
// unmodeled platforms) into the flat unified link list. Link ordering is
// deterministic for a given payload: the first entry is the default choice.
func BuildLinks(platform string, m media.Media, rawData any) media.Result {
	result := media.Result{Platform: platform, Links: []media.Link{}}
	raw, _ := AsRaw(rawData)

	switch platform {
	case "tiktok":
		buildTikTok(&result, m, raw)
	case "instagram":
		buildInstagram(&result, m, raw)
	case "facebook":
		buildFacebook(&result, m, raw)
	case "twitter":
		buildTwitter(&result, rawData, raw)
	case "youtube":
		buildYouTube(&result, m, raw)
	case "spotify":
		buildSpotify(&result, m, raw)
	case "pinterest":
		buildPinterest(&result, m, raw)
	case "kuaishou":
		buildKuaishou(&result, m, raw)
	default:
		buildGeneric(&result, platform, m, rawData, raw)
	}

	// Only syntactically valid absolute http(s) URLs are exposed.
	result.Links = lo.Filter(result.Links, func(link media.Link, _ int) bool {
		return media.IsHTTPURL(link.URL)
	})

	return result
}

func buildTikTok(result *media.Result, m media.Media, raw Raw) {
	result.Title = FirstString(m.Title, raw.StrOr("title", ""))
	result.Thumbnail = FirstString(m.Thumbnail, raw.StrOr("thumbnail", ""))
	result.Author = FirstString(m.Author, raw.StrOr("author", ""))

	for i, v := range m.Buckets.Video {
		quality := "HD (No Watermark)"
		if i > 0 {
			quality = fmt.Sprintf("Video Option %d", i+1)
		}
		result.Links = append(result.Links, media.Link{URL: v.URL, Quality: quality, Type: media.TypeVideo, Format: "mp4"})
	}
	for _, v := range m.Buckets.Audio {
		quality := FirstString(m.AudioTitle, "Audio/Music")
		result.Links = append(result.Links, media.Link{URL: v.URL, Quality: quality, Type: media.TypeAudio, Format: "mp3"})
	}
	for i, v := range m.Buckets.Image {
		result.Links = append(result.Links, media.Link{URL: v.URL, Quality: fmt.Sprintf("Image %d", i+1), Type: media.TypeImage, Format: "jpg"})
	}
}

func buildInstagram(result *media.Result, m media.Media, raw Raw) {
	result.Title = "Instagram Media"
	if len(m.Items) > 0 {
		result.Thumbnail = m.Items[0].Thumbnail
	}
	if result.Thumbnail == "" {
		result.Thumbnail = raw.StrOr("thumb", "")
	}

	appendEntry := func(url string, i int) {
		if url == "" {
			return
		}
		lower := strings.ToLower(url)
		isVideo := strings.Contains(lower, ".mp4") || strings.Contains(lower, "video")
		link := media.Link{URL: url, Quality: fmt.Sprintf("Photo %d", i+1), Type: media.TypeImage, Format: "jpg"}
		if isVideo {
			link.Quality = fmt.Sprintf("Video %d", i+1)
			link.Type = media.TypeVideo
			link.Format = "mp4"
		}
		result.Links = append(result.Links, link)
	}

	for i, item := range m.Items {
		appendEntry(item.URL, i)
	}

	// Fallback: some responses expose only a bare download_url field.
	if len(result.Links) == 0 && raw != nil {
		switch dl := raw["download_url"].(type) {
		case string:
			appendEntry(dl, 0)
		case []any:
			for i, entry := range dl {
				if url, ok := entry.(string); ok {
					appendEntry(url, i)
				}
			}
		}
	}
}

func buildFacebook(result *media.Result, m media.Media, raw Raw) {
	result.Title = raw.StrOr("title", "Facebook Video")
	result.Thumbnail = raw.StrOr("thumbnail", "")

	for _, v := range m.Downloads {
		result.Links = append(result.Links, media.Link{
			URL:        v.URL,
			Quality:    FirstString(v.Quality, v.Resolution, "Video"),
			Type:       media.TypeVideo,
			Format:     "mp4",
			Resolution: v.Resolution,
		})
	}
}

// buildTwitter passes the raw payload through: upstream returns either a bare
// array of {url, quality} records or an object with a media list.
func buildTwitter(result *media.Result, rawData any, raw Raw) {
	result.Title = raw.StrOr("title", "Twitter Video")
	result.Thumbnail = raw.StrOr("thumbnail", "")

	appendEntry := func(entry any, i int) {
		var url, quality string
		switch e := entry.(type) {
		case string:
			url = e
		case map[string]any:
			r := Raw(e)
			url = r.StrOr("url", "")
			quality = r.StrOr("quality", "")
			if q, ok := r.Num("quality"); ok {
				quality = fmt.Sprintf("%d", int(q))
			}
		}
		if url == "" {
			return
		}
		label := fmt.Sprintf("Video %d", i+1)
		if quality != "" {
			label = quality + "p"
		}
		result.Links = append(result.Links, media.Link{
			URL: url, Quality: label, Type: media.TypeVideo, Format: "mp4", Resolution: quality,
		})
	}

	if entries, ok := rawData.([]any); ok {
		for i, entry := range entries {
			appendEntry(entry, i)
		}
		return
	}
	if raw != nil {
		if entries, ok := raw.Arr("media"); ok {
			for i, entry := range entries {
				appendEntry(entry, i)
			}
		}
	}
}

func buildYouTube(result *media.Result, m media.Media, raw Raw) {
	result.Title = FirstString(m.Title, raw.StrOr("title", ""))
	result.Thumbnail = FirstString(m.Thumbnail, raw.StrOr("thumbnail", ""))
	result.Author = FirstString(m.Author, raw.StrOr("author", ""))
	result.Duration = m.Duration

	// One link per allow-listed resolution, first occurrence wins.
	seen := make(map[string]struct{})
	for _, v := range m.Buckets.Video {
		quality := FirstString(v.Quality, "Video")
		if !youtubeAllowed(quality) {
			continue
		}
		if _, dup := seen[quality]; dup {
			continue
		}
		seen[quality] = struct{}{}
		result.Links = append(result.Links, media.Link{
			URL:        v.URL,
			Quality:    quality,
			Type:       media.TypeVideo,
			Format:     FirstString(v.Format, "mp4"),
			Resolution: quality,
		})
	}

	// At most one audio option, always labeled Audio MP3.
	if len(m.Buckets.Audio) > 0 {
		best := m.Buckets.Audio[0]
		result.Links = append(result.Links, media.Link{
			URL:     best.URL,
			Quality: "Audio MP3",
			Type:    media.TypeAudio,
			Format:  FirstString(best.Format, "mp3"),
		})
	}
}

func buildSpotify(result *media.Result, m media.Media, raw Raw) {
	result.Title = FirstString(m.Title, raw.StrOr("title", ""))
	result.Thumbnail = FirstString(m.Thumbnail, raw.StrOr("thumbnail", ""))
	result.Author = m.Author
	result.Duration = m.Duration

	for _, v := range m.Downloads {
		result.Links = append(result.Links, media.Link{
			URL:     v.URL,
			Quality: FirstString(v.Quality, "MP3"),
			Type:    media.TypeAudio,
			Format:  FirstString(v.Format, "mp3"),
		})
	}

	if result.Thumbnail != "" {
		result.Links = append(result.Links, media.Link{
			URL:     result.Thumbnail,
			Quality: "Cover Image",
			Type:    media.TypeImage,
			Format:  media.ExtFromURL(result.Thumbnail, "jpg"),
		})
	}
}

// buildPinterest surfaces the preferred download first (quality preference
// original > large > first), then the remaining quality options in upstream
// order.
func buildPinterest(result *media.Result, m media.Media, raw Raw) {
	result.Title = FirstString(m.Title, strings.TrimSpace(raw.StrOr("title", "")))
	result.Author = FirstString(m.Author, raw.StrOr("author", ""))

	appendOption := func(url, quality string, t media.Type, format string) {
		label := util.Capitalize(quality)
		if label == "" {
			label = util.Capitalize(string(t))
		}
		result.Links = append(result.Links, media.Link{
			URL:     url,
			Quality: label,
			Type:    t,
			Format:  FirstString(format, media.FormatForType(t)),
		})
	}

	var defaultURL string
	if len(m.Downloads) > 0 {
		def := m.Downloads[0]
		defaultURL = def.URL
		appendOption(def.URL, def.Quality, def.Type, def.Format)
	}
	for _, item := range m.Items {
		if item.URL == defaultURL {
			continue
		}
		appendOption(item.URL, item.Quality, item.Type, item.Format)
	}
}

// buildKuaishou flattens the post's video and atlas images into one option
// list so a single selection menu (and "Download All") covers both.
func buildKuaishou(result *media.Result, m media.Media, raw Raw) {
	result.Title = FirstString(m.Title, strings.TrimSpace(raw.StrOr("title", "")))

	for _, v := range m.Buckets.Video {
		result.Links = append(result.Links, media.Link{
			URL:     v.URL,
			Quality: FirstString(v.Quality, "Original Quality"),
			Type:    media.TypeVideo,
			Format:  FirstString(v.Format, "mp4"),
		})
	}
	for i, item := range m.Items {
		result.Links = append(result.Links, media.Link{
			URL:     item.URL,
			Quality: fmt.Sprintf("Image %d", i+1),
			Type:    media.TypeImage,
			Format:  FirstString(item.Format, "jpg"),
		})
	}
}

// buildGeneric handles platforms without a dedicated normalizer by running
// the heuristic extractor over the raw payload.
func buildGeneric(result *media.Result, platform string, m media.Media, rawData any, raw Raw) {
	result.Title = FirstString(raw.StrOr("title", ""), m.Title, platform+" Media")
	result.Thumbnail = FirstString(raw.StrOr("thumbnail", ""), m.Thumbnail)
	result.Author = FirstString(raw.StrOr("author", ""), m.Author)

	for i, url := range ExtractURLs(rawData) {
		t := media.TypeFromURL(url)
		result.Links = append(result.Links, media.Link{
			URL:     url,
			Quality: fmt.Sprintf("Download %d", i+1),
			Type:    t,
			Format:  media.FormatForType(t),
		})
	}
}

func youtubeAllowed(quality string) bool {
	for _, allowed := range youtubeResolutions {
		if quality == allowed {
			return true
		}
	}
	return false
}
