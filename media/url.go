// Package media defines the domain models shared by the normalization core, the CLI, and the HTTP server.
package media

import (
	"net/url"
	"path"
	"strings"
)

// IsHTTPURL reports whether s is a syntactically valid absolute http(s) URL.
func IsHTTPURL(s string) bool {
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// ExtFromURL derives a lowercase file extension from the URL path, falling back when none is present.
// The extension is derived, never trusted from upstream unless explicitly provided.
func ExtFromURL(rawURL, fallback string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
	switch ext {
	case "mp4", "webm", "mov", "mkv", "mp3", "m4a", "wav", "ogg", "jpg", "jpeg", "png", "webp", "gif":
		return ext
	}
	return fallback
}

// TypeFromURL classifies a bare URL by file-extension substring, defaulting to video.
// Mirrors the heuristic used for unmodeled platforms.
func TypeFromURL(rawURL string) Type {
	lower := strings.ToLower(rawURL)
	switch {
	case strings.Contains(lower, ".mp3"), strings.Contains(lower, ".m4a"):
		return TypeAudio
	case strings.Contains(lower, ".jpg"), strings.Contains(lower, ".png"), strings.Contains(lower, ".webp"):
		return TypeImage
	default:
		return TypeVideo
	}
}

// FormatForType maps a media type to its default container extension.
func FormatForType(t Type) string {
	switch t {
	case TypeAudio:
		return "mp3"
	case TypeImage:
		return "jpg"
	default:
		return "mp4"
	}
}
