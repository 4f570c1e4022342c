// Package platform manages the supported-platform registry and URL detection.
package platform

import (
	"regexp"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/preniv-cli/preniv/media"
	"github.com/samber/lo"
)

// Platform describes one supported social-media source.
type Platform struct {
	ID    string
	Name  string
	Types []media.Type

	pattern *regexp.Regexp
}

func (p *Platform) String() string {
	return p.Name
}

// Match reports whether the URL belongs to this platform.
func (p *Platform) Match(rawURL string) bool {
	return p.pattern.MatchString(rawURL)
}

// registry is the fixed ordered platform list. Detection iterates in this
// order, so the first matching pattern wins deterministically.
var registry = []*Platform{
	{ID: "tiktok", Name: "TikTok", Types: types(media.TypeVideo, media.TypeAudio, media.TypeImage), pattern: re(`tiktok\.com|vm\.tiktok`)},
	{ID: "instagram", Name: "Instagram", Types: types(media.TypeVideo, media.TypeImage), pattern: re(`instagram\.com|instagr\.am`)},
	{ID: "facebook", Name: "Facebook", Types: types(media.TypeVideo), pattern: re(`facebook\.com|fb\.watch|fb\.com`)},
	{ID: "twitter", Name: "Twitter/X", Types: types(media.TypeVideo), pattern: re(`twitter\.com|x\.com`)},
	{ID: "youtube", Name: "YouTube", Types: types(media.TypeVideo, media.TypeAudio), pattern: re(`youtube\.com|youtu\.be`)},
	{ID: "douyin", Name: "Douyin", Types: types(media.TypeVideo), pattern: re(`douyin\.com`)},
	{ID: "spotify", Name: "Spotify", Types: types(media.TypeAudio), pattern: re(`spotify\.com`)},
	{ID: "pinterest", Name: "Pinterest", Types: types(media.TypeImage, media.TypeVideo), pattern: re(`pinterest\.com|pin\.it`)},
	{ID: "applemusic", Name: "Apple Music", Types: types(media.TypeAudio), pattern: re(`music\.apple\.com`)},
	{ID: "capcut", Name: "CapCut", Types: types(media.TypeVideo), pattern: re(`capcut\.com`)},
	{ID: "bluesky", Name: "Bluesky", Types: types(media.TypeVideo, media.TypeImage), pattern: re(`bsky\.app`)},
	{ID: "rednote", Name: "RedNote/Xiaohongshu", Types: types(media.TypeVideo, media.TypeImage), pattern: re(`xiaohongshu\.com|xhslink\.com`)},
	{ID: "threads", Name: "Threads", Types: types(media.TypeVideo), pattern: re(`threads\.net`)},
	{ID: "kuaishou", Name: "Kuaishou", Types: types(media.TypeVideo, media.TypeImage), pattern: re(`kuaishou\.com|ksurl\.cn`)},
	{ID: "weibo", Name: "Weibo", Types: types(media.TypeVideo, media.TypeImage), pattern: re(`weibo\.com`)},
}

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

func types(t ...media.Type) []media.Type {
	return t
}

// All returns every supported platform in registry order.
func All() []*Platform {
	return registry
}

// IDs returns the platform identifiers in registry order.
func IDs() []string {
	return lo.Map(registry, func(p *Platform, _ int) string {
		return p.ID
	})
}

// Get finds a platform by its identifier.
func Get(id string) (*Platform, bool) {
	return lo.Find(registry, func(p *Platform) bool {
		return p.ID == id
	})
}

// Detect resolves the platform owning the URL, first match wins.
func Detect(rawURL string) (*Platform, bool) {
	return lo.Find(registry, func(p *Platform) bool {
		return p.Match(rawURL)
	})
}

// Suggest returns the platform whose identifier is closest to the given name.
func Suggest(name string) *Platform {
	return lo.MinBy(registry, func(a, b *Platform) bool {
		return levenshtein.Distance(name, a.ID) < levenshtein.Distance(name, b.ID)
	})
}
