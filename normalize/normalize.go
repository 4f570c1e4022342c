package normalize

import "github.com/preniv-cli/preniv/media"

// APIVariant tags a historical upstream response shape. The hint is advisory
// only: structural inspection of the payload is the source of truth, since
// upstream shape is the only reliable signal.
type APIVariant string

const (
	VariantPrimary APIVariant = "primary"
	VariantV1      APIVariant = "v1"
)

// known reports whether the variant hint belongs to the enumerated set.
// Unknown hints fail closed rather than risking a silent misparse.
func (v APIVariant) known() bool {
	return v == VariantPrimary || v == VariantV1
}

// normalizer maps one platform's raw data payload into the common media shape.
type normalizer func(data any, hint APIVariant) media.Media

// normalizers registers the platforms with a dedicated mapping. Platforms
// absent here fall back to the generic URL extractor at link-building time.
var normalizers = map[string]normalizer{
	"tiktok":    TikTok,
	"instagram": Instagram,
	"facebook":  Facebook,
	"youtube":   YouTube,
	"spotify":   Spotify,
	"pinterest": Pinterest,
	"kuaishou":  Kuaishou,
}

// Supported reports whether a dedicated normalizer exists for the platform.
func Supported(platform string) bool {
	_, ok := normalizers[platform]
	return ok
}

// Normalize maps a platform-specific raw payload into the common media shape.
// Missing media of any kind yields an explicitly empty result - a valid
// "no media" outcome, not an error. Unknown platforms yield an empty result
// as well; callers route those through the generic extractor instead.
func Normalize(platform string, data any, hint APIVariant) media.Media {
	fn, ok := normalizers[platform]
	if !ok || !hint.known() {
		return media.Media{}
	}
	return fn(data, hint)
}
