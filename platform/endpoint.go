package platform

import (
	"fmt"
	"strings"

	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/normalize"
	"github.com/spf13/viper"
)

// Endpoint is one upstream resolver URL prefix; the urlencoded target URL is
// appended directly to Prefix. Variant tags the response shape the endpoint
// historically served, passed to the normalizer as a hint.
type Endpoint struct {
	Prefix  string
	Variant normalize.APIVariant
}

// Endpoints returns the ordered resolver candidates for a platform. Most
// platforms have exactly one; TikTok carries a legacy fallback that is tried
// only after the primary endpoint fails.
func Endpoints(id string) []Endpoint {
	base := strings.TrimSuffix(viper.GetString(key.APIBase), "/")

	primary := Endpoint{
		Prefix:  resolve(id, fmt.Sprintf("%s/api/%s?url=", base, id)),
		Variant: normalize.VariantPrimary,
	}

	if id != "tiktok" {
		return []Endpoint{primary}
	}

	fallback := Endpoint{
		Prefix:  resolve("tiktok_v1", base+"/api/tiktok/v1?url="),
		Variant: normalize.VariantV1,
	}
	return []Endpoint{primary, fallback}
}

// resolve honors a per-platform override under api.endpoints.<id>.
func resolve(id, fallback string) string {
	if override := viper.GetString(key.APIEndpointsPrefix + "." + id); override != "" {
		return override
	}
	return fallback
}
