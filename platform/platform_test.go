package platform

import (
	"testing"

	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/normalize"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestDetect(t *testing.T) {
	Convey("Detect", t, func() {
		cases := map[string]string{
			"https://www.tiktok.com/@user/video/123":  "tiktok",
			"https://vm.tiktok.com/ZMabc/":            "tiktok",
			"https://www.instagram.com/reel/abc/":     "instagram",
			"https://fb.watch/xyz/":                   "facebook",
			"https://x.com/user/status/1":             "twitter",
			"https://youtu.be/dQw4w9WgXcQ":            "youtube",
			"https://open.spotify.com/track/abc":      "spotify",
			"https://pin.it/abc":                      "pinterest",
			"https://music.apple.com/us/album/x/1":    "applemusic",
			"https://bsky.app/profile/x/post/1":       "bluesky",
			"https://xhslink.com/abc":                 "rednote",
			"https://www.threads.net/@user/post/1":    "threads",
			"https://v.kuaishou.com/abc":              "kuaishou",
			"https://weibo.com/123/abc":               "weibo",
			"https://www.capcut.com/template/123":     "capcut",
			"https://v.douyin.com/abc/":               "douyin",
		}

		for url, want := range cases {
			p, ok := Detect(url)
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, want)
		}

		Convey("Matching is case-insensitive", func() {
			p, ok := Detect("https://WWW.TIKTOK.COM/@user")
			So(ok, ShouldBeTrue)
			So(p.ID, ShouldEqual, "tiktok")
		})

		Convey("Unknown hosts do not match", func() {
			_, ok := Detect("https://example.com/video/1")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestRegistry(t *testing.T) {
	Convey("Registry", t, func() {
		Convey("Get finds platforms by ID", func() {
			p, ok := Get("spotify")
			So(ok, ShouldBeTrue)
			So(p.Name, ShouldEqual, "Spotify")

			_, ok = Get("myspace")
			So(ok, ShouldBeFalse)
		})

		Convey("All preserves registry order with tiktok first", func() {
			all := All()
			So(all, ShouldHaveLength, 15)
			So(all[0].ID, ShouldEqual, "tiktok")
		})

		Convey("Suggest proposes the closest ID", func() {
			So(Suggest("tikok").ID, ShouldEqual, "tiktok")
			So(Suggest("instagra").ID, ShouldEqual, "instagram")
		})
	})
}

func TestEndpoints(t *testing.T) {
	Convey("Endpoints", t, func() {
		viper.Set(key.APIBase, "https://api.example.com")
		Reset(func() {
			viper.Set(key.APIBase, "")
			viper.Set(key.APIEndpointsPrefix+".spotify", "")
			viper.Set(key.APIEndpointsPrefix+".tiktok", "")
		})

		Convey("Single candidate for ordinary platforms", func() {
			eps := Endpoints("spotify")
			So(eps, ShouldHaveLength, 1)
			So(eps[0].Prefix, ShouldEqual, "https://api.example.com/api/spotify?url=")
			So(eps[0].Variant, ShouldEqual, normalize.VariantPrimary)
		})

		Convey("TikTok carries the legacy fallback second", func() {
			eps := Endpoints("tiktok")
			So(eps, ShouldHaveLength, 2)
			So(eps[0].Variant, ShouldEqual, normalize.VariantPrimary)
			So(eps[1].Prefix, ShouldEqual, "https://api.example.com/api/tiktok/v1?url=")
			So(eps[1].Variant, ShouldEqual, normalize.VariantV1)
		})

		Convey("Per-platform overrides take precedence", func() {
			viper.Set(key.APIEndpointsPrefix+".spotify", "https://mirror.example.com/sp?url=")
			eps := Endpoints("spotify")
			So(eps[0].Prefix, ShouldEqual, "https://mirror.example.com/sp?url=")
		})
	})
}
