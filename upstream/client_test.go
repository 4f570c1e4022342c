package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/platform"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func endpointFor(id, base string) {
	viper.Set(key.APIEndpointsPrefix+"."+id, base+"/"+id+"?url=")
}

func TestFetch(t *testing.T) {
	Convey("Fetch", t, func() {
		viper.Set(key.APITLSCamouflage, false)
		viper.Set(key.APITimeout, 5)
		Reset(func() {
			for _, id := range []string{"spotify", "tiktok", "tiktok_v1", "facebook"} {
				viper.Set(key.APIEndpointsPrefix+"."+id, "")
			}
		})

		client := NewClient()
		spotify, _ := platform.Get("spotify")
		tiktok, _ := platform.Get("tiktok")

		Convey("A truthy envelope resolves into a unified result", func(c C) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.URL.Query().Get("url"), ShouldEqual, "https://open.spotify.com/track/x")
				w.Write([]byte(`{"status":true,"data":{"title":"Song","artist":"Artist","download":"https://s/t.mp3"}}`))
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			result, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err, ShouldBeNil)
			So(result.Title, ShouldEqual, "Song")
			So(result.Links, ShouldHaveLength, 1)
			So(result.Platform, ShouldEqual, "spotify")
		})

		Convey("A falsy status surfaces the upstream message verbatim", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":false,"msg":"track region-locked"}`))
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			_, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err, ShouldNotBeNil)
			statusErr, ok := err.(*StatusError)
			So(ok, ShouldBeTrue)
			So(statusErr.Error(), ShouldEqual, "track region-locked")
		})

		Convey("A falsy status without a message uses the stock error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":false}`))
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			_, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err.Error(), ShouldEqual, "Failed to fetch from API")
		})

		Convey("TikTok falls back to the legacy endpoint when the primary shape is invalid", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"title":"no downloads here"}}`))
			}))
			defer srv.Close()

			legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"downloads":[{"url":"https://a/v.mp4","text":"Download MP4 HD"}]}}`))
			}))
			defer legacy.Close()

			endpointFor("tiktok", srv.URL)
			endpointFor("tiktok_v1", legacy.URL)

			result, err := client.Fetch(context.Background(), tiktok, "https://www.tiktok.com/@u/video/1")
			So(err, ShouldBeNil)
			So(result.Links, ShouldHaveLength, 1)
			So(result.Links[0].Quality, ShouldEqual, "HD (No Watermark)")
		})

		Convey("When every candidate fails, the last error is returned", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"title":"no downloads"}}`))
			}))
			defer srv.Close()

			legacy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":false,"msg":"gone"}`))
			}))
			defer legacy.Close()

			endpointFor("tiktok", srv.URL)
			endpointFor("tiktok_v1", legacy.URL)

			_, err := client.Fetch(context.Background(), tiktok, "https://www.tiktok.com/@u/video/1")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "gone")
		})

		Convey("A truthy envelope without data is an empty result, not an error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true}`))
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			result, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err, ShouldBeNil)
			So(result.Links, ShouldNotBeNil)
			So(result.Links, ShouldBeEmpty)
		})

		Convey("Non-200 upstream answers are transport failures", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			_, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
		})

		Convey("Malformed JSON is an error, never a panic", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":tru`))
			}))
			defer srv.Close()
			endpointFor("spotify", srv.URL)

			_, err := client.Fetch(context.Background(), spotify, "https://open.spotify.com/track/x")
			So(err, ShouldNotBeNil)
		})

		Convey("An array payload passes platforms whose data is a list", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":[{"url":"https://f/hd.mp4","resolution":"720p (HD)"}]}`))
			}))
			defer srv.Close()
			endpointFor("facebook", srv.URL)

			facebook, _ := platform.Get("facebook")
			result, err := client.Fetch(context.Background(), facebook, "https://fb.watch/x")
			So(err, ShouldBeNil)
			So(result.Title, ShouldEqual, "Facebook Video")
			So(result.Links, ShouldHaveLength, 1)
		})
	})
}
