package inline

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preniv-cli/preniv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRun(t *testing.T) {
	Convey("Run", t, func() {
		viper.Set(key.APITLSCamouflage, false)
		Reset(func() {
			viper.Set(key.APIEndpointsPrefix+".spotify", "")
		})

		Convey("Writes the unified result as JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"title":"Song","artist":"Artist","download":"https://s/t.mp3"}}`))
			}))
			defer srv.Close()
			viper.Set(key.APIEndpointsPrefix+".spotify", srv.URL+"/spotify?url=")

			var buf bytes.Buffer
			err := Run(context.Background(), &Options{
				Out: &buf,
				URL: "https://open.spotify.com/track/x",
			})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Success, ShouldBeTrue)
			So(output.Platform, ShouldEqual, "spotify")
			So(output.Data.Title, ShouldEqual, "Song")
			So(output.Data.Links, ShouldHaveLength, 1)
		})

		Convey("Rejects URLs no platform claims", func() {
			err := Run(context.Background(), &Options{URL: "https://example.com/v/1"})
			So(err, ShouldNotBeNil)
		})

		Convey("An explicit platform overrides detection", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"download":"https://s/t.mp3"}}`))
			}))
			defer srv.Close()
			viper.Set(key.APIEndpointsPrefix+".spotify", srv.URL+"/spotify?url=")

			var buf bytes.Buffer
			err := Run(context.Background(), &Options{
				Out:      &buf,
				URL:      "https://short.link/x",
				Platform: "spotify",
			})
			So(err, ShouldBeNil)
		})

		Convey("Unknown explicit platforms suggest the closest ID", func() {
			err := Run(context.Background(), &Options{URL: "https://x", Platform: "spotfy"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "spotify")
		})
	})
}
