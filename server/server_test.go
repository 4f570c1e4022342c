package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preniv-cli/preniv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func body(w *httptest.ResponseRecorder) map[string]any {
	var decoded map[string]any
	So(json.Unmarshal(w.Body.Bytes(), &decoded), ShouldBeNil)
	return decoded
}

func TestMetaEndpoints(t *testing.T) {
	Convey("Meta endpoints", t, func() {
		router := New().Router()

		Convey("GET / documents the API", func() {
			w := get(router, "/")
			So(w.Code, ShouldEqual, http.StatusOK)

			decoded := body(w)
			So(decoded["name"], ShouldEqual, "Preniv API Server")
			So(decoded["endpoints"], ShouldNotBeNil)
		})

		Convey("GET /health reports status and uptime", func() {
			w := get(router, "/health")
			So(w.Code, ShouldEqual, http.StatusOK)

			decoded := body(w)
			So(decoded["status"], ShouldEqual, "ok")
			So(decoded["timestamp"], ShouldNotBeEmpty)
			So(decoded, ShouldContainKey, "uptime")
		})

		Convey("GET /api/platforms lists every platform", func() {
			w := get(router, "/api/platforms")
			So(w.Code, ShouldEqual, http.StatusOK)

			decoded := body(w)
			So(decoded["success"], ShouldBeTrue)
			platforms := decoded["platforms"].([]any)
			So(platforms, ShouldHaveLength, 15)

			first := platforms[0].(map[string]any)
			So(first["id"], ShouldEqual, "tiktok")
			So(first["types"], ShouldHaveLength, 3)
		})
	})
}

func TestInfoEndpoint(t *testing.T) {
	Convey("GET /api/info", t, func() {
		viper.Set(key.APITLSCamouflage, false)
		Reset(func() {
			viper.Set(key.APIEndpointsPrefix+".spotify", "")
		})

		Convey("Missing url parameter is a 400", func() {
			router := New().Router()
			w := get(router, "/api/info")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(body(w)["error"], ShouldEqual, "URL parameter is required")
		})

		Convey("Unsupported platforms are a 400", func() {
			router := New().Router()
			w := get(router, "/api/info?url=https://example.com/v/1")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
			So(body(w)["error"], ShouldContainSubstring, "Unsupported platform")
		})

		Convey("A resolvable URL yields the unified result", func() {
			upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":true,"data":{"title":"Song","artist":"Artist","download":"https://s/t.mp3"}}`))
			}))
			defer upstreamSrv.Close()
			viper.Set(key.APIEndpointsPrefix+".spotify", upstreamSrv.URL+"/spotify?url=")

			router := New().Router()
			w := get(router, "/api/info?url=https://open.spotify.com/track/x")
			So(w.Code, ShouldEqual, http.StatusOK)

			decoded := body(w)
			So(decoded["success"], ShouldBeTrue)
			So(decoded["platform"], ShouldEqual, "spotify")

			data := decoded["data"].(map[string]any)
			So(data["title"], ShouldEqual, "Song")
			So(data["links"], ShouldHaveLength, 1)
		})

		Convey("Upstream failures surface as a 500 envelope", func() {
			upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":false,"msg":"track gone"}`))
			}))
			defer upstreamSrv.Close()
			viper.Set(key.APIEndpointsPrefix+".spotify", upstreamSrv.URL+"/spotify?url=")

			router := New().Router()
			w := get(router, "/api/info?url=https://open.spotify.com/track/x")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)

			decoded := body(w)
			So(decoded["success"], ShouldBeFalse)
			So(decoded["error"], ShouldEqual, "track gone")
			So(decoded["platform"], ShouldEqual, "spotify")
		})
	})
}

func TestDownloadEndpoint(t *testing.T) {
	Convey("GET /api/download", t, func() {
		router := New().Router()

		Convey("Missing url parameter is a 400", func() {
			w := get(router, "/api/download")
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Streams the file with download headers", func() {
			fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "video/webm")
				w.Write([]byte("file-bytes"))
			}))
			defer fileSrv.Close()

			w := get(router, "/api/download?url="+fileSrv.URL+"&filename=my+clip!&type=video")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldEqual, "file-bytes")

			// Upstream content type wins over the type default.
			So(w.Header().Get("Content-Type"), ShouldEqual, "video/webm")
			So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="my_clip_.mp4"`)
		})

		Convey("Type parameter picks the fallback extension and content type", func() {
			fileSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("audio-bytes"))
			}))
			defer fileSrv.Close()

			w := get(router, "/api/download?url="+fileSrv.URL+"&filename=track&type=audio")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Disposition"), ShouldEqual, `attachment; filename="track.mp3"`)
		})

		Convey("Unreachable files are a 500 envelope", func() {
			w := get(router, "/api/download?url=http://127.0.0.1:1/nothing")
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(body(w)["error"], ShouldEqual, "Failed to download file")
		})
	})
}
