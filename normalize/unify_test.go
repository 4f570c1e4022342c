package normalize

import (
	"testing"

	"github.com/preniv-cli/preniv/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildLinksTikTok(t *testing.T) {
	Convey("TikTok link building", t, func() {
		data := decode(`{
			"title": "clip",
			"downloads": {"video":[{"url":"https://a/v.mp4"}], "audio":[], "image":[]}
		}`)
		m := TikTok(data, VariantPrimary)
		result := BuildLinks("tiktok", m, data)

		Convey("A single video maps to the watermark-free label", func() {
			So(result.Links, ShouldResemble, []media.Link{
				{URL: "https://a/v.mp4", Quality: "HD (No Watermark)", Type: media.TypeVideo, Format: "mp4"},
			})
		})

		Convey("Additional videos are numbered options", func() {
			data := decode(`{"downloads": {"video":[
				{"url":"https://a/1.mp4"}, {"url":"https://a/2.mp4"}
			], "audio":[], "image":[]}}`)
			result := BuildLinks("tiktok", TikTok(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 2)
			So(result.Links[0].Quality, ShouldEqual, "HD (No Watermark)")
			So(result.Links[1].Quality, ShouldEqual, "Video Option 2")
		})

		Convey("Audio carries the track title when metadata names one", func() {
			data := decode(`{
				"metadata": {"audio_title": "original sound"},
				"downloads": {"video":[], "audio":[{"url":"https://a/a.mp3"}], "image":[]}
			}`)
			result := BuildLinks("tiktok", TikTok(data, VariantPrimary), data)

			So(result.Links[0].Quality, ShouldEqual, "original sound")
			So(result.Links[0].Type, ShouldEqual, media.TypeAudio)
		})

		Convey("Audio falls back to the generic label", func() {
			data := decode(`{"downloads": {"video":[], "audio":[{"url":"https://a/a.mp3"}], "image":[]}}`)
			result := BuildLinks("tiktok", TikTok(data, VariantPrimary), data)
			So(result.Links[0].Quality, ShouldEqual, "Audio/Music")
		})

		Convey("Slideshow images are numbered", func() {
			data := decode(`{"downloads": {"video":[], "audio":[], "image":["https://a/1.jpg","https://a/2.jpg"]}}`)
			result := BuildLinks("tiktok", TikTok(data, VariantPrimary), data)

			So(result.Links[0].Quality, ShouldEqual, "Image 1")
			So(result.Links[1].Quality, ShouldEqual, "Image 2")
			So(result.Links[1].Format, ShouldEqual, "jpg")
		})
	})
}

func TestBuildLinksInstagram(t *testing.T) {
	Convey("Instagram link building", t, func() {
		Convey("Entries are labeled by inferred kind", func() {
			data := decode(`{"media": ["https://i/1.jpg", "https://i/2.mp4"]}`)
			result := BuildLinks("instagram", Instagram(data, VariantPrimary), data)

			So(result.Title, ShouldEqual, "Instagram Media")
			So(result.Links[0].Quality, ShouldEqual, "Photo 1")
			So(result.Links[0].Type, ShouldEqual, media.TypeImage)
			So(result.Links[1].Quality, ShouldEqual, "Video 2")
			So(result.Links[1].Type, ShouldEqual, media.TypeVideo)
		})

		Convey("Bare download_url string is the fallback", func() {
			data := decode(`{"download_url": "https://i/only.mp4"}`)
			result := BuildLinks("instagram", Instagram(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 1)
			So(result.Links[0].URL, ShouldEqual, "https://i/only.mp4")
		})

		Convey("Bare download_url array is the fallback", func() {
			data := decode(`{"download_url": ["https://i/1.jpg", "https://i/2.jpg"]}`)
			result := BuildLinks("instagram", Instagram(data, VariantPrimary), data)
			So(result.Links, ShouldHaveLength, 2)
		})
	})
}

func TestBuildLinksYouTube(t *testing.T) {
	Convey("YouTube link building", t, func() {
		data := decode(`{
			"title": "vid",
			"formats": [
				{"url":"https://y/720a.mp4","quality":"720p","type":"video_with_audio"},
				{"url":"https://y/720b.mp4","quality":"720p","type":"video"},
				{"url":"https://y/1080.mp4","quality":"1080p","type":"video"},
				{"url":"https://y/1440.mp4","quality":"1440p","type":"video"},
				{"url":"https://y/a1.m4a","quality":"128kbps","type":"audio"},
				{"url":"https://y/a2.m4a","quality":"64kbps","type":"audio"}
			]
		}`)
		result := BuildLinks("youtube", YouTube(data, VariantPrimary), data)

		Convey("Resolutions outside the allow-list are dropped", func() {
			for _, link := range result.Links {
				So(link.Quality, ShouldNotEqual, "1440p")
			}
		})

		Convey("Duplicate resolutions keep the first occurrence", func() {
			var seen []string
			for _, link := range result.Links {
				if link.Type == media.TypeVideo {
					seen = append(seen, link.Quality)
				}
			}
			So(seen, ShouldResemble, []string{"720p", "1080p"})
			So(result.Links[0].URL, ShouldEqual, "https://y/720a.mp4")
		})

		Convey("At most one audio link, always labeled Audio MP3", func() {
			var audio []media.Link
			for _, link := range result.Links {
				if link.Type == media.TypeAudio {
					audio = append(audio, link)
				}
			}
			So(audio, ShouldHaveLength, 1)
			So(audio[0].Quality, ShouldEqual, "Audio MP3")
		})
	})
}

func TestBuildLinksSpotify(t *testing.T) {
	Convey("Spotify link building", t, func() {
		Convey("Cover image is appended after the track", func() {
			data := decode(`{"title":"Song","artist":"Artist","image":"https://s/c.jpg","download":"https://s/t.mp3"}`)
			result := BuildLinks("spotify", Spotify(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 2)
			So(result.Links[0].Type, ShouldEqual, media.TypeAudio)
			So(result.Links[1].Quality, ShouldEqual, "Cover Image")
			So(result.Links[1].URL, ShouldEqual, "https://s/c.jpg")
		})

		Convey("No cover link without a thumbnail", func() {
			data := decode(`{"download":"https://s/t.mp3"}`)
			result := BuildLinks("spotify", Spotify(data, VariantPrimary), data)
			So(result.Links, ShouldHaveLength, 1)
		})
	})
}

func TestBuildLinksFacebookAndTwitter(t *testing.T) {
	Convey("Facebook link building", t, func() {
		data := decode(`[
			{"url":"https://f/hd.mp4","resolution":"720p (HD)"},
			{"url":"https://f/sd.mp4","resolution":"360p (SD)"}
		]`)
		result := BuildLinks("facebook", Facebook(data, VariantPrimary), data)

		So(result.Title, ShouldEqual, "Facebook Video")
		So(result.Links, ShouldHaveLength, 2)
		So(result.Links[0].Quality, ShouldEqual, "720p (HD)")
		So(result.Links[0].Resolution, ShouldEqual, "720p (HD)")
	})

	Convey("Twitter link building", t, func() {
		Convey("Array payloads pass through with quality labels", func() {
			data := decode(`[{"url":"https://t/720.mp4","quality":"720"}]`)
			result := BuildLinks("twitter", media.Media{}, data)

			So(result.Title, ShouldEqual, "Twitter Video")
			So(result.Links[0].Quality, ShouldEqual, "720p")
		})

		Convey("Entries without a quality are numbered", func() {
			data := decode(`{"media": [{"url":"https://t/a.mp4"}, {"url":"https://t/b.mp4"}]}`)
			result := BuildLinks("twitter", media.Media{}, data)
			So(result.Links[1].Quality, ShouldEqual, "Video 2")
		})
	})
}

func TestBuildLinksPinterest(t *testing.T) {
	Convey("Pinterest link building", t, func() {
		Convey("The preferred quality leads, remaining options follow", func() {
			data := decode(`{"title":"pin","media_urls":[
				{"type":"image","quality":"large","url":"https://p/l.jpg"},
				{"type":"image","quality":"original","url":"https://p/o.jpg"}
			]}`)
			result := BuildLinks("pinterest", Pinterest(data, VariantPrimary), data)

			So(result.Title, ShouldEqual, "pin")
			So(result.Links, ShouldResemble, []media.Link{
				{URL: "https://p/o.jpg", Quality: "Original", Type: media.TypeImage, Format: "jpg"},
				{URL: "https://p/l.jpg", Quality: "Large", Type: media.TypeImage, Format: "jpg"},
			})
		})

		Convey("Gif inference from the URL survives into the link", func() {
			data := decode(`{"media_urls":[{"quality":"original","url":"https://p/a.gif"}]}`)
			result := BuildLinks("pinterest", Pinterest(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 1)
			So(result.Links[0].Format, ShouldEqual, "gif")
			So(result.Links[0].Type, ShouldEqual, media.TypeImage)
		})

		Convey("A declared video entry keeps its type", func() {
			data := decode(`{"media_urls":[{"type":"video","quality":"original","url":"https://p/v.mp4"}]}`)
			result := BuildLinks("pinterest", Pinterest(data, VariantPrimary), data)

			So(result.Links[0].Type, ShouldEqual, media.TypeVideo)
			So(result.Links[0].Format, ShouldEqual, "mp4")
		})

		Convey("No media urls yields an empty link list", func() {
			data := decode(`{"title":"pin","media_urls":[]}`)
			result := BuildLinks("pinterest", Pinterest(data, VariantPrimary), data)
			So(result.Links, ShouldNotBeNil)
			So(result.Links, ShouldBeEmpty)
		})
	})
}

func TestBuildLinksKuaishou(t *testing.T) {
	Convey("Kuaishou link building", t, func() {
		Convey("Video and atlas images flatten into one option list", func() {
			data := decode(`{
				"title": "post",
				"hasVideo": true,
				"hasAtlas": true,
				"original": {"videoUrl":"https://k/v.mp4","atlas":["https://k/1.jpg","https://k/2.jpg"]}
			}`)
			result := BuildLinks("kuaishou", Kuaishou(data, VariantPrimary), data)

			So(result.Title, ShouldEqual, "post")
			So(result.Links, ShouldResemble, []media.Link{
				{URL: "https://k/v.mp4", Quality: "Original Quality", Type: media.TypeVideo, Format: "mp4"},
				{URL: "https://k/1.jpg", Quality: "Image 1", Type: media.TypeImage, Format: "jpg"},
				{URL: "https://k/2.jpg", Quality: "Image 2", Type: media.TypeImage, Format: "jpg"},
			})
		})

		Convey("Atlas-only posts yield only numbered images", func() {
			data := decode(`{"hasAtlas": true, "original": {"atlas":["https://k/1.jpg"]}}`)
			result := BuildLinks("kuaishou", Kuaishou(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 1)
			So(result.Links[0].Quality, ShouldEqual, "Image 1")
		})

		Convey("Unset section flags yield an empty link list", func() {
			data := decode(`{"title":"post","original":{"videoUrl":"https://k/v.mp4"}}`)
			result := BuildLinks("kuaishou", Kuaishou(data, VariantPrimary), data)
			So(result.Links, ShouldNotBeNil)
			So(result.Links, ShouldBeEmpty)
		})
	})
}

func TestBuildLinksURLValidity(t *testing.T) {
	Convey("Link URL validity", t, func() {
		Convey("Entries without an absolute http(s) URL are dropped", func() {
			data := decode(`{"downloads": {"video":[
				{"url":"https://a/v.mp4"}, {"url":"file:///etc/passwd"}, {"url":"not-a-url"}
			], "audio":[], "image":[]}}`)
			result := BuildLinks("tiktok", TikTok(data, VariantPrimary), data)

			So(result.Links, ShouldHaveLength, 1)
			So(result.Links[0].URL, ShouldEqual, "https://a/v.mp4")
		})
	})
}

func TestBuildLinksGeneric(t *testing.T) {
	Convey("Generic link building", t, func() {
		Convey("Unmodeled platforms run the heuristic extractor", func() {
			data := decode(`{"title":"post","url":"https://d/1.mp4","audio":"https://d/2.mp3"}`)
			result := BuildLinks("douyin", media.Media{}, data)

			So(result.Title, ShouldEqual, "post")
			So(result.Links, ShouldHaveLength, 2)
			So(result.Links[0].Quality, ShouldEqual, "Download 1")
			So(result.Links[0].Type, ShouldEqual, media.TypeVideo)
			So(result.Links[1].Quality, ShouldEqual, "Download 2")
			So(result.Links[1].Type, ShouldEqual, media.TypeAudio)
		})

		Convey("Empty media never raises, links stay an empty slice", func() {
			result := BuildLinks("douyin", media.Media{}, decode(`{"title":"post"}`))
			So(result.Links, ShouldNotBeNil)
			So(result.Links, ShouldBeEmpty)
		})
	})
}
