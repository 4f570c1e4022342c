package custom

import (
	"github.com/preniv-cli/preniv/media"
	lua "github.com/yuin/gopher-lua"
)

// getString reads a string field from a Lua table, empty when absent.
func getString(table *lua.LTable, key string) string {
	val := table.RawGetString(key)
	if val.Type() == lua.LTString {
		return val.String()
	}
	return ""
}

// getInt reads a numeric field from a Lua table, zero when absent.
func getInt(table *lua.LTable, key string) int {
	val := table.RawGetString(key)
	if val.Type() == lua.LTNumber {
		return int(val.(lua.LNumber))
	}
	return 0
}

// resultFromTable translates a plugin's result table into the unified shape.
// Expected layout:
//
//	{ title, author, thumbnail, duration, links = { {url, quality, type, format}, ... } }
//
// Entries without a url are skipped. Unknown type strings default to video.
func resultFromTable(table *lua.LTable) media.Result {
	result := media.Result{
		Title:     getString(table, "title"),
		Author:    getString(table, "author"),
		Thumbnail: getString(table, "thumbnail"),
		Duration:  getInt(table, "duration"),
		Links:     []media.Link{},
	}

	links := table.RawGetString("links")
	tbl, ok := links.(*lua.LTable)
	if !ok {
		return result
	}

	tbl.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		entry := v.(*lua.LTable)
		url := getString(entry, "url")
		if url == "" {
			return
		}

		t := linkType(getString(entry, "type"))
		format := getString(entry, "format")
		if format == "" {
			format = media.FormatForType(t)
		}

		result.Links = append(result.Links, media.Link{
			URL:     url,
			Quality: getString(entry, "quality"),
			Type:    t,
			Format:  format,
		})
	})

	return result
}

func linkType(s string) media.Type {
	switch media.Type(s) {
	case media.TypeAudio:
		return media.TypeAudio
	case media.TypeImage:
		return media.TypeImage
	default:
		return media.TypeVideo
	}
}
