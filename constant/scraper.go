// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Scraper Function Identifiers - these constants define the required global function signatures for Lua platform modules.
const (
	FetchMediaFn = "FetchMedia"
	MatchURLFn   = "MatchURL"
)

// SourceTemplate is a Go text/template for scaffolding new Lua platform files.
const SourceTemplate = `{{ $divider := repeat "-" (plus (max (len .URL) (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @url     {{ .URL }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}


---@alias link { url: string, quality: string|nil, type: string|nil, format: string|nil }
---@alias result { title: string|nil, author: string|nil, thumbnail: string|nil, links: link[] }


----- IMPORTS -----
--- END IMPORTS ---



----- MAIN -----

--- Reports whether this platform can handle the given URL.
-- @param url string Target media URL
-- @return boolean
function {{ .MatchURLFn }}(url)
	return false
end


--- Resolves downloadable media for the given URL.
-- @param url string Target media URL
-- @return result
function {{ .FetchMediaFn }}(url)
	return { links = {} }
end


--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
