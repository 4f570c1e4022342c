// Package custom provides a bridge between the Go core and Lua-based platform plugins.
package custom

import (
	"fmt"
	"path/filepath"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/filesystem"
	"github.com/preniv-cli/preniv/internal/scraper"
	"github.com/preniv-cli/preniv/util"
	"github.com/preniv-cli/preniv/where"
	lua "github.com/yuin/gopher-lua"
)

// LoadPlugin executes and validates a Lua platform script. The script must
// define FetchMedia(url); MatchURL(url) is optional and defaults to never
// matching, which makes the plugin reachable only by explicit name.
func LoadPlugin(path string) (*Plugin, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.FetchMediaFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.FetchMediaFn, name)
	}

	return &Plugin{name: name, state: state}, nil
}

// Plugins loads every Lua script under the sources directory.
func Plugins() ([]*Plugin, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var plugins []*Plugin
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		plugin, err := LoadPlugin(filepath.Join(where.Sources(), f.Name()))
		if err != nil {
			return nil, err
		}
		plugins = append(plugins, plugin)
	}

	return plugins, nil
}
