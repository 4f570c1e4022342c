package custom

import (
	"fmt"

	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/media"
	lua "github.com/yuin/gopher-lua"
)

// Plugin is one loaded Lua platform script. A plugin owns its Lua state;
// calls into it are not safe for concurrent use.
type Plugin struct {
	name  string
	state *lua.LState
}

// Name returns the plugin name, the script's file stem.
func (p *Plugin) Name() string {
	return p.name
}

func (p *Plugin) String() string {
	return p.name
}

// Matches reports whether the plugin claims the URL via its MatchURL function.
func (p *Plugin) Matches(url string) bool {
	fn := p.state.GetGlobal(constant.MatchURLFn)
	if fn.Type() != lua.LTFunction {
		return false
	}

	err := p.state.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LString(url))
	if err != nil {
		return false
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)
	return lua.LVAsBool(ret)
}

// FetchMedia resolves downloadable media for the URL through the script's
// FetchMedia function and translates the returned table into the unified shape.
func (p *Plugin) FetchMedia(url string) (media.Result, error) {
	val, err := p.call(constant.FetchMediaFn, lua.LTTable, lua.LString(url))
	if err != nil {
		return media.Result{}, err
	}

	result := resultFromTable(val.(*lua.LTable))
	result.Platform = p.name
	return result, nil
}

// call invokes a global Lua function and checks the returned value's type.
func (p *Plugin) call(fn string, expected lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	err := p.state.CallByParam(lua.P{
		Fn:      p.state.GetGlobal(fn),
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.name, err)
	}

	val := p.state.Get(-1)
	p.state.Pop(1)

	if val.Type() != expected {
		return nil, fmt.Errorf("%s: %s returned %s, expected %s", p.name, fn, val.Type(), expected)
	}

	return val, nil
}
