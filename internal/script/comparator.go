package script

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/strand/internal/runtime/mutate"
)

// Errors returned by script hooks.
var (
	ErrNotAFunction = errors.New("script: chunk did not produce a function")
)

// Comparator owns a sandboxed Lua state holding a single comparison function.
//
// gopher-lua states are not goroutine-safe; a Comparator must be used from
// one goroutine, which matches the runtime core's single-threaded contract.
type Comparator struct {
	state *lua.LState
	fn    lua.LValue
}

// NewComparator compiles source, a Lua expression or chunk evaluating to a
// function of two string arguments returning a number.
func NewComparator(source string) (*Comparator, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	if err := L.DoString("return " + source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: compiling comparator: %w", err)
	}
	fn := L.Get(-1)
	L.Pop(1)
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNotAFunction
	}

	return &Comparator{state: L, fn: fn}, nil
}

// Func returns the comparator in the mutation engine's signature. Lua errors
// or non-numeric results order the pair as equal.
func (c *Comparator) Func() mutate.Comparator {
	return func(a, b rune) int {
		err := c.state.CallByParam(lua.P{
			Fn:      c.fn,
			NRet:    1,
			Protect: true,
		}, lua.LString(string(a)), lua.LString(string(b)))
		if err != nil {
			return 0
		}
		ret := c.state.Get(-1)
		c.state.Pop(1)
		if n, ok := ret.(lua.LNumber); ok {
			switch {
			case n < 0:
				return -1
			case n > 0:
				return 1
			}
		}
		return 0
	}
}

// Close releases the Lua state.
func (c *Comparator) Close() {
	c.state.Close()
}
