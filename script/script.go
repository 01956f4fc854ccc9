// This file is part of spc700.
//
// spc700 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spc700 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spc700.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/spc700/hardware/memory/smpbus"
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/logger"
	lua "github.com/yuin/gopher-lua"
)

// Memory is the interface required by the peek() and poke() functions.
type Memory interface {
	smpbus.Peeker
	smpbus.Poker
}

// Script is a Lua environment with bindings to an SMP.
type Script struct {
	state  *lua.LState
	mc     *smp.SMP
	mem    Memory
	output io.Writer
}

// NewScript is the preferred method of initialisation for the Script type.
// Close() should be called when the Script is no longer required.
func NewScript(mc *smp.SMP, mem Memory, output io.Writer) *Script {
	scr := &Script{
		state:  lua.NewState(),
		mc:     mc,
		mem:    mem,
		output: output,
	}

	tbl := scr.state.SetFuncs(scr.state.NewTable(), map[string]lua.LGFunction{
		"step":   scr.step,
		"run":    scr.run,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"halted": scr.halted,
		"reset":  scr.reset,
		"cycles": scr.cycles,
		"disasm": scr.disasm,
	})
	scr.state.SetGlobal("smp", tbl)
	scr.state.SetGlobal("print", scr.state.NewFunction(scr.print))

	return scr
}

// Close the Lua environment.
func (scr *Script) Close() {
	scr.state.Close()
}

// DoString executes the Lua source in the string.
func (scr *Script) DoString(source string) error {
	err := scr.state.DoString(source)
	if err != nil {
		logger.Log(logger.Allow, "script", err)
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// DoFile executes the Lua source in the named file.
func (scr *Script) DoFile(filename string) error {
	err := scr.state.DoFile(filename)
	if err != nil {
		logger.Log(logger.Allow, "script", err)
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.Get(i + 1).String()
	}
	fmt.Fprintln(scr.output, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n, err := scr.mc.Step()
	if err != nil {
		L.RaiseError("step: %v", err)
		return 0
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (scr *Script) run(L *lua.LState) int {
	excess, err := scr.mc.Run(L.CheckInt(1))
	if err != nil {
		L.RaiseError("run: %v", err)
		return 0
	}
	L.Push(lua.LNumber(excess))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	var v int

	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = int(scr.mc.A.Value())
	case "X":
		v = int(scr.mc.X.Value())
	case "Y":
		v = int(scr.mc.Y.Value())
	case "SP":
		v = int(scr.mc.SP.Value())
	case "PC":
		v = int(scr.mc.PC.Address())
	case "PSW":
		v = int(scr.mc.Status.Value())
	case "YA":
		v = int(scr.mc.YA())
	default:
		L.ArgError(1, "unknown register")
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	name := strings.ToUpper(L.CheckString(1))
	v := L.CheckInt(2)

	limit := 0xff
	if name == "PC" || name == "YA" {
		limit = 0xffff
	}
	if v < 0 || v > limit {
		L.ArgError(2, "value out of range")
		return 0
	}

	switch name {
	case "A":
		scr.mc.A.Load(uint8(v))
	case "X":
		scr.mc.X.Load(uint8(v))
	case "Y":
		scr.mc.Y.Load(uint8(v))
	case "SP":
		scr.mc.SP.Load(uint8(v))
	case "PC":
		scr.mc.PC.Load(uint16(v))
	case "PSW":
		scr.mc.Status.Load(uint8(v))
	case "YA":
		scr.mc.SetYA(uint16(v))
	default:
		L.ArgError(1, "unknown register")
	}

	return 0
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.mem.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("peek: %v", err)
		return 0
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
		return 0
	}
	err := scr.mem.Poke(addr, uint8(v))
	if err != nil {
		L.RaiseError("poke: %v", err)
	}
	return 0
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.mc.Halted()))
	return 1
}

func (scr *Script) reset(L *lua.LState) int {
	err := scr.mc.Reset()
	if err != nil {
		L.RaiseError("reset: %v", err)
	}
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.mc.Cycles()))
	return 1
}

func (scr *Script) disasm(L *lua.LState) int {
	L.Push(lua.LString(scr.mc.LastResult.String()))
	return 1
}
