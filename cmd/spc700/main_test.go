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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/spc700/test"
)

// MOV A,#$42; INC A; NOP; SLEEP
var program = []uint8{0xe8, 0x42, 0xbc, 0x00, 0xef}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	cmd := newRootCmd(out)
	cmd.SetArgs(args)

	// cobra writes errors and usage to stderr. only the most recent output
	// is interesting
	stderr, err := test.NewRingWriter(1024)
	test.DemandSuccess(t, err)
	cmd.SetErr(stderr)

	err = cmd.Execute()
	if err != nil {
		t.Log(stderr.String())
	}
	return out.String(), err
}

func TestNewMachine(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	m, err := newMachine(options{origin: 0x0400}, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0x0400))
	test.ExpectEquality(t, m.from, uint16(0x0400))
	test.ExpectEquality(t, m.to, uint16(0x0404))

	v, _ := m.mem.Peek(0x0404)
	test.ExpectEquality(t, v, uint8(0xef))

	// IPL ROM supplies the reset vector
	m, err = newMachine(options{origin: 0x0400, ipl: true}, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0xffc0))
}

func TestNewMachineErrors(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	_, err := newMachine(options{origin: 0xfffe}, fn)
	test.ExpectFailure(t, err)

	_, err = newMachine(options{}, writeFile(t, "empty.bin", nil))
	test.ExpectFailure(t, err)

	_, err = newMachine(options{}, filepath.Join(t.TempDir(), "missing.bin"))
	test.ExpectFailure(t, err)

	_, err = newMachine(options{state: writeFile(t, "bad.state", []byte{1, 2, 3})}, fn)
	test.ExpectFailure(t, err)
}

func TestResetVectorOverlap(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	// program would be overwritten by the reset vector
	_, err := newMachine(options{origin: 0xfffa}, fn)
	test.ExpectFailure(t, err)

	// program ends immediately before the reset vector
	m, err := newMachine(options{origin: 0xfff9}, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.to, uint16(0xfffd))
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0xfff9))

	// reset vector comes from the IPL ROM so the RAM underneath is free
	m, err = newMachine(options{origin: 0xfffa, ipl: true}, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0xffc0))
}

func TestState(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	m, err := newMachine(options{origin: 0x0200}, fn)
	test.DemandSuccess(t, err)
	_, err = m.mc.Step()
	test.DemandSuccess(t, err)

	state := writeFile(t, "smp.state", m.mc.Serialise())

	m, err = newMachine(options{origin: 0x0200, state: state}, fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.mc.PC.Address(), uint16(0x0202))
	test.ExpectEquality(t, m.mc.A.Value(), uint8(0x42))
}

func TestRunCommand(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	out, err := execute(t, "run", "--cycles", "8", fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "excess=1 halted=true"))

	_, err = execute(t, "run")
	test.ExpectFailure(t, err)
}

func TestTraceCommand(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	out, err := execute(t, "trace", "--origin", "0x0300", fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "0300  e8 42"))
	test.ExpectSuccess(t, strings.Contains(out, "0304  ef"))

	// trace stops when the SMP halts
	test.ExpectEquality(t, strings.Count(out, "\n"), 4)
}

func TestDisasmCommand(t *testing.T) {
	fn := writeFile(t, "program.bin", program)

	out, err := execute(t, "disasm", fn)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "$0200"))
	test.ExpectSuccess(t, strings.Contains(out, "SLEEP"))
}

func TestScriptCommand(t *testing.T) {
	fn := writeFile(t, "program.bin", program)
	lua := writeFile(t, "test.lua", []byte(`smp.step() print(smp.reg("pc"))`))

	out, err := execute(t, "script", lua, fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "514\n")
}
