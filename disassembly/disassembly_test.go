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

package disassembly_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/spc700/disassembly"
	"github.com/jetsetilly/spc700/hardware/memory/aram"
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/test"
)

func program() *aram.ARAM {
	mem := aram.NewARAM(false)
	mem.Load(smp.ResetVector, []uint8{0x00, 0x02})
	mem.Load(0x0200, []uint8{
		0xe8, 0x00, // MOV A,#$00
		0xf0, 0x03, // BEQ $0207
		0x3f, 0x00, 0x03, // CALL $0300
		0x5f, 0x07, 0x02, // JMP $0207
		0xff, 0xff, // not reachable
	})
	mem.Load(0x0300, []uint8{0x6f}) // RET
	return mem
}

func TestDisassembly(t *testing.T) {
	mem := program()

	dsm, err := disassembly.FromMemory(mem, 0x0200, 0x0300)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dsm.Count(disassembly.EntryLevelBlessed), 5)

	e, ok := dsm.Get(0x0202)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)
	test.ExpectEquality(t, e.Operator, "BEQ")
	test.ExpectEquality(t, e.Operand, "$0207")
	test.ExpectEquality(t, e.Cycles(), "2/4")

	e, ok = dsm.Get(0x0204)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Operand, "!$0300")

	// decoded but not reachable
	e, ok = dsm.Get(0x0201)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	e, ok = dsm.Get(0x020a)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)

	// subroutine is reached through the CALL
	e, ok = dsm.Get(0x0300)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)

	// disassembly does not alter memory
	test.ExpectEquality(t, mem.Writes, 0)
}

func TestInvalidRange(t *testing.T) {
	_, err := disassembly.FromMemory(program(), 0x0300, 0x0200)
	test.ExpectFailure(t, err)
}

func TestWriteAndGrep(t *testing.T) {
	dsm, err := disassembly.FromMemory(program(), 0x0200, 0x0300, 0x0200)
	test.DemandSuccess(t, err)

	var b bytes.Buffer
	test.ExpectSuccess(t, dsm.Write(&b, disassembly.WriteAttr{}))
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 5)
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "$0200  MOV"))

	b.Reset()
	test.ExpectSuccess(t, dsm.Grep(&b, disassembly.GrepOperator, "call", false))
	test.ExpectSuccess(t, strings.HasPrefix(b.String(), "$0204  3f 00 03"))
	test.ExpectEquality(t, strings.Count(b.String(), "\n"), 1)

	b.Reset()
	test.ExpectSuccess(t, dsm.Grep(&b, disassembly.GrepOperator, "call", true))
	test.ExpectEquality(t, b.Len(), 0)
}

func TestExecutedEntry(t *testing.T) {
	mem := program()

	dsm, err := disassembly.FromMemory(mem, 0x0200, 0x0300)
	test.DemandSuccess(t, err)

	mc := smp.NewSMP(mem)
	test.DemandSuccess(t, mc.Reset())

	// MOV A,#$00
	test.DemandSuccess(t, mc.ExecuteInstruction(nil))
	e := dsm.ExecutedEntry(mc.LastResult)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
	test.ExpectEquality(t, e.Cycles(), "2")

	// BEQ $0207
	test.DemandSuccess(t, mc.ExecuteInstruction(nil))
	e = dsm.ExecutedEntry(mc.LastResult)
	test.ExpectEquality(t, e.Cycles(), "4")
	test.ExpectEquality(t, e.Notes(), "branch succeeded")

	e, _ = dsm.Get(0x0202)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelExecuted)
}
