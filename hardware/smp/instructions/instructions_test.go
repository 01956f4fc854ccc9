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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/spc700/hardware/smp/instructions"
	"github.com/jetsetilly/spc700/test"
)

func TestTable(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	for i, defn := range defs {
		test.ExpectEquality(t, int(defn.OpCode), i)
		test.ExpectInequality(t, defn.Operator, "")
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn)
		test.ExpectEquality(t, defn.Cycles >= 2, true, defn)

		// every instruction with a relative operand is conditional apart from BRA
		if defn.IsBranch() && defn.Operator != "BRA" {
			test.ExpectEquality(t, defn.Conditional, true, defn)
		}
		if defn.Conditional {
			test.ExpectEquality(t, defn.IsBranch(), true, defn)
			test.ExpectEquality(t, defn.Family, instructions.Flow, defn)
		}
	}
}

func TestTableIsCopied(t *testing.T) {
	a := instructions.GetDefinitions()
	a[0x00].Cycles = 100
	b := instructions.GetDefinitions()
	test.ExpectEquality(t, b[0x00].Cycles, 2)
}

func TestMnemonic(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.ExpectEquality(t, defs[0x00].Mnemonic(), "NOP")
	test.ExpectEquality(t, defs[0xe8].Mnemonic(), "MOV A, #imm")
	test.ExpectEquality(t, defs[0xc4].Mnemonic(), "MOV dp, A")
	test.ExpectEquality(t, defs[0x7d].Mnemonic(), "MOV A, X")
	test.ExpectEquality(t, defs[0xbc].Mnemonic(), "INC A")
	test.ExpectEquality(t, defs[0x2a].Mnemonic(), "OR1 C, /m.b")
	test.ExpectEquality(t, defs[0xaf].Mnemonic(), "MOV (X)+, A")
	test.ExpectEquality(t, defs[0xfe].Mnemonic(), "DBNZ Y, rel")
	test.ExpectEquality(t, defs[0x71].Mnemonic(), "TCALL 7")
}

func TestCycles(t *testing.T) {
	defs := instructions.GetDefinitions()

	// a sample of cycle counts that are easy to get wrong
	cycles := map[uint8]int{
		0x0f: 8,  // BRK
		0x2f: 4,  // BRA
		0x3f: 8,  // CALL
		0x4f: 6,  // PCALL
		0x6f: 5,  // RET
		0x7f: 6,  // RETI
		0x9e: 12, // DIV
		0xcf: 9,  // MUL
		0x9f: 5,  // XCN
		0xc7: 7,  // MOV [dp+X], A
		0xd7: 7,  // MOV [dp]+Y, A
		0xfa: 5,  // MOV dp, dp
		0x09: 6,  // OR dp, dp
		0x3a: 6,  // INCW
		0x5a: 4,  // CMPW
		0xde: 6,  // CBNE dp+X, rel
		0xfe: 4,  // DBNZ Y, rel
		0x0e: 6,  // TSET1
		0xca: 6,  // MOV1 m.b, C
		0xa0: 3,  // EI
		0xed: 3,  // NOTC
		0xef: 3,  // SLEEP
	}

	for op, c := range cycles {
		test.ExpectEquality(t, defs[op].Cycles, c, defs[op])
	}
}
