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

package instructions

// AddressingMode describes the method of memory addressing used by an
// instruction. The addressing mode also defines how many bytes an instruction
// requires.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied     AddressingMode = iota
	Accumulator                // A
	Immediate                  // #imm

	DirectPage  // dp
	DirectPageX // dp+X
	DirectPageY // dp+Y

	Absolute  // !abs
	AbsoluteX // !abs+X
	AbsoluteY // !abs+Y

	IndirectX          // (X)
	IndirectXInc       // (X)+
	IndirectXIndirectY // (X), (Y)

	DirectPageIndexedIndirect // [dp+X]
	DirectPageIndirectIndexed // [dp]+Y

	DirectPageDirectPage // dp, dp
	DirectPageImmediate  // dp, #imm

	AbsoluteBit           // m.b
	DirectPageBit         // dp.b
	DirectPageBitRelative // dp.b, rel

	Relative            // rel
	DirectPageRelative  // dp, rel
	DirectPageXRelative // dp+X, rel

	AbsoluteIndexedIndirect // [!abs+X]
	UpperPage               // upage
	Table                   // n
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case DirectPage:
		return "DirectPage"
	case DirectPageX:
		return "DirectPageX"
	case DirectPageY:
		return "DirectPageY"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case IndirectX:
		return "IndirectX"
	case IndirectXInc:
		return "IndirectXInc"
	case IndirectXIndirectY:
		return "IndirectXIndirectY"
	case DirectPageIndexedIndirect:
		return "DirectPageIndexedIndirect"
	case DirectPageIndirectIndexed:
		return "DirectPageIndirectIndexed"
	case DirectPageDirectPage:
		return "DirectPageDirectPage"
	case DirectPageImmediate:
		return "DirectPageImmediate"
	case AbsoluteBit:
		return "AbsoluteBit"
	case DirectPageBit:
		return "DirectPageBit"
	case DirectPageBitRelative:
		return "DirectPageBitRelative"
	case Relative:
		return "Relative"
	case DirectPageRelative:
		return "DirectPageRelative"
	case DirectPageXRelative:
		return "DirectPageXRelative"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case UpperPage:
		return "UpperPage"
	case Table:
		return "Table"
	}
	return "unknown addressing mode"
}

// Symbol returns the notation used for the addressing mode in assembly
// listings when the operand value is not known.
func (m AddressingMode) Symbol() string {
	switch m {
	case Accumulator:
		return "A"
	case Immediate:
		return "#imm"
	case DirectPage:
		return "dp"
	case DirectPageX:
		return "dp+X"
	case DirectPageY:
		return "dp+Y"
	case Absolute:
		return "!abs"
	case AbsoluteX:
		return "!abs+X"
	case AbsoluteY:
		return "!abs+Y"
	case IndirectX:
		return "(X)"
	case IndirectXInc:
		return "(X)+"
	case IndirectXIndirectY:
		return "(X), (Y)"
	case DirectPageIndexedIndirect:
		return "[dp+X]"
	case DirectPageIndirectIndexed:
		return "[dp]+Y"
	case DirectPageDirectPage:
		return "dp, dp"
	case DirectPageImmediate:
		return "dp, #imm"
	case AbsoluteBit:
		return "m.b"
	case DirectPageBit:
		return "dp.b"
	case DirectPageBitRelative:
		return "dp.b, rel"
	case Relative:
		return "rel"
	case DirectPageRelative:
		return "dp, rel"
	case DirectPageXRelative:
		return "dp+X, rel"
	case AbsoluteIndexedIndirect:
		return "[!abs+X]"
	case UpperPage:
		return "upage"
	}
	return ""
}

// Bytes returns the number of bytes an instruction using the addressing mode
// occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator, IndirectX, IndirectXInc, IndirectXIndirectY, Table:
		return 1
	case Absolute, AbsoluteX, AbsoluteY, AbsoluteBit, AbsoluteIndexedIndirect,
		DirectPageDirectPage, DirectPageImmediate, DirectPageBitRelative,
		DirectPageRelative, DirectPageXRelative:
		return 3
	}
	return 2
}
