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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/spc700/hardware/smp/instructions"
)

// IdleCycles is the number of cycles consumed by each step of a halted SMP.
const IdleCycles = 2

// Result records the state/result of each instruction executed on the SMP.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the instruction. nil if the SMP is halted or if the
	// opcode has not been fetched yet
	Defn *instructions.Definition

	// the number of bytes read from the program, including the opcode
	ByteCount int

	// the operand bytes in the order they were read from the program
	InstructionData [2]uint8

	// the number of cycles taken by the instruction so far
	Cycles int

	// whether a conditional instruction branched
	BranchSuccess bool

	// the SMP is halted and the result is of an idle period rather than an
	// instruction
	Idle bool

	// whether this data has been finalised. the values in the other fields
	// may be incomplete if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the operand of the instruction formatted according to the
// addressing mode. Operand bytes that have not yet been read are shown as
// question marks.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	// the number of operand bytes that are available
	n := r.ByteCount - 1

	byt := func(i int) string {
		if n <= i {
			return "??"
		}
		return fmt.Sprintf("$%02x", r.InstructionData[i])
	}

	word := func() string {
		if n < 2 {
			return "????"
		}
		return fmt.Sprintf("$%04x", uint16(r.InstructionData[1])<<8|uint16(r.InstructionData[0]))
	}

	// the target of a relative branch is measured from the end of the
	// instruction
	rel := func(i int) string {
		if n <= i {
			return "????"
		}
		target := r.Address + uint16(r.Defn.Bytes) + uint16(int8(r.InstructionData[i]))
		return fmt.Sprintf("$%04x", target)
	}

	bit := r.Defn.OpCode >> 5

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#%s", byt(0))
	case instructions.DirectPage:
		return byt(0)
	case instructions.DirectPageX:
		return fmt.Sprintf("%s+X", byt(0))
	case instructions.DirectPageY:
		return fmt.Sprintf("%s+Y", byt(0))
	case instructions.Absolute:
		return fmt.Sprintf("!%s", word())
	case instructions.AbsoluteX:
		return fmt.Sprintf("!%s+X", word())
	case instructions.AbsoluteY:
		return fmt.Sprintf("!%s+Y", word())
	case instructions.IndirectX:
		return "(X)"
	case instructions.IndirectXInc:
		return "(X)+"
	case instructions.IndirectXIndirectY:
		return "(X), (Y)"
	case instructions.DirectPageIndexedIndirect:
		return fmt.Sprintf("[%s+X]", byt(0))
	case instructions.DirectPageIndirectIndexed:
		return fmt.Sprintf("[%s]+Y", byt(0))
	case instructions.DirectPageDirectPage:
		// source is read from the program before destination
		return fmt.Sprintf("%s, %s", byt(1), byt(0))
	case instructions.DirectPageImmediate:
		// immediate value is read from the program before destination
		return fmt.Sprintf("%s, #%s", byt(1), byt(0))
	case instructions.AbsoluteBit:
		if n < 2 {
			return "????.?"
		}
		w := uint16(r.InstructionData[1])<<8 | uint16(r.InstructionData[0])
		return fmt.Sprintf("$%04x.%d", w&0x1fff, w>>13)
	case instructions.DirectPageBit:
		return fmt.Sprintf("%s.%d", byt(0), bit)
	case instructions.DirectPageBitRelative:
		return fmt.Sprintf("%s.%d, %s", byt(0), bit, rel(1))
	case instructions.Relative:
		return rel(0)
	case instructions.DirectPageRelative:
		return fmt.Sprintf("%s, %s", byt(0), rel(1))
	case instructions.DirectPageXRelative:
		return fmt.Sprintf("%s+X, %s", byt(0), rel(1))
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("[!%s+X]", word())
	case instructions.UpperPage:
		if n < 1 {
			return "$ff??"
		}
		return fmt.Sprintf("$ff%02x", r.InstructionData[0])
	}

	return ""
}

// ByteCode returns the bytes of the instruction, as they have been read from
// the program so far, as a string of hex values.
func (r Result) ByteCode() string {
	if r.Defn == nil {
		return ""
	}
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	for i := 0; i < r.ByteCount-1 && i < len(r.InstructionData); i++ {
		s.WriteString(fmt.Sprintf(" %02x", r.InstructionData[i]))
	}
	return s.String()
}

// Disassemble returns the instruction in assembly form, without the address
// or cycle count.
func (r Result) Disassemble() string {
	if r.Defn == nil {
		return "???"
	}
	if r.Defn.Operands == "" {
		return r.Defn.Operator
	}
	return fmt.Sprintf("%s %s", r.Defn.Operator, r.Defn.Expand(r.Operand()))
}

func (r Result) String() string {
	if r.Idle {
		return fmt.Sprintf("%04x  (halted) [%d]", r.Address, r.Cycles)
	}

	s := strings.Builder{}

	if r.Final {
		s.WriteString(fmt.Sprintf("%04x  ", r.Address))
	}

	s.WriteString(fmt.Sprintf("%-9s %s", r.ByteCode(), r.Disassemble()))

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
		if r.Defn != nil && r.Defn.Conditional && r.BranchSuccess {
			s.WriteString(" branched")
		}
	} else {
		s.WriteString(" [v]")
	}

	return s.String()
}
