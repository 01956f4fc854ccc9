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

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Operator string

	// Operands is a template used when disassembling the instruction. The
	// verb %s is replaced by the operand as formatted for the addressing mode
	Operands string

	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	Family         Family

	// the number of cycles depends on the data. when the branch is taken
	// the instruction costs two more cycles than Cycles
	Conditional bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s family=%s conditional=%t]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.Family, defn.Conditional)
}

// IsBranch returns true if the instruction changes the program counter by a
// relative amount.
func (defn Definition) IsBranch() bool {
	switch defn.AddressingMode {
	case Relative, DirectPageBitRelative, DirectPageRelative, DirectPageXRelative:
		return true
	}
	return false
}

// Mnemonic returns the instruction's operator and operand template as it
// appears in assembly listings. Operands that depend on the instruction data
// are shown by the name of the addressing mode.
func (defn Definition) Mnemonic() string {
	if defn.Operands == "" {
		return defn.Operator
	}
	return fmt.Sprintf("%s %s", defn.Operator, defn.Expand(defn.AddressingMode.Symbol()))
}

// Expand the operand template with the supplied operand.
func (defn Definition) Expand(operand string) string {
	return strings.Replace(defn.Operands, "%s", operand, 1)
}

// GetDefinitions returns a copy of the instruction table. The table is indexed
// by opcode and every opcode is defined.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(definitions))
	for i := range definitions {
		d := definitions[i]
		defs[i] = &d
	}
	return defs
}
