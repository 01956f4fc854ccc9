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

package registers

import (
	"strings"
)

// StatusRegister is the program status word (PSW) of the SMP.
type StatusRegister struct {
	Negative        bool
	Overflow        bool
	DirectPage      bool
	Break           bool
	HalfCarry       bool
	InterruptEnable bool
	Zero            bool
	Carry           bool
}

// bit positions of the flags when the status register is packed into a byte.
const (
	Carry           = 0x01
	Zero            = 0x02
	InterruptEnable = 0x04
	HalfCarry       = 0x08
	Break           = 0x10
	DirectPage      = 0x20
	Overflow        = 0x40
	Negative        = 0x80
)

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "PSW"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, on rune, off rune) {
		if f {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Negative, 'N', 'n')
	flag(sr.Overflow, 'V', 'v')
	flag(sr.DirectPage, 'P', 'p')
	flag(sr.Break, 'B', 'b')
	flag(sr.HalfCarry, 'H', 'h')
	flag(sr.InterruptEnable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Negative {
		v |= Negative
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.DirectPage {
		v |= DirectPage
	}
	if sr.Break {
		v |= Break
	}
	if sr.HalfCarry {
		v |= HalfCarry
	}
	if sr.InterruptEnable {
		v |= InterruptEnable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load converts an 8 bit integer (taken from the stack, for example) to the
// StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Negative = v&Negative == Negative
	sr.Overflow = v&Overflow == Overflow
	sr.DirectPage = v&DirectPage == DirectPage
	sr.Break = v&Break == Break
	sr.HalfCarry = v&HalfCarry == HalfCarry
	sr.InterruptEnable = v&InterruptEnable == InterruptEnable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}

// Page returns the base address of the direct page currently selected by the
// P flag.
func (sr StatusRegister) Page() uint16 {
	if sr.DirectPage {
		return 0x0100
	}
	return 0x0000
}

// SetNZ sets the Negative and Zero flags according to an 8bit value.
func (sr *StatusRegister) SetNZ(v uint8) {
	sr.Negative = v&0x80 == 0x80
	sr.Zero = v == 0
}

// SetNZ16 sets the Negative and Zero flags according to a 16bit value.
func (sr *StatusRegister) SetNZ16(v uint16) {
	sr.Negative = v&0x8000 == 0x8000
	sr.Zero = v == 0
}
