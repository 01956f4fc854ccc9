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
	"fmt"
)

// Register is one of the 8bit general purpose registers: A, X or Y.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the value of the register as a uint16 for use in an
// address context.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative returns true if bit 7 of the register is set.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero returns true if the register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. The result wraps and no flags are affected. Adding
// 0xff is the same as decrementing.
func (r *Register) Add(val uint8) {
	r.value += val
}
