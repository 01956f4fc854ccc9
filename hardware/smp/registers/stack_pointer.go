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

import "fmt"

// StackPage is the page of memory used by the stack.
const StackPage = 0x0100

// StackPointer is the SP register. The stack is fixed to page one of memory
// and the stack pointer wraps inside that page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02x", sp.value)
}

// Value returns the 8bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the memory address the stack pointer points to.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Load value into stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Push returns the address to write a pushed byte to and then decrements the
// stack pointer.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull increments the stack pointer and returns the address to read the
// pulled byte from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
