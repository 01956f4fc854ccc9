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

// Package smpbus defines the memory operations required by the SMP. The SMP
// has a 16bit address bus and every call to Read() or Write() is one cycle of
// the shared clock.
//
// The SMP does not care how addresses are decoded. Whether an address is
// mirrored, mapped to an I/O register or is simply RAM is a decision for the
// Memory implementation.
package smpbus

// Memory defines the operations for the memory system when accessed from the
// SMP. Every address in the 16bit address space must be accepted. An error
// returned by an implementation is passed back to the caller of the SMP
// unmodified except for wrapping.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Peeker implementations allow memory to be inspected without side effects.
// Used by the disassembler and other debugging tools. Peek() never counts as
// a cycle.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

// Poker implementations allow memory to be altered without side effects.
type Poker interface {
	Poke(address uint16, data uint8) error
}
