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

// Package algorithms contains the arithmetic, logical and bit primitives used
// by the SMP instructions. Every function is pure: it takes the operands and
// the current status register and returns the result and the updated status
// register. Flags that an operation does not define are returned unchanged.
//
// The Binary, Unary and Word types allow the instruction families in the smp
// package to be composed from an addressing mode and one of these primitives.
package algorithms

import "github.com/jetsetilly/spc700/hardware/smp/registers"

// Binary is the signature of primitives that combine two 8bit values. For
// comparisons the result is the first operand, unchanged.
type Binary func(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister)

// Unary is the signature of primitives that transform a single 8bit value.
type Unary func(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister)

// Word is the signature of primitives that combine two 16bit values.
type Word func(x uint16, y uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister)

// UnaryWord is the signature of primitives that transform a single 16bit
// value.
type UnaryWord func(x uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister)
