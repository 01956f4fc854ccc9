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

package algorithms

import "github.com/jetsetilly/spc700/hardware/smp/registers"

// TestBit returns the state of bit n of v. Only the low three bits of n are
// used.
func TestBit(v uint8, n uint8) bool {
	return v&(1<<(n&7)) != 0
}

// SetBit returns v with bit n set to the value of on. Only the low three bits
// of n are used.
func SetBit(v uint8, n uint8, on bool) uint8 {
	v &^= 1 << (n & 7)
	if on {
		v |= 1 << (n & 7)
	}
	return v
}

// TSET sets the N and Z flags from the comparison of a with m and returns m
// with the bits set in a also set.
func TSET(a uint8, m uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	sr.SetNZ(a - m)
	return m | a, sr
}

// TCLR sets the N and Z flags from the comparison of a with m and returns m
// with the bits set in a cleared.
func TCLR(a uint8, m uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	sr.SetNZ(a - m)
	return m &^ a, sr
}
