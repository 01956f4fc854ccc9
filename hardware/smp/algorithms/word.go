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

// ADDW adds y to x. The carry flag is cleared before the addition, which is
// performed as two chained 8bit additions. The H and V flags are the result
// of the high byte addition.
func ADDW(x uint16, y uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	var lo, hi uint8
	sr.Carry = false
	lo, sr = ADC(uint8(x), uint8(y), sr)
	hi, sr = ADC(uint8(x>>8), uint8(y>>8), sr)
	r := uint16(hi)<<8 | uint16(lo)
	sr.Zero = r == 0
	return r, sr
}

// SUBW subtracts y from x. The carry flag is set before the subtraction,
// which is performed as two chained 8bit subtractions.
func SUBW(x uint16, y uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	var lo, hi uint8
	sr.Carry = true
	lo, sr = SBC(uint8(x), uint8(y), sr)
	hi, sr = SBC(uint8(x>>8), uint8(y>>8), sr)
	r := uint16(hi)<<8 | uint16(lo)
	sr.Zero = r == 0
	return r, sr
}

// CMPW sets the N, Z and C flags as though y had been subtracted from x. The
// result is x.
func CMPW(x uint16, y uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	r := int(x) - int(y)
	sr.Negative = r&0x8000 == 0x8000
	sr.Zero = uint16(r) == 0
	sr.Carry = r >= 0
	return x, sr
}

// LDW loads y, setting the N and Z flags from the 16bit value.
func LDW(_ uint16, y uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	sr.SetNZ16(y)
	return y, sr
}

// INCW adds one to a 16bit value. The carry flag is not affected.
func INCW(x uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	x++
	sr.SetNZ16(x)
	return x, sr
}

// DECW subtracts one from a 16bit value. The carry flag is not affected.
func DECW(x uint16, sr registers.StatusRegister) (uint16, registers.StatusRegister) {
	x--
	sr.SetNZ16(x)
	return x, sr
}
