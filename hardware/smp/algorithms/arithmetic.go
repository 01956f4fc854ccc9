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

// ADC adds y and the carry flag to x.
func ADC(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	r := int(x) + int(y)
	if sr.Carry {
		r++
	}
	sr.Negative = r&0x80 == 0x80
	sr.Overflow = ^(int(x)^int(y))&(int(x)^r)&0x80 == 0x80
	sr.HalfCarry = (int(x)^int(y)^r)&0x10 == 0x10
	sr.Zero = uint8(r) == 0
	sr.Carry = r > 0xff
	return uint8(r), sr
}

// SBC subtracts y and the inverse of the carry flag from x. The carry flag
// is set if no borrow occurred.
func SBC(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	return ADC(x, ^y, sr)
}

// CMP sets the N, Z and C flags as though y had been subtracted from x. The
// result is x.
func CMP(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	r := int(x) - int(y)
	sr.Negative = r&0x80 == 0x80
	sr.Zero = uint8(r) == 0
	sr.Carry = r >= 0
	return x, sr
}

// AND x with y.
func AND(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x &= y
	sr.SetNZ(x)
	return x, sr
}

// OR x with y.
func OR(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x |= y
	sr.SetNZ(x)
	return x, sr
}

// EOR (exclusive or) x with y.
func EOR(x uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x ^= y
	sr.SetNZ(x)
	return x, sr
}

// LD loads y, setting the N and Z flags. x is ignored.
func LD(_ uint8, y uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	sr.SetNZ(y)
	return y, sr
}
