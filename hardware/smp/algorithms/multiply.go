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

// MUL multiplies y by a. The 16bit result is returned as the high byte (y)
// and the low byte (a). The N and Z flags are set from the high byte only.
func MUL(y uint8, a uint8, sr registers.StatusRegister) (uint8, uint8, registers.StatusRegister) {
	r := uint16(y) * uint16(a)
	y = uint8(r >> 8)
	a = uint8(r)
	sr.SetNZ(y)
	return y, a, sr
}

// DIV divides the 16bit value ya by x. The quotient is returned in a and the
// remainder in y.
//
// The V flag is set if the quotient does not fit in 8bits. When that happens
// the result is not a true division but the value the hardware produces,
// which depends on the shift-and-subtract circuit used by the silicon. A
// divisor of zero is handled by the same path and does not fail.
func DIV(ya uint16, x uint8, sr registers.StatusRegister) (uint8, uint8, registers.StatusRegister) {
	y := uint8(ya >> 8)

	sr.Overflow = y >= x
	sr.HalfCarry = y&0x0f >= x&0x0f

	var a uint8

	if int(y) < int(x)<<1 {
		a = uint8(int(ya) / int(x))
		y = uint8(int(ya) % int(x))
	} else {
		d := int(ya) - int(x)<<9
		a = uint8(255 - d/(256-int(x)))
		y = uint8(int(x) + d%(256-int(x)))
	}

	sr.SetNZ(a)
	return y, a, sr
}
