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

// DAA adjusts the accumulator to binary coded decimal after an addition.
func DAA(a uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	if sr.Carry || a > 0x99 {
		a += 0x60
		sr.Carry = true
	}
	if sr.HalfCarry || a&0x0f > 0x09 {
		a += 0x06
	}
	sr.SetNZ(a)
	return a, sr
}

// DAS adjusts the accumulator to binary coded decimal after a subtraction.
func DAS(a uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	if !sr.Carry || a > 0x99 {
		a -= 0x60
		sr.Carry = false
	}
	if !sr.HalfCarry || a&0x0f > 0x09 {
		a -= 0x06
	}
	sr.SetNZ(a)
	return a, sr
}
