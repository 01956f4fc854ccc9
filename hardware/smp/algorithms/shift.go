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

// ASL shifts x left. Bit 7 is shifted into the carry flag and bit 0 is
// cleared.
func ASL(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	sr.Carry = x&0x80 == 0x80
	x <<= 1
	sr.SetNZ(x)
	return x, sr
}

// LSR shifts x right. Bit 0 is shifted into the carry flag and bit 7 is
// cleared.
func LSR(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	sr.Carry = x&0x01 == 0x01
	x >>= 1
	sr.SetNZ(x)
	return x, sr
}

// ROL rotates x left through the carry flag.
func ROL(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	c := sr.Carry
	sr.Carry = x&0x80 == 0x80
	x <<= 1
	if c {
		x |= 0x01
	}
	sr.SetNZ(x)
	return x, sr
}

// ROR rotates x right through the carry flag.
func ROR(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	c := sr.Carry
	sr.Carry = x&0x01 == 0x01
	x >>= 1
	if c {
		x |= 0x80
	}
	sr.SetNZ(x)
	return x, sr
}

// INC adds one to x. The carry flag is not affected.
func INC(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x++
	sr.SetNZ(x)
	return x, sr
}

// DEC subtracts one from x. The carry flag is not affected.
func DEC(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x--
	sr.SetNZ(x)
	return x, sr
}

// XCN exchanges the nibbles of x.
func XCN(x uint8, sr registers.StatusRegister) (uint8, registers.StatusRegister) {
	x = x>>4 | x<<4
	sr.SetNZ(x)
	return x, sr
}
