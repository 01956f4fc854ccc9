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

package smp

import (
	"github.com/jetsetilly/spc700/hardware/smp/algorithms"
)

// the read-modify-write family reads a value, alters it and writes it back
// to the same address. the read and the write are always separate bus
// accesses

// ASL, ROL, LSR, ROR, DEC and INC on a register
func modifyRegister(fn algorithms.Unary, r regSel) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		err := mc.idle()
		if err != nil {
			return err
		}

		reg := r(mc)
		var v uint8
		v, mc.Status = fn(reg.Value(), mc.Status)
		reg.Load(v)
		return nil
	}
}

// modify the value at address, which has already been resolved
func (mc *SMP) modify(fn algorithms.Unary, address uint16) error {
	mc.latch.dp = address

	// +1 cycle
	v, err := mc.read(address)
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(v)

	v, mc.Status = fn(v, mc.Status)
	mc.latch.wr = v

	// +1 cycle
	return mc.write(address, v)
}

// OP dp
func modifyDirectPage(fn algorithms.Unary) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}

		// +2 cycles
		return mc.modify(fn, mc.Status.Page()|uint16(dp))
	}
}

// OP dp+X
func modifyDirectPageX(fn algorithms.Unary) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.idle()
		if err != nil {
			return err
		}

		dp += mc.X.Value()

		// +2 cycles
		return mc.modify(fn, mc.Status.Page()|uint16(dp))
	}
}

// OP !abs
func modifyAbsolute(fn algorithms.Unary) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		address, err := mc.fetchWord()
		if err != nil {
			return err
		}

		// +2 cycles
		return mc.modify(fn, address)
	}
}

// INCW and DECW. the low byte is written back before the high byte is read.
// the carry (or borrow) from the low byte is added to the high byte
func modifyWord(fn algorithms.UnaryWord) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dp)

		// +1 cycle
		lo, err := mc.readDP(dp)
		if err != nil {
			return err
		}

		// applying the operation to the low byte alone leaves the carry in
		// the high byte. 0x01 for an increment and 0xff for a decrement
		mc.latch.rd, _ = fn(uint16(lo), mc.Status)

		// +1 cycle
		err = mc.writeDP(dp, uint8(mc.latch.rd))
		if err != nil {
			return err
		}

		// +1 cycle
		hi, err := mc.readDP(dp + 1)
		if err != nil {
			return err
		}

		hi += uint8(mc.latch.rd >> 8)
		mc.latch.rd = uint16(hi)<<8 | mc.latch.rd&0x00ff

		// +1 cycle
		err = mc.writeDP(dp+1, hi)
		if err != nil {
			return err
		}

		mc.Status.SetNZ16(mc.latch.rd)
		return nil
	}
}

// SET1 and CLR1 dp.b
func modifyDirectPageBit(bit uint8, set bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dp)
		mc.latch.bit = bit

		// +1 cycle
		v, err := mc.readDP(dp)
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(v)

		v = algorithms.SetBit(v, bit, set)
		mc.latch.wr = v

		// +1 cycle
		return mc.writeDP(dp, v)
	}
}

// TSET1 and TCLR1 !abs
func modifyTest(fn algorithms.Binary) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		address, err := mc.fetchWord()
		if err != nil {
			return err
		}
		mc.latch.dp = address

		// +1 cycle
		v, err := mc.read(address)
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(v)

		v, mc.Status = fn(mc.A.Value(), v, mc.Status)
		mc.latch.wr = v

		// dummy read
		// +1 cycle
		_, err = mc.read(address)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.write(address, v)
	}
}

// MOV1 m.b, C
func storeCarryBit(mc *SMP) error {
	// +3 cycles
	v, err := mc.absoluteBit()
	if err != nil {
		return err
	}

	v = algorithms.SetBit(v, mc.latch.bit, mc.Status.Carry)
	mc.latch.wr = v

	// +1 cycle
	err = mc.idle()
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.write(mc.latch.dp, v)
}

// NOT1 m.b
func invertBit(mc *SMP) error {
	// +3 cycles
	v, err := mc.absoluteBit()
	if err != nil {
		return err
	}

	v ^= 1 << mc.latch.bit
	mc.latch.wr = v

	// +1 cycle
	return mc.write(mc.latch.dp, v)
}

// OP dp, dp. when write is false (CMP) the write is replaced by an internal
// cycle
func modifyDirectPageDirectPage(fn algorithms.Binary, write bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		src, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.sp = uint16(src)

		// +1 cycle
		rd, err := mc.readDP(src)
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rd)

		// +1 cycle
		dst, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dst)

		// +2 cycles
		return mc.combine(fn, dst, rd, write)
	}
}

// OP dp, #imm
func modifyDirectPageImmediate(fn algorithms.Binary, write bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		rd, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rd)

		// +1 cycle
		dst, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dst)

		// +2 cycles
		return mc.combine(fn, dst, rd, write)
	}
}

// OP (X), (Y)
func modifyIndirectXIndirectY(fn algorithms.Binary, write bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		err := mc.idle()
		if err != nil {
			return err
		}

		// +1 cycle
		rd, err := mc.readDP(mc.Y.Value())
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rd)
		mc.latch.dp = uint16(mc.X.Value())

		// +2 cycles
		return mc.combine(fn, mc.X.Value(), rd, write)
	}
}

// combine reads the value at dp, combines it with rd and writes the result
// back to dp
func (mc *SMP) combine(fn algorithms.Binary, dp uint8, rd uint8, write bool) error {
	// +1 cycle
	v, err := mc.readDP(dp)
	if err != nil {
		return err
	}

	v, mc.Status = fn(v, rd, mc.Status)
	mc.latch.wr = v

	// +1 cycle
	if !write {
		return mc.idle()
	}
	return mc.writeDP(dp, v)
}
