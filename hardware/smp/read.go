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
	"github.com/jetsetilly/spc700/hardware/smp/registers"
)

// the read family fetches an operand and combines it with a register using
// one of the binary algorithms. loads are the same as any other read with
// algorithms.LD as the operation

// apply a binary algorithm to the selected register and v
func (mc *SMP) apply(fn algorithms.Binary, r regSel, v uint8) {
	reg := r(mc)
	mc.latch.rd = uint16(v)
	res, sr := fn(reg.Value(), v, mc.Status)
	reg.Load(res)
	mc.Status = sr
}

// OP reg, #imm
func readImmediate(fn algorithms.Binary, r regSel) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		v, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.apply(fn, r, v)
		return nil
	}
}

// OP reg, dp
func readDirectPage(fn algorithms.Binary, r regSel) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dp)

		// +1 cycle
		v, err := mc.readDP(dp)
		if err != nil {
			return err
		}
		mc.apply(fn, r, v)
		return nil
	}
}

// OP reg, dp+idx
func readDirectPageIndexed(fn algorithms.Binary, r regSel, idx regSel) opFunc {
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

		// indexing wraps within the direct page
		dp += idx(mc).Value()
		mc.latch.dp = uint16(dp)

		// +1 cycle
		v, err := mc.readDP(dp)
		if err != nil {
			return err
		}
		mc.apply(fn, r, v)
		return nil
	}
}

// OP reg, !abs
func readAbsolute(fn algorithms.Binary, r regSel) opFunc {
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
		mc.apply(fn, r, v)
		return nil
	}
}

// OP A, !abs+idx
func readAbsoluteIndexed(fn algorithms.Binary, idx regSel) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		address, err := mc.fetchWord()
		if err != nil {
			return err
		}

		// +1 cycle
		err = mc.idle()
		if err != nil {
			return err
		}

		// indexing wraps in 16bits
		address += uint16(idx(mc).Value())
		mc.latch.dp = address

		// +1 cycle
		v, err := mc.read(address)
		if err != nil {
			return err
		}
		mc.apply(fn, regA, v)
		return nil
	}
}

// OP A, (X)
func readIndirectX(fn algorithms.Binary) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		err := mc.idle()
		if err != nil {
			return err
		}

		// +1 cycle
		v, err := mc.readDP(mc.X.Value())
		if err != nil {
			return err
		}
		mc.apply(fn, regA, v)
		return nil
	}
}

// pointer reads the 16bit address stored at dp. the high byte is read from
// the next address in the direct page, wrapping within the page
func (mc *SMP) pointer(dp uint8) (uint16, error) {
	// +1 cycle
	lo, err := mc.readDP(dp)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	hi, err := mc.readDP(dp + 1)
	if err != nil {
		return 0, err
	}

	mc.latch.sp = uint16(hi)<<8 | uint16(lo)
	return mc.latch.sp, nil
}

// OP A, [dp+X]
func readDirectPageIndexedIndirect(fn algorithms.Binary) opFunc {
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
		mc.latch.dp = uint16(dp)

		// +2 cycles
		address, err := mc.pointer(dp)
		if err != nil {
			return err
		}

		// +1 cycle
		v, err := mc.read(address)
		if err != nil {
			return err
		}
		mc.apply(fn, regA, v)
		return nil
	}
}

// OP A, [dp]+Y
func readDirectPageIndirectIndexed(fn algorithms.Binary) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dp)

		// +1 cycle
		err = mc.idle()
		if err != nil {
			return err
		}

		// +2 cycles
		address, err := mc.pointer(dp)
		if err != nil {
			return err
		}

		// +1 cycle
		v, err := mc.read(address + uint16(mc.Y.Value()))
		if err != nil {
			return err
		}
		mc.apply(fn, regA, v)
		return nil
	}
}

// ADDW, SUBW, CMPW and MOVW YA, dp. all but CMPW have an internal cycle
// between reading the low and high bytes
func readWord(fn algorithms.Word, idle bool) opFunc {
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

		if idle {
			// +1 cycle
			err = mc.idle()
			if err != nil {
				return err
			}
		}

		// +1 cycle
		hi, err := mc.readDP(dp + 1)
		if err != nil {
			return err
		}

		mc.latch.rd = uint16(hi)<<8 | uint16(lo)

		var ya uint16
		ya, mc.Status = fn(mc.YA(), mc.latch.rd, mc.Status)
		mc.SetYA(ya)

		return nil
	}
}

// absoluteBit fetches the operand of a m.b instruction and reads the value at
// the 13bit address
func (mc *SMP) absoluteBit() (uint8, error) {
	// +2 cycles
	operand, err := mc.fetchWord()
	if err != nil {
		return 0, err
	}
	mc.latch.bit = uint8(operand >> 13)
	mc.latch.dp = operand & 0x1fff

	// +1 cycle
	v, err := mc.read(mc.latch.dp)
	if err != nil {
		return 0, err
	}
	mc.latch.rd = uint16(v)

	return v, nil
}

// OR1, AND1, EOR1 and MOV1 C, m.b. the operation receives the current state
// of the carry flag and the addressed bit and returns the new carry flag
func readCarryBit(fn func(c bool, b bool) bool, idle bool) opFunc {
	return func(mc *SMP) error {
		// +3 cycles
		v, err := mc.absoluteBit()
		if err != nil {
			return err
		}

		if idle {
			// +1 cycle
			err = mc.idle()
			if err != nil {
				return err
			}
		}

		mc.Status.Carry = fn(mc.Status.Carry, algorithms.TestBit(v, mc.latch.bit))
		return nil
	}
}

// the carry bit operations used by readCarryBit()
var (
	carryOR     = func(c bool, b bool) bool { return c || b }
	carryORNot  = func(c bool, b bool) bool { return c || !b }
	carryAND    = func(c bool, b bool) bool { return c && b }
	carryANDNot = func(c bool, b bool) bool { return c && !b }
	carryEOR    = func(c bool, b bool) bool { return c != b }
	carryMOV    = func(_ bool, b bool) bool { return b }
)

// register selectors
type regSel func(mc *SMP) *registers.Register

var (
	regA regSel = func(mc *SMP) *registers.Register { return &mc.A }
	regX regSel = func(mc *SMP) *registers.Register { return &mc.X }
	regY regSel = func(mc *SMP) *registers.Register { return &mc.Y }
)
