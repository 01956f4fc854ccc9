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

// the move family stores registers to memory and transfers values between
// registers. a store always reads the target address before writing to it

// MOV dp, reg
func storeDirectPage(r regSel) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.dp = uint16(dp)

		// dummy read
		// +1 cycle
		_, err = mc.readDP(dp)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.writeDP(dp, r(mc).Value())
	}
}

// MOV dp+idx, reg
func storeDirectPageIndexed(r regSel, idx regSel) opFunc {
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

		dp += idx(mc).Value()
		mc.latch.dp = uint16(dp)

		// dummy read
		// +1 cycle
		_, err = mc.readDP(dp)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.writeDP(dp, r(mc).Value())
	}
}

// MOV !abs, reg
func storeAbsolute(r regSel) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		address, err := mc.fetchWord()
		if err != nil {
			return err
		}
		mc.latch.dp = address

		// dummy read
		// +1 cycle
		_, err = mc.read(address)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.write(address, r(mc).Value())
	}
}

// MOV !abs+idx, A
func storeAbsoluteIndexed(idx regSel) opFunc {
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

		address += uint16(idx(mc).Value())
		mc.latch.dp = address

		// dummy read
		// +1 cycle
		_, err = mc.read(address)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.write(address, mc.A.Value())
	}
}

// MOV (X), A
func storeIndirectX(mc *SMP) error {
	// +1 cycle
	err := mc.idle()
	if err != nil {
		return err
	}

	// dummy read
	// +1 cycle
	_, err = mc.readDP(mc.X.Value())
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.writeDP(mc.X.Value(), mc.A.Value())
}

// MOV [dp+X], A
func storeDirectPageIndexedIndirect(mc *SMP) error {
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
	address, err := mc.pointer(dp)
	if err != nil {
		return err
	}
	mc.latch.dp = address

	// dummy read
	// +1 cycle
	_, err = mc.read(address)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.write(address, mc.A.Value())
}

// MOV [dp]+Y, A
func storeDirectPageIndirectIndexed(mc *SMP) error {
	// +1 cycle
	dp, err := mc.fetch()
	if err != nil {
		return err
	}

	// +2 cycles
	address, err := mc.pointer(dp)
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.idle()
	if err != nil {
		return err
	}

	address += uint16(mc.Y.Value())
	mc.latch.dp = address

	// dummy read
	// +1 cycle
	_, err = mc.read(address)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.write(address, mc.A.Value())
}

// MOV (X)+, A
func storeIndirectXInc(mc *SMP) error {
	// +2 cycles
	err := mc.idleN(2)
	if err != nil {
		return err
	}

	x := mc.X.Value()
	mc.X.Add(1)

	// +1 cycle
	return mc.writeDP(x, mc.A.Value())
}

// MOV A, (X)+
func loadIndirectXInc(mc *SMP) error {
	// +1 cycle
	err := mc.idle()
	if err != nil {
		return err
	}

	x := mc.X.Value()
	mc.X.Add(1)

	// +1 cycle
	v, err := mc.readDP(x)
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.idle()
	if err != nil {
		return err
	}

	mc.A.Load(v)
	mc.Status.SetNZ(v)
	return nil
}

// MOVW dp, YA
func storeWord(mc *SMP) error {
	// +1 cycle
	dp, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.dp = uint16(dp)

	// dummy read of the low byte only
	// +1 cycle
	_, err = mc.readDP(dp)
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.writeDP(dp, mc.A.Value())
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.writeDP(dp+1, mc.Y.Value())
}

// MOV dp, dp
func moveDirectPage(mc *SMP) error {
	// +1 cycle
	src, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.sp = uint16(src)

	// +1 cycle
	v, err := mc.readDP(src)
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(v)

	// +1 cycle
	dst, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.dp = uint16(dst)

	// no dummy read of the destination
	// +1 cycle
	return mc.writeDP(dst, v)
}

// MOV dp, #imm
func moveImmediate(mc *SMP) error {
	// +1 cycle
	v, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(v)

	// +1 cycle
	dp, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.dp = uint16(dp)

	// dummy read
	// +1 cycle
	_, err = mc.readDP(dp)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.writeDP(dp, v)
}

// MOV reg, reg. all register to register transfers set the N and Z flags
// except for transfers to the stack pointer
func transfer(dst regSel, src regSel) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		err := mc.idle()
		if err != nil {
			return err
		}

		v := src(mc).Value()
		dst(mc).Load(v)
		mc.Status.SetNZ(v)
		return nil
	}
}

// MOV X, SP
func transferFromSP(mc *SMP) error {
	// +1 cycle
	err := mc.idle()
	if err != nil {
		return err
	}

	v := mc.SP.Value()
	mc.X.Load(v)
	mc.Status.SetNZ(v)
	return nil
}

// MOV SP, X
func transferToSP(mc *SMP) error {
	// +1 cycle
	err := mc.idle()
	if err != nil {
		return err
	}

	mc.SP.Load(mc.X.Value())
	return nil
}
