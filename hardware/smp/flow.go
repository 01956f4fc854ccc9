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

// the flow family changes the program counter. conditional instructions take
// two additional internal cycles when the branch is taken

// take the branch with the displacement in the rd latch. the decision to
// branch has already been made
func (mc *SMP) branch() error {
	// +2 cycles
	err := mc.idleN(2)
	if err != nil {
		return err
	}

	mc.LastResult.BranchSuccess = true
	mc.PC.AddSigned(uint8(mc.latch.rd))
	return nil
}

// Bxx rel
func branchIf(cond func(sr registers.StatusRegister) bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		rel, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rel)

		if mc.NoFlowControl || !cond(mc.Status) {
			return nil
		}

		// +2 cycles
		return mc.branch()
	}
}

// the branch conditions used by branchIf()
var (
	condPL = func(sr registers.StatusRegister) bool { return !sr.Negative }
	condMI = func(sr registers.StatusRegister) bool { return sr.Negative }
	condVC = func(sr registers.StatusRegister) bool { return !sr.Overflow }
	condVS = func(sr registers.StatusRegister) bool { return sr.Overflow }
	condCC = func(sr registers.StatusRegister) bool { return !sr.Carry }
	condCS = func(sr registers.StatusRegister) bool { return sr.Carry }
	condNE = func(sr registers.StatusRegister) bool { return !sr.Zero }
	condEQ = func(sr registers.StatusRegister) bool { return sr.Zero }
)

// BRA rel. the internal cycles happen regardless of NoFlowControl
func branchAlways(mc *SMP) error {
	// +1 cycle
	rel, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(rel)

	// +2 cycles
	err = mc.idleN(2)
	if err != nil {
		return err
	}

	if !mc.NoFlowControl {
		mc.PC.AddSigned(rel)
	}
	return nil
}

// BBS and BBC dp.b, rel
func branchBit(bit uint8, set bool) opFunc {
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
		mc.latch.sp = uint16(v)

		// +1 cycle
		rel, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rel)

		// +1 cycle
		err = mc.idle()
		if err != nil {
			return err
		}

		if mc.NoFlowControl || algorithms.TestBit(v, bit) != set {
			return nil
		}

		// +2 cycles
		return mc.branch()
	}
}

// CBNE dp, rel and CBNE dp+X, rel
func compareBranch(indexed bool) opFunc {
	return func(mc *SMP) error {
		// +1 cycle
		dp, err := mc.fetch()
		if err != nil {
			return err
		}

		if indexed {
			// +1 cycle
			err = mc.idle()
			if err != nil {
				return err
			}
			dp += mc.X.Value()
		}
		mc.latch.dp = uint16(dp)

		// +1 cycle
		v, err := mc.readDP(dp)
		if err != nil {
			return err
		}
		mc.latch.sp = uint16(v)

		// +1 cycle
		rel, err := mc.fetch()
		if err != nil {
			return err
		}
		mc.latch.rd = uint16(rel)

		// +1 cycle
		err = mc.idle()
		if err != nil {
			return err
		}

		if mc.NoFlowControl || mc.A.Value() == v {
			return nil
		}

		// +2 cycles
		return mc.branch()
	}
}

// DBNZ dp, rel
func decrementBranchDirectPage(mc *SMP) error {
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

	v--
	mc.latch.wr = v

	// +1 cycle
	err = mc.writeDP(dp, v)
	if err != nil {
		return err
	}

	// +1 cycle
	rel, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(rel)

	if mc.NoFlowControl || v == 0 {
		return nil
	}

	// +2 cycles
	return mc.branch()
}

// DBNZ Y, rel
func decrementBranchY(mc *SMP) error {
	// +1 cycle
	rel, err := mc.fetch()
	if err != nil {
		return err
	}
	mc.latch.rd = uint16(rel)

	// +1 cycle
	err = mc.idle()
	if err != nil {
		return err
	}

	mc.Y.Add(0xff)

	// +1 cycle
	err = mc.idle()
	if err != nil {
		return err
	}

	if mc.NoFlowControl || mc.Y.IsZero() {
		return nil
	}

	// +2 cycles
	return mc.branch()
}

// jump to address unless NoFlowControl is set
func (mc *SMP) jump(address uint16) {
	mc.latch.rd = address
	if !mc.NoFlowControl {
		mc.PC.Load(address)
	}
}

// JMP !abs
func jumpAbsolute(mc *SMP) error {
	// +2 cycles
	address, err := mc.fetchWord()
	if err != nil {
		return err
	}
	mc.jump(address)
	return nil
}

// JMP [!abs+X]
func jumpIndexedIndirect(mc *SMP) error {
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

	address += uint16(mc.X.Value())
	mc.latch.dp = address

	// +1 cycle
	lo, err := mc.read(address)
	if err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.read(address + 1)
	if err != nil {
		return err
	}

	mc.jump(uint16(hi)<<8 | uint16(lo))
	return nil
}

// pushPC pushes the high byte and then the low byte of the program counter
func (mc *SMP) pushPC() error {
	// +1 cycle
	err := mc.push(mc.PC.Hi())
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.push(mc.PC.Lo())
}

// pullPC pulls the low byte and then the high byte of the program counter
func (mc *SMP) pullPC() error {
	// +1 cycle
	lo, err := mc.pull()
	if err != nil {
		return err
	}

	// +1 cycle
	hi, err := mc.pull()
	if err != nil {
		return err
	}

	mc.jump(uint16(hi)<<8 | uint16(lo))
	return nil
}

// CALL !abs
func call(mc *SMP) error {
	// +2 cycles
	address, err := mc.fetchWord()
	if err != nil {
		return err
	}

	// +3 cycles
	err = mc.idleN(3)
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.pushPC()
	if err != nil {
		return err
	}

	mc.jump(address)
	return nil
}

// PCALL upage
func callUpperPage(mc *SMP) error {
	// +1 cycle
	lo, err := mc.fetch()
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.idleN(2)
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.pushPC()
	if err != nil {
		return err
	}

	mc.jump(0xff00 | uint16(lo))
	return nil
}

// TableVector returns the address of the vector used by TCALL n. TCALL 0
// shares its vector with BRK.
func TableVector(n uint8) uint16 {
	return 0xffde - uint16(n&0x0f)<<1
}

// readVector reads the 16bit address at vector
func (mc *SMP) readVector(vector uint16) (uint16, error) {
	mc.latch.dp = vector

	// +1 cycle
	lo, err := mc.read(vector)
	if err != nil {
		return 0, err
	}

	// +1 cycle
	hi, err := mc.read(vector + 1)
	if err != nil {
		return 0, err
	}

	return uint16(hi)<<8 | uint16(lo), nil
}

// TCALL n
func callTable(n uint8) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		address, err := mc.readVector(TableVector(n))
		if err != nil {
			return err
		}

		// +3 cycles
		err = mc.idleN(3)
		if err != nil {
			return err
		}

		// +2 cycles
		err = mc.pushPC()
		if err != nil {
			return err
		}

		mc.jump(address)
		return nil
	}
}

// BRK
func softwareInterrupt(mc *SMP) error {
	// +2 cycles
	address, err := mc.readVector(TableVector(0))
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.idleN(2)
	if err != nil {
		return err
	}

	// +2 cycles
	err = mc.pushPC()
	if err != nil {
		return err
	}

	// +1 cycle
	err = mc.push(mc.Status.Value())
	if err != nil {
		return err
	}

	mc.jump(address)
	mc.Status.Break = true
	mc.Status.InterruptEnable = false
	return nil
}

// RET
func ret(mc *SMP) error {
	// +2 cycles
	err := mc.pullPC()
	if err != nil {
		return err
	}

	// +2 cycles
	return mc.idleN(2)
}

// RETI
func reti(mc *SMP) error {
	// +1 cycle
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v)

	// +2 cycles
	err = mc.pullPC()
	if err != nil {
		return err
	}

	// +2 cycles
	return mc.idleN(2)
}
