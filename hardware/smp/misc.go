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
	"github.com/jetsetilly/spc700/logger"
)

// NOP
func nop(mc *SMP) error {
	// +1 cycle
	return mc.idle()
}

// CLRC, SETC, NOTC, CLRV, CLRP, SETP, EI and DI. cycles is the number of
// internal cycles
func setFlags(fn func(sr *registers.StatusRegister), cycles int) opFunc {
	return func(mc *SMP) error {
		err := mc.idleN(cycles)
		if err != nil {
			return err
		}
		fn(&mc.Status)
		return nil
	}
}

// the flag operations used by setFlags()
var (
	flagCLRC = func(sr *registers.StatusRegister) { sr.Carry = false }
	flagSETC = func(sr *registers.StatusRegister) { sr.Carry = true }
	flagNOTC = func(sr *registers.StatusRegister) { sr.Carry = !sr.Carry }
	flagCLRP = func(sr *registers.StatusRegister) { sr.DirectPage = false }
	flagSETP = func(sr *registers.StatusRegister) { sr.DirectPage = true }
	flagEI   = func(sr *registers.StatusRegister) { sr.InterruptEnable = true }
	flagDI   = func(sr *registers.StatusRegister) { sr.InterruptEnable = false }

	// CLRV clears the half-carry flag as well as the overflow flag
	flagCLRV = func(sr *registers.StatusRegister) {
		sr.Overflow = false
		sr.HalfCarry = false
	}
)

// PUSH reg
func pushRegister(r regSel) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		err := mc.idleN(2)
		if err != nil {
			return err
		}

		// +1 cycle
		return mc.push(r(mc).Value())
	}
}

// PUSH PSW
func pushStatus(mc *SMP) error {
	// +2 cycles
	err := mc.idleN(2)
	if err != nil {
		return err
	}

	// +1 cycle
	return mc.push(mc.Status.Value())
}

// POP reg. flags are not affected
func pullRegister(r regSel) opFunc {
	return func(mc *SMP) error {
		// +2 cycles
		err := mc.idleN(2)
		if err != nil {
			return err
		}

		// +1 cycle
		v, err := mc.pull()
		if err != nil {
			return err
		}

		r(mc).Load(v)
		return nil
	}
}

// POP PSW
func pullStatus(mc *SMP) error {
	// +2 cycles
	err := mc.idleN(2)
	if err != nil {
		return err
	}

	// +1 cycle
	v, err := mc.pull()
	if err != nil {
		return err
	}

	mc.Status.Load(v)
	return nil
}

// XCN, DAA and DAS. the operation is applied to the accumulator after the
// internal cycles
func accumulator(fn algorithms.Unary, cycles int) opFunc {
	return func(mc *SMP) error {
		err := mc.idleN(cycles)
		if err != nil {
			return err
		}

		var v uint8
		v, mc.Status = fn(mc.A.Value(), mc.Status)
		mc.A.Load(v)
		return nil
	}
}

// MUL YA
func multiply(mc *SMP) error {
	// +8 cycles
	err := mc.idleN(8)
	if err != nil {
		return err
	}

	var y, a uint8
	y, a, mc.Status = algorithms.MUL(mc.Y.Value(), mc.A.Value(), mc.Status)
	mc.Y.Load(y)
	mc.A.Load(a)
	return nil
}

// DIV YA, X
func divide(mc *SMP) error {
	// +11 cycles
	err := mc.idleN(11)
	if err != nil {
		return err
	}

	var y, a uint8
	y, a, mc.Status = algorithms.DIV(mc.YA(), mc.X.Value(), mc.Status)
	mc.Y.Load(y)
	mc.A.Load(a)
	return nil
}

// SLEEP and STOP. the SMP halts at the end of the instruction and stays
// halted until Reset()
func halt(mc *SMP) error {
	// +2 cycles
	err := mc.idleN(2)
	if err != nil {
		return err
	}

	if mc.NoFlowControl {
		return nil
	}

	mc.halted = true
	logger.Logf(logger.Allow, "SMP", "halted by %s at %04x", mc.LastResult.Defn.Operator, mc.LastResult.Address)

	return nil
}
