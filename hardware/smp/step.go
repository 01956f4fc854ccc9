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
	"github.com/jetsetilly/spc700/hardware/smp/execution"
)

// ExecuteInstruction steps the SMP forward one instruction. The basic process
// when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. hand control to the function for the opcode, which reads operands and
//     performs the operation in the order of the silicon
//
// If the SMP is halted, no instruction is executed. Instead the SMP idles for
// execution.IdleCycles cycles.
//
// After every cycle the cycleCallback() function is run, thereby allowing the
// rest of the system to operate. A nil cycleCallback is the same as
// NilCycleCallback.
//
// An error from the memory implementation or from the callback ends the
// instruction immediately. The SMP is left mid-instruction and must be reset
// (or have its state restored) before another instruction can begin.
func (mc *SMP) ExecuteInstruction(cycleCallback func() error) error {
	// a previous call to ExecuteInstruction() has not yet completed. it is
	// impossible to begin a new instruction
	if !mc.LastResult.Final && !mc.interrupted {
		return ErrMidInstruction
	}
	mc.interrupted = false

	if cycleCallback == nil {
		cycleCallback = NilCycleCallback
	}
	mc.cycleCallback = cycleCallback

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	if mc.halted {
		mc.LastResult.Idle = true
		err := mc.idleN(execution.IdleCycles)
		if err != nil {
			return err
		}
		mc.LastResult.Final = true
		return nil
	}

	// +1 cycle
	opcode, err := mc.fetchOpcode()
	if err != nil {
		return err
	}

	err = opcodes[opcode](mc)
	if err != nil {
		return err
	}

	mc.LastResult.Final = true

	return nil
}

// Step executes one instruction (or one idle period if the SMP is halted)
// using the callback set by SetCycleCallback(). Returns the number of cycles
// consumed.
func (mc *SMP) Step() (int, error) {
	err := mc.ExecuteInstruction(mc.stepCallback)
	return mc.LastResult.Cycles, err
}

// Run executes instructions until at least budget cycles have elapsed.
// Instructions are never split so the number of cycles consumed may exceed
// the budget. The excess is returned and should be subtracted from the next
// budget.
//
// A budget of zero or less executes nothing and returns the budget negated.
// In other words, an excess that is larger than the next budget is carried
// forward.
func (mc *SMP) Run(budget int) (int, error) {
	var elapsed int
	for elapsed < budget {
		n, err := mc.Step()
		elapsed += n
		if err != nil {
			return elapsed - budget, err
		}
	}
	return elapsed - budget, nil
}
