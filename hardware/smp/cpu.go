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
	"errors"
	"fmt"

	"github.com/jetsetilly/spc700/hardware/memory/smpbus"
	"github.com/jetsetilly/spc700/hardware/smp/execution"
	"github.com/jetsetilly/spc700/hardware/smp/instructions"
	"github.com/jetsetilly/spc700/hardware/smp/registers"
	"github.com/jetsetilly/spc700/logger"
)

// ResetVector is the address of the two bytes (little endian) loaded into the
// program counter on reset.
const ResetVector = 0xfffe

// sentinal errors returned by ExecuteInstruction.
var ErrMidInstruction = errors.New("smp: starting a new instruction is invalid mid-instruction")

// latches hold the intermediate values of multi-cycle instructions. they
// are part of the SMP state and are preserved by serialisation.
type latches struct {
	dp  uint16
	sp  uint16
	rd  uint16
	wr  uint8
	bit uint8
}

// SMP implements the SPC700. Register logic is implemented by the types in
// the registers sub-package.
type SMP struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	latch latches

	mem          smpbus.Memory
	instructions []*instructions.Definition

	// cycleCallback is called after every cycle of the current instruction
	cycleCallback func() error

	// the callback used by Step() and Run(). see SetCycleCallback()
	stepCallback func() error

	// the SMP has executed SLEEP or STOP. requires a Reset()
	halted bool

	// running total of cycles. not reset by Reset()
	cycles uint64

	// the SMP has been reset or its state has been restored. the next
	// instruction can begin even though LastResult is not final
	interrupted bool

	// last result. updated as the instruction progresses
	LastResult execution.Result

	// NoFlowControl sets whether the SMP responds accurately to instructions
	// that affect the flow of the program (branches, jumps, subroutines and
	// halting). we use this in the disassembly package to make sure we reach
	// every part of the program
	NoFlowControl bool
}

// NewSMP is the preferred method of initialisation for the SMP structure. The
// SMP is not reset and the program counter is zero. Call Reset() before
// executing instructions.
func NewSMP(mem smpbus.Memory) *SMP {
	return &SMP{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
		stepCallback: NilCycleCallback,
		interrupted:  true,
	}
}

// Snapshot creates a copy of the SMP in its current state.
func (mc *SMP) Snapshot() *SMP {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the SMP.
func (mc *SMP) Plumb(mem smpbus.Memory) {
	mc.mem = mem
}

func (mc *SMP) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the program counter from the
// reset vector. The running cycle count is not affected and the reads of the
// reset vector are not counted as cycles.
func (mc *SMP) Reset() error {
	mc.LastResult.Reset()
	mc.interrupted = true
	mc.halted = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xef)
	mc.Status.Load(registers.Zero)
	mc.latch = latches{}

	lo, err := mc.mem.Read(ResetVector)
	if err != nil {
		return fmt.Errorf("smp: reset: %w", err)
	}
	hi, err := mc.mem.Read(ResetVector + 1)
	if err != nil {
		return fmt.Errorf("smp: reset: %w", err)
	}
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	logger.Logf(logger.Allow, "SMP", "reset: PC=%s", mc.PC)

	return nil
}

// YA returns the 16bit value formed by the Y register (high byte) and the A
// register (low byte).
func (mc *SMP) YA() uint16 {
	return uint16(mc.Y.Value())<<8 | uint16(mc.A.Value())
}

// SetYA loads the Y and A registers with the high and low bytes of v.
func (mc *SMP) SetYA(v uint16) {
	mc.Y.Load(uint8(v >> 8))
	mc.A.Load(uint8(v))
}

// Halted returns true if the SMP has executed SLEEP or STOP and has not been
// reset since.
func (mc *SMP) Halted() bool {
	return mc.halted
}

// Cycles returns the total number of cycles consumed by the SMP.
func (mc *SMP) Cycles() uint64 {
	return mc.cycles
}

// SetCycleCallback sets the callback used by Step() and Run(). A nil
// callback is the same as NilCycleCallback.
func (mc *SMP) SetCycleCallback(f func() error) {
	if f == nil {
		f = NilCycleCallback
	}
	mc.stepCallback = f
}

// NilCycleCallback can be provided as an argument to ExecuteInstruction().
// It's a convenient do-nothing function.
func NilCycleCallback() error {
	return nil
}
