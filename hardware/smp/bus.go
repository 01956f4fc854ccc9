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
	"fmt"
)

// cycle ends the current cycle. every bus access and internal cycle must
// finish with a call to cycle()
func (mc *SMP) cycle() error {
	mc.LastResult.Cycles++
	mc.cycles++
	return mc.cycleCallback()
}

// read returns the value at the specified address
//
// side-effects:
//   - calls cycleCallback after memory read
func (mc *SMP) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		return 0, fmt.Errorf("smp: read %#04x: %w", address, err)
	}

	// +1 cycle
	return v, mc.cycle()
}

// write value to the specified address
//
// side-effects:
//   - calls cycleCallback after memory write
func (mc *SMP) write(address uint16, value uint8) error {
	err := mc.mem.Write(address, value)
	if err != nil {
		return fmt.Errorf("smp: write %#04x: %w", address, err)
	}

	// +1 cycle
	return mc.cycle()
}

// idle is an internal cycle. there is no bus activity
//
// side-effects:
//   - calls cycleCallback
func (mc *SMP) idle() error {
	// +1 cycle
	return mc.cycle()
}

// idleN runs n internal cycles
func (mc *SMP) idleN(n int) error {
	for i := 0; i < n; i++ {
		if err := mc.idle(); err != nil {
			return err
		}
	}
	return nil
}

// readDP reads from the direct page currently selected by the P flag. the
// address wraps within the page
func (mc *SMP) readDP(address uint8) (uint8, error) {
	return mc.read(mc.Status.Page() | uint16(address))
}

// writeDP writes to the direct page currently selected by the P flag
func (mc *SMP) writeDP(address uint8, value uint8) error {
	return mc.write(mc.Status.Page()|uint16(address), value)
}

// push value onto the stack
func (mc *SMP) push(value uint8) error {
	return mc.write(mc.SP.Push(), value)
}

// pull a value from the stack
func (mc *SMP) pull() (uint8, error) {
	return mc.read(mc.SP.Pull())
}

// fetchOpcode reads the first byte of a new instruction and looks up its
// definition
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.Defn
//   - calls cycleCallback after memory read
func (mc *SMP) fetchOpcode() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, fmt.Errorf("smp: fetch %#04x: %w", mc.PC.Address(), err)
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount = 1
	mc.LastResult.Defn = mc.instructions[v]

	// +1 cycle
	return v, mc.cycle()
}

// fetch reads an operand byte from the program
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount and LastResult.InstructionData
//   - calls cycleCallback after memory read
func (mc *SMP) fetch() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, fmt.Errorf("smp: fetch %#04x: %w", mc.PC.Address(), err)
	}

	mc.PC.Add(1)
	if n := mc.LastResult.ByteCount - 1; n >= 0 && n < len(mc.LastResult.InstructionData) {
		mc.LastResult.InstructionData[n] = v
	}
	mc.LastResult.ByteCount++

	// +1 cycle
	return v, mc.cycle()
}

// fetchWord reads two operand bytes from the program, low byte first
func (mc *SMP) fetchWord() (uint16, error) {
	lo, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := mc.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}
