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

package disassembly

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/spc700/hardware/memory/smpbus"
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/hardware/smp/execution"
	"github.com/jetsetilly/spc700/logger"
)

// Disassembly represents the annotated disassembly of an area of SMP memory.
type Disassembly struct {
	mem smpbus.Peeker

	// the range of addresses that have been disassembled. inclusive
	from uint16
	to   uint16

	// indexed by address
	entries map[uint16]*Entry

	// critical sectioning. entries can be updated by ExecutedEntry() while
	// the disassembly is being written from another goroutine
	crit sync.Mutex
}

// FromMemory disassembles the memory between from and to (inclusive). The
// flow of the program is followed from each of the start addresses. If no
// start addresses are given then the program is followed from the address
// in the reset vector.
func FromMemory(mem smpbus.Peeker, from uint16, to uint16, start ...uint16) (*Disassembly, error) {
	if to < from {
		return nil, fmt.Errorf("disassembly: invalid range (%#04x to %#04x)", from, to)
	}

	dsm := &Disassembly{
		mem:     mem,
		from:    from,
		to:      to,
		entries: make(map[uint16]*Entry),
	}

	mc := smp.NewSMP(peekMemory{mem: mem})
	mc.NoFlowControl = true

	err := dsm.decode(mc)
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	if len(start) == 0 {
		v, err := dsm.peekWord(smp.ResetVector)
		if err != nil {
			return nil, fmt.Errorf("disassembly: %w", err)
		}
		start = append(start, v)
	}

	err = dsm.bless(start)
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	logger.Logf(logger.Allow, "disassembly", "%#04x to %#04x: %d entries blessed", from, to, dsm.Count(EntryLevelBlessed))

	return dsm, nil
}

// Get returns the disassembly entry at the specified address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()
	e, ok := dsm.entries[address]
	return e, ok
}

// Count returns the number of entries at the specified level or higher.
func (dsm *Disassembly) Count(level EntryLevel) int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	var n int
	for _, e := range dsm.entries {
		if e.Level >= level {
			n++
		}
	}
	return n
}

// ExecutedEntry updates the entry for the address in the result. The entry
// is created if the address is outside the disassembled range or if the
// opcode has changed since the disassembly was made.
func (dsm *Disassembly) ExecutedEntry(result execution.Result) *Entry {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e, ok := dsm.entries[result.Address]
	if !ok || result.Idle || result.Defn == nil || e.Result.Defn.OpCode != result.Defn.OpCode {
		e = newEntry(result, EntryLevelExecuted)
		if !result.Idle {
			dsm.entries[result.Address] = e
		}
		return e
	}

	e.Level = EntryLevelExecuted
	e.Result = result

	return e
}

func (dsm *Disassembly) peekWord(address uint16) (uint16, error) {
	lo, err := dsm.mem.Peek(address)
	if err != nil {
		return 0, err
	}
	hi, err := dsm.mem.Peek(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func (dsm *Disassembly) inRange(address uint16) bool {
	return address >= dsm.from && address <= dsm.to
}
