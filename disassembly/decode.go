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
	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/hardware/smp/execution"
	"github.com/jetsetilly/spc700/hardware/smp/instructions"
)

// decode every address in the range as though it is the start of an
// instruction
func (dsm *Disassembly) decode(mc *smp.SMP) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for a := dsm.from; ; a++ {
		mc.PC.Load(a)

		err := mc.ExecuteInstruction(smp.NilCycleCallback)
		if err != nil {
			return err
		}

		dsm.entries[a] = newEntry(mc.LastResult, EntryLevelDecoded)

		if a == dsm.to {
			break
		}
	}

	return nil
}

// bless those entries which are reachable from the start addresses
func (dsm *Disassembly) bless(start []uint16) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	blessings := append([]uint16{}, start...)

	for len(blessings) > 0 {
		a := blessings[0]
		blessings = blessings[1:]

		for dsm.inRange(a) {
			e, ok := dsm.entries[a]
			if !ok || e.Level >= EntryLevelBlessed {
				break
			}

			// promote the entry
			e.Level = EntryLevelBlessed

			targets, cont, err := dsm.flow(e.Result)
			if err != nil {
				return err
			}
			blessings = append(blessings, targets...)

			if !cont {
				break
			}

			// break if address has looped around
			next := a + uint16(e.Result.Defn.Bytes)
			if next < a {
				break
			}
			a = next
		}
	}

	return nil
}

// flow returns the addresses that an instruction can pass control to, other
// than the next instruction. cont is false if the instruction never
// continues to the next instruction
func (dsm *Disassembly) flow(r execution.Result) (targets []uint16, cont bool, err error) {
	defn := r.Defn
	data := r.InstructionData

	word := uint16(data[1])<<8 | uint16(data[0])

	rel := func(i int) uint16 {
		return r.Address + uint16(defn.Bytes) + uint16(int8(data[i]))
	}

	switch defn.Operator {
	case "JMP":
		if defn.AddressingMode == instructions.Absolute {
			return []uint16{word}, false, nil
		}
		v, err := dsm.peekWord(word)
		if err != nil {
			return nil, false, err
		}
		return []uint16{v}, false, nil

	case "CALL":
		return []uint16{word}, true, nil

	case "PCALL":
		return []uint16{0xff00 | uint16(data[0])}, true, nil

	case "TCALL":
		v, err := dsm.peekWord(smp.TableVector(defn.OpCode >> 4))
		if err != nil {
			return nil, false, err
		}
		return []uint16{v}, true, nil

	case "BRK":
		v, err := dsm.peekWord(smp.TableVector(0))
		if err != nil {
			return nil, false, err
		}
		return []uint16{v}, false, nil

	case "RET", "RETI", "SLEEP", "STOP":
		return nil, false, nil

	case "BRA":
		return []uint16{rel(0)}, false, nil
	}

	if defn.IsBranch() {
		switch defn.AddressingMode {
		case instructions.Relative:
			return []uint16{rel(0)}, true, nil
		default:
			return []uint16{rel(1)}, true, nil
		}
	}

	return nil, true, nil
}
