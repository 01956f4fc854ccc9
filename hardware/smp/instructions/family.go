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

package instructions

// Family of an instruction describes the shape of its bus activity.
type Family int

const (
	// transfers between registers and memory or between two registers.
	// stores always read the target address before writing to it
	Move Family = iota

	// branches, jumps, subroutines and the software interrupt
	Flow

	// read an operand and combine it with a register
	Read

	// read an operand, modify it and write it back to the same address
	RMW

	// everything else: stack, flags, register arithmetic and halting
	Misc
)

func (f Family) String() string {
	switch f {
	case Move:
		return "Move"
	case Flow:
		return "Flow"
	case Read:
		return "Read"
	case RMW:
		return "RMW"
	case Misc:
		return "Misc"
	}
	return "unknown family"
}
