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
	"github.com/jetsetilly/spc700/hardware/memory/smpbus"
)

// peekMemory presents an smpbus.Peeker as an smpbus.Memory. writes are
// discarded
type peekMemory struct {
	mem smpbus.Peeker
}

func (mem peekMemory) Read(address uint16) (uint8, error) {
	return mem.mem.Peek(address)
}

func (mem peekMemory) Write(_ uint16, _ uint8) error {
	return nil
}
