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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool

	// include entries that have been decoded but not blessed
	Decoded bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	return dsm.WriteRange(output, attr, dsm.from, dsm.to)
}

// WriteRange writes the disassembly of the addresses between from and to
// (inclusive) to io.Writer.
func (dsm *Disassembly) WriteRange(output io.Writer, attr WriteAttr, from uint16, to uint16) error {
	if to < from {
		return fmt.Errorf("disassembly: invalid range (%#04x to %#04x)", from, to)
	}

	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	for a := from; ; a++ {
		if e, ok := dsm.entries[a]; ok {
			if attr.Decoded || e.Level >= EntryLevelBlessed {
				err := dsm.WriteEntry(output, attr, e)
				if err != nil {
					return err
				}
			}
		}
		if a == to {
			break
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%s  %-9s %-5s %-16s", e.Address, e.Bytecode, e.Operator, e.Operand)
	} else {
		s = fmt.Sprintf("%s  %-5s %-16s", e.Address, e.Operator, e.Operand)
	}

	if attr.Cycles {
		s = fmt.Sprintf("%s [%s]", s, e.Cycles())
		if n := e.Notes(); n != "" {
			s = fmt.Sprintf("%s %s", s, n)
		}
	}

	_, err := fmt.Fprintln(output, s)
	return err
}
