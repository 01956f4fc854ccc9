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
	"bytes"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the blessed entries of the disassembly for the specified
// search string. Matching entries are written to output.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) error {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	attr := WriteAttr{ByteCode: true}

	for a := dsm.from; ; a++ {
		if e, ok := dsm.entries[a]; ok && e.Level >= EntryLevelBlessed {
			// line representation of entry. we'll print this in case of a
			// match
			line := &bytes.Buffer{}
			err := dsm.WriteEntry(line, attr, e)
			if err != nil {
				return err
			}

			// limit scope of grep to the correct entry field
			var s string
			switch scope {
			case GrepOperator:
				s = e.Operator
			case GrepOperand:
				s = e.Operand
			case GrepAll:
				s = line.String()
			}

			if !caseSensitive {
				s = strings.ToUpper(s)
			}

			if strings.Contains(s, search) {
				_, err := output.Write(line.Bytes())
				if err != nil {
					return err
				}
			}
		}

		if a == dsm.to {
			break
		}
	}

	return nil
}
