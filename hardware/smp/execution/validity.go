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

package execution

import (
	"fmt"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("smp: execution not finalised")
	}

	if r.Idle {
		if r.Defn != nil {
			return fmt.Errorf("smp: idle period has an instruction definition")
		}
		if r.Cycles != IdleCycles {
			return fmt.Errorf("smp: number of cycles wrong for idle period (%d instead of %d)", r.Cycles, IdleCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return fmt.Errorf("smp: execution finalised without a definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return fmt.Errorf("smp: unexpected number of bytes read during decode of %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.ByteCount, r.Defn.Bytes)
	}

	if r.Defn.Conditional {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected += 2
		}
		if r.Cycles != expected {
			return fmt.Errorf("smp: number of cycles wrong for opcode %#02x [%s] (%d instead of %d, branched=%v)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected, r.BranchSuccess)
		}
		return nil
	}

	if r.BranchSuccess {
		return fmt.Errorf("smp: unexpected branch for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Operator)
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("smp: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
	}

	return nil
}
