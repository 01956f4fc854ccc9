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

	"github.com/jetsetilly/spc700/hardware/smp/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of a
// valid instruction. Blessed entries have been reached by following the flow
// of the program from a starting point. Executed entries have been executed
// by an SMP and the Result field contains the result of the most recent
// execution.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	case EntryLevelExecuted:
		return "executed"
	}
	return "unknown"
}

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// copy of the SMP execution. the Final field may be false if the
	// execution was stopped mid-instruction
	Result execution.Result

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(result execution.Result, level EntryLevel) *Entry {
	e := &Entry{
		Level:    level,
		Result:   result,
		Address:  fmt.Sprintf("$%04x", result.Address),
		Bytecode: result.ByteCode(),
	}

	if result.Defn != nil {
		e.Operator = result.Defn.Operator
		if result.Defn.Operands != "" {
			e.Operand = result.Defn.Expand(result.Operand())
		}
	}

	return e
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s  %-9s %s", e.Address, e.Bytecode, e.Operator)
	}
	return fmt.Sprintf("%s  %-9s %s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
}

// Cycles returns the number of cycles taken by the most recent execution or
// the number of cycles in the definition if the entry has not been executed.
func (e *Entry) Cycles() string {
	if e.Result.Defn == nil {
		return "?"
	}

	if e.Level < EntryLevelExecuted {
		if e.Result.Defn.Conditional {
			return fmt.Sprintf("%d/%d", e.Result.Defn.Cycles, e.Result.Defn.Cycles+2)
		}
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}

	if e.Result.Final {
		return fmt.Sprintf("%d", e.Result.Cycles)
	}

	return fmt.Sprintf("%d of %d", e.Result.Cycles, e.Result.Defn.Cycles)
}

// Notes returns information about the most recent execution.
func (e *Entry) Notes() string {
	if e.Level < EntryLevelExecuted || !e.Result.Final || e.Result.Defn == nil {
		return ""
	}

	if e.Result.Defn.Conditional {
		if e.Result.BranchSuccess {
			return "branch succeeded"
		}
		return "branch failed"
	}

	return ""
}
