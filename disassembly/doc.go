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

// Package disassembly produces an annotated disassembly of an SMP program.
//
// Disassembly is a two pass process. The decoding pass treats every address
// in the requested range as the start of an instruction. The blessing pass
// then follows the flow of the program from one or more starting points and
// promotes those entries that are reachable.
//
// Decoding uses a real SMP with NoFlowControl set, so the bytes read and the
// operand formatting are exactly those of the emulation. Memory is accessed
// through the smpbus.Peeker interface and writes are discarded, so the
// disassembly has no effect on the memory being disassembled.
//
// Entries can be updated with the results of real execution with the
// ExecutedEntry() function.
package disassembly
