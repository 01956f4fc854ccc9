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

// Package execution tracks the result of instruction execution on the SMP.
// A Result is updated as the instruction progresses and is marked Final once
// the last cycle of the instruction has completed.
//
// The IsValid() function checks a finalised Result against the instruction
// definition. The SMP tests use it to make sure the number of bytes and cycles
// consumed by every opcode are what the definition says they should be.
package execution
