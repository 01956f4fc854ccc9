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

// Package script drives the SMP from Lua scripts. The SMP is exposed to the
// script as a global table called smp, with the following functions:
//
//	smp.step()              execute one instruction. returns the cycles consumed
//	smp.run(budget)         execute for budget cycles. returns the excess
//	smp.reg(name)           value of register A, X, Y, SP, PC, PSW or YA
//	smp.setreg(name, val)   set value of register
//	smp.peek(addr)          read memory without side effects
//	smp.poke(addr, val)     write memory without side effects
//	smp.halted()            true if the SMP has executed SLEEP or STOP
//	smp.reset()             reset the SMP
//	smp.cycles()            total number of cycles consumed
//	smp.disasm()            disassembly of the last instruction executed
//
// The print() function writes to the io.Writer given to NewScript().
package script
