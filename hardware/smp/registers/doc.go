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

// Package registers implements the registers of the SMP. There are three
// general purpose registers (A, X and Y), the stack pointer, the program
// counter and the program status word.
//
// Registers are bounded by their bit width. Loading a value silently
// truncates and arithmetic silently wraps, in the same way as the hardware.
// None of the types in this package can fail.
//
// Arithmetic and logic that affect the status flags are not performed by the
// register types. See the algorithms package for that. The Register type is
// deliberately simple:
//
//	a.Load(10)
//	v, sr = algorithms.DEC(a.Value(), sr)
//	a.Load(v)
package registers
