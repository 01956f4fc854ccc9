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

// Package smp emulates the Sony SPC700, the sound CPU of the Super Nintendo,
// commonly referred to as the SMP.
//
// The emulation is cycle accurate. Every bus access and every internal cycle
// of an instruction happens in the order the silicon performs them and each
// one is followed by a call to the cycle callback supplied to
// ExecuteInstruction(). The callback is where sibling hardware (timers, the
// DSP and the host CPU) should be stepped to keep them in lockstep with the
// SMP.
//
// Register logic is implemented by the types in the registers sub-package and
// the arithmetic is in the algorithms sub-package. The instructions
// sub-package defines the opcode table.
//
// The SMP has two states: running and halted. SLEEP and STOP halt the SMP and
// only Reset() will return it to the running state. While halted, each call
// to ExecuteInstruction() consumes a short idle period and does not touch the
// bus.
package smp
