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

// Package monitor is a line based command interface for the SMP. Commands are
// read from an io.Reader and the results are written to an io.Writer.
//
// Numeric arguments can be written in decimal or in hexadecimal, with either
// a 0x or a $ prefix. Commands are case insensitive.
//
// The KEYS command puts the terminal into cbreak mode so that the SMP can be
// stepped with single key presses. A KeyReader must have been attached with
// AttachKeys() for this to work. The easyterm sub-package provides a suitable
// KeyReader for posix terminals.
package monitor
