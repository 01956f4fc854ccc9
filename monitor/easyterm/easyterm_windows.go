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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// Geometry contains the dimensions of a terminal.
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is not available under windows.
type Terminal struct{}

// NewTerminal always returns an error under windows.
func NewTerminal(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("easyterm: not available on windows")
}

// CleanUp does nothing under windows.
func (pt *Terminal) CleanUp() {}

// Geometry returns zero under windows.
func (pt *Terminal) Geometry() Geometry {
	return Geometry{}
}

// CanonicalMode does nothing under windows.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// CBreakMode is not available under windows.
func (pt *Terminal) CBreakMode() error {
	return fmt.Errorf("easyterm: not available on windows")
}

// ReadKey is not available under windows.
func (pt *Terminal) ReadKey() (byte, error) {
	return 0, fmt.Errorf("easyterm: not available on windows")
}
