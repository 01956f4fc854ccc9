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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Geometry contains the dimensions of a terminal (usually the output
// terminal).
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	geometry Geometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu sync.Mutex
}

// NewTerminal prepares the input and output files for use as a Terminal. The
// input file must be a real terminal.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input and an output file")
	}

	if !term.IsTerminal(int(input.Fd())) {
		return nil, fmt.Errorf("easyterm: %s is not a terminal", input.Name())
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	// geometry is not critical. if the output is not a terminal then the
	// geometry will remain at zero
	_ = pt.UpdateGeometry()

	// set up sig/ack channels for signal handler
	pt.terminateHandlerSig = make(chan bool)
	pt.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, unix.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	return pt, nil
}

// CleanUp restores canonical mode and stops the signal handler.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: updating terminal geometry: %w", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry.Rows = ws.Row
	pt.geometry.Cols = ws.Col

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Input is available one key at
// a time and is not echoed.
func (pt *Terminal) CBreakMode() error {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
	if err != nil {
		return err
	}
	return pt.Flush()
}

// Flush makes sure the terminal's input buffer is empty.
func (pt *Terminal) Flush() error {
	return termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH)
}

// ReadKey waits for a single key press. Terminal should be in cbreak mode.
func (pt *Terminal) ReadKey() (byte, error) {
	var b [1]byte
	_, err := pt.input.Read(b[:])
	if err != nil {
		return 0, err
	}
	return b[0], nil
}
