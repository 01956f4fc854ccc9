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

package test

import (
	"fmt"
)

// RingWriter is an io.Writer that holds on to the last size bytes written
// to it. Earlier output is discarded.
type RingWriter struct {
	buf  []byte
	size int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. Size must be greater than zero.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be positive (%d)", size)
	}
	return &RingWriter{
		buf:  make([]byte, 0, size),
		size: size,
	}, nil
}

// String returns the retained output, oldest byte first.
func (r *RingWriter) String() string {
	return string(r.buf)
}

// Reset discards all retained output.
func (r *RingWriter) Reset() {
	r.buf = r.buf[:0]
}

// Write implements the io.Writer interface. It never fails.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.buf = append(r.buf, p...)
	if over := len(r.buf) - r.size; over > 0 {
		r.buf = append(r.buf[:0], r.buf[over:]...)
	}
	return len(p), nil
}
