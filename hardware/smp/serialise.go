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

package smp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// StateVersion is the first byte of every serialised state. States with a
// different version number are rejected.
const StateVersion = 1

// StateSize is the length of a serialised state in bytes.
//
//	version(1) PC(2) A(1) X(1) Y(1) SP(1) PSW(1)
//	dp(2) sp(2) rd(2) wr(1) bit(1) halted(1) cycles(8)
//
// All multi-byte values are little-endian.
const StateSize = 25

// sentinal errors returned by Deserialise.
var (
	ErrStateSize    = errors.New("smp: state has the wrong length")
	ErrStateVersion = errors.New("smp: state has an unsupported version")
)

// Serialise returns the state of the SMP as a fixed length byte slice. The
// memory is not included in the state.
func (mc *SMP) Serialise() []byte {
	b := make([]byte, 0, StateSize)

	b = append(b, StateVersion)
	b = binary.LittleEndian.AppendUint16(b, mc.PC.Address())
	b = append(b, mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.SP.Value(), mc.Status.Value())
	b = binary.LittleEndian.AppendUint16(b, mc.latch.dp)
	b = binary.LittleEndian.AppendUint16(b, mc.latch.sp)
	b = binary.LittleEndian.AppendUint16(b, mc.latch.rd)
	b = append(b, mc.latch.wr, mc.latch.bit)

	var halted uint8
	if mc.halted {
		halted = 1
	}
	b = append(b, halted)
	b = binary.LittleEndian.AppendUint64(b, mc.cycles)

	return b
}

// Deserialise restores the SMP to a state created by Serialise(). The SMP is
// not altered if an error is returned.
//
// The next call to ExecuteInstruction() begins a new instruction even if the
// SMP was mid-instruction.
func (mc *SMP) Deserialise(b []byte) error {
	if len(b) != StateSize {
		return fmt.Errorf("%w: %d bytes", ErrStateSize, len(b))
	}
	if b[0] != StateVersion {
		return fmt.Errorf("%w: %d", ErrStateVersion, b[0])
	}

	mc.PC.Load(binary.LittleEndian.Uint16(b[1:]))
	mc.A.Load(b[3])
	mc.X.Load(b[4])
	mc.Y.Load(b[5])
	mc.SP.Load(b[6])
	mc.Status.Load(b[7])
	mc.latch.dp = binary.LittleEndian.Uint16(b[8:])
	mc.latch.sp = binary.LittleEndian.Uint16(b[10:])
	mc.latch.rd = binary.LittleEndian.Uint16(b[12:])
	mc.latch.wr = b[14]
	mc.latch.bit = b[15]
	mc.halted = b[16] != 0
	mc.cycles = binary.LittleEndian.Uint64(b[17:])

	mc.LastResult.Reset()
	mc.interrupted = true

	return nil
}
