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

package smp_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/test"
)

func TestSerialise(t *testing.T) {
	mc, mem := newSMP(t)

	// MOV A,#$12; MOV X,#$34; MOV Y,#$56; SETC; PUSH A
	mem.putInstructions(0x0200, 0xe8, 0x12, 0xcd, 0x34, 0x8d, 0x56, 0x80, 0x2d)
	for i := 0; i < 5; i++ {
		step(t, mc)
	}

	state := mc.Serialise()
	test.ExpectEquality(t, len(state), smp.StateSize)
	test.ExpectEquality(t, state[0], uint8(smp.StateVersion))

	// program counter is little-endian
	test.ExpectEquality(t, state[1], uint8(0x08))
	test.ExpectEquality(t, state[2], uint8(0x02))

	cp := smp.NewSMP(mem)
	test.DemandSuccess(t, cp.Deserialise(state))
	test.ExpectEquality(t, cp.String(), mc.String())
	test.ExpectEquality(t, cp.Cycles(), mc.Cycles())
	test.ExpectSuccess(t, bytes.Equal(cp.Serialise(), state))

	// both SMPs continue identically
	mem.putInstructions(0x0208, 0xbc)
	step(t, mc)
	step(t, cp)
	test.ExpectEquality(t, cp.String(), mc.String())
}

func TestSerialiseHalted(t *testing.T) {
	mc, mem := newSMP(t)

	// STOP
	mem.putInstructions(0x0200, 0xff)
	step(t, mc)
	test.DemandSuccess(t, mc.Halted())

	cp := smp.NewSMP(mem)
	test.DemandSuccess(t, cp.Deserialise(mc.Serialise()))
	test.ExpectSuccess(t, cp.Halted())

	r := step(t, cp)
	test.ExpectSuccess(t, r.Idle)
}

func TestDeserialiseErrors(t *testing.T) {
	mc, _ := newSMP(t)
	mc.A.Load(0x99)
	before := mc.Serialise()

	other, _ := newSMP(t)
	state := other.Serialise()

	err := mc.Deserialise(state[:smp.StateSize-1])
	test.ExpectSuccess(t, errors.Is(err, smp.ErrStateSize))

	err = mc.Deserialise(append(state, 0x00))
	test.ExpectSuccess(t, errors.Is(err, smp.ErrStateSize))

	state[0] = smp.StateVersion + 1
	err = mc.Deserialise(state)
	test.ExpectSuccess(t, errors.Is(err, smp.ErrStateVersion))

	// the SMP is unchanged by a failed deserialisation
	test.ExpectSuccess(t, bytes.Equal(mc.Serialise(), before))
}

func TestDeserialiseMidInstruction(t *testing.T) {
	mc, _ := newSMP(t)
	state := mc.Serialise()

	errStop := errors.New("stop")
	err := mc.ExecuteInstruction(func() error {
		return errStop
	})
	test.ExpectSuccess(t, errors.Is(err, errStop))

	// restoring a state allows a new instruction to begin
	test.DemandSuccess(t, mc.Deserialise(state))
	test.ExpectSuccess(t, mc.ExecuteInstruction(nil))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))
}
