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
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/hardware/smp/execution"
	"github.com/jetsetilly/spc700/test"
)

var errBus = errors.New("bus error")

type mockMem struct {
	internal [0x10000]uint8

	// address that will fail when read. -1 for no failure
	failRead int

	// every bus access in order. reads are logged as r0000 and writes as
	// w0000
	accesses []string
}

func newMockMem() *mockMem {
	mem := &mockMem{failRead: -1}

	// reset vector points to $0200
	mem.internal[smp.ResetVector] = 0x00
	mem.internal[smp.ResetVector+1] = 0x02

	return mem
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if int(address) == mem.failRead {
		return 0, errBus
	}
	mem.accesses = append(mem.accesses, fmt.Sprintf("r%04x", address))
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.accesses = append(mem.accesses, fmt.Sprintf("w%04x", address))
	mem.internal[address] = data
	return nil
}

func newSMP(t *testing.T) (*smp.SMP, *mockMem) {
	t.Helper()
	mem := newMockMem()
	mc := smp.NewSMP(mem)
	test.DemandSuccess(t, mc.Reset())
	return mc, mem
}

// step executes one instruction and checks that the result is consistent
// with the instruction definition
func step(t *testing.T, mc *smp.SMP) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(nil)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatalf("%v: %s", err, mc.LastResult.String())
	}
	return mc.LastResult
}
