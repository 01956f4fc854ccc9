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

// Package aram implements the 64KiB of audio RAM attached to the SMP,
// including the shadowing of the top 64 bytes by the IPL boot ROM.
//
// It is a plain implementation of the smpbus.Memory interface and does not
// emulate the I/O registers at 0x00f0 to 0x00ff. Those belong to the timers
// and DSP, which are outside of the SMP.
package aram

import (
	"fmt"
	"strings"
)

// IPLOrigin is the address of the first byte of the IPL ROM.
const IPLOrigin = 0xffc0

// IPL is the contents of the boot ROM. The reset vector at the end of the ROM
// points to the start of the ROM.
var IPL = [64]uint8{
	0xcd, 0xef, 0xbd, 0xe8, 0x00, 0xc6, 0x1d, 0xd0,
	0xfc, 0x8f, 0xaa, 0xf4, 0x8f, 0xbb, 0xf5, 0x78,
	0xcc, 0xf4, 0xd0, 0xfb, 0x2f, 0x19, 0xeb, 0xf4,
	0xd0, 0xfc, 0x7e, 0xf4, 0xd0, 0x0b, 0xe4, 0xf5,
	0xcb, 0xf4, 0xd7, 0x00, 0xfc, 0xd0, 0xf3, 0xab,
	0x01, 0x10, 0xef, 0x7e, 0xf4, 0x10, 0xeb, 0xba,
	0xf6, 0xda, 0x00, 0xba, 0xf4, 0xc4, 0xf4, 0xdd,
	0x5d, 0xd0, 0xdb, 0x1f, 0x00, 0x00, 0xc0, 0xff,
}

// ARAM is the audio RAM. The zero value is usable and has the IPL ROM
// disabled.
type ARAM struct {
	data [0x10000]uint8

	// whether reads from the top 64 bytes come from the IPL ROM. writes always
	// go to the underlying RAM
	IPLEnabled bool

	// the number of Read() and Write() calls. a simple way of checking that
	// the SMP is making the expected number of bus accesses
	Reads  int
	Writes int
}

// NewARAM is the preferred method of initialisation for the ARAM type.
func NewARAM(iplEnabled bool) *ARAM {
	return &ARAM{
		IPLEnabled: iplEnabled,
	}
}

func (ram *ARAM) String() string {
	return fmt.Sprintf("ARAM (IPL=%v)", ram.IPLEnabled)
}

func (ram *ARAM) value(address uint16) uint8 {
	if ram.IPLEnabled && address >= IPLOrigin {
		return IPL[address-IPLOrigin]
	}
	return ram.data[address]
}

// Read implements the smpbus.Memory interface.
func (ram *ARAM) Read(address uint16) (uint8, error) {
	ram.Reads++
	return ram.value(address), nil
}

// Write implements the smpbus.Memory interface.
func (ram *ARAM) Write(address uint16, data uint8) error {
	ram.Writes++
	ram.data[address] = data
	return nil
}

// Peek implements the smpbus.Peeker interface.
func (ram *ARAM) Peek(address uint16) (uint8, error) {
	return ram.value(address), nil
}

// Poke implements the smpbus.Poker interface. Poking the IPL area changes
// the RAM underneath the ROM.
func (ram *ARAM) Poke(address uint16, data uint8) error {
	ram.data[address] = data
	return nil
}

// Load copies data into RAM starting at origin. Data that would extend past
// the end of the address space wraps around to address zero.
func (ram *ARAM) Load(origin uint16, data []uint8) {
	for i, d := range data {
		ram.data[origin+uint16(i)] = d
	}
}

// Clear sets all RAM to zero and resets the access counters.
func (ram *ARAM) Clear() {
	clear(ram.data[:])
	ram.Reads = 0
	ram.Writes = 0
}

// Dump writes a hex dump of the memory range to a string. The range is
// inclusive.
func (ram *ARAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}
	for a := int(from) &^ 0x0f; a <= int(to); a += 16 {
		s.WriteString(fmt.Sprintf("%04x ", a))
		for i := 0; i < 16; i++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.value(uint16(a+i))))
		}
		s.WriteString("\n")
	}
	return s.String()
}
