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
	"strings"
	"testing"

	"github.com/jetsetilly/spc700/hardware/smp"
	"github.com/jetsetilly/spc700/hardware/smp/instructions"
	"github.com/jetsetilly/spc700/test"
)

func TestReset(t *testing.T) {
	mc, _ := newSMP(t)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xef))
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")
	test.ExpectEquality(t, mc.Cycles(), uint64(0))

	// NOP
	step(t, mc)
	test.ExpectEquality(t, mc.Cycles(), uint64(2))

	// the cycle count survives a reset
	test.ExpectSuccess(t, mc.Reset())
	test.ExpectEquality(t, mc.Cycles(), uint64(2))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
}

func TestResetError(t *testing.T) {
	mem := newMockMem()
	mem.failRead = smp.ResetVector
	mc := smp.NewSMP(mem)
	err := mc.Reset()
	test.ExpectSuccess(t, errors.Is(err, errBus))
}

func TestSimpleProgram(t *testing.T) {
	mc, mem := newSMP(t)

	// NOP; MOV A,#$00; SETC; MOV A,#$FF; INC A
	mem.putInstructions(0x0200, 0x00, 0xe8, 0x00, 0x80, 0xe8, 0xff, 0xbc)

	r := step(t, mc) // NOP
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))

	step(t, mc) // MOV A,#$00
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc) // SETC
	step(t, mc) // MOV A,#$FF
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectSuccess(t, mc.Status.Negative)

	step(t, mc) // INC A
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.Cycles(), uint64(10))
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newSMP(t)

	// SETC; NOTC; SETP; CLRP; EI; DI; CLRV
	mem.putInstructions(0x0200, 0x80, 0xed, 0x40, 0x20, 0xa0, 0xc0, 0xe0)

	step(t, mc) // SETC
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZC")
	step(t, mc) // NOTC
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")
	step(t, mc) // SETP
	test.ExpectEquality(t, mc.Status.String(), "nvPbhiZc")
	step(t, mc) // CLRP
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")
	step(t, mc) // EI
	test.ExpectEquality(t, mc.Status.String(), "nvpbhIZc")
	step(t, mc) // DI
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")

	// CLRV clears half-carry too
	mc.Status.Overflow = true
	mc.Status.HalfCarry = true
	step(t, mc) // CLRV
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")

	// PUSH PSW; POP PSW
	mem.putInstructions(0x0207, 0x0d, 0x8e)
	step(t, mc) // PUSH PSW
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xee))
	test.ExpectEquality(t, mem.internal[0x01ef], uint8(0x02))

	// mangle status register
	mc.Status.Negative = true
	mc.Status.Zero = false

	step(t, mc) // POP PSW
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xef))
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newSMP(t)

	// MOV A,#$7F; CLRC; ADC A,#$01
	origin := mem.putInstructions(0x0200, 0xe8, 0x7f, 0x60, 0x88, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.String(), "NVpbHizc")

	// SETC; MOV A,#$10; SBC A,#$01
	origin = mem.putInstructions(origin, 0x80, 0xe8, 0x10, 0xa8, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0f))
	test.ExpectEquality(t, mc.Status.String(), "nvpbhizC")

	// CMP A,#$0F
	origin = mem.putInstructions(origin, 0x68, 0x0f)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0f))
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZC")

	// CMP X,#$01; CMP Y,#$00
	origin = mem.putInstructions(origin, 0xc8, 0x01, 0xad, 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "Nvpbhizc")
	step(t, mc)
	test.ExpectEquality(t, mc.Status.String(), "nvpbhiZC")

	// MOV $10,#$F0; OR $10,#$0F; CMP $10,#$FF
	mem.putInstructions(origin, 0x8f, 0xf0, 0x10, 0x18, 0x0f, 0x10, 0x78, 0xff, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0010], uint8(0xf0))
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0010], uint8(0xff))

	// CMP does not write back
	mem.internal[0x0010] = 0xfe
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0010], uint8(0xfe))
	test.ExpectSuccess(t, mc.Status.Negative)
}

func TestDirectPage(t *testing.T) {
	mc, mem := newSMP(t)

	// MOV A,#$42; MOV $20,A; SETP; MOV A,#$43; MOV $20,A
	origin := mem.putInstructions(0x0200, 0xe8, 0x42, 0xc4, 0x20, 0x40, 0xe8, 0x43, 0xc4, 0x20)
	for i := 0; i < 5; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mem.internal[0x0020], uint8(0x42))
	test.ExpectEquality(t, mem.internal[0x0120], uint8(0x43))

	// MOV A,$20; CLRP; MOV A,$20
	origin = mem.putInstructions(origin, 0xe4, 0x20, 0x20, 0xe4, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x43))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))

	// indexing wraps within the direct page
	// MOV X,#$10; MOV A,#$99; MOV $F8+X,A
	mem.putInstructions(origin, 0xcd, 0x10, 0xe8, 0x99, 0xd4, 0xf8)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0008], uint8(0x99))
	test.ExpectEquality(t, mem.internal[0x0108], uint8(0x00))
}

func TestIndirect(t *testing.T) {
	mc, mem := newSMP(t)

	// pointer at $30 to $0400
	mem.internal[0x0030] = 0x00
	mem.internal[0x0031] = 0x04
	mem.internal[0x0401] = 0x77

	// MOV Y,#$01; MOV A,[$30]+Y
	origin := mem.putInstructions(0x0200, 0x8d, 0x01, 0xf7, 0x30)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x77))

	// MOV X,#$02; MOV A,#$55; MOV [$2E+X],A
	origin = mem.putInstructions(origin, 0xcd, 0x02, 0xe8, 0x55, 0xc7, 0x2e)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0400], uint8(0x55))

	// MOV (X)+,A; MOV (X)+,A; MOV X,#$02; MOV A,(X)+
	mem.putInstructions(origin, 0xaf, 0xaf, 0xcd, 0x02, 0xbf)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x04))
	test.ExpectEquality(t, mem.internal[0x0002], uint8(0x55))
	test.ExpectEquality(t, mem.internal[0x0003], uint8(0x55))
	step(t, mc)
	mc.A.Load(0)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x55))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x03))
}

func TestStack(t *testing.T) {
	mc, mem := newSMP(t)

	// the stack pointer wraps within page one
	mc.SP.Load(0x00)

	// MOV A,#$5A; PUSH A; MOV A,#$00; POP A
	mem.putInstructions(0x0200, 0xe8, 0x5a, 0x2d, 0xe8, 0x00, 0xae)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0100], uint8(0x5a))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)

	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x5a))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0x00))

	// POP does not affect flags
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestBranching(t *testing.T) {
	mc, mem := newSMP(t)

	// BNE +5; MOV A,#$01; BNE +5
	mem.putInstructions(0x0200, 0xd0, 0x05, 0xe8, 0x01, 0xd0, 0x05)

	r := step(t, mc) // BNE (not taken)
	test.ExpectEquality(t, r.Cycles, 2)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202))

	step(t, mc) // MOV A,#$01

	r = step(t, mc) // BNE (taken)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x020b))

	// BRA -2
	mem.putInstructions(0x020b, 0x2f, 0xfe)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x020b))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x020b))
}

func TestCompareAndBranch(t *testing.T) {
	mc, mem := newSMP(t)

	mem.internal[0x0010] = 0x04
	mem.internal[0x0011] = 0x02

	// BBS $10.2,+3
	mem.putInstructions(0x0200, 0x43, 0x10, 0x03)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0206))

	// BBC $10.2,+3
	origin := mem.putInstructions(0x0206, 0x53, 0x10, 0x03)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), origin)

	// CBNE $10,+2
	mem.putInstructions(origin, 0x2e, 0x10, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x020e))

	// DBNZ $11,-3
	origin = mem.putInstructions(0x020e, 0x6e, 0x11, 0xfd)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x020e))
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), origin)
	test.ExpectEquality(t, mem.internal[0x0011], uint8(0x00))

	// MOV Y,#$02; DBNZ Y,-2
	mem.putInstructions(origin, 0x8d, 0x02, 0xfe, 0xfe)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0213))
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0215))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x00))
}

func TestSubroutines(t *testing.T) {
	mc, mem := newSMP(t)

	// CALL $0300
	mem.putInstructions(0x0200, 0x3f, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x6f)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 8)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xed))
	test.ExpectEquality(t, mem.internal[0x01ef], uint8(0x02))
	test.ExpectEquality(t, mem.internal[0x01ee], uint8(0x03))

	// RET
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xef))

	// PCALL $20
	mem.putInstructions(0x0203, 0x4f, 0x20)
	mem.putInstructions(0xff20, 0x6f)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0xff20))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0205))

	// TCALL 1
	mem.putInstructions(0x0205, 0x11)
	mem.putInstructions(smp.TableVector(1), 0x00, 0x04)
	mem.putInstructions(0x0400, 0x6f)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0400))
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0206))

	// EI; BRK
	mem.putInstructions(0x0206, 0xa0, 0x0f)
	mem.putInstructions(smp.TableVector(0), 0x00, 0x05)
	mem.putInstructions(0x0500, 0x7f)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0500))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xec))
	test.ExpectEquality(t, mem.internal[0x01ef], uint8(0x02))
	test.ExpectEquality(t, mem.internal[0x01ee], uint8(0x08))
	test.ExpectEquality(t, mem.internal[0x01ed], uint8(0x06))
	test.ExpectEquality(t, mc.Status.String(), "nvpBhiZc")

	// RETI
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0208))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xef))
	test.ExpectEquality(t, mc.Status.String(), "nvpbhIZc")
}

func TestTableVector(t *testing.T) {
	test.ExpectEquality(t, smp.TableVector(0), uint16(0xffde))
	test.ExpectEquality(t, smp.TableVector(1), uint16(0xffdc))
	test.ExpectEquality(t, smp.TableVector(15), uint16(0xffc0))
}

func TestJumps(t *testing.T) {
	mc, mem := newSMP(t)

	// JMP [$0600+X]
	mc.X.Load(0x02)
	mem.putInstructions(0x0200, 0x1f, 0x00, 0x06)
	mem.putInstructions(0x0602, 0x00, 0x07)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0700))

	// JMP $0203
	mem.putInstructions(0x0700, 0x5f, 0x03, 0x02)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
}

func TestWordInstructions(t *testing.T) {
	mc, mem := newSMP(t)

	mem.putInstructions(0x0020, 0x34, 0x12, 0xff, 0x00, 0x00, 0x00)

	// MOVW YA,$20
	origin := mem.putInstructions(0x0200, 0xba, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x12))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x34))
	test.ExpectEquality(t, mc.YA(), uint16(0x1234))

	// INCW $20; INCW $22; DECW $24
	origin = mem.putInstructions(origin, 0x3a, 0x20, 0x3a, 0x22, 0x1a, 0x24)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0020], uint8(0x35))
	test.ExpectEquality(t, mem.internal[0x0021], uint8(0x12))
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0022], uint8(0x00))
	test.ExpectEquality(t, mem.internal[0x0023], uint8(0x01))
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0024], uint8(0xff))
	test.ExpectEquality(t, mem.internal[0x0025], uint8(0xff))
	test.ExpectSuccess(t, mc.Status.Negative)

	// ADDW YA,$20; CMPW YA,$20; MOVW $26,YA
	origin = mem.putInstructions(origin, 0x7a, 0x20, 0x5a, 0x20, 0xda, 0x26)
	step(t, mc)
	test.ExpectEquality(t, mc.YA(), uint16(0x2469))
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0026], uint8(0x69))
	test.ExpectEquality(t, mem.internal[0x0027], uint8(0x24))

	// MOV Y,#$10; MOV A,#$20; MUL YA
	origin = mem.putInstructions(origin, 0x8d, 0x10, 0xe8, 0x20, 0xcf)
	step(t, mc)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 9)
	test.ExpectEquality(t, mc.YA(), uint16(0x0200))

	// MOV X,#$10; DIV YA,X
	mem.putInstructions(origin, 0xcd, 0x10, 0x9e)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, r.Cycles, 12)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x20))
	test.ExpectEquality(t, mc.Y.Value(), uint8(0x00))
	test.ExpectFailure(t, mc.Status.Overflow)
}

func TestBitInstructions(t *testing.T) {
	mc, mem := newSMP(t)

	// SET1 $30.7; CLR1 $30.7
	origin := mem.putInstructions(0x0200, 0xe2, 0x30, 0xf2, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0030], uint8(0x80))
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0030], uint8(0x00))

	// MOV1 C,$0400.3; NOT1 $0400.3; MOV1 $0400.0,C
	mem.internal[0x0400] = 0x08
	origin = mem.putInstructions(origin, 0xaa, 0x00, 0x64, 0xea, 0x00, 0x64, 0xca, 0x00, 0x04)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0400], uint8(0x00))
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0400], uint8(0x01))

	// AND1 C,/$0400.0
	origin = mem.putInstructions(origin, 0x6a, 0x00, 0x04)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Carry)

	// MOV A,#$0F; TSET1 $0401; TCLR1 $0401
	mem.internal[0x0401] = 0xf0
	mem.putInstructions(origin, 0xe8, 0x0f, 0x0e, 0x01, 0x04, 0x4e, 0x01, 0x04)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0401], uint8(0xff))
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0401], uint8(0xf0))
}

func TestAccumulatorInstructions(t *testing.T) {
	mc, mem := newSMP(t)

	// MOV A,#$3C; XCN A
	mem.putInstructions(0x0200, 0xe8, 0x3c, 0x9f)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 5)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xc3))
	test.ExpectSuccess(t, mc.Status.Negative)
}

func TestHalt(t *testing.T) {
	mc, mem := newSMP(t)

	// SLEEP
	mem.putInstructions(0x0200, 0xef)
	r := step(t, mc)
	test.ExpectEquality(t, r.Cycles, 3)
	test.ExpectSuccess(t, mc.Halted())
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))

	// halted SMP idles without fetching
	for i := 0; i < 3; i++ {
		r = step(t, mc)
		test.ExpectSuccess(t, r.Idle)
		test.ExpectEquality(t, r.Cycles, 2)
		test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))
	}
	test.ExpectEquality(t, mc.Cycles(), uint64(9))

	test.ExpectSuccess(t, mc.Reset())
	test.ExpectFailure(t, mc.Halted())

	// STOP is ignored when flow control is disabled
	mem.putInstructions(0x0200, 0xff)
	mc.NoFlowControl = true
	step(t, mc)
	test.ExpectFailure(t, mc.Halted())
}

func TestMidInstruction(t *testing.T) {
	mc, mem := newSMP(t)

	// MOV A,$0400
	mem.putInstructions(0x0200, 0xe5, 0x00, 0x04)

	errStop := errors.New("stop")
	var n int
	err := mc.ExecuteInstruction(func() error {
		n++
		if n == 2 {
			return errStop
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, errStop))
	test.ExpectFailure(t, mc.LastResult.Final)

	// a new instruction can't start until the SMP is reset
	err = mc.ExecuteInstruction(nil)
	test.ExpectSuccess(t, errors.Is(err, smp.ErrMidInstruction))

	test.ExpectSuccess(t, mc.Reset())
	test.ExpectSuccess(t, mc.ExecuteInstruction(nil))
}

func TestMemoryError(t *testing.T) {
	mc, mem := newSMP(t)
	mem.failRead = 0x0400

	// MOV A,$0400
	mem.putInstructions(0x0200, 0xe5, 0x00, 0x04)

	err := mc.ExecuteInstruction(nil)
	test.ExpectSuccess(t, errors.Is(err, errBus))
	test.ExpectSuccess(t, strings.HasPrefix(err.Error(), "smp: read"))
}

func TestCycleCallback(t *testing.T) {
	mc, mem := newSMP(t)

	var n int
	mc.SetCycleCallback(func() error {
		n++
		return nil
	})

	// CALL $0300
	mem.putInstructions(0x0200, 0x3f, 0x00, 0x03)
	c, err := mc.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, c, 8)
	test.ExpectEquality(t, n, 8)
}

func TestRun(t *testing.T) {
	mc, _ := newSMP(t)

	// memory is all NOPs. three are needed to exceed a budget of five cycles
	excess, err := mc.Run(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, excess, 1)
	test.ExpectEquality(t, mc.Cycles(), uint64(6))
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))

	// nothing is executed for an exhausted budget
	excess, err = mc.Run(-3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, excess, 3)
	test.ExpectEquality(t, mc.Cycles(), uint64(6))
}

func TestAllOpcodes(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		mc, mem := newSMP(t)
		mem.putInstructions(0x0200, defn.OpCode, 0x00, 0x00)
		r := step(t, mc)
		test.ExpectEquality(t, r.Defn.OpCode, defn.OpCode)

		if defn.Family != instructions.Flow && !mc.Halted() {
			test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(defn.Bytes), "opcode %#02x", defn.OpCode)
		}
	}
}

func TestAllOpcodesNoFlowControl(t *testing.T) {
	for _, defn := range instructions.GetDefinitions() {
		mc, mem := newSMP(t)
		mc.NoFlowControl = true

		// displacements and vectors are non-zero so that any change to the
		// program counter would be detected
		mem.putInstructions(0x0200, defn.OpCode, 0x10, 0x10)
		for i := uint16(0xffc0); i != 0x0000; i++ {
			mem.internal[i] = 0x80
		}

		r := step(t, mc)
		test.ExpectFailure(t, r.BranchSuccess, "opcode %#02x", defn.OpCode)
		test.ExpectFailure(t, mc.Halted(), "opcode %#02x", defn.OpCode)
		test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(defn.Bytes), "opcode %#02x", defn.OpCode)
	}
}

// the order of bus accesses for a selection of instructions. internal cycles
// are not visible on the bus
func TestBusAccesses(t *testing.T) {
	vectors := []struct {
		name    string
		program []uint8
		setup   func(mc *smp.SMP)
		exp     string
	}{
		{name: "MOV A, dp", program: []uint8{0xe4, 0x20},
			exp: "r0200 r0201 r0020"},
		{name: "MOV A, dp (P set)", program: []uint8{0xe4, 0x20},
			setup: func(mc *smp.SMP) { mc.Status.DirectPage = true },
			exp:   "r0200 r0201 r0120"},
		{name: "ADC A, dp", program: []uint8{0x84, 0x20},
			exp: "r0200 r0201 r0020"},

		// stores read the destination before writing
		{name: "MOV dp, A", program: []uint8{0xc4, 0x20},
			exp: "r0200 r0201 r0020 w0020"},

		// except for MOV dp, dp and the auto-increment store
		{name: "MOV dp, dp", program: []uint8{0xfa, 0x10, 0x20},
			exp: "r0200 r0201 r0010 r0202 w0020"},
		{name: "MOV (X)+, A", program: []uint8{0xaf},
			setup: func(mc *smp.SMP) { mc.X.Load(0x30) },
			exp:   "r0200 w0030"},

		// read and write of a read-modify-write are separate accesses
		{name: "INC dp", program: []uint8{0xab, 0x20},
			exp: "r0200 r0201 r0020 w0020"},

		// CMP replaces the write with an internal cycle
		{name: "CMP dp, dp", program: []uint8{0x69, 0x10, 0x20},
			exp: "r0200 r0201 r0010 r0202 r0020"},

		// TSET1 reads the operand twice
		{name: "TSET1 !abs", program: []uint8{0x0e, 0x00, 0x04},
			exp: "r0200 r0201 r0202 r0400 r0400 w0400"},

		// the high byte of a word wraps within the direct page
		{name: "INCW dp", program: []uint8{0x3a, 0xff},
			exp: "r0200 r0201 r00ff w00ff r0000 w0000"},

		{name: "PUSH A", program: []uint8{0x2d},
			exp: "r0200 w01ef"},
		{name: "CALL !abs", program: []uint8{0x3f, 0x00, 0x03},
			exp: "r0200 r0201 r0202 w01ef w01ee"},
	}

	for _, v := range vectors {
		mc, mem := newSMP(t)
		mem.putInstructions(0x0200, v.program...)
		if v.setup != nil {
			v.setup(mc)
		}

		// ignore the reads of the reset vector
		mem.accesses = mem.accesses[:0]

		step(t, mc)
		test.ExpectEquality(t, strings.Join(mem.accesses, " "), v.exp, v.name)
	}
}
