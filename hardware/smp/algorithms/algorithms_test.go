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

package algorithms_test

import (
	"testing"

	"github.com/jetsetilly/spc700/hardware/smp/algorithms"
	"github.com/jetsetilly/spc700/hardware/smp/registers"
	"github.com/jetsetilly/spc700/test"
)

func status(v uint8) registers.StatusRegister {
	sr := registers.NewStatusRegister()
	sr.Load(v)
	return sr
}

func TestBinary(t *testing.T) {
	type vector struct {
		name   string
		fn     algorithms.Binary
		x, y   uint8
		psw    uint8
		result uint8
		flags  uint8
	}

	vectors := []vector{
		{"adc zero", algorithms.ADC, 0x00, 0x00, 0x00, 0x00, registers.Zero},
		{"adc overflow to zero", algorithms.ADC, 0xff, 0x01, 0x00, 0x00, registers.Zero | registers.Carry | registers.HalfCarry},
		{"adc signed overflow", algorithms.ADC, 0x7f, 0x01, 0x00, 0x80, registers.Negative | registers.Overflow | registers.HalfCarry},
		{"adc with carry", algorithms.ADC, 0x10, 0x20, registers.Carry, 0x31, 0x00},
		{"sbc zero", algorithms.SBC, 0x00, 0x00, registers.Carry, 0x00, registers.Zero | registers.Carry | registers.HalfCarry},
		{"sbc borrow", algorithms.SBC, 0x00, 0x01, registers.Carry, 0xff, registers.Negative},
		{"sbc no borrow", algorithms.SBC, 0x05, 0x03, registers.Carry, 0x02, registers.Carry | registers.HalfCarry},
		{"cmp zero", algorithms.CMP, 0x00, 0x00, 0x00, 0x00, registers.Zero | registers.Carry},
		{"cmp equal", algorithms.CMP, 0x05, 0x05, 0x00, 0x05, registers.Zero | registers.Carry},
		{"cmp less", algorithms.CMP, 0x04, 0x05, registers.Carry, 0x04, registers.Negative},
		{"and", algorithms.AND, 0xf0, 0x0f, 0x00, 0x00, registers.Zero},
		{"or", algorithms.OR, 0xf0, 0x0f, registers.Zero, 0xff, registers.Negative},
		{"eor", algorithms.EOR, 0xff, 0x0f, 0x00, 0xf0, registers.Negative},
		{"ld keeps carry", algorithms.LD, 0x12, 0x00, registers.Carry, 0x00, registers.Carry | registers.Zero},
		{"tset", algorithms.TSET, 0x0f, 0xf0, 0x00, 0xff, 0x00},
		{"tclr", algorithms.TCLR, 0x0f, 0xff, 0x00, 0xf0, 0x00},
		{"tset equal", algorithms.TSET, 0x81, 0x81, 0x00, 0x81, registers.Zero},
	}

	for _, v := range vectors {
		r, sr := v.fn(v.x, v.y, status(v.psw))
		test.ExpectEquality(t, r, v.result, v.name)
		test.ExpectEquality(t, sr.Value(), v.flags, v.name)
	}
}

func TestUnary(t *testing.T) {
	type vector struct {
		name   string
		fn     algorithms.Unary
		x      uint8
		psw    uint8
		result uint8
		flags  uint8
	}

	vectors := []vector{
		{"asl", algorithms.ASL, 0x81, 0x00, 0x02, registers.Carry},
		{"lsr", algorithms.LSR, 0x01, 0x00, 0x00, registers.Carry | registers.Zero},
		{"rol", algorithms.ROL, 0x80, 0x00, 0x00, registers.Carry | registers.Zero},
		{"rol carry in", algorithms.ROL, 0x40, registers.Carry, 0x81, registers.Negative},
		{"ror", algorithms.ROR, 0x01, registers.Carry, 0x80, registers.Carry | registers.Negative},
		{"inc wraps", algorithms.INC, 0xff, registers.Carry, 0x00, registers.Carry | registers.Zero},
		{"dec wraps", algorithms.DEC, 0x00, 0x00, 0xff, registers.Negative},
		{"xcn", algorithms.XCN, 0x12, 0x00, 0x21, 0x00},
		{"xcn negative", algorithms.XCN, 0x08, 0x00, 0x80, registers.Negative},
		{"daa out of range", algorithms.DAA, 0x9a, 0x00, 0x00, registers.Zero | registers.Carry},
		{"daa low nibble", algorithms.DAA, 0x3c, 0x00, 0x42, 0x00},
		{"das", algorithms.DAS, 0x0f, registers.Carry, 0x09, registers.Carry},
	}

	for _, v := range vectors {
		r, sr := v.fn(v.x, status(v.psw))
		test.ExpectEquality(t, r, v.result, v.name)
		test.ExpectEquality(t, sr.Value(), v.flags, v.name)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	// 15 + 27 = 42
	r, sr := algorithms.ADC(0x15, 0x27, status(0))
	r, sr = algorithms.DAA(r, sr)
	test.ExpectEquality(t, r, uint8(0x42))
	test.ExpectEquality(t, sr.Carry, false)

	// 10 - 1 = 09
	sr = status(registers.Carry)
	r, sr = algorithms.SBC(0x10, 0x01, sr)
	r, sr = algorithms.DAS(r, sr)
	test.ExpectEquality(t, r, uint8(0x09))
	test.ExpectEquality(t, sr.Carry, true)
}

func TestWord(t *testing.T) {
	type vector struct {
		name   string
		fn     algorithms.Word
		x, y   uint16
		psw    uint8
		result uint16
		flags  uint8
	}

	vectors := []vector{
		{"addw carry between bytes", algorithms.ADDW, 0x00ff, 0x0001, registers.Carry, 0x0100, 0x00},
		{"addw signed overflow", algorithms.ADDW, 0x7fff, 0x0001, 0x00, 0x8000, registers.Negative | registers.Overflow | registers.HalfCarry},
		{"addw zero", algorithms.ADDW, 0xffff, 0x0001, 0x00, 0x0000, registers.Zero | registers.Carry | registers.HalfCarry},
		{"subw borrow", algorithms.SUBW, 0x0000, 0x0001, 0x00, 0xffff, registers.Negative},
		{"subw zero", algorithms.SUBW, 0x1234, 0x1234, 0x00, 0x0000, registers.Zero | registers.Carry | registers.HalfCarry},
		{"cmpw equal", algorithms.CMPW, 0x1000, 0x1000, 0x00, 0x1000, registers.Zero | registers.Carry},
		{"cmpw less", algorithms.CMPW, 0x0fff, 0x1000, registers.Carry, 0x0fff, registers.Negative},
		{"ldw", algorithms.LDW, 0x0000, 0x8000, registers.Carry, 0x8000, registers.Carry | registers.Negative},
	}

	for _, v := range vectors {
		r, sr := v.fn(v.x, v.y, status(v.psw))
		test.ExpectEquality(t, r, v.result, v.name)
		test.ExpectEquality(t, sr.Value(), v.flags, v.name)
	}

	w, sr := algorithms.INCW(0xffff, status(0))
	test.ExpectEquality(t, w, uint16(0))
	test.ExpectEquality(t, sr.Zero, true)

	w, sr = algorithms.DECW(0x0100, status(0))
	test.ExpectEquality(t, w, uint16(0x00ff))
	test.ExpectEquality(t, sr.Value(), uint8(0))
}

func TestMultiply(t *testing.T) {
	y, a, sr := algorithms.MUL(0x10, 0x10, status(0))
	test.ExpectEquality(t, y, uint8(0x01))
	test.ExpectEquality(t, a, uint8(0x00))
	test.ExpectEquality(t, sr.Zero, false)

	// flags are taken from the high byte only
	y, a, sr = algorithms.MUL(0x01, 0x80, status(0))
	test.ExpectEquality(t, y, uint8(0x00))
	test.ExpectEquality(t, a, uint8(0x80))
	test.ExpectEquality(t, sr.Zero, true)
	test.ExpectEquality(t, sr.Negative, false)

	y, a, sr = algorithms.MUL(0xff, 0xff, status(0))
	test.ExpectEquality(t, y, uint8(0xfe))
	test.ExpectEquality(t, a, uint8(0x01))
	test.ExpectEquality(t, sr.Negative, true)
}

func TestDivide(t *testing.T) {
	y, a, sr := algorithms.DIV(0x0100, 0x10, status(0))
	test.ExpectEquality(t, a, uint8(0x10))
	test.ExpectEquality(t, y, uint8(0x00))
	test.ExpectEquality(t, sr.Value(), uint8(registers.HalfCarry))

	y, a, sr = algorithms.DIV(0x0007, 0x02, status(0))
	test.ExpectEquality(t, a, uint8(0x03))
	test.ExpectEquality(t, y, uint8(0x01))
	test.ExpectEquality(t, sr.Overflow, false)

	// division by zero does not fail
	y, a, sr = algorithms.DIV(0x1234, 0x00, status(0))
	test.ExpectEquality(t, a, uint8(0xed))
	test.ExpectEquality(t, y, uint8(0x34))
	test.ExpectEquality(t, sr.Value(), uint8(registers.Negative|registers.Overflow|registers.HalfCarry))
}

func TestBits(t *testing.T) {
	test.ExpectEquality(t, algorithms.TestBit(0x80, 7), true)
	test.ExpectEquality(t, algorithms.TestBit(0x80, 6), false)
	test.ExpectEquality(t, algorithms.TestBit(0x01, 8), true)
	test.ExpectEquality(t, algorithms.SetBit(0x00, 3, true), uint8(0x08))
	test.ExpectEquality(t, algorithms.SetBit(0xff, 0, false), uint8(0xfe))
}
