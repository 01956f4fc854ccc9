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
	"github.com/jetsetilly/spc700/hardware/smp/algorithms"
)

// opFunc implements a single opcode. the opcode itself has been fetched by
// the time the function is called
type opFunc func(mc *SMP) error

// jump table for all 256 opcodes. the layout of the table follows the layout
// of the instructions.csv file in the instructions package
var opcodes [256]opFunc

func init() {
	// the arithmetic operations share the first nine columns of every
	// even/odd pair of rows
	arithmetic := [...]algorithms.Binary{
		algorithms.OR, algorithms.AND, algorithms.EOR,
		algorithms.CMP, algorithms.ADC, algorithms.SBC,
	}
	for i, fn := range arithmetic {
		even := uint8(i) << 5
		odd := even | 0x10

		// CMP never writes to memory
		write := i != 3

		opcodes[even|0x04] = readDirectPage(fn, regA)
		opcodes[even|0x05] = readAbsolute(fn, regA)
		opcodes[even|0x06] = readIndirectX(fn)
		opcodes[even|0x07] = readDirectPageIndexedIndirect(fn)
		opcodes[even|0x08] = readImmediate(fn, regA)
		opcodes[even|0x09] = modifyDirectPageDirectPage(fn, write)
		opcodes[odd|0x04] = readDirectPageIndexed(fn, regA, regX)
		opcodes[odd|0x05] = readAbsoluteIndexed(fn, regX)
		opcodes[odd|0x06] = readAbsoluteIndexed(fn, regY)
		opcodes[odd|0x07] = readDirectPageIndirectIndexed(fn)
		opcodes[odd|0x08] = modifyDirectPageImmediate(fn, write)
		opcodes[odd|0x09] = modifyIndirectXIndirectY(fn, write)
	}

	// likewise, the shift and increment operations share four columns
	modify := [...]algorithms.Unary{
		algorithms.ASL, algorithms.ROL, algorithms.LSR,
		algorithms.ROR, algorithms.DEC, algorithms.INC,
	}
	for i, fn := range modify {
		even := uint8(i) << 5
		odd := even | 0x10
		opcodes[even|0x0b] = modifyDirectPage(fn)
		opcodes[even|0x0c] = modifyAbsolute(fn)
		opcodes[odd|0x0b] = modifyDirectPageX(fn)
		opcodes[odd|0x0c] = modifyRegister(fn, regA)
	}

	// the first four columns
	for n := uint8(0); n < 16; n++ {
		row := n << 4
		opcodes[row|0x01] = callTable(n)

		// bit number is in the upper three bits of the opcode. the bit is
		// set in even rows and cleared in odd rows
		bit := n >> 1
		set := n&0x01 == 0x00
		opcodes[row|0x02] = modifyDirectPageBit(bit, set)
		opcodes[row|0x03] = branchBit(bit, set)
	}

	opcodes[0x00] = nop
	opcodes[0x10] = branchIf(condPL)
	opcodes[0x20] = setFlags(flagCLRP, 1)
	opcodes[0x30] = branchIf(condMI)
	opcodes[0x40] = setFlags(flagSETP, 1)
	opcodes[0x50] = branchIf(condVC)
	opcodes[0x60] = setFlags(flagCLRC, 1)
	opcodes[0x70] = branchIf(condVS)
	opcodes[0x80] = setFlags(flagSETC, 1)
	opcodes[0x90] = branchIf(condCC)
	opcodes[0xa0] = setFlags(flagEI, 2)
	opcodes[0xb0] = branchIf(condCS)
	opcodes[0xc0] = setFlags(flagDI, 2)
	opcodes[0xd0] = branchIf(condNE)
	opcodes[0xe0] = setFlags(flagCLRV, 1)
	opcodes[0xf0] = branchIf(condEQ)

	// stores and loads of the accumulator
	opcodes[0xc4] = storeDirectPage(regA)
	opcodes[0xc5] = storeAbsolute(regA)
	opcodes[0xc6] = storeIndirectX
	opcodes[0xc7] = storeDirectPageIndexedIndirect
	opcodes[0xd4] = storeDirectPageIndexed(regA, regX)
	opcodes[0xd5] = storeAbsoluteIndexed(regX)
	opcodes[0xd6] = storeAbsoluteIndexed(regY)
	opcodes[0xd7] = storeDirectPageIndirectIndexed
	opcodes[0xe4] = readDirectPage(algorithms.LD, regA)
	opcodes[0xe5] = readAbsolute(algorithms.LD, regA)
	opcodes[0xe6] = readIndirectX(algorithms.LD)
	opcodes[0xe7] = readDirectPageIndexedIndirect(algorithms.LD)
	opcodes[0xf4] = readDirectPageIndexed(algorithms.LD, regA, regX)
	opcodes[0xf5] = readAbsoluteIndexed(algorithms.LD, regX)
	opcodes[0xf6] = readAbsoluteIndexed(algorithms.LD, regY)
	opcodes[0xf7] = readDirectPageIndirectIndexed(algorithms.LD)

	// X and Y
	opcodes[0xc8] = readImmediate(algorithms.CMP, regX)
	opcodes[0xe8] = readImmediate(algorithms.LD, regA)
	opcodes[0xd8] = storeDirectPage(regX)
	opcodes[0xf8] = readDirectPage(algorithms.LD, regX)
	opcodes[0xc9] = storeAbsolute(regX)
	opcodes[0xe9] = readAbsolute(algorithms.LD, regX)
	opcodes[0xd9] = storeDirectPageIndexed(regX, regY)
	opcodes[0xf9] = readDirectPageIndexed(algorithms.LD, regX, regY)
	opcodes[0xcb] = storeDirectPage(regY)
	opcodes[0xeb] = readDirectPage(algorithms.LD, regY)
	opcodes[0xdb] = storeDirectPageIndexed(regY, regX)
	opcodes[0xfb] = readDirectPageIndexed(algorithms.LD, regY, regX)
	opcodes[0xcc] = storeAbsolute(regY)
	opcodes[0xec] = readAbsolute(algorithms.LD, regY)
	opcodes[0xdc] = modifyRegister(algorithms.DEC, regY)
	opcodes[0xfc] = modifyRegister(algorithms.INC, regY)

	// absolute bit operations and 16bit operations
	opcodes[0x0a] = readCarryBit(carryOR, true)
	opcodes[0x2a] = readCarryBit(carryORNot, true)
	opcodes[0x4a] = readCarryBit(carryAND, false)
	opcodes[0x6a] = readCarryBit(carryANDNot, false)
	opcodes[0x8a] = readCarryBit(carryEOR, true)
	opcodes[0xaa] = readCarryBit(carryMOV, false)
	opcodes[0xca] = storeCarryBit
	opcodes[0xea] = invertBit
	opcodes[0x1a] = modifyWord(algorithms.DECW)
	opcodes[0x3a] = modifyWord(algorithms.INCW)
	opcodes[0x5a] = readWord(algorithms.CMPW, false)
	opcodes[0x7a] = readWord(algorithms.ADDW, true)
	opcodes[0x9a] = readWord(algorithms.SUBW, true)
	opcodes[0xba] = readWord(algorithms.LDW, true)
	opcodes[0xda] = storeWord
	opcodes[0xfa] = moveDirectPage

	// stack and register transfers
	opcodes[0x0d] = pushStatus
	opcodes[0x2d] = pushRegister(regA)
	opcodes[0x4d] = pushRegister(regX)
	opcodes[0x6d] = pushRegister(regY)
	opcodes[0x1d] = modifyRegister(algorithms.DEC, regX)
	opcodes[0x3d] = modifyRegister(algorithms.INC, regX)
	opcodes[0x5d] = transfer(regX, regA)
	opcodes[0x7d] = transfer(regA, regX)
	opcodes[0x8d] = readImmediate(algorithms.LD, regY)
	opcodes[0x9d] = transferFromSP
	opcodes[0xad] = readImmediate(algorithms.CMP, regY)
	opcodes[0xbd] = transferToSP
	opcodes[0xcd] = readImmediate(algorithms.LD, regX)
	opcodes[0xdd] = transfer(regA, regY)
	opcodes[0xed] = setFlags(flagNOTC, 2)
	opcodes[0xfd] = transfer(regY, regA)

	opcodes[0x0e] = modifyTest(algorithms.TSET)
	opcodes[0x1e] = readAbsolute(algorithms.CMP, regX)
	opcodes[0x2e] = compareBranch(false)
	opcodes[0x3e] = readDirectPage(algorithms.CMP, regX)
	opcodes[0x4e] = modifyTest(algorithms.TCLR)
	opcodes[0x5e] = readAbsolute(algorithms.CMP, regY)
	opcodes[0x6e] = decrementBranchDirectPage
	opcodes[0x7e] = readDirectPage(algorithms.CMP, regY)
	opcodes[0x8e] = pullStatus
	opcodes[0x9e] = divide
	opcodes[0xae] = pullRegister(regA)
	opcodes[0xbe] = accumulator(algorithms.DAS, 2)
	opcodes[0xce] = pullRegister(regX)
	opcodes[0xde] = compareBranch(true)
	opcodes[0xee] = pullRegister(regY)
	opcodes[0xfe] = decrementBranchY

	opcodes[0x0f] = softwareInterrupt
	opcodes[0x1f] = jumpIndexedIndirect
	opcodes[0x2f] = branchAlways
	opcodes[0x3f] = call
	opcodes[0x4f] = callUpperPage
	opcodes[0x5f] = jumpAbsolute
	opcodes[0x6f] = ret
	opcodes[0x7f] = reti
	opcodes[0x8f] = moveImmediate
	opcodes[0x9f] = accumulator(algorithms.XCN, 4)
	opcodes[0xaf] = storeIndirectXInc
	opcodes[0xbf] = loadIndirectXInc
	opcodes[0xcf] = multiply
	opcodes[0xdf] = accumulator(algorithms.DAA, 2)
	opcodes[0xef] = halt
	opcodes[0xff] = halt
}
