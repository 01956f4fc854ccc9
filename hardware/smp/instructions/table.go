// generated code - do not change

package instructions

// the instruction table, indexed by opcode. use GetDefinitions() to acquire a
// copy of the table
var definitions = [256]Definition{
	{OpCode: 0x00, Operator: "NOP", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x01, Operator: "TCALL", Operands: "0", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x02, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x03, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x04, Operator: "OR", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x05, Operator: "OR", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x06, Operator: "OR", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0x07, Operator: "OR", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0x08, Operator: "OR", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x09, Operator: "OR", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0x0a, Operator: "OR1", Operands: "C, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0x0b, Operator: "ASL", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x0c, Operator: "ASL", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x0d, Operator: "PUSH", Operands: "PSW", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x0e, Operator: "TSET1", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x0f, Operator: "BRK", Operands: "", Bytes: 1, Cycles: 8, AddressingMode: Implied, Family: Flow},
	{OpCode: 0x10, Operator: "BPL", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0x11, Operator: "TCALL", Operands: "1", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x12, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x13, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x14, Operator: "OR", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0x15, Operator: "OR", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0x16, Operator: "OR", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0x17, Operator: "OR", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0x18, Operator: "OR", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0x19, Operator: "OR", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0x1a, Operator: "DECW", Operands: "%s", Bytes: 2, Cycles: 6, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x1b, Operator: "ASL", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0x1c, Operator: "ASL", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0x1d, Operator: "DEC", Operands: "X", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x1e, Operator: "CMP", Operands: "X, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x1f, Operator: "JMP", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteIndexedIndirect, Family: Flow},
	{OpCode: 0x20, Operator: "CLRP", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x21, Operator: "TCALL", Operands: "2", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x22, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x23, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x24, Operator: "AND", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x25, Operator: "AND", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x26, Operator: "AND", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0x27, Operator: "AND", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0x28, Operator: "AND", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x29, Operator: "AND", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0x2a, Operator: "OR1", Operands: "C, /%s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0x2b, Operator: "ROL", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x2c, Operator: "ROL", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x2d, Operator: "PUSH", Operands: "A", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x2e, Operator: "CBNE", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageRelative, Family: Flow, Conditional: true},
	{OpCode: 0x2f, Operator: "BRA", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: Relative, Family: Flow},
	{OpCode: 0x30, Operator: "BMI", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0x31, Operator: "TCALL", Operands: "3", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x32, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x33, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x34, Operator: "AND", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0x35, Operator: "AND", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0x36, Operator: "AND", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0x37, Operator: "AND", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0x38, Operator: "AND", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0x39, Operator: "AND", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0x3a, Operator: "INCW", Operands: "%s", Bytes: 2, Cycles: 6, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x3b, Operator: "ROL", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0x3c, Operator: "ROL", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0x3d, Operator: "INC", Operands: "X", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x3e, Operator: "CMP", Operands: "X, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x3f, Operator: "CALL", Operands: "%s", Bytes: 3, Cycles: 8, AddressingMode: Absolute, Family: Flow},
	{OpCode: 0x40, Operator: "SETP", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x41, Operator: "TCALL", Operands: "4", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x42, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x43, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x44, Operator: "EOR", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x45, Operator: "EOR", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x46, Operator: "EOR", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0x47, Operator: "EOR", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0x48, Operator: "EOR", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x49, Operator: "EOR", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0x4a, Operator: "AND1", Operands: "C, %s", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0x4b, Operator: "LSR", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x4c, Operator: "LSR", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x4d, Operator: "PUSH", Operands: "X", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x4e, Operator: "TCLR1", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x4f, Operator: "PCALL", Operands: "%s", Bytes: 2, Cycles: 6, AddressingMode: UpperPage, Family: Flow},
	{OpCode: 0x50, Operator: "BVC", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0x51, Operator: "TCALL", Operands: "5", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x52, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x53, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x54, Operator: "EOR", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0x55, Operator: "EOR", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0x56, Operator: "EOR", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0x57, Operator: "EOR", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0x58, Operator: "EOR", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0x59, Operator: "EOR", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0x5a, Operator: "CMPW", Operands: "YA, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x5b, Operator: "LSR", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0x5c, Operator: "LSR", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0x5d, Operator: "MOV", Operands: "X, A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0x5e, Operator: "CMP", Operands: "Y, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x5f, Operator: "JMP", Operands: "%s", Bytes: 3, Cycles: 3, AddressingMode: Absolute, Family: Flow},
	{OpCode: 0x60, Operator: "CLRC", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x61, Operator: "TCALL", Operands: "6", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x62, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x63, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x64, Operator: "CMP", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x65, Operator: "CMP", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x66, Operator: "CMP", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0x67, Operator: "CMP", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0x68, Operator: "CMP", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x69, Operator: "CMP", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0x6a, Operator: "AND1", Operands: "C, /%s", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0x6b, Operator: "ROR", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x6c, Operator: "ROR", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x6d, Operator: "PUSH", Operands: "Y", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x6e, Operator: "DBNZ", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageRelative, Family: Flow, Conditional: true},
	{OpCode: 0x6f, Operator: "RET", Operands: "", Bytes: 1, Cycles: 5, AddressingMode: Implied, Family: Flow},
	{OpCode: 0x70, Operator: "BVS", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0x71, Operator: "TCALL", Operands: "7", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x72, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x73, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x74, Operator: "CMP", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0x75, Operator: "CMP", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0x76, Operator: "CMP", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0x77, Operator: "CMP", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0x78, Operator: "CMP", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0x79, Operator: "CMP", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0x7a, Operator: "ADDW", Operands: "YA, %s", Bytes: 2, Cycles: 5, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x7b, Operator: "ROR", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0x7c, Operator: "ROR", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0x7d, Operator: "MOV", Operands: "A, X", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0x7e, Operator: "CMP", Operands: "Y, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x7f, Operator: "RETI", Operands: "", Bytes: 1, Cycles: 6, AddressingMode: Implied, Family: Flow},
	{OpCode: 0x80, Operator: "SETC", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x81, Operator: "TCALL", Operands: "8", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x82, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x83, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x84, Operator: "ADC", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x85, Operator: "ADC", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0x86, Operator: "ADC", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0x87, Operator: "ADC", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0x88, Operator: "ADC", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x89, Operator: "ADC", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0x8a, Operator: "EOR1", Operands: "C, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0x8b, Operator: "DEC", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0x8c, Operator: "DEC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0x8d, Operator: "MOV", Operands: "Y, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0x8e, Operator: "POP", Operands: "PSW", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x8f, Operator: "MOV", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: Move},
	{OpCode: 0x90, Operator: "BCC", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0x91, Operator: "TCALL", Operands: "9", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0x92, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0x93, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0x94, Operator: "ADC", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0x95, Operator: "ADC", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0x96, Operator: "ADC", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0x97, Operator: "ADC", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0x98, Operator: "ADC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0x99, Operator: "ADC", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0x9a, Operator: "SUBW", Operands: "YA, %s", Bytes: 2, Cycles: 5, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0x9b, Operator: "DEC", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0x9c, Operator: "DEC", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0x9d, Operator: "MOV", Operands: "X, SP", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0x9e, Operator: "DIV", Operands: "YA, X", Bytes: 1, Cycles: 12, AddressingMode: Implied, Family: Misc},
	{OpCode: 0x9f, Operator: "XCN", Operands: "A", Bytes: 1, Cycles: 5, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xa0, Operator: "EI", Operands: "", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xa1, Operator: "TCALL", Operands: "10", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xa2, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xa3, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xa4, Operator: "SBC", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0xa5, Operator: "SBC", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0xa6, Operator: "SBC", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0xa7, Operator: "SBC", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0xa8, Operator: "SBC", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0xa9, Operator: "SBC", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageDirectPage, Family: RMW},
	{OpCode: 0xaa, Operator: "MOV1", Operands: "C, %s", Bytes: 3, Cycles: 4, AddressingMode: AbsoluteBit, Family: Read},
	{OpCode: 0xab, Operator: "INC", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: RMW},
	{OpCode: 0xac, Operator: "INC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: RMW},
	{OpCode: 0xad, Operator: "CMP", Operands: "Y, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0xae, Operator: "POP", Operands: "A", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xaf, Operator: "MOV", Operands: "%s, A", Bytes: 1, Cycles: 4, AddressingMode: IndirectXInc, Family: Move},
	{OpCode: 0xb0, Operator: "BCS", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0xb1, Operator: "TCALL", Operands: "11", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xb2, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xb3, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xb4, Operator: "SBC", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0xb5, Operator: "SBC", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0xb6, Operator: "SBC", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0xb7, Operator: "SBC", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0xb8, Operator: "SBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageImmediate, Family: RMW},
	{OpCode: 0xb9, Operator: "SBC", Operands: "%s", Bytes: 1, Cycles: 5, AddressingMode: IndirectXIndirectY, Family: RMW},
	{OpCode: 0xba, Operator: "MOVW", Operands: "YA, %s", Bytes: 2, Cycles: 5, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0xbb, Operator: "INC", Operands: "%s", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: RMW},
	{OpCode: 0xbc, Operator: "INC", Operands: "A", Bytes: 1, Cycles: 2, AddressingMode: Accumulator, Family: Misc},
	{OpCode: 0xbd, Operator: "MOV", Operands: "SP, X", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0xbe, Operator: "DAS", Operands: "A", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xbf, Operator: "MOV", Operands: "A, %s", Bytes: 1, Cycles: 4, AddressingMode: IndirectXInc, Family: Move},
	{OpCode: 0xc0, Operator: "DI", Operands: "", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xc1, Operator: "TCALL", Operands: "12", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xc2, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xc3, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xc4, Operator: "MOV", Operands: "%s, A", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: Move},
	{OpCode: 0xc5, Operator: "MOV", Operands: "%s, A", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: Move},
	{OpCode: 0xc6, Operator: "MOV", Operands: "%s, A", Bytes: 1, Cycles: 4, AddressingMode: IndirectX, Family: Move},
	{OpCode: 0xc7, Operator: "MOV", Operands: "%s, A", Bytes: 2, Cycles: 7, AddressingMode: DirectPageIndexedIndirect, Family: Move},
	{OpCode: 0xc8, Operator: "CMP", Operands: "X, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0xc9, Operator: "MOV", Operands: "%s, X", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: Move},
	{OpCode: 0xca, Operator: "MOV1", Operands: "%s, C", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteBit, Family: RMW},
	{OpCode: 0xcb, Operator: "MOV", Operands: "%s, Y", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: Move},
	{OpCode: 0xcc, Operator: "MOV", Operands: "%s, Y", Bytes: 3, Cycles: 5, AddressingMode: Absolute, Family: Move},
	{OpCode: 0xcd, Operator: "MOV", Operands: "X, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0xce, Operator: "POP", Operands: "X", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xcf, Operator: "MUL", Operands: "YA", Bytes: 1, Cycles: 9, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xd0, Operator: "BNE", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0xd1, Operator: "TCALL", Operands: "13", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xd2, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xd3, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xd4, Operator: "MOV", Operands: "%s, A", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: Move},
	{OpCode: 0xd5, Operator: "MOV", Operands: "%s, A", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteX, Family: Move},
	{OpCode: 0xd6, Operator: "MOV", Operands: "%s, A", Bytes: 3, Cycles: 6, AddressingMode: AbsoluteY, Family: Move},
	{OpCode: 0xd7, Operator: "MOV", Operands: "%s, A", Bytes: 2, Cycles: 7, AddressingMode: DirectPageIndirectIndexed, Family: Move},
	{OpCode: 0xd8, Operator: "MOV", Operands: "%s, X", Bytes: 2, Cycles: 4, AddressingMode: DirectPage, Family: Move},
	{OpCode: 0xd9, Operator: "MOV", Operands: "%s, X", Bytes: 2, Cycles: 5, AddressingMode: DirectPageY, Family: Move},
	{OpCode: 0xda, Operator: "MOVW", Operands: "%s, YA", Bytes: 2, Cycles: 5, AddressingMode: DirectPage, Family: Move},
	{OpCode: 0xdb, Operator: "MOV", Operands: "%s, Y", Bytes: 2, Cycles: 5, AddressingMode: DirectPageX, Family: Move},
	{OpCode: 0xdc, Operator: "DEC", Operands: "Y", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xdd, Operator: "MOV", Operands: "A, Y", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0xde, Operator: "CBNE", Operands: "%s", Bytes: 3, Cycles: 6, AddressingMode: DirectPageXRelative, Family: Flow, Conditional: true},
	{OpCode: 0xdf, Operator: "DAA", Operands: "A", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xe0, Operator: "CLRV", Operands: "", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xe1, Operator: "TCALL", Operands: "14", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xe2, Operator: "SET1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xe3, Operator: "BBS", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xe4, Operator: "MOV", Operands: "A, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0xe5, Operator: "MOV", Operands: "A, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0xe6, Operator: "MOV", Operands: "A, %s", Bytes: 1, Cycles: 3, AddressingMode: IndirectX, Family: Read},
	{OpCode: 0xe7, Operator: "MOV", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndexedIndirect, Family: Read},
	{OpCode: 0xe8, Operator: "MOV", Operands: "A, %s", Bytes: 2, Cycles: 2, AddressingMode: Immediate, Family: Read},
	{OpCode: 0xe9, Operator: "MOV", Operands: "X, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0xea, Operator: "NOT1", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteBit, Family: RMW},
	{OpCode: 0xeb, Operator: "MOV", Operands: "Y, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0xec, Operator: "MOV", Operands: "Y, %s", Bytes: 3, Cycles: 4, AddressingMode: Absolute, Family: Read},
	{OpCode: 0xed, Operator: "NOTC", Operands: "", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xee, Operator: "POP", Operands: "Y", Bytes: 1, Cycles: 4, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xef, Operator: "SLEEP", Operands: "", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xf0, Operator: "BEQ", Operands: "%s", Bytes: 2, Cycles: 2, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0xf1, Operator: "TCALL", Operands: "15", Bytes: 1, Cycles: 8, AddressingMode: Table, Family: Flow},
	{OpCode: 0xf2, Operator: "CLR1", Operands: "%s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageBit, Family: RMW},
	{OpCode: 0xf3, Operator: "BBC", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageBitRelative, Family: Flow, Conditional: true},
	{OpCode: 0xf4, Operator: "MOV", Operands: "A, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0xf5, Operator: "MOV", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteX, Family: Read},
	{OpCode: 0xf6, Operator: "MOV", Operands: "A, %s", Bytes: 3, Cycles: 5, AddressingMode: AbsoluteY, Family: Read},
	{OpCode: 0xf7, Operator: "MOV", Operands: "A, %s", Bytes: 2, Cycles: 6, AddressingMode: DirectPageIndirectIndexed, Family: Read},
	{OpCode: 0xf8, Operator: "MOV", Operands: "X, %s", Bytes: 2, Cycles: 3, AddressingMode: DirectPage, Family: Read},
	{OpCode: 0xf9, Operator: "MOV", Operands: "X, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageY, Family: Read},
	{OpCode: 0xfa, Operator: "MOV", Operands: "%s", Bytes: 3, Cycles: 5, AddressingMode: DirectPageDirectPage, Family: Move},
	{OpCode: 0xfb, Operator: "MOV", Operands: "Y, %s", Bytes: 2, Cycles: 4, AddressingMode: DirectPageX, Family: Read},
	{OpCode: 0xfc, Operator: "INC", Operands: "Y", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Misc},
	{OpCode: 0xfd, Operator: "MOV", Operands: "Y, A", Bytes: 1, Cycles: 2, AddressingMode: Implied, Family: Move},
	{OpCode: 0xfe, Operator: "DBNZ", Operands: "Y, %s", Bytes: 2, Cycles: 4, AddressingMode: Relative, Family: Flow, Conditional: true},
	{OpCode: 0xff, Operator: "STOP", Operands: "", Bytes: 1, Cycles: 3, AddressingMode: Implied, Family: Misc},
}
