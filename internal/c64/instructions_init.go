package c64

// initInstructions wires the 151 documented 6502 opcodes into the
// dispatch table. Unofficial/illegal opcodes are deliberately left
// with a nil fn, which Step() treats as fatal.
func (c *CPU) initInstructions() {
	set := func(op uint8, name string, mode addrMode, fn func(*CPU), cycles uint8) {
		c.instrs[op] = instr{name: name, mode: mode, fn: fn, cycles: cycles}
	}

	const (
		imp = addrModeImplied
		acc = addrModeAccumulator
		imm = addrModeImmediate
		zp  = addrModeZeroPage
		zpx = addrModeZeroPageX
		zpy = addrModeZeroPageY
		abs = addrModeAbsolute
		abx = addrModeAbsoluteX
		aby = addrModeAbsoluteY
		ind = addrModeIndirect
		inx = addrModeIndirectX
		iny = addrModeIndirectY
		rel = addrModeRelative
	)

	set(0x00, "BRK", imp, (*CPU).opBRK, 7)
	set(0x01, "ORA", inx, (*CPU).opORA, 6)
	set(0x05, "ORA", zp, (*CPU).opORA, 3)
	set(0x06, "ASL", zp, (*CPU).opASL, 5)
	set(0x08, "PHP", imp, (*CPU).opPHP, 3)
	set(0x09, "ORA", imm, (*CPU).opORA, 2)
	set(0x0A, "ASL", acc, (*CPU).opASL, 2)
	set(0x0D, "ORA", abs, (*CPU).opORA, 4)
	set(0x0E, "ASL", abs, (*CPU).opASL, 6)

	set(0x10, "BPL", rel, (*CPU).opBPL, 2)
	set(0x11, "ORA", iny, (*CPU).opORA, 5)
	set(0x15, "ORA", zpx, (*CPU).opORA, 4)
	set(0x16, "ASL", zpx, (*CPU).opASL, 6)
	set(0x18, "CLC", imp, (*CPU).opCLC, 2)
	set(0x19, "ORA", aby, (*CPU).opORA, 4)
	set(0x1D, "ORA", abx, (*CPU).opORA, 4)
	set(0x1E, "ASL", abx, (*CPU).opASL, 7)

	set(0x20, "JSR", abs, (*CPU).opJSR, 6)
	set(0x21, "AND", inx, (*CPU).opAND, 6)
	set(0x24, "BIT", zp, (*CPU).opBIT, 3)
	set(0x25, "AND", zp, (*CPU).opAND, 3)
	set(0x26, "ROL", zp, (*CPU).opROL, 5)
	set(0x28, "PLP", imp, (*CPU).opPLP, 4)
	set(0x29, "AND", imm, (*CPU).opAND, 2)
	set(0x2A, "ROL", acc, (*CPU).opROL, 2)
	set(0x2C, "BIT", abs, (*CPU).opBIT, 4)
	set(0x2D, "AND", abs, (*CPU).opAND, 4)
	set(0x2E, "ROL", abs, (*CPU).opROL, 6)

	set(0x30, "BMI", rel, (*CPU).opBMI, 2)
	set(0x31, "AND", iny, (*CPU).opAND, 5)
	set(0x35, "AND", zpx, (*CPU).opAND, 4)
	set(0x36, "ROL", zpx, (*CPU).opROL, 6)
	set(0x38, "SEC", imp, (*CPU).opSEC, 2)
	set(0x39, "AND", aby, (*CPU).opAND, 4)
	set(0x3D, "AND", abx, (*CPU).opAND, 4)
	set(0x3E, "ROL", abx, (*CPU).opROL, 7)

	set(0x40, "RTI", imp, (*CPU).opRTI, 6)
	set(0x41, "EOR", inx, (*CPU).opEOR, 6)
	set(0x45, "EOR", zp, (*CPU).opEOR, 3)
	set(0x46, "LSR", zp, (*CPU).opLSR, 5)
	set(0x48, "PHA", imp, (*CPU).opPHA, 3)
	set(0x49, "EOR", imm, (*CPU).opEOR, 2)
	set(0x4A, "LSR", acc, (*CPU).opLSR, 2)
	set(0x4C, "JMP", abs, (*CPU).opJMP, 3)
	set(0x4D, "EOR", abs, (*CPU).opEOR, 4)
	set(0x4E, "LSR", abs, (*CPU).opLSR, 6)

	set(0x50, "BVC", rel, (*CPU).opBVC, 2)
	set(0x51, "EOR", iny, (*CPU).opEOR, 5)
	set(0x55, "EOR", zpx, (*CPU).opEOR, 4)
	set(0x56, "LSR", zpx, (*CPU).opLSR, 6)
	set(0x58, "CLI", imp, (*CPU).opCLI, 2)
	set(0x59, "EOR", aby, (*CPU).opEOR, 4)
	set(0x5D, "EOR", abx, (*CPU).opEOR, 4)
	set(0x5E, "LSR", abx, (*CPU).opLSR, 7)

	set(0x60, "RTS", imp, (*CPU).opRTS, 6)
	set(0x61, "ADC", inx, (*CPU).opADC, 6)
	set(0x65, "ADC", zp, (*CPU).opADC, 3)
	set(0x66, "ROR", zp, (*CPU).opROR, 5)
	set(0x68, "PLA", imp, (*CPU).opPLA, 4)
	set(0x69, "ADC", imm, (*CPU).opADC, 2)
	set(0x6A, "ROR", acc, (*CPU).opROR, 2)
	set(0x6C, "JMP", ind, (*CPU).opJMP, 5)
	set(0x6D, "ADC", abs, (*CPU).opADC, 4)
	set(0x6E, "ROR", abs, (*CPU).opROR, 6)

	set(0x70, "BVS", rel, (*CPU).opBVS, 2)
	set(0x71, "ADC", iny, (*CPU).opADC, 5)
	set(0x75, "ADC", zpx, (*CPU).opADC, 4)
	set(0x76, "ROR", zpx, (*CPU).opROR, 6)
	set(0x78, "SEI", imp, (*CPU).opSEI, 2)
	set(0x79, "ADC", aby, (*CPU).opADC, 4)
	set(0x7D, "ADC", abx, (*CPU).opADC, 4)
	set(0x7E, "ROR", abx, (*CPU).opROR, 7)

	set(0x81, "STA", inx, (*CPU).opSTA, 6)
	set(0x84, "STY", zp, (*CPU).opSTY, 3)
	set(0x85, "STA", zp, (*CPU).opSTA, 3)
	set(0x86, "STX", zp, (*CPU).opSTX, 3)
	set(0x88, "DEY", imp, (*CPU).opDEY, 2)
	set(0x8A, "TXA", imp, (*CPU).opTXA, 2)
	set(0x8C, "STY", abs, (*CPU).opSTY, 4)
	set(0x8D, "STA", abs, (*CPU).opSTA, 4)
	set(0x8E, "STX", abs, (*CPU).opSTX, 4)

	set(0x90, "BCC", rel, (*CPU).opBCC, 2)
	set(0x91, "STA", iny, (*CPU).opSTA, 6)
	set(0x94, "STY", zpx, (*CPU).opSTY, 4)
	set(0x95, "STA", zpx, (*CPU).opSTA, 4)
	set(0x96, "STX", zpy, (*CPU).opSTX, 4)
	set(0x98, "TYA", imp, (*CPU).opTYA, 2)
	set(0x99, "STA", aby, (*CPU).opSTA, 5)
	set(0x9A, "TXS", imp, (*CPU).opTXS, 2)
	set(0x9D, "STA", abx, (*CPU).opSTA, 5)

	set(0xA0, "LDY", imm, (*CPU).opLDY, 2)
	set(0xA1, "LDA", inx, (*CPU).opLDA, 6)
	set(0xA2, "LDX", imm, (*CPU).opLDX, 2)
	set(0xA4, "LDY", zp, (*CPU).opLDY, 3)
	set(0xA5, "LDA", zp, (*CPU).opLDA, 3)
	set(0xA6, "LDX", zp, (*CPU).opLDX, 3)
	set(0xA8, "TAY", imp, (*CPU).opTAY, 2)
	set(0xA9, "LDA", imm, (*CPU).opLDA, 2)
	set(0xAA, "TAX", imp, (*CPU).opTAX, 2)
	set(0xAC, "LDY", abs, (*CPU).opLDY, 4)
	set(0xAD, "LDA", abs, (*CPU).opLDA, 4)
	set(0xAE, "LDX", abs, (*CPU).opLDX, 4)

	set(0xB0, "BCS", rel, (*CPU).opBCS, 2)
	set(0xB1, "LDA", iny, (*CPU).opLDA, 5)
	set(0xB4, "LDY", zpx, (*CPU).opLDY, 4)
	set(0xB5, "LDA", zpx, (*CPU).opLDA, 4)
	set(0xB6, "LDX", zpy, (*CPU).opLDX, 4)
	set(0xB8, "CLV", imp, (*CPU).opCLV, 2)
	set(0xB9, "LDA", aby, (*CPU).opLDA, 4)
	set(0xBA, "TSX", imp, (*CPU).opTSX, 2)
	set(0xBC, "LDY", abx, (*CPU).opLDY, 4)
	set(0xBD, "LDA", abx, (*CPU).opLDA, 4)
	set(0xBE, "LDX", aby, (*CPU).opLDX, 4)

	set(0xC0, "CPY", imm, (*CPU).opCPY, 2)
	set(0xC1, "CMP", inx, (*CPU).opCMP, 6)
	set(0xC4, "CPY", zp, (*CPU).opCPY, 3)
	set(0xC5, "CMP", zp, (*CPU).opCMP, 3)
	set(0xC6, "DEC", zp, (*CPU).opDEC, 5)
	set(0xC8, "INY", imp, (*CPU).opINY, 2)
	set(0xC9, "CMP", imm, (*CPU).opCMP, 2)
	set(0xCA, "DEX", imp, (*CPU).opDEX, 2)
	set(0xCC, "CPY", abs, (*CPU).opCPY, 4)
	set(0xCD, "CMP", abs, (*CPU).opCMP, 4)
	set(0xCE, "DEC", abs, (*CPU).opDEC, 6)

	set(0xD0, "BNE", rel, (*CPU).opBNE, 2)
	set(0xD1, "CMP", iny, (*CPU).opCMP, 5)
	set(0xD5, "CMP", zpx, (*CPU).opCMP, 4)
	set(0xD6, "DEC", zpx, (*CPU).opDEC, 6)
	set(0xD8, "CLD", imp, (*CPU).opCLD, 2)
	set(0xD9, "CMP", aby, (*CPU).opCMP, 4)
	set(0xDD, "CMP", abx, (*CPU).opCMP, 4)
	set(0xDE, "DEC", abx, (*CPU).opDEC, 7)

	set(0xE0, "CPX", imm, (*CPU).opCPX, 2)
	set(0xE1, "SBC", inx, (*CPU).opSBC, 6)
	set(0xE4, "CPX", zp, (*CPU).opCPX, 3)
	set(0xE5, "SBC", zp, (*CPU).opSBC, 3)
	set(0xE6, "INC", zp, (*CPU).opINC, 5)
	set(0xE8, "INX", imp, (*CPU).opINX, 2)
	set(0xE9, "SBC", imm, (*CPU).opSBC, 2)
	set(0xEA, "NOP", imp, (*CPU).opNOP, 2)
	set(0xEC, "CPX", abs, (*CPU).opCPX, 4)
	set(0xED, "SBC", abs, (*CPU).opSBC, 4)
	set(0xEE, "INC", abs, (*CPU).opINC, 6)

	set(0xF0, "BEQ", rel, (*CPU).opBEQ, 2)
	set(0xF1, "SBC", iny, (*CPU).opSBC, 5)
	set(0xF5, "SBC", zpx, (*CPU).opSBC, 4)
	set(0xF6, "INC", zpx, (*CPU).opINC, 6)
	set(0xF8, "SED", imp, (*CPU).opSED, 2)
	set(0xF9, "SBC", aby, (*CPU).opSBC, 4)
	set(0xFD, "SBC", abx, (*CPU).opSBC, 4)
	set(0xFE, "INC", abx, (*CPU).opINC, 7)
}
