package i8088

// These tables are the canonical 8088 opcode encodings, transcribed
// verbatim from the original decoder's disassembler data (§4.7 requires
// implementers to reproduce the exact table contents, not re-derive them).

// groupMarkerBase is the first mnemonicNames index that means "consult
// groupMnemonics" rather than a direct name.
const groupMarkerBase = 105

// mnemonicNames is indexed by the values in opcodeRefs. Indices
// groupMarkerBase..groupMarkerBase+5 are group markers (GRP1, GRP2A, GRP3,
// GRP4, GRP5, GRP2B); opcodeRefs never resolves those through this table
// directly (lookupOpcode intercepts them first), they are kept here only
// so the index space documents itself. Some entries are never targeted by
// opcodeRefs: AMX, ADX and REPZ, and the names only reached through
// groupMnemonics (ROL..SAR at 64-70, NOT..IDIV at 91-96); they are
// preserved verbatim from the source's mnemonic list rather than pruned.
var mnemonicNames = [...]string{
	0: "ADD", 1: "PUSH", 2: "POP", 3: "OR", 4: "ADC", 5: "SBB", 6: "AND",
	7: "ES", 8: "DAA", 9: "SUB", 10: "CS", 11: "DAS", 12: "XOR", 13: "SS",
	14: "AAA", 15: "CMP", 16: "DS", 17: "AAS", 18: "INC", 19: "DEC",
	20: "JO", 21: "JNO", 22: "JB", 23: "JNB", 24: "JZ", 25: "JNZ",
	26: "JBE", 27: "JNBE", 28: "JS", 29: "JNS", 30: "JP", 31: "JNP",
	32: "JL", 33: "JNL", 34: "JLE", 35: "JNLE",
	36: "TEST", 37: "XCHG", 38: "MOV", 39: "LEA", 40: "CBW", 41: "CWD",
	42: "CALLF", 43: "PUSHF", 44: "POPF", 45: "SAHF", 46: "LAHF",
	47: "MOVSB", 48: "MOVSW", 49: "CMPSB", 50: "CMPSW", 51: "STOSB",
	52: "STOSW", 53: "LODSB", 54: "LODSW", 55: "SCASB", 56: "SCASW",
	57: "RETN", 58: "LES", 59: "LDS", 60: "RETF", 61: "INT", 62: "INTO",
	63: "IRET", 64: "ROL", 65: "ROR", 66: "RCL", 67: "RCR", 68: "SHL",
	69: "SHR", 70: "SAR", 71: "AAM", 72: "AMX", 73: "AAD", 74: "ADX",
	75: "XLAT", 76: "LOOPNE", 77: "LOOPE", 78: "LOOP", 79: "JCXZ",
	80: "IN", 81: "OUT", 82: "CALL", 83: "JMP", 84: "JMPF", 85: "LOCK",
	86: "REPNZ", 87: "REP", 88: "REPZ", 89: "HLT", 90: "CMC", 91: "NOT",
	92: "NEG", 93: "MUL", 94: "IMUL", 95: "DIV", 96: "IDIV", 97: "CLC",
	98: "STC", 99: "CLI", 100: "STI", 101: "CLD", 102: "STD", 103: "WAIT",
	104: "INVAL",
	105: "GRP1", 106: "GRP2A", 107: "GRP3", 108: "GRP4", 109: "GRP5", 110: "GRP2B",
	111: "NOP",
}

// groupMnemonics[g] holds the 8 mnemonics selected by a group opcode's
// ModR/M reg field; g = opcode_refs value - groupMarkerBase.
var groupMnemonics = [6][8]string{
	{"ADD", "OR", "ADC", "SBB", "AND", "SUB", "XOR", "CMP"},              // GRP1  (0x80-0x83)
	{"ROL", "ROR", "RCL", "RCR", "SHL", "SHR", "SETMO", "SAR"},           // GRP2A (0xD0/0xD1, shift by 1)
	{"TEST", "TEST", "NOT", "NEG", "MUL", "IMUL", "DIV", "IDIV"},         // GRP3  (0xF6/0xF7)
	{"INC", "DEC", "INVAL", "INVAL", "INVAL", "INVAL", "INVAL", "INVAL"}, // GRP4  (0xFE)
	{"INC", "DEC", "CALL", "CALLF", "JMP", "JMPF", "PUSH", "INVAL"},      // GRP5  (0xFF)
	{"ROL", "ROR", "RCL", "RCR", "SHL", "SHR", "SETMOC", "SAR"},          // GRP2B (0xD2/0xD3, shift by CL)
}

// opcodeRefs maps each of the 256 possible opcode bytes to an index into
// mnemonicNames (direct mnemonic) or a group marker consumed via
// groupMnemonics.
var opcodeRefs = [256]int{
	0, 0, 0, 0, 0, 0, 1, 2, 3, 3, 3, 3, 3, 3, 1, 2,
	4, 4, 4, 4, 4, 4, 1, 2, 5, 5, 5, 5, 5, 5, 1, 2,
	6, 6, 6, 6, 6, 6, 7, 8, 9, 9, 9, 9, 9, 9, 10, 11,
	12, 12, 12, 12, 12, 12, 13, 14, 15, 15, 15, 15, 15, 15, 16, 17,
	18, 18, 18, 18, 18, 18, 18, 18, 19, 19, 19, 19, 19, 19, 19, 19,
	1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
	105, 105, 105, 105, 36, 36, 37, 37, 38, 38, 38, 38, 38, 39, 38, 2,
	111, 37, 37, 37, 37, 37, 37, 37, 40, 41, 42, 103, 43, 44, 45, 46,
	38, 38, 38, 38, 47, 48, 49, 50, 36, 36, 51, 52, 53, 54, 55, 56,
	38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38, 38,
	57, 57, 57, 57, 58, 59, 38, 38, 60, 60, 60, 60, 61, 61, 62, 63,
	106, 106, 110, 110, 71, 73, 104, 75, 104, 104, 104, 104, 104, 104, 104, 104,
	76, 77, 78, 79, 80, 80, 81, 81, 82, 83, 84, 83, 80, 80, 81, 81,
	85, 104, 86, 87, 89, 90, 107, 107, 97, 98, 99, 100, 101, 102, 108, 109,
}
