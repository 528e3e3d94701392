package i8088

import "fmt"

// Disassembler is a pure function from a byte sequence to a mnemonic
// string (§4.7). It carries no state and is safe for concurrent use.
type Disassembler struct{}

// NewDisassembler returns a ready-to-use Disassembler.
func NewDisassembler() *Disassembler { return &Disassembler{} }

// lookupOpcode resolves a single opcode byte, consulting the group table
// via modrm when the opcode requires one.
func (d *Disassembler) lookupOpcode(opcode byte, modrm *byte) (string, error) {
	idx := opcodeRefs[opcode]
	if idx >= groupMarkerBase && idx < groupMarkerBase+len(groupMnemonics) {
		if modrm == nil {
			return "", &DecodeError{Kind: MissingModRM, Msg: fmt.Sprintf("opcode %02X needs a ModR/M byte", opcode)}
		}
		reg := (*modrm >> 3) & 0x07
		return groupMnemonics[idx-groupMarkerBase][reg], nil
	}
	return mnemonicNames[idx], nil
}

// Disassemble maps an accumulated instruction-byte sequence to its
// mnemonic. Leading prefix bytes are skipped to find the real opcode; the
// byte immediately following the opcode, if present, serves as ModR/M.
func (d *Disassembler) Disassemble(code []byte) (string, error) {
	if len(code) == 0 {
		return "nul", nil
	}

	i := 0
	for i < len(code)-1 && isPrefix(code[i]) {
		i++
	}

	var modrm *byte
	if i+1 < len(code) {
		modrm = &code[i+1]
	}
	return d.lookupOpcode(code[i], modrm)
}
