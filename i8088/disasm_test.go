package i8088

import "testing"

func TestDisassembleDirectMnemonic(t *testing.T) {
	d := NewDisassembler()
	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0x90}, "NOP"},
		{[]byte{0x00}, "ADD"},
		{[]byte{0xA4}, "MOVSB"},
		{[]byte{0xCC}, "INT"},
	}
	for _, tt := range tests {
		got, err := d.Disassemble(tt.code)
		if err != nil {
			t.Fatalf("Disassemble(% X): unexpected error %v", tt.code, err)
		}
		if got != tt.want {
			t.Errorf("Disassemble(% X) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestDisassembleEmptyCode(t *testing.T) {
	d := NewDisassembler()
	got, err := d.Disassemble(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "nul" {
		t.Errorf("Disassemble(nil) = %q, want \"nul\"", got)
	}
}

// TestDisassembleGroupOpcode exercises S-C: 0xFF /2 selects CALL from GRP5.
func TestDisassembleGroupOpcode(t *testing.T) {
	d := NewDisassembler()
	modrm := byte(0b11_010_000) // reg field = 010 = 2 -> CALL
	got, err := d.Disassemble([]byte{0xFF, modrm})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "CALL" {
		t.Errorf("Disassemble(FF %02X) = %q, want CALL", modrm, got)
	}
}

func TestDisassembleGroupOpcodeMissingModRM(t *testing.T) {
	d := NewDisassembler()
	_, err := d.Disassemble([]byte{0xFF})
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected *DecodeError, got %T (%v)", err, err)
	}
	if de.Kind != MissingModRM {
		t.Errorf("Kind = %v, want MissingModRM", de.Kind)
	}
}

// TestDisassembleSkipsPrefix exercises S-B: a prefix byte before the real
// opcode is skipped when choosing which mnemonic and ModR/M to use.
func TestDisassembleSkipsPrefix(t *testing.T) {
	d := NewDisassembler()
	got, err := d.Disassemble([]byte{0xF3, 0xA4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "MOVSB" {
		t.Errorf("Disassemble(F3 A4) = %q, want MOVSB", got)
	}
}

func TestGroupMnemonicsShapeEveryGroup(t *testing.T) {
	if len(groupMnemonics) != 6 {
		t.Fatalf("expected 6 group tables, got %d", len(groupMnemonics))
	}
	for i, g := range groupMnemonics {
		if len(g) != 8 {
			t.Errorf("group %d has %d entries, want 8", i, len(g))
		}
	}
}
