package i8088

import "testing"

func TestInstructionAssemblerClosesOnNonPrefixBuffer(t *testing.T) {
	ia := newInstructionAssembler()
	ia.append(0x90, 0)

	dis := NewDisassembler()
	res, ok := ia.closeIfAny(dis)
	if !ok {
		t.Fatal("expected a close")
	}
	if len(res.final) != 1 || res.final[0] != 0x90 {
		t.Errorf("final = % X, want [90]", res.final)
	}
	if res.disasm != "90:NOP" {
		t.Errorf("disasm = %q, want \"90:NOP\"", res.disasm)
	}
	if len(ia.buffer) != 0 {
		t.Errorf("buffer not cleared after close: % X", ia.buffer)
	}
}

func TestInstructionAssemblerDoesNotCloseEmptyBuffer(t *testing.T) {
	ia := newInstructionAssembler()
	dis := NewDisassembler()
	_, ok := ia.closeIfAny(dis)
	if ok {
		t.Fatal("expected no close on an empty buffer")
	}
}

func TestInstructionAssemblerDoesNotCloseAllPrefixBuffer(t *testing.T) {
	ia := newInstructionAssembler()
	ia.append(0xF3, 0)
	dis := NewDisassembler()
	_, ok := ia.closeIfAny(dis)
	if ok {
		t.Fatal("a buffer of only prefix bytes must not close")
	}
}

func TestInstructionAssemblerPrefixedInstruction(t *testing.T) {
	ia := newInstructionAssembler()
	ia.append(0xF3, 0)
	ia.append(0xA4, 1)

	dis := NewDisassembler()
	res, ok := ia.closeIfAny(dis)
	if !ok {
		t.Fatal("expected a close")
	}
	if res.disasm != "F3:MOVSB" {
		t.Errorf("disasm = %q, want \"F3:MOVSB\"", res.disasm)
	}
}

func TestInstructionAssemblerInterruptAcknowledge(t *testing.T) {
	ia := newInstructionAssembler()
	dis := NewDisassembler()

	res, ok := ia.startINTA(dis)
	if ok {
		t.Fatalf("first INTA start closed something unexpectedly: %+v", res)
	}
	if ia.inta != 1 {
		t.Fatalf("inta = %d, want 1", ia.inta)
	}

	if _, ok := ia.startINTA(dis); ok {
		t.Fatal("second INTA start must not itself close anything")
	}
	if ia.inta != 2 {
		t.Fatalf("inta = %d, want 2", ia.inta)
	}

	ia.recordVector(0x08)
	if ia.iv != 0x08 {
		t.Fatalf("iv = %02X, want 08", ia.iv)
	}

	closed, ok := ia.closeIfAny(dis)
	if !ok {
		t.Fatal("expected the acknowledge pseudo-instruction to close")
	}
	if closed.disasm != "INT:08" {
		t.Errorf("disasm = %q, want \"INT:08\"", closed.disasm)
	}
	if ia.inta != 0 {
		t.Errorf("inta = %d, want reset to 0", ia.inta)
	}
}

func TestInstructionBufferCapsAtEightBytes(t *testing.T) {
	ia := newInstructionAssembler()
	for i := 0; i < 12; i++ {
		ia.append(byte(i), int64(i))
	}
	if len(ia.buffer) != instructionBufferCap {
		t.Errorf("buffer len = %d, want %d", len(ia.buffer), instructionBufferCap)
	}
}
