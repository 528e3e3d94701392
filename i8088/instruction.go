package i8088

import "fmt"

const instructionBufferCap = 8

// prefixBytes is the fixed 8088 prefix set (§3).
var prefixBytes = map[byte]bool{
	0x26: true, 0x2E: true, 0x36: true, 0x3E: true,
	0xF0: true, 0xF1: true, 0xF2: true, 0xF3: true,
}

func isPrefix(b byte) bool { return prefixBytes[b] }

// allPrefixes reports whether every byte in buf is a prefix byte.
func allPrefixes(buf []byte) bool {
	for _, b := range buf {
		if !isPrefix(b) {
			return false
		}
	}
	return true
}

// instructionAssembler accumulates popped queue bytes into instructions and
// tracks the interrupt-acknowledge sequence (§4.6).
type instructionAssembler struct {
	buffer      []byte
	startSample int64

	inta int  // 0, 1, or 2
	iv   byte // latched interrupt vector
}

func newInstructionAssembler() instructionAssembler {
	return instructionAssembler{buffer: make([]byte, 0, instructionBufferCap)}
}

// append adds a popped byte to the in-progress instruction buffer.
func (ia *instructionAssembler) append(b byte, sample int64) {
	if len(ia.buffer) == 0 {
		ia.startSample = sample
	}
	ia.buffer = append(ia.buffer, b)
	if len(ia.buffer) > instructionBufferCap {
		ia.buffer = ia.buffer[:instructionBufferCap]
	}
}

// closeResult is what closing an in-progress instruction produces for the
// cycle record.
type closeResult struct {
	final  []byte
	disasm string
}

// closeIfAny closes the in-progress buffer if it holds a real instruction
// (non-empty and not entirely prefix bytes), per §3's close rule, or, while
// an interrupt acknowledge is pending (inta != 0), closes the "INT:xx"
// pseudo-instruction whatever the buffer holds. Returns ok=false when there
// was nothing to close.
func (ia *instructionAssembler) closeIfAny(dis *Disassembler) (closeResult, bool) {
	if ia.inta == 0 && (len(ia.buffer) == 0 || allPrefixes(ia.buffer)) {
		return closeResult{}, false
	}

	final := make([]byte, len(ia.buffer))
	copy(final, ia.buffer)

	var mnemonic string
	if ia.inta > 0 {
		mnemonic = fmt.Sprintf("INT:%02X", ia.iv)
	} else {
		name, err := dis.Disassemble(final)
		if err != nil {
			if de, ok := err.(*DecodeError); ok {
				mnemonic = de.Kind.annotation()
			} else {
				mnemonic = "inval"
			}
		} else {
			mnemonic = fmt.Sprintf("%02X:%s", final[0], name)
		}
	}

	ia.buffer = ia.buffer[:0]
	ia.inta = 0
	return closeResult{final: final, disasm: mnemonic}, true
}

// startINTA is invoked when a new bus cycle begins with bus_status_latch ==
// INTA. It closes whatever instruction was in flight before the interrupt
// acknowledge pair begins, then advances the INTA counter (§4.6).
func (ia *instructionAssembler) startINTA(dis *Disassembler) (closeResult, bool) {
	if ia.inta == 0 {
		res, ok := ia.closeIfAny(dis)
		ia.inta = 1
		return res, ok
	}
	if ia.inta == 1 {
		ia.inta = 2
	}
	return closeResult{}, false
}

// recordVector latches the interrupt vector byte read on the second INTA
// cycle's data-valid (§4.4, §4.6).
func (ia *instructionAssembler) recordVector(b byte) {
	if ia.inta == 2 {
		ia.iv = b
	}
}
