package i8088

import "log"

// Cycle is the structured record emitted for one accepted clock edge (§3).
// Optional fields are nil/zero-length when absent.
type Cycle struct {
	N      int64
	Sample int64

	ALE       bool
	AddrLatch *uint32
	Seg       *Segment

	Bus      BusStatus
	BusLatch BusStatus
	T        TState
	Ready    bool

	Data *byte

	QOp      QueueOp
	QByte    *byte
	QueueLen int
	Queue    []byte

	InstrBytes []byte
	InstrFinal []byte
	Disasm     string

	Debug string

	Frame, RasterY, RasterX *int
}

// Decoder is the whole cycle-decoding state machine (§2, §5). It is
// strictly single-threaded: Feed mutates internal state and must not be
// called concurrently from multiple goroutines.
type Decoder struct {
	bus   busCycleTracker
	tst   tstateTracker
	queue queueTracker
	instr instructionAssembler
	dis   *Disassembler
	crtc  *CRTCTracker

	n int64

	Logger *log.Logger
}

// NewDecoder returns a Decoder with CRTC tracking disabled. Call
// EnableCRTC to turn it on for captures that include HS/VS.
func NewDecoder() *Decoder {
	return &Decoder{
		bus:   newBusCycleTracker(),
		tst:   newTStateTracker(),
		queue: newQueueTracker(),
		instr: newInstructionAssembler(),
		dis:   NewDisassembler(),
	}
}

// EnableCRTC turns on raster tracking with the given clock divisor.
func (d *Decoder) EnableCRTC(divisor int) {
	d.crtc = NewCRTCTracker(divisor)
}

func (d *Decoder) logf(format string, args ...interface{}) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
	}
}

// Feed advances the decoder by one accepted clock edge and returns the
// cycle record for it. Recoverable errors (§7) are folded into the
// returned cycle rather than returned as a Go error.
func (d *Decoder) Feed(pins PinState) *Cycle {
	cyc := &Cycle{N: d.n, Sample: pins.Sample}
	d.n++

	d.bus.decodeStatus(pins)

	// ale stays set on the edge after T1 until the T1->T2 transition below
	// clears it, so only the edge entering T1 is the ALE cycle proper.
	if d.bus.ale && d.tst.state != T1 {
		d.bus.latchAddress(pins)
		if d.bus.busStatusLatch == BusINTA {
			if res, ok := d.instr.startINTA(d.dis); ok {
				cyc.InstrFinal, cyc.Disasm = res.final, res.disasm
			}
		}
	} else if !d.bus.haveSeg {
		d.bus.decodeSeg(pins)
	}

	aleForAdvance := d.bus.ale
	next, dataValid, clearALE := d.tst.advance(aleForAdvance, pins.Ready)
	if clearALE {
		d.bus.clearALE()
	}
	if next == Ti {
		d.bus.busStatusLatch = BusPASV
	}
	cyc.T = next
	cyc.Ready = pins.Ready

	if dataValid {
		d.latchData(pins, cyc)
	}

	d.queue.decode(pins)

	var pending *byte
	if d.queue.prevQOp == QEmpty {
		d.queue.queue.clear()
		cyc.Debug = "q_e"
	}
	if d.queue.prevQOp == QFirst || d.queue.prevQOp == QSubsequent {
		b, err := d.queue.queue.pop()
		if err != nil {
			de := err.(*DecodeError)
			cyc.InstrFinal = append([]byte{}, d.instr.buffer...)
			cyc.Disasm = de.Kind.annotation()
			d.logf("queue pop: %v", err)
		} else {
			pending = &b
		}
	}

	if d.queue.curQOp == QFirst {
		if res, ok := d.instr.closeIfAny(d.dis); ok {
			cyc.InstrFinal, cyc.Disasm = res.final, res.disasm
		}
	}

	if pending != nil {
		d.instr.append(*pending, pins.Sample)
		cyc.QByte = pending
	}

	cyc.QOp = d.queue.curQOp
	cyc.QueueLen = d.queue.queue.len
	cyc.Queue = d.queue.queue.contents()
	cyc.InstrBytes = append([]byte{}, d.instr.buffer...)

	if d.crtc != nil && pins.HasCRTC {
		frame, scanline, rx := d.crtc.Advance(pins.HS, pins.VS)
		cyc.Frame, cyc.RasterY, cyc.RasterX = &frame, &scanline, &rx
	}

	cyc.ALE = d.bus.ale
	cyc.Bus = d.bus.busStatus
	cyc.BusLatch = d.bus.busStatusLatch
	if d.bus.segValid() {
		seg := d.bus.seg
		cyc.Seg = &seg
	}
	if d.bus.haveAddr {
		al := d.bus.addrLatch
		cyc.AddrLatch = &al
	}

	return cyc
}
