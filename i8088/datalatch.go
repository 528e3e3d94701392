package i8088

// latchData handles the data-bus sample on a data_valid cycle (§4.4): a
// CODE-fetch byte pushes into the prefetch queue, an INTA byte records the
// interrupt vector on the second acknowledge of the pair. Called only when
// the T-state machine has just reported dataValid for this edge.
func (d *Decoder) latchData(pins PinState, cyc *Cycle) {
	data := pins.DataByte()
	cyc.Data = &data

	switch d.bus.busStatusLatch {
	case BusCODE:
		if err := d.queue.queue.push(data); err != nil {
			de := err.(*DecodeError)
			cyc.InstrFinal = append([]byte{}, d.instr.buffer...)
			cyc.Disasm = de.Kind.annotation()
			d.logf("queue push: %v", err)
		}
	case BusINTA:
		d.instr.recordVector(data)
	}
}
