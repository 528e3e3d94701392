package i8088

// bitsLE unpacks n bits of v, least-significant first, for building test
// PinState values from plain integers.
func bitsLE(v uint32, n int) []bool {
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = v&(1<<uint(i)) != 0
	}
	return out
}

// testPins builds one PinState. addr is the 20-bit multiplexed address/data
// value (only meaningful on an ALE cycle; otherwise pass the data byte in
// the low 8 bits and leave the rest 0). bus/qop select S0-2/QS0-1 directly.
func testPins(bus BusStatus, qop QueueOp, addr uint32, ready bool, sample int64) PinState {
	var p PinState
	copy(p.AD[:], bitsLE(addr, 8))
	copy(p.A[:], bitsLE(addr>>8, 12))
	copy(p.S[:], bitsLE(uint32(bus), 3))
	copy(p.QS[:], bitsLE(uint32(qop), 2))
	p.Ready = ready
	p.Sample = sample
	return p
}
