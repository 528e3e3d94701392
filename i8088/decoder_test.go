package i8088

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step is one edge of a hand-built test trace: the bus status and queue op
// sourced straight from the pins, plus an address/data payload and the
// READY level for that edge.
type step struct {
	bus   BusStatus
	qop   QueueOp
	value uint32 // address (ALE cycles) or low-byte data (non-ALE cycles)
	ready bool
}

func runSteps(t *testing.T, d *Decoder, steps []step) []*Cycle {
	t.Helper()
	cycles := make([]*Cycle, 0, len(steps))
	for i, s := range steps {
		pins := testPins(s.bus, s.qop, s.value, s.ready, int64(i))
		cycles = append(cycles, d.Feed(pins))
	}
	return cycles
}

// codeFetchSteps produces one complete CODE bus cycle (T1..T4, no wait
// states) fetching the given byte at the given address, with qop Idle
// throughout; the caller appends queue-op steps separately since QS timing
// is independent of the bus unit's T-states.
func codeFetchSteps(addr uint32, data byte) []step {
	return []step{
		{bus: BusCODE, qop: QIdle, value: addr, ready: true}, // T1, ALE, address latched
		{bus: BusCODE, qop: QIdle, value: uint32(data), ready: true}, // T2
		{bus: BusCODE, qop: QIdle, value: uint32(data), ready: true}, // T3, data_valid, pushes into queue
		{bus: BusCODE, qop: QIdle, value: uint32(data), ready: true}, // T4
		{bus: BusPASV, qop: QIdle, value: uint32(data), ready: true}, // Ti
	}
}

func TestALEAssertedOnlyAtT1(t *testing.T) {
	d := NewDecoder()
	cycles := runSteps(t, d, codeFetchSteps(0xF0000, 0x90))

	aleCount := 0
	for _, c := range cycles {
		if c.ALE {
			aleCount++
			assert.Equal(t, T1, c.T, "ALE must coincide with T1")
		}
	}
	assert.Equal(t, 1, aleCount, "ALE asserted on exactly one cycle per bus cycle")
}

func TestAddrLatchConstantBetweenALEs(t *testing.T) {
	d := NewDecoder()
	cycles := runSteps(t, d, codeFetchSteps(0xF0000, 0x90))

	require.NotNil(t, cycles[0].AddrLatch)
	want := *cycles[0].AddrLatch
	for _, c := range cycles[1:] {
		require.NotNil(t, c.AddrLatch)
		assert.Equal(t, want, *c.AddrLatch)
	}
}

func TestTiImpliesPassiveLatchAndNoData(t *testing.T) {
	d := NewDecoder()
	cycles := runSteps(t, d, codeFetchSteps(0xF0000, 0x90))

	last := cycles[len(cycles)-1]
	assert.Equal(t, Ti, last.T)
	assert.Equal(t, BusPASV, last.BusLatch)
	assert.Nil(t, last.Data)
}

func TestQueueLenMatchesSlotCount(t *testing.T) {
	d := NewDecoder()
	cycles := runSteps(t, d, codeFetchSteps(0xF0000, 0x90))

	for _, c := range cycles {
		assert.Len(t, c.Queue, c.QueueLen)
		assert.GreaterOrEqual(t, c.QueueLen, 0)
		assert.LessOrEqual(t, c.QueueLen, 4)
	}
}

func TestDecoderIsDeterministic(t *testing.T) {
	steps := append(codeFetchSteps(0xF0000, 0x90), codeFetchSteps(0xF0001, 0xA4)...)

	d1 := NewDecoder()
	c1 := runSteps(t, d1, steps)
	d2 := NewDecoder()
	c2 := runSteps(t, d2, steps)

	require.Equal(t, len(c1), len(c2))
	for i := range c1 {
		assert.Equal(t, c1[i], c2[i], "cycle %d must match across runs", i)
	}
}

// TestWaitState exercises S-D: READY=0 at T3 inserts a Tw before T4.
func TestWaitState(t *testing.T) {
	d := NewDecoder()
	steps := []step{
		{bus: BusMEMR, qop: QIdle, value: 0x12340, ready: true}, // T1
		{bus: BusMEMR, qop: QIdle, value: 0, ready: true},       // T2
		{bus: BusMEMR, qop: QIdle, value: 0, ready: false},      // T3, ready low: no data yet
		{bus: BusMEMR, qop: QIdle, value: 0xAA, ready: true},    // Tw, ready rises: data latches here
		{bus: BusMEMR, qop: QIdle, value: 0xAA, ready: true},    // T4
	}
	cycles := runSteps(t, d, steps)

	wantStates := []TState{T1, T2, T3, Tw, T4}
	for i, want := range wantStates {
		assert.Equal(t, want, cycles[i].T, "cycle %d", i)
	}
	assert.Nil(t, cycles[2].Data, "no data while still waiting")
	require.NotNil(t, cycles[3].Data, "data latches on the wait cycle READY rises")
	assert.Equal(t, byte(0xAA), *cycles[3].Data)
}

// TestQueueEmptyFlush exercises S-E: an Empty qop drains the queue.
func TestQueueEmptyFlush(t *testing.T) {
	d := NewDecoder()
	steps := append(codeFetchSteps(0xF0000, 0x90), codeFetchSteps(0xF0001, 0xA4)...)
	steps = append(steps, step{bus: BusPASV, qop: QEmpty, ready: true})
	cycles := runSteps(t, d, steps)

	require.Equal(t, 2, cycles[len(cycles)-2].QueueLen, "two bytes queued before the flush")

	after := d.Feed(testPins(BusPASV, QIdle, 0, true, int64(len(cycles))))
	assert.Equal(t, 0, after.QueueLen)
	assert.Empty(t, after.Queue)
}

// TestInterruptAcknowledge exercises S-F: two INTA cycles latch a vector,
// closed out by the following First.
func TestInterruptAcknowledge(t *testing.T) {
	d := NewDecoder()

	// Something in flight before the interrupt lands.
	steps := codeFetchSteps(0xF0000, 0xB4)
	steps = append(steps,
		step{bus: BusINTA, qop: QIdle, value: 0xFF, ready: true}, // first INTA cycle, T1
		step{bus: BusINTA, qop: QIdle, value: 0xFF, ready: true}, // T2
		step{bus: BusINTA, qop: QIdle, value: 0xFF, ready: true}, // T3, data_valid, irrelevant byte
		step{bus: BusINTA, qop: QIdle, value: 0xFF, ready: true}, // T4
		step{bus: BusPASV, qop: QIdle, value: 0xFF, ready: true}, // Ti

		step{bus: BusINTA, qop: QIdle, value: 0x08, ready: true}, // second INTA cycle, T1 (new ALE)
		step{bus: BusINTA, qop: QIdle, value: 0x08, ready: true}, // T2
		step{bus: BusINTA, qop: QIdle, value: 0x08, ready: true}, // T3, data_valid == vector 0x08
		step{bus: BusINTA, qop: QIdle, value: 0x08, ready: true}, // T4
		step{bus: BusPASV, qop: QIdle, value: 0x08, ready: true}, // Ti
	)
	runSteps(t, d, steps)

	assert.Equal(t, 2, d.instr.inta)
	assert.Equal(t, byte(0x08), d.instr.iv)

	closing := d.Feed(testPins(BusPASV, QFirst, 0, true, 99))
	assert.Equal(t, "INT:08", closing.Disasm)
	assert.Equal(t, 0, d.instr.inta, "INTA counter resets once the pseudo-instruction closes")
}
