package i8088

// BusStatus is the decoded value of S0..S2.
type BusStatus int

const (
	BusINTA BusStatus = iota
	BusIOR
	BusIOW
	BusHALT
	BusCODE
	BusMEMR
	BusMEMW
	BusPASV
)

var busStatusTokens = [8]string{
	BusINTA: "INTA", BusIOR: "IOR", BusIOW: "IOW", BusHALT: "HALT",
	BusCODE: "CODE", BusMEMR: "MEMR", BusMEMW: "MEMW", BusPASV: "PASV",
}

func (b BusStatus) String() string {
	if b < 0 || int(b) >= len(busStatusTokens) {
		return "?"
	}
	return busStatusTokens[b]
}

// Segment is the decoded value of the A16/A17 alias pins (S3/S4) while they
// carry segment-select data rather than address bits.
type Segment int

const (
	SegES Segment = iota
	SegSS
	SegCS
	SegDS
)

var segTokens = [4]string{SegES: "ES", SegSS: "SS", SegCS: "CS", SegDS: "DS"}

func (s Segment) String() string {
	if s < 0 || int(s) >= len(segTokens) {
		return "?"
	}
	return segTokens[s]
}

// busCycleTracker holds the bus-status/ALE/address-latch/segment state that
// §4.2 derives from the current and previous pin snapshots. It is embedded
// in Decoder rather than exported on its own.
type busCycleTracker struct {
	busStatus      BusStatus
	busStatusLatch BusStatus
	ale            bool
	haveAddr       bool
	addrLatch      uint32
	addrLatchStart int64

	haveSeg bool
	seg     Segment
}

func newBusCycleTracker() busCycleTracker {
	return busCycleTracker{busStatus: BusPASV, busStatusLatch: BusPASV}
}

// decodeStatus updates bus_status/bus_status_latch/ale from the current
// pins. An m-cycle start is a PASV -> non-PASV transition.
func (bt *busCycleTracker) decodeStatus(pins PinState) {
	prev := bt.busStatus
	bt.busStatus = BusStatus(pins.busStatusBits())

	if bt.busStatus != BusPASV && prev == BusPASV {
		bt.ale = true
		bt.busStatusLatch = bt.busStatus
		bt.addrLatchStart = pins.Sample
		bt.haveSeg = false
	}
}

// clearALE is the T1->T2 transition's side effect (§4.3).
func (bt *busCycleTracker) clearALE() {
	bt.ale = false
}

// decodeSeg extracts the segment encoding from the A16/A17 alias pins while
// the address pins aren't carrying the latched address (§4.2). It is only
// meaningful once bt.busStatusLatch settles into CODE/MEMR/MEMW.
func (bt *busCycleTracker) decodeSeg(pins PinState) {
	bt.seg = Segment(pins.seg2Bits())
	bt.haveSeg = true
}

// segValid reports whether bt.seg should be surfaced on the cycle record.
func (bt *busCycleTracker) segValid() bool {
	switch bt.busStatusLatch {
	case BusCODE, BusMEMR, BusMEMW:
		return bt.haveSeg
	default:
		return false
	}
}

// latchAddress packs the 20-bit address from the current pins. Called only
// on the ALE cycle (§4.2: "addr_latch updates only on the ALE cycle").
func (bt *busCycleTracker) latchAddress(pins PinState) {
	bt.addrLatch = pins.AddrDataBus()
	bt.haveAddr = true
}
