package i8088

// CRTCTracker maintains the Motorola 6845 raster counters (§4.8) from the
// HS/VS sync pins, when a capture includes them. HS and VS are tracked as
// active-high signals that trigger on the 1->0 (falling) transition,
// following the original decoder's polarity rather than the generic
// "active-low" phrasing in spec prose (see DESIGN.md).
type CRTCTracker struct {
	Divisor int

	frame    int
	scanline int
	rasterX  int

	hsActive bool
	vsActive bool
}

// defaultClockDivisor is the typical CGA/MDA pixel-per-CPU-clock ratio.
const defaultClockDivisor = 3

// NewCRTCTracker returns a tracker using the given clock divisor, or the
// default of 3 when divisor <= 0.
func NewCRTCTracker(divisor int) *CRTCTracker {
	if divisor <= 0 {
		divisor = defaultClockDivisor
	}
	return &CRTCTracker{Divisor: divisor}
}

// Advance applies one cycle of HS/VS observation and returns the raster
// position to attach to this cycle's record.
func (c *CRTCTracker) Advance(hs, vs bool) (frame, scanline, rasterX int) {
	if !vs {
		if c.vsActive {
			c.vsActive = false
			c.frame++
			c.scanline = 0
		}
	} else {
		c.vsActive = true
	}

	if !hs {
		if c.hsActive {
			c.hsActive = false
			c.scanline++
			c.rasterX = 0
		}
	} else {
		c.hsActive = true
	}

	c.rasterX += c.Divisor

	return c.frame, c.scanline, c.rasterX
}
