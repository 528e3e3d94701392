package i8088

import "testing"

func TestCRTCTrackerScanlineOnHSFallingEdge(t *testing.T) {
	c := NewCRTCTracker(3)

	c.Advance(true, true) // HS high, VS high: no edge yet
	_, scanline, rx := c.Advance(false, true) // HS falls
	if scanline != 1 {
		t.Errorf("scanline = %d, want 1 after one HS falling edge", scanline)
	}
	if rx != 3 {
		t.Errorf("r_x = %d, want 3 (reset to 0, then +divisor)", rx)
	}
}

func TestCRTCTrackerFrameOnVSFallingEdge(t *testing.T) {
	c := NewCRTCTracker(3)

	c.Advance(true, true)
	frame, scanline, _ := c.Advance(true, false) // VS falls
	if frame != 1 {
		t.Errorf("frame = %d, want 1 after one VS falling edge", frame)
	}
	if scanline != 0 {
		t.Errorf("scanline = %d, want reset to 0 on a new frame", scanline)
	}
}

func TestCRTCTrackerRasterXAdvancesEveryCycle(t *testing.T) {
	c := NewCRTCTracker(3)
	_, _, rx1 := c.Advance(true, true)
	_, _, rx2 := c.Advance(true, true)
	if rx2-rx1 != 3 {
		t.Errorf("r_x advanced by %d, want divisor 3", rx2-rx1)
	}
}

func TestNewCRTCTrackerDefaultsDivisor(t *testing.T) {
	c := NewCRTCTracker(0)
	if c.Divisor != defaultClockDivisor {
		t.Errorf("Divisor = %d, want default %d", c.Divisor, defaultClockDivisor)
	}
}
