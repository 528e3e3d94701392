package i8088

import (
	"encoding/csv"
	"fmt"
	"io"
)

// cycleLogColumns is the exact column order required by §6.3.
var cycleLogColumns = []string{
	"N", "ALE", "AL", "SEG", "BUSL", "READY", "T", "D", "QOP", "QB",
	"INSTF", "DISASM", "QL", "Q0", "Q1", "Q2", "Q3", "FRAME", "R_Y", "R_X",
}

// WriteCycleLog renders cycles as the §6.3 CSV format: one row per cycle,
// hex fields uppercase and zero-padded, absent values as empty strings.
func WriteCycleLog(w io.Writer, cycles []*Cycle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cycleLogColumns); err != nil {
		return err
	}
	for _, c := range cycles {
		if err := cw.Write(cycleLogRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func cycleLogRow(c *Cycle) []string {
	q := [4]string{}
	for i := 0; i < 4 && i < len(c.Queue); i++ {
		q[i] = hexByte(c.Queue[i])
	}

	return []string{
		fmt.Sprintf("%d", c.N),
		boolFlag(c.ALE),
		hexAddr(c.AddrLatch),
		segString(c.Seg),
		c.BusLatch.String(),
		boolFlag(c.Ready),
		c.T.String(),
		hexBytePtr(c.Data),
		c.QOp.String(),
		hexBytePtr(c.QByte),
		hexBytes(c.InstrFinal),
		c.Disasm,
		fmt.Sprintf("%d", c.QueueLen),
		q[0], q[1], q[2], q[3],
		intPtr(c.Frame),
		intPtr(c.RasterY),
		intPtr(c.RasterX),
	}
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func hexAddr(v *uint32) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%05X", *v)
}

func hexByte(b byte) string { return fmt.Sprintf("%02X", b) }

func hexBytePtr(b *byte) string {
	if b == nil {
		return ""
	}
	return hexByte(*b)
}

func hexBytes(bs []byte) string {
	if bs == nil {
		return ""
	}
	s := ""
	for _, b := range bs {
		s += hexByte(b)
	}
	return s
}

func segString(s *Segment) string {
	if s == nil {
		return ""
	}
	return s.String()
}

func intPtr(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}
