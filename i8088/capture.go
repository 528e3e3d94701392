package i8088

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// captureColumns is the fixed column order of §6.2's CSV format, excluding
// the optional trailing columns handled separately.
var captureColumns = []string{
	"Time(s)",
	"AD0", "AD1", "AD2", "AD3", "AD4", "AD5", "AD6", "AD7",
	"A8", "A9", "A10", "A11", "A12", "A13", "A14", "A15", "A16", "A17", "A18", "A19",
	"ALE", "S0", "S1", "S2", "QS0", "QS1", "READY",
}

// optionalColumns are recognized if present in the header, in any trailing
// position; their absence changes no required behavior.
var optionalColumns = []string{"HS", "VS", "DR0", "DEN", "INTR", "CLK0"}

// CaptureRow is one decoded row of the on-disk CSV before edge filtering.
type CaptureRow struct {
	Time float64
	Pins PinState
	CLK  *bool // nil when the capture carries no CLK0 column
}

// ReadCapture parses a §6.2 CSV capture into time-ordered rows. Comment
// lines (leading ';') are skipped. Duplicate timestamps are preserved and
// stable-sorted by source order, per §6.1.
func ReadCapture(r io.Reader) ([]CaptureRow, error) {
	lines, err := stripComments(r)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(strings.NewReader(lines))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, &DecodeError{Kind: CaptureMalformed, Msg: fmt.Sprintf("reading header: %v", err)}
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []CaptureRow
	rowNum := int64(1)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &DecodeError{Kind: CaptureMalformed, Row: rowNum, Msg: err.Error()}
		}
		row, err := parseRow(rec, idx, rowNum)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		rowNum++
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Time < rows[j].Time })
	return rows, nil
}

func stripComments(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ";") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, col := range captureColumns {
		if _, ok := idx[col]; !ok {
			return nil, &DecodeError{Kind: CaptureMalformed, Msg: fmt.Sprintf("missing required column %q", col)}
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int, rowNum int64) (CaptureRow, error) {
	get := func(col string) (string, bool) {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}

	timeStr, _ := get("Time(s)")
	t, err := strconv.ParseFloat(timeStr, 64)
	if err != nil {
		return CaptureRow{}, &DecodeError{Kind: CaptureMalformed, Row: rowNum, Msg: fmt.Sprintf("bad Time(s) value %q", timeStr)}
	}

	bit := func(col string) (bool, error) {
		s, ok := get(col)
		if !ok {
			return false, &DecodeError{Kind: CaptureMalformed, Row: rowNum, Msg: fmt.Sprintf("missing column %q", col)}
		}
		switch s {
		case "0":
			return false, nil
		case "1":
			return true, nil
		default:
			return false, &DecodeError{Kind: CaptureMalformed, Row: rowNum, Msg: fmt.Sprintf("column %q has non-0/1 value %q", col, s)}
		}
	}

	var pins PinState
	var ferr error
	setb := func(dst *bool, col string) {
		if ferr != nil {
			return
		}
		v, err := bit(col)
		if err != nil {
			ferr = err
			return
		}
		*dst = v
	}

	for i := 0; i < 8; i++ {
		setb(&pins.AD[i], fmt.Sprintf("AD%d", i))
	}
	for i := 0; i < 12; i++ {
		setb(&pins.A[i], fmt.Sprintf("A%d", i+8))
	}
	setb(&pins.ALE, "ALE")
	setb(&pins.S[0], "S0")
	setb(&pins.S[1], "S1")
	setb(&pins.S[2], "S2")
	setb(&pins.QS[0], "QS0")
	setb(&pins.QS[1], "QS1")
	setb(&pins.Ready, "READY")
	if ferr != nil {
		return CaptureRow{}, ferr
	}

	var clk *bool
	if _, ok := get("CLK0"); ok {
		v, err := bit("CLK0")
		if err != nil {
			return CaptureRow{}, err
		}
		clk = &v
	}

	if _, ok := get("HS"); ok {
		pins.HasCRTC = true
		if err := setOptionalBit(&pins.HS, "HS", get, rowNum); err != nil {
			return CaptureRow{}, err
		}
		if err := setOptionalBit(&pins.VS, "VS", get, rowNum); err != nil {
			return CaptureRow{}, err
		}
	}
	if _, ok := get("DR0"); ok {
		pins.HasAux = true
		if err := setOptionalBit(&pins.DR0, "DR0", get, rowNum); err != nil {
			return CaptureRow{}, err
		}
		if err := setOptionalBit(&pins.DEN, "DEN", get, rowNum); err != nil {
			return CaptureRow{}, err
		}
		if err := setOptionalBit(&pins.INTR, "INTR", get, rowNum); err != nil {
			return CaptureRow{}, err
		}
	}

	return CaptureRow{Time: t, Pins: pins, CLK: clk}, nil
}

func setOptionalBit(dst *bool, col string, get func(string) (string, bool), rowNum int64) error {
	s, _ := get(col)
	switch s {
	case "0":
		*dst = false
	case "1":
		*dst = true
	default:
		return &DecodeError{Kind: CaptureMalformed, Row: rowNum, Msg: fmt.Sprintf("column %q has non-0/1 value %q", col, s)}
	}
	return nil
}

// FilterEdges reduces raw capture rows to the accepted rising clock edges
// (§4.1). When the capture carries no CLK0 column, every row is already one
// accepted edge (the capture utility that produced it has already done the
// de-duplication described in §6.1) and is passed through unchanged.
func FilterEdges(rows []CaptureRow) []PinState {
	if len(rows) == 0 {
		return nil
	}
	if rows[0].CLK == nil {
		out := make([]PinState, len(rows))
		for i, r := range rows {
			p := r.Pins
			p.Sample = int64(i)
			out[i] = p
		}
		return out
	}

	minGap := nominalMinEdgeGap(rows)

	var out []PinState
	prevHigh := false
	sampleN := int64(0)
	var lastAccepted float64
	haveLast := false
	for _, r := range rows {
		high := *r.CLK
		if high && !prevHigh {
			if haveLast && r.Time-lastAccepted < minGap {
				prevHigh = high
				continue // spurious transition, shorter than half a nominal half-cycle
			}
			p := r.Pins
			p.Sample = sampleN
			out = append(out, p)
			sampleN++
			lastAccepted = r.Time
			haveLast = true
		}
		prevHigh = high
	}
	return out
}

// nominalMinEdgeGap estimates the minimum acceptable spacing between
// accepted rising edges, per §4.1 ("less than half of the expected
// half-cycle period"). The nominal full-cycle period is taken as the
// median spacing between raw (unfiltered) rising transitions, which is
// robust to the occasional short glitch it's meant to reject; the
// threshold is then a quarter of that period (half of the half-cycle).
func nominalMinEdgeGap(rows []CaptureRow) float64 {
	var rawTimes []float64
	prevHigh := false
	for _, r := range rows {
		high := *r.CLK
		if high && !prevHigh {
			rawTimes = append(rawTimes, r.Time)
		}
		prevHigh = high
	}
	if len(rawTimes) < 2 {
		return 0
	}

	deltas := make([]float64, 0, len(rawTimes)-1)
	for i := 1; i < len(rawTimes); i++ {
		deltas = append(deltas, rawTimes[i]-rawTimes[i-1])
	}
	sort.Float64s(deltas)
	period := deltas[len(deltas)/2]
	return period / 4
}
