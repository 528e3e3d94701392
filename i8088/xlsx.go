package i8088

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// cellColorMap reproduces the source exporter's column/value -> fill color
// table (excelify.py's COLOR_MAP), keyed by the §6.3 header name.
var cellColorMap = map[string]map[string]string{
	"SEG": {
		"DS": "D3FFA3", // pastel green
		"SS": "FFD1DC", // pastel pink
		"ES": "FFF5A2", // pastel yellow
	},
	"T": {
		"Ti": "D3D3D3", // light gray
		"Tw": "ADD8E6", // light blue
	},
	"QOP": {
		"F": "A2F9E6", // pastel mint
		"S": "FFF5A2", // pastel yellow
		"E": "FFD1DC", // pastel pink
	},
}

// WriteSpreadsheet renders cycles as a colorized spreadsheet: one sheet of
// cycle rows with per-column fill colors from cellColorMap, a thin top
// border on the row where an instruction boundary is recognized, and a
// second sheet listing I/O accesses with labels drawn from PortLabels.
func WriteSpreadsheet(path string, cycles []*Cycle, ports PortLabels) error {
	f := excelize.NewFile()
	defer f.Close()

	const mainSheet = "Cycles"
	f.SetSheetName(f.GetSheetName(0), mainSheet)

	for col, name := range cycleLogColumns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellStr(mainSheet, cell, name)
	}

	ioSheet := "IO"
	f.NewSheet(ioSheet)
	f.SetCellStr(ioSheet, "A1", "AL")
	f.SetCellStr(ioSheet, "B1", "DIR")
	f.SetCellStr(ioSheet, "C1", "DISASM")
	f.SetCellStr(ioSheet, "D1", "LABEL")
	ioRow := 2

	fillCache := map[string]int{}
	styleFor := func(hex string) (int, error) {
		if id, ok := fillCache[hex]; ok {
			return id, nil
		}
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{"#" + hex}, Pattern: 1},
		})
		if err != nil {
			return 0, err
		}
		fillCache[hex] = id
		return id, nil
	}

	borderTop, err := f.NewStyle(&excelize.Style{
		Border: []excelize.Border{{Type: "top", Color: "000000", Style: 1}},
	})
	if err != nil {
		return err
	}

	for r, c := range cycles {
		row := r + 2
		values := cycleLogRow(c)
		for col, name := range cycleLogColumns {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellStr(mainSheet, cell, values[col])

			if colorMap, ok := cellColorMap[name]; ok {
				if hex, ok := colorMap[values[col]]; ok {
					styleID, err := styleFor(hex)
					if err != nil {
						return err
					}
					f.SetCellStyle(mainSheet, cell, cell, styleID)
				}
			}
		}

		if c.InstrFinal != nil {
			first, _ := excelize.CoordinatesToCellName(1, row)
			last, _ := excelize.CoordinatesToCellName(len(cycleLogColumns), row)
			f.SetCellStyle(mainSheet, first, last, borderTop)
		}

		if c.Bus == BusIOR || c.Bus == BusIOW {
			isWrite := c.Bus == BusIOW
			var addr uint32
			if c.AddrLatch != nil {
				addr = *c.AddrLatch
			}
			dir := "R"
			if isWrite {
				dir = "W"
			}
			f.SetCellStr(ioSheet, fmt.Sprintf("A%d", ioRow), hexAddr(&addr))
			f.SetCellStr(ioSheet, fmt.Sprintf("B%d", ioRow), dir)
			f.SetCellStr(ioSheet, fmt.Sprintf("C%d", ioRow), c.Disasm)
			f.SetCellStr(ioSheet, fmt.Sprintf("D%d", ioRow), ports.Lookup(addr, isWrite))
			ioRow++
		}
	}

	f.SetActiveSheet(0)
	return f.SaveAs(path)
}
