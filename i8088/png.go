package i8088

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// tracePalette mirrors the source utility's indexed PALETTE (csv_to_img.py):
// black, white, red, magenta, cyan, yellow, green, blue, gray.
var tracePalette = []color.Color{
	color.RGBA{0, 0, 0, 255},
	color.RGBA{255, 255, 255, 255},
	color.RGBA{255, 0, 0, 255},
	color.RGBA{255, 0, 255, 255},
	color.RGBA{0, 255, 255, 255},
	color.RGBA{255, 255, 0, 255},
	color.RGBA{0, 170, 0, 255},
	color.RGBA{0, 0, 170, 255},
	color.RGBA{50, 50, 50, 255},
}

func busColor(bus BusStatus) color.Color {
	switch bus {
	case BusINTA:
		return tracePalette[2] // red
	case BusCODE:
		return tracePalette[6] // green
	case BusMEMR, BusMEMW:
		return tracePalette[7] // blue
	case BusIOR, BusIOW:
		return tracePalette[5] // yellow
	case BusHALT:
		return tracePalette[3] // magenta
	default:
		return tracePalette[8] // gray, PASV
	}
}

// WriteTracePNG renders one pixel row per cycle: a colored cell per T-state
// column (Ti..T4, left to right) on a trace strip colored by bus_latch, a
// static snapshot analog of the source's scanline-raster PNG export.
func WriteTracePNG(w io.Writer, cycles []*Cycle) error {
	const cols = int(T4) + 1
	img := image.NewRGBA(image.Rect(0, 0, cols, len(cycles)))

	for y, c := range cycles {
		col := int(c.T)
		for x := 0; x < cols; x++ {
			px := tracePalette[0]
			if x == col {
				px = busColor(c.BusLatch)
			}
			img.Set(x, y, px)
		}
	}

	return png.Encode(w, img)
}
