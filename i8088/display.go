package i8088

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// RasterView is a live raster-position viewer: one pixel per cycle, placed
// at the CRTC's (r_x, r_y) and colored by bus_latch, with a text overlay
// showing the current instruction and prefetch-queue state. Adapted from
// the emulator's screen viewer for the CRTC raster domain.
type RasterView struct {
	frameRgba *image.RGBA
	debugRgba *image.RGBA

	window      *pixelgl.Window
	frameMatrix pixel.Matrix
	debugMatrix pixel.Matrix

	debugAtlas    *text.Atlas
	disasmText    *text.Text
	queueText     *text.Text
	positionText  *text.Text
}

const (
	rasterResW    float64 = 912 // typical CGA/MDA line length in CPU clocks * divisor
	rasterResH    float64 = 262
	rasterScale   float64 = 1.5
	rasterW       float64 = rasterResW * rasterScale
	rasterH       float64 = rasterResH * rasterScale
	rasterPosX    float64 = 500
	rasterPosY    float64 = 300
	rasterDebugW  float64 = 360
)

// NewRasterView opens a window and prepares the raster framebuffer and
// debug text panels.
func NewRasterView() *RasterView {
	frameRgba := image.NewRGBA(image.Rect(0, 0, int(rasterResW), int(rasterResH)))
	debugRgba := image.NewRGBA(image.Rect(0, 0, int(rasterDebugW), int(rasterH)))

	config := pixelgl.WindowConfig{
		Title:    "8088 bus cycle viewer",
		Bounds:   pixel.R(0, 0, rasterW+rasterDebugW, rasterH),
		Position: pixel.V(rasterPosX, rasterPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("unable to create raster viewer window\n", err)
	}

	pic := pixel.PictureDataFromImage(frameRgba)
	frameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(rasterScale))
	frameMatrix = frameMatrix.Scaled(pic.Bounds().Center().Scaled(rasterScale), rasterScale)

	pic = pixel.PictureDataFromImage(debugRgba)
	debugMatrix := pixel.IM.Moved(pic.Bounds().Center().Add(pixel.V(rasterW, 0)))

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	disasmText := text.New(pixel.V(rasterW+8, rasterH-40), atlas)
	queueText := text.New(pixel.V(rasterW+8, rasterH-80), atlas)
	positionText := text.New(pixel.V(rasterW+8, rasterH-120), atlas)

	return &RasterView{
		frameRgba:    frameRgba,
		debugRgba:    debugRgba,
		window:       window,
		frameMatrix:  frameMatrix,
		debugMatrix:  debugMatrix,
		debugAtlas:   atlas,
		disasmText:   disasmText,
		queueText:    queueText,
		positionText: positionText,
	}
}

// Closed reports whether the user closed the viewer window.
func (v *RasterView) Closed() bool { return v.window.Closed() }

// Feed draws one cycle's raster pixel and refreshes the debug overlay.
func (v *RasterView) Feed(c *Cycle) {
	if c.RasterX != nil && c.RasterY != nil {
		x, y := *c.RasterX, *c.RasterY
		bounds := v.frameRgba.Bounds()
		if x >= 0 && x < bounds.Dx() && y >= 0 && y < bounds.Dy() {
			v.frameRgba.SetRGBA(x, y, toRGBA(busColor(c.BusLatch)))
		}
	}

	if c.Disasm != "" {
		v.disasmText.Clear()
		fmt.Fprintf(v.disasmText, "%s", c.Disasm)
	}

	v.queueText.Clear()
	fmt.Fprintf(v.queueText, "Q(%d): % X", c.QueueLen, c.Queue)

	v.positionText.Clear()
	if c.Frame != nil {
		fmt.Fprintf(v.positionText, "frame %d  y %d  x %d", *c.Frame, *c.RasterY, *c.RasterX)
	}
}

// Render draws the current framebuffer and overlay to the window.
func (v *RasterView) Render() {
	v.window.Clear(colornames.Black)

	sprite := pixel.NewSprite(pixel.PictureDataFromImage(v.frameRgba), pixel.PictureDataFromImage(v.frameRgba).Bounds())
	sprite.Draw(v.window, v.frameMatrix)

	debugSprite := pixel.NewSprite(pixel.PictureDataFromImage(v.debugRgba), pixel.PictureDataFromImage(v.debugRgba).Bounds())
	debugSprite.Draw(v.window, v.debugMatrix)

	v.disasmText.Draw(v.window, pixel.IM)
	v.queueText.Draw(v.window, pixel.IM)
	v.positionText.Draw(v.window, pixel.IM)

	v.window.Update()
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
