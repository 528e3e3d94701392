package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/faiface/pixel/pixelgl"
	cli "gopkg.in/urfave/cli.v2"

	"github.com/rtrcmp/i8088bus/i8088"
	"github.com/rtrcmp/i8088bus/progress"
)

func main() {
	// pixelgl requires all window/GL calls to be dispatched from the
	// locked OS thread it runs on, so the whole CLI action runs inside
	// it, live viewer or not.
	var runErr error
	pixelgl.Run(func() { runErr = run() })

	if runErr != nil {
		switch runErr.(type) {
		case argError:
			fmt.Fprintln(os.Stderr, runErr)
			os.Exit(1)
		default:
			fmt.Fprintln(os.Stderr, runErr)
			os.Exit(2)
		}
	}
}

func run() error {
	app := &cli.App{
		Name:  "i8088bus",
		Usage: "reconstruct 8088 bus-cycle behavior from a logic-analyzer capture",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "live", Usage: "open a live raster viewer while decoding"},
			&cli.IntFlag{Name: "crtc-divisor", Value: 3, Usage: "CRTC pixels-per-clock divisor"},
			&cli.StringFlag{Name: "xlsx", Usage: "also write a colorized spreadsheet to this path"},
			&cli.StringFlag{Name: "png", Usage: "also write a static raster trace PNG to this path"},
		},
		Action: runBatch,
	}
	return app.Run(os.Args)
}

// argError marks a usage mistake, mapped to exit code 1 (§6.4); everything
// else (I/O, malformed capture) maps to exit code 2.
type argError struct{ msg string }

func (e argError) Error() string { return e.msg }

func runBatch(ctx *cli.Context) error {
	if ctx.Args().Len() != 2 {
		return argError{"usage: i8088bus [flags] <input.csv> <output.csv>"}
	}
	inPath := ctx.Args().Get(0)
	outPath := ctx.Args().Get(1)

	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	rows, err := i8088.ReadCapture(in)
	if err != nil {
		return err
	}
	edges := i8088.FilterEdges(rows)

	dec := i8088.NewDecoder()
	dec.Logger = log.New(os.Stderr, "i8088bus: ", log.LstdFlags)
	if ctx.Int("crtc-divisor") > 0 {
		dec.EnableCRTC(ctx.Int("crtc-divisor"))
	}

	var view *i8088.RasterView
	if ctx.Bool("live") {
		view = i8088.NewRasterView()
	}

	useTUI := isatty.IsTerminal(os.Stdout.Fd())
	var program *tea.Program
	if useTUI {
		program = tea.NewProgram(progress.NewModel(int64(len(edges))))
		go func() {
			if _, err := program.Run(); err != nil {
				log.Println("progress UI:", err)
			}
		}()
	}

	defer i8088.TimeTrack(time.Now())

	cycles := make([]*i8088.Cycle, 0, len(edges))
	for i, pins := range edges {
		c := dec.Feed(pins)
		cycles = append(cycles, c)

		if view != nil {
			view.Feed(c)
			view.Render()
		}
		if program != nil && i%256 == 0 {
			program.Send(progress.TickMsg{Done: int64(i), Total: int64(len(edges))})
		}
	}
	if program != nil {
		program.Send(progress.DoneMsg{})
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := i8088.WriteCycleLog(out, cycles); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	if xlsxPath := ctx.String("xlsx"); xlsxPath != "" {
		ports, err := i8088.LoadPortLabels(".")
		if err != nil {
			return err
		}
		if err := i8088.WriteSpreadsheet(xlsxPath, cycles, ports); err != nil {
			return fmt.Errorf("writing %s: %w", xlsxPath, err)
		}
	}

	if pngPath := ctx.String("png"); pngPath != "" {
		f, err := os.Create(pngPath)
		if err != nil {
			return fmt.Errorf("creating %s: %w", pngPath, err)
		}
		defer f.Close()
		if err := i8088.WriteTracePNG(f, cycles); err != nil {
			return fmt.Errorf("writing %s: %w", pngPath, err)
		}
	}

	fmt.Printf("decoded %d cycles from %s -> %s\n", len(cycles), inPath, outPath)
	return nil
}
