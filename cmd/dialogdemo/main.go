// Command dialogdemo opens a window with a dialog box. Enter or the bottom
// face button pages through it, X skips it, O opens a new one once it is
// closed and Escape quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gompdf/gomdialog/internal/dialog"
	einput "github.com/gompdf/gomdialog/internal/input/ebiten"
	"github.com/gompdf/gomdialog/internal/logger"
	erender "github.com/gompdf/gomdialog/internal/render/ebiten"
	"github.com/gompdf/gomdialog/internal/text"
	"github.com/gompdf/gomdialog/pkg/api"
)

const (
	screenWidth  = 800
	screenHeight = 480
)

const introText = "Hello World! Press Enter or Button A to proceed.\n" +
	"I will be on the next pane! " +
	"And wordwrap will occur, especially if there are some longer words!\n" +
	"Monospace fonts work best but you might not want Courier New.\n" +
	"In this code sample, after this dialog box finishes, you can press the O key to open a new one."

type game struct {
	box     *api.DialogBox
	input   *einput.Source
	surface *erender.Surface
	clock   *dialog.TickClock
	log     *logger.Logger
}

func (g *game) Update() error {
	g.clock.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || backPressed() {
		return ebiten.Termination
	}

	if t := g.box.Update(g.input); t != api.TransitionNone {
		g.log.Info("dialog %s", t)
	}

	if !g.box.Active() && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.box.Show("New dialog box!"); err != nil {
			return err
		}
	}
	return nil
}

func backPressed() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			return true
		}
	}
	return false
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(api.CornflowerBlue)
	g.surface.SetTarget(screen)
	g.box.Draw(g.surface)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var (
		fontSize float64
		message  string
		verbose  bool
	)
	flag.Float64Var(&fontSize, "font-size", 16, "Font size in points")
	flag.StringVar(&message, "text", introText, "Text of the first dialog box")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	level := logger.LevelNormal
	if verbose {
		level = logger.LevelVerbose
	}
	log := logger.New(level, os.Stderr)

	face, err := text.GoMono(fontSize)
	if err != nil {
		log.Error("failed to load font: %v", err)
		os.Exit(1)
	}

	surface := erender.NewSurface(face)
	clock := dialog.NewTickClock(ebiten.DefaultTPS)
	box := api.New(surface.Metrics(),
		api.WithViewport(screenWidth, screenHeight),
		api.WithClock(clock),
		api.WithDebug(verbose),
	)
	if err := box.Show(message); err != nil {
		log.Error("failed to show dialog: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Dialog Box")

	g := &game{
		box:     box,
		input:   einput.NewSource(),
		surface: surface,
		clock:   clock,
		log:     log,
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
