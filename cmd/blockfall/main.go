// Command blockfall is the desktop frontend: an Ebiten render loop
// driving the headless game core through events and snapshots.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const (
	cellSize   = 24
	boardLeft  = 16
	boardTop   = 16
	panelLeft  = boardLeft + tetris.BoardWidth*cellSize + 24
	panelWidth = 140

	screenWidth  = panelLeft + panelWidth
	screenHeight = boardTop + tetris.BoardHeight*cellSize + 16
)

// kindColors follows the classic palette: green I, red J, yellow L,
// aqua O, white S, blue T, pink Z.
var kindColors = [tetris.NumKinds]color.RGBA{
	tetris.KindI: {0x00, 0xe4, 0x36, 0xff},
	tetris.KindJ: {0xff, 0x00, 0x4d, 0xff},
	tetris.KindL: {0xff, 0xec, 0x27, 0xff},
	tetris.KindO: {0x29, 0xe2, 0xe2, 0xff},
	tetris.KindS: {0xff, 0xf1, 0xe8, 0xff},
	tetris.KindT: {0x29, 0xad, 0xff, 0xff},
	tetris.KindZ: {0xff, 0x77, 0xa8, 0xff},
}

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	wellColor       = color.RGBA{0x1d, 0x1d, 0x28, 0xff}
	shadowAlpha     = uint8(0x50)
)

var pressKeys = map[ebiten.Key]tetris.Event{
	ebiten.KeyUp:    tetris.EventRotateCW,
	ebiten.KeyX:     tetris.EventRotateCW,
	ebiten.KeyZ:     tetris.EventRotateCCW,
	ebiten.KeySpace: tetris.EventHardDrop,
	ebiten.KeyQ:     tetris.EventReset,
}

var repeatKeys = map[ebiten.Key]tetris.Event{
	ebiten.KeyLeft:  tetris.EventMoveLeft,
	ebiten.KeyRight: tetris.EventMoveRight,
	ebiten.KeyDown:  tetris.EventSoftDrop,
}

// App implements ebiten.Game on top of the core loop.
type App struct {
	game    *tetris.Game
	overlay *debugui.Overlay
	backend *debugui_ebiten.ImguiBackend
}

func (a *App) Update() error {
	if a.backend != nil {
		a.backend.BeginFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for key, ev := range pressKeys {
		if inpututil.IsKeyJustPressed(key) {
			a.game.Push(ev)
		}
	}

	// Horizontal movement and soft drop repeat while held.
	for key, ev := range repeatKeys {
		if repeatingPressed(key) {
			a.game.Push(ev)
		}
	}

	dt := 1.0 / float64(ebiten.TPS())
	a.game.Tick(dt)

	if a.backend != nil {
		a.overlay.Render(a.game, float32(dt))
		a.backend.EndFrame()
	}
	return nil
}

// repeatingPressed reports a fresh press, then repeats every 5 ticks
// after a 12-tick delay while the key is held.
func repeatingPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= 12 && (d-12)%5 == 0
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := a.game.Snapshot()

	vector.DrawFilledRect(screen, boardLeft, boardTop,
		float32(snap.Width*cellSize), float32(snap.Height*cellSize), wellColor, false)

	clearing := make(map[int]float64)
	for _, anim := range snap.Animations {
		if anim.Kind != tetris.AnimLineClear {
			continue
		}
		for _, row := range anim.Rows {
			clearing[row] = anim.Fraction
		}
	}

	for _, c := range snap.Cells {
		clr := kindColors[c.Kind]
		if fraction, ok := clearing[c.Y]; ok {
			clr = waveColor(c.X, fraction)
		}
		drawCell(screen, c.X, c.Y, clr)
	}

	if snap.Shadow != nil {
		clr := kindColors[snap.Shadow.Kind]
		clr.A = shadowAlpha
		for _, c := range snap.Shadow.Cells {
			drawCell(screen, c.X, c.Y, clr)
		}
	}
	if snap.Active != nil {
		for _, c := range snap.Active.Cells {
			drawCell(screen, c.X, c.Y, kindColors[snap.Active.Kind])
		}
	}

	for _, anim := range snap.Animations {
		if anim.Kind != tetris.AnimHardDrop {
			continue
		}
		// Fading streak where the piece slammed down.
		clr := color.RGBA{0xff, 0xff, 0xff, uint8(0x60 * (1 - anim.Fraction))}
		for _, c := range anim.Cells {
			drawCell(screen, c.X, c.Y, clr)
		}
	}

	a.drawPanel(screen, snap)

	if snap.Phase == tetris.PhaseGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER",
			boardLeft+snap.Width*cellSize/2-32, boardTop+snap.Height*cellSize/2-16)
		ebitenutil.DebugPrintAt(screen, "press Q to restart",
			boardLeft+snap.Width*cellSize/2-56, boardTop+snap.Height*cellSize/2)
	}

	if a.backend != nil {
		a.backend.Draw(screen)
	}
}

func (a *App) drawPanel(screen *ebiten.Image, snap tetris.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), panelLeft, boardTop)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelLeft, boardTop+20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), panelLeft, boardTop+40)
	ebitenutil.DebugPrintAt(screen, "NEXT", panelLeft, boardTop+80)

	// Preview the next piece using its spawn footprint, shifted into
	// the panel.
	for _, c := range tetris.SpawnPiece(snap.Next).Footprint() {
		x := panelLeft + (c.X-3)*cellSize
		y := boardTop + 100 + c.Y*cellSize
		vector.DrawFilledRect(screen, float32(x+1), float32(y+1),
			cellSize-2, cellSize-2, kindColors[snap.Next], false)
	}
}

func drawCell(screen *ebiten.Image, x, y int, clr color.Color) {
	if y < 0 {
		return
	}
	vector.DrawFilledRect(screen,
		float32(boardLeft+x*cellSize+1), float32(boardTop+y*cellSize+1),
		cellSize-2, cellSize-2, clr, false)
}

// waveColor cycles the palette left to right across a clearing row, one
// color step per animation interval.
func waveColor(x int, fraction float64) color.RGBA {
	step := int(fraction * tetris.LineClearDuration / tetris.LineClearStep)
	return kindColors[(step+x)%tetris.NumKinds]
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.backend != nil {
		a.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return screenWidth, screenHeight
}

func main() {
	seed := flag.Uint64("seed", 0, "piece sequence seed, 0 for random")
	debug := flag.Bool("debug", false, "show the diagnostics overlay")
	flag.Parse()

	var r *rand.Rand
	if *seed != 0 {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}

	app := &App{game: tetris.NewGame(r)}

	if *debug {
		backend := debugui_ebiten.New()
		backend.CreateWindow("Blockfall", screenWidth, screenHeight)
		imgui.CurrentIO().SetIniFilename("")
		app.backend = backend
		app.overlay = debugui.NewOverlay(120)
	} else {
		ebiten.SetWindowTitle("Blockfall")
		ebiten.SetWindowSize(screenWidth, screenHeight)
	}

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
