// Command blockfall-term is the terminal frontend: a tcell render loop
// driving the same headless core as the desktop build.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/blockfall/tetris"
)

const (
	boardLeft = 2
	boardTop  = 1
	// Two terminal columns per board cell keeps the well roughly square.
	cellCols = 2
)

var kindColors = [tetris.NumKinds]tcell.Color{
	tetris.KindI: tcell.ColorGreen,
	tetris.KindJ: tcell.ColorRed,
	tetris.KindL: tcell.ColorYellow,
	tetris.KindO: tcell.ColorAqua,
	tetris.KindS: tcell.ColorWhite,
	tetris.KindT: tcell.ColorBlue,
	tetris.KindZ: tcell.ColorHotPink,
}

type app struct {
	screen tcell.Screen
	game   *tetris.Game
}

func (a *app) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			a.game.Tick(now.Sub(last).Seconds())
			last = now
			a.draw()
		}
	}
}

// handleInput translates terminal events into game events. It returns
// false when the player quits.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			a.game.Push(tetris.EventMoveLeft)
		case tcell.KeyRight:
			a.game.Push(tetris.EventMoveRight)
		case tcell.KeyUp:
			a.game.Push(tetris.EventRotateCW)
		case tcell.KeyDown:
			a.game.Push(tetris.EventSoftDrop)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'z':
				a.game.Push(tetris.EventRotateCCW)
			case 'x':
				a.game.Push(tetris.EventRotateCW)
			case ' ':
				a.game.Push(tetris.EventHardDrop)
			case 'q':
				a.game.Push(tetris.EventReset)
			}
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *app) draw() {
	a.screen.Clear()

	snap := a.game.Snapshot()

	wellStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 0; y <= snap.Height; y++ {
		a.screen.SetContent(boardLeft-1, boardTop+y, '│', nil, wellStyle)
		a.screen.SetContent(boardLeft+snap.Width*cellCols, boardTop+y, '│', nil, wellStyle)
	}
	for x := -1; x <= snap.Width*cellCols; x++ {
		a.screen.SetContent(boardLeft+x, boardTop+snap.Height, '─', nil, wellStyle)
	}

	clearing := make(map[int]float64)
	for _, anim := range snap.Animations {
		if anim.Kind == tetris.AnimLineClear {
			for _, row := range anim.Rows {
				clearing[row] = anim.Fraction
			}
		}
	}

	for _, c := range snap.Cells {
		clr := kindColors[c.Kind]
		if fraction, ok := clearing[c.Y]; ok {
			clr = waveColor(c.X, fraction)
		}
		a.drawCell(c.X, c.Y, '█', tcell.StyleDefault.Foreground(clr))
	}

	if snap.Shadow != nil {
		style := tcell.StyleDefault.Foreground(kindColors[snap.Shadow.Kind]).Dim(true)
		for _, c := range snap.Shadow.Cells {
			a.drawCell(c.X, c.Y, '░', style)
		}
	}
	if snap.Active != nil {
		style := tcell.StyleDefault.Foreground(kindColors[snap.Active.Kind])
		for _, c := range snap.Active.Cells {
			a.drawCell(c.X, c.Y, '█', style)
		}
	}

	panelLeft := boardLeft + snap.Width*cellCols + 3
	a.drawText(panelLeft, boardTop, fmt.Sprintf("SCORE %d", snap.Score))
	a.drawText(panelLeft, boardTop+1, fmt.Sprintf("LEVEL %d", snap.Level))
	a.drawText(panelLeft, boardTop+2, fmt.Sprintf("LINES %d", snap.Lines))
	a.drawText(panelLeft, boardTop+4, "NEXT")
	nextStyle := tcell.StyleDefault.Foreground(kindColors[snap.Next])
	for _, c := range tetris.SpawnPiece(snap.Next).Footprint() {
		for i := 0; i < cellCols; i++ {
			a.screen.SetContent(panelLeft+(c.X-3)*cellCols+i, boardTop+5+c.Y, '█', nil, nextStyle)
		}
	}

	if snap.Phase == tetris.PhaseGameOver {
		a.drawText(boardLeft+snap.Width*cellCols/2-5, boardTop+snap.Height/2, "GAME OVER")
		a.drawText(boardLeft+snap.Width*cellCols/2-9, boardTop+snap.Height/2+1, "press q to restart")
	}

	a.screen.Show()
}

func (a *app) drawCell(x, y int, r rune, style tcell.Style) {
	if y < 0 {
		return
	}
	for i := 0; i < cellCols; i++ {
		a.screen.SetContent(boardLeft+x*cellCols+i, boardTop+y, r, nil, style)
	}
}

func (a *app) drawText(x, y int, text string) {
	for i, r := range text {
		a.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

// waveColor cycles the palette left to right across a clearing row.
func waveColor(x int, fraction float64) tcell.Color {
	step := int(fraction * tetris.LineClearDuration / tetris.LineClearStep)
	return kindColors[(step+x)%tetris.NumKinds]
}

func main() {
	seed := flag.Uint64("seed", 0, "piece sequence seed, 0 for random")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	var r *rand.Rand
	if *seed != 0 {
		r = rand.New(rand.NewPCG(*seed, *seed))
	}

	a := &app{screen: screen, game: tetris.NewGame(r)}
	a.run()
}
