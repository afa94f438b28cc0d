// Package debugui provides an immediate-mode Dear ImGui diagnostics
// overlay for the game core: current loop state, score counters, frame
// timing history and per-system scheduler statistics.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/tetris"
)

// Overlay renders a diagnostics window for a running game.
type Overlay struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewOverlay creates an overlay keeping the given number of frame-time
// samples.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the diagnostics window for the current frame.
func (o *Overlay) Render(g *tetris.Game, deltaTime float32) {
	if !imgui.BeginV("Blockfall Diagnostics", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	imgui.Text(fmt.Sprintf("Phase: %s", g.Phase()))
	imgui.Text(fmt.Sprintf("Score: %d  Level: %d  Lines: %d", g.Score(), g.Level(), g.Lines()))
	imgui.Text(fmt.Sprintf("Occupied Cells: %d", g.Board().OccupiedCount()))

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	if imgui.TreeNodeStr("System Timings") {
		stats := g.Stats()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Executions")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Animations") {
		snap := g.Snapshot()
		if len(snap.Animations) == 0 {
			imgui.BulletText("none")
		}
		for _, a := range snap.Animations {
			imgui.BulletText(fmt.Sprintf("%s %.0f%%", a.Kind, a.Fraction*100))
		}
		imgui.TreePop()
	}

	imgui.End()
}
