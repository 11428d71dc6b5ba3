package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lootdrop/lootbox"
)

// SchedulerStatsPanel shows per-system execution timing and a frame-time
// history plot.
type SchedulerStatsPanel struct {
	Scheduler *lootbox.Scheduler

	frameHistory []float32
	frameIndex   int
}

// NewSchedulerStatsPanel creates a panel keeping the given number of frame
// samples.
func NewSchedulerStatsPanel(scheduler *lootbox.Scheduler, historyFrames int) *SchedulerStatsPanel {
	return &SchedulerStatsPanel{
		Scheduler:    scheduler,
		frameHistory: make([]float32, historyFrames),
	}
}

// RecordFrame appends one frame duration, in seconds, to the history.
func (p *SchedulerStatsPanel) RecordFrame(dt float64) {
	p.frameHistory[p.frameIndex] = float32(dt * 1000.0)
	p.frameIndex = (p.frameIndex + 1) % len(p.frameHistory)
}

// Render draws the stats window.
func (p *SchedulerStatsPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 220), imgui.CondOnce)

	if !imgui.BeginV("Scheduler", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := p.Scheduler.GetStats()
	imgui.Text(fmt.Sprintf("Systems: %d", stats.SystemCount))
	imgui.Text(fmt.Sprintf("Total executions: %d", stats.TotalExecutions))

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(len(p.frameHistory))
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg frame: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
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
			imgui.Text(sys.AvgDuration.String())
			imgui.TableNextColumn()
			imgui.Text(sys.MaxDuration.String())
		}

		imgui.EndTable()
	}

	imgui.End()
}
