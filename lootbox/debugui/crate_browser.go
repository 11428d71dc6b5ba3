package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/lootdrop/lootbox"
)

// CrateBrowser lists every live crate with its tap progress, visual scale,
// and idle age. Selecting a row shows the crate's full transform.
type CrateBrowser struct {
	Store *lootbox.Store

	// Clock defaults to SystemClock when nil.
	Clock lootbox.Clock

	selected lootbox.EntityID
}

// Render draws the crate table.
func (b *CrateBrowser) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 260), imgui.CondOnce)

	if !imgui.BeginV("Crates", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Live crates: %d / %d entities", b.Store.CrateCount(), b.Store.Len()))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("CrateTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("ID")
		imgui.TableSetupColumn("Taps")
		imgui.TableSetupColumn("Scale")
		imgui.TableSetupColumn("Idle")
		imgui.TableHeadersRow()

		now := b.now()
		for id, e := range b.Store.Crates() {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := b.selected == id
			if imgui.SelectableBoolV(fmt.Sprintf("%d", id), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				b.selected = id
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d / %d", e.Lootbox.TapsReceived, e.Lootbox.RequiredTaps))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", e.Transform.Scale.X))

			imgui.TableNextColumn()
			if e.Lootbox.LastUpdate.IsZero() {
				imgui.Text("untouched")
			} else {
				imgui.Text(now.Sub(e.Lootbox.LastUpdate).Truncate(time.Millisecond).String())
			}
		}

		imgui.EndTable()
	}

	if e, live := b.Store.Get(b.selected); live && e.Lootbox != nil {
		imgui.Separator()
		pos := e.Transform.Position
		imgui.Text(fmt.Sprintf("Crate %d", e.ID))
		imgui.Text(fmt.Sprintf("Position: %.3f %.3f %.3f", pos.X, pos.Y, pos.Z))
		if e.Anchor != nil {
			imgui.Text(fmt.Sprintf("Anchor: %s", e.Anchor.Name))
		}
	}

	imgui.End()
}

func (b *CrateBrowser) now() time.Time {
	if b.Clock != nil {
		return b.Clock.Now()
	}
	return time.Now()
}
