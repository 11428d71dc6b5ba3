package main

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/plus3/lootdrop/lootbox"
	"github.com/plus3/lootdrop/lootbox/debugui"
	debugui_ebiten "github.com/plus3/lootdrop/lootbox/debugui/ebiten"
)

// Game drives the loot-crate core from Ebiten's frame loop. Left click taps,
// right click places a crate under the cursor.
type Game struct {
	store     *lootbox.Store
	scheduler *lootbox.Scheduler
	scene     *planeScene
	queue     *lootbox.TapQueue
	placer    *lootbox.Placer

	panels  *debugui.PanelSystem
	stats   *debugui.SchedulerStatsPanel
	backend *debugui_ebiten.ImguiBackend

	log        *logrus.Logger
	lastReward string
	statusLine string
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.backend.BeginFrame()
	g.handleInput()
	g.scheduler.Once(1.0 / 60.0)
	g.stats.RecordFrame(1.0 / 60.0)
	g.backend.EndFrame()

	return nil
}

func (g *Game) handleInput() {
	if g.panels.Input.WantCaptureMouse {
		return
	}

	mx, my := ebiten.CursorPosition()
	pt := lootbox.Point2{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.queue.Push(pt)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		e, err := g.placer.Place(pt)
		switch {
		case errors.Is(err, lootbox.ErrNoSurfaceFound):
			g.statusLine = "unable to place: no surface found"
			g.log.WithField("point", pt).Warn("no surface under screen point")
		case err != nil:
			g.log.WithError(err).Error("placement failed")
		default:
			g.statusLine = ""
			g.log.WithFields(logrus.Fields{
				"entity":   e.ID,
				"position": e.Transform.Position,
			}).Info("crate placed")
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 26, B: 33, A: 255})

	w := screen.Bounds().Dx()
	vector.StrokeLine(screen,
		0, float32(g.scene.groundScreenY),
		float32(w), float32(g.scene.groundScreenY),
		2, color.RGBA{R: 90, G: 90, B: 110, A: 255}, false)

	for _, e := range g.store.Crates() {
		cx, cy := g.scene.toScreen(e.Transform.Position)
		half := float32(g.scene.crateHalfPixels(e))

		progress := float64(e.Lootbox.TapsReceived) / float64(e.Lootbox.RequiredTaps)
		crateColor := color.RGBA{
			R: uint8(180 + 60*progress),
			G: uint8(140 - 80*progress),
			B: 60,
			A: 255,
		}
		vector.DrawFilledRect(screen,
			float32(cx)-half, float32(cy)-half,
			half*2, half*2, crateColor, false)
	}

	status := fmt.Sprintf("crates: %d  |  left click: tap  right click: place  q: quit", g.store.CrateCount())
	if g.lastReward != "" {
		status += "\nlast reward: " + g.lastReward
	}
	if g.statusLine != "" {
		status += "\n" + g.statusLine
	}
	ebitenutil.DebugPrint(screen, status)

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
