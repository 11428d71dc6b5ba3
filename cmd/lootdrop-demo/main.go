package main

import (
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/plus3/lootdrop/config"
	"github.com/plus3/lootdrop/lootbox"
	"github.com/plus3/lootdrop/lootbox/debugui"
	debugui_ebiten "github.com/plus3/lootdrop/lootbox/debugui/ebiten"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

var log = logrus.New()

func init() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file, using defaults")
	}

	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
}

// defaultCatalog is used when LOOTDROP_CATALOG is unset.
var defaultCatalog = lootbox.Catalog{
	{ID: "gem", Name: "Sparkling Gem"},
	{ID: "coin", Name: "Gold Coin"},
	{ID: "key", Name: "Rusty Key"},
	{ID: "map", Name: "Treasure Map"},
}

func main() {
	tuning := config.DefaultTuning()
	if path := os.Getenv("LOOTDROP_TUNING"); path != "" {
		var err error
		tuning, err = config.LoadTuning(path)
		if err != nil {
			log.WithError(err).Fatal("failed to load tuning")
		}
	}

	catalog := defaultCatalog
	if path := os.Getenv("LOOTDROP_CATALOG"); path != "" {
		var err error
		catalog, err = config.LoadCatalog(path)
		if err != nil {
			log.WithError(err).Fatal("failed to load reward catalog")
		}
	}

	picker, err := lootbox.NewPicker(catalog, nil)
	if err != nil {
		log.WithError(err).Fatal("reward catalog misconfigured")
	}

	store := lootbox.NewStore()
	store.SetAnchor(&lootbox.Anchor{Name: "ground", Pose: lootbox.NewTransform(lootbox.Vec3{})})

	scene := newPlaneScene(store, screenWidth, screenHeight)

	template := &lootbox.Template{
		Collision: &lootbox.CollisionShape{HalfExtents: lootbox.Splat(scene.crateHalfMeters)},
		Physics:   &lootbox.PhysicsBody{Mass: 0.5, Dynamic: true},
		Lootbox:   &lootbox.LootboxState{RequiredTaps: tuning.RequiredTaps},
	}

	clock := lootbox.SystemClock()
	queue := &lootbox.TapQueue{}
	handler := &lootbox.TapHandler{Scene: scene, Store: store, Rewards: picker, Clock: clock}
	placer := &lootbox.Placer{
		Scene:      scene,
		Store:      store,
		Template:   template,
		DropHeight: tuning.DropHeightMeters,
	}

	backend := debugui_ebiten.New("lootdrop", screenWidth, screenHeight)
	imgui.CurrentIO().SetIniFilename("")

	scheduler := lootbox.NewScheduler()
	panels := &debugui.PanelSystem{}

	game := &Game{
		store:     store,
		scheduler: scheduler,
		scene:     scene,
		queue:     queue,
		placer:    placer,
		panels:    panels,
		backend:   backend,
		log:       log,
	}

	// Taps before drop and decay: registration order is the in-frame order.
	scheduler.Register(&lootbox.TapSystem{
		Queue:   queue,
		Handler: handler,
		OnOpen: func(r lootbox.Reward) {
			game.lastReward = r.Name
			log.WithFields(logrus.Fields{"reward": r.ID, "name": r.Name}).Info("crate opened")
		},
	})
	scheduler.Register(newDropSystem(store))
	scheduler.Register(&lootbox.DecayScaleSystem{
		Store:       store,
		Clock:       clock,
		IdleDecay:   tuning.IdleDecay(),
		ScaleFactor: tuning.ScaleFactor,
	})

	game.stats = debugui.NewSchedulerStatsPanel(scheduler, 100)
	panels.Add(&debugui.CrateBrowser{Store: store, Clock: clock})
	panels.Add(game.stats)
	scheduler.Register(panels)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("lootdrop demo")

	log.WithFields(logrus.Fields{
		"required_taps": tuning.RequiredTaps,
		"decay":         tuning.IdleDecay().String(),
		"rewards":       len(catalog),
	}).Info("starting demo")

	if err := ebiten.RunGame(game); err != nil {
		log.WithError(err).Fatal("game loop exited")
	}
}
