package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/lootdrop/lootbox"
)

// stressScene aims every tap at one random live crate.
type stressScene struct {
	store *lootbox.Store
	rng   *rand.Rand
}

func (s *stressScene) CastRay(pt lootbox.Point2) []lootbox.Hit {
	n := s.store.CrateCount()
	if n == 0 {
		return nil
	}
	target := s.rng.IntN(n)
	i := 0
	for id, e := range s.store.Crates() {
		if i == target {
			return []lootbox.Hit{{Entity: id, World: e.Transform.Position, Distance: 1}}
		}
		i++
	}
	return nil
}

func (s *stressScene) AnchorFrame() lootbox.Transform {
	return lootbox.NewTransform(lootbox.Vec3{})
}

func (s *stressScene) ToAnchorSpace(world lootbox.Vec3) lootbox.Vec3 {
	return world
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	crateCount := flag.Int("crates", 10000, "The crate population to maintain.")
	tapsPerFrame := flag.Int("taps", 100, "The number of random taps fired per frame.")
	requiredTaps := flag.Int("required-taps", 5, "Taps required to open a crate.")
	flag.Parse()

	log.Println("Starting lootdrop stress test...")

	store := lootbox.NewStore()
	store.SetAnchor(&lootbox.Anchor{Name: "stress"})
	rng := rand.New(rand.NewPCG(42, 1337))
	scene := &stressScene{store: store, rng: rng}

	catalog := lootbox.Catalog{
		{ID: "gem", Name: "Gem"},
		{ID: "coin", Name: "Coin"},
		{ID: "key", Name: "Key"},
	}
	picker, err := lootbox.NewPicker(catalog, rng)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	template := &lootbox.Template{
		Collision: &lootbox.CollisionShape{HalfExtents: lootbox.Splat(0.05)},
		Physics:   &lootbox.PhysicsBody{Mass: 0.5, Dynamic: true},
		Lootbox:   &lootbox.LootboxState{RequiredTaps: *requiredTaps},
	}

	spawn := func() {
		store.Spawn(template, lootbox.Vec3{
			X: rng.Float64() * 10,
			Z: rng.Float64() * 10,
		})
	}

	log.Printf("Populating store with %d crates...\n", *crateCount)
	for i := 0; i < *crateCount; i++ {
		spawn()
	}
	log.Println("Population complete.")

	report := &Report{
		Duration:     *duration,
		Crates:       *crateCount,
		TapsPerFrame: *tapsPerFrame,
		RequiredTaps: *requiredTaps,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	queue := &lootbox.TapQueue{}
	handler := &lootbox.TapHandler{Scene: scene, Store: store, Rewards: picker}

	scheduler := lootbox.NewScheduler()
	scheduler.Register(&lootbox.TapSystem{
		Queue:   queue,
		Handler: handler,
		OnOpen: func(lootbox.Reward) {
			report.CratesOpened++
			// Keep the population stable so frame cost stays comparable.
			spawn()
			report.CratesSpawned++
		},
	})
	scheduler.Register(&lootbox.DecayScaleSystem{Store: store})

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			for i := 0; i < *tapsPerFrame; i++ {
				queue.Push(lootbox.Point2{X: rng.Float64() * 100, Y: rng.Float64() * 100})
				report.TapsFired++
			}

			frameStart := time.Now()
			scheduler.Once(float64(deltaTime) / float64(time.Second))
			frameDuration := time.Since(frameStart)

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			report.TotalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.CratesLive = store.CrateCount()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
