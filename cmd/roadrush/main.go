// cmd/roadrush/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-roadrush/pkg/config"
	"github.com/opd-ai/go-roadrush/pkg/engine"
	"github.com/opd-ai/go-roadrush/pkg/event"
	"github.com/opd-ai/go-roadrush/pkg/perf"
	"github.com/opd-ai/go-roadrush/pkg/render"
	engorender "github.com/opd-ai/go-roadrush/pkg/render/engo"
	"github.com/opd-ai/go-roadrush/pkg/scene"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo' or 'null'")
	quality := flag.String("quality", "", "Quality tier override: low, medium, or high")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (overrides config)")
	height := flag.Int("height", 0, "Window height (overrides config)")
	flag.Parse()

	// Load configuration
	var simConfig *config.SimConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		simConfig = config.DefaultConfig()
	} else {
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	// Environment overrides apply on top of the file
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid environment configuration: %v", err)
	}
	envConfig.Apply(simConfig)

	if *quality != "" {
		simConfig.Display.QualityOverride = *quality
	}
	if *width > 0 {
		simConfig.Display.Width = *width
	}
	if *height > 0 {
		simConfig.Display.Height = *height
	}
	simConfig.Display.Fullscreen = *fullscreen

	// Pick the quality tier once and build the scenery for it
	tier := perf.DetectTier(simConfig.Display.QualityOverride)
	settings := perf.SettingsForTier(tier)
	log.Printf("Quality tier %s: %d trees, pixel ratio %.1f",
		tier, settings.TreeCount, settings.PixelRatio)

	scenery := scene.NewProceduralScene(simConfig.Scene,
		simConfig.Vehicle.RoadHalfWidth, settings.TreeCount)

	// Create event bus and the simulation core
	eventBus := event.NewEventBus()
	sim := engine.NewSim(simConfig, scenery, nil, eventBus)
	sim.Tier = tier
	sim.Monitor = perf.NewMonitor(envConfig.FrameBudget)

	eventBus.Subscribe(event.QualityChanged, func(e event.Event) {
		if qe, ok := e.(*event.QualityEvent); ok {
			log.Printf("Quality downgraded: %s -> %s",
				perf.Tier(qe.PreviousTier), perf.Tier(qe.NewTier))
		}
	})

	switch *renderer {
	case "null":
		runHeadless(sim)
	case "engo":
		fallthrough
	default:
		runEngo(sim, scenery, eventBus, simConfig.Display)
	}
}

// runEngo starts the windowed demo; Engo owns the main loop and drives
// the simulation through the scene's systems
func runEngo(sim *engine.Sim, scenery *scene.ProceduralScene, eventBus *event.Bus, display config.DisplayConfig) {
	demoScene := engorender.NewDemoScene(sim, scenery, eventBus)

	opts := engo.RunOptions{
		Title:      display.Title,
		Width:      display.Width,
		Height:     display.Height,
		Fullscreen: display.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, demoScene)
}

// runHeadless drives the simulation from a wall-clock ticker with no
// window, until interrupted. Useful for soak testing the pipeline.
func runHeadless(sim *engine.Sim) {
	sim.Renderer = render.NewNullRenderer()

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down...")
		cancel()
	}()

	if err := sim.Run(ctx); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}
