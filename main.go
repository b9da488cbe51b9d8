package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Gregoor/snagor/config"
	"github.com/Gregoor/snagor/ui"
	"github.com/Gregoor/snagor/ui/rlsurface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Write debug logs to logs/snagor.log")
	autopilot := flag.Bool("autopilot", false, "Let the snake wander on its own")
	printConfig := flag.Bool("print-config", false, "Print the effective config as YAML and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Debug = true
	}
	if *autopilot {
		cfg.Autopilot.Enabled = true
	}

	if *printConfig {
		if err := cfg.WriteYAML(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	log.SetPrefix(sessionPrefix())
	log.Printf("starting: speed=%.1f trail=%d autopilot=%v", cfg.Speed, cfg.TrailLength, cfg.Autopilot.Enabled)

	run(cfg)
	log.Printf("stopped")
}

func run(cfg *config.Config) {
	if cfg.Window.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Window.FPS))

	d := newDriver(cfg)
	vp := ui.NewViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
	surface := rlsurface.For(vp)

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			vp = ui.NewViewport(rl.GetScreenWidth(), rl.GetScreenHeight())
			surface = rlsurface.For(vp)
			log.Printf("resized: scale=%.2f px=%.0f", vp.Scale, vp.PxSize)
		}

		rl.BeginDrawing()
		d.Frame(time.Now(), rl.GetKeyPressed, surface, vp.Scale)
		rl.EndDrawing()
	}
}
