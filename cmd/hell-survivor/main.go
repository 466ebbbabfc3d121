package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/haoranliu666/Hell-Survivor/audio"
	"github.com/haoranliu666/Hell-Survivor/config"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/input"
	"github.com/haoranliu666/Hell-Survivor/render"
	"github.com/haoranliu666/Hell-Survivor/systems"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	seedFlag   = flag.Int64("seed", 0, "World seed (0 derives one from the clock)")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	keyTable, err := input.NewKeyTable(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nHELL SURVIVOR CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()
	screen.HideCursor()

	world := engine.NewWorld(seed)
	systems.Register(world)

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.MasterVolume)
		if err := sound.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			sound = nil
		} else {
			defer sound.Cleanup()
		}
	}

	renderer := render.NewTerminalRenderer(screen)
	handler := input.NewHandler(keyTable)

	frameReady := make(chan struct{}, 1)
	scheduler, updateDone := engine.NewClockScheduler(world, constants.GameUpdateInterval, frameReady)
	frameReady <- struct{}{}
	scheduler.Start()
	defer scheduler.Stop()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\nEVENT POLLER CRASHED: %v\n%s\n", r, debug.Stack())
				os.Exit(1)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	var updatePending bool

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			handler.HandleEvent(ev)
			if handler.QuitRequested() {
				return
			}

		case <-frameTicker.C:
			world.SetIntent(handler.Intent())

			select {
			case <-updateDone:
				updatePending = false
			default:
				updatePending = true
			}

			drained := world.ConsumeEvents()
			if sound != nil {
				sound.HandleEvents(drained)
			}

			snapshot := world.Snapshot()
			renderer.RenderFrame(&snapshot)

			if !updatePending {
				select {
				case frameReady <- struct{}{}:
				default:
				}
			}
		}
	}
}
