package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/folio/audio"
	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/service"
	"github.com/lixenwraith/folio/status"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/folio.log")
	audioFlag  = flag.Bool("audio", false, "Play a cue on every spawn")
	seedFlag   = flag.Int64("seed", 0, "Fixed random seed, 0 seeds from the clock")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv(os.Getenv)
	if *audioFlag {
		on := true
		cfg.Audio = &on
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nFOLIO CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\nFOLIO CRASHED: %v\r\nStack Trace:\r\n%s\r\n", r, debug.Stack())
		os.Exit(1)
	})

	screen.EnableFocus()
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	reg := status.NewRegistry()
	hub := service.NewHub()
	audioSvc := audio.NewService()
	if err := hub.Register(audioSvc); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to register audio: %v\n", err)
		os.Exit(1)
	}
	if err := hub.InitAll(&cfg, reg); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to initialize services: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start services: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	newApp(screen, &cfg, reg, audioSvc.Player()).run()
}
