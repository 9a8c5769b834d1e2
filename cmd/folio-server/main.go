package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/folio/config"
	"github.com/lixenwraith/folio/engine"
	"github.com/lixenwraith/folio/server"
	"github.com/lixenwraith/folio/service"
	"github.com/lixenwraith/folio/status"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	listenFlag = flag.String("listen", "", "Listen address, overrides the config file")
	publicFlag = flag.String("public", "", "Static asset directory, overrides the config file")
	blogFlag   = flag.String("blog", "", "Blog source directory, overrides the config file")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	engine.SetCrashHandler(func(r any) {
		fmt.Fprintf(os.Stderr, "FOLIO SERVER CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	})

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.ApplyEnv(os.Getenv)
	if *listenFlag != "" {
		cfg.Listen = *listenFlag
	}
	if *publicFlag != "" {
		cfg.PublicDir = *publicFlag
	}
	if *blogFlag != "" {
		cfg.BlogDir = *blogFlag
	}

	reg := status.NewRegistry()
	sc := server.NewScene(nil)

	hub := service.NewHub()
	for _, svc := range []service.Service{sc, server.NewServer(sc)} {
		if err := hub.Register(svc); err != nil {
			log.Fatalf("register: %v", err)
		}
	}
	if err := hub.InitAll(&cfg, reg); err != nil {
		log.Fatalf("init: %v", err)
	}
	if err := hub.StartAll(); err != nil {
		log.Fatalf("start: %v", err)
	}
	log.Printf("folio-server: services %v", hub.Order())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	log.Printf("folio-server: %v, shutting down", s)
	hub.StopAll()
}
