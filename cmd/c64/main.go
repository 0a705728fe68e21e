package main

import (
	"flag"
	"log"
	"os"

	"github.com/pkg/profile"

	"github.com/nevisdale/c64core/internal/c64"
	"github.com/nevisdale/c64core/internal/debugsrv"
	"github.com/nevisdale/c64core/internal/hostio"
)

func main() {
	var (
		basicROM  = flag.String("basic-rom", "roms/basic.rom", "path to the BASIC ROM image")
		charROM   = flag.String("char-rom", "roms/char.rom", "path to the character ROM image")
		kernalROM = flag.String("kernal-rom", "roms/kernal.rom", "path to the KERNAL ROM image")
		prg       = flag.String("prg", "", "path to a .prg file to load and run")
		basic     = flag.String("basic", "", "path to a plain-text BASIC listing to type in and run")
		selftest  = flag.String("selftest", "", "run Klaus Dormann's 6502 functional test binary and exit")
		debugAddr = flag.String("debug-addr", "", "if set, serve a debug status websocket at this address")
		doProfile = flag.Bool("profile", false, "write a CPU profile to ./cpu.pprof")
	)
	flag.Parse()

	if *selftest != "" {
		snap, err := c64.RunFunctionalTest(*selftest)
		if err != nil {
			log.Fatalf("functional test failed at PC=$%04X: %s\n", snap.PC, err)
		}
		log.Printf("functional test passed after %d cycles\n", snap.Cycles)
		return
	}

	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	io := hostio.New()
	m := c64.NewMachine(io)
	io.Attach(m)

	if err := m.Boot(*basicROM, *charROM, *kernalROM); err != nil {
		log.Fatalf("couldn't boot machine: %s\n", err.Error())
	}

	if *prg != "" {
		if err := m.Loader.LoadPRGFile(*prg); err != nil {
			log.Fatalf("couldn't load PRG file: %s\n", err.Error())
		}
	} else if *basic != "" {
		if err := m.Loader.LoadBASICFile(*basic); err != nil {
			log.Fatalf("couldn't load BASIC listing: %s\n", err.Error())
		}
	}

	if *debugAddr != "" {
		srv := debugsrv.New()
		m.OnTick(srv.Publish)
		go func() {
			if err := srv.ListenAndServe(*debugAddr); err != nil {
				log.Printf("debug status server stopped: %s\n", err.Error())
			}
		}()
	}

	if err := hostio.Run(io); err != nil {
		log.Fatalf("run failed: %s\n", err.Error())
		os.Exit(1)
	}
}
