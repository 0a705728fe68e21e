package c64

import (
	"fmt"
	"os"
)

const (
	kernalReadyPC = 0xA65C
	basicPrgStart = 0x0801

	basicTxtTab = 0x002B
	basicVarTab = 0x002D
	basicAryTab = 0x002F
	basicStrEnd = 0x0031
)

type loaderFormat uint8

const (
	loaderNone loaderFormat = iota
	loaderBasic
	loaderPRG
)

// KeyTyper is the character-injection side of the External IO
// collaborator (spec.md §6): the loader feeds it one character at a
// time and it is responsible for the timed keyboard-matrix queue that
// makes the KERNAL's scan routine actually see them.
type KeyTyper interface {
	TypeCharacter(ch byte)
}

// Loader implements the program-injection external collaborator named
// in spec.md §6, grounded on emudore's loader.cpp. It participates in
// the orchestrator's per-iteration callback slot (spec.md §4.5): it
// waits for the KERNAL to reach its ready prompt (PC == 0xA65C) before
// injecting anything, then performs the injection exactly once.
type Loader struct {
	mem   *Memory
	cpu   *CPU
	typer KeyTyper

	format   loaderFormat
	payload  []byte
	loadAddr uint16

	bootedUp bool
}

func NewLoader(mem *Memory, cpu *CPU, typer KeyTyper) *Loader {
	return &Loader{mem: mem, cpu: cpu, typer: typer}
}

// LoadBASICFile stages a plain-text BASIC listing for character-by
// -character injection once the machine is ready.
func (l *Loader) LoadBASICFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading BASIC listing: %w", err)
	}
	l.payload = data
	l.format = loaderBasic
	return nil
}

// LoadPRGFile stages a .prg image: a two-byte little-endian load
// address followed by raw payload bytes.
func (l *Loader) LoadPRGFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading PRG file: %w", err)
	}
	if len(data) < 2 {
		return fmt.Errorf("PRG file too short: %d bytes", len(data))
	}
	l.loadAddr = uint16(data[0]) | uint16(data[1])<<8
	l.payload = data[2:]
	l.format = loaderPRG
	return nil
}

// Tick is called once per orchestrator iteration. It is a no-op until
// the KERNAL reaches its ready state, then performs the staged load
// exactly once.
func (l *Loader) Tick() {
	if !l.bootedUp {
		if l.cpu.PC() == kernalReadyPC {
			l.bootedUp = true
		}
		return
	}
	switch l.format {
	case loaderBasic:
		l.loadBasic()
	case loaderPRG:
		l.loadPRG()
	}
	l.format = loaderNone
}

func (l *Loader) loadBasic() {
	for _, ch := range l.payload {
		l.typer.TypeCharacter(ch)
	}
}

// loadPRG writes the payload byte-by-byte into RAM bypassing bank
// overlays. A load address of 0x0801 (BASIC program start) also fixes
// up BASIC's text/variable/array/string-end pointers and types "RUN\n"
// so the loaded listing executes immediately; any other load address
// is treated as a machine-language program and set as PC directly.
func (l *Loader) loadPRG() {
	addr := l.loadAddr
	for _, b := range l.payload {
		l.mem.WriteNoIO8(addr, b)
		addr++
	}
	if l.loadAddr == basicPrgStart {
		l.mem.WriteNoIO16(basicTxtTab, basicPrgStart)
		l.mem.WriteNoIO16(basicVarTab, addr)
		l.mem.WriteNoIO16(basicAryTab, addr)
		l.mem.WriteNoIO16(basicStrEnd, addr)
		for _, ch := range []byte("RUN\n") {
			l.typer.TypeCharacter(ch)
		}
		return
	}
	l.cpu.SetPC(l.loadAddr)
}
