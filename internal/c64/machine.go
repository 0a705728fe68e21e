package c64

// HostIO is the full External IO collaborator surface (spec.md §6):
// frame presentation, the keyboard matrix CIA1 scans, and the
// synthetic-keystroke queue the Loader feeds. A concrete
// implementation lives in internal/hostio.
type HostIO interface {
	FrameSink
	KeyboardMatrix
	KeyTyper
	// Tick lets the collaborator drain input events and its
	// synthetic-keypress queue once per orchestrator iteration. It
	// returns false on a host-side quit signal (spec.md §7 error
	// class 3), ending the run.
	Tick() bool
}

// Snapshot is a point-in-time readout of machine state, used by the
// debug status collaborator (internal/debugsrv) and by tests.
type Snapshot struct {
	PC         uint16
	A, X, Y, S uint8
	P          uint8
	Cycles     uint64
	RasterLine uint16
	Frame      uint64
}

// Machine is the arena of chips described in spec.md §9: it owns
// Memory, both CIAs, the CPU and the VIC, wires their capability
// interfaces into each other at construction, and runs the fixed
// six-step orchestrator loop.
type Machine struct {
	Mem  *Memory
	CPU  *CPU
	CIA1 *CIA
	CIA2 *CIA
	VIC  *VIC

	Loader *Loader

	io HostIO

	onTick func(Snapshot)
}

// NewMachine wires the chip arena together following spec.md §9:
// Memory is constructed first, then the CIAs and CPU (CPU needs
// Memory as its ReadWriter), then the VIC (needs Memory and CPU), and
// finally Memory is told which chips answer its IO-forwarded pages.
func NewMachine(io HostIO) *Machine {
	mem := NewMemory()
	cpu := NewCPU(mem)
	cia1 := NewCIA1(cpu, io)
	cia2 := NewCIA2(cpu)
	vic := NewVIC(mem, cpu, io)
	mem.AttachChips(vic, cia1, cia2)

	m := &Machine{
		Mem:  mem,
		CPU:  cpu,
		CIA1: cia1,
		CIA2: cia2,
		VIC:  vic,
		io:   io,
	}
	m.Loader = NewLoader(mem, cpu, io)
	return m
}

// OnTick registers a callback invoked with a Snapshot at the end of
// every orchestrator iteration, e.g. to feed internal/debugsrv.
func (m *Machine) OnTick(f func(Snapshot)) { m.onTick = f }

// Boot loads the three ROM images and resets every chip, matching
// emudore's C64::reset() + Memory::setup_memory_banks(v) sequence with
// the initial latch value 0x07 (LORAM|HIRAM|CHAREN set) stored at
// 0x0001.
func (m *Machine) Boot(basicROM, charROM, kernalROM string) error {
	const initialLatch = latchLORAM | latchHIRAM | latchCHAREN
	if err := m.Mem.SetupBanks(basicROM, charROM, kernalROM, initialLatch); err != nil {
		return err
	}
	m.CPU.Reset()
	return nil
}

// Tick runs one iteration of the fixed six-step loop from spec.md
// §4.5: cia1, cia2, cpu, vic, host-io, loader-callback, in that order.
// CIAs consume the cycle delta accrued by the previous iteration's CPU
// step; the CPU produces this iteration's delta; the VIC then renders
// against the latest cycle count. Any error from the CPU or VIC, or a
// false return from the host IO collaborator, ends the run.
func (m *Machine) Tick() (bool, error) {
	m.CIA1.Tick()
	m.CIA2.Tick()
	if err := m.CPU.Step(); err != nil {
		return false, err
	}
	if err := m.VIC.Tick(); err != nil {
		return false, err
	}
	if !m.io.Tick() {
		return false, nil
	}
	m.Loader.Tick()

	if m.onTick != nil {
		m.onTick(m.snapshot())
	}
	return true, nil
}

func (m *Machine) snapshot() Snapshot {
	return Snapshot{
		PC:         m.CPU.PC(),
		A:          m.CPU.A(),
		X:          m.CPU.X(),
		Y:          m.CPU.Y(),
		S:          m.CPU.SP(),
		P:          m.CPU.P(),
		Cycles:     m.CPU.Cycles(),
		RasterLine: m.VIC.RasterLine(),
		Frame:      m.VIC.FrameCount(),
	}
}

// Run drives Tick in a loop until it returns false or an error.
func (m *Machine) Run() error {
	for {
		ok, err := m.Tick()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
