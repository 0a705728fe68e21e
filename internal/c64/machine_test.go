package c64

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeHostIO satisfies Machine's HostIO collaborator surface with no
// real presentation: Tick reports "keep running" and nothing is ever
// drawn or typed, enough to drive Boot/Tick in tests that only care
// about CPU/memory/chip state.
type fakeHostIO struct {
	rows [8]uint8
	quit bool
}

func (h *fakeHostIO) UpdatePixel(x, y int, colorIndex uint8) {}
func (h *fakeHostIO) DrawRect(x, y, n int, colorIndex uint8) {}
func (h *fakeHostIO) Refresh()                               {}
func (h *fakeHostIO) RowForColumn(col uint8) uint8           { return h.rows[col&7] }
func (h *fakeHostIO) TypeCharacter(ch byte)                  {}
func (h *fakeHostIO) Tick() bool                             { return !h.quit }

func Test_Machine_Boot_WiresChipsAndResetsCPU(t *testing.T) {
	m := NewMachine(&fakeHostIO{})

	// No real ROM files are available in this environment; LoadROM
	// tolerates a missing/unreadable path by zero-filling (spec.md's
	// non-fatal ROM-load error class), so Boot itself must not fail.
	err := m.Boot("/nonexistent/basic.rom", "/nonexistent/char.rom", "/nonexistent/kernal.rom")
	assert.NoError(t, err)

	// The meaningful assertion here is that Reset actually ran (cycle
	// count seeded to 6) and the bank table reflects the initial 0x07
	// latch (LORAM|HIRAM|CHAREN all set), not the exact PC value,
	// since a zero-filled KERNAL ROM makes the reset vector 0x0000.
	assert.Equal(t, uint64(6), m.CPU.Cycles())
	assert.Equal(t, bankROM, m.Mem.banks[bankIdxKernal])
	assert.Equal(t, bankROM, m.Mem.banks[bankIdxBasic])
	assert.Equal(t, bankIO, m.Mem.banks[bankIdxCharen])
}

func Test_Machine_Tick_AdvancesCPUAndVIC(t *testing.T) {
	m := NewMachine(&fakeHostIO{})
	assert.NoError(t, m.Boot("/nonexistent/basic.rom", "/nonexistent/char.rom", "/nonexistent/kernal.rom"))

	// A zero-filled ROM means the reset vector points at $0000, which
	// happens to hold a BRK (opcode 0). One BRK still exercises the
	// full six-step loop and IRQ vectoring without needing real ROMs.
	ok, err := m.Tick()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Greater(t, m.CPU.Cycles(), uint64(6))
}

func Test_Machine_Tick_StopsOnHostIOQuit(t *testing.T) {
	io := &fakeHostIO{quit: true}
	m := NewMachine(io)
	assert.NoError(t, m.Boot("/nonexistent/basic.rom", "/nonexistent/char.rom", "/nonexistent/kernal.rom"))

	ok, err := m.Tick()
	assert.NoError(t, err)
	assert.False(t, ok)
}

// Test_FunctionalTest runs Klaus Dormann's 6502 functional test binary
// (spec.md §8 scenario 1), the same self-checking suite emudore's
// C64::test_cpu() used, promoted here to a real Go test. It is
// skipped unless C64CORE_FUNCTIONAL_TEST_BIN points at a
// built copy of the binary, mirroring the teacher's own env-var-gated
// golden-log integration test.
func Test_FunctionalTest(t *testing.T) {
	bin := os.Getenv("C64CORE_FUNCTIONAL_TEST_BIN")
	if bin == "" {
		t.Skip("C64CORE_FUNCTIONAL_TEST_BIN not set, skipping functional test")
	}

	snap, err := RunFunctionalTest(bin)
	assert.NoError(t, err)
	assert.Equal(t, uint16(FunctionalTestPassPC), snap.PC)
}
