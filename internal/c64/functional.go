package c64

import (
	"fmt"
	"os"
)

// FunctionalTestPassPC is Klaus Dormann's 6502 functional test success
// trap address (spec.md §8 scenario 1).
const FunctionalTestPassPC = 0x3463

// RunFunctionalTest is the Klaus Dormann 6502 functional-test harness,
// promoted from emudore's C64::test_cpu() (a private debug method) to
// a first-class, reusable entry point. It unmaps ROM by applying the
// all-RAM bank configuration of latch value 0 (address 0x0001 already
// holds 0 in a fresh Memory), loads the test binary at 0x0400, sets PC
// there, and
// steps the CPU until PC reaches the pass trap or repeats itself
// (an infinite loop, meaning a failing sub-test was reached).
func RunFunctionalTest(binPath string) (Snapshot, error) {
	data, err := os.ReadFile(binPath)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading functional test binary: %w", err)
	}

	mem := NewMemory()
	// A functional-test run has no VIC/CIA chips wired up: registers
	// in the IO page are never touched by this binary, so a bank
	// configuration of all-RAM is sufficient and AttachChips is not
	// needed.
	mem.banks = computeBanks(0)
	for i, b := range data {
		mem.WriteNoIO8(uint16(0x0400+i), b)
	}

	cpu := NewCPU(mem)
	cpu.Reset()
	cpu.SetPC(0x0400)

	for {
		pc := cpu.PC()
		if pc == FunctionalTestPassPC {
			break
		}
		if err := cpu.Step(); err != nil {
			return Snapshot{PC: pc, Cycles: cpu.Cycles()}, err
		}
		// The test binary traps a failing sub-test with a branch back
		// to its own address; a PC that doesn't move after a step is
		// that trap, not a legitimate (forward-progressing) loop.
		if cpu.PC() == pc {
			return Snapshot{PC: pc, Cycles: cpu.Cycles()},
				fmt.Errorf("functional test trapped in an infinite loop at PC=$%04X", pc)
		}
	}
	return Snapshot{PC: cpu.PC(), Cycles: cpu.Cycles()}, nil
}
