package c64

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

func Test_ADC_Binary(t *testing.T) {
	type testArgs struct {
		initA, operand, initP    uint8
		expectedA, expectedFlags uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		cpu := NewCPU(nil)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.opValue = in.operand

		cpu.opADC()

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedFlags, cpu.p&(flagN|flagV|flagZ|flagC), "flags")
	}

	t.Run("zero result", func(t *testing.T) {
		testDo(t, testArgs{initA: 0, operand: 0, expectedA: 0, expectedFlags: flagZ})
	})
	t.Run("simple addition", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x10, operand: 0x20, expectedA: 0x30})
	})
	t.Run("carry out", func(t *testing.T) {
		testDo(t, testArgs{initA: 0xFF, operand: 0x01, expectedA: 0, expectedFlags: flagZ | flagC})
	})
	t.Run("signed overflow into negative", func(t *testing.T) {
		testDo(t, testArgs{initA: 0x7F, operand: 0x01, expectedA: 0x80, expectedFlags: flagN | flagV})
	})
}

func Test_ADC_Decimal(t *testing.T) {
	// Scenario 2 from the functional core's testable properties.
	cpu := NewCPU(nil)
	cpu.setFlag(flagD, true)
	cpu.a = 0x15
	cpu.opValue = 0x27
	cpu.opADC()
	assert.Equal(t, uint8(0x42), cpu.a)
	assert.False(t, cpu.getFlag(flagC))

	cpu2 := NewCPU(nil)
	cpu2.setFlag(flagD, true)
	cpu2.a = 0x58
	cpu2.opValue = 0x46
	cpu2.opADC()
	assert.Equal(t, uint8(0x04), cpu2.a)
	assert.True(t, cpu2.getFlag(flagC))
}

// Test_ADC_Decimal_OverflowFromCorrectedResult checks that V is derived
// from the BCD-corrected result, not the raw binary sum: 0x50+0x50 sums
// to 0xA0 (bit 7 set, V would be true from the raw sum), but the
// decimal-corrected result is 0x00, which flips V false.
func Test_ADC_Decimal_OverflowFromCorrectedResult(t *testing.T) {
	cpu := NewCPU(nil)
	cpu.setFlag(flagD, true)
	cpu.a = 0x50
	cpu.opValue = 0x50
	cpu.opADC()
	assert.Equal(t, uint8(0x00), cpu.a)
	assert.True(t, cpu.getFlag(flagC))
	assert.False(t, cpu.getFlag(flagV))
}

// Test_NMI_DoesNotSetInterruptDisable checks that NMI, unlike IRQ,
// leaves the interrupt-disable flag untouched (spec.md §8's flag
// independence invariant).
func Test_NMI_DoesNotSetInterruptDisable(t *testing.T) {
	mem := make(fakeRAM, 0x10000)
	mem.Write8(0xFFFA, 0x00)
	mem.Write8(0xFFFB, 0x90) // NMI vector -> $9000

	cpu := NewCPU(mem)
	cpu.SetPC(0x1000)
	cpu.s = 0xFF
	cpu.setFlag(flagI, false)

	cpu.NMI()

	assert.Equal(t, uint16(0x9000), cpu.PC())
	assert.False(t, cpu.getFlag(flagI))
}

func Test_ReadModifyWrite_DoubleWrite(t *testing.T) {
	mem := new(memMock)
	mem.On("Write8", uint16(0xD019), uint8(0x81)).Return().Once()
	mem.On("Write8", uint16(0xD019), uint8(0x02)).Return().Once()

	cpu := NewCPU(mem)
	cpu.opAddr = 0xD019
	cpu.opValue = 0x81
	cpu.readModifyWrite(0xD019, 0x81, func(uint8) uint8 { return 0x02 })

	mem.AssertExpectations(t)
}

func Test_JSR_RTS_Symmetry(t *testing.T) {
	mem := make(fakeRAM, 0x10000)
	mem.Write8(0xFFFC, 0x00)
	mem.Write8(0xFFFD, 0x10)

	cpu := NewCPU(mem)
	cpu.Reset()
	cpu.SetPC(0x1000)
	cpu.s = 0xFF

	mem.Write8(0x1000, 0x20) // JSR $2000
	mem.Write8(0x1001, 0x00)
	mem.Write8(0x1002, 0x20)
	mem.Write8(0x2000, 0x60) // RTS

	assert.NoError(t, cpu.Step()) // JSR
	assert.Equal(t, uint16(0x2000), cpu.PC())
	assert.NoError(t, cpu.Step()) // RTS
	assert.Equal(t, uint16(0x1003), cpu.PC())
	assert.Equal(t, uint8(0xFF), cpu.SP())
}

func Test_UnknownOpcode_IsFatal(t *testing.T) {
	mem := make(fakeRAM, 0x10000)
	cpu := NewCPU(mem)
	cpu.SetPC(0x1000)
	mem.Write8(0x1000, 0x02) // undefined/illegal opcode

	err := cpu.Step()
	assert.Error(t, err)
	var unk *UnknownOpcodeError
	assert.ErrorAs(t, err, &unk)
}

// fakeRAM is a minimal flat ReadWriter used where a mock's call
// expectations would be too heavy for a multi-instruction sequence.
type fakeRAM []uint8

func (r fakeRAM) Read8(addr uint16) uint8    { return r[addr] }
func (r fakeRAM) Write8(addr uint16, v uint8) { r[addr] = v }
