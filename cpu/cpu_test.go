package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m6809/mem"
)

func newTestCPU() (*CPU, *mem.Bus) {
	bus := &mem.Bus{}
	return New(bus), bus
}

func TestReset(t *testing.T) {
	_, bus := newTestCPU()
	c := New(bus)
	bus.WriteWord(VectorReset, 0x8000)
	c.Reg.DP.Set(0x12)
	c.Reset()

	assert.Equal(t, uint16(0x8000), c.Reg.PC.Get())
	assert.Equal(t, uint8(0), c.Reg.DP.Get())
	assert.True(t, c.Reg.CC.I())
	assert.True(t, c.Reg.CC.F())
}

func TestRegisterDAliasesAAndB(t *testing.T) {
	var r Registers
	r.SetD(0x1234)
	assert.Equal(t, uint8(0x12), r.A.Get())
	assert.Equal(t, uint8(0x34), r.B.Get())
	assert.Equal(t, uint16(0x1234), r.D())

	r.A.Set(0xFF)
	r.B.Set(0x01)
	assert.Equal(t, uint16(0xFF01), r.D())
}

func TestRegister16WrapsModulo65536(t *testing.T) {
	var r Register16
	r.Set(0xFFFF)
	r.Increment(1)
	assert.Equal(t, uint16(0), r.Get())

	r.Decrement(1)
	assert.Equal(t, uint16(0xFFFF), r.Get())
}

func TestLDAImmediateSetsNZAndClearsV(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x2000)
	c.Reg.CC.SetV(true)
	bus.Load(0x2000, []byte{0x86, 0x80}) // LDA #$80

	cycles, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint32(2), cycles)
	assert.Equal(t, uint8(0x80), c.Reg.A.Get())
	assert.True(t, c.Reg.CC.N())
	assert.False(t, c.Reg.CC.Z())
	assert.False(t, c.Reg.CC.V())
}

// TestSUBAOverflow exercises SUBA $7F - $FF, which wraps to $80 and sets V
// because the result's sign disagrees with what a true subtraction of a
// positive minuend by a negative subtrahend should produce.
func TestSUBAOverflow(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x3000)
	c.Reg.A.Set(0x7F)
	bus.Load(0x3000, []byte{0x80, 0xFF}) // SUBA #$FF

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.Reg.A.Get())
	assert.True(t, c.Reg.CC.V())
	assert.True(t, c.Reg.CC.N())
	assert.False(t, c.Reg.CC.Z())
}

// TestADDAHalfCarry checks H is set when the low nibbles overflow even if
// the full byte does not.
func TestADDAHalfCarry(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x3000)
	c.Reg.A.Set(0x0F)
	bus.Load(0x3000, []byte{0x8B, 0x01}) // ADDA #$01

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x10), c.Reg.A.Get())
	assert.True(t, c.Reg.CC.H())
	assert.False(t, c.Reg.CC.C())
}

// TestADDACarryWrap checks C is set (and H too) on a full-byte wraparound.
func TestADDACarryWrap(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x3000)
	c.Reg.A.Set(0xFF)
	bus.Load(0x3000, []byte{0x8B, 0x01}) // ADDA #$01

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), c.Reg.A.Get())
	assert.True(t, c.Reg.CC.C())
	assert.True(t, c.Reg.CC.H())
	assert.True(t, c.Reg.CC.Z())
}

// TestTFRWidthMismatch pins the 8-to-16 and 16-to-8 width rule: an 8-bit
// source fills the destination's high byte with $FF; a 16-bit source is
// truncated to its low byte.
func TestTFRWidthMismatch(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x4000)
	c.Reg.A.Set(0x42)
	bus.Load(0x4000, []byte{0x1F, 0x81}) // TFR A,X

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xFF42), c.Reg.X.Get())

	c.Reg.PC.Set(0x4000)
	c.Reg.Y.Set(0xBEEF)
	bus.Load(0x4000, []byte{0x1F, 0x29}) // TFR Y,B
	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xEF), c.Reg.B.Get())
}

// TestPSHSPULSRoundTripD pushes D (B then A, 2 bytes via PSHS) and pulls it
// back into A and B after clearing them, confirming the stack is a true LIFO
// and that S is restored to its starting point.
func TestPSHSPULSRoundTripD(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.S.Set(0x5000)
	c.Reg.A.Set(0x11)
	c.Reg.B.Set(0x22)
	c.Reg.PC.Set(0x6000)
	bus.Load(0x6000, []byte{
		0x34, 0x06, // PSHS B,A
		0x35, 0x06, // PULS B,A
	})

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x4FFE), c.Reg.S.Get())
	assert.Equal(t, uint8(0x22), bus.ReadByte(0x4FFF)) // B pushed first, farther from S
	assert.Equal(t, uint8(0x11), bus.ReadByte(0x4FFE)) // A pushed last, closest to S

	c.Reg.A.Set(0)
	c.Reg.B.Set(0)
	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x5000), c.Reg.S.Get())
	assert.Equal(t, uint8(0x11), c.Reg.A.Get())
	assert.Equal(t, uint8(0x22), c.Reg.B.Get())
}

// TestINCOverflowBoundary checks the documented V-set boundary of INC: only
// the 0x7F -> 0x80 wrap sets V.
func TestINCOverflowBoundary(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0x7000)
	c.Reg.A.Set(0x7F)
	bus.Load(0x7000, []byte{0x4C}) // INCA

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.Reg.A.Get())
	assert.True(t, c.Reg.CC.V())
	assert.True(t, c.Reg.CC.N())

	c.Reg.PC.Set(0x7000)
	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x81), c.Reg.A.Get())
	assert.False(t, c.Reg.CC.V())
}

func TestIndexedAutoIncrementAndDecrement(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.X.Set(0x8000)
	c.Reg.PC.Set(0x9000)
	bus.WriteByte(0x8000, 0x55)
	bus.Load(0x9000, []byte{0xA6, 0x80}) // LDA ,X+

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x55), c.Reg.A.Get())
	assert.Equal(t, uint16(0x8001), c.Reg.X.Get())

	c.Reg.X.Set(0x8001)
	c.Reg.PC.Set(0x9000)
	bus.Load(0x9000, []byte{0xA6, 0x82}) // LDA ,-X
	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x55), c.Reg.A.Get())
	assert.Equal(t, uint16(0x8000), c.Reg.X.Get())
}

func TestIndexedExtendedIndirect(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0xA000)
	bus.WriteWord(0x3000, 0x4000)
	bus.WriteByte(0x4000, 0x99)
	bus.Load(0xA000, []byte{0xA6, 0x9F, 0x30, 0x00}) // LDA [$3000]

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0x99), c.Reg.A.Get())
}

func TestIllegalOpcodeReturnsError(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0xB000)
	bus.WriteByte(0xB000, 0x01) // reserved page-0 byte

	_, err := c.Step()
	assert.Error(t, err)
	var ioErr *IllegalOpcodeError
	assert.ErrorAs(t, err, &ioErr)
}

func TestInvalidIndexedPostbyteReturnsError(t *testing.T) {
	c, bus := newTestCPU()
	c.Reg.PC.Set(0xB000)
	bus.Load(0xB000, []byte{0xA6, 0x87}) // LDA with reserved indexed sub-mode $7

	_, err := c.Step()
	assert.Error(t, err)
	var pbErr *InvalidIndexedPostbyteError
	assert.ErrorAs(t, err, &pbErr)
}

// TestIRQRespectsMask confirms IRQ is deferred while CC.I is set and
// serviced (with a full stacked frame) once cleared.
func TestIRQRespectsMask(t *testing.T) {
	c, bus := newTestCPU()
	bus.WriteWord(VectorIRQ, 0xC000)
	c.Reg.PC.Set(0x9000)
	c.Reg.S.Set(0x7FFF)
	c.Reg.CC.SetI(true)
	c.RaiseIRQ()
	bus.Load(0x9000, []byte{0x12}) // NOP

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x9001), c.Reg.PC.Get()) // IRQ still masked, NOP ran

	c.Reg.CC.SetI(false)
	c.RaiseIRQ()
	_, err = c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xC000), c.Reg.PC.Get())
	assert.True(t, c.Reg.CC.I())
	assert.True(t, c.Reg.CC.E())
}

func TestNMIAlwaysServiced(t *testing.T) {
	c, bus := newTestCPU()
	bus.WriteWord(VectorNMI, 0xD000)
	c.Reg.PC.Set(0x9000)
	c.Reg.S.Set(0x7FFF)
	c.Reg.CC.SetI(true)
	c.Reg.CC.SetF(true)
	c.RaiseNMI()

	_, err := c.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xD000), c.Reg.PC.Get())
}

func TestSaveLoadStateRoundTrip(t *testing.T) {
	c, _ := newTestCPU()
	c.Reg.A.Set(0x11)
	c.Reg.B.Set(0x22)
	c.Reg.X.Set(0x3344)
	c.Reg.Y.Set(0x5566)
	c.Reg.U.Set(0x7788)
	c.Reg.S.Set(0x99AA)
	c.Reg.DP.Set(0xBB)
	c.Reg.CC.SetByte(0xCC)
	c.Reg.PC.Set(0xDDEE)

	snap := c.SaveState()

	other, _ := newTestCPU()
	other.LoadState(snap)
	assert.Equal(t, c.Reg.A.Get(), other.Reg.A.Get())
	assert.Equal(t, c.Reg.B.Get(), other.Reg.B.Get())
	assert.Equal(t, c.Reg.X.Get(), other.Reg.X.Get())
	assert.Equal(t, c.Reg.Y.Get(), other.Reg.Y.Get())
	assert.Equal(t, c.Reg.U.Get(), other.Reg.U.Get())
	assert.Equal(t, c.Reg.S.Get(), other.Reg.S.Get())
	assert.Equal(t, c.Reg.DP.Get(), other.Reg.DP.Get())
	assert.Equal(t, c.Reg.CC.Byte(), other.Reg.CC.Byte())
	assert.Equal(t, c.Reg.PC.Get(), other.Reg.PC.Get())
}
