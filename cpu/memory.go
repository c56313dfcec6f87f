package cpu

// Memory is the narrow contract the CPU depends on but does not own. Any
// object satisfying it -- including an MMIO-routing wrapper around several
// peripherals -- can drive the core. mem.Bus is the reference
// implementation used by tests and the debug TUI.
type Memory interface {
	ReadByte(addr uint16) uint8
	ReadWord(addr uint16) uint16
	WriteByte(addr uint16, v uint8)
	WriteWord(addr uint16, v uint16)
	Load(addr uint16, bytes []byte)
}

// RegisterSnapshot is a plain value copy of every architectural register,
// used for trace callbacks and for SaveState/LoadState determinism tests.
type RegisterSnapshot struct {
	A, B, DP, CC   uint8
	X, Y, U, S, PC uint16
}

// SaveState returns a snapshot of the current register file.
func (c *CPU) SaveState() RegisterSnapshot {
	return RegisterSnapshot{
		A:  c.Reg.A.Get(),
		B:  c.Reg.B.Get(),
		DP: c.Reg.DP.Get(),
		CC: c.Reg.CC.Byte(),
		X:  c.Reg.X.Get(),
		Y:  c.Reg.Y.Get(),
		U:  c.Reg.U.Get(),
		S:  c.Reg.S.Get(),
		PC: c.Reg.PC.Get(),
	}
}

// LoadState applies a previously saved snapshot. Each field still passes
// through the normal wrapping setters, so an out-of-range field wraps
// rather than panics.
func (c *CPU) LoadState(s RegisterSnapshot) {
	c.Reg.A.Set(int(s.A))
	c.Reg.B.Set(int(s.B))
	c.Reg.DP.Set(int(s.DP))
	c.Reg.CC.SetByte(s.CC)
	c.Reg.X.Set(int(s.X))
	c.Reg.Y.Set(int(s.Y))
	c.Reg.U.Set(int(s.U))
	c.Reg.S.Set(int(s.S))
	c.Reg.PC.Set(int(s.PC))
}
