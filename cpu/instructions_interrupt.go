package cpu

// pushFullFrame stacks PC, U, Y, X, DP, B, A, CC onto S with E set, the
// frame every SWI variant, NMI, and IRQ push before vectoring. It reuses
// the PSHS register-priority table since the two are the same operation.
func (c *CPU) pushFullFrame() {
	c.Reg.CC.SetE(true)
	c.pushRegs(&c.Reg.S, 0xFF, c.stackRegSlots(&c.Reg.U))
}

// pushFirqFrame stacks only PC and CC with E clear, the abbreviated frame
// FIRQ uses so it can return faster than a full interrupt.
func (c *CPU) pushFirqFrame() {
	c.Reg.CC.SetE(false)
	c.Reg.S.Decrement(2)
	c.Mem.WriteWord(c.Reg.S.Get(), c.Reg.PC.Get())
	c.Reg.S.Decrement(1)
	c.Mem.WriteByte(c.Reg.S.Get(), c.Reg.CC.Byte())
}

func (c *CPU) iSWI(ea uint16) (uint32, error) {
	c.pushFullFrame()
	c.Reg.CC.SetI(true)
	c.Reg.CC.SetF(true)
	c.Reg.PC.Set(int(c.Mem.ReadWord(VectorSWI)))
	return 0, nil
}

// SWI2 and SWI3 stack a full frame like SWI but leave I/F untouched.
func (c *CPU) iSWI2(ea uint16) (uint32, error) {
	c.pushFullFrame()
	c.Reg.PC.Set(int(c.Mem.ReadWord(VectorSWI2)))
	return 0, nil
}

func (c *CPU) iSWI3(ea uint16) (uint32, error) {
	c.pushFullFrame()
	c.Reg.PC.Set(int(c.Mem.ReadWord(VectorSWI3)))
	return 0, nil
}

// RTI always pulls CC first. If E came back set, the rest of the full
// frame (A, B, DP, X, Y, U, PC) is restored too; otherwise only PC follows,
// matching the abbreviated frame FIRQ pushed.
func (c *CPU) iRTI(ea uint16) (uint32, error) {
	ccByte := c.Mem.ReadByte(c.Reg.S.Get())
	c.Reg.S.Increment(1)
	c.Reg.CC.SetByte(ccByte)

	if c.Reg.CC.E() {
		extra := c.pullRegs(&c.Reg.S, 0xFE, c.stackRegSlots(&c.Reg.U))
		return extra, nil
	}

	pc := c.Mem.ReadWord(c.Reg.S.Get())
	c.Reg.S.Increment(2)
	c.Reg.PC.Set(int(pc))
	return 0, nil
}

// CWAI ANDs CC with an immediate mask, stacks a full frame right away, and
// halts. When an enabled interrupt later arrives, the core vectors to it
// without pushing a second frame -- see dispatchInterrupts' waiting branch.
func (c *CPU) iCWAI(ea uint16) (uint32, error) {
	m := c.Mem.ReadByte(ea)
	c.Reg.CC.SetByte(c.Reg.CC.Byte() & m)
	c.pushFullFrame()
	c.waiting = true
	return 0, nil
}

// SYNC halts fetch/decode until any interrupt line -- masked or not -- is
// raised, then resumes at the next instruction boundary without stacking
// anything itself.
func (c *CPU) iSYNC(ea uint16) (uint32, error) {
	c.syncing = true
	return 0, nil
}
