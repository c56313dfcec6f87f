package cpu

// Conditional branches share one evaluator; short forms (Relative8) never
// add cycles for the branch itself, long forms (Relative16) add 1 cycle
// when taken, on top of their larger base cost in the opcode table.

func (c *CPU) takeBranch(taken bool, ea uint16, long bool) (uint32, error) {
	if !taken {
		return 0, nil
	}
	c.Reg.PC.Set(int(ea))
	if long {
		return 1, nil
	}
	return 0, nil
}

func (c *CPU) iBRA(ea uint16) (uint32, error) { return c.takeBranch(true, ea, false) }
func (c *CPU) iBRN(ea uint16) (uint32, error) { return c.takeBranch(false, ea, false) }
func (c *CPU) iLBRA(ea uint16) (uint32, error) {
	c.Reg.PC.Set(int(ea))
	return 0, nil
}
func (c *CPU) iLBRN(ea uint16) (uint32, error) { return 0, nil }

func (c *CPU) iBHI(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(!cc.C() && !cc.Z(), ea, false)
}
func (c *CPU) iBLS(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.C() || cc.Z(), ea, false)
}
func (c *CPU) iBCC(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.C(), ea, false) }
func (c *CPU) iBCS(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.C(), ea, false) }
func (c *CPU) iBNE(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.Z(), ea, false) }
func (c *CPU) iBEQ(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.Z(), ea, false) }
func (c *CPU) iBVC(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.V(), ea, false) }
func (c *CPU) iBVS(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.V(), ea, false) }
func (c *CPU) iBPL(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.N(), ea, false) }
func (c *CPU) iBMI(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.N(), ea, false) }
func (c *CPU) iBGE(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.N() == cc.V(), ea, false)
}
func (c *CPU) iBLT(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.N() != cc.V(), ea, false)
}
func (c *CPU) iBGT(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(!cc.Z() && cc.N() == cc.V(), ea, false)
}
func (c *CPU) iBLE(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.Z() || cc.N() != cc.V(), ea, false)
}

func (c *CPU) iLBHI(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(!cc.C() && !cc.Z(), ea, true)
}
func (c *CPU) iLBLS(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.C() || cc.Z(), ea, true)
}
func (c *CPU) iLBCC(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.C(), ea, true) }
func (c *CPU) iLBCS(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.C(), ea, true) }
func (c *CPU) iLBNE(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.Z(), ea, true) }
func (c *CPU) iLBEQ(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.Z(), ea, true) }
func (c *CPU) iLBVC(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.V(), ea, true) }
func (c *CPU) iLBVS(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.V(), ea, true) }
func (c *CPU) iLBPL(ea uint16) (uint32, error) { return c.takeBranch(!c.Reg.CC.N(), ea, true) }
func (c *CPU) iLBMI(ea uint16) (uint32, error) { return c.takeBranch(c.Reg.CC.N(), ea, true) }
func (c *CPU) iLBGE(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.N() == cc.V(), ea, true)
}
func (c *CPU) iLBLT(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.N() != cc.V(), ea, true)
}
func (c *CPU) iLBGT(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(!cc.Z() && cc.N() == cc.V(), ea, true)
}
func (c *CPU) iLBLE(ea uint16) (uint32, error) {
	cc := &c.Reg.CC
	return c.takeBranch(cc.Z() || cc.N() != cc.V(), ea, true)
}

// JMP sets PC directly with no stacking.
func (c *CPU) iJMP(ea uint16) (uint32, error) {
	c.Reg.PC.Set(int(ea))
	return 0, nil
}

// JSR and BSR/LBSR push the return address (PC already advanced past the
// instruction's operand bytes) onto S, then jump.
func (c *CPU) callSubroutine(ea uint16) (uint32, error) {
	c.Reg.S.Decrement(2)
	c.Mem.WriteWord(c.Reg.S.Get(), c.Reg.PC.Get())
	c.Reg.PC.Set(int(ea))
	return 0, nil
}

func (c *CPU) iJSR(ea uint16) (uint32, error)  { return c.callSubroutine(ea) }
func (c *CPU) iBSR(ea uint16) (uint32, error)  { return c.callSubroutine(ea) }
func (c *CPU) iLBSR(ea uint16) (uint32, error) { return c.callSubroutine(ea) }

func (c *CPU) iRTS(ea uint16) (uint32, error) {
	v := c.Mem.ReadWord(c.Reg.S.Get())
	c.Reg.S.Increment(2)
	c.Reg.PC.Set(int(v))
	return 0, nil
}
