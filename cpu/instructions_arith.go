package cpu

// 8/16-bit arithmetic: ADD, ADC, SUB, SBC, CMP, NEG, INC, DEC, TST, CLR.

func (c *CPU) add8(reg *Register8, ea uint16, withCarry bool) (uint32, error) {
	a := reg.Get()
	b := c.Mem.ReadByte(ea)
	carryIn := uint16(0)
	if withCarry && c.Reg.CC.C() {
		carryIn = 1
	}
	wide := uint16(a) + uint16(b) + carryIn
	result := uint8(wide)
	c.Reg.CC.UpdateAdd8(a, b, result, wide)
	reg.Set(int(result))
	return 0, nil
}

func (c *CPU) sub8(reg *Register8, ea uint16, withCarry, store bool) (uint32, error) {
	a := reg.Get()
	b := c.Mem.ReadByte(ea)
	borrowIn := int(0)
	if withCarry && c.Reg.CC.C() {
		borrowIn = 1
	}
	result := uint8(int(a) - int(b) - borrowIn)
	c.Reg.CC.UpdateSub8(a, b, result)
	if store {
		reg.Set(int(result))
	}
	return 0, nil
}

func (c *CPU) iADDA(ea uint16) (uint32, error) { return c.add8(&c.Reg.A, ea, false) }
func (c *CPU) iADDB(ea uint16) (uint32, error) { return c.add8(&c.Reg.B, ea, false) }
func (c *CPU) iADCA(ea uint16) (uint32, error) { return c.add8(&c.Reg.A, ea, true) }
func (c *CPU) iADCB(ea uint16) (uint32, error) { return c.add8(&c.Reg.B, ea, true) }
func (c *CPU) iSUBA(ea uint16) (uint32, error) { return c.sub8(&c.Reg.A, ea, false, true) }
func (c *CPU) iSUBB(ea uint16) (uint32, error) { return c.sub8(&c.Reg.B, ea, false, true) }
func (c *CPU) iSBCA(ea uint16) (uint32, error) { return c.sub8(&c.Reg.A, ea, true, true) }
func (c *CPU) iSBCB(ea uint16) (uint32, error) { return c.sub8(&c.Reg.B, ea, true, true) }
func (c *CPU) iCMPA(ea uint16) (uint32, error) { return c.sub8(&c.Reg.A, ea, false, false) }
func (c *CPU) iCMPB(ea uint16) (uint32, error) { return c.sub8(&c.Reg.B, ea, false, false) }

func (c *CPU) iADDD(ea uint16) (uint32, error) {
	a := c.Reg.D()
	b := c.Mem.ReadWord(ea)
	wide := uint32(a) + uint32(b)
	result := uint16(wide)
	c.Reg.CC.UpdateAdd16(a, b, result, wide)
	c.Reg.SetD(int(result))
	return 0, nil
}

func (c *CPU) sub16(reg *Register16, ea uint16, store bool) (uint32, error) {
	a := reg.Get()
	b := c.Mem.ReadWord(ea)
	result := uint16(int32(a) - int32(b))
	c.Reg.CC.UpdateSub16(a, b, result)
	if store {
		reg.Set(int(result))
	}
	return 0, nil
}

func (c *CPU) iSUBD(ea uint16) (uint32, error) {
	a := c.Reg.D()
	b := c.Mem.ReadWord(ea)
	result := uint16(int32(a) - int32(b))
	c.Reg.CC.UpdateSub16(a, b, result)
	c.Reg.SetD(int(result))
	return 0, nil
}

func (c *CPU) iCMPX(ea uint16) (uint32, error) { return c.sub16(&c.Reg.X, ea, false) }
func (c *CPU) iCMPY(ea uint16) (uint32, error) { return c.sub16(&c.Reg.Y, ea, false) }
func (c *CPU) iCMPU(ea uint16) (uint32, error) { return c.sub16(&c.Reg.U, ea, false) }
func (c *CPU) iCMPS(ea uint16) (uint32, error) { return c.sub16(&c.Reg.S, ea, false) }

func (c *CPU) iCMPD(ea uint16) (uint32, error) {
	a := c.Reg.D()
	b := c.Mem.ReadWord(ea)
	result := uint16(int32(a) - int32(b))
	c.Reg.CC.UpdateSub16(a, b, result)
	return 0, nil
}

// negValue computes the two's-complement negation of v and updates flags
// per the sub8 formula with a=0, which reproduces the documented quirk that
// NEG $80 sets both V and C.
func (c *CPU) negValue(v uint8) uint8 {
	result := uint8(0 - int(v))
	c.Reg.CC.UpdateSub8(0, v, result)
	return result
}

func (c *CPU) iNEGA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.negValue(c.Reg.A.Get())))
	return 0, nil
}

func (c *CPU) iNEGB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.negValue(c.Reg.B.Get())))
	return 0, nil
}

func (c *CPU) iNEG(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.negValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) incValue(v uint8) uint8 {
	result := v + 1
	c.Reg.CC.UpdateIncNZ8(result)
	return result
}

func (c *CPU) decValue(v uint8) uint8 {
	result := v - 1
	c.Reg.CC.UpdateDecNZ8(result)
	return result
}

func (c *CPU) iINCA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.incValue(c.Reg.A.Get())))
	return 0, nil
}

func (c *CPU) iINCB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.incValue(c.Reg.B.Get())))
	return 0, nil
}

func (c *CPU) iINC(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.incValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iDECA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.decValue(c.Reg.A.Get())))
	return 0, nil
}

func (c *CPU) iDECB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.decValue(c.Reg.B.Get())))
	return 0, nil
}

func (c *CPU) iDEC(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.decValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iTSTA(ea uint16) (uint32, error) {
	c.Reg.CC.SetNZ8(c.Reg.A.Get())
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iTSTB(ea uint16) (uint32, error) {
	c.Reg.CC.SetNZ8(c.Reg.B.Get())
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iTST(ea uint16) (uint32, error) {
	c.Reg.CC.SetNZ8(c.Mem.ReadByte(ea))
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) clearFlags() {
	c.Reg.CC.SetN(false)
	c.Reg.CC.SetZ(true)
	c.Reg.CC.SetV(false)
	c.Reg.CC.SetC(false)
}

func (c *CPU) iCLRA(ea uint16) (uint32, error) {
	c.Reg.A.Set(0)
	c.clearFlags()
	return 0, nil
}

func (c *CPU) iCLRB(ea uint16) (uint32, error) {
	c.Reg.B.Set(0)
	c.clearFlags()
	return 0, nil
}

func (c *CPU) iCLR(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, 0)
	c.clearFlags()
	return 0, nil
}
