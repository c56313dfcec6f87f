package cpu

// NOP, MUL, SEX, ABX, DAA -- the handful of instructions that don't fit any
// other family.

func (c *CPU) iNOP(ea uint16) (uint32, error) { return 0, nil }

// MUL forms the unsigned 16-bit product of A and B into D. Z reflects the
// whole product; C takes bit 7 of the result's low byte (the new B).
func (c *CPU) iMUL(ea uint16) (uint32, error) {
	product := uint16(c.Reg.A.Get()) * uint16(c.Reg.B.Get())
	c.Reg.SetD(int(product))
	c.Reg.CC.SetZ(product == 0)
	c.Reg.CC.SetC(product&0x80 != 0)
	return 0, nil
}

// SEX sign-extends B into A, forming D from a signed 8-bit value.
func (c *CPU) iSEX(ea uint16) (uint32, error) {
	b := c.Reg.B.Get()
	if b&0x80 != 0 {
		c.Reg.A.Set(0xFF)
	} else {
		c.Reg.A.Set(0)
	}
	c.Reg.CC.SetNZ16(c.Reg.D())
	return 0, nil
}

// ABX adds B (unsigned) into X. No flags.
func (c *CPU) iABX(ea uint16) (uint32, error) {
	c.Reg.X.Set(int(c.Reg.X.Get()) + int(c.Reg.B.Get()))
	return 0, nil
}

// DAA adjusts A for BCD after an 8-bit add/adc, using the standard
// half-carry/carry correction table.
func (c *CPU) iDAA(ea uint16) (uint32, error) {
	a := c.Reg.A.Get()
	lo := a & 0x0F
	hi := (a >> 4) & 0x0F

	var correction uint8
	carryOut := c.Reg.CC.C()

	if c.Reg.CC.H() || lo > 9 {
		correction |= 0x06
	}
	if carryOut || hi > 9 || (hi == 9 && lo > 9) {
		correction |= 0x60
		carryOut = true
	}

	result := uint16(a) + uint16(correction)
	c.Reg.A.Set(int(uint8(result)))
	c.Reg.CC.SetNZ8(uint8(result))
	c.Reg.CC.SetC(carryOut || result > 0xFF)
	return 0, nil
}
