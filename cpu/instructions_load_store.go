package cpu

// Load/store handlers. Every load clears V and sets N/Z from the loaded
// value; every store does the same from the stored value -- the 6809
// reference updates CC on ST* exactly as if the value had passed through the
// accumulator.

func (c *CPU) ld8(reg *Register8, ea uint16) (uint32, error) {
	v := c.Mem.ReadByte(ea)
	reg.Set(int(v))
	c.Reg.CC.SetNZ8(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) ld16(reg *Register16, ea uint16) (uint32, error) {
	v := c.Mem.ReadWord(ea)
	reg.Set(int(v))
	c.Reg.CC.SetNZ16(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) st8(reg *Register8, ea uint16) (uint32, error) {
	v := reg.Get()
	c.Mem.WriteByte(ea, v)
	c.Reg.CC.SetNZ8(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) st16(reg *Register16, ea uint16) (uint32, error) {
	v := reg.Get()
	c.Mem.WriteWord(ea, v)
	c.Reg.CC.SetNZ16(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iLDA(ea uint16) (uint32, error) { return c.ld8(&c.Reg.A, ea) }
func (c *CPU) iLDB(ea uint16) (uint32, error) { return c.ld8(&c.Reg.B, ea) }
func (c *CPU) iSTA(ea uint16) (uint32, error) { return c.st8(&c.Reg.A, ea) }
func (c *CPU) iSTB(ea uint16) (uint32, error) { return c.st8(&c.Reg.B, ea) }

func (c *CPU) iLDX(ea uint16) (uint32, error) { return c.ld16(&c.Reg.X, ea) }
func (c *CPU) iLDY(ea uint16) (uint32, error) { return c.ld16(&c.Reg.Y, ea) }
func (c *CPU) iLDU(ea uint16) (uint32, error) { return c.ld16(&c.Reg.U, ea) }
func (c *CPU) iLDS(ea uint16) (uint32, error) { return c.ld16(&c.Reg.S, ea) }
func (c *CPU) iSTX(ea uint16) (uint32, error) { return c.st16(&c.Reg.X, ea) }
func (c *CPU) iSTY(ea uint16) (uint32, error) { return c.st16(&c.Reg.Y, ea) }
func (c *CPU) iSTU(ea uint16) (uint32, error) { return c.st16(&c.Reg.U, ea) }
func (c *CPU) iSTS(ea uint16) (uint32, error) { return c.st16(&c.Reg.S, ea) }

func (c *CPU) iLDD(ea uint16) (uint32, error) {
	v := c.Mem.ReadWord(ea)
	c.Reg.SetD(int(v))
	c.Reg.CC.SetNZ16(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iSTD(ea uint16) (uint32, error) {
	v := c.Reg.D()
	c.Mem.WriteWord(ea, v)
	c.Reg.CC.SetNZ16(v)
	c.Reg.CC.SetV(false)
	return 0, nil
}

// iLEAX and iLEAY only affect Z -- DP/X/Y/U/S registers carry no sign, so N
// and V are left alone by the reference.
func (c *CPU) iLEAX(ea uint16) (uint32, error) { return c.leaXY(&c.Reg.X, ea) }
func (c *CPU) iLEAY(ea uint16) (uint32, error) { return c.leaXY(&c.Reg.Y, ea) }

// iLEAU and iLEAS affect no flags at all.
func (c *CPU) iLEAU(ea uint16) (uint32, error) { return c.leaUS(&c.Reg.U, ea) }
func (c *CPU) iLEAS(ea uint16) (uint32, error) { return c.leaUS(&c.Reg.S, ea) }

func (c *CPU) leaXY(reg *Register16, ea uint16) (uint32, error) {
	reg.Set(int(ea))
	c.Reg.CC.SetZ(ea == 0)
	return 0, nil
}

func (c *CPU) leaUS(reg *Register16, ea uint16) (uint32, error) {
	reg.Set(int(ea))
	return 0, nil
}
