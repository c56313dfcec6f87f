package cpu

// Bitwise logic: AND, OR, EOR, BIT, COM, plus the CC-specific ANDCC/ORCC.

func (c *CPU) andReg(reg *Register8, ea uint16) (uint32, error) {
	result := reg.Get() & c.Mem.ReadByte(ea)
	reg.Set(int(result))
	c.Reg.CC.SetNZ8(result)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) orReg(reg *Register8, ea uint16) (uint32, error) {
	result := reg.Get() | c.Mem.ReadByte(ea)
	reg.Set(int(result))
	c.Reg.CC.SetNZ8(result)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) eorReg(reg *Register8, ea uint16) (uint32, error) {
	result := reg.Get() ^ c.Mem.ReadByte(ea)
	reg.Set(int(result))
	c.Reg.CC.SetNZ8(result)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iANDA(ea uint16) (uint32, error) { return c.andReg(&c.Reg.A, ea) }
func (c *CPU) iANDB(ea uint16) (uint32, error) { return c.andReg(&c.Reg.B, ea) }
func (c *CPU) iORA(ea uint16) (uint32, error)  { return c.orReg(&c.Reg.A, ea) }
func (c *CPU) iORB(ea uint16) (uint32, error)  { return c.orReg(&c.Reg.B, ea) }
func (c *CPU) iEORA(ea uint16) (uint32, error) { return c.eorReg(&c.Reg.A, ea) }
func (c *CPU) iEORB(ea uint16) (uint32, error) { return c.eorReg(&c.Reg.B, ea) }

func (c *CPU) iANDCC(ea uint16) (uint32, error) {
	m := c.Mem.ReadByte(ea)
	c.Reg.CC.SetByte(c.Reg.CC.Byte() & m)
	return 0, nil
}

func (c *CPU) iORCC(ea uint16) (uint32, error) {
	m := c.Mem.ReadByte(ea)
	c.Reg.CC.SetByte(c.Reg.CC.Byte() | m)
	return 0, nil
}

func (c *CPU) bitReg(reg *Register8, ea uint16) (uint32, error) {
	result := reg.Get() & c.Mem.ReadByte(ea)
	c.Reg.CC.SetNZ8(result)
	c.Reg.CC.SetV(false)
	return 0, nil
}

func (c *CPU) iBITA(ea uint16) (uint32, error) { return c.bitReg(&c.Reg.A, ea) }
func (c *CPU) iBITB(ea uint16) (uint32, error) { return c.bitReg(&c.Reg.B, ea) }

// comValue is the one's complement. The reference always sets C on COM,
// unlike NEG which sets it conditionally.
func (c *CPU) comValue(v uint8) uint8 {
	result := ^v
	c.Reg.CC.SetNZ8(result)
	c.Reg.CC.SetV(false)
	c.Reg.CC.SetC(true)
	return result
}

func (c *CPU) iCOMA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.comValue(c.Reg.A.Get())))
	return 0, nil
}

func (c *CPU) iCOMB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.comValue(c.Reg.B.Get())))
	return 0, nil
}

func (c *CPU) iCOM(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.comValue(c.Mem.ReadByte(ea)))
	return 0, nil
}
