package cpu

// TFR and EXG both read a post-byte with a source nibble and a destination
// nibble, each naming one of ten architectural registers. Widths can
// mismatch (an 8-bit register paired with a 16-bit one); the pinned rule is
// that an 8-to-16 move sets the high byte to $FF and a 16-to-8 move takes
// the low byte.

type tfrAccessor struct {
	width int
	get   func() uint16
	set   func(int)
}

func (c *CPU) tfrRegister(nibble uint8) (tfrAccessor, bool) {
	switch nibble {
	case 0x0:
		return tfrAccessor{16, c.Reg.D, c.Reg.SetD}, true
	case 0x1:
		return tfrAccessor{16, c.Reg.X.Get, func(v int) { c.Reg.X.Set(v) }}, true
	case 0x2:
		return tfrAccessor{16, c.Reg.Y.Get, func(v int) { c.Reg.Y.Set(v) }}, true
	case 0x3:
		return tfrAccessor{16, c.Reg.U.Get, func(v int) { c.Reg.U.Set(v) }}, true
	case 0x4:
		return tfrAccessor{16, c.Reg.S.Get, func(v int) { c.Reg.S.Set(v) }}, true
	case 0x5:
		return tfrAccessor{16, c.Reg.PC.Get, func(v int) { c.Reg.PC.Set(v) }}, true
	case 0x8:
		return tfrAccessor{8, func() uint16 { return uint16(c.Reg.A.Get()) }, func(v int) { c.Reg.A.Set(v) }}, true
	case 0x9:
		return tfrAccessor{8, func() uint16 { return uint16(c.Reg.B.Get()) }, func(v int) { c.Reg.B.Set(v) }}, true
	case 0xA:
		return tfrAccessor{8, func() uint16 { return uint16(c.Reg.CC.Byte()) }, func(v int) { c.Reg.CC.SetByte(uint8(v)) }}, true
	case 0xB:
		return tfrAccessor{8, func() uint16 { return uint16(c.Reg.DP.Get()) }, func(v int) { c.Reg.DP.Set(v) }}, true
	}
	return tfrAccessor{}, false
}

func (c *CPU) iTFR(ea uint16) (uint32, error) {
	pc := c.Reg.PC.Get()
	pb := c.fetchByte()
	src, srcOk := c.tfrRegister(pb >> 4)
	dst, dstOk := c.tfrRegister(pb & 0xF)
	if !srcOk || !dstOk {
		return 0, &InvalidRegisterFieldError{PC: pc, Postbyte: pb}
	}
	v := src.get()
	switch {
	case src.width == 16 && dst.width == 8:
		dst.set(int(v & 0xFF))
	case src.width == 8 && dst.width == 16:
		dst.set(int(0xFF00 | v))
	default:
		dst.set(int(v))
	}
	return 0, nil
}

func (c *CPU) iEXG(ea uint16) (uint32, error) {
	pc := c.Reg.PC.Get()
	pb := c.fetchByte()
	a, aOk := c.tfrRegister(pb >> 4)
	b, bOk := c.tfrRegister(pb & 0xF)
	if !aOk || !bOk {
		return 0, &InvalidRegisterFieldError{PC: pc, Postbyte: pb}
	}
	av, bv := a.get(), b.get()
	widen := func(dstWidth int, srcWidth int, v uint16) int {
		if srcWidth == 8 && dstWidth == 16 {
			return int(0xFF00 | v)
		}
		if srcWidth == 16 && dstWidth == 8 {
			return int(v & 0xFF)
		}
		return int(v)
	}
	a.set(widen(a.width, b.width, bv))
	b.set(widen(b.width, a.width, av))
	return 0, nil
}
