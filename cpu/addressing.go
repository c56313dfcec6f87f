package cpu

// AddrMode identifies how an opcode's operand or effective address (EA) is
// resolved. Unlike the teacher's 6502 engine, which eagerly loads the
// fetched byte into c.M for every mode, the 6809 engine here resolves only
// an address (EA); the instruction handler itself decides whether to read
// or write 8 or 16 bits at that address, since the same addressing mode
// serves both 8-bit accumulator and 16-bit index-register opcodes.
type AddrMode int

const (
	Inherent AddrMode = iota
	Immediate8
	Immediate16
	Direct
	Extended
	Indexed
	Relative8
	Relative16
)

// fetchByte reads the byte at PC and advances PC by one.
func (c *CPU) fetchByte() uint8 {
	v := c.Mem.ReadByte(c.Reg.PC.Get())
	c.Reg.PC.Increment(1)
	return v
}

// fetchWord reads the big-endian word at PC and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	v := c.Mem.ReadWord(c.Reg.PC.Get())
	c.Reg.PC.Increment(2)
	return v
}

// regByRR maps the 2-bit RR field of an indexed post-byte to the selected
// pointer register: 00=X, 01=Y, 10=U, 11=S.
func (c *CPU) regByRR(rr uint8) *Register16 {
	switch rr & 0x3 {
	case 0:
		return &c.Reg.X
	case 1:
		return &c.Reg.Y
	case 2:
		return &c.Reg.U
	default:
		return &c.Reg.S
	}
}

// resolveAddress advances PC per mode and returns the effective address
// (meaningless for Inherent) along with any addressing-mode surcharge
// cycles. Inherent-mode and postbyte-bearing instructions (TFR/EXG,
// PSHS/PULS, TFR-style) resolve their own operands directly in their
// handlers and never call this for anything but Inherent.
func (c *CPU) resolveAddress(mode AddrMode) (ea uint16, extra uint32, err error) {
	switch mode {
	case Inherent:
		return 0, 0, nil

	case Immediate8:
		ea = c.Reg.PC.Get()
		c.Reg.PC.Increment(1)
		return ea, 0, nil

	case Immediate16:
		ea = c.Reg.PC.Get()
		c.Reg.PC.Increment(2)
		return ea, 0, nil

	case Direct:
		lo := c.fetchByte()
		ea = uint16(c.Reg.DP.Get())<<8 | uint16(lo)
		return ea, 0, nil

	case Extended:
		ea = c.fetchWord()
		return ea, 0, nil

	case Indexed:
		return c.resolveIndexed()

	case Relative8:
		offset := int8(c.fetchByte())
		ea = uint16(int32(c.Reg.PC.Get()) + int32(offset))
		return ea, 0, nil

	case Relative16:
		offset := int16(c.fetchWord())
		ea = uint16(int32(c.Reg.PC.Get()) + int32(offset))
		return ea, 0, nil
	}
	return 0, 0, nil
}

// resolveIndexed implements the 6809 indexed post-byte state machine of
// spec.md section 4.4. Auto-increment/decrement forms mutate the selected
// pointer register as a visible side effect before returning, per the
// design note that this cannot be deferred to the instruction handler.
func (c *CPU) resolveIndexed() (ea uint16, extra uint32, err error) {
	pbPC := c.Reg.PC.Get()
	postbyte := c.fetchByte()

	if postbyte&0x80 == 0 {
		// 0RRnnnnn: 5-bit signed constant offset from R.
		rr := (postbyte >> 5) & 0x3
		reg := c.regByRR(rr)
		offsetBits := postbyte & 0x1F
		offset := int32(int8(offsetBits<<3) >> 3) // sign-extend 5 bits
		ea = uint16(int32(reg.Get()) + offset)
		return ea, 1, nil
	}

	rr := (postbyte >> 5) & 0x3
	indirect := postbyte&0x10 != 0
	sub := postbyte & 0x0F

	applyIndirect := func(addr uint16, baseExtra uint32) (uint16, uint32) {
		if indirect {
			return c.Mem.ReadWord(addr), baseExtra + 3
		}
		return addr, baseExtra
	}

	switch sub {
	case 0x0: // ,R+
		if indirect {
			return 0, 0, &InvalidIndexedPostbyteError{PC: pbPC, Postbyte: postbyte}
		}
		reg := c.regByRR(rr)
		ea = reg.Get()
		reg.Increment(1)
		return ea, 2, nil

	case 0x1: // ,R++ / [,R++]
		reg := c.regByRR(rr)
		ea = reg.Get()
		reg.Increment(2)
		ea, extra = applyIndirect(ea, 3)
		return ea, extra, nil

	case 0x2: // ,-R
		if indirect {
			return 0, 0, &InvalidIndexedPostbyteError{PC: pbPC, Postbyte: postbyte}
		}
		reg := c.regByRR(rr)
		reg.Decrement(1)
		return reg.Get(), 2, nil

	case 0x3: // ,--R / [,--R]
		reg := c.regByRR(rr)
		reg.Decrement(2)
		ea, extra = applyIndirect(reg.Get(), 3)
		return ea, extra, nil

	case 0x4: // ,R / [,R]
		reg := c.regByRR(rr)
		ea, extra = applyIndirect(reg.Get(), 0)
		return ea, extra, nil

	case 0x5: // B,R / [B,R]
		reg := c.regByRR(rr)
		base := uint16(int32(reg.Get()) + int32(int8(c.Reg.B.Get())))
		ea, extra = applyIndirect(base, 1)
		return ea, extra, nil

	case 0x6: // A,R / [A,R]
		reg := c.regByRR(rr)
		base := uint16(int32(reg.Get()) + int32(int8(c.Reg.A.Get())))
		ea, extra = applyIndirect(base, 1)
		return ea, extra, nil

	case 0x8: // n8,R / [n8,R]
		off := int8(c.fetchByte())
		reg := c.regByRR(rr)
		base := uint16(int32(reg.Get()) + int32(off))
		ea, extra = applyIndirect(base, 1)
		return ea, extra, nil

	case 0x9: // n16,R / [n16,R]
		off := int16(c.fetchWord())
		reg := c.regByRR(rr)
		base := uint16(int32(reg.Get()) + int32(off))
		ea, extra = applyIndirect(base, 4)
		return ea, extra, nil

	case 0xB: // D,R / [D,R]
		reg := c.regByRR(rr)
		base := uint16(int32(reg.Get()) + int32(int16(c.Reg.D())))
		ea, extra = applyIndirect(base, 4)
		return ea, extra, nil

	case 0xC: // n8,PC / [n8,PC]
		off := int8(c.fetchByte())
		base := uint16(int32(c.Reg.PC.Get()) + int32(off))
		ea, extra = applyIndirect(base, 1)
		return ea, extra, nil

	case 0xD: // n16,PC / [n16,PC]
		off := int16(c.fetchWord())
		base := uint16(int32(c.Reg.PC.Get()) + int32(off))
		ea, extra = applyIndirect(base, 5)
		return ea, extra, nil

	case 0xF: // [n16] extended indirect (only valid form is indirect)
		if !indirect {
			return 0, 0, &InvalidIndexedPostbyteError{PC: pbPC, Postbyte: postbyte}
		}
		addr := c.fetchWord()
		return c.Mem.ReadWord(addr), 5, nil

	default: // 0x7, 0xA, 0xE reserved
		return 0, 0, &InvalidIndexedPostbyteError{PC: pbPC, Postbyte: postbyte}
	}
}
