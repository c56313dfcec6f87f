package cpu

// PSHS/PULS/PSHU/PULU push or pull any subset of the register file, named by
// a bit mask fetched as an immediate operand. The fixed priority order is
// PC, (the other stack pointer), Y, X, DP, B, A, CC -- PC pushed first so it
// ends up farthest from the stack pointer, CC pushed last so it ends up
// closest (and is therefore the first register RTI pulls back).

type regSlot struct {
	bit   uint8
	width int
	get   func() uint16
	set   func(int)
}

// stackRegSlots returns the eight slots in push-priority order. other is
// the register representing the "other" stack pointer bit: U's own slot
// list names S there, and vice versa.
func (c *CPU) stackRegSlots(other *Register16) []regSlot {
	return []regSlot{
		{0x80, 16, c.Reg.PC.Get, func(v int) { c.Reg.PC.Set(v) }},
		{0x40, 16, other.Get, func(v int) { other.Set(v) }},
		{0x20, 16, c.Reg.Y.Get, func(v int) { c.Reg.Y.Set(v) }},
		{0x10, 16, c.Reg.X.Get, func(v int) { c.Reg.X.Set(v) }},
		{0x08, 8, func() uint16 { return uint16(c.Reg.DP.Get()) }, func(v int) { c.Reg.DP.Set(v) }},
		{0x04, 8, func() uint16 { return uint16(c.Reg.B.Get()) }, func(v int) { c.Reg.B.Set(v) }},
		{0x02, 8, func() uint16 { return uint16(c.Reg.A.Get()) }, func(v int) { c.Reg.A.Set(v) }},
		{0x01, 8, func() uint16 { return uint16(c.Reg.CC.Byte()) }, func(v int) { c.Reg.CC.SetByte(uint8(v)) }},
	}
}

// pushRegs writes the masked slots onto sp in priority order, pre-
// decrementing before each write, and returns the surcharge cycles (1 per
// byte moved) beyond the opcode's own base cost.
func (c *CPU) pushRegs(sp *Register16, mask uint8, slots []regSlot) uint32 {
	var cycles uint32
	for _, r := range slots {
		if mask&r.bit == 0 {
			continue
		}
		if r.width == 16 {
			sp.Decrement(2)
			c.Mem.WriteWord(sp.Get(), r.get())
			cycles += 2
		} else {
			sp.Decrement(1)
			c.Mem.WriteByte(sp.Get(), uint8(r.get()))
			cycles++
		}
	}
	return cycles
}

// pullRegs restores the masked slots from sp in reverse priority order
// (CC first, PC last), post-incrementing after each read.
func (c *CPU) pullRegs(sp *Register16, mask uint8, slots []regSlot) uint32 {
	var cycles uint32
	for i := len(slots) - 1; i >= 0; i-- {
		r := slots[i]
		if mask&r.bit == 0 {
			continue
		}
		if r.width == 16 {
			v := c.Mem.ReadWord(sp.Get())
			sp.Increment(2)
			r.set(int(v))
			cycles += 2
		} else {
			v := c.Mem.ReadByte(sp.Get())
			sp.Increment(1)
			r.set(int(v))
			cycles++
		}
	}
	return cycles
}

func (c *CPU) iPSHS(ea uint16) (uint32, error) {
	mask := c.fetchByte()
	return c.pushRegs(&c.Reg.S, mask, c.stackRegSlots(&c.Reg.U)), nil
}

func (c *CPU) iPULS(ea uint16) (uint32, error) {
	mask := c.fetchByte()
	return c.pullRegs(&c.Reg.S, mask, c.stackRegSlots(&c.Reg.U)), nil
}

func (c *CPU) iPSHU(ea uint16) (uint32, error) {
	mask := c.fetchByte()
	return c.pushRegs(&c.Reg.U, mask, c.stackRegSlots(&c.Reg.S)), nil
}

func (c *CPU) iPULU(ea uint16) (uint32, error) {
	mask := c.fetchByte()
	return c.pullRegs(&c.Reg.U, mask, c.stackRegSlots(&c.Reg.S)), nil
}
