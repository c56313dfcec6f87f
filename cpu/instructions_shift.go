package cpu

// Shifts and rotates: ASL/LSL, LSR, ASR, ROL, ROR. Each operates on A, B, or
// a memory byte at ea, so the flag math lives in a *Value helper shared by
// all three forms.

// aslValue and the ROL overflow check both use the reference formula V =
// bit7 XOR bit6 of the operand before the shift.
func signChangeV(v uint8) bool {
	return (v>>7)&1 != (v>>6)&1
}

func (c *CPU) aslValue(v uint8) uint8 {
	carryOut := v&0x80 != 0
	result := v << 1
	c.Reg.CC.SetV(signChangeV(v))
	c.Reg.CC.SetC(carryOut)
	c.Reg.CC.SetNZ8(result)
	return result
}

func (c *CPU) lsrValue(v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := v >> 1
	c.Reg.CC.SetC(carryOut)
	c.Reg.CC.SetN(false)
	c.Reg.CC.SetZ(result == 0)
	return result
}

func (c *CPU) asrValue(v uint8) uint8 {
	carryOut := v&0x01 != 0
	result := (v >> 1) | (v & 0x80)
	c.Reg.CC.SetC(carryOut)
	c.Reg.CC.SetNZ8(result)
	return result
}

func (c *CPU) rolValue(v uint8) uint8 {
	var carryIn uint8
	if c.Reg.CC.C() {
		carryIn = 1
	}
	carryOut := v&0x80 != 0
	result := (v << 1) | carryIn
	c.Reg.CC.SetV(signChangeV(v))
	c.Reg.CC.SetC(carryOut)
	c.Reg.CC.SetNZ8(result)
	return result
}

func (c *CPU) rorValue(v uint8) uint8 {
	var carryIn uint8
	if c.Reg.CC.C() {
		carryIn = 0x80
	}
	carryOut := v&0x01 != 0
	result := (v >> 1) | carryIn
	c.Reg.CC.SetC(carryOut)
	c.Reg.CC.SetNZ8(result)
	return result
}

func (c *CPU) iASLA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.aslValue(c.Reg.A.Get())))
	return 0, nil
}
func (c *CPU) iASLB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.aslValue(c.Reg.B.Get())))
	return 0, nil
}
func (c *CPU) iASL(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.aslValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iLSRA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.lsrValue(c.Reg.A.Get())))
	return 0, nil
}
func (c *CPU) iLSRB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.lsrValue(c.Reg.B.Get())))
	return 0, nil
}
func (c *CPU) iLSR(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.lsrValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iASRA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.asrValue(c.Reg.A.Get())))
	return 0, nil
}
func (c *CPU) iASRB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.asrValue(c.Reg.B.Get())))
	return 0, nil
}
func (c *CPU) iASR(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.asrValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iROLA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.rolValue(c.Reg.A.Get())))
	return 0, nil
}
func (c *CPU) iROLB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.rolValue(c.Reg.B.Get())))
	return 0, nil
}
func (c *CPU) iROL(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.rolValue(c.Mem.ReadByte(ea)))
	return 0, nil
}

func (c *CPU) iRORA(ea uint16) (uint32, error) {
	c.Reg.A.Set(int(c.rorValue(c.Reg.A.Get())))
	return 0, nil
}
func (c *CPU) iRORB(ea uint16) (uint32, error) {
	c.Reg.B.Set(int(c.rorValue(c.Reg.B.Get())))
	return 0, nil
}
func (c *CPU) iROR(ea uint16) (uint32, error) {
	c.Mem.WriteByte(ea, c.rorValue(c.Mem.ReadByte(ea)))
	return 0, nil
}
