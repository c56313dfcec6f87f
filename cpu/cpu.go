// Package cpu implements the Motorola 6809 8/16-bit microprocessor core: its
// register file, condition-code algebra, addressing-mode resolution, opcode
// table, instruction semantics, and interrupt dispatch. It knows nothing
// about what backs memory, what peripherals exist, or how a host schedules
// Step calls -- those are the caller's concern.
package cpu

import "m6809/mem"

// Addresses of the eight entries of the $FFF0-$FFFF vector table, fixed by
// the chip.
const (
	VectorReserved uint16 = 0xFFF0
	VectorSWI3     uint16 = 0xFFF2
	VectorSWI2     uint16 = 0xFFF4
	VectorFIRQ     uint16 = 0xFFF6
	VectorIRQ      uint16 = 0xFFF8
	VectorSWI      uint16 = 0xFFFA
	VectorNMI      uint16 = 0xFFFC
	VectorReset    uint16 = 0xFFFE
)

// TraceHook is invoked once per dispatched instruction, just before the
// handler runs, with the instruction's address, the bytes PC advanced over
// during opcode fetch and operand resolution (post-bytes a handler fetches
// itself are not included), the mnemonic, the register file as it stands
// after operand resolution (PC past the operand bytes, any indexed
// auto-increment/decrement already applied), and the running cycle total.
type TraceHook func(pc uint16, bytes []uint8, mnemonic string, regs RegisterSnapshot, cyclesSoFar uint32)

// CPU is the 6809 execution engine. It holds no reference to a concrete bus
// implementation -- only to the Memory interface -- so the same engine can
// be driven against mem.Bus, a test double, or an MMIO-routing wrapper.
type CPU struct {
	Reg Registers
	Mem Memory

	// Trace, when set, is called once per instruction dispatched by Step.
	Trace TraceHook

	nmiPending  bool
	firqPending bool
	irqPending  bool

	waiting bool // CWAI: frame already stacked, waiting for an enabled interrupt
	syncing bool // SYNC: waiting for any interrupt line, nothing stacked

	cycles uint32 // running total across the CPU's lifetime
}

// New returns a CPU driven against the given memory, with registers at their
// zero values. Call Reset to load PC from the reset vector before Step.
func New(memory Memory) *CPU {
	return &CPU{Mem: memory}
}

// NewWithBus is a convenience constructor for the common case of driving the
// CPU against the package's own flat 64 kB bus.
func NewWithBus(bus *mem.Bus) *CPU {
	return New(bus)
}

// Reset loads PC from the reset vector, clears DP, and masks both FIRQ and
// IRQ, the way the real chip does when RESET is asserted.
func (c *CPU) Reset() {
	c.Reg = Registers{}
	c.Reg.DP.Set(0)
	c.Reg.CC.SetI(true)
	c.Reg.CC.SetF(true)
	c.Reg.PC.Set(int(c.Mem.ReadWord(VectorReset)))
	c.nmiPending = false
	c.firqPending = false
	c.irqPending = false
	c.waiting = false
	c.syncing = false
	c.cycles = 0
}

// RaiseNMI latches a non-maskable interrupt request. NMI is serviced at the
// next instruction boundary regardless of CC.F/CC.I.
func (c *CPU) RaiseNMI() { c.nmiPending = true }

// RaiseFIRQ latches a fast interrupt request. Serviced at the next
// instruction boundary if CC.F is clear.
func (c *CPU) RaiseFIRQ() { c.firqPending = true }

// RaiseIRQ latches a normal interrupt request. Serviced at the next
// instruction boundary if CC.I is clear.
func (c *CPU) RaiseIRQ() { c.irqPending = true }

// Step executes exactly one instruction, or services one pending interrupt,
// and returns the number of clock cycles it consumed. Interrupts are only
// ever recognized at an instruction boundary -- never mid-decode -- per the
// core's atomic-per-Step execution model.
func (c *CPU) Step() (uint32, error) {
	if serviced, cycles, err := c.dispatchInterrupts(); serviced {
		return cycles, err
	}

	if c.waiting || c.syncing {
		// No interrupt was ready to service this boundary; burn one idle
		// cycle rather than fetch, the way the real chip holds its bus.
		return 1, nil
	}

	pc := c.Reg.PC.Get()
	op, _, err := c.fetchOpcode()
	if err != nil {
		return 0, err
	}

	ea, extra, err := c.resolveAddress(op.Mode)
	if err != nil {
		return 0, err
	}

	if c.Trace != nil {
		length := c.Reg.PC.Get() - pc
		bytes := make([]uint8, length)
		for i := range bytes {
			bytes[i] = c.Mem.ReadByte(pc + uint16(i))
		}
		c.Trace(pc, bytes, op.Mnemonic, c.SaveState(), c.cycles)
	}

	handlerExtra, err := op.Handler(c, ea)
	if err != nil {
		return 0, err
	}

	cycles := op.Cycles + extra + handlerExtra
	c.cycles += cycles
	return cycles, nil
}

// Run steps the CPU until it has consumed at least budget cycles, or an
// instruction returns an error, whichever comes first. It returns the total
// number of cycles actually consumed, which may exceed budget since Step
// never interrupts an in-flight instruction.
func (c *CPU) Run(budget uint32) (uint32, error) {
	var total uint32
	for total < budget {
		n, err := c.Step()
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// fetchOpcode reads one opcode, following the $10/$11 page-prefix bytes,
// and looks it up in the opcode table. The second result holds every byte
// consumed (prefix plus opcode byte); for an unmapped key it is nil and the
// same bytes are carried in the IllegalOpcodeError instead.
func (c *CPU) fetchOpcode() (opcodeEntry, []uint8, error) {
	pc := c.Reg.PC.Get()
	b := c.fetchByte()
	key := uint16(b)
	raw := []uint8{b}

	if b == 0x10 || b == 0x11 {
		b2 := c.fetchByte()
		raw = append(raw, b2)
		if b == 0x10 {
			key = 0x1000 | uint16(b2)
		} else {
			key = 0x1100 | uint16(b2)
		}
	}

	op, ok := opcodes[key]
	if !ok {
		return opcodeEntry{}, nil, &IllegalOpcodeError{PC: pc, Bytes: raw}
	}
	return op, raw, nil
}

// dispatchInterrupts services at most one pending interrupt in priority
// order NMI > FIRQ > IRQ. It returns serviced=true if it consumed the Step
// call, along with the cycles spent and any error.
func (c *CPU) dispatchInterrupts() (serviced bool, cycles uint32, err error) {
	switch {
	case c.nmiPending:
		c.nmiPending = false
		if c.waiting {
			c.waiting = false // frame already stacked by CWAI
		} else {
			c.pushFullFrame()
		}
		c.syncing = false
		c.Reg.CC.SetI(true)
		c.Reg.CC.SetF(true)
		c.Reg.PC.Set(int(c.Mem.ReadWord(VectorNMI)))
		c.cycles += 19
		return true, 19, nil

	case c.firqPending && !c.Reg.CC.F():
		c.firqPending = false
		if c.waiting {
			c.waiting = false
		} else {
			c.pushFirqFrame()
		}
		c.syncing = false
		c.Reg.CC.SetF(true)
		c.Reg.CC.SetI(true)
		c.Reg.PC.Set(int(c.Mem.ReadWord(VectorFIRQ)))
		c.cycles += 10
		return true, 10, nil

	case c.irqPending && !c.Reg.CC.I():
		c.irqPending = false
		if c.waiting {
			c.waiting = false
		} else {
			c.pushFullFrame()
		}
		c.syncing = false
		c.Reg.CC.SetI(true)
		c.Reg.PC.Set(int(c.Mem.ReadWord(VectorIRQ)))
		c.cycles += 19
		return true, 19, nil
	}

	// SYNC resumes fetch/decode on any pending line, masked or not, without
	// servicing it itself.
	if c.syncing && (c.nmiPending || c.firqPending || c.irqPending) {
		c.syncing = false
	}

	return false, 0, nil
}
