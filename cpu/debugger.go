package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"m6809/mem"
)

type model struct {
	cpu     *CPU
	bus     *mem.Bus
	program []byte

	offset uint16 // load address of program; Init points PC here
	prevPC uint16
	lastOp string
	error  error
}

// Init loads the program into the bus at offset and points PC at it.
func (m model) Init() tea.Cmd {
	m.bus.Load(m.offset, m.program)
	m.cpu.Reg.PC.Set(int(m.offset))
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.Reg.PC.Get()
			key := m.bus.ReadByte(m.prevPC)
			if op, ok := opcodes[uint16(key)]; ok {
				m.lastOp = op.Mnemonic
			}
			if _, err := m.cpu.Step(); err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single page as a line. The current PC is highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.bus.ReadByte(start + i)
		if start+i == m.cpu.Reg.PC.Get() {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	cc := &m.cpu.Reg.CC
	var flags string
	for _, flag := range []bool{cc.E(), cc.F(), cc.H(), cc.I(), cc.N(), cc.Z(), cc.V(), cc.C()} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)  op: %s
 A: %02x   B: %02x  DP: %02x
 X: %04x  Y: %04x
 U: %04x  S: %04x
E F H I N Z V C
`,
		m.cpu.Reg.PC.Get(), m.prevPC, m.lastOp,
		m.cpu.Reg.A.Get(), m.cpu.Reg.B.Get(), m.cpu.Reg.DP.Get(),
		m.cpu.Reg.X.Get(), m.cpu.Reg.Y.Get(),
		m.cpu.Reg.U.Get(), m.cpu.Reg.S.Get(),
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	pc := int(m.cpu.Reg.PC.Get())
	base := pc - pc%16
	offsets := []int{0, 16, 32, 48, base, base + 16, base + 32}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	op, _ := opcodes[uint16(m.bus.ReadByte(m.cpu.Reg.PC.Get()))]
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(op),
	)
}

// Debug loads the program into the bus at offset, then starts an
// interactive step-through TUI. Driving the CPU through anything other
// than a mem.Bus has no Debug counterpart -- it is a development aid, not
// part of the core's external contract.
func Debug(bus *mem.Bus, program []byte, offset uint16) {
	c := New(bus)
	c.Reset()
	m, err := tea.NewProgram(model{
		cpu:     c,
		bus:     bus,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
