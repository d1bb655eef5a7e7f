package invaders

import "testing"

func newTestCPU() (*CPU, *Memory, *MachineIO) {
	mem := NewMemory()
	io := NewMachineIO()
	return NewCPU(mem, io), mem, io
}

func run(t *testing.T, c *CPU, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
}

func TestUnknownOpcodeIsFatal(t *testing.T) {
	c, mem, _ := newTestCPU()
	mem.WriteByte(0, 0xDD) // not mapped in this 8080 core
	_, err := c.Step()
	if err == nil {
		t.Fatalf("expected error for unmapped opcode")
	}
	var cpuErr *CPUError
	if !asCPUError(err, &cpuErr) {
		t.Fatalf("expected *CPUError, got %T", err)
	}
	if cpuErr.Opcode != 0xDD || cpuErr.PC != 0 {
		t.Fatalf("unexpected error detail: %+v", cpuErr)
	}
}

func asCPUError(err error, out **CPUError) bool {
	e, ok := err.(*CPUError)
	if ok {
		*out = e
	}
	return ok
}

func TestMVIAndMOV(t *testing.T) {
	c, mem, _ := newTestCPU()
	prog := []byte{0x3E, 0x42, 0x47, 0x00} // MVI A,0x42 ; MOV B,A ; NOP
	mem.Load(prog, 0)
	run(t, c, 2)
	if c.A != 0x42 || c.B != 0x42 {
		t.Fatalf("got A=0x%02X B=0x%02X, want both 0x42", c.A, c.B)
	}
}

func TestADDFlagsAndCarry(t *testing.T) {
	c, mem, _ := newTestCPU()
	// MVI A,0xFF ; MVI B,0x01 ; ADD B
	mem.Load([]byte{0x3E, 0xFF, 0x06, 0x01, 0x80}, 0)
	run(t, c, 3)
	if c.A != 0x00 {
		t.Fatalf("got A=0x%02X, want 0x00", c.A)
	}
	if !c.Z || !c.CY || !c.AC || c.S {
		t.Fatalf("unexpected flags after 0xFF+0x01: %+v", c.Flags)
	}
}

func TestDAAScenario(t *testing.T) {
	c, mem, _ := newTestCPU()
	mem.Load([]byte{0x3E, 0x9B, 0x27}, 0) // MVI A,0x9B ; DAA
	run(t, c, 2)
	if c.A != 0x01 {
		t.Fatalf("got A=0x%02X, want 0x01", c.A)
	}
	if !c.CY {
		t.Fatalf("expected CY=1 after DAA on 0x9B")
	}
}

func TestShiftRegisterWindow(t *testing.T) {
	c, mem, io := newTestCPU()
	prog := []byte{
		0x3E, 0xAB, 0xD3, 0x04, // MVI A,0xAB ; OUT 4
		0x3E, 0xCD, 0xD3, 0x04, // MVI A,0xCD ; OUT 4
		0x3E, 0x00, 0xD3, 0x02, // MVI A,0x00 ; OUT 2 (offset 0)
		0xDB, 0x03, // IN 3
	}
	mem.Load(prog, 0)
	run(t, c, 7)
	if c.A != 0xCD {
		t.Fatalf("offset 0 should return the most recent high byte: got 0x%02X", c.A)
	}

	c2, mem2, _ := newTestCPU()
	prog2 := []byte{
		0x3E, 0xAB, 0xD3, 0x04,
		0x3E, 0xCD, 0xD3, 0x04,
		0x3E, 0x03, 0xD3, 0x02, // offset 3
		0xDB, 0x03,
	}
	mem2.Load(prog2, 0)
	run(t, c2, 7)
	want := byte((uint32(0xCDAB) >> (8 - 3)) & 0xFF)
	if c2.A != want {
		t.Fatalf("offset 3: got 0x%02X, want 0x%02X per spec formula", c2.A, want)
	}
	_ = io
}

func TestInterruptDisciplineDisabled(t *testing.T) {
	c, _, _ := newTestCPU()
	c.SetPC(0x1234)
	c.SetSP(0x2400)
	c.IntEnable = false
	c.Interrupt(1)
	c.Interrupt(2)
	if c.PC() != 0x1234 || c.SP() != 0x2400 {
		t.Fatalf("disabled interrupt must not touch PC/SP: PC=0x%04X SP=0x%04X", c.PC(), c.SP())
	}
}

func TestInterruptDisciplineEnabled(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.SetPC(0x1234)
	c.SetSP(0x2400)
	c.IntEnable = true
	c.Interrupt(1)
	if c.PC() != 0x0008 {
		t.Fatalf("RST 1 should vector to 0x0008, got 0x%04X", c.PC())
	}
	if c.IntEnable {
		t.Fatalf("interrupt must clear IntEnable")
	}
	lo := mem.ReadByte(c.SP())
	hi := mem.ReadByte(c.SP() + 1)
	if uint16(hi)<<8|uint16(lo) != 0x1234 {
		t.Fatalf("prior PC not pushed correctly")
	}
}

func TestPushPopPSW(t *testing.T) {
	c, mem, _ := newTestCPU()
	c.SetSP(0x2400)
	mem.Load([]byte{0xF5, 0xF1}, 0) // PUSH PSW ; POP PSW
	c.A = 0x42
	c.Z = true
	c.CY = true
	run(t, c, 2)
	if c.A != 0x42 || !c.Z || !c.CY {
		t.Fatalf("PSW round trip lost state: A=0x%02X Z=%v CY=%v", c.A, c.Z, c.CY)
	}
	if c.SP() != 0x2400 {
		t.Fatalf("stack pointer not restored after push/pop pair, got 0x%04X", c.SP())
	}
}

func TestJumpAndCall(t *testing.T) {
	c, mem, _ := newTestCPU()
	mem.Load([]byte{0xC3, 0x10, 0x00}, 0) // JMP 0x0010
	run(t, c, 1)
	if c.PC() != 0x0010 {
		t.Fatalf("got PC=0x%04X, want 0x0010", c.PC())
	}

	c2, mem2, _ := newTestCPU()
	c2.SetSP(0x2400)
	mem2.Load([]byte{0xCD, 0x20, 0x00}, 0) // CALL 0x0020
	run(t, c2, 1)
	if c2.PC() != 0x0020 {
		t.Fatalf("CALL did not jump, PC=0x%04X", c2.PC())
	}
	if c2.SP() != 0x23FE {
		t.Fatalf("CALL did not push return address, SP=0x%04X", c2.SP())
	}
}
