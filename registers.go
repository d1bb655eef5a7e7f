// registers.go - Intel 8080 general-purpose register file

package invaders

// Registers holds the 8080's seven byte registers, the two 16-bit
// registers, and the interrupt-enable latch. PC and SP wrap modulo
// 65536 on every assignment, matching the real CPU's 16-bit address
// bus.
type Registers struct {
	A, B, C, D, E, H, L byte

	pc, sp uint16

	// IntEnable is the EI/DI latch. It is set by EI (0xFB), cleared by
	// DI (0xF3) and by a taken interrupt, and consulted by the
	// scheduler's Interrupt() call.
	IntEnable bool
}

// PC returns the program counter.
func (r *Registers) PC() uint16 { return r.pc }

// SetPC assigns the program counter, masked to 16 bits.
func (r *Registers) SetPC(v uint16) { r.pc = v }

// SP returns the stack pointer.
func (r *Registers) SP() uint16 { return r.sp }

// SetSP assigns the stack pointer, masked to 16 bits.
func (r *Registers) SetSP(v uint16) { r.sp = v }

// IncPC advances the program counter by n bytes, wrapping at 64K.
func (r *Registers) IncPC(n uint16) { r.pc += n }

// BC returns the B:C register pair as a big-endian 16-bit value.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC writes v back into B (high byte) and C (low byte).
func (r *Registers) SetBC(v uint16) {
	r.B = byte(v >> 8)
	r.C = byte(v)
}

// DE returns the D:E register pair.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE writes v back into D (high byte) and E (low byte).
func (r *Registers) SetDE(v uint16) {
	r.D = byte(v >> 8)
	r.E = byte(v)
}

// HL returns the H:L register pair.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL writes v back into H (high byte) and L (low byte).
func (r *Registers) SetHL(v uint16) {
	r.H = byte(v >> 8)
	r.L = byte(v)
}

// Reset restores power-on state: every register zero, PC zero, the
// interrupt latch disarmed.
func (r *Registers) Reset() {
	*r = Registers{}
}
