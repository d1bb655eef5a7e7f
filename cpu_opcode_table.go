// cpu_opcode_table.go - 256-entry opcode dispatch table

package invaders

// aluOp names the eight ALU operations the 8080 exposes both as
// register/memory forms (0x80-0xBF) and as immediate forms
// (0xC6/CE/D6/DE/E6/EE/F6/FE).
type aluOp byte

const (
	aluADD aluOp = iota
	aluADC
	aluSUB
	aluSBB
	aluANA
	aluXRA
	aluORA
	aluCMP
)

// condCode names the eight condition codes used by conditional jump,
// call and return, in the 8080's (opcode>>3)&7 encoding.
type condCode byte

const (
	condNZ condCode = iota
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

func (c *CPU) testCond(cc condCode) bool {
	switch cc {
	case condNZ:
		return !c.Z
	case condZ:
		return c.Z
	case condNC:
		return !c.CY
	case condC:
		return c.CY
	case condPO:
		return !c.P
	case condPE:
		return c.P
	case condP:
		return !c.S
	default: // condM
		return c.S
	}
}

// initOps builds the 256-entry dispatch table. Irregular opcodes are
// registered individually; the four regular families — MOV, register/
// memory ALU, INR/DCR/MVI per register, and the eight-way conditional
// jump/call/return/RST families — are generated by looping over the
// 3-bit register/condition encoding instead of writing out every
// combination by hand, the same encoding the 8080 itself uses to keep
// its own opcode map regular.
func (c *CPU) initOps() {
	for i := range c.ops {
		c.ops[i] = nil
	}

	// NOP and its undocumented duplicates: 0x00/08/10/18/20/28/30/38.
	// 0x20 and 0x30 are 8085 RIM/SIM on later silicon; this mainboard's
	// 8080 treats them as plain NOPs.
	for _, op := range []byte{0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38} {
		c.ops[op] = (*CPU).opNOP
	}
	c.ops[0x76] = (*CPU).opHLT

	// LXI / STAX / LDAX / INX / DCX / DAD, one quartet per register
	// pair (BC, DE, HL, SP).
	c.ops[0x01] = func(c *CPU) int { c.SetBC(c.fetchWord()); return 10 }
	c.ops[0x11] = func(c *CPU) int { c.SetDE(c.fetchWord()); return 10 }
	c.ops[0x21] = func(c *CPU) int { c.SetHL(c.fetchWord()); return 10 }
	c.ops[0x31] = func(c *CPU) int { c.SetSP(c.fetchWord()); return 10 }

	c.ops[0x02] = func(c *CPU) int { c.write(c.BC(), c.A); return 7 }
	c.ops[0x12] = func(c *CPU) int { c.write(c.DE(), c.A); return 7 }
	c.ops[0x0A] = func(c *CPU) int { c.A = c.read(c.BC()); return 7 }
	c.ops[0x1A] = func(c *CPU) int { c.A = c.read(c.DE()); return 7 }

	c.ops[0x03] = func(c *CPU) int { c.SetBC(c.BC() + 1); return 5 }
	c.ops[0x13] = func(c *CPU) int { c.SetDE(c.DE() + 1); return 5 }
	c.ops[0x23] = func(c *CPU) int { c.SetHL(c.HL() + 1); return 5 }
	c.ops[0x33] = func(c *CPU) int { c.SetSP(c.SP() + 1); return 5 }
	c.ops[0x0B] = func(c *CPU) int { c.SetBC(c.BC() - 1); return 5 }
	c.ops[0x1B] = func(c *CPU) int { c.SetDE(c.DE() - 1); return 5 }
	c.ops[0x2B] = func(c *CPU) int { c.SetHL(c.HL() - 1); return 5 }
	c.ops[0x3B] = func(c *CPU) int { c.SetSP(c.SP() - 1); return 5 }

	c.ops[0x09] = func(c *CPU) int { c.dad(c.BC()); return 10 }
	c.ops[0x19] = func(c *CPU) int { c.dad(c.DE()); return 10 }
	c.ops[0x29] = func(c *CPU) int { c.dad(c.HL()); return 10 }
	c.ops[0x39] = func(c *CPU) int { c.dad(c.SP()); return 10 }

	// INR/DCR/MVI r, r=0..7 in the 8080's B,C,D,E,H,L,M,A encoding.
	for r := byte(0); r < 8; r++ {
		r := r
		c.ops[0x04+8*r] = func(c *CPU) int { c.inr(r); return opCost(r, 5, 10) }
		c.ops[0x05+8*r] = func(c *CPU) int { c.dcr(r); return opCost(r, 5, 10) }
		c.ops[0x06+8*r] = func(c *CPU) int { c.setReg8(r, c.fetchByte()); return opCost(r, 7, 10) }
	}

	c.ops[0x07] = (*CPU).opRLC
	c.ops[0x0F] = (*CPU).opRRC
	c.ops[0x17] = (*CPU).opRAL
	c.ops[0x1F] = (*CPU).opRAR
	c.ops[0x27] = (*CPU).opDAA
	c.ops[0x2F] = (*CPU).opCMA
	c.ops[0x37] = (*CPU).opSTC
	c.ops[0x3F] = (*CPU).opCMC

	c.ops[0x22] = func(c *CPU) int { c.storeHLDirect(c.fetchWord()); return 16 }
	c.ops[0x2A] = func(c *CPU) int { c.loadHLDirect(c.fetchWord()); return 16 }
	c.ops[0x32] = func(c *CPU) int { c.write(c.fetchWord(), c.A); return 13 }
	c.ops[0x3A] = func(c *CPU) int { c.A = c.read(c.fetchWord()); return 13 }

	// MOV dst,src for every dst/src pair except 0x76 (HLT occupies the
	// M,M slot).
	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			op := 0x40 + dst<<3 + src
			if op == 0x76 {
				continue
			}
			dst, src := dst, src
			cost := 5
			if dst == 6 || src == 6 {
				cost = 7
			}
			c.ops[op] = func(c *CPU) int {
				c.setReg8(dst, c.reg8(src))
				return cost
			}
		}
	}

	// Register/memory ALU (0x80-0xBF) and the matching immediate forms.
	aluOps := [8]aluOp{aluADD, aluADC, aluSUB, aluSBB, aluANA, aluXRA, aluORA, aluCMP}
	for i, op := range aluOps {
		op := op
		for src := byte(0); src < 8; src++ {
			src := src
			c.ops[0x80+byte(i)<<3+src] = func(c *CPU) int {
				c.alu(op, c.reg8(src))
				return opCost(src, 4, 7)
			}
		}
		immOpcodes := [8]byte{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
		c.ops[immOpcodes[i]] = func(c *CPU) int { c.alu(op, c.fetchByte()); return 7 }
	}

	// PUSH/POP rp (BC, DE, HL, PSW).
	c.ops[0xC5] = func(c *CPU) int { c.push(c.BC()); return 11 }
	c.ops[0xD5] = func(c *CPU) int { c.push(c.DE()); return 11 }
	c.ops[0xE5] = func(c *CPU) int { c.push(c.HL()); return 11 }
	c.ops[0xF5] = func(c *CPU) int { c.push(uint16(c.A)<<8 | uint16(c.ToPSWByte())); return 11 }
	c.ops[0xC1] = func(c *CPU) int { c.SetBC(c.pop()); return 10 }
	c.ops[0xD1] = func(c *CPU) int { c.SetDE(c.pop()); return 10 }
	c.ops[0xE1] = func(c *CPU) int { c.SetHL(c.pop()); return 10 }
	c.ops[0xF1] = func(c *CPU) int {
		v := c.pop()
		c.A = byte(v >> 8)
		c.FromPSWByte(byte(v))
		return 10
	}

	// Unconditional control flow.
	c.ops[0xC3] = func(c *CPU) int { c.SetPC(c.fetchWord()); return 10 }
	c.ops[0xCD] = func(c *CPU) int { dst := c.fetchWord(); c.push(c.PC()); c.SetPC(dst); return 17 }
	c.ops[0xC9] = func(c *CPU) int { c.SetPC(c.pop()); return 10 }
	c.ops[0xE9] = func(c *CPU) int { c.SetPC(c.HL()); return 5 }
	c.ops[0xF9] = func(c *CPU) int { c.SetSP(c.HL()); return 5 }
	c.ops[0xEB] = func(c *CPU) int {
		c.D, c.H = c.H, c.D
		c.E, c.L = c.L, c.E
		return 4
	}
	c.ops[0xE3] = func(c *CPU) int {
		sp := c.SP()
		lo, hi := c.read(sp), c.read(sp+1)
		c.write(sp, c.L)
		c.write(sp+1, c.H)
		c.L, c.H = lo, hi
		return 18
	}

	// Conditional jump/call/return and RST n, over all 8 condition
	// codes / RST vectors.
	condJump := [8]byte{0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA}
	condCall := [8]byte{0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC}
	condRet := [8]byte{0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8}
	for i := 0; i < 8; i++ {
		cc := condCode(i)
		c.ops[condJump[i]] = func(c *CPU) int {
			dst := c.fetchWord()
			if c.testCond(cc) {
				c.SetPC(dst)
			}
			return 10
		}
		c.ops[condCall[i]] = func(c *CPU) int {
			dst := c.fetchWord()
			if c.testCond(cc) {
				c.push(c.PC())
				c.SetPC(dst)
				return 17
			}
			return 11
		}
		c.ops[condRet[i]] = func(c *CPU) int {
			if c.testCond(cc) {
				c.SetPC(c.pop())
				return 11
			}
			return 5
		}
		n := byte(i)
		c.ops[0xC7+8*n] = func(c *CPU) int {
			c.push(c.PC())
			c.SetPC(uint16(n) * 8)
			return 11
		}
	}

	// Misc single-byte ops.
	c.ops[0xD3] = func(c *CPU) int { c.bus.Out(c.fetchByte(), c.A); return 10 }
	c.ops[0xDB] = func(c *CPU) int { c.A = c.bus.In(c.fetchByte()); return 10 }
	c.ops[0xF3] = func(c *CPU) int { c.IntEnable = false; return 4 }
	c.ops[0xFB] = func(c *CPU) int { c.IntEnable = true; return 4 }
}

// opCost returns hit when reg is the memory operand (code 6, i.e. M),
// else miss.
func opCost(reg byte, miss, hit int) int {
	if reg == 6 {
		return hit
	}
	return miss
}
