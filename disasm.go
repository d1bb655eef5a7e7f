// disasm.go - single-instruction 8080 disassembler
//
// A mnemonic/operand-length table consulted by a debug console, not a
// full multi-pass disassembler.

package invaders

import "fmt"

var reg8Name = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}
var rpName = [4]string{"B", "D", "H", "SP"}
var condName = [8]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

// Disassemble returns the mnemonic text for the instruction at pc and
// the number of bytes it occupies, reading memory but not mutating CPU
// state. It is used by the scripting console's "disasm" command;
// CPUError's Error() text reports only the raw opcode byte and PC.
func Disassemble(mem *Memory, pc uint16) (text string, length uint16) {
	op := mem.ReadByte(pc)
	b1 := func() byte { return mem.ReadByte(pc + 1) }
	w1 := func() uint16 { return uint16(mem.ReadByte(pc+1)) | uint16(mem.ReadByte(pc+2))<<8 }

	switch {
	case op == 0x00 || op == 0x08 || op == 0x10 || op == 0x18 || op == 0x20 || op == 0x28 || op == 0x30 || op == 0x38:
		return "NOP", 1
	case op == 0x76:
		return "HLT", 1
	case op&0xCF == 0x01: // LXI rp,d16
		rp := (op >> 4) & 3
		return fmt.Sprintf("LXI %s,0x%04X", rpName[rp], w1()), 3
	case op == 0x02:
		return "STAX B", 1
	case op == 0x12:
		return "STAX D", 1
	case op == 0x0A:
		return "LDAX B", 1
	case op == 0x1A:
		return "LDAX D", 1
	case op&0xCF == 0x03:
		return fmt.Sprintf("INX %s", rpName[(op>>4)&3]), 1
	case op&0xCF == 0x0B:
		return fmt.Sprintf("DCX %s", rpName[(op>>4)&3]), 1
	case op&0xCF == 0x09:
		return fmt.Sprintf("DAD %s", rpName[(op>>4)&3]), 1
	case op&0xC7 == 0x04:
		return fmt.Sprintf("INR %s", reg8Name[(op>>3)&7]), 1
	case op&0xC7 == 0x05:
		return fmt.Sprintf("DCR %s", reg8Name[(op>>3)&7]), 1
	case op&0xC7 == 0x06:
		return fmt.Sprintf("MVI %s,0x%02X", reg8Name[(op>>3)&7], b1()), 2
	case op == 0x07:
		return "RLC", 1
	case op == 0x0F:
		return "RRC", 1
	case op == 0x17:
		return "RAL", 1
	case op == 0x1F:
		return "RAR", 1
	case op == 0x27:
		return "DAA", 1
	case op == 0x2F:
		return "CMA", 1
	case op == 0x37:
		return "STC", 1
	case op == 0x3F:
		return "CMC", 1
	case op == 0x22:
		return fmt.Sprintf("SHLD 0x%04X", w1()), 3
	case op == 0x2A:
		return fmt.Sprintf("LHLD 0x%04X", w1()), 3
	case op == 0x32:
		return fmt.Sprintf("STA 0x%04X", w1()), 3
	case op == 0x3A:
		return fmt.Sprintf("LDA 0x%04X", w1()), 3
	case op >= 0x40 && op <= 0x7F:
		return fmt.Sprintf("MOV %s,%s", reg8Name[(op>>3)&7], reg8Name[op&7]), 1
	case op >= 0x80 && op <= 0xBF:
		names := [8]string{"ADD", "ADC", "SUB", "SBB", "ANA", "XRA", "ORA", "CMP"}
		return fmt.Sprintf("%s %s", names[(op>>3)&7], reg8Name[op&7]), 1
	case op&0xC7 == 0xC0:
		return fmt.Sprintf("RET %s", condName[(op>>3)&7]), 1
	case op&0xC7 == 0xC2:
		return fmt.Sprintf("JP %s,0x%04X", condName[(op>>3)&7], w1()), 3
	case op == 0xC3:
		return fmt.Sprintf("JMP 0x%04X", w1()), 3
	case op&0xC7 == 0xC4:
		return fmt.Sprintf("CALL %s,0x%04X", condName[(op>>3)&7], w1()), 3
	case op&0xCF == 0xC1:
		rp := [4]string{"B", "D", "H", "PSW"}
		return fmt.Sprintf("POP %s", rp[(op>>4)&3]), 1
	case op&0xCF == 0xC5:
		rp := [4]string{"B", "D", "H", "PSW"}
		return fmt.Sprintf("PUSH %s", rp[(op>>4)&3]), 1
	case op == 0xC6 || op == 0xCE || op == 0xD6 || op == 0xDE || op == 0xE6 || op == 0xEE || op == 0xF6 || op == 0xFE:
		names := map[byte]string{0xC6: "ADI", 0xCE: "ACI", 0xD6: "SUI", 0xDE: "SBI", 0xE6: "ANI", 0xEE: "XRI", 0xF6: "ORI", 0xFE: "CPI"}
		return fmt.Sprintf("%s 0x%02X", names[op], b1()), 2
	case op == 0xC9:
		return "RET", 1
	case op == 0xCD:
		return fmt.Sprintf("CALL 0x%04X", w1()), 3
	case op&0xC7 == 0xC7:
		return fmt.Sprintf("RST %d", (op>>3)&7), 1
	case op == 0xD3:
		return fmt.Sprintf("OUT 0x%02X", b1()), 2
	case op == 0xDB:
		return fmt.Sprintf("IN 0x%02X", b1()), 2
	case op == 0xE3:
		return "XTHL", 1
	case op == 0xE9:
		return "PCHL", 1
	case op == 0xEB:
		return "XCHG", 1
	case op == 0xF3:
		return "DI", 1
	case op == 0xF9:
		return "SPHL", 1
	case op == 0xFB:
		return "EI", 1
	default:
		return fmt.Sprintf("DB 0x%02X", op), 1
	}
}
