// flags.go - Intel 8080 status flag bits

package invaders

// parityTable holds even-parity (bit count) for every byte value,
// computed once instead of popcounted per opcode.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		bits := 0
		for v := i; v != 0; v >>= 1 {
			bits += v & 1
		}
		parityTable[i] = bits%2 == 0
	}
}

// Flags holds the five 8080 status bits. Each field is 0 or 1 in spirit;
// Go bools carry that invariant for free.
type Flags struct {
	Z  bool // zero
	S  bool // sign
	P  bool // parity (even)
	CY bool // carry
	AC bool // auxiliary carry (nibble carry)
}

// UpdateZSP sets Z, S and P from the low byte of a wider arithmetic
// result. CY and AC are untouched — callers that need them call the
// carry/aux-carry helpers separately.
func (f *Flags) UpdateZSP(value uint16) {
	b := byte(value)
	f.Z = b == 0
	f.S = b&0x80 != 0
	f.P = parityTable[b]
}

// UpdateCarryByte sets CY when an 8-bit-domain computation exceeded
// 0xFF.
func (f *Flags) UpdateCarryByte(wide uint16) {
	f.CY = wide > 0xFF
}

// UpdateCarryWord sets CY when a 16-bit-domain computation (DAD) exceeded
// 0xFFFF.
func (f *Flags) UpdateCarryWord(wide uint32) {
	f.CY = wide > 0xFFFF
}

// UpdateAuxCarry sets AC when the low nibbles of a and b (plus an
// optional incoming carry) overflow 0x0F. Pass carryIn as 0 for plain
// ADD or the incoming CY for ADC; the subtraction family (see
// subFlags) passes the complemented operand with carryIn 1^borrow.
func (f *Flags) UpdateAuxCarry(a, b, carryIn byte) {
	f.AC = (a&0x0F)+(b&0x0F)+carryIn > 0x0F
}

// ToPSWByte packs the flags into the canonical 8080 PSW layout:
// bit7=S bit6=Z bit5=0 bit4=AC bit3=0 bit2=P bit1=1 bit0=CY, per the
// Intel 8080 Programmer's Manual.
func (f *Flags) ToPSWByte() byte {
	var b byte = 0x02 // bit 1 always reads 1
	if f.CY {
		b |= 0x01
	}
	if f.P {
		b |= 0x04
	}
	if f.AC {
		b |= 0x10
	}
	if f.Z {
		b |= 0x40
	}
	if f.S {
		b |= 0x80
	}
	return b
}

// FromPSWByte unpacks a PSW byte (as POP PSW does) into the five flags,
// discarding the reserved bit values (1, 3 and 5 are ignored on read,
// not just on write).
func (f *Flags) FromPSWByte(b byte) {
	f.CY = b&0x01 != 0
	f.P = b&0x04 != 0
	f.AC = b&0x10 != 0
	f.Z = b&0x40 != 0
	f.S = b&0x80 != 0
}

// Reset clears all five flags.
func (f *Flags) Reset() {
	*f = Flags{}
}
