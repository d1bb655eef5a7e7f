package invaders

import "testing"

func TestParityBoundaries(t *testing.T) {
	var f Flags
	f.UpdateZSP(0x00)
	if !f.P {
		t.Fatalf("0x00 expected even parity (P=1)")
	}
	f.UpdateZSP(0x01)
	if f.P {
		t.Fatalf("0x01 expected odd parity (P=0)")
	}
	f.UpdateZSP(0xFF)
	if !f.P {
		t.Fatalf("0xFF expected even parity (P=1)")
	}
}

func TestCarryByteWord(t *testing.T) {
	var f Flags
	f.UpdateCarryByte(0x100)
	if !f.CY {
		t.Fatalf("0x100 must set CY")
	}
	f.UpdateCarryByte(0xFF)
	if f.CY {
		t.Fatalf("0xFF must not set CY")
	}
	f.UpdateCarryWord(0x10000)
	if !f.CY {
		t.Fatalf("0x10000 must set CY")
	}
	f.UpdateCarryWord(0xFFFF)
	if f.CY {
		t.Fatalf("0xFFFF must not set CY")
	}
}

func TestAuxCarry(t *testing.T) {
	var f Flags
	f.UpdateAuxCarry(0x0F, 0x01, 0)
	if !f.AC {
		t.Fatalf("0x0F+0x01 must set AC")
	}
	f.UpdateAuxCarry(0x0E, 0x01, 0)
	if f.AC {
		t.Fatalf("0x0E+0x01 must not set AC")
	}
}

func TestPSWRoundTrip(t *testing.T) {
	for _, b := range []byte{0x00, 0xFF, 0xD7, 0x42, 0xC3} {
		var f Flags
		f.FromPSWByte(b)
		got := f.ToPSWByte()
		var f2 Flags
		f2.FromPSWByte(got)
		if f != f2 {
			t.Fatalf("round trip mismatch for 0x%02X: %+v vs %+v", b, f, f2)
		}
		// bit 1 always reads back as 1, bit 3 and 5 are always 0.
		if got&0x02 == 0 {
			t.Fatalf("PSW bit 1 must be set, got 0x%02X", got)
		}
		if got&0x28 != 0 {
			t.Fatalf("PSW reserved bits 3/5 must be clear, got 0x%02X", got)
		}
	}
}
