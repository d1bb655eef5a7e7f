package invaders

import "testing"

func TestShiftRegisterDirect(t *testing.T) {
	io := NewMachineIO()
	io.Out(4, 0xAB)
	io.Out(4, 0xCD)
	io.Out(2, 0) // offset 0
	if got := io.In(3); got != 0xCD {
		t.Fatalf("offset 0: got 0x%02X, want 0xCD (most recent high byte)", got)
	}
	io.Out(2, 8&0x07) // offset masked to 3 bits: 8&7==0, same as above
	io.Out(2, 7)
	got := io.In(3)
	want := byte((uint32(0xCDAB) >> (8 - 7)) & 0xFF)
	if got != want {
		t.Fatalf("offset 7: got 0x%02X, want 0x%02X", got, want)
	}
}

func TestShiftOffsetMasking(t *testing.T) {
	io := NewMachineIO()
	io.Out(2, 0xFF) // only low 3 bits should stick
	io.Out(4, 0x01)
	io.Out(4, 0x02)
	got := io.In(3)
	want := byte((uint32(0x0201) >> (8 - 7)) & 0xFF)
	if got != want {
		t.Fatalf("shift_offset must mask to 3 bits: got 0x%02X, want 0x%02X", got, want)
	}
}

func TestInputBitSetClear(t *testing.T) {
	io := NewMachineIO()
	io.SetInputBit(1, Port1Coin, true)
	if io.In(1)&Port1Coin == 0 {
		t.Fatalf("coin bit should be set")
	}
	io.SetInputBit(1, Port1Coin, false)
	if io.In(1)&Port1Coin != 0 {
		t.Fatalf("coin bit should be cleared")
	}
}

func TestDipLives(t *testing.T) {
	io := NewMachineIO()
	io.DipLives(2) // 10 -> 5 lives
	if io.In(2)&Port2DipLivesMask != 2 {
		t.Fatalf("lives DIP not set")
	}
	io.DipBonusLifeAt1000(true)
	if io.In(2)&Port2DipBonus1000 == 0 {
		t.Fatalf("bonus life DIP not set")
	}
	// Changing lives must not disturb the bonus bit.
	io.DipLives(3)
	if io.In(2)&Port2DipBonus1000 == 0 {
		t.Fatalf("bonus life DIP clobbered by DipLives")
	}
}

func TestSoundPortHookFiresOnlyForPorts3And5(t *testing.T) {
	io := NewMachineIO()
	calls := 0
	io.SetSoundPortHook(func() { calls++ })
	io.Out(2, 1)
	io.Out(6, 1)
	if calls != 0 {
		t.Fatalf("hook must not fire for ports 2/6, fired %d times", calls)
	}
	io.Out(3, 1)
	io.Out(5, 1)
	if calls != 2 {
		t.Fatalf("hook must fire once per write to port 3 or 5, fired %d times", calls)
	}
}
