// sound_detector.go - edge-triggered sound event detection on output
// ports 3 and 5

package invaders

// SoundEvent identifies one of the cabinet's discrete sound cues.
type SoundEvent int

const (
	SoundUFO SoundEvent = iota
	SoundShoot
	SoundExplosion
	SoundInvaderKilled
	SoundExtendedPlay
	SoundFastInvader1
	SoundFastInvader2
	SoundFastInvader3
	SoundFastInvader4
)

func (e SoundEvent) String() string {
	switch e {
	case SoundUFO:
		return "UFO"
	case SoundShoot:
		return "SHOOT"
	case SoundExplosion:
		return "EXPLOSION"
	case SoundInvaderKilled:
		return "INVADER_KILLED"
	case SoundExtendedPlay:
		return "EXTENDED_PLAY"
	case SoundFastInvader1:
		return "FAST1"
	case SoundFastInvader2:
		return "FAST2"
	case SoundFastInvader3:
		return "FAST3"
	case SoundFastInvader4:
		return "FAST4"
	default:
		return "UNKNOWN"
	}
}

// port3Bits and port5Bits map each level bit to the event it triggers
// on its rising edge.
var port3Bits = [5]SoundEvent{SoundUFO, SoundShoot, SoundExplosion, SoundInvaderKilled, SoundExtendedPlay}
var port5Bits = [5]SoundEvent{SoundFastInvader1, SoundFastInvader2, SoundFastInvader3, SoundFastInvader4, SoundExplosion}

// SoundDetector rebuilds the per-frame sound-event list from rising
// edges on port_out[3] and port_out[5]. It is ephemeral state: only
// the two previous port snapshots persist across frames.
type SoundDetector struct {
	prev3, prev5 byte
}

// Sample computes rising = cur &^ prev for both ports and returns the
// events whose bit rose, updating the previous-snapshot state.
func (d *SoundDetector) Sample(cur3, cur5 byte) []SoundEvent {
	rising3 := cur3 &^ d.prev3
	rising5 := cur5 &^ d.prev5
	d.prev3 = cur3
	d.prev5 = cur5

	var events []SoundEvent
	for bit, ev := range port3Bits {
		if rising3&(1<<uint(bit)) != 0 {
			events = append(events, ev)
		}
	}
	for bit, ev := range port5Bits {
		if rising5&(1<<uint(bit)) != 0 {
			events = append(events, ev)
		}
	}
	return events
}

// Reset clears the previous-snapshot state, as at power-on.
func (d *SoundDetector) Reset() {
	d.prev3 = 0
	d.prev5 = 0
}
