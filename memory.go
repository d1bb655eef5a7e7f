// memory.go - flat 64 KiB address space for the 8080 mainboard

package invaders

import "sync"

const (
	memorySize = 0x10000

	// Address-space partition. Out of the 0x4000+ range nothing is
	// mapped; reads return whatever was last written there
	// (mirrors/unused on real hardware, never exercised by the ROM).
	romStart   = 0x0000
	romEnd     = 0x1FFF
	ramStart   = 0x2000
	vramStart  = 0x2400
	vramEnd    = 0x3FFF
	vramLength = vramEnd - vramStart + 1 // 7168 bytes

	// BCD high-score word: low byte then high byte, each nibble one
	// decimal digit, displayed value is 10x the stored word.
	highScoreLo = 0x20F4
	highScoreHi = 0x20F5
)

// Memory is the 8080's linear byte array. It is shared between the CPU
// (sole mutator) and the frame scheduler (sole reader, between
// instructions); a mutex guards both paths.
type Memory struct {
	mu   sync.RWMutex
	data [memorySize]byte
}

// NewMemory returns a zeroed 64 KiB address space.
func NewMemory() *Memory {
	return &Memory{}
}

// ReadByte reads one byte, masking addr to the 16-bit bus.
func (m *Memory) ReadByte(addr uint16) byte {
	m.mu.RLock()
	b := m.data[addr]
	m.mu.RUnlock()
	return b
}

// WriteByte writes one byte, masking addr to the 16-bit bus. Writes
// that land in the ROM range are accepted silently — the real cabinet
// has no socket logic to reject them, and neither does this core.
func (m *Memory) WriteByte(addr uint16, v byte) {
	m.mu.Lock()
	m.data[addr] = v
	m.mu.Unlock()
}

// Load copies b into memory starting at start. Any length is accepted;
// ROM validity is the loader's responsibility.
func (m *Memory) Load(b []byte, start uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range b {
		m.data[start+uint16(i)] = v
	}
}

// Snapshot copies the video RAM region (0x2400-0x3FFF) into dst, which
// must be at least vramLength bytes, without holding the lock for the
// whole frame's worth of CPU writes — this is the scheduler's
// tear-free handoff to the video decoder.
func (m *Memory) Snapshot(dst []byte) {
	m.mu.RLock()
	copy(dst, m.data[vramStart:vramEnd+1])
	m.mu.RUnlock()
}

// ReadHighScore returns the stored 4-digit BCD high score word. Each
// nibble is one decimal digit; the value displayed on screen is 10x
// this number.
func (m *Memory) ReadHighScore() uint16 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint16(m.data[highScoreLo]) | uint16(m.data[highScoreHi])<<8
}

// WriteHighScore stores a 4-digit BCD high score word (low byte at
// 0x20F4, high byte at 0x20F5).
func (m *Memory) WriteHighScore(v uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[highScoreLo] = byte(v)
	m.data[highScoreHi] = byte(v >> 8)
}

// Reset zeroes the entire address space.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.data {
		m.data[i] = 0
	}
}
