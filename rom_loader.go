// rom_loader.go - flat 8080 ROM image loading

package invaders

// RomBankSize is the size of each of the four ROM banks that make up
// the invaders.{h,g,f,e} image set.
const RomBankSize = 0x0800 // 2 KiB

// romBankAddrs gives the load address of each of the four banks, in
// h,g,f,e order.
var romBankAddrs = [4]uint16{0x0000, 0x0800, 0x1000, 0x1800}

// LoadROM loads four 2 KiB ROM bank blobs into memory at their fixed
// addresses. Any byte content is accepted per bank; a bank that is nil
// or not exactly RomBankSize bytes is rejected with a *ROMError. Banks
// are checked and loaded in order, so banks before the rejected one
// stay loaded; the caller must not start the CPU after an error.
func LoadROM(mem *Memory, banks [4][]byte) error {
	for i, b := range banks {
		if len(b) == 0 {
			return &ROMError{Bank: i, Details: "missing"}
		}
		if len(b) != RomBankSize {
			return &ROMError{Bank: i, Details: "wrong size"}
		}
		mem.Load(b, romBankAddrs[i])
	}
	return nil
}
