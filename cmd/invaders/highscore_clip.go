// highscore_clip.go - copies the BCD high score to the system
// clipboard as decimal text, via clipboard.Init/clipboard.Write.

package main

import (
	"fmt"

	"golang.design/x/clipboard"

	"github.com/voidwire/invaders-core"
)

// copyHighScoreToClipboard reads the 4-digit BCD high-score word and
// copies its displayed decimal value (10x the stored word: the stored
// digits omit the display's always-zero units digit) to the clipboard.
func copyHighScoreToClipboard(mem *invaders.Memory) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard unavailable: %w", err)
	}
	bcd := mem.ReadHighScore()
	decimal := bcdToDecimal(bcd) * 10
	clipboard.Write(clipboard.FmtText, []byte(fmt.Sprintf("%d", decimal)))
	fmt.Printf("high score %d copied to clipboard\n", decimal)
	return nil
}

func bcdToDecimal(bcd uint16) int {
	n := 0
	mul := 1
	for i := 0; i < 4; i++ {
		digit := (bcd >> (i * 4)) & 0xF
		n += int(digit) * mul
		mul *= 10
	}
	return n
}
