//go:build headless

// audio_headless.go - no real audio device available under the
// headless build tag; oto is not imported at all.

package main

import "fmt"

func newOtoAudio() (soundPlayer, error) {
	return nil, fmt.Errorf("audio unavailable in a headless build")
}
