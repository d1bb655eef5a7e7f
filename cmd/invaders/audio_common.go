// audio_common.go - the sound backend contract shared by every build.

package main

import "github.com/voidwire/invaders-core"

type soundPlayer interface {
	Play(events []invaders.SoundEvent)
	Close()
}

func newHeadlessAudio() soundPlayer { return nullAudio{} }

type nullAudio struct{}

func (nullAudio) Play(events []invaders.SoundEvent) {}
func (nullAudio) Close()                            {}
