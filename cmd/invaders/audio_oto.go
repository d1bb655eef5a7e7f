//go:build !headless

// audio_oto.go - renders SoundEvents to short procedural waveforms and
// streams them through oto.

package main

import (
	"io"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/voidwire/invaders-core"
)

const sampleRate = 44100

type otoAudio struct {
	ctx *oto.Context
	mu  sync.Mutex
}

func newOtoAudio() (soundPlayer, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready
	return &otoAudio{ctx: ctx}, nil
}

// waveform renders a short, deterministic burst per event id: a fixed
// tone for the steady cues, white noise for the explosion family. This
// is a cue generator, not a sample-accurate reproduction of the
// cabinet's discrete sound boards.
func waveform(ev invaders.SoundEvent) []float32 {
	const durationSec = 0.12
	n := int(sampleRate * durationSec)
	samples := make([]float32, n)

	freq := map[invaders.SoundEvent]float64{
		invaders.SoundUFO:            180,
		invaders.SoundShoot:          660,
		invaders.SoundInvaderKilled:  440,
		invaders.SoundExtendedPlay:   880,
		invaders.SoundFastInvader1:   220,
		invaders.SoundFastInvader2:   260,
		invaders.SoundFastInvader3:   300,
		invaders.SoundFastInvader4:   340,
	}

	if ev == invaders.SoundExplosion {
		seed := uint32(12345)
		for i := range samples {
			seed = seed*1664525 + 1013904223
			samples[i] = (float32(seed>>8&0xFFFF)/32768 - 1) * 0.6
		}
		return samples
	}

	f, ok := freq[ev]
	if !ok {
		f = 440
	}
	for i := range samples {
		samples[i] = float32(math.Sin(2*math.Pi*f*float64(i)/sampleRate)) * 0.5
	}
	return samples
}

func (a *otoAudio) Play(events []invaders.SoundEvent) {
	for _, ev := range events {
		samples := waveform(ev)
		buf := make([]byte, len(samples)*4)
		for i, s := range samples {
			bits := math.Float32bits(s)
			buf[i*4] = byte(bits)
			buf[i*4+1] = byte(bits >> 8)
			buf[i*4+2] = byte(bits >> 16)
			buf[i*4+3] = byte(bits >> 24)
		}
		a.mu.Lock()
		p := a.ctx.NewPlayer(newByteReader(buf))
		a.mu.Unlock()
		p.Play()
	}
}

func (a *otoAudio) Close() {}

type byteReader struct {
	buf []byte
	pos int
}

func newByteReader(b []byte) *byteReader { return &byteReader{buf: b} }

func (r *byteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}
