// input_term.go - a non-graphical InputSource for running the cabinet
// from a raw terminal/SSH session, reading stdin in raw mode.

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/voidwire/invaders-core"
)

// termInput puts the controlling terminal into raw mode and maps a
// small fixed keyset to the cabinet's input ports. It is only ever
// started from runHeadless, never from a test.
type termInput struct {
	io       *invaders.MachineIO
	fd       int
	oldState *term.State
	stopCh   chan struct{}
	done     chan struct{}
	once     sync.Once
}

func newTermInput(io *invaders.MachineIO) *termInput {
	return &termInput{io: io, stopCh: make(chan struct{}), done: make(chan struct{})}
}

func (t *termInput) Start() {
	t.fd = int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "input_term: raw mode unavailable: %v\n", err)
		close(t.done)
		return
	}
	t.oldState = oldState
	if err := syscall.SetNonblock(t.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "input_term: non-blocking read unavailable: %v\n", err)
	}

	go func() {
		defer close(t.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-t.stopCh:
				return
			default:
			}
			n, err := syscall.Read(t.fd, buf)
			if n > 0 {
				t.route(buf[0])
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
		}
	}()
}

// route maps a single keystroke to the input ports. A raw terminal
// gives no key-up event, so coin, start and fire keys become a one-shot
// pulse (set, then cleared 80 ms later), while 'a'/'d' latch left/right
// movement until the opposite key or 's' releases it.
func (t *termInput) route(b byte) {
	pulse := func(port int, mask byte) {
		t.io.SetInputBit(port, mask, true)
		go func() {
			time.Sleep(80 * time.Millisecond)
			t.io.SetInputBit(port, mask, false)
		}()
	}
	switch b {
	case 'c':
		pulse(1, invaders.Port1Coin)
	case '1':
		pulse(1, invaders.Port1P1Start)
	case '2':
		pulse(1, invaders.Port1P2Start)
	case ' ':
		pulse(1, invaders.Port1P1Fire)
	case 'a':
		t.io.SetInputBit(1, invaders.Port1P1Left, true)
		t.io.SetInputBit(1, invaders.Port1P1Right, false)
	case 'd':
		t.io.SetInputBit(1, invaders.Port1P1Right, true)
		t.io.SetInputBit(1, invaders.Port1P1Left, false)
	case 's':
		t.io.SetInputBit(1, invaders.Port1P1Left, false)
		t.io.SetInputBit(1, invaders.Port1P1Right, false)
	}
}

func (t *termInput) Stop() {
	t.once.Do(func() {
		close(t.stopCh)
		<-t.done
		if t.oldState != nil {
			_ = syscall.SetNonblock(t.fd, false)
			_ = term.Restore(t.fd, t.oldState)
		}
	})
}

// runHeadless drives the scheduler with raw-terminal input instead of
// a window, for cabinets run over SSH or in CI.
func runHeadless(cpu *invaders.CPU, io *invaders.MachineIO, sched *invaders.Scheduler) {
	ti := newTermInput(io)
	ti.Start()
	defer ti.Stop()
	sched.Run()
}
