// scheduler.go - drives the CPU through 60 Hz frames, injecting the
// mid-screen and vblank interrupts and pacing wall-clock time

package invaders

import (
	"log"
	"time"
)

const (
	// clockHz and the 60 Hz frame rate give 16,666 cycles per half
	// frame.
	clockHz         = 2_000_000
	frameHz         = 60
	halfFrameCycles = clockHz / frameHz / 2
	frameInterval   = time.Second / frameHz
	rstMidScreen    = 1
	rstVBlank       = 2
)

// FrameConsumer is the per-frame callback a collaborator registers to
// receive a decoded-ready video snapshot and the frame's sound events.
// It must not block — the scheduler calls it synchronously once per
// completed frame, and a slow consumer delays the next frame's pacing,
// never its correctness.
type FrameConsumer func(vramSnapshot []byte, events []SoundEvent)

// Scheduler runs one 60 Hz frame at a time: half-frame of CPU cycles,
// RST 1, another half-frame, RST 2, snapshot video RAM, signal
// consumers, then sleep to the next 16.667ms tick.
type Scheduler struct {
	cpu      *CPU
	mem      *Memory
	io       *MachineIO
	detector SoundDetector

	consumer FrameConsumer
	Logger   func(format string, args ...any)

	vram []byte

	// overshoot is how many cycles the last half-frame ran past its
	// budget; the next half-frame starts with that many already spent.
	overshoot int

	shutdown chan struct{}
	done     chan struct{}
}

// NewScheduler wires a scheduler to the given CPU, memory and I/O
// block. consumer may be nil (frames are still produced and snapshot,
// just not delivered anywhere).
func NewScheduler(cpu *CPU, mem *Memory, io *MachineIO, consumer FrameConsumer) *Scheduler {
	return &Scheduler{
		cpu:      cpu,
		mem:      mem,
		io:       io,
		consumer: consumer,
		Logger:   log.Printf,
		vram:     make([]byte, vramLength),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// runHalf executes CPU instructions until cumulative cycles reach at
// least target, carrying any single-instruction overshoot into the
// next call's budget. Pause is honored by yielding without executing.
func (s *Scheduler) runHalf(target int) {
	spent := s.overshoot
	s.overshoot = 0
	for spent < target {
		if s.cpu.State() == StatePaused {
			return
		}
		if s.cpu.State() == StateStopped {
			return
		}
		cycles, err := s.cpu.Step()
		if err != nil {
			s.Logger("invaders: cpu stopped: %v", err)
			s.cpu.SetState(StateStopped)
			return
		}
		spent += cycles
	}
	s.overshoot = spent - target
}

// RunFrame executes exactly one 60 Hz frame's protocol and returns. A
// CPU that is Paused when RunFrame is entered produces no interrupts,
// no snapshot and no consumer call: the cabinet is idling, not
// playing, so there is no new frame to show. A CPU that is not Paused
// on entry completes the full protocol and calls the consumer exactly
// once, even if it gets paused partway through (the remaining
// half-frame slices then execute nothing).
//
// It is exported so callers that want to drive the loop themselves
// (tests, a browser-style external event loop) can call it directly
// instead of using Run/Shutdown.
func (s *Scheduler) RunFrame() {
	if s.cpu.State() == StatePaused {
		return
	}

	s.runHalf(halfFrameCycles)
	s.cpu.Interrupt(rstMidScreen)
	s.runHalf(halfFrameCycles)
	s.cpu.Interrupt(rstVBlank)

	s.mem.Snapshot(s.vram)

	events := s.detector.Sample(s.io.PortOut(3), s.io.PortOut(5))
	if s.consumer != nil {
		s.consumer(s.vram, events)
	}
}

// Run drives RunFrame in a loop at 60 Hz until Shutdown is called,
// never sleeping when a frame runs long.
func (s *Scheduler) Run() {
	defer close(s.done)
	next := time.Now()
	for {
		select {
		case <-s.shutdown:
			return
		default:
		}

		s.RunFrame()

		next = next.Add(frameInterval)
		if d := time.Until(next); d > 0 {
			select {
			case <-s.shutdown:
				return
			case <-time.After(d):
			}
		} else {
			// Behind schedule: drop the deficit and resync to now
			// rather than ever sleeping a negative duration.
			next = time.Now()
		}
	}
}

// Shutdown signals the run loop to exit at the next yield point and
// blocks until it has.
func (s *Scheduler) Shutdown() {
	close(s.shutdown)
	<-s.done
}
