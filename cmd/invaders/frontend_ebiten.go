//go:build !headless

// frontend_ebiten.go - windowed video output and keyboard input.

package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/voidwire/invaders-core"
)

const windowScale = 3

type cabinetGame struct {
	cpu *invaders.CPU
	io  *invaders.MachineIO

	window *ebiten.Image
}

func runEbitenFrontend(cpu *invaders.CPU, io *invaders.MachineIO, sched *invaders.Scheduler) error {
	game := &cabinetGame{cpu: cpu, io: io}

	ebiten.SetWindowSize(invaders.FrameWidth*windowScale, invaders.FrameHeight*windowScale)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetVsyncEnabled(true)

	go sched.Run()

	return ebiten.RunGame(game)
}

func (g *cabinetGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	g.pollInput()
	return nil
}

func (g *cabinetGame) pollInput() {
	set := func(port int, mask byte, key ebiten.Key) {
		g.io.SetInputBit(port, mask, ebiten.IsKeyPressed(key))
	}
	set(1, invaders.Port1Coin, ebiten.KeyC)
	set(1, invaders.Port1P1Start, ebiten.Key1)
	set(1, invaders.Port1P2Start, ebiten.Key2)
	set(1, invaders.Port1P1Fire, ebiten.KeySpace)
	set(1, invaders.Port1P1Left, ebiten.KeyArrowLeft)
	set(1, invaders.Port1P1Right, ebiten.KeyArrowRight)
	set(2, invaders.Port2P2Fire, ebiten.KeyEnter)
	set(2, invaders.Port2P2Left, ebiten.KeyA)
	set(2, invaders.Port2P2Right, ebiten.KeyD)
}

func (g *cabinetGame) Draw(screen *ebiten.Image) {
	if g.window == nil {
		g.window = ebiten.NewImage(invaders.FrameWidth, invaders.FrameHeight)
	}
	g.window.WritePixels(latestFrame().Pixels)
	screen.DrawImage(g.window, nil)
}

func (g *cabinetGame) Layout(_, _ int) (int, int) {
	return invaders.FrameWidth, invaders.FrameHeight
}
