//go:build headless

// frontend_headless.go - stub video frontend for CI/build environments
// without a display.

package main

import (
	"fmt"

	"github.com/voidwire/invaders-core"
)

func runEbitenFrontend(cpu *invaders.CPU, io *invaders.MachineIO, sched *invaders.Scheduler) error {
	return fmt.Errorf("this binary was built with the headless tag; pass -headless or -script")
}
