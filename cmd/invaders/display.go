// display.go - frame hand-off shared by every frontend backend.

package main

import (
	"sync/atomic"

	"github.com/voidwire/invaders-core"
)

// currentFrame holds the most recently decoded frame. The scheduler's
// consumer callback stores into it; whichever frontend is active reads
// it back on its own pace (ebiten's Draw, a screenshot request, a Lua
// script's frame_hash() call).
var currentFrame atomic.Pointer[invaders.Frame]

func deliverFrame(f *invaders.Frame) {
	currentFrame.Store(f)
}

func latestFrame() *invaders.Frame {
	f := currentFrame.Load()
	if f == nil {
		return invaders.NewFrame()
	}
	return f
}
