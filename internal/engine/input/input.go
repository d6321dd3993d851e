// Package input pumps SDL2 events and owns the close-request state that
// ends the render loop. The request lives here instead of in a process
// global so the loop reads explicit state once per iteration.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/gltriangle/internal/logger"
)

// Input processes OS events for the render loop.
type Input struct {
	closeRequested bool
}

// New creates the input handler.
func New() *Input {
	return &Input{}
}

// Pump drains the SDL event queue, latching a close request when the OS
// asks the window to close or Escape is pressed. Once latched the request
// is never cleared.
func (i *Input) Pump() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.closeRequested = true

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				i.closeRequested = true
			}

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				logger.Debug("window resized",
					zap.Int("width", int(e.Data1)),
					zap.Int("height", int(e.Data2)),
				)
			}
		}
	}
}

// CloseRequested reports whether termination has been requested.
func (i *Input) CloseRequested() bool {
	return i.closeRequested
}

// RequestClose latches the close request without an OS event.
func (i *Input) RequestClose() {
	i.closeRequested = true
}
