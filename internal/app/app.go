// Package app wires the window, input and renderer into the render loop:
// initialize once, run until a close request, release everything.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/gltriangle/internal/config"
	"github.com/Faultbox/gltriangle/internal/engine/backend"
	"github.com/Faultbox/gltriangle/internal/engine/input"
	"github.com/Faultbox/gltriangle/internal/engine/renderer"
	"github.com/Faultbox/gltriangle/internal/engine/window"
	"github.com/Faultbox/gltriangle/internal/logger"
)

// Title is the window title.
const Title = "OpenGL Triangle"

// state tracks where the loop is in its lifecycle.
type state int

const (
	stateInitializing state = iota
	stateRunning
	stateTerminating
)

// App owns the loop and everything it drives.
type App struct {
	state    state
	window   *window.Window
	input    *input.Input
	renderer *renderer.Renderer
}

// New executes the initialization state: window and context first, then the
// GPU resources. Any failure releases what already exists and aborts; the
// context is not worth salvaging at that point.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{state: stateInitializing}

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// GPU resources come after the window, the context must exist first.
	a.renderer, err = renderer.New(backend.NewGL())
	if err != nil {
		a.window.Close()
		a.window = nil
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.input = input.New()

	logger.Info("initialized successfully")
	return a, nil
}

// Run drives the loop until termination is requested. One iteration pumps
// events, reads the close request once, renders into the current drawable
// size and presents. The current frame always completes before a close
// request is honored.
func (a *App) Run() error {
	a.state = stateRunning

	start := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for a.state == stateRunning {
		a.input.Pump()
		if a.shouldTerminate() {
			break
		}

		w, h := a.window.DrawableSize()
		now := time.Since(start).Seconds()
		if err := a.renderer.RenderFrame(now, w, h); err != nil {
			a.state = stateTerminating
			return fmt.Errorf("render error: %w", err)
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// shouldTerminate reads the close request once per iteration and performs
// the transition from running to terminating. Terminating is terminal.
func (a *App) shouldTerminate() bool {
	if a.state == stateRunning && a.input.CloseRequested() {
		a.state = stateTerminating
	}
	return a.state == stateTerminating
}

// Close releases GPU resources, then the context and window. Reverse
// creation order throughout; safe after a partial initialization.
func (a *App) Close() {
	a.state = stateTerminating

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
