// Package game provides the runtime that drives a scene through the
// input, update and draw phases once per presented frame.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/input"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

var (
	// ErrNoScene is returned when the runtime is started without a scene.
	ErrNoScene = errors.New("no scene bound")
	// ErrAlreadyRunning is returned when a scene is bound after the runtime started.
	ErrAlreadyRunning = errors.New("runtime already started")
)

// Runtime implements ebiten.Game. Each tick runs the input phase then the
// update phase; each draw runs the draw phase on the live scene.
type Runtime struct {
	title  string
	width  int
	height int

	source   input.Source
	quitKeys []ebiten.Key
	clear    color.Color
	logger   *log.Logger

	scene   *scene.Scene
	inputs  *system.InputSystem
	updates *system.UpdateSystem
	draws   *system.DrawSystem

	state state.RuntimeState
	frame int
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithSource replaces the keyboard with another input source.
func WithSource(src input.Source) Option {
	return func(r *Runtime) { r.source = src }
}

// WithQuitKeys adds keys whose key-down ends the run. Escape always does.
func WithQuitKeys(keys ...ebiten.Key) Option {
	return func(r *Runtime) { r.quitKeys = keys }
}

// WithClearColor sets the color the surface is cleared to every frame.
func WithClearColor(c color.Color) Option {
	return func(r *Runtime) { r.clear = c }
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(r *Runtime) { r.logger = l }
}

// New creates a runtime with a fixed window title and logical resolution.
// The window itself is only created by Run.
func New(title string, width, height int, opts ...Option) *Runtime {
	r := &Runtime{
		title:   title,
		width:   width,
		height:  height,
		clear:   color.Black,
		logger:  log.New(io.Discard),
		updates: system.NewUpdateSystem(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.source == nil {
		r.source = input.NewKeyboard()
	}
	r.inputs = system.NewInputSystem(r.source, r.quitKeys...)
	r.draws = system.NewDrawSystem(r.clear)
	return r
}

// BindScene sets the scene to run. It may be called again to replace the
// scene until the runtime starts.
func (r *Runtime) BindScene(sc *scene.Scene) error {
	if !r.state.CanBind() {
		return ErrAlreadyRunning
	}
	r.scene = sc
	r.setState(state.StateSceneBound)
	return nil
}

// Run opens the window and blocks until quit is requested or the backend
// fails. A quit request returns nil.
func (r *Runtime) Run() error {
	if err := r.start(); err != nil {
		return err
	}

	ebiten.SetWindowTitle(r.title)
	ebiten.SetWindowSize(r.width, r.height)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(r); err != nil {
		r.setState(state.StateStopped)
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

// Step runs one whole frame headless, drawing onto surface. It reports
// whether quit was requested, in which case nothing is updated or drawn.
func (r *Runtime) Step(surface render.Surface) (bool, error) {
	if r.state == state.StateStopped {
		return true, nil
	}
	if err := r.start(); err != nil {
		return false, err
	}
	if r.tick() {
		return true, nil
	}
	r.draws.Draw(r.scene, surface)
	return false, nil
}

// Update implements ebiten.Game.
func (r *Runtime) Update() error {
	if r.scene == nil {
		return ErrNoScene
	}
	if r.tick() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (r *Runtime) Draw(screen *ebiten.Image) {
	if r.scene == nil {
		return
	}
	r.draws.Draw(r.scene, render.NewScreen(screen))
}

// Layout implements ebiten.Game. The logical resolution never changes.
func (r *Runtime) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

// Frame returns the number of completed input/update ticks.
func (r *Runtime) Frame() int {
	return r.frame
}

// State returns the lifecycle state.
func (r *Runtime) State() state.RuntimeState {
	return r.state
}

// Scene returns the bound scene.
func (r *Runtime) Scene() *scene.Scene {
	return r.scene
}

func (r *Runtime) start() error {
	switch r.state {
	case state.StateRunning:
		return nil
	case state.StateStopped:
		return ErrAlreadyRunning
	}
	if r.scene == nil {
		return ErrNoScene
	}
	r.setState(state.StateRunning)
	return nil
}

// tick runs the input and update phases and reports a quit request.
func (r *Runtime) tick() bool {
	if r.inputs.PollQuit() {
		r.logger.Info("quit requested", "frame", r.frame)
		r.setState(state.StateStopped)
		return true
	}
	r.inputs.Apply(r.scene)
	r.updates.Update(r.scene)
	r.frame++
	return false
}

func (r *Runtime) setState(s state.RuntimeState) {
	if r.state == s {
		return
	}
	r.logger.Debug("state changed", "from", r.state, "to", s)
	r.state = s
}
