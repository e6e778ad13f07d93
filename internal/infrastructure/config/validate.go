package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/younwookim/pong/internal/infrastructure/input"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks every value, reporting all problems at once.
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, name, v))
		}
	}
	direction := func(name string, v int) {
		if v != -1 && v != 1 {
			errs = append(errs, fmt.Errorf("%w: %s must be -1 or 1, got %d", ErrInvalid, name, v))
		}
	}

	if c.Window.Title == "" {
		errs = append(errs, fmt.Errorf("%w: window.title is empty", ErrInvalid))
	}
	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)

	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	if c.Paddle.Margin < 0 {
		errs = append(errs, fmt.Errorf("%w: paddle.margin must not be negative, got %d", ErrInvalid, c.Paddle.Margin))
	}

	positive("ball.radius", c.Ball.Radius)
	positive("ball.speed", c.Ball.Speed)
	direction("ball.dirX", c.Ball.DirX)
	direction("ball.dirY", c.Ball.DirY)

	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Controls.Bindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Palette is ColorsConfig with every color parsed.
type Palette struct {
	Clear       color.RGBA
	Background  color.RGBA
	LeftPaddle  color.RGBA
	RightPaddle color.RGBA
	Ball        color.RGBA
}

// Palette parses every color.
func (c ColorsConfig) Palette() (Palette, error) {
	var p Palette
	var errs []error
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"colors.clear", c.Clear, &p.Clear},
		{"colors.background", c.Background, &p.Background},
		{"colors.leftPaddle", c.LeftPaddle, &p.LeftPaddle},
		{"colors.rightPaddle", c.RightPaddle, &p.RightPaddle},
		{"colors.ball", c.Ball, &p.Ball},
	} {
		clr, err := ParseColor(f.hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		*f.dst = clr
	}
	return p, errors.Join(errs...)
}

// ParseColor parses a "#rrggbb" or "#rgb" hex color into an opaque RGBA.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: bad color %q", ErrInvalid, hex)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Bindings is ControlsConfig with every key resolved.
type Bindings struct {
	LeftUp, LeftDown   ebiten.Key
	RightUp, RightDown ebiten.Key
	Quit               []ebiten.Key
}

// Bindings resolves every key name.
func (c ControlsConfig) Bindings() (Bindings, error) {
	var b Bindings
	var errs []error
	for _, f := range []struct {
		name string
		key  string
		dst  *ebiten.Key
	}{
		{"controls.left.up", c.Left.Up, &b.LeftUp},
		{"controls.left.down", c.Left.Down, &b.LeftDown},
		{"controls.right.up", c.Right.Up, &b.RightUp},
		{"controls.right.down", c.Right.Down, &b.RightDown},
	} {
		k, err := input.ParseKey(f.key)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %w", ErrInvalid, f.name, err))
			continue
		}
		*f.dst = k
	}

	quit, err := input.ParseKeys(c.Quit)
	if err != nil {
		errs = append(errs, fmt.Errorf("%w: controls.quit: %w", ErrInvalid, err))
	}
	b.Quit = quit
	return b, errors.Join(errs...)
}
