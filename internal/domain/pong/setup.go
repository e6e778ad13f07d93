package pong

import (
	"image/color"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Setup describes the starting layout of a match.
type Setup struct {
	Background color.Color
	Left       PaddleConfig
	Right      PaddleConfig
	PaddleY    int // Top edge of both paddles

	Ball           BallConfig
	BallX, BallY   int
	BallDX, BallDY int
}

// Entities returns the match entities in draw order: background, left
// paddle, right paddle, ball.
func (s Setup) Entities() []entity.Entity {
	return []entity.Entity{
		NewBackground(s.Background),
		NewPaddle(SideLeft, s.PaddleY, s.Left),
		NewPaddle(SideRight, s.PaddleY, s.Right),
		NewBall(s.BallX, s.BallY, s.BallDX, s.BallDY, s.Ball),
	}
}
