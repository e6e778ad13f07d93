package config

// Config is the root of pong.yaml
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Colors   ColorsConfig   `yaml:"colors"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Ball     BallConfig     `yaml:"ball"`
	Controls ControlsConfig `yaml:"controls"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// ColorsConfig holds hex colors such as "#ffff00"
type ColorsConfig struct {
	Clear       string `yaml:"clear"` // Cleared to before drawing each frame
	Background  string `yaml:"background"`
	LeftPaddle  string `yaml:"leftPaddle"`
	RightPaddle string `yaml:"rightPaddle"`
	Ball        string `yaml:"ball"`
}

type PaddleConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"` // Distance from the paddle's side of the window
	StartY int `yaml:"startY"`
	Speed  int `yaml:"speed"` // Pixels per input tick
}

type BallConfig struct {
	Radius int  `yaml:"radius"`
	Speed  int  `yaml:"speed"` // Pixels per update tick along each axis
	Filled bool `yaml:"filled"`
	StartX int  `yaml:"startX"`
	StartY int  `yaml:"startY"`
	DirX   int  `yaml:"dirX"` // -1 or 1
	DirY   int  `yaml:"dirY"` // -1 or 1
}

// ControlsConfig holds key names as printed by ebiten.Key.String
type ControlsConfig struct {
	Left  KeyPair  `yaml:"left"`
	Right KeyPair  `yaml:"right"`
	Quit  []string `yaml:"quit"` // Extra quit keys; Escape always quits
}

type KeyPair struct {
	Up   string `yaml:"up"`
	Down string `yaml:"down"`
}
