// Package config provides YAML-based configuration loading for the snake game.
package config

// SnakeConfig contains all configuration for a Snake session.
// Values are fixed once a session starts.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Snake   SnakeSetup    `yaml:"snake"`
	Theme   ThemeConfig   `yaml:"theme"`
	Audio   AudioConfig   `yaml:"audio"`
}

// BoardConfig defines the grid. The canvas is measured in pixels;
// the board is CanvasWidth/TileSize by CanvasHeight/TileSize cells.
type BoardConfig struct {
	TileSize     int `yaml:"tile_size"`
	CanvasWidth  int `yaml:"canvas_width"`
	CanvasHeight int `yaml:"canvas_height"`
}

// TilesX returns the number of columns on the board.
func (b BoardConfig) TilesX() int {
	return b.CanvasWidth / b.TileSize
}

// TilesY returns the number of rows on the board.
func (b BoardConfig) TilesY() int {
	return b.CanvasHeight / b.TileSize
}

// TimingConfig defines the tick cadence.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// ScoringConfig defines how eaten food converts to displayed points.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
}

// SnakeSetup defines the initial snake.
type SnakeSetup struct {
	InitialLength int `yaml:"initial_length"`
}

// ThemeConfig holds the palette, as hex colors.
type ThemeConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Head       string `yaml:"head"`
	Tail       string `yaml:"tail"`
	Food       string `yaml:"food"`
	Text       string `yaml:"text"`
}

// AudioConfig controls the optional sound cues.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}
