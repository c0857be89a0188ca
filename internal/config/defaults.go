package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			TileSize:     30,
			CanvasWidth:  600,
			CanvasHeight: 600,
		},
		Timing: TimingConfig{
			TicksPerSecond: 10,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 20,
		},
		Snake: SnakeSetup{
			InitialLength: 3,
		},
		Theme: ThemeConfig{
			Background: "#dfb5e0",
			Grid:       "#f9f9f9",
			Head:       "#000000",
			Tail:       "#4c4c4c",
			Food:       "#b5b6e0",
			Text:       "#808080",
		},
		Audio: AudioConfig{
			Enabled:    false,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
