package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error

	b := c.Board
	switch {
	case b.TileSize <= 0:
		errs = append(errs, fmt.Errorf("config: board.tile_size must be positive, got %d", b.TileSize))
	case b.CanvasWidth <= 0 || b.CanvasHeight <= 0:
		errs = append(errs, fmt.Errorf("config: board canvas must be positive, got %dx%d", b.CanvasWidth, b.CanvasHeight))
	case b.CanvasWidth%b.TileSize != 0 || b.CanvasHeight%b.TileSize != 0:
		errs = append(errs, fmt.Errorf("config: board canvas %dx%d is not a multiple of tile_size %d",
			b.CanvasWidth, b.CanvasHeight, b.TileSize))
	case c.Snake.InitialLength > b.TilesX():
		errs = append(errs, fmt.Errorf("config: snake.initial_length %d exceeds board width of %d tiles",
			c.Snake.InitialLength, b.TilesX()))
	}

	if c.Timing.TicksPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("config: timing.ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond))
	}
	if c.Scoring.PointsPerFood <= 0 {
		errs = append(errs, fmt.Errorf("config: scoring.points_per_food must be positive, got %d", c.Scoring.PointsPerFood))
	}
	if c.Snake.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("config: snake.initial_length must be at least 1, got %d", c.Snake.InitialLength))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("config: audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("config: audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
