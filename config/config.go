package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window  WindowConfig  `toml:"window"`
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
	AI      AIConfig      `toml:"ai"`
}

type WindowConfig struct {
	Title  string  `toml:"title"`
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Scale  float64 `toml:"scale"`
}

type GameConfig struct {
	TPS   int    `toml:"tps"`
	Level string `toml:"level"`
	Seed  uint64 `toml:"seed"` // 0 = random
	Watch bool   `toml:"watch"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// AIConfig tunes enemy perception and movement for every enemy in a level.
type AIConfig struct {
	AlwaysDetectRadius float64       `toml:"always_detect_radius"`
	SightDistance      float64       `toml:"sight_distance"`
	ArriveEpsilon      float64       `toml:"arrive_epsilon"`
	SeparationRadius   float64       `toml:"separation_radius"`
	RepulsionRate      float64       `toml:"repulsion_rate"`
	NavTolerance       float64       `toml:"nav_tolerance"`
	StunDuration       time.Duration `toml:"stun_duration"`
	StunRange          float64       `toml:"stun_range"`
}

// Load reads path over Defaults. Keys missing from the file keep their
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "drugtest",
			Width:  960,
			Height: 640,
			Scale:  1,
		},
		Game: GameConfig{
			TPS:   60,
			Level: "arena",
			Watch: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		AI: AIConfig{
			AlwaysDetectRadius: 40,
			SightDistance:      35000,
			ArriveEpsilon:      0.1,
			SeparationRadius:   25,
			RepulsionRate:      400,
			NavTolerance:       0.5,
			StunDuration:       1500 * time.Millisecond,
			StunRange:          60,
		},
	}
}

func (c *Config) Validate() error {
	if c.Game.TPS <= 0 {
		return fmt.Errorf("game.tps must be positive, got %d", c.Game.TPS)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.AI.ArriveEpsilon <= 0 {
		return fmt.Errorf("ai.arrive_epsilon must be positive, got %v", c.AI.ArriveEpsilon)
	}
	return nil
}
