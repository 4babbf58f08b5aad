package prefabs

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name      string       `yaml:"name"`
	MoveSpeed float64      `yaml:"move_speed"`
	Health    float64      `yaml:"health"`
	Collider  ColliderSpec `yaml:"collider"`
	Effects   EffectsSpec  `yaml:"effects"`
	// Inventory is the number of pill slots. Zero means the default of 3.
	Inventory int `yaml:"inventory"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// EffectsSpec holds the strength and length of the effects the sandbox can
// grant the player.
type EffectsSpec struct {
	Invisibility  time.Duration `yaml:"invisibility"`
	Invincibility time.Duration `yaml:"invincibility"`
	Boost         time.Duration `yaml:"boost"`
	BoostFactor   float64       `yaml:"boost_factor"`
}

type PillSpec struct {
	Collider ColliderSpec `yaml:"collider"`
}

// LoadPillSpec loads the pill pickup prefab.
func LoadPillSpec() (*PillSpec, error) {
	spec, err := LoadSpec[PillSpec]("pill.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name      string        `yaml:"name"`
	MoveSpeed float64       `yaml:"move_speed"`
	RunSpeed  float64       `yaml:"run_speed"`
	GuardWait time.Duration `yaml:"guard_wait"`
	Attack    AttackSpec    `yaml:"attack"`
	Collider  ColliderSpec  `yaml:"collider"`
}

type AttackSpec struct {
	Range        float64       `yaml:"range"`
	MinDamage    float64       `yaml:"min_damage"`
	DamageSpread float64       `yaml:"damage_spread"`
	Cooldown     time.Duration `yaml:"cooldown"`
}

// LoadEnemySpec loads an enemy prefab. An empty name loads enemy.yaml.
func LoadEnemySpec(name string) (*EnemySpec, error) {
	if name == "" {
		name = "enemy.yaml"
	}
	spec, err := LoadSpec[EnemySpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
