package levels

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs/component"
)

var (
	ErrUnknownMovementType = errors.New("levels: unknown movement type")
	ErrNoNavmesh           = errors.New("levels: level has no navmesh")
)

// Level is a hand-authored arena: its walkable surface, the geometry that
// blocks sight, and where everything spawns. The y axis points up.
type Level struct {
	Name    string       `yaml:"name"`
	Navmesh NavmeshSpec  `yaml:"navmesh"`
	Walls   []RectSpec   `yaml:"walls"`
	Sensors []RectSpec   `yaml:"sensors"`
	Player  Point        `yaml:"player"`
	Enemies []EnemySpawn `yaml:"enemies"`
	Pills   []PillSpawn  `yaml:"pills"`
}

type NavmeshSpec struct {
	Rects     []RectSpec `yaml:"rects"`
	Triangles [][3]Point `yaml:"triangles"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (p Point) Vec() common.Vec2 {
	return common.V(p.X, p.Y)
}

// RectSpec is an axis-aligned box given by its lower-left corner and size.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r RectSpec) Rect() common.Rect {
	return common.NewRect(common.V(r.X, r.Y), common.V(r.X+r.W, r.Y+r.H))
}

type EnemySpawn struct {
	X        float64      `yaml:"x"`
	Y        float64      `yaml:"y"`
	Facing   string       `yaml:"facing"`
	Prefab   string       `yaml:"prefab"`
	Movement MovementSpec `yaml:"movement"`
}

func (e EnemySpawn) Position() common.Vec2 {
	return common.V(e.X, e.Y)
}

// PillSpawn places a pill whose main effect is the named positive effect.
// The side effect is rolled when the level is loaded.
type PillSpawn struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Effect string  `yaml:"effect"`
}

func (p PillSpawn) Position() common.Vec2 {
	return common.V(p.X, p.Y)
}

// MovementSpec selects the idle behaviour of an enemy. Type is one of
// static, along_path or guard_area.
type MovementSpec struct {
	Type   string        `yaml:"type"`
	Target *Point        `yaml:"target"`
	Path   []Point       `yaml:"path"`
	Area   *RectSpec     `yaml:"area"`
	Wait   time.Duration `yaml:"wait"`
}

// Build turns m into a MovementType. A static enemy without a target
// guards its spawn point; a guard area without a wait uses defaultWait.
func (m MovementSpec) Build(spawn common.Vec2, defaultWait time.Duration) (component.MovementType, error) {
	switch m.Type {
	case "", "static":
		target := spawn
		if m.Target != nil {
			target = m.Target.Vec()
		}
		return component.NewStatic(target), nil
	case "along_path":
		points := make([]common.Vec2, 0, len(m.Path))
		for _, p := range m.Path {
			points = append(points, p.Vec())
		}
		mt, err := component.NewAlongPath(points)
		if err != nil {
			return component.MovementType{}, fmt.Errorf("levels: along_path: %w", err)
		}
		return mt, nil
	case "guard_area":
		if m.Area == nil || m.Area.W <= 0 || m.Area.H <= 0 {
			return component.MovementType{}, fmt.Errorf("levels: guard_area needs a non-empty area")
		}
		wait := m.Wait
		if wait <= 0 {
			wait = defaultWait
		}
		return component.NewGuardArea(m.Area.Rect(), wait), nil
	}
	return component.MovementType{}, fmt.Errorf("%w %q", ErrUnknownMovementType, m.Type)
}

// Parse decodes and validates a level.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks everything that can be checked without baking the navmesh.
func (l *Level) Validate() error {
	if len(l.Navmesh.Rects) == 0 && len(l.Navmesh.Triangles) == 0 {
		return ErrNoNavmesh
	}
	for i, e := range l.Enemies {
		if _, err := component.ParseDirection(e.Facing); err != nil {
			return fmt.Errorf("levels: enemy %d: %w", i, err)
		}
		if _, err := e.Movement.Build(e.Position(), time.Second); err != nil {
			return fmt.Errorf("levels: enemy %d: %w", i, err)
		}
	}
	for i, p := range l.Pills {
		if _, err := component.ParsePillEffect(p.Effect); err != nil {
			return fmt.Errorf("levels: pill %d: %w", i, err)
		}
	}
	return nil
}
