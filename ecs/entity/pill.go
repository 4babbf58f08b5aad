package entity

import (
	"fmt"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
	"github.com/milk9111/drugtest/prefabs"
)

// NewPill spawns a pickup holding pill. Its collider is a sensor so it never
// blocks sight.
func NewPill(w *ecs.World, pos common.Vec2, pill component.Pill) (ecs.Entity, error) {
	pillSpec, err := prefabs.LoadPillSpec()
	if err != nil {
		return 0, fmt.Errorf("pill: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PillComponent.Kind(), &pill); err != nil {
		return 0, fmt.Errorf("pill: add pill: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("pill: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Width:  pillSpec.Collider.Width,
		Height: pillSpec.Collider.Height,
		Sensor: true,
	}); err != nil {
		return 0, fmt.Errorf("pill: add collider: %w", err)
	}

	return entity, nil
}
