package entity

import (
	"fmt"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
	"github.com/milk9111/drugtest/levels"
	"github.com/milk9111/drugtest/prefabs"
)

// NewEnemy spawns an idle enemy at pos from a level entry. Unit tunables
// come from the spawn's prefab; sight comes from the caller.
func NewEnemy(w *ecs.World, pos common.Vec2, spawn levels.EnemySpawn, sight component.Sight) (ecs.Entity, error) {
	enemySpec, err := prefabs.LoadEnemySpec(spawn.Prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: load spec: %w", err)
	}

	facing, err := component.ParseDirection(spawn.Facing)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	movementType, err := spawn.Movement.Build(pos, enemySpec.GuardWait)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("enemy: add transform: %w", err)
	}

	state := component.Idle()
	if err := ecs.Add(w, entity, component.EnemyStateComponent.Kind(), &state); err != nil {
		return 0, fmt.Errorf("enemy: add state: %w", err)
	}

	if err := ecs.Add(w, entity, component.FacingComponent.Kind(), &component.Facing{Direction: facing}); err != nil {
		return 0, fmt.Errorf("enemy: add facing: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementTypeComponent.Kind(), &movementType); err != nil {
		return 0, fmt.Errorf("enemy: add movement type: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementTargetComponent.Kind(), &component.MovementTarget{}); err != nil {
		return 0, fmt.Errorf("enemy: add movement target: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{
		Speed:    enemySpec.MoveSpeed,
		RunSpeed: enemySpec.RunSpeed,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add movement: %w", err)
	}

	if err := ecs.Add(w, entity, component.SightComponent.Kind(), &sight); err != nil {
		return 0, fmt.Errorf("enemy: add sight: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyAttackComponent.Kind(), &component.EnemyAttack{
		Range:        enemySpec.Attack.Range,
		MinDamage:    enemySpec.Attack.MinDamage,
		DamageSpread: enemySpec.Attack.DamageSpread,
		Timer:        component.NewTimer(enemySpec.Attack.Cooldown, component.TimerRepeating),
	}); err != nil {
		return 0, fmt.Errorf("enemy: add attack: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Width:  enemySpec.Collider.Width,
		Height: enemySpec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add collider: %w", err)
	}

	return entity, nil
}
