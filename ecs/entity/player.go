package entity

import (
	"fmt"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
	"github.com/milk9111/drugtest/prefabs"
)

func NewPlayer(w *ecs.World, pos common.Vec2) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.MovementComponent.Kind(), &component.Movement{Speed: playerSpec.MoveSpeed}); err != nil {
		return 0, fmt.Errorf("player: add movement: %w", err)
	}

	if err := ecs.Add(w, entity, component.FacingComponent.Kind(), &component.Facing{Direction: component.DirectionUp}); err != nil {
		return 0, fmt.Errorf("player: add facing: %w", err)
	}

	health := component.NewHealth(playerSpec.Health)
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.ColliderComponent.Kind(), &component.Collider{
		Width:  playerSpec.Collider.Width,
		Height: playerSpec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add collider: %w", err)
	}

	inventory := component.NewInventory(playerSpec.Inventory)
	if err := ecs.Add(w, entity, component.InventoryComponent.Kind(), &inventory); err != nil {
		return 0, fmt.Errorf("player: add inventory: %w", err)
	}

	return entity, nil
}

// GrantEffect applies one of the player's temporary effects using the
// durations from its prefab. Granting an active effect restarts it.
func GrantEffect(w *ecs.World, player ecs.Entity, effect Effect) error {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("player: load spec: %w", err)
	}
	fx := playerSpec.Effects

	switch effect {
	case EffectInvisibility:
		err = ecs.Add(w, player, component.InvisibilityComponent.Kind(), &component.Invisibility{
			Timer: component.NewTimer(fx.Invisibility, component.TimerOnce),
		})
	case EffectInvincibility:
		err = ecs.Add(w, player, component.InvincibilityComponent.Kind(), &component.Invincibility{
			Timer: component.NewTimer(fx.Invincibility, component.TimerOnce),
		})
	case EffectBoost:
		err = ecs.Add(w, player, component.MovementBoostComponent.Kind(), &component.MovementBoost{
			Multiplier: fx.BoostFactor,
			Timer:      component.NewTimer(fx.Boost, component.TimerOnce),
		})
	default:
		return fmt.Errorf("player: unknown effect %d", effect)
	}
	if err != nil {
		return fmt.Errorf("player: grant %s: %w", effect, err)
	}
	return nil
}

type Effect uint8

const (
	EffectInvisibility Effect = iota
	EffectInvincibility
	EffectBoost
)

func (e Effect) String() string {
	switch e {
	case EffectInvisibility:
		return "invisibility"
	case EffectInvincibility:
		return "invincibility"
	case EffectBoost:
		return "boost"
	}
	return fmt.Sprintf("effect(%d)", uint8(e))
}
