package system

import (
	"slices"

	"go.uber.org/zap"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

const defaultPickupRadius = 20

// PillSystem moves pills the player touches into its inventory and then
// swallows the slots requested this tick. Touching is box overlap in the
// physics world when both have colliders, or centre distance under
// PickupRadius otherwise.
type PillSystem struct {
	PickupRadius float64

	log *zap.Logger
}

func NewPillSystem(log *zap.Logger) *PillSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PillSystem{PickupRadius: defaultPickupRadius, log: log}
}

func (s *PillSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	player, playerPos, ok := playerPosition(w)
	if !ok {
		return
	}
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return
	}

	s.pickUp(w, player, playerPos, inv)
	s.consume(w, player, inv)
}

func (s *PillSystem) pickUp(w *ecs.World, player ecs.Entity, playerPos common.Vec2, inv *component.Inventory) {
	var touching []ecs.Entity
	pw := w.PhysicsWorld()
	usePhysics := pw != nil && ecs.Has(w, player, component.ColliderComponent.Kind())
	if usePhysics {
		touching = pw.Overlapping(player)
	}

	ecs.ForEach2(w, component.PillComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pill *component.Pill, tr *component.Transform) {
		if usePhysics && ecs.Has(w, e, component.ColliderComponent.Kind()) {
			if !slices.Contains(touching, e) {
				return
			}
		} else if tr.Position().Distance(playerPos) >= s.PickupRadius {
			return
		}
		if !inv.Add(*pill) {
			return
		}
		s.log.Debug("picked up pill",
			zap.Stringer("main", pill.Main.Kind),
			zap.Stringer("side", pill.Side.Kind),
			zap.Int("held", inv.Len()),
		)
		ecs.DestroyEntity(w, e)
	})
}

func (s *PillSystem) consume(w *ecs.World, player ecs.Entity, inv *component.Inventory) {
	req, ok := ecs.Get(w, player, component.PillRequestComponent.Kind())
	if !ok {
		return
	}
	slots := req.Slots
	ecs.Remove(w, player, component.PillRequestComponent.Kind())

	for _, slot := range slots {
		pill, ok := inv.Remove(slot)
		if !ok {
			continue
		}
		for _, fx := range []component.PillEffect{pill.Main, pill.Side} {
			if err := ApplyPillEffect(w, player, fx); err != nil {
				s.log.Warn("apply pill effect", zap.Stringer("effect", fx.Kind), zap.Error(err))
			}
		}
	}
}

// ApplyPillEffect puts one pill effect on the player. A timed effect that is
// already running is restarted. Toxic fart and sneeze have no gameplay effect.
func ApplyPillEffect(w *ecs.World, player ecs.Entity, fx component.PillEffect) error {
	once := func() component.Timer { return component.NewTimer(fx.Duration, component.TimerOnce) }

	switch fx.Kind {
	case component.PillHeal:
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			h.Heal(fx.Amount)
		}
		return nil
	case component.PillSpeed:
		return ecs.Add(w, player, component.MovementBoostComponent.Kind(), &component.MovementBoost{Multiplier: fx.Amount, Timer: once()})
	case component.PillInvisibility:
		return ecs.Add(w, player, component.InvisibilityComponent.Kind(), &component.Invisibility{Timer: once()})
	case component.PillInvincibility:
		return ecs.Add(w, player, component.InvincibilityComponent.Kind(), &component.Invincibility{Timer: once()})
	case component.PillDizziness:
		return ecs.Add(w, player, component.DizzinessComponent.Kind(), &component.Dizziness{Timer: once()})
	case component.PillVulnerability:
		return ecs.Add(w, player, component.VulnerabilityComponent.Kind(), &component.Vulnerability{Multiplier: fx.Amount, Timer: once()})
	}
	return nil
}

// ConsumePill queues inventory slot for the next PillSystem update. Slots
// are swallowed in request order, each against the inventory left by the
// previous one.
func ConsumePill(w *ecs.World, player ecs.Entity, slot int) error {
	if req, ok := ecs.Get(w, player, component.PillRequestComponent.Kind()); ok {
		req.Slots = append(req.Slots, slot)
		return nil
	}
	return ecs.Add(w, player, component.PillRequestComponent.Kind(), &component.PillRequest{Slots: []int{slot}})
}
