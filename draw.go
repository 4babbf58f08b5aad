package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/drugtest/common"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
)

const (
	viewMargin   = 20
	entityRadius = 10
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// worldToScreen flips y so that world up is screen up.
func (g *Game) worldToScreen(p common.Vec2) (float32, float32) {
	return float32(viewMargin + p.X), float32(float64(g.cfg.Window.Height) - viewMargin - p.Y)
}

func (g *Game) screenToWorld(x, y int) common.Vec2 {
	return common.V(float64(x)-viewMargin, float64(g.cfg.Window.Height)-viewMargin-float64(y))
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	g.drawNavmesh(screen)
	for _, r := range g.level.Level.Walls {
		g.fillRect(screen, r.Rect(), colornames.Dimgray)
	}
	for _, r := range g.level.Level.Sensors {
		g.fillRect(screen, r.Rect(), color.NRGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0x60})
	}

	g.drawPills(screen)
	g.drawEnemies(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) fillRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x, y := g.worldToScreen(common.V(r.Min.X, r.Max.Y))
	vector.FillRect(screen, x, y, float32(r.Width()), float32(r.Height()), clr, false)
}

func (g *Game) strokeRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	x, y := g.worldToScreen(common.V(r.Min.X, r.Max.Y))
	vector.StrokeRect(screen, x, y, float32(r.Width()), float32(r.Height()), 1, clr, false)
}

func (g *Game) line(screen *ebiten.Image, a, b common.Vec2, width float32, clr color.Color) {
	ax, ay := g.worldToScreen(a)
	bx, by := g.worldToScreen(b)
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
}

func (g *Game) drawNavmesh(screen *ebiten.Image) {
	mesh := g.level.Mesh
	verts := mesh.Vertices()
	edge := color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0x50}
	if g.debug {
		edge.A = 0xa0
	}
	for _, tri := range mesh.Triangles() {
		a, b, c := verts[tri.A], verts[tri.B], verts[tri.C]
		g.line(screen, a, b, 1, edge)
		g.line(screen, b, c, 1, edge)
		g.line(screen, c, a, 1, edge)
	}
}

func stateColor(s component.EnemyState) color.Color {
	switch {
	case s.IsAlert():
		return colornames.Crimson
	case s.IsStunned():
		return colornames.Deepskyblue
	default:
		return colornames.Gold
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	ecs.ForEach4(g.world,
		component.EnemyStateComponent.Kind(),
		component.TransformComponent.Kind(),
		component.FacingComponent.Kind(),
		component.MovementTargetComponent.Kind(),
		func(e ecs.Entity, state *component.EnemyState, tr *component.Transform, facing *component.Facing, target *component.MovementTarget) {
			pos := tr.Position()
			if g.debug {
				g.drawEnemyDebug(screen, e, pos, target)
			}

			x, y := g.worldToScreen(pos)
			vector.DrawFilledCircle(screen, x, y, entityRadius, stateColor(*state), true)
			tip := pos.Add(facing.Direction.Vector().Mult(entityRadius * 1.8))
			g.line(screen, pos, tip, 2, colornames.White)

			if g.debug {
				op := &text.DrawOptions{}
				op.GeoM.Translate(float64(x)-entityRadius, float64(y)-entityRadius-16)
				op.ColorScale.ScaleWithColor(colornames.Lightgray)
				text.Draw(screen, state.String(), labelFace, op)
			}
		})
}

func (g *Game) drawEnemyDebug(screen *ebiten.Image, e ecs.Entity, pos common.Vec2, target *component.MovementTarget) {
	prev := pos
	for _, p := range target.Path {
		g.line(screen, prev, p, 1, colornames.Orange)
		prev = p
	}

	mt, ok := ecs.Get(g.world, e, component.MovementTypeComponent.Kind())
	if !ok {
		return
	}
	switch mt.Kind() {
	case component.MovementGuardArea:
		g.strokeRect(screen, mt.Area(), colornames.Mediumpurple)
	case component.MovementAlongPath:
		wps := mt.Waypoints()
		for i := range wps {
			g.line(screen, wps[i], wps[(i+1)%len(wps)], 1, colornames.Slategray)
		}
	}
}

func pillColor(k component.PillEffectKind) color.Color {
	switch k {
	case component.PillHeal:
		return colornames.Limegreen
	case component.PillSpeed:
		return colornames.Cyan
	case component.PillInvisibility:
		return colornames.Lavender
	case component.PillInvincibility:
		return colornames.Yellow
	default:
		return colornames.Saddlebrown
	}
}

func (g *Game) drawPills(screen *ebiten.Image) {
	ecs.ForEach2(g.world, component.PillComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pill *component.Pill, tr *component.Transform) {
		x, y := g.worldToScreen(tr.Position())
		vector.FillRect(screen, x-6, y-3, 12, 6, pillColor(pill.Main.Kind), true)
		vector.StrokeRect(screen, x-6, y-3, 12, 6, 1, colornames.White, true)
	})
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	player := g.level.Player
	tr, ok := ecs.Get(g.world, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	clr := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if ecs.Has(g.world, player, component.InvisibilityComponent.Kind()) {
		clr.A = 0x60
	}
	x, y := g.worldToScreen(tr.Position())
	vector.DrawFilledCircle(screen, x, y, entityRadius, clr, true)
	if ecs.Has(g.world, player, component.InvincibilityComponent.Kind()) {
		vector.StrokeCircle(screen, x, y, entityRadius+4, 2, colornames.Yellow, true)
	}
	if ecs.Has(g.world, player, component.MovementBoostComponent.Kind()) {
		vector.StrokeCircle(screen, x, y, entityRadius+8, 1, colornames.Lime, true)
	}
	if ecs.Has(g.world, player, component.DizzinessComponent.Kind()) {
		vector.StrokeCircle(screen, x, y, entityRadius+12, 1, colornames.Hotpink, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	player := g.level.Player
	hp := 0.0
	if h, ok := ecs.Get(g.world, player, component.HealthComponent.Kind()); ok {
		hp = h.Current
	}

	msg := fmt.Sprintf("%s  HP %.0f  deaths %d  FPS %.0f\n", g.level.Level.Name, hp, g.deaths, ebiten.ActualFPS())
	msg += inventoryLine(g.world, player)
	msg += effectLine(g.world, player)
	msg += "WASD move  1-3 swallow pill  4 invisible  5 invincible  6 boost  F stun  R reload"
	if g.clipboard {
		msg += "  C copy cursor"
	}
	if g.debug {
		msg += fmt.Sprintf("\npath failures %d", g.pathFailures)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func inventoryLine(w *ecs.World, player ecs.Entity) string {
	inv, ok := ecs.Get(w, player, component.InventoryComponent.Kind())
	if !ok {
		return ""
	}
	slots := make([]string, inv.Capacity())
	for i := range slots {
		if p, ok := inv.Get(i); ok {
			slots[i] = fmt.Sprintf("%d:%s", i+1, p.Main.Kind)
		} else {
			slots[i] = fmt.Sprintf("%d:-", i+1)
		}
	}
	return "pills " + strings.Join(slots, "  ") + "\n"
}

func effectLine(w *ecs.World, player ecs.Entity) string {
	var parts []string
	if inv, ok := ecs.Get(w, player, component.InvisibilityComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("invisible %.1fs", inv.Timer.Remaining().Seconds()))
	}
	if inv, ok := ecs.Get(w, player, component.InvincibilityComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("invincible %.1fs", inv.Timer.Remaining().Seconds()))
	}
	if b, ok := ecs.Get(w, player, component.MovementBoostComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("speed x%.1f %.1fs", b.Multiplier, b.Timer.Remaining().Seconds()))
	}
	if d, ok := ecs.Get(w, player, component.DizzinessComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("dizzy %.1fs", d.Timer.Remaining().Seconds()))
	}
	if v, ok := ecs.Get(w, player, component.VulnerabilityComponent.Kind()); ok {
		parts = append(parts, fmt.Sprintf("vulnerable x%.1f %.1fs", v.Multiplier, v.Timer.Remaining().Seconds()))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + "\n"
}
