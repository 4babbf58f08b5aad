package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.design/x/clipboard"

	"github.com/milk9111/drugtest/config"
	"github.com/milk9111/drugtest/ecs"
	"github.com/milk9111/drugtest/ecs/component"
	"github.com/milk9111/drugtest/ecs/entity"
	"github.com/milk9111/drugtest/ecs/system"
	"github.com/milk9111/drugtest/levels"
	"github.com/milk9111/drugtest/prefabs"
)

type Game struct {
	cfg   *config.Config
	log   *zap.Logger
	debug bool
	rng   *rand.Rand

	world *ecs.World
	level *entity.LoadedLevel

	watcher   *levels.Watcher
	clipboard bool

	pathFailures int
	deaths       int
}

func NewGame(cfg *config.Config, log *zap.Logger, debug bool) (*Game, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		cfg:   cfg,
		log:   log,
		debug: debug,
		rng:   rand.New(rand.NewPCG(seed, seed)),
	}
	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if cfg.Game.Watch {
		g.watcher = newWatcher(log)
	}
	return g, nil
}

// EnableClipboard turns on the copy-cursor shortcut when the system clipboard
// is reachable.
func (g *Game) EnableClipboard() {
	if err := clipboard.Init(); err != nil {
		g.log.Warn("clipboard unavailable", zap.Error(err))
		return
	}
	g.clipboard = true
}

// newWatcher watches whichever of the level and prefab directories exist on
// disk. Without either there is nothing to hot reload.
func newWatcher(log *zap.Logger) *levels.Watcher {
	var dirs []string
	for _, dir := range []string{levels.Dir, prefabs.Dir} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	w, err := levels.NewWatcher(dirs...)
	if err != nil {
		log.Warn("level hot reload disabled", zap.Error(err))
		return nil
	}
	log.Info("watching for level changes", zap.Strings("dirs", dirs))
	return w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// loadLevel builds a fresh world for the configured level. On failure the
// current world keeps running.
func (g *Game) loadLevel() error {
	name := g.cfg.Game.Level
	lvl, err := levels.Load(name)
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}

	w := ecs.NewWorld()
	loaded, err := entity.LoadLevelToWorld(w, lvl, entity.LevelOptions{
		Sight: component.Sight{
			AlwaysDetectRadius: g.cfg.AI.AlwaysDetectRadius,
			MaxDistance:        g.cfg.AI.SightDistance,
		},
		Rand: g.rng,
	})
	if err != nil {
		return fmt.Errorf("load level %s: %w", name, err)
	}
	system.Install(w, g.log, g.rng, system.Settings{
		ArriveEpsilon:    g.cfg.AI.ArriveEpsilon,
		SeparationRadius: g.cfg.AI.SeparationRadius,
		RepulsionRate:    g.cfg.AI.RepulsionRate,
		NavTolerance:     g.cfg.AI.NavTolerance,
	})

	g.world = w
	g.level = loaded
	g.log.Info("level loaded",
		zap.String("level", name),
		zap.Int("enemies", len(loaded.Enemies)),
		zap.Int("triangles", len(loaded.Mesh.Triangles())),
	)
	return nil
}

func (g *Game) reload(reason string) {
	if err := g.loadLevel(); err != nil {
		g.log.Error("reload failed", zap.String("reason", reason), zap.Error(err))
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("manual")
		return nil
	}

	player := g.level.Player
	if in, ok := ecs.Get(g.world, player, component.InputComponent.Kind()); ok {
		in.MoveX, in.MoveY = readMove()
	}
	g.handleActions(player)

	g.world.Update(time.Second / time.Duration(g.cfg.Game.TPS))

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventPathNotFound:
			g.pathFailures++
		case ecs.EventGameOver:
			g.deaths++
			g.log.Info("game over, restarting level", zap.Int("deaths", g.deaths))
			g.reload("game over")
			return nil
		}
	}

	if g.watcher != nil {
		if err := g.watcher.Err(); err != nil {
			g.log.Warn("level watcher", zap.Error(err))
		}
		if changed := g.watcher.Poll(); len(changed) > 0 {
			g.log.Info("data changed on disk", zap.Strings("files", changed))
			g.reload("hot reload")
		}
	}
	return nil
}

var pillKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

func (g *Game) handleActions(player ecs.Entity) {
	for slot, key := range pillKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := system.ConsumePill(g.world, player, slot); err != nil {
			g.log.Warn("consume pill", zap.Int("slot", slot), zap.Error(err))
		}
	}

	effects := map[ebiten.Key]entity.Effect{
		ebiten.Key4: entity.EffectInvisibility,
		ebiten.Key5: entity.EffectInvincibility,
		ebiten.Key6: entity.EffectBoost,
	}
	for key, effect := range effects {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := entity.GrantEffect(g.world, player, effect); err != nil {
			g.log.Warn("grant effect", zap.Stringer("effect", effect), zap.Error(err))
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.stunNearby(player)
	}

	if g.clipboard && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p := g.screenToWorld(ebiten.CursorPosition())
		snippet := fmt.Sprintf("{x: %.0f, y: %.0f}", p.X, p.Y)
		clipboard.Write(clipboard.FmtText, []byte(snippet))
		g.log.Info("copied cursor position", zap.String("yaml", snippet))
	}
}

func (g *Game) stunNearby(player ecs.Entity) {
	tr, ok := ecs.Get(g.world, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	pos := tr.Position()
	stunned := 0
	ecs.ForEach2(g.world, component.EnemyTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.EnemyTag, et *component.Transform) {
		if et.Position().Distance(pos) > g.cfg.AI.StunRange {
			return
		}
		if err := system.Stun(g.world, e, g.cfg.AI.StunDuration); err != nil {
			g.log.Warn("stun", zap.Stringer("enemy", e), zap.Error(err))
			return
		}
		stunned++
	})
	g.log.Debug("stun", zap.Int("enemies", stunned))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
