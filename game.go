package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/hypernova/common"
	"github.com/milk9111/hypernova/ecs"
	"github.com/milk9111/hypernova/ecs/component"
	"github.com/milk9111/hypernova/ecs/entity"
	"github.com/milk9111/hypernova/ecs/system"
	"github.com/milk9111/hypernova/noise"
	"github.com/milk9111/hypernova/obj"
	"github.com/milk9111/hypernova/prefabs"
	"github.com/milk9111/hypernova/render"
)

// One logical tick per rendered frame at ebiten's fixed 60 TPS.
const tickSeconds = 1.0 / 60.0

type Game struct {
	world  *ecs.World
	pool   *obj.BulletPool
	camera *obj.Camera
	clock  *obj.Clock

	renderer  *system.RenderSystem
	collision *system.CollisionSystem
	player    *system.PlayerControllerSystem

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI

	paused bool
	quit   bool
	debug  bool
}

func NewGame(debug bool) (*Game, error) {
	tuning, err := prefabs.LoadTuning()
	if err != nil {
		return nil, fmt.Errorf("load tuning: %w", err)
	}

	field := noise.New(time.Now().UnixNano())
	camera := obj.NewCamera(field, cameraConfig(tuning))
	clock := obj.NewClock(tickSeconds)

	metas, err := bulletMetas(tuning)
	if err != nil {
		return nil, err
	}
	pool := obj.NewBulletPool(metas, tuning.Pool.InitialSize)

	world := ecs.NewWorld()
	pool.Warm(world)

	if _, err := entity.NewPlayer(world); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	scriptSrc, err := prefabs.LoadScript("spawn_point.tengo")
	if err != nil {
		return nil, fmt.Errorf("load spawn script: %w", err)
	}
	respawn, err := system.NewRespawnSystem(tuning.Arena.Width, tuning.Arena.Height, scriptSrc)
	if err != nil {
		return nil, err
	}

	spawnPos, err := respawn.SpawnPoint()
	if err != nil {
		return nil, fmt.Errorf("initial hostile placement: %w", err)
	}
	if _, err := entity.NewHostileAt(world, spawnPos); err != nil {
		return nil, fmt.Errorf("spawn hostile: %w", err)
	}

	g := &Game{
		world:     world,
		pool:      pool,
		camera:    camera,
		clock:     clock,
		renderer:  system.NewRenderSystem(camera),
		collision: system.NewCollisionSystem(pool, camera, clock, tuning.Collision, tuning.Shake),
		player:    system.NewPlayerControllerSystem(pool, camera, tuning.Player),
		debug:     debug,
	}

	// Pipeline order matters: spawns before motion, despawns after
	// collision, cull after despawns, camera last.
	world.AddSystem(system.NewInputSystem())
	world.AddSystem(g.player)
	world.AddSystem(system.NewBulletSpawnSystem(pool))
	world.AddSystem(system.NewMovementSystem(clock))
	world.AddSystem(g.collision)
	world.AddSystem(system.NewBulletDespawnSystem(pool))
	world.AddSystem(system.NewCullSystem(pool, common.BaseWidth))
	world.AddSystem(respawn)
	world.AddSystem(system.NewCameraSystem(camera, clock))

	// Hot reload is best effort; without an on-disk prefabs dir the embedded
	// files are all there is.
	if watcher, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainReloads()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.clock.Advance()
	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %.2f  FPS: %.2f  shakes: %d  exhaustions: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.camera.LiveShakes(), g.pool.Exhaustions()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// drainReloads applies any pending prefab/tuning edits to the live tunables.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: %s changed, reloading tuning", name)
			changed = true
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			if !changed {
				return
			}
			tuning, err := prefabs.LoadTuning()
			if err != nil {
				log.Printf("reload tuning: %v", err)
				return
			}
			g.camera.SetConfig(cameraConfig(tuning))
			g.collision.SetTuning(tuning.Collision, tuning.Shake)
			g.player.SetTuning(tuning.Player)
			return
		}
	}
}

func cameraConfig(tuning prefabs.Tuning) obj.CameraConfig {
	return obj.CameraConfig{
		SnapThreshold:     tuning.Camera.SnapThreshold,
		MaxDistance:       tuning.Camera.MaxDistance,
		MinSmooth:         tuning.Camera.MinSmooth,
		MaxSmooth:         tuning.Camera.MaxSmooth,
		ShakeCircleRadius: tuning.Shake.CircleRadius,
		ShakeOffsetRange:  tuning.Shake.OffsetRange,
	}
}

func bulletMetas(tuning prefabs.Tuning) (map[component.BulletKind]obj.BulletMeta, error) {
	metas := make(map[component.BulletKind]obj.BulletMeta, len(tuning.Bullets))
	for name, spec := range tuning.Bullets {
		kind, err := component.ParseBulletKind(name)
		if err != nil {
			return nil, fmt.Errorf("bullet metas: %w", err)
		}
		col, err := render.NamedColor(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("bullet metas: kind %s: %w", kind, err)
		}
		metas[kind] = obj.BulletMeta{
			Mesh:  render.NGon(spec.Radius, spec.Vertices, col),
			Speed: spec.Speed,
			Layer: spec.Layer,
		}
	}
	return metas, nil
}
