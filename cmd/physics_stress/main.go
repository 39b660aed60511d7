// Headless physics stress driver. Drops a cloud of dynamic boxes onto a
// static ground in both the 2D and 3D worlds and reports step timings
// and contact counts.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"kinetic/internal/components"
	"kinetic/internal/config"
	"kinetic/internal/log"
	"kinetic/internal/physics"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg := config.Load(*configPath)
	logger := log.New(cfg.LogLevel())
	defer logger.Sync()

	logger.Info("stress run starting",
		zap.Int("bodies_2d", cfg.StressBodies2D()),
		zap.Int("bodies_3d", cfg.StressBodies3D()),
		zap.Int("steps", cfg.StressSteps()),
		zap.Float32("dt", cfg.StressDt()),
		zap.Int64("seed", cfg.StressSeed()))

	run3D(cfg, logger)
	run2D(cfg, logger)
}

func run3D(cfg *config.Config, logger *zap.Logger) {
	rng := rand.New(rand.NewSource(cfg.StressSeed()))
	extent := cfg.StressSpawnExtent()

	world := physics.NewWorld3D()
	world.Gravity = vmath.Vector3{Y: cfg.StressGravity3DY()}

	// Static ground plane, no rigidbody.
	ground := scene.NewObject("ground")
	ground.Position = vmath.Vector3{Y: -2}
	ground.AddComponent(components.NewBoxCollider3D(vmath.Vector3{X: extent * 2, Y: 1, Z: extent * 2}))
	world.AddObject(ground)

	for i := 0; i < cfg.StressBodies3D(); i++ {
		o := scene.NewObject(fmt.Sprintf("box-%04d", i))
		o.Position = vmath.Vector3{
			X: rng.Float32()*extent - extent/2,
			Y: rng.Float32() * extent,
			Z: rng.Float32()*extent - extent/2,
		}
		half := 0.5 + rng.Float32()*0.5
		o.AddComponent(components.NewBoxCollider3D(vmath.Vector3{X: half, Y: half, Z: half}))

		rb := components.NewRigidbody3D(o.Position, o.Rotation, 1+rng.Float32()*4, true)
		rb.SetInertiaFromBox(vmath.Vector3{X: half, Y: half, Z: half})
		rb.Velocity = vmath.Vector3{
			X: rng.Float32()*4 - 2,
			Y: 0,
			Z: rng.Float32()*4 - 2,
		}
		o.AddComponent(rb)

		world.AddObject(o)
	}

	steps := cfg.StressSteps()
	dt := cfg.StressDt()
	contacts := 0
	start := time.Now()
	for s := 0; s < steps; s++ {
		contacts += world.Update(dt)
	}
	elapsed := time.Since(start)

	logger.Info("3d run complete",
		zap.Int("bodies", cfg.StressBodies3D()),
		zap.Int("steps", steps),
		zap.Int("contacts", contacts),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_step", elapsed/time.Duration(steps)))
}

func run2D(cfg *config.Config, logger *zap.Logger) {
	rng := rand.New(rand.NewSource(cfg.StressSeed()))
	extent := cfg.StressSpawnExtent() * 10 // pixel scale

	world := physics.NewWorld2D()
	world.Gravity = vmath.Vector2{Y: cfg.StressGravity2DY()}

	// Static floor below the spawn area; Y grows downward.
	floor := scene.NewObject2D("floor")
	floor.SetPosition2D(vmath.Vector2{X: extent / 2, Y: extent + 20})
	floor.AddComponent(components.NewBoxCollider2D(extent*2, 40))
	world.AddObject(floor)

	for i := 0; i < cfg.StressBodies2D(); i++ {
		o := scene.NewObject2D(fmt.Sprintf("crate-%04d", i))
		o.SetPosition2D(vmath.Vector2{
			X: rng.Float32() * extent,
			Y: rng.Float32() * extent,
		})
		size := 10 + rng.Float32()*20
		o.AddComponent(components.NewBoxCollider2D(size, size))

		rb := components.NewRigidbody2D(o.Position2D(), 1+rng.Float32()*4, true)
		rb.Velocity = vmath.Vector2{X: rng.Float32()*100 - 50}
		o.AddComponent(rb)

		world.AddObject(o)
	}

	steps := cfg.StressSteps()
	dt := cfg.StressDt()
	contacts := 0
	start := time.Now()
	for s := 0; s < steps; s++ {
		contacts += world.Update(dt)
	}
	elapsed := time.Since(start)

	logger.Info("2d run complete",
		zap.Int("bodies", cfg.StressBodies2D()),
		zap.Int("steps", steps),
		zap.Int("contacts", contacts),
		zap.Duration("elapsed", elapsed),
		zap.Duration("per_step", elapsed/time.Duration(steps)))
}
