// Command stridesim runs a scripted headless demo of the character
// simulation: walk up to a lever, pull it, hold-open a chest, then sprint,
// jump, and dodge, logging every gameplay event on the way.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/strideproj/stride/body"
	"github.com/strideproj/stride/components"
	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/gamemath"
	"github.com/strideproj/stride/input"
	"github.com/strideproj/stride/interaction"
	"github.com/strideproj/stride/modules"
	"github.com/strideproj/stride/player"
	"github.com/strideproj/stride/sim"
	"github.com/strideproj/stride/tags"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML tuning file")
	duration := flag.Duration("duration", 10*time.Second, "How long to run the demo")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	world := donburi.NewWorld()
	flat := body.NewFlatWorld(64, 64, 8)
	flat.AddObstacle(28, 20, 8, 2) // wall past the chest
	playerBody := flat.NewBody(gamemath.Vec3{X: 32, Z: 8}, 1)

	health := modules.NewHealth(cfg.Stats.Health)
	stamina := modules.NewStamina(cfg.Stats.Stamina, cfg.Stats.SprintDrain, cfg.Stats.DodgeCost)
	mana := modules.NewMana(cfg.Stats.Mana)
	progression := modules.NewProgression(cfg.Stats.Progression)
	interact := interaction.NewModule(cfg.Interaction)

	spawnInteractable(world, gamemath.Vec3{X: 32, Z: 12}, components.InteractableData{
		ID:       uuid.New(),
		Prompt:   "Pull lever",
		Priority: 1,
		Enabled:  true,
		OnInteract: func() {
			// The trap behind the lever: chip damage plus a shove backwards.
			health.Damage(10, gamemath.Vec3{Z: -4})
		},
	})
	spawnInteractable(world, gamemath.Vec3{X: 32, Z: 15}, components.InteractableData{
		ID:           uuid.New(),
		Prompt:       "Open chest",
		HoldDuration: 1.5,
		Enabled:      true,
		OnInteract: func() {
			progression.GrantXP(150)
		},
	})

	p := player.NewPlayer(player.Options{
		Logger:    logger,
		World:     world,
		Body:      playerBody,
		Device:    demoScript(),
		Forces:    cfg.Forces,
		Scheduler: sim.NewScheduler(cfg.Sim.SchedulerSlice),
		Modules: []modules.Module{
			modules.NewLocomotion(cfg.Locomotion),
			health,
			stamina,
			mana,
			progression,
			interact,
		},
	})

	subscribeEventLog(world, logger)
	p.Start()

	loop := sim.NewLoop(p, cfg.Sim.FrameRate, cfg.Sim.FixedRate, logger)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			logger.Info("interrupted")
		case <-time.After(*duration):
		}
		loop.Stop()
	}()

	loop.Run()

	logger.Info("demo finished",
		zap.String("state", p.StateName()),
		zap.Float64("health", health.Current()),
		zap.Float64("stamina", stamina.Current()),
		zap.Int("level", progression.Level()),
		zap.Float64("xp", progression.XP()))
}

func spawnInteractable(w donburi.World, pos gamemath.Vec3, data components.InteractableData) {
	entry := w.Entry(w.Create(tags.Interactable, components.Transform, components.Interactable))
	components.Transform.SetValue(entry, components.TransformData{Position: pos})
	components.Interactable.SetValue(entry, data)
}

// demoScript is the input tape the demo plays back, at one sample per frame
// of a 60 Hz run.
func demoScript() input.Device {
	forward := input.Sample{Move: gamemath.Vec2{Y: 1}}
	sprint := forward
	sprint.Buttons[input.ActionSprint] = true
	jump := forward
	jump.Buttons[input.ActionJump] = true
	dodge := forward
	dodge.Buttons[input.ActionDodge] = true
	var hold input.Sample
	hold.Buttons[input.ActionInteract] = true

	return input.NewScript().
		Hold(forward, 60). // walk into lever range
		Press(input.ActionInteract).
		Hold(input.Sample{}, 30).
		Hold(forward, 45). // walk into chest range
		Hold(hold, 120).   // hold the chest open, done at 1.5s
		Hold(input.Sample{}, 30).
		Hold(sprint, 60).
		Hold(jump, 1).
		Hold(forward, 60). // airborne
		Hold(input.Sample{}, 60).
		Hold(dodge, 1).
		Hold(input.Sample{}, 60)
}

func subscribeEventLog(world donburi.World, logger *zap.Logger) {
	events.StateChangedEvent.Subscribe(world, func(w donburi.World, e events.StateChanged) {
		logger.Info("state changed", zap.String("from", e.From), zap.String("to", e.To))
	})
	events.FocusChangedEvent.Subscribe(world, func(w donburi.World, e events.FocusChanged) {
		logger.Info("focus changed", zap.String("prompt", e.Prompt), zap.String("target", e.Current.String()))
	})
	events.HoldProgressEvent.Subscribe(world, func(w donburi.World, e events.HoldProgress) {
		logger.Debug("hold progress", zap.Float64("progress", e.Progress))
	})
	events.InteractionPerformedEvent.Subscribe(world, func(w donburi.World, e events.InteractionPerformed) {
		logger.Info("interaction performed", zap.String("prompt", e.Prompt))
	})
	events.KnockbackEvent.Subscribe(world, func(w donburi.World, e events.Knockback) {
		logger.Info("knockback", zap.Bool("active", e.Active))
	})
	events.DamageTakenEvent.Subscribe(world, func(w donburi.World, e events.DamageTaken) {
		logger.Info("damage taken", zap.Float64("amount", e.Amount), zap.Float64("remaining", e.Remaining))
	})
	events.DiedEvent.Subscribe(world, func(w donburi.World, e events.Died) {
		logger.Warn("died")
	})
	events.LevelUpEvent.Subscribe(world, func(w donburi.World, e events.LevelUp) {
		logger.Info("level up", zap.Int("level", e.Level))
	})
}
