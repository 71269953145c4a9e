// Package config holds every externally supplied tuning value of the
// simulation. Values are plain data; behavior lives in the packages that
// consume them.
package config

import "fmt"

// Config is the root tuning document.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Sim         SimConfig         `yaml:"sim"`
	Forces      ForcesConfig      `yaml:"forces"`
	Locomotion  LocomotionConfig  `yaml:"locomotion"`
	Interaction InteractionConfig `yaml:"interaction"`
	Stats       StatsConfig       `yaml:"stats"`
}

// LoggingConfig selects log verbosity and encoding.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or console
}

// SimConfig controls the fixed-timestep loop.
type SimConfig struct {
	FrameRate      int     `yaml:"frame_rate"`      // Tick frequency (Hz)
	FixedRate      int     `yaml:"fixed_rate"`      // FixedTick frequency (Hz)
	SchedulerSlice float64 `yaml:"scheduler_slice"` // Regen timer granularity (s)
}

// ForcesConfig tunes gravity and knockback decay.
type ForcesConfig struct {
	Gravity float64 `yaml:"gravity"` // Negative, units/s^2
	Drag    float64 `yaml:"drag"`    // Impulse decay time constant (s)
}

// LocomotionConfig contains all movement-related tuning values.
type LocomotionConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	SprintSpeed     float64 `yaml:"sprint_speed"`
	RotationDamping float64 `yaml:"rotation_damping"` // Facing interpolation rate (1/s)
	BlendDampTime   float64 `yaml:"blend_damp_time"`  // Locomotion anim param smoothing (s)

	// Airborne
	JumpForce  float64 `yaml:"jump_force"`
	AirControl float64 `yaml:"air_control"` // Fraction of move speed usable mid-air

	// Dodge
	DodgeDistance float64 `yaml:"dodge_distance"`
	DodgeDuration float64 `yaml:"dodge_duration"`
}

// InteractionConfig tunes the interaction detector.
type InteractionConfig struct {
	DefaultRange   float64 `yaml:"default_range"`
	DetectionAngle float64 `yaml:"detection_angle"` // Cone half-angle, degrees
}

// StatsConfig tunes the optional stats modules.
type StatsConfig struct {
	Health      ResourceConfig    `yaml:"health"`
	Stamina     ResourceConfig    `yaml:"stamina"`
	Mana        ResourceConfig    `yaml:"mana"`
	SprintDrain float64           `yaml:"sprint_drain"` // Stamina/s while sprinting
	DodgeCost   float64           `yaml:"dodge_cost"`   // Stamina per dodge
	Progression ProgressionConfig `yaml:"progression"`
}

// ResourceConfig describes one regenerating pool (health, stamina, mana).
type ResourceConfig struct {
	Max            float64 `yaml:"max"`
	RegenPerSecond float64 `yaml:"regen_per_second"`
	RegenDelay     float64 `yaml:"regen_delay"` // Seconds after last spend before regen resumes
}

// ProgressionConfig describes XP thresholds: reaching
// BaseXP * Growth^(level-1) total XP advances to the next level.
type ProgressionConfig struct {
	BaseXP float64 `yaml:"base_xp"`
	Growth float64 `yaml:"growth"`
}

// Default returns the tuning used when no file overrides are supplied.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Sim: SimConfig{
			FrameRate:      60,
			FixedRate:      50,
			SchedulerSlice: 0.1,
		},
		Forces: ForcesConfig{
			Gravity: -9.81,
			Drag:    0.3,
		},
		Locomotion: LocomotionConfig{
			MoveSpeed:       4.0,
			SprintSpeed:     7.0,
			RotationDamping: 12.0,
			BlendDampTime:   0.12,
			JumpForce:       5.5,
			AirControl:      0.5,
			DodgeDistance:   3.0,
			DodgeDuration:   0.4,
		},
		Interaction: InteractionConfig{
			DefaultRange:   2.5,
			DetectionAngle: 70,
		},
		Stats: StatsConfig{
			Health:      ResourceConfig{Max: 100, RegenPerSecond: 1, RegenDelay: 5},
			Stamina:     ResourceConfig{Max: 100, RegenPerSecond: 20, RegenDelay: 1},
			Mana:        ResourceConfig{Max: 50, RegenPerSecond: 5, RegenDelay: 0.5},
			SprintDrain: 15,
			DodgeCost:   25,
			Progression: ProgressionConfig{BaseXP: 100, Growth: 1.5},
		},
	}
}

// Validate rejects values the simulation cannot run with. Soft issues
// (odd but workable tuning) are left to the caller to warn about.
func (c Config) Validate() error {
	if c.Sim.FrameRate <= 0 {
		return fmt.Errorf("sim.frame_rate must be positive, got %d", c.Sim.FrameRate)
	}
	if c.Sim.FixedRate <= 0 {
		return fmt.Errorf("sim.fixed_rate must be positive, got %d", c.Sim.FixedRate)
	}
	if c.Sim.SchedulerSlice <= 0 {
		return fmt.Errorf("sim.scheduler_slice must be positive, got %g", c.Sim.SchedulerSlice)
	}
	if c.Forces.Gravity >= 0 {
		return fmt.Errorf("forces.gravity must be negative, got %g", c.Forces.Gravity)
	}
	if c.Forces.Drag <= 0 {
		return fmt.Errorf("forces.drag must be positive, got %g", c.Forces.Drag)
	}
	if c.Locomotion.DodgeDuration <= 0 {
		return fmt.Errorf("locomotion.dodge_duration must be positive, got %g", c.Locomotion.DodgeDuration)
	}
	if c.Locomotion.DodgeDistance < 0 {
		return fmt.Errorf("locomotion.dodge_distance must not be negative, got %g", c.Locomotion.DodgeDistance)
	}
	if c.Interaction.DefaultRange <= 0 {
		return fmt.Errorf("interaction.default_range must be positive, got %g", c.Interaction.DefaultRange)
	}
	if c.Interaction.DetectionAngle <= 0 || c.Interaction.DetectionAngle > 180 {
		return fmt.Errorf("interaction.detection_angle must be in (0, 180], got %g", c.Interaction.DetectionAngle)
	}
	if c.Stats.Progression.Growth < 1 {
		return fmt.Errorf("stats.progression.growth must be >= 1, got %g", c.Stats.Progression.Growth)
	}
	return nil
}
