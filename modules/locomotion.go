package modules

import "github.com/strideproj/stride/config"

// Locomotion carries the movement tuning the states read: speeds, jump
// force, air control, dodge shape, damping rates. Pure data; required by
// every movement state, which degrade to no-ops when it is missing.
type Locomotion struct {
	config.LocomotionConfig
}

func NewLocomotion(cfg config.LocomotionConfig) *Locomotion {
	return &Locomotion{LocomotionConfig: cfg}
}

func (*Locomotion) Name() string { return "locomotion" }

func (*Locomotion) Install(Host) error { return nil }
