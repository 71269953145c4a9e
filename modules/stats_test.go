package modules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/strideproj/stride/config"
	"github.com/strideproj/stride/events"
	"github.com/strideproj/stride/gamemath"
)

func TestStaminaSpendAndRegen(t *testing.T) {
	st := NewStamina(config.ResourceConfig{Max: 100, RegenPerSecond: 20, RegenDelay: 1}, 15, 25)
	r := NewRegistry(st)
	host := newTestHost(r)
	require.NoError(t, r.Install(host))

	require.True(t, st.SpendDodge())
	assert.InDelta(t, 75, st.Current(), 1e-9)

	// Within the regen delay nothing comes back.
	host.sched.Advance(0.5)
	assert.InDelta(t, 75, st.Current(), 1e-9)

	// After the delay the pool refills at RegenPerSecond.
	host.sched.Advance(1.0)
	assert.Greater(t, st.Current(), 75.0)

	host.sched.Advance(10)
	assert.InDelta(t, 100, st.Current(), 1e-9, "regen caps at max")
}

func TestStaminaInsufficientIsNoop(t *testing.T) {
	st := NewStamina(config.ResourceConfig{Max: 10, RegenPerSecond: 0, RegenDelay: 0}, 15, 25)
	r := NewRegistry(st)
	require.NoError(t, r.Install(newTestHost(r)))

	assert.False(t, st.SpendDodge())
	assert.InDelta(t, 10, st.Current(), 1e-9, "failed spend leaves the pool untouched")
}

func TestHealthDamageKnockbackAndDeath(t *testing.T) {
	hp := NewHealth(config.ResourceConfig{Max: 30, RegenPerSecond: 0, RegenDelay: 0})
	r := NewRegistry(hp)
	host := newTestHost(r)
	require.NoError(t, r.Install(host))

	var damage []events.DamageTaken
	died := 0
	events.DamageTakenEvent.Subscribe(host.world, func(_ donburi.World, e events.DamageTaken) {
		damage = append(damage, e)
	})
	events.DiedEvent.Subscribe(host.world, func(donburi.World, events.Died) { died++ })

	require.True(t, hp.Damage(10, gamemath.Vec3{X: 4}))
	assert.InDelta(t, 4, host.handler.Impulse().X, 1e-9, "knockback routed to forces")

	require.True(t, hp.Damage(25, gamemath.Vec3{}))
	assert.False(t, hp.Alive())
	assert.Zero(t, hp.Current())

	assert.False(t, hp.Damage(5, gamemath.Vec3{}), "dead characters take no further damage")

	events.Process(host.world)
	require.Len(t, damage, 2)
	assert.InDelta(t, 20, damage[0].Remaining, 1e-9)
	assert.Zero(t, damage[1].Remaining)
	assert.Equal(t, 1, died)
}

func TestHealthRegenPausesWhileDead(t *testing.T) {
	hp := NewHealth(config.ResourceConfig{Max: 30, RegenPerSecond: 10, RegenDelay: 0})
	r := NewRegistry(hp)
	host := newTestHost(r)
	require.NoError(t, r.Install(host))

	hp.Damage(30, gamemath.Vec3{})
	host.sched.Advance(5)
	assert.Zero(t, hp.Current(), "no regeneration after death")
}

func TestProgressionLevelUps(t *testing.T) {
	prog := NewProgression(config.ProgressionConfig{BaseXP: 100, Growth: 2})
	r := NewRegistry(prog)
	host := newTestHost(r)
	require.NoError(t, r.Install(host))

	var ups []int
	events.LevelUpEvent.Subscribe(host.world, func(_ donburi.World, e events.LevelUp) {
		ups = append(ups, e.Level)
	})

	prog.GrantXP(99)
	assert.Equal(t, 1, prog.Level())

	// 100 total crosses the first threshold; 300 total crosses the second
	// (100 * 2), both from a single large grant.
	prog.GrantXP(201)
	assert.Equal(t, 3, prog.Level())

	events.Process(host.world)
	assert.Equal(t, []int{2, 3}, ups)
}
