package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/threat-shooter/event"
	"github.com/lixenwraith/threat-shooter/parameter"
	"github.com/lixenwraith/threat-shooter/status"
	"github.com/lixenwraith/threat-shooter/vmath"
)

func newTestGrenades(rec *recorder, roster Roster) *GrenadeSystem {
	g := NewGrenadeSystem(rec, roster, status.NewRegistry(), rand.New(rand.NewSource(1)), 1920, 1080)
	g.Start()
	return g
}

func TestGrenadeSystem_TimeBoundDetonation(t *testing.T) {
	rec := &recorder{}
	enemies := newTestEnemies(rec)
	g := newTestGrenades(rec, enemies)
	g.SetCount(1)

	gr, ok := g.Throw(vmath.V(500, 500), vmath.V(800, 500))
	require.True(t, ok)
	assert.InDelta(t, 300.0/8.0, gr.Budget, 1e-9)
	assert.Equal(t, 0, g.Count())

	ticks := 0
	for len(g.Grenades()) > 0 && ticks < 100 {
		g.Tick(parameter.TickInterval)
		ticks++
		for _, fl := range g.Grenades() {
			assert.GreaterOrEqual(t, fl.Elapsed, 0.0)
		}
	}
	assert.Equal(t, 38, ticks)
	assert.True(t, gr.Exploded)
	assert.Equal(t, 1, rec.count(event.EventGrenadeExploded))
	require.Len(t, g.Explosions(), 1)
	assert.Equal(t, 0, g.Explosions()[0].Kills)
}

func TestGrenadeSystem_GroundDetonation(t *testing.T) {
	rec := &recorder{}
	g := newTestGrenades(rec, newTestEnemies(rec))
	g.SetCount(1)

	gr, ok := g.Throw(vmath.V(500, 1069), vmath.V(800, 1069))
	require.True(t, ok)
	g.Tick(parameter.TickInterval)
	g.Tick(parameter.TickInterval)
	g.Tick(parameter.TickInterval)
	assert.True(t, gr.Exploded)
	assert.Less(t, gr.Elapsed, gr.Budget)
	assert.GreaterOrEqual(t, gr.Pos.Y(), 1080-parameter.GrenadeGroundMargin)
}

func TestGrenadeSystem_BoundsDetonation(t *testing.T) {
	rec := &recorder{}
	g := newTestGrenades(rec, newTestEnemies(rec))
	g.SetCount(1)

	gr, _ := g.Throw(vmath.V(4, 500), vmath.V(-300, 500))
	g.Tick(parameter.TickInterval)
	assert.True(t, gr.Exploded)
	assert.Less(t, gr.Pos.X(), 0.0)
}

func TestGrenadeSystem_ZeroLengthThrow(t *testing.T) {
	rec := &recorder{}
	g := newTestGrenades(rec, newTestEnemies(rec))
	g.SetCount(1)

	gr, ok := g.Throw(vmath.V(300, 300), vmath.V(300, 300))
	require.True(t, ok)
	assert.Zero(t, gr.Budget)
	g.Tick(parameter.TickInterval)
	assert.True(t, gr.Exploded)
}

func TestGrenadeSystem_ThrowNeedsGrenades(t *testing.T) {
	g := newTestGrenades(&recorder{}, newTestEnemies(&recorder{}))
	_, ok := g.Throw(vmath.V(0, 0), vmath.V(10, 10))
	assert.False(t, ok)
	assert.Equal(t, 0, g.Count())
}

func TestGrenadeSystem_EnemyContactDetonation(t *testing.T) {
	rec := &recorder{}
	enemies := newTestEnemies(rec)
	target := enemies.SpawnAt(vmath.V(550, 500))
	g := newTestGrenades(rec, enemies)
	g.SetCount(1)

	gr, _ := g.Throw(vmath.V(500, 500), vmath.V(900, 500))
	g.Tick(parameter.TickInterval)
	assert.True(t, gr.Exploded)
	_, alive := enemies.Enemy(target.ID)
	assert.False(t, alive)
	assert.Equal(t, 1, enemies.KillCount())
}

func TestGrenadeSystem_ExplosionKillsNearestFour(t *testing.T) {
	rec := &recorder{}
	enemies := newTestEnemies(rec)
	center := vmath.V(1000, 500)
	offsets := []float64{70, 10, 50, 30, 60, 20}
	ids := make(map[float64]uint64)
	for _, d := range offsets {
		ids[d] = enemies.SpawnAt(center.Add(vmath.V(d, 0))).ID
	}
	outside := enemies.SpawnAt(center.Add(vmath.V(0, 90)))

	g := newTestGrenades(rec, enemies)
	gr := &Grenade{Pos: center}
	kills := g.Detonate(gr)
	assert.Equal(t, parameter.ExplosionMaxKills, kills)

	for _, d := range []float64{10, 20, 30, 50} {
		_, alive := enemies.Enemy(ids[d])
		assert.False(t, alive, "enemy at %v", d)
	}
	for _, d := range []float64{60, 70} {
		_, alive := enemies.Enemy(ids[d])
		assert.True(t, alive, "enemy at %v", d)
	}
	_, alive := enemies.Enemy(outside.ID)
	assert.True(t, alive)

	var order []uint64
	for _, ev := range rec.events {
		if ev.Type == event.EventEnemyKilled {
			order = append(order, ev.Payload.(*event.EnemyPayload).EnemyID)
		}
	}
	assert.Equal(t, []uint64{ids[10], ids[20], ids[30], ids[50]}, order)

	// Second detonation of the same grenade is a no-op
	assert.Equal(t, -1, g.Detonate(gr))
	assert.Equal(t, 4, enemies.KillCount())
	assert.Equal(t, 1, rec.count(event.EventGrenadeExploded))
}

func TestGrenadeSystem_PickupCollectClamped(t *testing.T) {
	rec := &recorder{}
	g := newTestGrenades(rec, newTestEnemies(rec))
	player := vmath.V(100, 100)

	for i := 0; i < parameter.MaxGrenades+2; i++ {
		g.SpawnPickupAt(player.Add(vmath.V(10, 0)))
		assert.Equal(t, 1, g.CollectPickups(player, parameter.PlayerRadius))
	}
	assert.Equal(t, parameter.MaxGrenades, g.Count())
	assert.Empty(t, g.Pickups())

	g.SetCount(-4)
	assert.Equal(t, 0, g.Count())
	g.SetCount(99)
	assert.Equal(t, parameter.MaxGrenades, g.Count())
}

func TestGrenadeSystem_PickupOutOfReach(t *testing.T) {
	g := newTestGrenades(&recorder{}, newTestEnemies(&recorder{}))
	g.SpawnPickupAt(vmath.V(100+parameter.PickupRadius+parameter.PlayerRadius, 100))
	assert.Zero(t, g.CollectPickups(vmath.V(100, 100), parameter.PlayerRadius))
	assert.Len(t, g.Pickups(), 1)
}

func TestGrenadeSystem_PickupExpiry(t *testing.T) {
	g := newTestGrenades(&recorder{}, newTestEnemies(&recorder{}))
	g.spawnTask.Cancel()

	g.SpawnPickupAt(vmath.V(50, 50))
	g.Tick(parameter.PickupLifetime - time.Millisecond)
	assert.Len(t, g.Pickups(), 1)
	g.Tick(time.Millisecond)
	assert.Empty(t, g.Pickups())
}

func TestGrenadeSystem_PeriodicPickups(t *testing.T) {
	g := newTestGrenades(&recorder{}, newTestEnemies(&recorder{}))
	g.Tick(parameter.PickupSpawnInterval)
	require.Len(t, g.Pickups(), 1)
	p := g.Pickups()[0]
	assert.True(t, p.Pos.X() >= 0 && p.Pos.X() <= 1920)
	assert.True(t, p.Pos.Y() >= 0 && p.Pos.Y() <= 1080)
}

func TestGrenadeSystem_Reset(t *testing.T) {
	g := newTestGrenades(&recorder{}, newTestEnemies(&recorder{}))
	g.SetCount(3)
	g.SpawnPickupAt(vmath.V(1, 1))
	g.Throw(vmath.V(500, 500), vmath.V(600, 500))

	g.Reset()
	assert.Zero(t, g.Count())
	assert.Empty(t, g.Grenades())
	assert.Empty(t, g.Pickups())
	assert.False(t, g.Running())
}
