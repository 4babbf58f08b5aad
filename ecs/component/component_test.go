package component

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/drugtest/common"
)

func TestTimer(t *testing.T) {
	t.Run("once", func(t *testing.T) {
		tm := NewTimer(time.Second, TimerOnce)
		assert.False(t, tm.Tick(600*time.Millisecond).JustFinished())
		assert.Equal(t, 400*time.Millisecond, tm.Remaining())
		assert.True(t, tm.Tick(600*time.Millisecond).JustFinished())
		assert.True(t, tm.Finished())
		assert.False(t, tm.Tick(time.Second).JustFinished(), "fires only once")

		tm.Reset()
		assert.False(t, tm.Finished())
		assert.Zero(t, tm.Elapsed())
	})

	t.Run("repeating_carries_overflow", func(t *testing.T) {
		tm := NewTimer(time.Second, TimerRepeating)
		assert.True(t, tm.Tick(1300*time.Millisecond).JustFinished())
		assert.Equal(t, 300*time.Millisecond, tm.Elapsed())
		assert.False(t, tm.Finished())
		assert.False(t, tm.Tick(600*time.Millisecond).JustFinished())
		assert.True(t, tm.Tick(100*time.Millisecond).JustFinished())
	})
}

func TestDirectionFromVector(t *testing.T) {
	tests := []struct {
		v    common.Vec2
		want Direction
	}{
		{common.V(0, 1), DirectionUp},
		{common.V(0, -1), DirectionDown},
		{common.V(1, 0), DirectionRight},
		{common.V(-1, 0), DirectionLeft},
		{common.V(1, 2), DirectionUp},
		{common.V(2, 1), DirectionRight},
		{common.V(-2, -1), DirectionLeft},
		{common.V(1, -2), DirectionDown},
		{common.V(0, 0), DirectionUp},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DirectionFromVector(tc.v), "%v", tc.v)
		assert.Equal(t, tc.want, DirectionFromVector(tc.want.Vector()), "round trip %s", tc.want)
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" Left ")
	require.NoError(t, err)
	assert.Equal(t, DirectionLeft, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}

func TestAlongPathCycles(t *testing.T) {
	for n := 1; n <= 5; n++ {
		points := make([]common.Vec2, n)
		for i := range points {
			points[i] = common.V(float64(i), 0)
		}
		mt, err := NewAlongPath(points)
		require.NoError(t, err)

		for step := 0; step < 3*n; step++ {
			mt.Advance(nil)
			assert.Equal(t, step%n, mt.Index())
			target, ok := mt.CurrentTarget()
			require.True(t, ok)
			assert.Equal(t, points[step%n], target)
		}
	}

	_, err := NewAlongPath(nil)
	assert.Error(t, err)
}

func TestStaticTarget(t *testing.T) {
	mt := NewStatic(common.V(4, 2))
	mt.Advance(nil)
	target, ok := mt.CurrentTarget()
	require.True(t, ok)
	assert.Equal(t, common.V(4, 2), target)
	assert.Nil(t, mt.WaitTimer())
}

func TestGuardAreaSamplesInsideArea(t *testing.T) {
	area := common.NewRect(common.V(-30, 10), common.V(70, 15))
	mt := NewGuardArea(area, time.Second)
	rng := rand.New(rand.NewPCG(7, 7))

	_, ok := mt.CurrentTarget()
	assert.False(t, ok, "no target until the wait completes")

	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		mt.Advance(rng)
		mt.WaitTimer().Tick(time.Second)
		p, ok := mt.CurrentTarget()
		require.True(t, ok)
		require.True(t, area.Contains(p), "%v outside %v", p, area)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
	}
	assert.Less(t, minX, -20.0)
	assert.Greater(t, maxX, 60.0)
}

func TestEnemyStatePayloads(t *testing.T) {
	_, ok := Idle().AlertTarget()
	assert.False(t, ok)
	_, ok = Alert(common.V(1, 1)).StunRemaining()
	assert.False(t, ok)
	remaining, ok := Stunned(time.Second).StunRemaining()
	assert.True(t, ok)
	assert.Equal(t, time.Second, remaining)
	assert.Equal(t, "stun", Stunned(time.Second).Kind().String())
}

func TestHealth(t *testing.T) {
	h := NewHealth(50)
	assert.False(t, h.TakeDamage(20))
	h.Heal(100)
	assert.Equal(t, 50.0, h.Current)
	assert.True(t, h.TakeDamage(60))
	h.Heal(0)
	assert.Equal(t, 1.0, h.Current, "heal never leaves less than one")
}
