package lifecycle_test

import (
	"testing"

	"dealership/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStatus int

const (
	draft testStatus = iota + 1
	active
	closed
)

func newTestChart() *lifecycle.Chart[testStatus] {
	return lifecycle.NewChart[testStatus]().
		Allow(draft, active, closed).
		Allow(active, closed).
		StampOnEnter(closed, lifecycle.StampDeliveryDate)
}

func TestChart_CanTransition(t *testing.T) {
	chart := newTestChart()

	t.Run("should allow declared edges", func(t *testing.T) {
		allowed, _ := chart.CanTransition(draft, active)
		assert.True(t, allowed)

		allowed, _ = chart.CanTransition(active, closed)
		assert.True(t, allowed)
	})

	t.Run("should deny any edge not declared", func(t *testing.T) {
		pairs := [][2]testStatus{
			{active, draft},
			{closed, draft},
			{closed, active},
			{draft, draft},
			{closed, closed},
		}
		for _, pair := range pairs {
			allowed, stamps := chart.CanTransition(pair[0], pair[1])

			assert.False(t, allowed)
			assert.Nil(t, stamps)
		}
	})

	t.Run("should deny edges from an unknown status", func(t *testing.T) {
		allowed, _ := chart.CanTransition(testStatus(99), active)
		assert.False(t, allowed)
	})

	t.Run("should report on-enter stamps for allowed edges", func(t *testing.T) {
		allowed, stamps := chart.CanTransition(active, closed)

		require.True(t, allowed)
		assert.Equal(t, []lifecycle.Stamp{lifecycle.StampDeliveryDate}, stamps)
	})

	t.Run("should not report stamps on edges without any", func(t *testing.T) {
		allowed, stamps := chart.CanTransition(draft, active)

		require.True(t, allowed)
		assert.Empty(t, stamps)
	})
}

func TestChart_IsTerminal(t *testing.T) {
	chart := newTestChart()

	assert.False(t, chart.IsTerminal(draft))
	assert.False(t, chart.IsTerminal(active))
	assert.True(t, chart.IsTerminal(closed))
	assert.True(t, chart.IsTerminal(testStatus(99)))
}
