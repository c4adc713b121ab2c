package aco

import (
	"testing"

	"github.com/maratik123/tsp/internal/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldFixture(t *testing.T, minDist float64) (*distance.Matrix, *Field) {
	t.Helper()
	m := planarMatrix([][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}}, minDist)
	return m, NewField(m, 1)
}

func TestField_InitialIntensityClampedToFloor(t *testing.T) {
	m, _ := fieldFixture(t, 0)
	f := NewField(m, 0)

	assert.Equal(t, MinIntensity, f.Intensity(0, 1))
}

func TestField_EvaporateKeepsWeightsPositive(t *testing.T) {
	_, f := fieldFixture(t, 0)

	// Full evaporation would zero every weight without the floor.
	for i := 0; i < 100; i++ {
		f.Evaporate(1)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			assert.Equal(t, MinIntensity, f.Intensity(i, j))
		}
	}
}

func TestField_RepeatedDecayStaysAboveFloor(t *testing.T) {
	_, f := fieldFixture(t, 0)

	// Near-total decay rounds drive every weight to the floor, never below.
	for i := 0; i < 50; i++ {
		f.Evaporate(0.99)
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < i; j++ {
			assert.GreaterOrEqual(t, f.Intensity(i, j), MinIntensity)
			assert.Positive(t, f.Intensity(i, j))
		}
	}
}

func TestField_DepositSymmetric(t *testing.T) {
	_, f := fieldFixture(t, 0)

	require.True(t, f.Deposit(0, 1, 2.5))

	assert.InDelta(t, 3.5, f.Intensity(0, 1), 1e-12)
	assert.InDelta(t, 3.5, f.Intensity(1, 0), 1e-12)
	assert.InDelta(t, 1, f.Intensity(0, 2), 1e-12)
}

func TestField_DepositDroppedOnInadmissibleEdge(t *testing.T) {
	// Sides of the square are shorter than 120 km, diagonals are not.
	_, f := fieldFixture(t, 120)

	assert.False(t, f.Deposit(0, 1, 5))
	assert.True(t, f.Deposit(0, 2, 5))
	assert.InDelta(t, 6, f.Intensity(0, 2), 1e-12)
}

func TestField_DepositTourClosesTheLoop(t *testing.T) {
	_, f := fieldFixture(t, 0)

	f.DepositTour([]int{0, 1, 2, 3}, 1)

	for _, leg := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		assert.InDelta(t, 2, f.Intensity(leg[0], leg[1]), 1e-12, "leg %v", leg)
	}
	// The diagonals were not part of the tour.
	assert.InDelta(t, 1, f.Intensity(0, 2), 1e-12)
	assert.InDelta(t, 1, f.Intensity(1, 3), 1e-12)
}

func TestField_FillWeights(t *testing.T) {
	m, f := fieldFixture(t, 0)
	require.True(t, f.Deposit(0, 1, 7))

	weights := m.Edges(0)
	f.fillWeights(weights, 1, 1)

	// tau / d on every admissible edge.
	assert.InDelta(t, 8.0/100, weights.At(0, 1, 0), 1e-12)
	assert.InDelta(t, 1.0/100, weights.At(1, 2, 0), 1e-12)
	assert.InDelta(t, 1/m.Between(0, 2), weights.At(0, 2, 0), 1e-12)
}

func TestField_FillWeightsZeroOnInadmissibleEdges(t *testing.T) {
	m, f := fieldFixture(t, 120)

	weights := m.Edges(0)
	f.fillWeights(weights, 1, 1)

	assert.Zero(t, weights.At(0, 1, 0))
	assert.Positive(t, weights.At(0, 2, 0))
}
