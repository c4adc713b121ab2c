package kahan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdder_CompensatesSmallTerms(t *testing.T) {
	// Naive summation loses the small terms entirely.
	var a Adder
	a.Add(1e16)
	for i := 0; i < 10; i++ {
		a.Add(1.0)
	}

	assert.Equal(t, 1e16+10, a.Sum())
}

func TestAdder_ZeroValue(t *testing.T) {
	var a Adder
	assert.Zero(t, a.Sum())

	a.Add(2.5)
	assert.Equal(t, 2.5, a.Sum())
}

func TestAdder_SumWithDoesNotMutate(t *testing.T) {
	var a Adder
	a.Add(1.0)

	assert.Equal(t, 3.5, a.SumWith(2.5))
	assert.Equal(t, 1.0, a.Sum())
}

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, Sum(1, 2, 3))
	assert.Zero(t, Sum())
}
