package Diesel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEfficiencySweep(t *testing.T) {
	rho, eta, err := EfficiencySweep(18, 1.4, 1, 3, 21)
	require.NoError(t, err)
	require.Equal(t, 21, len(rho))
	require.Equal(t, 21, len(eta))
	assert.Equal(t, 1., rho[0])
	assert.Equal(t, 3., rho[20])
	assert.InDelta(t, 0.1, rho[1]-rho[0], 1.e-12)
	// The first point sits on the Otto limit
	assert.Equal(t, OttoEfficiency(18, 1.4), eta[0])
	for i := 1; i < len(eta); i++ {
		assert.Less(t, eta[i], eta[i-1])
	}
	{
		_, _, err = EfficiencySweep(18, 1.4, 1, 3, 1)
		assert.ErrorIs(t, err, ErrInvalidResolution)
		_, _, err = EfficiencySweep(18, 1.4, 3, 1, 10)
		assert.ErrorIs(t, err, ErrInvalidCycleParameters)
		_, _, err = EfficiencySweep(18, 1.4, 0.5, 2, 10)
		assert.ErrorIs(t, err, ErrInvalidCycleParameters)
		_, _, err = EfficiencySweep(0.9, 1.4, 1, 2, 10)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	}
}
