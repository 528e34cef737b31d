package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/dieselcycle/model_problems/Diesel"
)

func TestCycleInput(t *testing.T) {
	{
		fileInput := []byte(`
Title: Test Case
Bore: 0.1
Stroke: 0.12
CompressionRatio: 18
P1: 100.   # kPa
T1: 300
T3: 1800
Gamma: 1.4
Samples: 50
`)
		ip := NewCycleInput()
		require.NoError(t, ip.Parse(fileInput))
		ip.Print()
		assert.Equal(t, "Test Case", ip.Title)
		assert.Equal(t, 0.12, ip.Stroke)
		assert.Equal(t, 50, ip.Samples)
		// Unset keys keep their defaults
		assert.Equal(t, 0.15, ip.RodLength)
		assert.False(t, ip.Strict)

		g, err := ip.Geometry()
		require.NoError(t, err)
		assert.True(t, g.HasConnectingRod())
		cp, err := ip.CycleParameters()
		require.NoError(t, err)
		assert.Equal(t, 100.e3, cp.P1)
		assert.True(t, cp.Heat.IsPeakTemperature())
		assert.Equal(t, 1800., cp.Heat.Value())

		cr, err := Diesel.Compute(g, cp)
		require.NoError(t, err)
		assert.InDelta(t, 1.888, cr.CutoffRatio(), 0.001)
	}
	{
		ip := NewCycleInput()
		require.NoError(t, ip.Parse([]byte("CutoffRatio: 2.\nT3: 0\nRodLength: 0\n")))
		cp, err := ip.CycleParameters()
		require.NoError(t, err)
		assert.True(t, cp.Heat.IsCutoffRatio())
		g, err := ip.Geometry()
		require.NoError(t, err)
		assert.False(t, g.HasConnectingRod())
	}
	{
		ip := NewCycleInput()
		ip.CutoffRatio = 2
		_, err := ip.CycleParameters()
		assert.ErrorIs(t, err, Diesel.ErrInvalidCycleParameters)
		ip.CutoffRatio, ip.T3 = 0, 0
		_, err = ip.CycleParameters()
		assert.ErrorIs(t, err, Diesel.ErrInvalidCycleParameters)
	}
	{
		ip := NewCycleInput()
		ip.CompressionRatio = 0.5
		_, err := ip.Geometry()
		assert.ErrorIs(t, err, Diesel.ErrInvalidGeometry)
		ip.CompressionRatio, ip.RodLength = 18, 0.01
		_, err = ip.Geometry()
		assert.ErrorIs(t, err, Diesel.ErrInvalidGeometry)
	}
	{
		ip := NewCycleInput()
		assert.Error(t, ip.Parse([]byte("Bore: [1, 2")))
	}
}
