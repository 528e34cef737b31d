package Diesel

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineGeometry(t *testing.T) {
	{ // Derived volumes
		for _, tc := range []struct{ bore, stroke, r float64 }{
			{0.1, 0.12, 18},
			{0.1, 0.1, 12},
			{0.25, 0.3, 1.5},
			{0.05, 0.04, 22},
		} {
			g, err := NewEngineGeometry(tc.bore, tc.stroke, tc.r)
			require.NoError(t, err)
			Vs := math.Pi / 4 * tc.bore * tc.bore * tc.stroke
			assert.Less(t, math.Abs(Vs-g.SweptVolume())/Vs, 1.e-9)
			assert.Less(t, math.Abs(g.ClearanceVolume()-g.SweptVolume()/(tc.r-1))/g.ClearanceVolume(), 1.e-9)
			assert.Less(t, math.Abs(g.TotalVolume()-(g.SweptVolume()+g.ClearanceVolume()))/g.TotalVolume(), 1.e-9)
			// r = V1/V2
			assert.InDelta(t, tc.r, g.TotalVolume()/g.ClearanceVolume(), 1.e-9)
		}
	}
	{ // Invalid geometry
		for _, tc := range []struct {
			bore, stroke, r float64
			param           string
		}{
			{0, 0.1, 18, "bore"},
			{-0.1, 0.1, 18, "bore"},
			{math.NaN(), 0.1, 18, "bore"},
			{0.1, 0, 18, "stroke"},
			{0.1, math.Inf(1), 18, "stroke"},
			{0.1, 0.1, 1, "compressionRatio"},
			{0.1, 0.1, 0.5, "compressionRatio"},
		} {
			_, err := NewEngineGeometry(tc.bore, tc.stroke, tc.r)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidGeometry))
			var pe *ParameterError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.param, pe.Param)
		}
	}
	{ // Connecting rod
		g, err := NewEngineGeometry(0.1, 0.1, 12)
		require.NoError(t, err)
		assert.False(t, g.HasConnectingRod())
		_, err = g.InstantaneousVolume(1)
		assert.ErrorIs(t, err, ErrNoConnectingRod)
		_, err = g.CrankAngleAtVolume(g.TotalVolume())
		assert.ErrorIs(t, err, ErrNoConnectingRod)

		_, err = g.WithConnectingRod(0.05)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
		_, err = g.WithConnectingRod(0.04)
		assert.ErrorIs(t, err, ErrInvalidGeometry)

		gr, err := g.WithConnectingRod(0.15)
		require.NoError(t, err)
		assert.True(t, gr.HasConnectingRod())
		assert.False(t, g.HasConnectingRod())
		assert.Equal(t, 0.15, gr.RodLength())
		assert.Equal(t, g.TotalVolume(), gr.TotalVolume())

		_, err = EngineGeometry{}.WithConnectingRod(0.15)
		assert.ErrorIs(t, err, ErrInvalidGeometry)
	}
}

func TestSliderCrank(t *testing.T) {
	g, err := NewEngineGeometry(0.1, 0.1, 12)
	require.NoError(t, err)
	g, err = g.WithConnectingRod(0.15)
	require.NoError(t, err)
	{ // TDC and BDC
		V, err := g.InstantaneousVolume(0)
		require.NoError(t, err)
		assert.InDelta(t, g.ClearanceVolume(), V, 1.e-15)
		V, err = g.InstantaneousVolume(math.Pi)
		require.NoError(t, err)
		assert.InDelta(t, g.TotalVolume(), V, 1.e-15)
	}
	{ // Volume rises monotonically from TDC to BDC
		Vlast := 0.
		for i := 0; i <= 180; i++ {
			V, _ := g.InstantaneousVolume(math.Pi * float64(i) / 180)
			assert.Greater(t, V, Vlast)
			Vlast = V
		}
	}
	{ // Inverse
		for _, theta := range []float64{0, 0.01, 0.3, 1, math.Pi / 2, 2.5, 3.1, math.Pi} {
			V, _ := g.InstantaneousVolume(theta)
			th, err := g.CrankAngleAtVolume(V)
			require.NoError(t, err)
			assert.InDelta(t, theta, th, 1.e-6)
		}
	}
	{ // Out of range
		_, err := g.CrankAngleAtVolume(0.5 * g.ClearanceVolume())
		assert.ErrorIs(t, err, ErrVolumeOutOfRange)
		_, err = g.CrankAngleAtVolume(1.01 * g.TotalVolume())
		assert.ErrorIs(t, err, ErrVolumeOutOfRange)
		_, err = g.CrankAngleAtVolume(math.NaN())
		assert.ErrorIs(t, err, ErrVolumeOutOfRange)
	}
}
