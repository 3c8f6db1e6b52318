package timecode

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMedia struct {
	durationMs int64
	fps        float64
}

func (m fakeMedia) DurationMs() int64 { return m.durationMs }
func (m fakeMedia) FPS() float64      { return m.fps }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want Spec
	}{
		{"Integer seconds without unit", "37", Spec{Value: 37, Unit: UnitSeconds}},
		{"Explicit seconds", "37s", Spec{Value: 37, Unit: UnitSeconds}},
		{"Fractional seconds", "12.5s", Spec{Value: 12.5, Unit: UnitSeconds}},
		{"Leading dot", ".5", Spec{Value: 0.5, Unit: UnitSeconds}},
		{"Trailing dot", "3.", Spec{Value: 3, Unit: UnitSeconds}},
		{"Frames", "250f", Spec{Value: 250, Unit: UnitFrames}},
		{"Percent", "10%", Spec{Value: 10, Unit: UnitPercent}},
		{"Fractional percent", "33.3%", Spec{Value: 33.3, Unit: UnitPercent}},
		{"Surrounding whitespace", " 4s ", Spec{Value: 4, Unit: UnitSeconds}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	specs := []string{"", "abc", "s", "%", "-5", "10m", "1.2.3", "10 %", "5ss", "1e3"}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			_, err := Parse(spec)
			require.Error(t, err)

			var perr *ParameterError
			require.True(t, errors.As(err, &perr), "expected *ParameterError, got %T", err)
			assert.Equal(t, spec, perr.Spec)
			assert.Contains(t, err.Error(), Grammar)
		})
	}
}

func TestResolve(t *testing.T) {
	media := fakeMedia{durationMs: 20000, fps: 25}

	tests := []struct {
		name string
		spec string
		want float64
	}{
		{"Percent of duration", "10%", 2.0},
		{"Seconds without unit", "7", 7},
		{"Seconds with unit", "7s", 7},
		{"Frames at 25fps", "50f", 2},
		{"Zero", "0", 0},
		{"Exactly the duration", "20", 20},
		{"Hundred percent", "100%", 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.spec, media)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolve_NoUnitEqualsSeconds(t *testing.T) {
	media := fakeMedia{durationMs: 60000, fps: 30}

	bare, err := Resolve("37", media)
	require.NoError(t, err)
	explicit, err := Resolve("37s", media)
	require.NoError(t, err)

	assert.Equal(t, explicit, bare)
}

func TestResolve_ClampsPastDuration(t *testing.T) {
	media := fakeMedia{durationMs: 20000, fps: 25}

	clamped, err := Resolve(ClampSpec, media)
	require.NoError(t, err)
	assert.InDelta(t, 19.8, clamped, 1e-9)

	for _, spec := range []string{"21", "20.001s", "501f", "100.5%", "99999"} {
		t.Run(spec, func(t *testing.T) {
			got, err := Resolve(spec, media)
			require.NoError(t, err)
			assert.Equal(t, clamped, got)
		})
	}
}

func TestResolve_ZeroDuration(t *testing.T) {
	media := fakeMedia{durationMs: 0, fps: 25}

	got, err := Resolve("5", media)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestResolve_NegativeDurationTerminates(t *testing.T) {
	media := fakeMedia{durationMs: -1000, fps: 25}

	got, err := Resolve("5", media)
	require.NoError(t, err)
	assert.InDelta(t, -0.99, got, 1e-9)
}

func TestResolve_FramesNeedFrameRate(t *testing.T) {
	for _, fps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		media := fakeMedia{durationMs: 20000, fps: fps}

		_, err := Resolve("10f", media)
		require.Error(t, err)

		var perr *ParameterError
		assert.True(t, errors.As(err, &perr))
	}
}

func TestResolve_ErrorQuotesInput(t *testing.T) {
	_, err := Resolve("007f", fakeMedia{durationMs: 20000, fps: 0})
	require.Error(t, err)

	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "007f", perr.Spec)
	assert.Contains(t, err.Error(), `"007f"`)
}

func TestResolve_Idempotent(t *testing.T) {
	media := fakeMedia{durationMs: 123456, fps: 29.97}

	for _, spec := range []string{"10%", "37", "300f", "500"} {
		first, err := Resolve(spec, media)
		require.NoError(t, err)
		second, err := Resolve(spec, media)
		require.NoError(t, err)
		assert.Equal(t, first, second, "spec %s", spec)
		assert.GreaterOrEqual(t, first, 0.0)
		assert.False(t, math.IsInf(first, 0) || math.IsNaN(first))
	}
}

func TestSpec_SecondsUnknownUnit(t *testing.T) {
	_, err := Spec{Value: 3, Unit: 'x'}.Seconds(fakeMedia{durationMs: 1000, fps: 25})
	require.Error(t, err)

	var perr *ParameterError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Reason, "unknown unit")
}

func TestSpec_String(t *testing.T) {
	assert.Equal(t, "12.5s", Spec{Value: 12.5, Unit: UnitSeconds}.String())
	assert.Equal(t, "99%", Spec{Value: 99, Unit: UnitPercent}.String())
	assert.Equal(t, "250f", Spec{Value: 250, Unit: UnitFrames}.String())
}
