package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Force TrueColor output in tests so we can verify ANSI color codes
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name    string
		val     float64
		axisMax float64
		want    float64
	}{
		{name: "middle value", val: 50, axisMax: 100, want: 0.5},
		{name: "zero", val: 0, axisMax: 100, want: 0},
		{name: "at axis", val: 20, axisMax: 20, want: 1},
		{name: "above axis clamps", val: 35, axisMax: 20, want: 1},
		{name: "negative clamps", val: -5, axisMax: 100, want: 0},
		{name: "zero axis", val: 50, axisMax: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeValue(tt.val, tt.axisMax)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		name string
		val  int
		max  int
		want int
	}{
		{name: "within range", val: 5, max: 10, want: 5},
		{name: "at max", val: 10, max: 10, want: 10},
		{name: "over max", val: 15, max: 10, want: 10},
		{name: "negative clamped to zero", val: -5, max: 10, want: 0},
		{name: "zero", val: 0, max: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampInt(tt.val, tt.max)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResampleData(t *testing.T) {
	tests := []struct {
		name       string
		data       []float64
		targetSize int
		wantLen    int
		wantNil    bool
	}{
		{
			name:       "empty data returns nil",
			data:       []float64{},
			targetSize: 10,
			wantNil:    true,
		},
		{
			name:       "zero target returns nil",
			data:       []float64{1, 2, 3},
			targetSize: 0,
			wantNil:    true,
		},
		{
			name:       "negative target returns nil",
			data:       []float64{1, 2, 3},
			targetSize: -5,
			wantNil:    true,
		},
		{
			name:       "same size returns original",
			data:       []float64{1, 2, 3},
			targetSize: 3,
			wantLen:    3,
		},
		{
			name:       "single value fills target",
			data:       []float64{42},
			targetSize: 5,
			wantLen:    5,
		},
		{
			name:       "downsampling reduces size",
			data:       []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			targetSize: 5,
			wantLen:    5,
		},
		{
			name:       "upsampling increases size",
			data:       []float64{0, 100},
			targetSize: 5,
			wantLen:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resampleData(tt.data, tt.targetSize)
			if tt.wantNil {
				assert.Nil(t, result)
			} else {
				require.NotNil(t, result)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}

func TestResampleData_DownsamplingPreservesPeaks(t *testing.T) {
	// Data with a spike in the middle
	data := []float64{10, 10, 10, 100, 10, 10, 10, 10, 10, 10}

	// Downsample to 5 points - the spike should be preserved
	result := resampleData(data, 5)

	require.Len(t, result, 5)

	// The bucket containing 100 should have max=100
	hasSpike := false
	for _, v := range result {
		if v == 100 {
			hasSpike = true
			break
		}
	}
	assert.True(t, hasSpike, "downsampling should preserve peak values")
}

func TestResampleData_UpsamplingInterpolates(t *testing.T) {
	data := []float64{0, 100}
	result := resampleData(data, 5)

	require.Len(t, result, 5)

	// Should interpolate: 0, 25, 50, 75, 100
	assert.InDelta(t, 0, result[0], 0.1)
	assert.InDelta(t, 25, result[1], 0.1)
	assert.InDelta(t, 50, result[2], 0.1)
	assert.InDelta(t, 75, result[3], 0.1)
	assert.InDelta(t, 100, result[4], 0.1)
}

func TestRenderBrailleChart_Empty(t *testing.T) {
	assert.Empty(t, RenderBrailleChart(nil, 10, 2, 100, nil))
	assert.Empty(t, RenderBrailleChart([]float64{50}, 0, 2, 100, nil))
	assert.Empty(t, RenderBrailleChart([]float64{50}, 10, 0, 100, nil))
}

func TestRenderBrailleChart_Dimensions(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = float64(i)
	}

	for _, height := range []int{1, 2, 8} {
		lines := strings.Split(RenderBrailleChart(data, 12, height, 100, nil), "\n")
		require.Len(t, lines, height)
		for _, line := range lines {
			assert.Len(t, []rune(line), 12)
		}
	}
}

func TestRenderBrailleChart_RightAligned(t *testing.T) {
	result := []rune(RenderBrailleChart([]float64{100}, 4, 1, 100, nil))
	require.Len(t, result, 4)

	for i := 0; i < 3; i++ {
		assert.Equal(t, brailleBase, result[i], "column %d should be empty", i)
	}
	assert.Equal(t, '⢸', result[3], "newest sample fills the right edge")
}

func TestRenderBrailleChart_FloorDot(t *testing.T) {
	// 1% of a one-row chart rounds to zero dots but stays visible.
	assert.Equal(t, "⢀", RenderBrailleChart([]float64{1}, 1, 1, 100, nil))
	assert.Equal(t, "⠀", RenderBrailleChart([]float64{0}, 1, 1, 100, nil))
}

func TestRenderBrailleChart_AxisScaling(t *testing.T) {
	assert.Equal(t, "⢠", RenderBrailleChart([]float64{50}, 1, 1, 100, nil), "half height on a 100 axis")
	assert.Equal(t, "⢸", RenderBrailleChart([]float64{50}, 1, 1, 50, nil), "full height on a 50 axis")
}

func TestRenderBrailleChart_ColorByColumnPeak(t *testing.T) {
	color := func(v float64) lipgloss.Color {
		if v >= 80 {
			return lipgloss.Color("#ff0000")
		}
		return lipgloss.Color("#00ff00")
	}

	high := RenderBrailleChart([]float64{90}, 1, 1, 100, color)
	assert.Contains(t, high, "38;2;255;0;0")

	low := RenderBrailleChart([]float64{10}, 1, 1, 100, color)
	assert.Contains(t, low, "38;2;0;255;0")
	assert.NotContains(t, low, "38;2;255;0;0")
}

func TestRenderMiniSparkline(t *testing.T) {
	tests := []struct {
		name    string
		data    []float64
		width   int
		axisMax float64
		want    string
	}{
		{name: "empty data", data: []float64{}, width: 10, axisMax: 100, want: ""},
		{name: "zero width", data: []float64{50}, width: 0, axisMax: 100, want: ""},
		{name: "left padded", data: []float64{0, 100}, width: 4, axisMax: 100, want: "  ▁█"},
		{name: "axis scales", data: []float64{50}, width: 1, axisMax: 50, want: "█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMiniSparkline(tt.data, tt.width, tt.axisMax, nil))
		})
	}
}

func TestRenderMiniSparkline_Downsamples(t *testing.T) {
	data := make([]float64, 50)
	data[25] = 100

	result := RenderMiniSparkline(data, 10, 100, nil)
	assert.Len(t, []rune(result), 10)
	assert.Contains(t, result, "█", "peak survives downsampling")
}

func TestRenderMiniSparkline_ColoredByNewest(t *testing.T) {
	color := func(v float64) lipgloss.Color {
		if v >= 80 {
			return lipgloss.Color("#ff0000")
		}
		return lipgloss.Color("#00ff00")
	}

	result := RenderMiniSparkline([]float64{95, 10}, 4, 100, color)
	assert.Contains(t, result, "38;2;0;255;0")
	assert.NotContains(t, result, "38;2;255;0;0")
}
