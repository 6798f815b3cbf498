// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparkline_Empty(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil, 80))
}

func TestSparkline_MinMaxLevels(t *testing.T) {
	got := Sparkline([]float64{0, 7}, 80)
	assert.Equal(t, "▁█", got)
}

func TestSparkline_FlatSeries(t *testing.T) {
	got := Sparkline([]float64{5, 5, 5}, 80)
	assert.Equal(t, "▁▁▁", got)
}

func TestSparkline_Monotonic(t *testing.T) {
	got := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 80)
	assert.Equal(t, "▁▂▃▄▅▆▇█", got)
}

func TestSparkline_CapsWidth(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i)
	}
	got := Sparkline(values, 10)
	assert.Len(t, []rune(got), 10)
}

func TestDownsample_Averages(t *testing.T) {
	got := downsample([]float64{1, 3, 5, 7}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[0])
	assert.Equal(t, 6.0, got[1])
}

func TestDownsample_NoopWhenShort(t *testing.T) {
	in := []float64{1, 2}
	assert.Equal(t, in, downsample(in, 10))
}

func TestBraille_Empty(t *testing.T) {
	assert.Equal(t, "", Braille(nil, 10, 2))
	assert.Equal(t, "", Braille([]float64{1}, 0, 2))
}

func TestBraille_Dimensions(t *testing.T) {
	values := make([]float64, 40)
	for i := range values {
		values[i] = float64(i % 9)
	}
	got := Braille(values, 20, 3)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, []rune(line), 20)
	}
}

func TestBraille_ShrinksToSeries(t *testing.T) {
	// Four points need only two cells regardless of the requested width.
	got := Braille([]float64{0, 1, 2, 3}, 20, 1)
	assert.Len(t, []rune(got), 2)
}

func TestBraille_ExtremesLandOnEdgeRows(t *testing.T) {
	// Min in the bottom dot row, max in the top dot row of a 1-cell column.
	got := []rune(Braille([]float64{0, 3}, 1, 1))
	require.Len(t, got, 1)

	mask := got[0] - 0x2800
	// x=0 bottom dot is 0x40, x=1 top dot is 0x08.
	assert.Equal(t, rune(0x40|0x08), mask)
}

func TestBraille_OnlyBrailleRunes(t *testing.T) {
	got := Braille([]float64{1, 5, 2, 8, 3}, 10, 2)
	for _, r := range got {
		if r == '\n' {
			continue
		}
		assert.True(t, r >= 0x2800 && r <= 0x28FF, "rune %U", r)
	}
}
