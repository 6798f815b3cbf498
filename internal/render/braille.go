// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import "strings"

// Braille dot numbering packs a 2x4 dot grid into one rune. The bit for each
// (x, y) dot position, y counted from the top of the cell.
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

const brailleBase = 0x2800

// Braille plots values as a width x height grid of braille cells, one dot
// per plotted point, scaled to the series min..max. Values are downsampled
// to the grid's horizontal dot resolution (two dots per cell).
func Braille(values []float64, width, height int) string {
	if len(values) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	cols := width * 2
	rows := height * 4
	points := downsample(values, cols)
	if len(points) < cols {
		cols = len(points)
		width = (cols + 1) / 2
	}

	lo, hi := bounds(points)
	span := hi - lo

	cells := make([][]rune, height)
	for r := range cells {
		cells[r] = make([]rune, width)
	}

	for i, v := range points {
		level := 0
		if span > 0 {
			level = int((v - lo) / span * float64(rows-1))
		}
		dotRow := rows - 1 - level
		cells[dotRow/4][i/2] |= brailleBits[i%2][dotRow%4]
	}

	var b strings.Builder
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			b.WriteRune(brailleBase + cells[r][c])
		}
		if r < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
