// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"os"

	"golang.org/x/term"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single line of eight-level block characters,
// scaled to the series min..max. Series longer than maxWidth are downsampled
// by bucket averaging; maxWidth <= 0 means no cap.
func Sparkline(values []float64, maxWidth int) string {
	if len(values) == 0 {
		return ""
	}
	if maxWidth > 0 && len(values) > maxWidth {
		values = downsample(values, maxWidth)
	}

	lo, hi := bounds(values)
	span := hi - lo

	out := make([]rune, 0, len(values))
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkLevels)-1))
		}
		out = append(out, sparkLevels[idx])
	}
	return string(out)
}

// Width returns the terminal width of stdout, or fallback when stdout is not
// a terminal.
func Width(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}

// downsample shrinks values to n points by averaging equal-share buckets.
func downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		start := i * len(values) / n
		end := (i + 1) * len(values) / n
		if end <= start {
			end = start + 1
		}
		var sum float64
		for _, v := range values[start:end] {
			sum += v
		}
		out[i] = sum / float64(end-start)
	}
	return out
}

func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return
}
