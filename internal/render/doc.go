// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package render draws value series as terminal graphics: one-line
// sparklines and multi-row braille plots.
package render
