// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command builds the coronactl CLI: one builder, validator and
// action per subcommand, with shared flags and the cache wiring in common.go.
package command
