// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
)

// FlagValidators runs value through each validator, stopping at the first
// failure.
func FlagValidators(value string, validators ...func(string) error) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// OutputValidator accepts the supported --output formats.
func OutputValidator(value string) error {
	switch value {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid output format %q (want text, json or yaml)", value)
}

// PlotValidator accepts the supported --plot modes.
func PlotValidator(value string) error {
	switch value {
	case "spark", "braille":
		return nil
	}
	return fmt.Errorf("invalid plot mode %q (want spark or braille)", value)
}

// AGSValidator accepts an Allgemeiner Gemeindeschluessel: all digits,
// normally five of them.
func AGSValidator(value string) error {
	if value == "" {
		return fmt.Errorf("an ags is required (find yours: curl %s | jq '.data[] | select(.name == \"My District\")')",
			"https://api.corona-zahlen.org/districts")
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid ags %q: must be numeric", value)
		}
	}
	return nil
}
