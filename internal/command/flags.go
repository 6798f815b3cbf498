// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/coronactl/internal/config"
	"github.com/staranto/coronactl/internal/rki"
)

func init() {
	cfg, _ = config.Load("")
}

var (
	cfg config.Type

	cacheFileFlag *cli.StringFlag = &cli.StringFlag{
		Name:  "cache-file",
		Usage: "backing file for the result cache. Overrides the default location",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CORONACTL_CACHE_FILE"),
		),
	}

	noCacheFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "no-cache",
		Usage:       "bypass the result cache for this invocation",
		HideDefault: true,
	}

	loglevelFlag *cli.StringFlag = &cli.StringFlag{
		Name:  "loglevel",
		Usage: "log verbosity (debug, info, warn, error)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CORONACTL_LOG"),
		),
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		cacheFileFlag,
		noCacheFlag,
		loglevelFlag,
		&cli.IntFlag{
			Name:  "ttl",
			Usage: "cache time-to-live in hours, measured from the data's own lastUpdate",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"ttl", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("cache.ttl", altsrc.StringSourcer(cfg.Source)),
			),
			Value: 6, //nolint:mnd
		},
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(params[0]+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return
}

// NewHostFlag constructs a cli.StringFlag for the "host" flag, optionally
// namespaced to a command and config file. params[1] is the config file.
func NewHostFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "host",
		Usage: "base URL of the data source API",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CORONACTL_HOST"),
		),
		Value: rki.DefaultBaseURL,
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewPlotFlag constructs a cli.StringFlag for the "plot" rendering mode,
// optionally namespaced to a command and config file.
func NewPlotFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "plot",
		Aliases: []string{"p"},
		Usage:   "plot mode for series rendering",
		Value:   "spark",
		Validator: func(value string) error {
			return FlagValidators(value, PlotValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
