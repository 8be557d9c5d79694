/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/docsmith/pkg/brand"
	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
	"github.com/NVIDIA/docsmith/pkg/report"
	"github.com/NVIDIA/docsmith/pkg/serializer"
	"github.com/NVIDIA/docsmith/pkg/version"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Recompute the discrepancy report for an existing output directory",
		Description: `Cross-checks the documents in an output directory against the tool list
without regenerating anything. Useful after a partial run or in CI to verify
a published documentation set.

# Examples

  docsmith report --tools tools.json --namespaces namespaces.json \
    --config ./config --output ./docs --format table`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "tools",
				Required: true,
				Usage:    "Path to the tool-list JSON document",
			},
			&cli.StringFlag{
				Name:     "namespaces",
				Required: true,
				Usage:    "Path to the namespace JSON document",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   ".",
				Usage:   "Configuration directory",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "Output directory to inspect",
			},
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			cat, err := catalog.Load(cmd.String("tools"), cmd.String("namespaces"))
			if err != nil {
				return err
			}

			resolver := brand.New(cfg)
			slugs := make(map[string]string, len(cat.Namespaces))
			for _, ns := range cat.Namespaces {
				slugs[ns.Command] = resolver.Resolve(ns.Command).Slug
			}

			validator := report.NewValidator(cmd.String("output"), slugs)
			rep, err := validator.Build(cat, time.Now(), version.Get(), uuid.New().String())
			if err != nil {
				return err
			}

			return serializer.NewStdoutWriter(outFormat).Serialize(ctx, rep)
		},
	}
}
