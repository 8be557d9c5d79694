/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/docsmith/pkg/logging"
	"github.com/NVIDIA/docsmith/pkg/version"
)

// New returns the root docsmith command.
func New() *cli.Command {
	return &cli.Command{
		Name:    "docsmith",
		Usage:   "Generate reference documentation from CLI tool metadata",
		Version: version.Get(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.Setup(logging.Options{
				Debug: cmd.Bool("debug"),
				JSON:  cmd.Bool("log-json"),
			})
			return ctx, nil
		},
		Commands: []*cli.Command{
			generateCmd(),
			reportCmd(),
			publishCmd(),
		},
	}
}
