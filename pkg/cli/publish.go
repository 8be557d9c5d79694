/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/docsmith/pkg/oci"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:  "publish",
		Usage: "Push a generated documentation set to an OCI registry",
		Description: `Packages the documents in a directory as an OCI artifact and pushes it to
a registry, so documentation sets can be versioned and distributed alongside
container images.

# Examples

  docsmith publish --dir ./docs --ref ghcr.io/nvidia/cli-docs --tag v1.4.0

Local registry over HTTP:
  docsmith publish --dir ./docs --ref localhost:5000/cli-docs --plain-http`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "Directory holding the generated documents",
			},
			&cli.StringFlag{
				Name:     "ref",
				Required: true,
				Usage:    "Target repository reference (e.g. ghcr.io/org/cli-docs)",
			},
			&cli.StringFlag{
				Name:  "tag",
				Value: oci.DefaultTag,
				Usage: "Artifact tag",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS (local registries)",
			},
			&cli.StringFlag{
				Name:    "username",
				Sources: cli.EnvVars("DOCSMITH_REGISTRY_USER"),
				Usage:   "Registry username",
			},
			&cli.StringFlag{
				Name:    "password",
				Sources: cli.EnvVars("DOCSMITH_REGISTRY_PASSWORD"),
				Usage:   "Registry password or token",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			digest, err := oci.Push(ctx, cmd.String("dir"), oci.Options{
				Reference: cmd.String("ref"),
				Tag:       cmd.String("tag"),
				PlainHTTP: cmd.Bool("plain-http"),
				Username:  cmd.String("username"),
				Password:  cmd.String("password"),
			})
			if err != nil {
				return err
			}
			fmt.Println(digest)
			return nil
		},
	}
}
