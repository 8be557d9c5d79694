/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/docsmith/pkg/cli"
)

func main() {
	if err := cli.New().Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
