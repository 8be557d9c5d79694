/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
	"github.com/NVIDIA/docsmith/pkg/genai"
	"github.com/NVIDIA/docsmith/pkg/pipeline"
	"github.com/NVIDIA/docsmith/pkg/serializer"
	"github.com/NVIDIA/docsmith/pkg/version"
)

// reportFileName is the detailed discrepancy report written next to the
// generated articles.
const reportFileName = "generation-report.yaml"

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "generate",
		EnableShellCompletion: true,
		Usage:                 "Generate per-namespace reference documents",
		Description: `Generates one reference document per namespace from the tool-list and
namespace JSON documents, optionally enriched with AI-generated content.

# Output

  - <slug>.md: one document per namespace, grouped by resource type
  - generation-report.yaml: discrepancy report (expected vs produced)
  - diag/<slug>.response.txt: raw model responses that failed to parse

# Examples

Static-only generation (no AI calls):
  docsmith generate --tools tools.json --namespaces namespaces.json \
    --config ./config --output ./docs --skip-ai

AI-enriched generation (the key can also come from DOCSMITH_API_KEY):
  docsmith generate --tools tools.json --namespaces namespaces.json \
    --config ./config --output ./docs \
    --endpoint https://genai.example.com --api-key sk-...

Bounded parallel mode (namespaces are independent units of work):
  docsmith generate ... --concurrency 4

The process attempts every namespace; per-namespace failures degrade that
namespace to a static-only document and are surfaced in the report. The exit
status is non-zero only when a namespace produced no artifact at all.`,
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
				Usage:   "Directory holding brand.json, compound-words.json, common-parameters.json and optional resource-overrides.json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "Output directory for generated documents",
			},
			&cli.BoolFlag{
				Name:  "skip-ai",
				Usage: "Skip the generative-content step and produce static-only documents",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Generative-content API base URL",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Sources: cli.EnvVars("DOCSMITH_API_KEY"),
				Usage:   "Generative-content API key",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Model identifier passed to the generative-content API",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "Client-side request ceiling in requests per second (0 disables)",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 1,
				Usage: "Number of namespaces processed at once",
			},
			&cli.StringFlag{
				Name:  "tool-version",
				Usage: "Version string stamped into document headers (defaults to the docsmith build version)",
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

			toolVersion := cmd.String("tool-version")
			if toolVersion == "" {
				toolVersion = version.Get()
			}

			outputDir := cmd.String("output")
			opts := []pipeline.Option{
				pipeline.WithOutputDir(outputDir),
				pipeline.WithConcurrency(int(cmd.Int("concurrency"))),
				pipeline.WithToolVersion(toolVersion),
			}

			if !cmd.Bool("skip-ai") {
				endpoint := cmd.String("endpoint")
				if endpoint == "" {
					return fmt.Errorf("--endpoint is required unless --skip-ai is set")
				}
				genOpts := []genai.Option{}
				if model := cmd.String("model"); model != "" {
					genOpts = append(genOpts, genai.WithModel(model))
				}
				if rps := cmd.Float("rate-limit"); rps > 0 {
					genOpts = append(genOpts, genai.WithRateLimit(rps))
				}
				opts = append(opts, pipeline.WithGenAI(
					genai.NewClient(endpoint, cmd.String("api-key"), genOpts...)))
			}

			p := pipeline.New(cfg, cat, opts...)
			rep, err := p.Run(ctx)
			if err != nil {
				return err
			}

			reportPath := filepath.Join(outputDir, reportFileName)
			if err := serializer.WriteFile(ctx, reportPath, serializer.FormatYAML, rep); err != nil {
				return err
			}
			if err := serializer.NewStdoutWriter(outFormat).Serialize(ctx, rep); err != nil {
				return err
			}

			if missing := rep.CompletelyMissing(); len(missing) > 0 {
				slog.Error("namespaces produced no artifacts", "namespaces", missing)
				return cli.Exit(fmt.Sprintf("%d namespace(s) completely missing", len(missing)), 1)
			}
			return nil
		},
	}
}
