/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/docsmith/pkg/article"
	"github.com/NVIDIA/docsmith/pkg/brand"
	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
	"github.com/NVIDIA/docsmith/pkg/genai"
	"github.com/NVIDIA/docsmith/pkg/grouping"
	"github.com/NVIDIA/docsmith/pkg/render"
	"github.com/NVIDIA/docsmith/pkg/report"
)

// DefaultSystemPrompt is the fixed system prompt for content generation.
const DefaultSystemPrompt = `You are a technical writer producing reference documentation for a command-line tool.
Answer strictly with a single JSON object matching the schema described in the user message.
Do not invent commands or parameters that are not listed.`

// Option is a functional option for configuring Pipeline instances.
type Option func(*Pipeline)

// WithGenAI enables AI enrichment through the given client. A nil client
// (the default) runs the pipeline in static-only mode.
func WithGenAI(c *genai.Client) Option {
	return func(p *Pipeline) {
		p.gen = c
	}
}

// WithOutputDir sets the directory articles are written to.
func WithOutputDir(dir string) Option {
	return func(p *Pipeline) {
		p.outputDir = dir
	}
}

// WithDiagDir sets the directory unparseable model responses are saved to.
// Defaults to a "diag" subdirectory of the output directory.
func WithDiagDir(dir string) Option {
	return func(p *Pipeline) {
		p.diagDir = dir
	}
}

// WithConcurrency bounds the number of namespaces processed at once.
// The default of 1 preserves strictly sequential processing; higher values
// are safe because namespaces are independent units of work and every
// retry/diagnostic state is namespace-scoped.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithToolVersion sets the source-tool version string stamped into article
// headers and the report.
func WithToolVersion(v string) Option {
	return func(p *Pipeline) {
		p.toolVersion = v
	}
}

// WithClock overrides the timestamp source. Tests inject this to keep
// rendered output reproducible.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// Pipeline orchestrates the full documentation assembly for one run:
// name resolution, grouping, optional AI enrichment, rendering, and the
// final discrepancy report.
type Pipeline struct {
	cfg config.Run
	cat *catalog.Catalog

	resolver *brand.Resolver
	grouper  *grouping.Grouper
	renderer *render.Renderer
	gen      *genai.Client

	outputDir   string
	diagDir     string
	concurrency int
	toolVersion string
	now         func() time.Time
}

// New creates a Pipeline over the given configuration and catalog.
func New(cfg config.Run, cat *catalog.Catalog, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:         cfg,
		cat:         cat,
		resolver:    brand.New(cfg),
		grouper:     grouping.New(cfg),
		renderer:    render.New(),
		outputDir:   ".",
		concurrency: 1,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.diagDir == "" {
		p.diagDir = filepath.Join(p.outputDir, "diag")
	}
	return p
}

// Run processes every namespace and returns the generation report.
// Per-namespace failures are logged and reflected in the report; only
// unusable output directories or context cancellation abort the run.
func (p *Pipeline) Run(ctx context.Context) (*report.GenerationReport, error) {
	runID := uuid.New().String()
	start := p.now()

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	namespaces := make([]catalog.NamespaceDescriptor, len(p.cat.Namespaces))
	copy(namespaces, p.cat.Namespaces)
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i].Command < namespaces[j].Command })

	slugs := make(map[string]string, len(namespaces))
	for _, ns := range namespaces {
		slugs[ns.Command] = p.resolver.Resolve(ns.Command).Slug
	}

	slog.Info("generation run started",
		"run_id", runID,
		"namespaces", len(namespaces),
		"concurrency", p.concurrency,
		"ai_enabled", p.gen != nil,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, ns := range namespaces {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			p.processNamespace(gctx, ns, slugs[ns.Command])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	validator := report.NewValidator(p.outputDir, slugs)
	rep, err := validator.Build(p.cat, start, p.toolVersion, runID)
	if err != nil {
		return nil, err
	}

	slog.Info("generation run finished",
		"run_id", runID,
		"produced", rep.Summary.Produced,
		"expected", rep.Summary.Expected,
		"completely_missing", rep.Summary.CompletelyMissing,
		"duration", time.Since(start).String(),
	)
	return rep, nil
}

// processNamespace generates one namespace article. All failures are
// namespace-scoped: they degrade or skip this artifact and never abort the
// run.
func (p *Pipeline) processNamespace(ctx context.Context, ns catalog.NamespaceDescriptor, slug string) {
	start := time.Now()
	defer func() {
		namespaceDuration.Observe(time.Since(start).Seconds())
	}()

	tools := p.cat.ToolsFor(ns.Command)
	res := p.resolver.Resolve(ns.Command)

	static := article.Static{
		Namespace:   ns.Command,
		BrandName:   res.BrandName,
		Slug:        slug,
		Description: ns.Description,
		Groups:      p.grouper.Group(tools),
		GeneratedAt: p.now(),
		ToolVersion: p.toolVersion,
	}

	block := p.enrich(ctx, ns.Command, slug, static)
	merged := article.Merge(static, block)

	out, err := p.renderer.Render(render.TemplateArticle, merged)
	if err != nil {
		slog.Error("article rendering failed", "namespace", ns.Command, "error", err)
		namespaceTotal.WithLabelValues("failed").Inc()
		return
	}

	path := filepath.Join(p.outputDir, slug+".md")
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		slog.Error("article write failed", "namespace", ns.Command, "path", path, "error", err)
		namespaceTotal.WithLabelValues("failed").Inc()
		return
	}

	if block == nil && p.gen != nil {
		namespaceTotal.WithLabelValues("degraded").Inc()
	} else {
		namespaceTotal.WithLabelValues("complete").Inc()
	}
	slog.Debug("article written", "namespace", ns.Command, "path", path, "tools", len(tools))
}

// enrich runs the generative-content step for one namespace. Returns nil
// when AI is disabled or the call fails; the article is then rendered
// static-only and the namespace is reported as not enriched.
func (p *Pipeline) enrich(ctx context.Context, namespace, slug string, static article.Static) *article.AIContentBlock {
	if p.gen == nil {
		return nil
	}

	prompt, err := p.renderer.Render(render.TemplatePrompt, static)
	if err != nil {
		slog.Error("prompt rendering failed", "namespace", namespace, "error", err)
		return nil
	}

	result, err := p.gen.Generate(ctx, genai.Request{
		SystemPrompt: DefaultSystemPrompt,
		UserPrompt:   prompt,
	})
	if err == nil {
		if n := result.Trace.Retries(); n > 0 {
			slog.Info("generation succeeded after retries", "namespace", namespace, "retries", n)
		}
		return result.Block
	}

	slog.Warn("generative-content step failed, continuing static-only",
		"namespace", namespace,
		"retries", result.Trace.Retries(),
		"error", err,
	)
	if result.Raw != "" {
		p.persistRawResponse(slug, result.Raw)
	}
	return nil
}

// persistRawResponse saves an unparseable model response to a side file so
// the failure can be reproduced. Files are per-namespace, so concurrent
// namespace processing never interleaves diagnostics.
func (p *Pipeline) persistRawResponse(slug, raw string) {
	if err := os.MkdirAll(p.diagDir, 0755); err != nil {
		slog.Error("failed to create diagnostics directory", "path", p.diagDir, "error", err)
		return
	}
	path := filepath.Join(p.diagDir, slug+".response.txt")
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		slog.Error("failed to persist raw response", "path", path, "error", err)
		return
	}
	slog.Info("raw response saved for diagnosis", "path", path)
}
