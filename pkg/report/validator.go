/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/NVIDIA/docsmith/pkg/catalog"
)

// maxHintDistance bounds the edit distance for near-miss artifact hints.
const maxHintDistance = 3

// Validator cross-checks the tool list against the artifacts actually
// present in the output directory.
type Validator struct {
	outputDir string

	// Slugs maps namespace identifiers to their artifact slugs.
	slugs map[string]string
}

// NewValidator creates a Validator for an output directory. slugs maps each
// namespace identifier to the file slug its artifact was (or would have
// been) written under.
func NewValidator(outputDir string, slugs map[string]string) *Validator {
	return &Validator{outputDir: outputDir, slugs: slugs}
}

// Build scans the output directory and computes the discrepancy report:
// per namespace, the expected artifact count from the tool list, the count
// actually present on disk, and the missing command strings. It never fails
// on discrepancies; only an unreadable output directory is an error.
func (v *Validator) Build(cat *catalog.Catalog, at time.Time, generatorVersion, runID string) (*GenerationReport, error) {
	onDisk, err := v.scan()
	if err != nil {
		return nil, err
	}

	r := NewGenerationReport(at, generatorVersion, runID)

	for _, ns := range cat.Namespaces {
		tools := cat.ToolsFor(ns.Command)
		nr := NamespaceReport{
			Namespace: ns.Command,
			Slug:      v.slugs[ns.Command],
			Expected:  len(tools),
		}

		content, found := onDisk[nr.Slug]
		if !found {
			nr.Status = StatusMissing
			for _, t := range tools {
				nr.MissingCommands = append(nr.MissingCommands, t.Command)
			}
			nr.Hint = nearestSlug(nr.Slug, onDisk)
		} else {
			for _, t := range tools {
				if strings.Contains(content, "`"+t.Command+"`") {
					nr.Produced++
				} else {
					nr.MissingCommands = append(nr.MissingCommands, t.Command)
				}
			}
			nr.AIEnriched = strings.Contains(content, "## Overview")
			if len(nr.MissingCommands) == 0 {
				nr.Status = StatusComplete
			} else {
				nr.Status = StatusPartial
			}
		}

		r.Namespaces = append(r.Namespaces, nr)
		r.Summary.Namespaces++
		r.Summary.Expected += nr.Expected
		r.Summary.Produced += nr.Produced
		if nr.Status == StatusMissing {
			r.Summary.CompletelyMissing++
		}

		slog.Debug("namespace validated",
			"namespace", ns.Command,
			"status", nr.Status,
			"expected", nr.Expected,
			"produced", nr.Produced,
		)
	}

	return r, nil
}

// scan returns the content of every markdown artifact in the output
// directory, keyed by slug (base name without extension). When nested files
// share a base name, the shallowest path wins and the duplicates are logged;
// the pipeline itself writes a flat layout, so duplicates indicate foreign
// files in the output directory.
func (v *Validator) scan() (map[string]string, error) {
	matches, err := doublestar.Glob(os.DirFS(v.outputDir), "**/*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to scan output directory %s: %w", v.outputDir, err)
	}

	out := make(map[string]string, len(matches))
	depth := make(map[string]int, len(matches))
	for _, m := range matches {
		slug := strings.TrimSuffix(filepath.Base(m), filepath.Ext(m))
		d := strings.Count(m, "/")
		if prev, seen := depth[slug]; seen && d >= prev {
			slog.Warn("duplicate artifact slug ignored", "slug", slug, "path", m)
			continue
		}

		raw, err := os.ReadFile(filepath.Join(v.outputDir, m))
		if err != nil {
			return nil, fmt.Errorf("failed to read artifact %s: %w", m, err)
		}
		out[slug] = string(raw)
		depth[slug] = d
	}
	return out, nil
}

// nearestSlug finds an on-disk slug within a small edit distance of the
// expected one. Surfaces slug mismatches between resolver configuration and
// a previous run's output.
func nearestSlug(want string, onDisk map[string]string) string {
	best := ""
	bestDist := maxHintDistance + 1
	for candidate := range onDisk {
		if d := levenshtein.ComputeDistance(want, candidate); d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}
