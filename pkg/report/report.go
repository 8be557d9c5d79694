/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/NVIDIA/docsmith/pkg/header"
)

const (
	// Kind is the resource kind for generation reports.
	Kind = "GenerationReport"
)

// Status of one namespace in the report.
type Status string

const (
	// StatusComplete means every expected artifact was produced.
	StatusComplete Status = "complete"

	// StatusPartial means the namespace document exists but some commands
	// are missing from it.
	StatusPartial Status = "partial"

	// StatusMissing means no artifact was produced for the namespace.
	StatusMissing Status = "missing"
)

// NamespaceReport is the per-namespace discrepancy record.
type NamespaceReport struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Slug      string `json:"slug" yaml:"slug"`

	Expected int `json:"expected" yaml:"expected"`
	Produced int `json:"produced" yaml:"produced"`

	// MissingCommands lists the command strings absent from the artifact.
	MissingCommands []string `json:"missingCommands,omitempty" yaml:"missingCommands,omitempty"`

	// AIEnriched reports whether the artifact carries AI-generated content.
	// Static-only artifacts are a supported operating mode, not a failure.
	AIEnriched bool `json:"aiEnriched" yaml:"aiEnriched"`

	// Hint names a near-miss artifact on disk when the expected one is
	// missing, typically indicating a slug mismatch.
	Hint string `json:"hint,omitempty" yaml:"hint,omitempty"`

	Status Status `json:"status" yaml:"status"`
}

// Summary aggregates the per-namespace records.
type Summary struct {
	Namespaces        int `json:"namespaces" yaml:"namespaces"`
	Expected          int `json:"expected" yaml:"expected"`
	Produced          int `json:"produced" yaml:"produced"`
	CompletelyMissing int `json:"completelyMissing" yaml:"completelyMissing"`
}

// GenerationReport is the structured discrepancy report for one run.
// Discrepancies are reported, never raised: partial generation is a
// supported operating mode.
type GenerationReport struct {
	Header header.Header `json:"header" yaml:"header"`

	Namespaces []NamespaceReport `json:"namespaces" yaml:"namespaces"`
	Summary    Summary           `json:"summary" yaml:"summary"`
}

// NewGenerationReport creates an initialized report.
func NewGenerationReport(at time.Time, generatorVersion, runID string) *GenerationReport {
	r := &GenerationReport{
		Header: *header.New(header.WithKind(Kind)),
	}
	r.Header.Stamp(at, generatorVersion, runID)
	return r
}

// CompletelyMissing returns the namespaces with zero produced artifacts.
// These, and only these, make the process exit non-zero.
func (r *GenerationReport) CompletelyMissing() []string {
	var out []string
	for _, ns := range r.Namespaces {
		if ns.Status == StatusMissing {
			out = append(out, ns.Namespace)
		}
	}
	return out
}

// Table renders the console summary.
func (r *GenerationReport) Table() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-10s %10s %10s %10s\n", "NAMESPACE", "STATUS", "EXPECTED", "PRODUCED", "MISSING")
	for _, ns := range r.Namespaces {
		fmt.Fprintf(&b, "%-20s %-10s %10d %10d %10d\n",
			ns.Namespace, ns.Status, ns.Expected, ns.Produced, len(ns.MissingCommands))
		if ns.Hint != "" {
			fmt.Fprintf(&b, "  near miss on disk: %s\n", ns.Hint)
		}
	}
	fmt.Fprintf(&b, "\n%d namespaces, %d/%d artifacts produced, %d completely missing",
		r.Summary.Namespaces, r.Summary.Produced, r.Summary.Expected, r.Summary.CompletelyMissing)
	return b.String()
}
