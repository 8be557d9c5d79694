/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package article

import (
	"time"

	"github.com/NVIDIA/docsmith/pkg/grouping"
)

// Scenario is one AI-suggested usage scenario.
type Scenario struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// BestPractice is one AI-suggested best practice.
type BestPractice struct {
	Title     string `json:"title"`
	Rationale string `json:"rationale"`
}

// AIContentBlock holds the parsed fields of one generative-content response.
// It lives only between the API call and the merge.
type AIContentBlock struct {
	Overview      string         `json:"overview"`
	Description   string         `json:"description"`
	Capabilities  []string       `json:"capabilities"`
	Scenarios     []Scenario     `json:"scenarios"`
	BestPractices []BestPractice `json:"bestPractices"`
}

// Static is the deterministic portion of one namespace article. Every field
// here is authoritative: the merge never lets AI output replace it.
type Static struct {
	Namespace   string
	BrandName   string
	Slug        string
	Description string

	Groups []grouping.ResourceGroup

	// GeneratedAt is passed in explicitly so rendering stays deterministic.
	GeneratedAt time.Time
	ToolVersion string
}

// ToolCount returns the total number of operations across all groups.
func (s Static) ToolCount() int {
	n := 0
	for _, g := range s.Groups {
		n += g.ToolCount()
	}
	return n
}

// Merged is the union of static grouped data and AI content for one
// namespace, keyed by the namespace identifier.
type Merged struct {
	Static

	Overview      string
	Capabilities  []string
	Scenarios     []Scenario
	BestPractices []BestPractice
}

// Merge combines static data with an AI content block. Every static field is
// copied verbatim; AI fields are copied only when present and non-empty, and
// an AI field sharing a logical name with a populated static field (such as
// the namespace description) never overrides it. A nil block yields a
// static-only article, which is the skip-AI operating mode.
func Merge(s Static, ai *AIContentBlock) Merged {
	m := Merged{Static: s}
	if ai == nil {
		return m
	}

	if ai.Overview != "" {
		m.Overview = ai.Overview
	}
	if s.Description == "" && ai.Description != "" {
		m.Description = ai.Description
	}
	if len(ai.Capabilities) > 0 {
		m.Capabilities = ai.Capabilities
	}
	if len(ai.Scenarios) > 0 {
		m.Scenarios = ai.Scenarios
	}
	if len(ai.BestPractices) > 0 {
		m.BestPractices = ai.BestPractices
	}
	return m
}
