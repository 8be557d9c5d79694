/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package grouping

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
)

// DefaultResourceType is the sentinel group for commands that have no
// resource-type token (namespace-level two-token commands).
const DefaultResourceType = "General"

// OperationEntry is one operation under a resource group.
type OperationEntry struct {
	// Phrase is the natural-language operation phrase.
	Phrase string

	// Tool is the source record. Never mutated by the grouping engine.
	Tool catalog.ToolRecord

	// Parameters is the filtered parameter list for rendering.
	Parameters []catalog.Parameter
}

// ResourceGroup is an ordered set of operations under one resource type.
type ResourceGroup struct {
	// ResourceType is the group label (e.g. "Account", "Container").
	ResourceType string

	// Operations are sorted by phrase, ordinal case-insensitive.
	Operations []OperationEntry
}

// ToolCount returns the number of operations in the group.
func (g ResourceGroup) ToolCount() int {
	return len(g.Operations)
}

// Grouper splits command strings into resource-type/operation hierarchies
// and filters common parameters.
type Grouper struct {
	cfg   config.Run
	caser cases.Caser
}

// New creates a Grouper bound to the given run configuration.
func New(cfg config.Run) *Grouper {
	return &Grouper{
		cfg:   cfg,
		caser: cases.Title(language.English),
	}
}

// Split derives the resource type and operation phrase from one tool record.
// The second command token becomes the resource type unless a configured
// sub-resource override claims a longer token prefix; tokens after the
// resource portion form the operation phrase. Two-token commands fall into
// the DefaultResourceType sentinel with the verb itself as the operation.
func (g *Grouper) Split(t catalog.ToolRecord) (resourceType, phrase string) {
	tokens := strings.Fields(t.Command)

	switch {
	case len(tokens) < 2:
		return DefaultResourceType, ""
	case len(tokens) == 2:
		return DefaultResourceType, g.caser.String(tokens[1])
	}

	// Sub-resource overrides claim the longest matching token prefix after
	// the namespace, leaving at least one verb token.
	if overrides := g.cfg.OverridesFor(tokens[0]); overrides != nil {
		for width := len(tokens) - 2; width >= 1; width-- {
			prefix := strings.Join(tokens[1:1+width], " ")
			ov, ok := overrides[prefix]
			if !ok {
				continue
			}
			phrase := g.sentencePhrase(tokens[1+width:])
			if ov.OperationSuffix != "" {
				phrase += " " + ov.OperationSuffix
			}
			return ov.ResourceType, phrase
		}
	}

	return g.caser.String(tokens[1]), g.sentencePhrase(tokens[2:])
}

// FilterParameters removes common parameters from a tool's parameter list.
// A parameter in the common set survives only when the tool marks it
// required. Input order is preserved; the source record is not mutated.
// Filtering is idempotent.
func (g *Grouper) FilterParameters(t catalog.ToolRecord) []catalog.Parameter {
	out := make([]catalog.Parameter, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		if g.cfg.IsCommonParameter(p.Name) && !p.Required {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Group produces the sorted resource-group hierarchy for all tools of one
// namespace. Groups sort by resource-type label and operations within a
// group by phrase, both ordinal case-insensitive.
func (g *Grouper) Group(tools []catalog.ToolRecord) []ResourceGroup {
	byType := make(map[string]*ResourceGroup)
	order := make([]string, 0)

	for _, t := range tools {
		resourceType, phrase := g.Split(t)

		grp, ok := byType[resourceType]
		if !ok {
			grp = &ResourceGroup{ResourceType: resourceType}
			byType[resourceType] = grp
			order = append(order, resourceType)
		}
		grp.Operations = append(grp.Operations, OperationEntry{
			Phrase:     phrase,
			Tool:       t,
			Parameters: g.FilterParameters(t),
		})
	}

	groups := make([]ResourceGroup, 0, len(order))
	for _, label := range order {
		grp := *byType[label]
		sort.SliceStable(grp.Operations, func(i, j int) bool {
			return strings.ToLower(grp.Operations[i].Phrase) < strings.ToLower(grp.Operations[j].Phrase)
		})
		groups = append(groups, grp)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].ResourceType) < strings.ToLower(groups[j].ResourceType)
	})
	return groups
}

// sentencePhrase joins tokens into a natural phrase: first word title-cased,
// the rest lowercased ("keys list" -> "Keys list").
func (g *Grouper) sentencePhrase(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	parts := make([]string, len(tokens))
	parts[0] = g.caser.String(tokens[0])
	for i := 1; i < len(tokens); i++ {
		parts[i] = strings.ToLower(tokens[i])
	}
	return strings.Join(parts, " ")
}
