/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import "strings"

// Parameter is one CLI parameter of a tool.
type Parameter struct {
	Name        string `json:"name"`
	Required    bool   `json:"required"`
	Description string `json:"description,omitempty"`
}

// MetadataFlag is a boolean safety annotation with a provenance tag
// describing where the value came from (e.g. "annotation", "heuristic").
type MetadataFlag struct {
	Value  bool   `json:"value"`
	Source string `json:"source,omitempty"`
}

// ToolRecord is one CLI command's full metadata. Records are immutable once
// loaded; downstream components derive views without mutating them.
type ToolRecord struct {
	// Command is the space-separated command string, unique per run.
	Command string `json:"command"`

	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`

	Destructive *MetadataFlag `json:"destructive,omitempty"`
	ReadOnly    *MetadataFlag `json:"readOnly,omitempty"`
	Secret      *MetadataFlag `json:"secret,omitempty"`
}

// Namespace returns the first token of the command string, which identifies
// the service area the tool belongs to.
func (t ToolRecord) Namespace() string {
	fields := strings.Fields(t.Command)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// IsDestructive reports whether the tool carries a true destructive flag.
func (t ToolRecord) IsDestructive() bool {
	return t.Destructive != nil && t.Destructive.Value
}

// IsReadOnly reports whether the tool carries a true read-only flag.
func (t ToolRecord) IsReadOnly() bool {
	return t.ReadOnly != nil && t.ReadOnly.Value
}

// RequiresSecret reports whether the tool carries a true secret flag.
func (t ToolRecord) RequiresSecret() bool {
	return t.Secret != nil && t.Secret.Value
}

// NamespaceDescriptor describes one service area.
type NamespaceDescriptor struct {
	// Name is the human name of the service area.
	Name string `json:"name"`

	// Command matches the first token of tool commands in this namespace and
	// acts as the namespace identifier. Identifiers are unique per run.
	Command string `json:"command"`

	Description string `json:"description"`
}

// Catalog holds the loaded tool records and namespace descriptors for the
// lifetime of a run.
type Catalog struct {
	Tools      []ToolRecord
	Namespaces []NamespaceDescriptor
}

// ToolsFor returns the tool records whose namespace matches the given
// identifier, preserving input order.
func (c *Catalog) ToolsFor(namespace string) []ToolRecord {
	var out []ToolRecord
	for _, t := range c.Tools {
		if t.Namespace() == namespace {
			out = append(out, t)
		}
	}
	return out
}
