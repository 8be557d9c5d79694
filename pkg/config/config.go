/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muhammadmuzzammil1998/jsonc"

	docerrors "github.com/NVIDIA/docsmith/pkg/errors"
)

// Well-known configuration file names inside the configuration directory.
const (
	BrandFile             = "brand.json"
	CompoundWordsFile     = "compound-words.json"
	CommonParametersFile  = "common-parameters.json"
	ResourceOverridesFile = "resource-overrides.json"
)

// BrandEntry is a configured display name and filename slug for a namespace.
type BrandEntry struct {
	BrandName string `json:"brandName"`
	Slug      string `json:"slug"`
}

// ResourceOverride rewrites resource-type derivation for multi-level
// sub-resource commands. The override key is the token sequence following the
// namespace (e.g. "blob container"); ResourceType replaces the default
// second-token derivation and OperationSuffix, when set, is appended to the
// operation verb (e.g. "get" + "container details" -> "Get container details").
type ResourceOverride struct {
	ResourceType    string `json:"resourceType"`
	OperationSuffix string `json:"operationSuffix,omitempty"`
}

// Run is the immutable configuration for one generation run. It is
// constructed once at startup and passed into component constructors;
// components never reach for ambient global state.
type Run struct {
	// Brand maps lowercase namespace identifiers to configured brand entries.
	Brand map[string]BrandEntry

	// CompoundWords maps lowercase namespace identifiers to their hyphenated
	// display form (e.g. "eventhub" -> "event-hub").
	CompoundWords map[string]string

	// CommonParameters is the set of parameter names elided from per-tool
	// listings unless a tool marks them required.
	CommonParameters []string

	// ResourceOverrides maps namespace -> sub-resource token prefix ->
	// override, resolved longest-prefix-first by the grouping engine.
	ResourceOverrides map[string]map[string]ResourceOverride

	commonSet map[string]struct{}
}

// Load reads the configuration maps from dir. The brand, compound-word and
// common-parameter files are required; the resource-override file is
// optional. Files may carry //-style comments (JSONC).
func Load(dir string) (Run, error) {
	var r Run

	if err := loadInto(filepath.Join(dir, BrandFile), &r.Brand); err != nil {
		return Run{}, err
	}
	if err := loadInto(filepath.Join(dir, CompoundWordsFile), &r.CompoundWords); err != nil {
		return Run{}, err
	}
	if err := loadInto(filepath.Join(dir, CommonParametersFile), &r.CommonParameters); err != nil {
		return Run{}, err
	}

	overridePath := filepath.Join(dir, ResourceOverridesFile)
	if _, err := os.Stat(overridePath); err == nil {
		if err := loadInto(overridePath, &r.ResourceOverrides); err != nil {
			return Run{}, err
		}
	}

	r.buildIndex()
	return r, nil
}

// New constructs a Run from already-parsed maps. Intended for tests and for
// callers embedding configuration.
func New(brand map[string]BrandEntry, compound map[string]string, commonParams []string, overrides map[string]map[string]ResourceOverride) Run {
	r := Run{
		Brand:             brand,
		CompoundWords:     compound,
		CommonParameters:  commonParams,
		ResourceOverrides: overrides,
	}
	r.buildIndex()
	return r
}

// IsCommonParameter reports whether name is in the configured common set.
// Matching is case-insensitive.
func (r Run) IsCommonParameter(name string) bool {
	_, ok := r.commonSet[strings.ToLower(name)]
	return ok
}

// OverridesFor returns the sub-resource override table for a namespace.
// A nil map means the two-token default applies everywhere.
func (r Run) OverridesFor(namespace string) map[string]ResourceOverride {
	return r.ResourceOverrides[strings.ToLower(namespace)]
}

func (r *Run) buildIndex() {
	r.commonSet = make(map[string]struct{}, len(r.CommonParameters))
	for _, p := range r.CommonParameters {
		r.commonSet[strings.ToLower(p)] = struct{}{}
	}
}

func loadInto(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return docerrors.Wrap(docerrors.ErrCodeMissingInput,
				fmt.Sprintf("configuration file %s not found", filepath.Base(path)), err)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(jsonc.ToJSON(raw), out); err != nil {
		return docerrors.Wrap(docerrors.ErrCodeMalformedJSON,
			fmt.Sprintf("configuration file %s is not valid JSON", filepath.Base(path)), err)
	}
	return nil
}
