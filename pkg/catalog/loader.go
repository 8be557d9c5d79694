/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	docerrors "github.com/NVIDIA/docsmith/pkg/errors"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

const (
	toolsSchema      = "tools"
	namespacesSchema = "namespaces"
)

var (
	compileOnce sync.Once
	compiler    *jsonschema.Compiler
	compileErr  error
)

func getCompiler() (*jsonschema.Compiler, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for _, name := range []string{toolsSchema, namespacesSchema} {
			data, err := schemaFS.ReadFile(fmt.Sprintf("schemas/%s.schema.json", name))
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", name, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				compileErr = fmt.Errorf("decode schema %s: %w", name, err)
				return
			}
			if err := c.AddResource(schemaURL(name), doc); err != nil {
				compileErr = fmt.Errorf("register schema %s: %w", name, err)
				return
			}
		}
		compiler = c
	})
	return compiler, compileErr
}

func schemaURL(name string) string {
	return fmt.Sprintf("mem://schemas/%s.schema.json", name)
}

// Load reads and validates both input documents and returns a populated
// Catalog. Missing files and malformed JSON are fatal for the run, per the
// propagation policy: without valid inputs there is nothing to generate.
func Load(toolsPath, namespacesPath string) (*Catalog, error) {
	var cat Catalog

	if err := loadValidated(toolsPath, toolsSchema, &cat.Tools); err != nil {
		return nil, err
	}
	if err := loadValidated(namespacesPath, namespacesSchema, &cat.Namespaces); err != nil {
		return nil, err
	}

	if err := cat.check(); err != nil {
		return nil, err
	}

	slog.Debug("catalog loaded",
		"tools", len(cat.Tools),
		"namespaces", len(cat.Namespaces),
	)
	return &cat, nil
}

func loadValidated(path, schemaName string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return docerrors.Wrap(docerrors.ErrCodeMissingInput,
				fmt.Sprintf("input file %s not found", path), err)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	c, err := getCompiler()
	if err != nil {
		return docerrors.Wrap(docerrors.ErrCodeInternal, "schema compiler initialization failed", err)
	}
	sch, err := c.Compile(schemaURL(schemaName))
	if err != nil {
		return docerrors.Wrap(docerrors.ErrCodeInternal, "schema compilation failed", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return docerrors.Wrap(docerrors.ErrCodeMalformedJSON,
			fmt.Sprintf("input file %s is not valid JSON", path), err)
	}
	if err := sch.Validate(inst); err != nil {
		return docerrors.Wrap(docerrors.ErrCodeMalformedJSON,
			fmt.Sprintf("input file %s failed schema validation", path), err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return docerrors.Wrap(docerrors.ErrCodeMalformedJSON,
			fmt.Sprintf("input file %s could not be decoded", path), err)
	}
	return nil
}

// check enforces the cross-record invariants that the schema cannot express:
// command strings and namespace identifiers must be unique.
func (c *Catalog) check() error {
	commands := make(map[string]struct{}, len(c.Tools))
	for _, t := range c.Tools {
		if _, dup := commands[t.Command]; dup {
			return docerrors.Newf(docerrors.ErrCodeInvalidRequest,
				"duplicate tool command %q", t.Command)
		}
		commands[t.Command] = struct{}{}
	}

	namespaces := make(map[string]struct{}, len(c.Namespaces))
	for _, ns := range c.Namespaces {
		if _, dup := namespaces[ns.Command]; dup {
			return docerrors.Newf(docerrors.ErrCodeInvalidRequest,
				"duplicate namespace identifier %q", ns.Command)
		}
		namespaces[ns.Command] = struct{}{}
	}
	return nil
}
