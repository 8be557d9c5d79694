/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package render

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Template identifiers understood by the renderer.
const (
	// TemplateArticle is the per-namespace reference document.
	TemplateArticle = "article.md.tmpl"

	// TemplatePrompt is the user prompt sent to the generative-content API.
	// It renders through the same engine as the final output so the model
	// sees exactly the filtered, grouped tool list.
	TemplatePrompt = "prompt.md.tmpl"
)

// Renderer compiles the embedded template set once and evaluates it
// repeatedly. Templates may embed each other (the parameter table partial is
// included from the article template). Evaluation is deterministic for
// identical input data.
type Renderer struct {
	once sync.Once
	set  *template.Template
	err  error
}

// New creates a Renderer. Compilation is deferred to the first Render call.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) compiled() (*template.Template, error) {
	r.once.Do(func() {
		r.set, r.err = template.New("docsmith").
			Funcs(helperFuncs()).
			ParseFS(templateFS, "templates/*.tmpl")
	})
	return r.set, r.err
}

// Render evaluates the named template against data and returns the output.
func (r *Renderer) Render(name string, data any) (string, error) {
	set, err := r.compiled()
	if err != nil {
		return "", fmt.Errorf("failed to compile templates: %w", err)
	}

	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
