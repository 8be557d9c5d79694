package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
	"github.com/NVIDIA/docsmith/pkg/genai"
	"github.com/NVIDIA/docsmith/pkg/report"
)

var fixedClock = func() time.Time {
	return time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
}

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Tools: []catalog.ToolRecord{
			{
				Command:     "storage account create",
				Description: "Create a storage account.",
				Parameters: []catalog.Parameter{
					{Name: "account-name", Required: true},
					{Name: "subscription", Required: false},
				},
			},
			{
				Command:     "storage account delete",
				Description: "Delete a storage account.",
				Destructive: &catalog.MetadataFlag{Value: true},
			},
			{
				Command:     "keyvault secret show",
				Description: "Show a secret.",
			},
		},
		Namespaces: []catalog.NamespaceDescriptor{
			{Name: "Storage", Command: "storage", Description: "Manage storage."},
			{Name: "Key Vault", Command: "keyvault", Description: "Manage vaults."},
		},
	}
}

func testRunConfig() config.Run {
	return config.New(
		map[string]config.BrandEntry{
			"keyvault": {BrandName: "Key Vault", Slug: "key-vault"},
		},
		nil,
		[]string{"subscription"},
		nil,
	)
}

func TestRun_StaticOnly(t *testing.T) {
	out := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithToolVersion("1.2.3"),
		WithClock(fixedClock),
	)

	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Namespaces, 2)
	for _, ns := range rep.Namespaces {
		assert.Equal(t, report.StatusComplete, ns.Status, "namespace %s", ns.Namespace)
		assert.False(t, ns.AIEnriched)
	}
	assert.Empty(t, rep.CompletelyMissing())
	assert.Equal(t, 3, rep.Summary.Produced)

	raw, err := os.ReadFile(filepath.Join(out, "storage.md"))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "# Storage command reference")
	assert.Contains(t, content, "Generated on March 1, 2026")
	assert.Contains(t, content, "`storage account create`")
	assert.NotContains(t, content, "## Overview")
	// The common optional parameter is filtered out of the table.
	assert.NotContains(t, content, "`subscription`")

	// The configured brand slug names the vault artifact.
	_, err = os.Stat(filepath.Join(out, "key-vault.md"))
	require.NoError(t, err)
}

func TestRun_AIEnriched(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"{\"overview\":\"Generated overview text.\",\"capabilities\":[\"Manage things\"]}"}`))
	}))
	defer srv.Close()

	out := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithToolVersion("1.2.3"),
		WithClock(fixedClock),
		WithGenAI(genai.NewClient(srv.URL, "key")),
	)

	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	for _, ns := range rep.Namespaces {
		assert.Equal(t, report.StatusComplete, ns.Status)
		assert.True(t, ns.AIEnriched, "namespace %s", ns.Namespace)
	}

	raw, err := os.ReadFile(filepath.Join(out, "storage.md"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "## Overview\n\nGenerated overview text.")
	assert.Contains(t, string(raw), "- Manage things")
}

func TestRun_UnparseableResponseDegradesToStatic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"I am unable to produce structured output today."}`))
	}))
	defer srv.Close()

	out := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithClock(fixedClock),
		WithGenAI(genai.NewClient(srv.URL, "key")),
	)

	rep, err := p.Run(context.Background())
	require.NoError(t, err)

	// The article is still produced, static-only.
	for _, ns := range rep.Namespaces {
		assert.Equal(t, report.StatusComplete, ns.Status)
		assert.False(t, ns.AIEnriched)
	}

	// The raw response is persisted per namespace for diagnosis.
	for _, slug := range []string{"storage", "key-vault"} {
		raw, err := os.ReadFile(filepath.Join(out, "diag", slug+".response.txt"))
		require.NoError(t, err, "diagnostic file for %s", slug)
		assert.Equal(t, "I am unable to produce structured output today.", string(raw))
	}
}

func TestRun_GenerationFailureNeverAbortsRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	out := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithClock(fixedClock),
		WithGenAI(genai.NewClient(srv.URL, "bad-key")),
	)

	rep, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rep.CompletelyMissing())
}

func TestRun_ConcurrentNamespaces(t *testing.T) {
	out := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithClock(fixedClock),
		WithConcurrency(4),
	)

	rep, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Summary.Namespaces)
	assert.Equal(t, 3, rep.Summary.Produced)
}

func TestRun_CustomDiagDir(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"no json here"}`))
	}))
	defer srv.Close()

	out := t.TempDir()
	diag := t.TempDir()
	p := New(testRunConfig(), testCatalog(),
		WithOutputDir(out),
		WithDiagDir(diag),
		WithClock(fixedClock),
		WithGenAI(genai.NewClient(srv.URL, "key")),
	)

	_, err := p.Run(context.Background())
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(diag, "storage.response.txt"))
	require.NoError(t, err)
}
