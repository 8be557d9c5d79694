package grouping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/docsmith/pkg/catalog"
	"github.com/NVIDIA/docsmith/pkg/config"
)

func testConfig() config.Run {
	return config.New(
		nil,
		nil,
		[]string{"subscription", "tenant", "retry-count", "auth-mode"},
		map[string]map[string]config.ResourceOverride{
			"storage": {
				"blob container": {ResourceType: "Container", OperationSuffix: "container details"},
			},
		},
	)
}

func tool(command string, params ...catalog.Parameter) catalog.ToolRecord {
	return catalog.ToolRecord{Command: command, Description: "desc", Parameters: params}
}

func TestSplit(t *testing.T) {
	g := New(testConfig())

	tests := []struct {
		name         string
		command      string
		wantResource string
		wantPhrase   string
	}{
		{"three tokens", "storage account create", "Account", "Create"},
		{"four tokens default", "storage account keys list", "Account", "Keys list"},
		{"two tokens sentinel", "storage list", DefaultResourceType, "List"},
		{"override with suffix", "storage blob container get", "Container", "Get container details"},
		{"override not matched in other namespace", "network blob container get", "Blob", "Container get"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resource, phrase := g.Split(tool(tt.command))
			assert.Equal(t, tt.wantResource, resource)
			assert.Equal(t, tt.wantPhrase, phrase)
		})
	}
}

func TestSplit_ThreePlusTokensAlwaysNonEmptyPhrase(t *testing.T) {
	g := New(testConfig())

	for _, cmd := range []string{
		"storage account create",
		"keyvault secret show",
		"network vnet subnet list",
	} {
		_, phrase := g.Split(tool(cmd))
		assert.NotEmpty(t, phrase, "command %q", cmd)
	}
}

func TestFilterParameters(t *testing.T) {
	g := New(testConfig())

	t.Run("common optional parameter is filtered", func(t *testing.T) {
		got := g.FilterParameters(tool("storage account create",
			catalog.Parameter{Name: "account-name", Required: true},
			catalog.Parameter{Name: "subscription", Required: false},
		))
		require.Len(t, got, 1)
		assert.Equal(t, "account-name", got[0].Name)
	})

	t.Run("required common parameter is kept", func(t *testing.T) {
		got := g.FilterParameters(tool("storage account create",
			catalog.Parameter{Name: "account-name", Required: true},
			catalog.Parameter{Name: "subscription", Required: true},
		))
		require.Len(t, got, 2)
		assert.Equal(t, "subscription", got[1].Name)
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		rec := tool("storage account create",
			catalog.Parameter{Name: "account-name", Required: true},
			catalog.Parameter{Name: "subscription", Required: false},
			catalog.Parameter{Name: "tenant", Required: false},
		)
		once := g.FilterParameters(rec)

		rec.Parameters = once
		twice := g.FilterParameters(rec)
		assert.Equal(t, once, twice)
	})
}

func TestGroup_OrderingAndShape(t *testing.T) {
	g := New(testConfig())

	groups := g.Group([]catalog.ToolRecord{
		tool("storage container delete"),
		tool("storage account create"),
		tool("storage account keys list"),
		tool("storage Blob upload"),
		tool("storage list"),
	})

	require.Len(t, groups, 4)

	// Groups sort by label, ordinal case-insensitive.
	labels := make([]string, len(groups))
	for i, grp := range groups {
		labels[i] = grp.ResourceType
	}
	assert.Equal(t, []string{"Account", "Blob", "Container", DefaultResourceType}, labels)

	// Operations inside a group sort by phrase.
	account := groups[0]
	require.Len(t, account.Operations, 2)
	assert.Equal(t, "Create", account.Operations[0].Phrase)
	assert.Equal(t, "Keys list", account.Operations[1].Phrase)
}

func TestGroup_EndToEndScenario(t *testing.T) {
	cfg := config.New(nil, nil, []string{"subscription"}, nil)
	g := New(cfg)

	groups := g.Group([]catalog.ToolRecord{
		tool("storage account create",
			catalog.Parameter{Name: "account-name", Required: true},
			catalog.Parameter{Name: "subscription", Required: false},
		),
	})

	require.Len(t, groups, 1)
	assert.Equal(t, "Account", groups[0].ResourceType)
	require.Len(t, groups[0].Operations, 1)

	op := groups[0].Operations[0]
	assert.Equal(t, "Create", op.Phrase)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "account-name", op.Parameters[0].Name)
}

func TestGroup_DoesNotMutateSource(t *testing.T) {
	g := New(testConfig())

	rec := tool("storage account create",
		catalog.Parameter{Name: "account-name", Required: true},
		catalog.Parameter{Name: "subscription", Required: false},
	)
	tools := []catalog.ToolRecord{rec}
	_ = g.Group(tools)

	assert.Len(t, tools[0].Parameters, 2)
}
