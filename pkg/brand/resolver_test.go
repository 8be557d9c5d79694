package brand

import (
	"testing"

	"github.com/NVIDIA/docsmith/pkg/config"
)

func testConfig() config.Run {
	return config.New(
		map[string]config.BrandEntry{
			"keyvault": {BrandName: "Key Vault", Slug: "key-vault"},
			"cosmosdb": {BrandName: "Cosmos DB", Slug: "cosmos-db"},
		},
		map[string]string{
			"eventhub": "event-hub",
		},
		nil,
		nil,
	)
}

func TestResolve_BrandTierNeverFallsThrough(t *testing.T) {
	r := New(testConfig())

	tests := []struct {
		id       string
		wantName string
		wantSlug string
	}{
		{"keyvault", "Key Vault", "key-vault"},
		{"KeyVault", "Key Vault", "key-vault"},
		{"cosmosdb", "Cosmos DB", "cosmos-db"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := r.Resolve(tt.id)
			if got.Tier != TierBrand {
				t.Fatalf("Resolve(%q).Tier = %v, want brand", tt.id, got.Tier)
			}
			if got.BrandName != tt.wantName || got.Slug != tt.wantSlug {
				t.Errorf("Resolve(%q) = (%q, %q), want (%q, %q)",
					tt.id, got.BrandName, got.Slug, tt.wantName, tt.wantSlug)
			}
		})
	}
}

func TestResolve_CompoundTier(t *testing.T) {
	r := New(testConfig())

	got := r.Resolve("eventhub")
	if got.Tier != TierCompound {
		t.Fatalf("Resolve(eventhub).Tier = %v, want compound", got.Tier)
	}
	if got.BrandName != "Event Hub" {
		t.Errorf("BrandName = %q, want %q", got.BrandName, "Event Hub")
	}
	if got.Slug != "event-hub" {
		t.Errorf("Slug = %q, want %q", got.Slug, "event-hub")
	}
}

func TestResolve_FallbackTier(t *testing.T) {
	r := New(testConfig())

	tests := []struct {
		id       string
		wantName string
		wantSlug string
	}{
		{"storage", "Storage", "storage"},
		{"Monitor", "Monitor", "monitor"},
		{"network", "Network", "network"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := r.Resolve(tt.id)
			if got.Tier != TierFallback {
				t.Fatalf("Resolve(%q).Tier = %v, want fallback", tt.id, got.Tier)
			}
			if got.BrandName != tt.wantName {
				t.Errorf("BrandName = %q, want %q", got.BrandName, tt.wantName)
			}
			if got.Slug != tt.wantSlug {
				t.Errorf("Slug = %q, want %q", got.Slug, tt.wantSlug)
			}
		})
	}
}

func TestNearestBrandKey(t *testing.T) {
	r := New(testConfig())

	if got := r.nearestBrandKey("keyvalut"); got != "keyvault" {
		t.Errorf("nearestBrandKey(keyvalut) = %q, want keyvault", got)
	}
	if got := r.nearestBrandKey("storage"); got != "" {
		t.Errorf("nearestBrandKey(storage) = %q, want empty", got)
	}
}
