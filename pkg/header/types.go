package header

import (
	"fmt"
	"time"
)

var (
	// APIVersionDomain is the resource domain used in apiVersion strings.
	APIVersionDomain = "docs.nvidia.com"

	// APIVersionV1 is the current schema version.
	APIVersionV1 = "v1"
)

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the
// Header. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
// Kind represents the type of the resource (e.g. "Article", "GenerationReport").
func WithKind(kind string) Option {
	return func(h *Header) {
		h.SetKind(kind)
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header contains metadata and versioning information for docsmith resources.
// It follows Kubernetes-style resource conventions with Kind, APIVersion and
// Metadata fields.
type Header struct {
	// Kind is the type of the resource.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the API version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// SetKind updates the Kind field and derives the APIVersion from it using
// the format "<domain>/<version>".
func (h *Header) SetKind(kind string) {
	h.Kind = kind
	h.APIVersion = fmt.Sprintf("%s/%s", APIVersionDomain, APIVersionV1)
}

// Stamp records the generation timestamp, generator version and run ID in
// the metadata map. The timestamp is passed in explicitly so resources stay
// reproducible.
func (h *Header) Stamp(at time.Time, generatorVersion, runID string) {
	if h.Metadata == nil {
		h.Metadata = make(map[string]string)
	}
	h.Metadata["generated-at"] = at.UTC().Format(time.RFC3339)
	h.Metadata["generator-version"] = generatorVersion
	h.Metadata["run-id"] = runID
}
