/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/distribution/reference"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/retry"
)

const (
	// ArtifactType identifies a docsmith documentation bundle.
	ArtifactType = "application/vnd.nvidia.docsmith.bundle.v1"

	// layerMediaType is the media type for bundled documents.
	layerMediaType = "text/markdown"

	// DefaultTag is used when no tag is specified.
	DefaultTag = "latest"
)

// Options configures a push.
type Options struct {
	// Reference is the target repository reference, e.g.
	// "ghcr.io/nvidia/docsmith-docs".
	Reference string

	// Tag defaults to DefaultTag.
	Tag string

	// PlainHTTP uses HTTP instead of HTTPS (local registries).
	PlainHTTP bool

	// Username and Password are optional static credentials.
	Username string
	Password string
}

// Push packages the documentation directory as an OCI artifact and pushes it
// to the target registry. Returns the manifest digest.
func Push(ctx context.Context, dir string, opts Options) (string, error) {
	named, err := reference.ParseNormalizedNamed(opts.Reference)
	if err != nil {
		return "", fmt.Errorf("invalid registry reference %q: %w", opts.Reference, err)
	}
	tag := opts.Tag
	if tag == "" {
		tag = DefaultTag
	}

	store, err := file.New(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open bundle directory: %w", err)
	}
	defer store.Close()

	layers, err := addFiles(ctx, store, dir)
	if err != nil {
		return "", err
	}
	if len(layers) == 0 {
		return "", fmt.Errorf("no documents found under %s", dir)
	}

	manifestDesc, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers: layers,
			ManifestAnnotations: map[string]string{
				ocispec.AnnotationTitle: "docsmith documentation bundle",
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to pack manifest: %w", err)
	}
	if err := store.Tag(ctx, manifestDesc, tag); err != nil {
		return "", fmt.Errorf("failed to tag manifest: %w", err)
	}

	repo, err := remote.NewRepository(named.Name())
	if err != nil {
		return "", fmt.Errorf("failed to connect to repository: %w", err)
	}
	repo.PlainHTTP = opts.PlainHTTP

	client := &auth.Client{
		Client: retry.DefaultClient,
		Cache:  auth.NewCache(),
	}
	if opts.Username != "" {
		client.Credential = auth.StaticCredential(reference.Domain(named), auth.Credential{
			Username: opts.Username,
			Password: opts.Password,
		})
	}
	repo.Client = client

	if _, err := oras.Copy(ctx, store, tag, repo, tag, oras.DefaultCopyOptions); err != nil {
		return "", fmt.Errorf("failed to push bundle: %w", err)
	}

	slog.Info("bundle pushed",
		"reference", named.Name(),
		"tag", tag,
		"digest", manifestDesc.Digest.String(),
		"documents", len(layers),
	)
	return manifestDesc.Digest.String(), nil
}

// addFiles registers every markdown document under dir with the file store.
func addFiles(ctx context.Context, store *file.Store, dir string) ([]ocispec.Descriptor, error) {
	var layers []ocispec.Descriptor

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".md" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		desc, err := store.Add(ctx, rel, layerMediaType, path)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", rel, err)
		}
		layers = append(layers, desc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect documents: %w", err)
	}
	return layers, nil
}
