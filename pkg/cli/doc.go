// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the docsmith tool.
//
// # Overview
//
// docsmith turns machine-readable CLI tool metadata into per-namespace
// reference documents, optionally enriched by a generative-content API, and
// cross-checks the produced artifacts against the input tool list.
//
// # Commands
//
// generate - Produce reference documents:
//
//	docsmith generate --tools tools.json --namespaces namespaces.json \
//	  --config ./config --output ./docs [--skip-ai] [--concurrency N]
//
// Reads the tool-list and namespace JSON documents, resolves display names
// through the brand/compound-word tables, groups commands by resource type,
// optionally calls the generative-content API per namespace (with bounded
// retry on rate limits), renders one document per namespace, and writes the
// discrepancy report.
//
// report - Recompute the discrepancy report for existing output:
//
//	docsmith report --tools tools.json --namespaces namespaces.json \
//	  --config ./config --output ./docs --format table
//
// publish - Push a documentation set to an OCI registry:
//
//	docsmith publish --dir ./docs --ref ghcr.io/org/cli-docs --tag v1.4.0
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Exit Codes
//
//	0  Success, including partially enriched output
//	1  General error, or one or more namespaces produced no artifact
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/catalog - Input loading and schema validation
//   - pkg/config - Run configuration (brand maps, common parameters)
//   - pkg/brand - Namespace name resolution
//   - pkg/grouping - Resource-type/operation hierarchy
//   - pkg/genai - Generative-content client with retry/backoff
//   - pkg/render - Template rendering
//   - pkg/pipeline - Per-namespace orchestration
//   - pkg/report - Discrepancy reporting
//   - pkg/oci - OCI artifact publishing
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/docsmith/pkg/version.version=1.0.0'"
package cli
