// Package integrations provides HTTP clients for business-registry APIs.
//
// # Overview
//
// This package contains low-level API clients for searching registered
// business entities and fetching their detail records. Each registry has its
// own subpackage:
//
//   - [nydos]: New York Department of State Public Inquiry
//
// # Client Pattern
//
// All registry clients follow a consistent pattern:
//
//	client := nydos.NewClient(nydos.Config{State: "NY"})
//	results, err := client.Search(ctx, "acme", nydos.SearchOptions{})
//	record, err := client.FetchEntityByURL(ctx, results[0].URL)
//
// Clients handle:
//   - Building the registry's request payload
//   - Exactly one HTTP request per call (no retry, no cache)
//   - API-specific parsing and normalization into [entity] types
//
// # Shared Infrastructure
//
// The [Client] type provides shared HTTP functionality used by all registry
// clients: default headers, JSON POST, status mapping to sentinel errors,
// debug logging of raw responses, and [observability] HTTP hooks.
//
// # Adding a New Registry
//
// To add support for a new registry:
//
//  1. Create a subpackage: pkg/integrations/<registry>/
//  2. Define response structs matching the API schema
//  3. Implement a Client with Search and FetchEntity methods
//  4. Use [NewClient] for HTTP
//  5. Map responses into [entity.Summary] and [entity.Record]
//
// [nydos]: github.com/matzehuels/bizreg/pkg/integrations/nydos
// [entity]: github.com/matzehuels/bizreg/pkg/entity
// [entity.Summary]: github.com/matzehuels/bizreg/pkg/entity.Summary
// [entity.Record]: github.com/matzehuels/bizreg/pkg/entity.Record
// [observability]: github.com/matzehuels/bizreg/pkg/observability
package integrations
