// Package pkg provides the libraries behind bizreg, a client for the New York
// Department of State business entity registry.
//
// # Overview
//
// bizreg turns a company name into normalized registry data: a list of
// matching entities, and for any one of them a flat detail record with
// addresses joined into single lines and dates cut to YYYY-MM-DD. The pkg
// directory is organized into these areas:
//
//  1. [entity] - Normalized output types and formatting helpers
//  2. [integrations] - Registry API clients ([integrations/nydos])
//  3. [lookup] - The catch-and-log service used by the CLI and the HTTP API
//  4. [store] - Optional persistence of results (file, redis, mongo, sqlite)
//  5. [server] - HTTP API over the lookup service
//  6. [config], [errors], [observability], [io], [buildinfo] - Supporting packages
//
// # Data Flow
//
//	search text
//	     ↓
//	[integrations/nydos] Search (POST GetComplexSearchMatchingEntities)
//	     ↓
//	[]entity.Summary ── url ──→ FetchEntityByURL (POST GetEntityRecordByID)
//	                                  ↓
//	                             *entity.Record
//	                                  ↓
//	                     [store] SaveRecord (optional)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/bizreg/pkg/integrations/nydos"
//	    "github.com/matzehuels/bizreg/pkg/lookup"
//	)
//
//	svc := lookup.New(nydos.NewClient(nydos.Config{State: "NY"}), nil, nil)
//	results := svc.Search(ctx, "acme")
//	if len(results) > 0 {
//	    record := svc.Details(ctx, results[0].URL)
//	    fmt.Println(record.Name, record.Status, entity.Deref(record.DateRegistered))
//	}
//
// # Error Handling
//
// Registry clients return errors: sentinel errors from [integrations] for
// HTTP failures, [integrations/nydos.ErrRequestStatus] when the registry
// reports failure, and coded [errors] for bad input. The [lookup] service is
// the one place those errors are logged and replaced with empty results.
//
// [entity]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/entity
// [integrations]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/integrations
// [integrations/nydos]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/integrations/nydos
// [integrations/nydos.ErrRequestStatus]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/integrations/nydos#ErrRequestStatus
// [lookup]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/lookup
// [store]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/store
// [server]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/io
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/bizreg/pkg/buildinfo
package pkg
