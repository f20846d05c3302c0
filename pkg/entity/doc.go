// Package entity defines the normalized business-registry records produced by
// registry clients.
//
// # Overview
//
// Registry APIs return deeply nested, loosely typed JSON. Clients in
// [integrations] reshape those payloads into the flat types in this package so
// that callers (CLI, HTTP API, stores) never see registry-specific structure:
//
//   - [Summary]: one row of a search result (name, status, id, detail URL)
//   - [Record]: the detail view of one entity (dates, addresses, agent info)
//   - [AgentRow]: compact id/name/agent view from tabular "rows" payloads
//
// # Nullable Fields
//
// A handful of [Record] fields are pointers so that "absent" marshals as JSON
// null rather than an empty string: DateRegistered, InactiveDate, AgentName and
// AgentAddress. Use [NullIfEmpty] and [DatePart] to populate them.
//
// # Text Normalization
//
// All text that lands in a normalized field passes through [Clean], which
// applies Unicode NFC normalization and trims surrounding whitespace.
//
// [integrations]: github.com/matzehuels/bizreg/pkg/integrations
package entity
