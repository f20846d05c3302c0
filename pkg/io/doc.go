// Package io provides JSON import and export for normalized registry output.
//
// # JSON Format
//
// Search results are written as an array of summaries:
//
//	[
//	  {"state": "NY", "name": "ACME WIDGETS LLC", "status": "Active",
//	   "id": "5123456", "url": ".../GetEntityRecordByID/5123456"}
//	]
//
// Detail records are written as a single object with snake_case keys.
// Nullable fields (date_registered, inactive_date, agent_name,
// agent_address) are written as null rather than omitted, and
// document_images is always an array.
//
// # Export
//
// Use [WriteJSON] to write any value to an io.Writer, or [ExportJSON] to
// write it to a file:
//
//	if err := io.ExportJSON(results, "acme.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Import
//
// [ImportSummaries] reads a file written from search results back, so that a
// saved result list can be fed to a later detail lookup:
//
//	results, err := io.ImportSummaries("acme.json")
package io
