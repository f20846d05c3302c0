// Package nydos provides a client for the New York Department of State
// Public Inquiry API.
//
// # Overview
//
// The Public Inquiry API backs the state's business entity search. Two
// endpoints are used, both taking a JSON POST body:
//
//   - GetComplexSearchMatchingEntities: name search, one fixed page of 50
//   - GetEntityRecordByID: the detail record for a DOS ID
//
// # Usage
//
//	client := nydos.NewClient(nydos.Config{State: "NY"})
//	results, err := client.Search(ctx, "acme", nydos.SearchOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, r := range results {
//	    fmt.Println(r.ID, r.Name, r.Status)
//	}
//	record, err := client.FetchEntityByURL(ctx, results[0].URL)
//
// # Normalization
//
// Search results become [entity.Summary] values whose URL points back at
// GetEntityRecordByID. Detail responses become [entity.Record]: dates are
// truncated to YYYY-MM-DD, addresses are joined with ", ", and an absent
// registered agent is reported as null rather than "".
//
// The registry is loose about scalar types: a dosID or zipCode may arrive as
// a string, a number, or null. All of them are decoded to strings.
//
// [entity.Summary]: github.com/matzehuels/bizreg/pkg/entity.Summary
// [entity.Record]: github.com/matzehuels/bizreg/pkg/entity.Record
package nydos
