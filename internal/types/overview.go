package types

import (
	"encoding/json"
	"fmt"
)

// NoResultsDetail is the message the service uses to signal a successful
// query with zero matches.
const NoResultsDetail = "No results found!"

// Document is one article as returned by the service. Field sets vary by
// collection, so documents stay schemaless.
type Document map[string]any

// Envelope is a raw top-level JSON object for endpoints whose shape the
// client passes through unmodified.
type Envelope map[string]any

// ResultPage is one page of a paginated result set. Its internal structure
// (normally a matches list) is opaque to the pager.
type ResultPage map[string]any

// Overview is the envelope returned by the search/overview endpoint. Which
// fields are populated depends on the request, so Has reports whether a key
// was present in the response at all.
type Overview struct {
	Matches     []Document
	Detail      string
	Total       int64
	TopDomains  NamedCounts
	TopTLDs     NamedCounts
	TopLangs    NamedCounts
	DailyCounts DailyCounts

	present map[string]bool
}

func (o *Overview) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	o.present = make(map[string]bool, len(fields))
	for key := range fields {
		o.present[key] = true
	}
	for key, dst := range map[string]any{
		"matches":     &o.Matches,
		"detail":      &o.Detail,
		"total":       &o.Total,
		"topdomains":  &o.TopDomains,
		"toptlds":     &o.TopTLDs,
		"toplangs":    &o.TopLangs,
		"dailycounts": &o.DailyCounts,
	} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return fmt.Errorf("overview field %q: %w", key, err)
		}
	}
	return nil
}

// Has reports whether the response carried the given top-level key.
func (o *Overview) Has(field string) bool { return o.present[field] }

// NoResults reports whether the service signalled an empty result set: no
// matches key and the literal no-results detail message. A response that
// carries matches is never treated as empty, whatever its detail says.
func (o *Overview) NoResults() bool {
	return !o.present["matches"] && o.Detail == NoResultsDetail
}
