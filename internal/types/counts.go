package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// NamedCount is one name/value record converted from a JSON object entry.
// The service reports aggregates as objects keyed by name; callers get a
// list shape instead.
type NamedCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// NamedCounts decodes a JSON object of name-to-count pairs into a list,
// preserving the object's key order.
type NamedCounts []NamedCount

func (n *NamedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("named counts: expected JSON object, got %v", tok)
	}
	out := NamedCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("named counts: non-string key %v", keyTok)
		}
		var value int64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("named counts: value for %q: %w", key, err)
		}
		out = append(out, NamedCount{Name: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*n = out
	return nil
}

// ToMap converts the list back into its original object shape.
func (n NamedCounts) ToMap() map[string]int64 {
	m := make(map[string]int64, len(n))
	for _, nc := range n {
		m[nc.Name] = nc.Value
	}
	return m
}

// DailyCount is one calendar day's match count. Day keeps the service's
// YYYY-MM-DD key verbatim.
type DailyCount struct {
	Day   string
	Count int64
}

// DailyCounts preserves the key order of the service's dailycounts object.
type DailyCounts []DailyCount

func (d *DailyCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("daily counts: expected JSON object, got %v", tok)
	}
	out := DailyCounts{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("daily counts: non-string key %v", keyTok)
		}
		var count int64
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("daily counts: value for %q: %w", key, err)
		}
		out = append(out, DailyCount{Day: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

// DayCount is one day's entry in a count-over-time series.
type DayCount struct {
	Date      time.Time `json:"date"`
	Timestamp int64     `json:"timestamp"`
	Count     int64     `json:"count"`
}

// CountOverTime is the attention series derived from an overview response's
// dailycounts object.
type CountOverTime struct {
	Counts []DayCount `json:"counts"`
}

const dayLayout = "2006-01-02"

// Series parses each day key as midnight UTC and produces the count series
// in the service's reported order.
func (d DailyCounts) Series() (*CountOverTime, error) {
	out := &CountOverTime{Counts: make([]DayCount, 0, len(d))}
	for _, dc := range d {
		day, err := time.ParseInLocation(dayLayout, dc.Day, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("daily count %q: %w", dc.Day, err)
		}
		out.Counts = append(out.Counts, DayCount{Date: day, Timestamp: day.Unix(), Count: dc.Count})
	}
	return out, nil
}
