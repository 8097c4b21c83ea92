package models

import (
	"strconv"
	"strings"
	"time"
)

// Coord is a single coordinate axis as received from device firmware.
// Producers disagree on types: some send JSON numbers, some send numeric
// strings, some send garbage. Anything non-numeric decodes as absent
// instead of failing the whole record.
type Coord struct {
	Value float64
	Valid bool
}

func (c *Coord) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	c.Value = f
	c.Valid = true
	return nil
}

func (c Coord) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
}

// LatLng is a resolved coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// firstValid returns the first coordinate in the chain that carries a
// numeric value.
func firstValid(coords ...Coord) (float64, bool) {
	for _, c := range coords {
		if c.Valid {
			return c.Value, true
		}
	}
	return 0, false
}

// Timestamp wraps time.Time with a tolerant decoder. Alert records with
// unparseable timestamps keep flowing through the feed; they just never
// match any bounded date filter.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			t.Valid = true
			return nil
		}
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// After reports whether the timestamp is valid and strictly after u.
func (t Timestamp) After(u time.Time) bool {
	return t.Valid && t.Time.After(u)
}

// AtOrAfter reports whether the timestamp is valid and not before u.
func (t Timestamp) AtOrAfter(u time.Time) bool {
	return t.Valid && !t.Time.Before(u)
}
