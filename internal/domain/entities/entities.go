// Package entities contains core business entities.
// These are pure domain objects with no knowledge of providers or transports.
package entities

import "strings"

// Category is the top-level query intent. Exactly one value is assigned per
// query and every downstream stage dispatches on it.
type Category string

const (
	CategoryStock   Category = "stock"
	CategoryCrypto  Category = "crypto"
	CategoryWeather Category = "weather"
)

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryStock, CategoryCrypto, CategoryWeather:
		return true
	}
	return false
}

// RawEntity is a candidate entity phrase pulled out of a query.
// It is never validated for existence here; the resolver decides that.
type RawEntity struct {
	Text     string
	Category Category
}

// ResolvedEntity is a canonical identifier (ticker symbol or city name)
// together with the category it was resolved under.
type ResolvedEntity struct {
	ID       string
	Category Category
}

// CatalogEntry is one curated catalog row: a canonical identifier plus the
// human names that get embedded for nearest-neighbor lookup.
type CatalogEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
}

// EmbedTexts returns the texts to embed for this entry: the display name and
// every alias, de-duplicated, with blanks dropped.
func (e CatalogEntry) EmbedTexts() []string {
	seen := make(map[string]struct{})
	var texts []string
	for _, t := range append([]string{e.Name}, e.Aliases...) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		texts = append(texts, t)
	}
	return texts
}

// Field is a single key=value pair in a fetched payload.
type Field struct {
	Key   string
	Value string
}

// FetchedData is the structured payload returned by a data provider,
// e.g. price=172.35 or temp=13.4 weather=clouds wind_speed=3.6.
// Field order is preserved so encoded payloads are stable.
type FetchedData struct {
	Fields []Field
}

// Add appends a key=value pair.
func (d *FetchedData) Add(key, value string) {
	d.Fields = append(d.Fields, Field{Key: key, Value: value})
}

// Get returns the first value stored under key.
func (d *FetchedData) Get(key string) (string, bool) {
	for _, f := range d.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Encode renders the payload as space-separated key=value pairs.
func (d *FetchedData) Encode() string {
	var sb strings.Builder
	for i, f := range d.Fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(f.Value)
	}
	return sb.String()
}
