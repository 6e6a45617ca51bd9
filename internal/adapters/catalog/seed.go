// seed.go loads curated catalog seed files.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/finquery/finquery-go/internal/domain/entities"
)

// seedFiles maps seed file names to the category they populate.
var seedFiles = map[string]entities.Category{
	"stocks.json":  entities.CategoryStock,
	"cryptos.json": entities.CategoryCrypto,
	"cities.json":  entities.CategoryWeather,
}

// CategoryForSeedFile returns the category a seed file populates.
func CategoryForSeedFile(path string) (entities.Category, bool) {
	category, ok := seedFiles[filepath.Base(path)]
	return category, ok
}

// LoadSeedFile reads one catalog seed file: a JSON array of entries with
// id, name and optional aliases.
func LoadSeedFile(path string) ([]entities.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var raw []entities.CatalogEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	entries := raw[:0]
	for _, entry := range raw {
		if entry.ID == "" {
			continue
		}
		if entry.Name == "" {
			entry.Name = entry.ID
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// LoadSeedDir loads every known seed file under dir, keyed by category.
// Missing files are skipped so partial catalogs still index.
func LoadSeedDir(dir string) (map[entities.Category][]entities.CatalogEntry, error) {
	out := make(map[entities.Category][]entities.CatalogEntry)
	for name, category := range seedFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		entries, err := LoadSeedFile(path)
		if err != nil {
			return nil, err
		}
		out[category] = entries
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no seed files found in %s", dir)
	}
	return out, nil
}
