package locale

import (
	"fmt"
	"os"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Catalog holds placeholder strings keyed by the engine's placeholder
// keys. Lookups on missing keys return "", letting the engine fall back
// to its built-in defaults. All methods are safe for concurrent use.
type Catalog struct {
	mu      sync.RWMutex
	strings map[string]string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		strings: make(map[string]string),
	}
}

// Placeholder returns the string for the given key, or "" when the
// catalog has no entry for it.
func (c *Catalog) Placeholder(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.strings[key]
}

// Set stores a single placeholder string.
func (c *Catalog) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strings[key] = value
}

// fileSchema is the TOML shape of a catalog file.
type fileSchema struct {
	Placeholders map[string]string `toml:"placeholders"`
}

// LoadFile merges placeholder strings from a TOML file into the catalog.
// A missing file is not an error; existing entries not named in the file
// are kept.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, not an error
		}
		return fmt.Errorf("reading locale file %s: %w", path, err)
	}

	var schema fileSchema
	if err := toml.Unmarshal(data, &schema); err != nil {
		return fmt.Errorf("parsing locale file %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for key, value := range schema.Placeholders {
		c.strings[key] = value
	}

	return nil
}
