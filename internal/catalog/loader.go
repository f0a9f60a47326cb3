package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.json
var defaultCatalog []byte

// Default returns the catalog bundled with the binary.
func Default() *Snapshot {
	snap, err := Decode(defaultCatalog, ".json")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return snap
}

// LoadFile reads a catalog file. The format is chosen from the extension:
// .yaml/.yml are YAML, anything else is JSON.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Decode(data, filepath.Ext(path))
}

// Decode parses a city to POI list document.
func Decode(data []byte, ext string) (*Snapshot, error) {
	raw := map[string][]POI{}
	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		err = json.Unmarshal(data, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for city, pois := range raw {
		for i, p := range pois {
			if strings.TrimSpace(p.Name) == "" {
				return nil, fmt.Errorf("decode catalog: %s entry %d has no name", city, i)
			}
		}
	}
	return NewSnapshot(raw), nil
}
