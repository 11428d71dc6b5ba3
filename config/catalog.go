package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/plus3/lootdrop/lootbox"
)

//go:embed catalog.schema.json
var catalogSchemaSource string

var compileCatalogSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("catalog.schema.json", catalogSchemaSource)
})

type catalogFile struct {
	Rewards []rewardEntry `json:"rewards"`
}

type rewardEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LoadCatalog reads and validates a reward catalog JSON file.
func LoadCatalog(path string) (lootbox.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	catalog, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog validates raw JSON against the embedded catalog schema and
// converts it. An empty or malformed catalog is an error: the reward list
// must be usable for the whole process lifetime.
func ParseCatalog(raw []byte) (lootbox.Catalog, error) {
	schema, err := compileCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	catalog := make(lootbox.Catalog, 0, len(file.Rewards))
	for _, entry := range file.Rewards {
		catalog = append(catalog, lootbox.Reward{ID: entry.ID, Name: entry.Name})
	}
	if len(catalog) == 0 {
		return nil, lootbox.ErrEmptyCatalog
	}
	return catalog, nil
}
