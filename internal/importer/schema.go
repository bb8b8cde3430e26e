package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// SchemaVersion is the catalog document version this importer understands.
const SchemaVersion = 1

// CatalogDocument is the top-level JSON structure for catalog import.
type CatalogDocument struct {
	Version   int              `json:"version"`
	Skills    []SkillImport    `json:"skills"`
	Scenarios []ScenarioImport `json:"scenarios,omitempty"`
	Profiles  []ProfileImport  `json:"profiles,omitempty"`
}

// SkillImport defines one skill in the import file.
type SkillImport struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Value    float64            `json:"value"`
	Costs    map[string]float64 `json:"costs,omitempty"`
	Prereqs  []string           `json:"prereqs,omitempty"`
	Demand   *float64           `json:"demand,omitempty"`
	Critical bool               `json:"critical,omitempty"`
}

// ScenarioImport defines a market scenario in the import file.
type ScenarioImport struct {
	Name        string   `json:"name"`
	Probability float64  `json:"probability"`
	Boosted     []string `json:"boosted,omitempty"`
	Penalized   []string `json:"penalized,omitempty"`
	BoostFactor *float64 `json:"boost_factor,omitempty"`
	Description string   `json:"description,omitempty"`
}

// ProfileImport defines an already-acquired skill set in the import file.
type ProfileImport struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// LoadCatalogFile reads and parses a catalog import JSON file.
func LoadCatalogFile(path string) (*CatalogDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &doc, nil
}
