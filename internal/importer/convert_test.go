package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/skillpath/internal/domain"
)

func TestToDomain_Skills(t *testing.T) {
	doc := &CatalogDocument{
		Version: SchemaVersion,
		Skills: []SkillImport{
			{ID: "S1", Name: "Foundations", Value: 5, Costs: map[string]float64{"time": 40, "complexity": 3}},
			{ID: "S2", Name: "Data", Value: 8, Costs: map[string]float64{"time": 60}, Prereqs: []string{"S1"}, Demand: ptrFloat(0.9), Critical: true},
		},
	}

	converted := ToDomain(doc)
	require.Equal(t, 2, converted.Catalog.Len())

	s1, ok := converted.Catalog.ByID("S1")
	require.True(t, ok)
	assert.Equal(t, "Foundations", s1.Name)
	assert.Equal(t, 5.0, s1.Value)
	assert.Equal(t, 40.0, s1.Costs[domain.DimTime])
	assert.Equal(t, domain.DefaultDemand, s1.Demand)
	assert.False(t, s1.Critical)

	s2, ok := converted.Catalog.ByID("S2")
	require.True(t, ok)
	assert.Equal(t, []string{"S1"}, s2.Prereqs)
	assert.InDelta(t, 0.9, s2.Demand, 1e-9)
	assert.True(t, s2.Critical)
}

func TestToDomain_PreservesDocumentOrder(t *testing.T) {
	doc := &CatalogDocument{
		Version: SchemaVersion,
		Skills: []SkillImport{
			{ID: "Z", Name: "Z", Value: 1},
			{ID: "A", Name: "A", Value: 1},
		},
	}
	converted := ToDomain(doc)
	assert.Equal(t, []string{"Z", "A"}, converted.Catalog.IDs())
}

func TestToDomain_ScenariosAndProfiles(t *testing.T) {
	doc := &CatalogDocument{
		Version: SchemaVersion,
		Skills: []SkillImport{
			{ID: "S1", Name: "A", Value: 1},
			{ID: "S2", Name: "B", Value: 2},
		},
		Scenarios: []ScenarioImport{
			{Name: "ai_shift", Probability: 0.4, Boosted: []string{"S2"}, Penalized: []string{"S1"}, BoostFactor: ptrFloat(1.3), Description: "ML demand surge"},
			{Name: "steady", Probability: 0.6},
		},
		Profiles: []ProfileImport{
			{Name: "junior", Skills: []string{"S1"}},
		},
	}

	converted := ToDomain(doc)

	require.Len(t, converted.Scenarios, 2)
	assert.Equal(t, "ai_shift", converted.Scenarios[0].Name)
	assert.InDelta(t, 1.3, converted.Scenarios[0].BoostFactor, 1e-9)
	assert.Equal(t, []string{"S2"}, converted.Scenarios[0].Boosted)
	// Omitted boost factor falls back to the neutral 1.0.
	assert.InDelta(t, 1.0, converted.Scenarios[1].BoostFactor, 1e-9)

	require.Len(t, converted.Profiles, 1)
	assert.Equal(t, "junior", converted.Profiles[0].Name)
	assert.Equal(t, []string{"S1"}, converted.Profiles[0].SkillIDs)
}

func TestToDomain_CopiesSlices(t *testing.T) {
	doc := validMinimalDocument()
	converted := ToDomain(doc)

	doc.Skills[1].Prereqs[0] = "mutated"
	s2, ok := converted.Catalog.ByID("S2")
	require.True(t, ok)
	assert.Equal(t, []string{"S1"}, s2.Prereqs)
}

func TestToDomain_ProducesValidCatalog(t *testing.T) {
	converted := ToDomain(validMinimalDocument())
	assert.NoError(t, converted.Catalog.Validate())
}

func TestLoadCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	content := `{
		"version": 1,
		"skills": [
			{"id": "S1", "name": "Foundations", "value": 5, "costs": {"time": 40}},
			{"id": "S2", "name": "Applied", "value": 8, "costs": {"time": 60}, "prereqs": ["S1"], "demand": 0.9, "critical": true}
		],
		"scenarios": [
			{"name": "ai_shift", "probability": 0.4, "boosted": ["S2"], "boost_factor": 1.3}
		],
		"profiles": [
			{"name": "junior", "skills": ["S1"]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	doc, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Version)
	require.Len(t, doc.Skills, 2)
	assert.Equal(t, "S1", doc.Skills[0].ID)
	require.NotNil(t, doc.Skills[1].Demand)
	assert.InDelta(t, 0.9, *doc.Skills[1].Demand, 1e-9)
	assert.True(t, doc.Skills[1].Critical)
	require.Len(t, doc.Scenarios, 1)
	require.Len(t, doc.Profiles, 1)

	assert.Empty(t, ValidateCatalogDocument(doc))
}

func TestLoadCatalogFile_Missing(t *testing.T) {
	_, err := LoadCatalogFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadCatalogFile_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadCatalogFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog file")
}
