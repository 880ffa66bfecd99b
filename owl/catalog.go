package owl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog maps ontology IRIs to concrete locations, giving imports of remote
// ontologies an offline source. It may also carry extra lookup directories.
//
// Example:
//
//	ontologies:
//	  http://example.org/base.owl: ./ontologies/base.owl
//	lookup:
//	  - ./ontologies
type Catalog struct {
	Ontologies map[string]string `yaml:"ontologies"`
	Lookup     []string          `yaml:"lookup"`
}

// LoadCatalog reads a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog := &Catalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}
