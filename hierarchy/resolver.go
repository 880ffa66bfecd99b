package hierarchy

import (
	"context"
	"fmt"

	"github.com/semkit/owl2types/owl"
)

// universalRootOntology is the canonical name of the ontology owning the
// universal root class. Its prefix map entry is fixed and never allocated.
const universalRootOntology = "owl"

// Resolver loads the explicit ontology sources and their transitive import
// closure, assigning every ontology a unique prefix. It owns the prefix
// registry for the duration of one run.
type Resolver struct {
	loader   *owl.Loader
	registry *Registry
}

// NewResolver creates a resolver on top of an ontology loader.
func NewResolver(loader *owl.Loader) *Resolver {
	return &Resolver{loader: loader, registry: NewRegistry()}
}

// Resolution is the outcome of resolving a set of sources: every loaded
// ontology — explicit sources first, in input order, then discovered imports
// in discovery order — and the canonical-name to prefix map.
type Resolution struct {
	Ontologies []*owl.Ontology
	Prefixes   map[string]string
}

// Resolve loads each source in order, assigns its prefix (the explicit one,
// made unique, or one derived from its location), and then walks the growing
// ontology list appending every transitively imported ontology that has no
// prefix yet, deriving one from its canonical name. Load failures are fatal.
func (r *Resolver) Resolve(ctx context.Context, sources []Source) (*Resolution, error) {
	prefixes := map[string]string{universalRootOntology: universalRootOntology}
	var ontologies []*owl.Ontology

	for _, source := range sources {
		ontology, err := r.loader.Load(ctx, source.URI)
		if err != nil {
			return nil, fmt.Errorf("load ontology: %w", err)
		}
		prefix := ""
		if source.Explicit {
			prefix = r.registry.Allocate(source.Prefix)
		} else {
			prefix = r.registry.Derive(source.URI)
		}
		ontologies = append(ontologies, ontology)
		prefixes[ontology.Name()] = prefix
	}

	// The list is extended while being iterated, so imports of discovered
	// ontologies are examined as well.
	for i := 0; i < len(ontologies); i++ {
		for _, imported := range ontologies[i].ImportedClosure() {
			if _, ok := prefixes[imported.Name()]; ok {
				continue
			}
			ontologies = append(ontologies, imported)
			prefixes[imported.Name()] = r.registry.Derive(imported.Name())
		}
	}
	return &Resolution{Ontologies: ontologies, Prefixes: prefixes}, nil
}
