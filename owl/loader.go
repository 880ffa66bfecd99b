package owl

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

// Loader fetches ontology documents from local paths or URLs and loads their
// full import closure. It keeps every loaded ontology for the duration of a
// run so that references across documents resolve to shared handles.
// A Loader is not safe for concurrent use; create one per run.
type Loader struct {
	fs         afs.Service
	lookup     []string          // directories searched for imports by filename
	catalog    map[string]string // IRI -> location overrides
	byIRI      map[string]*Ontology
	byDigest   map[uint64]*Ontology
	byLocation map[string]*Ontology
	stubs      map[string]*Ontology // ontologies known only through references
}

// Option configures a Loader.
type Option func(*Loader)

// WithLookup adds directories searched for imported ontologies by their
// terminal filename before the import IRI is fetched directly.
func WithLookup(dirs ...string) Option {
	return func(l *Loader) {
		l.lookup = append(l.lookup, dirs...)
	}
}

// WithCatalog applies a catalog's IRI mappings and lookup directories.
func WithCatalog(catalog *Catalog) Option {
	return func(l *Loader) {
		for iri, location := range catalog.Ontologies {
			l.catalog[normalizeIRI(iri)] = location
		}
		l.lookup = append(l.lookup, catalog.Lookup...)
	}
}

// New creates a Loader backed by the afs file/URL abstraction.
func New(options ...Option) *Loader {
	loader := &Loader{
		fs:         afs.New(),
		catalog:    map[string]string{},
		byIRI:      map[string]*Ontology{},
		byDigest:   map[uint64]*Ontology{},
		byLocation: map[string]*Ontology{},
		stubs:      map[string]*Ontology{},
	}
	for _, option := range options {
		option(loader)
	}
	return loader
}

// Load fetches and parses the ontology at the given location (a local path,
// file URI or URL) together with its transitive imports. Loading the same
// location, the same content or the same ontology IRI twice returns the
// already loaded handle. Any fetch or parse failure is fatal and carries the
// offending location.
func (l *Loader) Load(ctx context.Context, location string) (*Ontology, error) {
	if ontology, ok := l.byLocation[location]; ok {
		return ontology, nil
	}
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("fetch ontology %s: %w", location, err)
	}
	sum, err := digest(data)
	if err != nil {
		return nil, err
	}
	if ontology, ok := l.byDigest[sum]; ok {
		l.byLocation[location] = ontology
		return ontology, nil
	}
	doc, err := parseDocument(data, location)
	if err != nil {
		return nil, fmt.Errorf("parse ontology %s: %w", location, err)
	}
	key := normalizeIRI(doc.iri)
	if ontology, ok := l.byIRI[key]; ok {
		l.byLocation[location] = ontology
		l.byDigest[sum] = ontology
		return ontology, nil
	}

	ontology := l.register(doc, key, sum, location)
	for _, importIRI := range doc.imports {
		imported, err := l.loadImport(ctx, importIRI)
		if err != nil {
			return nil, fmt.Errorf("import %s of %s: %w", importIRI, location, err)
		}
		ontology.imported = append(ontology.imported, imported)
	}
	return ontology, nil
}

// register creates the ontology handle and indexes it before its imports are
// loaded, so that import cycles terminate.
func (l *Loader) register(doc *document, key string, sum uint64, location string) *Ontology {
	ontology := &Ontology{
		loader:     l,
		iri:        key,
		baseIRI:    key + "#",
		name:       canonicalName(key),
		location:   location,
		digest:     sum,
		importIRIs: doc.imports,
		referenced: map[string]*Class{},
	}
	for _, decl := range doc.classes {
		class := &Class{
			name:     localName(decl.iri),
			iri:      decl.iri,
			ontology: ontology,
		}
		for _, super := range decl.supers {
			class.supers = append(class.supers, Superclass{kind: super.kind, iri: super.iri, loader: l})
		}
		ontology.classes = append(ontology.classes, class)
	}
	l.byIRI[key] = ontology
	l.byDigest[sum] = ontology
	l.byLocation[location] = ontology
	return ontology
}

// loadImport resolves an import IRI to a concrete location and loads it,
// preferring catalog mappings and lookup directories over a direct fetch.
func (l *Loader) loadImport(ctx context.Context, importIRI string) (*Ontology, error) {
	key := normalizeIRI(importIRI)
	if ontology, ok := l.byIRI[key]; ok {
		return ontology, nil
	}
	return l.Load(ctx, l.importLocation(ctx, importIRI))
}

// importLocation maps an import IRI to the location it should be fetched
// from: a catalog entry, a file in a lookup directory matching the IRI's
// terminal filename, or the IRI itself.
func (l *Loader) importLocation(ctx context.Context, importIRI string) string {
	if location, ok := l.catalog[normalizeIRI(importIRI)]; ok {
		return location
	}
	name := localFilename(importIRI)
	candidates := []string{name}
	if !strings.Contains(name, ".") {
		candidates = append(candidates, name+".owl")
	}
	for _, dir := range l.lookup {
		for _, candidate := range candidates {
			location := url.Join(dir, candidate)
			if ok, _ := l.fs.Exists(ctx, location); ok {
				return location
			}
		}
	}
	return importIRI
}

// classByIRI resolves a class reference against every loaded ontology.
// References into ontologies that were never loaded, and references to
// classes an ontology never declares, yield stand-in handles so that the
// reference keeps its owning ontology's canonical name.
func (l *Loader) classByIRI(iri string) *Class {
	if iri == thingIRI {
		return Thing
	}
	key := normalizeIRI(ontologyIRI(iri))
	ontology, ok := l.byIRI[key]
	if !ok {
		ontology, ok = l.stubs[key]
		if !ok {
			ontology = &Ontology{
				loader:     l,
				iri:        key,
				baseIRI:    key + "#",
				name:       canonicalName(key),
				referenced: map[string]*Class{},
			}
			l.stubs[key] = ontology
		}
	}
	if class := ontology.declared(iri); class != nil {
		return class
	}
	if class, ok := ontology.referenced[iri]; ok {
		return class
	}
	class := &Class{name: localName(iri), iri: iri, ontology: ontology}
	ontology.referenced[iri] = class
	return class
}

// localFilename returns the terminal path segment of an IRI, without any
// fragment.
func localFilename(iri string) string {
	name := normalizeIRI(iri)
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
