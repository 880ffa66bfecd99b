// Package owl loads OWL ontology documents and exposes their class and
// import graphs. The model is deliberately small: named classes, their
// direct superclass expressions and the ontology import closure — just
// enough to flatten class hierarchies into a merged type set.
package owl

import "strings"

// Well-known RDF/OWL namespaces.
const (
	NamespaceRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NamespaceOWL  = "http://www.w3.org/2002/07/owl#"

	thingIRI = NamespaceOWL + "Thing"
)

// owlOntology is the built-in ontology owning owl:Thing.
var owlOntology = &Ontology{
	iri:     strings.TrimSuffix(NamespaceOWL, "#"),
	baseIRI: NamespaceOWL,
	name:    "owl",
}

// Thing is the universal root class every named class implicitly descends from.
var Thing = &Class{
	name:     "Thing",
	iri:      thingIRI,
	ontology: owlOntology,
}

// Ontology is a loaded ontology document. Instances are created by the
// Loader and read-only afterwards.
type Ontology struct {
	loader     *Loader
	iri        string // identity IRI, normalized (no trailing # or /)
	baseIRI    string // base identifier, always ends with #
	name       string // canonical name derived from the identity IRI
	location   string // URL or file URI the document was fetched from
	digest     uint64
	classes    []*Class
	importIRIs []string
	imported   []*Ontology // direct imports, document order
	referenced map[string]*Class
}

// Name returns the canonical ontology name: the final path segment of the
// identity IRI without its extension.
func (o *Ontology) Name() string { return o.name }

// BaseIRI returns the base identifier of the ontology, terminated with '#'.
func (o *Ontology) BaseIRI() string { return o.baseIRI }

// Location returns the URL or file URI the document was loaded from.
func (o *Ontology) Location() string { return o.location }

// Classes returns the classes declared in this document, in document order.
// Classes merely referenced by other ontologies are not included.
func (o *Ontology) Classes() []*Class { return o.classes }

// Imports returns the direct import IRIs declared by the document.
func (o *Ontology) Imports() []string { return o.importIRIs }

// ImportedClosure returns every ontology reachable through imports,
// excluding the receiver, in depth-first discovery order.
func (o *Ontology) ImportedClosure() []*Ontology {
	seen := map[*Ontology]bool{o: true}
	var closure []*Ontology
	var walk func(*Ontology)
	walk = func(node *Ontology) {
		for _, imported := range node.imported {
			if seen[imported] {
				continue
			}
			seen[imported] = true
			closure = append(closure, imported)
			walk(imported)
		}
	}
	walk(o)
	return closure
}

// declared returns the class declared in this document with the given IRI.
func (o *Ontology) declared(iri string) *Class {
	for _, class := range o.classes {
		if class.iri == iri {
			return class
		}
	}
	return nil
}

// Class is a named class declared in (or referenced from) an ontology.
type Class struct {
	name     string
	iri      string
	ontology *Ontology
	supers   []Superclass
}

// Name returns the local name of the class (its IRI fragment).
func (c *Class) Name() string { return c.name }

// IRI returns the full class IRI.
func (c *Class) IRI() string { return c.iri }

// Ontology returns the ontology the class belongs to.
func (c *Class) Ontology() *Ontology { return c.ontology }

// Superclasses returns the direct superclass expressions of the class in
// document order. A class declared without any named superclass carries a
// single expression referencing owl:Thing.
func (c *Class) Superclasses() []Superclass { return c.supers }

// ExprKind discriminates superclass expression variants.
type ExprKind int

const (
	// ExprClass is a reference to a named class.
	ExprClass ExprKind = iota
	// ExprRestriction is an anonymous class expression (owl:Restriction or
	// a nested anonymous class). It never contributes to the type hierarchy.
	ExprRestriction
)

// Superclass is one direct superclass expression of a class.
type Superclass struct {
	kind   ExprKind
	iri    string
	loader *Loader
}

// Kind reports the expression variant.
func (s Superclass) Kind() ExprKind { return s.kind }

// IRI returns the referenced class IRI; empty for anonymous expressions.
func (s Superclass) IRI() string { return s.iri }

// Class resolves a named reference against the loaded world. It returns nil
// for anonymous expressions.
func (s Superclass) Class() *Class {
	if s.kind != ExprClass {
		return nil
	}
	if s.iri == thingIRI {
		return Thing
	}
	if s.loader == nil {
		return nil
	}
	return s.loader.classByIRI(s.iri)
}

// normalizeIRI strips the trailing fragment or path separator so that
// ontology identity comparisons are insensitive to it.
func normalizeIRI(iri string) string {
	return strings.TrimRight(iri, "#/")
}

// canonicalName derives the ontology name from its identity IRI: the final
// path segment with the file extension removed.
func canonicalName(iri string) string {
	name := normalizeIRI(iri)
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// localName returns the fragment of a class IRI, falling back to the final
// path segment for fragment-less IRIs.
func localName(iri string) string {
	if idx := strings.Index(iri, "#"); idx >= 0 {
		return iri[idx+1:]
	}
	if idx := strings.LastIndex(iri, "/"); idx >= 0 {
		return iri[idx+1:]
	}
	return iri
}

// ontologyIRI returns the identity IRI of the ontology a class IRI belongs
// to: everything before the fragment, or before the final path segment.
func ontologyIRI(classIRI string) string {
	if idx := strings.Index(classIRI, "#"); idx >= 0 {
		return classIRI[:idx]
	}
	if idx := strings.LastIndex(classIRI, "/"); idx >= 0 {
		return classIRI[:idx]
	}
	return classIRI
}
