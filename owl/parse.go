package owl

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// document is the parsed shape of one RDF/XML ontology document before it is
// registered with a Loader.
type document struct {
	iri     string // owl:Ontology rdf:about, resolved; falls back to location
	imports []string
	classes []*classDecl
}

// classDecl is a named class declaration with its direct superclass
// expressions in document order.
type classDecl struct {
	iri    string
	supers []superRef
}

type superRef struct {
	kind ExprKind
	iri  string
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// parseDocument decodes the RDF/XML subset relevant to class hierarchies:
// the owl:Ontology header with its owl:imports, and top-level owl:Class /
// rdfs:Class declarations with their rdfs:subClassOf axioms. Everything else
// (properties, individuals, annotations) is skipped.
func parseDocument(data []byte, location string) (*document, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	root, err := rootElement(decoder)
	if err != nil {
		return nil, err
	}
	if root.Name.Space != NamespaceRDF || root.Name.Local != "RDF" {
		return nil, fmt.Errorf("unexpected document element <%s>, want rdf:RDF", root.Name.Local)
	}

	parser := &documentParser{
		doc:      &document{},
		declared: map[string]*classDecl{},
		base:     attrValue(root, xmlNamespace, "base"),
		location: location,
	}
	if err := parser.parseBody(decoder); err != nil {
		return nil, err
	}
	return parser.finish(), nil
}

type documentParser struct {
	doc      *document
	declared map[string]*classDecl // merges split declarations of one IRI
	base     string
	location string
}

func rootElement(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			return xml.StartElement{}, fmt.Errorf("read document element: %w", err)
		}
		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func (p *documentParser) parseBody(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case nameIs(start.Name, NamespaceOWL, "Ontology"):
			err = p.parseOntologyHeader(decoder, start)
		case nameIs(start.Name, NamespaceOWL, "Class"), nameIs(start.Name, NamespaceRDFS, "Class"):
			err = p.parseClass(decoder, start)
		default:
			err = decoder.Skip()
		}
		if err != nil {
			return err
		}
	}
}

func (p *documentParser) parseOntologyHeader(decoder *xml.Decoder, start xml.StartElement) error {
	if about := attrValue(start, NamespaceRDF, "about"); p.doc.iri == "" {
		p.doc.iri = p.resolve(about)
	}
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if nameIs(t.Name, NamespaceOWL, "imports") {
				if resource := attrValue(t, NamespaceRDF, "resource"); resource != "" {
					p.doc.imports = append(p.doc.imports, p.resolve(resource))
				}
			}
			if err := decoder.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (p *documentParser) parseClass(decoder *xml.Decoder, start xml.StartElement) error {
	iri := attrValue(start, NamespaceRDF, "about")
	if iri == "" {
		if id := attrValue(start, NamespaceRDF, "ID"); id != "" {
			iri = "#" + id
		}
	}
	if iri == "" {
		// anonymous top-level class expression, not a declaration
		return decoder.Skip()
	}
	decl := p.declaration(p.resolve(iri))

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			if nameIs(t.Name, NamespaceRDFS, "subClassOf") {
				if err := p.parseSuperclass(decoder, t, decl); err != nil {
					return err
				}
				continue
			}
			if err := decoder.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseSuperclass handles one rdfs:subClassOf axiom: either a direct
// rdf:resource reference, or a nested class expression. Named classes become
// ExprClass references; owl:Restriction and anonymous nested classes become
// ExprRestriction and are ignored by consumers of the hierarchy.
func (p *documentParser) parseSuperclass(decoder *xml.Decoder, start xml.StartElement, decl *classDecl) error {
	if resource := attrValue(start, NamespaceRDF, "resource"); resource != "" {
		decl.supers = append(decl.supers, superRef{kind: ExprClass, iri: p.resolve(resource)})
		return decoder.Skip()
	}
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch t := token.(type) {
		case xml.StartElement:
			switch {
			case nameIs(t.Name, NamespaceOWL, "Class"), nameIs(t.Name, NamespaceRDFS, "Class"):
				if about := attrValue(t, NamespaceRDF, "about"); about != "" {
					decl.supers = append(decl.supers, superRef{kind: ExprClass, iri: p.resolve(about)})
				} else {
					decl.supers = append(decl.supers, superRef{kind: ExprRestriction})
				}
			case nameIs(t.Name, NamespaceOWL, "Restriction"):
				decl.supers = append(decl.supers, superRef{kind: ExprRestriction})
			}
			if err := decoder.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// declaration returns the declaration for iri, creating it on first sight.
// OWL documents routinely split one class over several owl:Class blocks;
// their axioms are merged in document order.
func (p *documentParser) declaration(iri string) *classDecl {
	if decl, ok := p.declared[iri]; ok {
		return decl
	}
	decl := &classDecl{iri: iri}
	p.declared[iri] = decl
	p.doc.classes = append(p.doc.classes, decl)
	return decl
}

// finish fills defaults that depend on the whole document: the ontology IRI
// falls back to the fetch location, and every class without a named
// superclass implicitly descends from owl:Thing.
func (p *documentParser) finish() *document {
	if p.doc.iri == "" {
		p.doc.iri = p.location
	}
	for _, decl := range p.doc.classes {
		named := false
		for _, super := range decl.supers {
			if super.kind == ExprClass {
				named = true
				break
			}
		}
		if !named {
			decl.supers = append(decl.supers, superRef{kind: ExprClass, iri: thingIRI})
		}
	}
	return p.doc
}

// resolve expands a possibly relative reference against the document base:
// the xml:base attribute when present, the ontology IRI otherwise, and the
// fetch location as a last resort.
func (p *documentParser) resolve(ref string) string {
	if ref == "" || strings.Contains(ref, "://") {
		return ref
	}
	base := p.base
	if base == "" {
		base = p.doc.iri
	}
	if base == "" {
		base = p.location
	}
	if strings.HasPrefix(ref, "#") {
		return normalizeIRI(base) + ref
	}
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		return base[:idx+1] + ref
	}
	return ref
}

func nameIs(name xml.Name, space, local string) bool {
	return name.Space == space && name.Local == local
}

func attrValue(element xml.StartElement, space, local string) string {
	for _, attr := range element.Attr {
		if attr.Name.Local != local {
			continue
		}
		// the xml: prefix is reported either as "xml" or as its namespace URL
		if attr.Name.Space == space || (space == xmlNamespace && attr.Name.Space == "xml") {
			return attr.Value
		}
	}
	return ""
}
