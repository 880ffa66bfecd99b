package owl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const animalsDocument = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Ontology rdf:about="http://example.org/animals.owl">
    <owl:imports rdf:resource="http://example.org/base.owl"/>
  </owl:Ontology>
  <owl:Class rdf:about="http://example.org/animals.owl#Animal"/>
  <owl:Class rdf:about="http://example.org/animals.owl#Dog">
    <rdfs:subClassOf rdf:resource="http://example.org/animals.owl#Animal"/>
  </owl:Class>
  <owl:Class rdf:about="http://example.org/animals.owl#Puppy">
    <rdfs:subClassOf rdf:resource="http://example.org/animals.owl#Dog"/>
    <rdfs:subClassOf>
      <owl:Restriction>
        <owl:onProperty rdf:resource="http://example.org/animals.owl#hasAge"/>
      </owl:Restriction>
    </rdfs:subClassOf>
  </owl:Class>
</rdf:RDF>`

func TestParseDocument(t *testing.T) {
	doc, err := parseDocument([]byte(animalsDocument), "file:///tmp/animals.owl")
	require.NoError(t, err)

	assert.Equal(t, "http://example.org/animals.owl", doc.iri)
	assert.Equal(t, []string{"http://example.org/base.owl"}, doc.imports)

	require.Len(t, doc.classes, 3)
	assert.Equal(t, "http://example.org/animals.owl#Animal", doc.classes[0].iri)
	assert.Equal(t, "http://example.org/animals.owl#Dog", doc.classes[1].iri)
	assert.Equal(t, "http://example.org/animals.owl#Puppy", doc.classes[2].iri)

	// a class without named superclasses descends from owl:Thing
	require.Len(t, doc.classes[0].supers, 1)
	assert.Equal(t, ExprClass, doc.classes[0].supers[0].kind)
	assert.Equal(t, thingIRI, doc.classes[0].supers[0].iri)

	require.Len(t, doc.classes[1].supers, 1)
	assert.Equal(t, "http://example.org/animals.owl#Animal", doc.classes[1].supers[0].iri)

	// restrictions are kept as anonymous expressions, not named parents
	require.Len(t, doc.classes[2].supers, 2)
	assert.Equal(t, ExprClass, doc.classes[2].supers[0].kind)
	assert.Equal(t, "http://example.org/animals.owl#Dog", doc.classes[2].supers[0].iri)
	assert.Equal(t, ExprRestriction, doc.classes[2].supers[1].kind)
}

func TestParseDocumentRelativeReferences(t *testing.T) {
	const document = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#"
         xml:base="http://example.org/food.owl">
  <owl:Ontology rdf:about="http://example.org/food.owl"/>
  <owl:Class rdf:ID="Food"/>
  <owl:Class rdf:about="#Fruit">
    <rdfs:subClassOf rdf:resource="#Food"/>
  </owl:Class>
</rdf:RDF>`

	doc, err := parseDocument([]byte(document), "file:///tmp/food.owl")
	require.NoError(t, err)

	require.Len(t, doc.classes, 2)
	assert.Equal(t, "http://example.org/food.owl#Food", doc.classes[0].iri)
	assert.Equal(t, "http://example.org/food.owl#Fruit", doc.classes[1].iri)
	assert.Equal(t, "http://example.org/food.owl#Food", doc.classes[1].supers[0].iri)
}

func TestParseDocumentMergesSplitDeclarations(t *testing.T) {
	const document = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Ontology rdf:about="http://example.org/split.owl"/>
  <owl:Class rdf:about="http://example.org/split.owl#A">
    <rdfs:subClassOf rdf:resource="http://example.org/split.owl#B"/>
  </owl:Class>
  <owl:Class rdf:about="http://example.org/split.owl#A">
    <rdfs:subClassOf rdf:resource="http://example.org/split.owl#C"/>
  </owl:Class>
</rdf:RDF>`

	doc, err := parseDocument([]byte(document), "file:///tmp/split.owl")
	require.NoError(t, err)

	require.Len(t, doc.classes, 1)
	require.Len(t, doc.classes[0].supers, 2)
	assert.Equal(t, "http://example.org/split.owl#B", doc.classes[0].supers[0].iri)
	assert.Equal(t, "http://example.org/split.owl#C", doc.classes[0].supers[1].iri)
}

func TestParseDocumentWithoutOntologyHeader(t *testing.T) {
	const document = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
  <owl:Class rdf:about="http://example.org/bare.owl#Only"/>
</rdf:RDF>`

	doc, err := parseDocument([]byte(document), "file:///tmp/bare.owl")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/bare.owl", doc.iri)
	require.Len(t, doc.classes, 1)
}

func TestParseDocumentRejectsNonRDF(t *testing.T) {
	_, err := parseDocument([]byte(`<html></html>`), "file:///tmp/broken.owl")
	assert.Error(t, err)
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		description string
		iri         string
		expect      string
	}{
		{"owl file extension stripped", "http://example.org/GUM-3.owl", "GUM-3"},
		{"trailing hash ignored", "http://www.w3.org/2002/07/owl#", "owl"},
		{"trailing slash ignored", "http://example.org/onto/", "onto"},
		{"no extension", "http://example.org/base", "base"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expect, canonicalName(tc.iri), tc.description)
	}
}
