package hierarchy

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeOntology writes a minimal RDF/XML ontology document into dir. Each
// class entry is "Name" or "Name<ParentIRI".
func writeOntology(t *testing.T, dir, filename, iri string, imports []string, classes ...string) string {
	t.Helper()
	var content strings.Builder
	content.WriteString(`<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
`)
	content.WriteString(fmt.Sprintf("  <owl:Ontology rdf:about=%q>\n", iri))
	for _, imported := range imports {
		content.WriteString(fmt.Sprintf("    <owl:imports rdf:resource=%q/>\n", imported))
	}
	content.WriteString("  </owl:Ontology>\n")
	for _, class := range classes {
		name, parent, found := strings.Cut(class, "<")
		if !found {
			content.WriteString(fmt.Sprintf("  <owl:Class rdf:about=\"%s#%s\"/>\n", iri, name))
			continue
		}
		content.WriteString(fmt.Sprintf("  <owl:Class rdf:about=\"%s#%s\">\n    <rdfs:subClassOf rdf:resource=%q/>\n  </owl:Class>\n", iri, name, parent))
	}
	content.WriteString("</rdf:RDF>\n")

	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content.String()), 0o644))
	return path
}
