package hierarchy

import (
	"strings"

	"github.com/semkit/owl2types/owl"
)

const (
	typesName           = "core"
	schemaInstanceNS    = "http://www.w3.org/2001/XMLSchema-instance"
	typesSchemaLocation = "https://raw.githubusercontent.com/OpenCCG/openccg/master/grammars/types.xsd"

	generatedNotice = "<!-- This file was generated automatically. Do not modify it manually. -->"
)

// Serialize renders the class graph as an OpenCCG types.xml document:
// one <type> element per class in graph order, a parents attribute only for
// non-empty parent sets, 4-space indentation, " />" self-closing tags, and
// two provenance comments between the XML declaration and the root element.
// The output is byte-for-byte deterministic and carries no trailing newline.
func Serialize(graph *Graph, ontologies []*owl.Ontology) string {
	var out strings.Builder
	out.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	out.WriteString(generatedNotice + "\n")
	out.WriteString("<!-- Ontologies used:\n")
	for _, ontology := range ontologies {
		out.WriteString("    " + ontology.BaseIRI() + "\n")
	}
	out.WriteString("-->\n")

	out.WriteString(`<types name="` + typesName + `" xmlns:xsi="` + schemaInstanceNS +
		`" xsi:noNamespaceSchemaLocation="` + typesSchemaLocation + `"`)
	if graph.Len() == 0 {
		out.WriteString(" />")
		return out.String()
	}
	out.WriteString(">\n")
	for _, name := range graph.Names() {
		out.WriteString(`    <type name="` + escapeAttr(name) + `"`)
		if parents := graph.Parents(name); len(parents) > 0 {
			out.WriteString(` parents="` + escapeAttr(strings.Join(parents, " ")) + `"`)
		}
		out.WriteString(" />\n")
	}
	out.WriteString("</types>")
	return out.String()
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeAttr(value string) string {
	return attrEscaper.Replace(value)
}
