package hierarchy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semkit/owl2types/owl"
)

func TestSerialize(t *testing.T) {
	dir := t.TempDir()
	aPath := writeOntology(t, dir, "a.owl", "http://example.org/a.owl", nil, "X")
	bPath := writeOntology(t, dir, "b.owl", "http://example.org/b.owl", nil,
		"Y<http://example.org/a.owl#X")

	resolution, err := NewResolver(owl.New()).Resolve(context.Background(), []Source{
		{URI: aPath, Prefix: "a", Explicit: true},
		{URI: bPath, Prefix: "b", Explicit: true},
	})
	require.NoError(t, err)

	graph, err := Extract(resolution.Ontologies, resolution.Prefixes)
	require.NoError(t, err)
	graph = ExcludeThing(graph)

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<!-- This file was generated automatically. Do not modify it manually. -->
<!-- Ontologies used:
    http://example.org/a.owl#
    http://example.org/b.owl#
-->
<types name="core" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="https://raw.githubusercontent.com/OpenCCG/openccg/master/grammars/types.xsd">
    <type name="a-X" />
    <type name="b-Y" parents="a-X" />
</types>`
	assert.Equal(t, expected, Serialize(graph, resolution.Ontologies))
}

func TestSerializeEmptyGraph(t *testing.T) {
	dir := t.TempDir()
	path := writeOntology(t, dir, "empty.owl", "http://example.org/empty.owl", nil)

	resolution, err := NewResolver(owl.New()).Resolve(context.Background(), []Source{
		{URI: path, Prefix: "e", Explicit: true},
	})
	require.NoError(t, err)

	graph, err := Extract(resolution.Ontologies, resolution.Prefixes)
	require.NoError(t, err)

	expected := `<?xml version="1.0" encoding="UTF-8"?>
<!-- This file was generated automatically. Do not modify it manually. -->
<!-- Ontologies used:
    http://example.org/empty.owl#
-->
<types name="core" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="https://raw.githubusercontent.com/OpenCCG/openccg/master/grammars/types.xsd" />`
	assert.Equal(t, expected, Serialize(graph, resolution.Ontologies))
}

func TestSerializeIsStable(t *testing.T) {
	graph := NewGraph()
	graph.insert("a-X", nil)
	graph.insert("b-Y", []string{"a-X", "a-Z"})

	first := Serialize(graph, nil)
	second := Serialize(graph, nil)
	assert.Equal(t, first, second)
}

func TestSerializeEscapesAttributeValues(t *testing.T) {
	graph := NewGraph()
	graph.insert(`a-X<"&>`, nil)

	document := Serialize(graph, nil)
	assert.Contains(t, document, `name="a-X&lt;&quot;&amp;&gt;"`)
}
