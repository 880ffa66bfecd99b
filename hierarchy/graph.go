package hierarchy

import (
	"fmt"

	"github.com/semkit/owl2types/owl"
)

// Graph maps qualified class names to their direct parent sets. Both the
// entries and each parent set keep insertion order, so a graph serializes
// identically on every pass.
type Graph struct {
	names   []string
	parents map[string][]string
}

// NewGraph returns an empty class graph.
func NewGraph() *Graph {
	return &Graph{parents: map[string][]string{}}
}

// insert records a class with its parent set. The first insertion of a name
// wins: parents of a duplicate name are discarded, matching the behavior the
// downstream grammars were built against.
func (g *Graph) insert(name string, parents []string) {
	if _, ok := g.parents[name]; ok {
		return
	}
	g.names = append(g.names, name)
	g.parents[name] = parents
}

// Names returns every qualified class name in insertion order.
func (g *Graph) Names() []string { return g.names }

// Parents returns the direct parent set of a class, in insertion order.
func (g *Graph) Parents(name string) []string { return g.parents[name] }

// Has reports whether the graph contains the qualified name.
func (g *Graph) Has(name string) bool {
	_, ok := g.parents[name]
	return ok
}

// Len returns the number of classes in the graph.
func (g *Graph) Len() int { return len(g.names) }

// Extract builds the merged class graph: for every class declared in one of
// the ontologies, its qualified name prefix-LocalName mapped to the
// qualified names of its named direct superclasses. Anonymous superclass
// expressions are dropped. Only direct parents are recorded, no transitive
// closure.
func Extract(ontologies []*owl.Ontology, prefixes map[string]string) (*Graph, error) {
	graph := NewGraph()
	for _, ontology := range ontologies {
		for _, class := range ontology.Classes() {
			name, err := qualifiedName(class, prefixes)
			if err != nil {
				return nil, err
			}
			var parents []string
			for _, super := range class.Superclasses() {
				if super.Kind() != owl.ExprClass {
					continue
				}
				parent, err := qualifiedName(super.Class(), prefixes)
				if err != nil {
					return nil, err
				}
				parents = appendUnique(parents, parent)
			}
			graph.insert(name, parents)
		}
	}
	return graph, nil
}

// qualifiedName renders prefix-LocalName for a class. Unique prefixes make
// qualified names globally unique across merged ontologies.
func qualifiedName(class *owl.Class, prefixes map[string]string) (string, error) {
	prefix, ok := prefixes[class.Ontology().Name()]
	if !ok {
		return "", fmt.Errorf("no prefix registered for ontology %q (referenced by class %s)",
			class.Ontology().Name(), class.IRI())
	}
	return prefix + "-" + class.Name(), nil
}

func appendUnique(values []string, value string) []string {
	for _, existing := range values {
		if existing == value {
			return values
		}
	}
	return append(values, value)
}
