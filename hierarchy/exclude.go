package hierarchy

// thingQualifiedName is the qualified name of the universal root class under
// the fixed owl prefix map entry.
const thingQualifiedName = "owl-Thing"

// ExcludeThing returns a new graph without the owl-Thing entry and without
// owl-Thing in any parent set. The input graph is left untouched.
func ExcludeThing(graph *Graph) *Graph {
	out := NewGraph()
	for _, name := range graph.Names() {
		if name == thingQualifiedName {
			continue
		}
		var parents []string
		for _, parent := range graph.Parents(name) {
			if parent == thingQualifiedName {
				continue
			}
			parents = append(parents, parent)
		}
		out.insert(name, parents)
	}
	return out
}
