// Package hierarchy flattens the class graphs of a set of ontologies into a
// single prefixed type hierarchy and renders it as an OpenCCG types.xml
// document. The pipeline is strictly forward: resolve sources and their
// import closure, extract the qualified class graph, optionally drop the
// universal root, serialize.
package hierarchy

import (
	"regexp"
	"strconv"
	"strings"
)

// Registry allocates unique ontology prefixes for one run. Prefixes are
// never revoked or reused; a Registry must not be shared across runs.
type Registry struct {
	used map[string]bool
}

// NewRegistry returns an empty prefix registry.
func NewRegistry() *Registry {
	return &Registry{used: map[string]bool{}}
}

// Allocate returns the candidate itself when still free, otherwise the first
// free value among candidate0, candidate1, ... The returned prefix is
// registered and never given out again.
func (r *Registry) Allocate(candidate string) string {
	prefix := candidate
	for counter := 0; r.used[prefix]; counter++ {
		prefix = candidate + strconv.Itoa(counter)
	}
	r.used[prefix] = true
	return prefix
}

// Derive generates a short prefix from an ontology identifier (a URI or a
// canonical ontology name) and allocates it.
func (r *Registry) Derive(identifier string) string {
	return r.Allocate(deriveCandidate(identifier))
}

var nonNameChars = regexp.MustCompile(`[^a-zA-Z_-]`)

// deriveCandidate reduces an identifier to a short, lowercase prefix
// candidate: the identifier's final path segment without extension is
// cleaned to letters, hyphens and underscores, and then abbreviated by the
// first letter of each hyphen- or underscore-delimited segment, by its
// uppercase letters when three or fewer, or by its first three characters.
//
// The segment slice is quirky and deliberately stays so, since existing
// grammars depend on the generated prefixes: with no dot in the identifier
// the final character is cut off, and a dot left of the last slash yields an
// empty candidate. Allocation makes even an empty candidate unique.
func deriveCandidate(identifier string) string {
	start := strings.LastIndex(identifier, "/") + 1
	end := strings.LastIndex(identifier, ".")
	if end < 0 {
		end = len(identifier) - 1
	}
	var short string
	if end > start {
		short = identifier[start:end]
	}

	short = nonNameChars.ReplaceAllString(short, "")
	if strings.HasSuffix(short, "-") {
		short = strings.TrimSuffix(short, "-")
		short = strings.TrimPrefix(short, "-")
	}
	short = strings.ReplaceAll(short, "--", "-")

	var upper strings.Builder
	for _, ch := range short {
		if ch >= 'A' && ch <= 'Z' {
			upper.WriteRune(ch)
		}
	}

	var candidate string
	switch {
	case strings.Contains(short, "-"):
		candidate = initials(short, "-")
	case strings.Contains(short, "_"):
		candidate = initials(short, "_")
	case upper.Len() <= 3:
		candidate = upper.String()
	default:
		candidate = short
		if len(candidate) > 3 {
			candidate = candidate[:3]
		}
	}
	return strings.ToLower(candidate)
}

func initials(value, separator string) string {
	var out strings.Builder
	for _, segment := range strings.Split(value, separator) {
		if segment == "" {
			continue
		}
		out.WriteByte(segment[0])
	}
	return out.String()
}
