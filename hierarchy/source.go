package hierarchy

import (
	"fmt"
	neturl "net/url"
	"path/filepath"
	"strings"
)

// Source is one user-supplied ontology reference: a normalized location plus
// an optional explicit prefix.
type Source struct {
	URI      string
	Prefix   string
	Explicit bool
}

// ParseSource parses a command-line ontology argument of the form
// location[:prefix]. An argument starting with http and containing exactly
// one colon is a bare URL even without a trailing :prefix; otherwise the
// prefix is split off at the last colon. Local paths become absolute file
// URIs, URLs are percent-decoded.
func ParseSource(argument string) (Source, error) {
	if argument == "" {
		return Source{}, fmt.Errorf("empty ontology argument")
	}
	if strings.HasPrefix(argument, "http") && strings.Count(argument, ":") == 1 {
		uri, err := normalizeLocation(argument)
		if err != nil {
			return Source{}, err
		}
		return Source{URI: uri}, nil
	}
	idx := strings.LastIndex(argument, ":")
	if idx < 0 {
		uri, err := normalizeLocation(argument)
		if err != nil {
			return Source{}, err
		}
		return Source{URI: uri}, nil
	}
	location, prefix := argument[:idx], argument[idx+1:]
	if location == "" {
		return Source{}, fmt.Errorf("missing location in ontology argument %q", argument)
	}
	uri, err := normalizeLocation(location)
	if err != nil {
		return Source{}, err
	}
	return Source{URI: uri, Prefix: prefix, Explicit: true}, nil
}

// ParseSources parses every argument, failing on the first malformed one.
func ParseSources(arguments []string) ([]Source, error) {
	sources := make([]Source, 0, len(arguments))
	for _, argument := range arguments {
		source, err := ParseSource(argument)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func normalizeLocation(location string) (string, error) {
	if strings.HasPrefix(location, "http") {
		unescaped, err := neturl.PathUnescape(location)
		if err != nil {
			return "", fmt.Errorf("malformed ontology URL %q: %w", location, err)
		}
		return unescaped, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("resolve ontology path %q: %w", location, err)
	}
	uri := neturl.URL{Scheme: "file", Path: abs}
	return uri.String(), nil
}
