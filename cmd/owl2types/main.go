// Package main provides the owl2types binary: it merges the class
// hierarchies of one or more OWL ontologies, including their transitive
// imports, into a single prefixed OpenCCG types.xml document.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/semkit/owl2types/hierarchy"
	"github.com/semkit/owl2types/owl"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	output       string
	lookup       []string
	catalogPath  string
	excludeThing bool
	verbose      bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "owl2types [flags] location[:prefix]...",
		Short: "Convert OWL class hierarchies to an OpenCCG types.xml document",
		Long: `owl2types loads one or more ontologies together with their transitive
imports, assigns each a unique short prefix (explicit or derived from its
name), merges every class definition into one flattened hierarchy and prints
it as a types.xml document.

Ontology arguments take the form path/to/ontology.owl:prefix or a bare URL;
without :prefix a prefix is derived automatically.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args, opts, os.Stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file, defaults to STDOUT")
	flags.StringArrayVarP(&opts.lookup, "lookup", "l", nil, "additional lookup directory for imported ontologies (repeatable)")
	flags.StringVar(&opts.catalogPath, "catalog", "", "YAML catalog mapping ontology IRIs to locations")
	flags.BoolVarP(&opts.excludeThing, "exclude-owl-thing", "x", false, "exclude owl:Thing as the top level element")
	flags.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	return cmd
}

func run(ctx context.Context, args []string, opts *options, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	sources, err := hierarchy.ParseSources(args)
	if err != nil {
		return err
	}

	loaderOptions := []owl.Option{owl.WithLookup(opts.lookup...)}
	if opts.catalogPath != "" {
		catalog, err := owl.LoadCatalog(opts.catalogPath)
		if err != nil {
			return err
		}
		loaderOptions = append(loaderOptions, owl.WithCatalog(catalog))
	}
	loader := owl.New(loaderOptions...)

	resolution, err := hierarchy.NewResolver(loader).Resolve(ctx, sources)
	if err != nil {
		return err
	}
	for _, ontology := range resolution.Ontologies {
		logger.Debug("loaded ontology",
			"name", ontology.Name(),
			"prefix", resolution.Prefixes[ontology.Name()],
			"location", ontology.Location())
	}

	graph, err := hierarchy.Extract(resolution.Ontologies, resolution.Prefixes)
	if err != nil {
		return err
	}
	if opts.excludeThing {
		graph = hierarchy.ExcludeThing(graph)
	}
	document := hierarchy.Serialize(graph, resolution.Ontologies)

	out := stdout
	if opts.output != "" && opts.output != "-" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("open output %s: %w", opts.output, err)
		}
		defer file.Close()
		out = file
	}
	if _, err := fmt.Fprintln(out, document); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
