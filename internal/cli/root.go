// Package cli wires the shortpath command tree: graph files in, shortest
// paths out.
package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphfile"
)

// Input holds the flags shared by every subcommand.
type Input struct {
	graphPath   string
	graphFormat string
	verbose     bool
	output      outputFormat
}

// Execute is the entry point to running the CLI. It returns the process exit
// code and leaves exiting to the caller.
func Execute(ctx context.Context, version string) int {
	rootCmd := NewRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}

	return 0
}

// NewRootCommand builds the command tree. Each call returns an independent
// tree with its own flag state, so tests can run several side by side.
func NewRootCommand(version string) *cobra.Command {
	input := &Input{output: outputText}

	rootCmd := &cobra.Command{
		Use:          "shortpath",
		Short:        "Find shortest paths in graphs described by YAML, TOML or JSON files.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&input.graphPath, "graph", "g", "", "path to graph file (.yaml, .yml, .toml, .json)")
	rootCmd.PersistentFlags().StringVar(&input.graphFormat, "format", "", "graph file format, overrides the file extension")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().VarP(&input.output, "output", "o", "output format: text or json")
	_ = rootCmd.MarkPersistentFlagRequired("graph")

	rootCmd.AddCommand(
		newPathCommand(input),
		newDistancesCommand(input),
		newPathsCommand(input),
		newAlgorithmCommand(input),
		newConvertCommand(input),
	)

	return rootCmd
}

// logger returns a logrus logger writing to the command's stderr, at debug
// level when --verbose is set.
func (i *Input) logger(cmd *cobra.Command) *log.Logger {
	l := log.New()
	l.SetOutput(cmd.ErrOrStderr())
	if i.verbose {
		l.SetLevel(log.DebugLevel)
	}

	return l
}

// loadGraph reads the graph named by --graph, honouring --format.
func (i *Input) loadGraph(ctx context.Context, logger log.FieldLogger) (*graph.Graph[string], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		g   *graph.Graph[string]
		err error
	)
	if i.graphFormat != "" {
		f, ferr := graphfile.ParseFormat(i.graphFormat)
		if ferr != nil {
			return nil, ferr
		}
		g, err = graphfile.LoadAs(i.graphPath, f)
	} else {
		g, err = graphfile.Load(i.graphPath)
	}
	if err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"file":     i.graphPath,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	}).Debug("loaded graph")

	return g, nil
}

// requireVertex fails with a flag-oriented message when a vertex flag is empty.
func requireVertex(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s is required", name)
	}

	return nil
}
