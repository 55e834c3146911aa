package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/shortpath/graphfile"
	"github.com/katalvlaran/shortpath/shortest"
)

type pathResult struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Algorithm string   `json:"algorithm"`
	Reachable bool     `json:"reachable"`
	Path      []string `json:"path"`
	Distance  *float64 `json:"distance"`
}

type distanceRow struct {
	Vertex   string   `json:"vertex"`
	Distance *float64 `json:"distance"`
	Parent   string   `json:"parent,omitempty"`
}

type distancesResult struct {
	From      string        `json:"from"`
	Algorithm string        `json:"algorithm"`
	Distances []distanceRow `json:"distances"`
}

type algorithmResult struct {
	Algorithm  string `json:"algorithm"`
	Vertices   int    `json:"vertices"`
	Edges      int    `json:"edges"`
	Weighted   bool   `json:"weighted"`
	Negative   bool   `json:"negative"`
	Undirected bool   `json:"undirected"`
}

func newPathCommand(input *Input) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print one shortest path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireVertex("from", from); err != nil {
				return err
			}
			if err := requireVertex("to", to); err != nil {
				return err
			}
			logger := input.logger(cmd)
			g, err := input.loadGraph(cmd.Context(), logger)
			if err != nil {
				return err
			}

			res, err := shortest.Path(g, from, to, shortest.WithLogger(logger))
			if err != nil {
				return err
			}

			out := pathResult{
				From:      from,
				To:        to,
				Algorithm: res.Algorithm.String(),
				Reachable: len(res.Path) > 0,
				Path:      res.Path,
				Distance:  finite(res.Distance),
			}
			if input.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			if !out.Reachable {
				_, err = fmt.Fprintf(w, "no path from %s to %s (%s)\n", from, to, out.Algorithm)
				return err
			}
			_, err = fmt.Fprintf(w, "%s\ndistance: %s (%s)\n", joinPath(res.Path), formatDistance(res.Distance), out.Algorithm)
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start vertex")
	cmd.Flags().StringVar(&to, "to", "", "end vertex")

	return cmd
}

func newDistancesCommand(input *Input) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "distances",
		Short: "Print the distance from one vertex to every vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireVertex("from", from); err != nil {
				return err
			}
			logger := input.logger(cmd)
			g, err := input.loadGraph(cmd.Context(), logger)
			if err != nil {
				return err
			}

			tree, algo, err := shortest.Tree(g, from, shortest.WithLogger(logger))
			if err != nil {
				return err
			}

			out := distancesResult{From: from, Algorithm: algo.String()}
			for _, v := range g.Vertices() {
				row := distanceRow{Vertex: v, Distance: finite(tree.Distance(v))}
				if p, ok := tree.Parent[v]; ok {
					row.Parent = p
				}
				out.Distances = append(out.Distances, row)
			}
			if input.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			for _, v := range g.Vertices() {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", v, formatDistance(tree.Distance(v))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start vertex")

	return cmd
}

func newPathsCommand(input *Input) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print every simple path between two vertices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireVertex("from", from); err != nil {
				return err
			}
			if err := requireVertex("to", to); err != nil {
				return err
			}
			logger := input.logger(cmd)
			g, err := input.loadGraph(cmd.Context(), logger)
			if err != nil {
				return err
			}

			paths, err := shortest.AllPaths(g, from, to)
			if err != nil {
				return err
			}
			logger.WithField("count", len(paths)).Debug("enumerated paths")

			if input.output == outputJSON {
				if paths == nil {
					paths = [][]string{}
				}
				return writeJSON(cmd.OutOrStdout(), paths)
			}
			w := cmd.OutOrStdout()
			for _, p := range paths {
				if _, err := fmt.Fprintln(w, joinPath(p)); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "start vertex")
	cmd.Flags().StringVar(&to, "to", "", "end vertex")

	return cmd
}

func newAlgorithmCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithm",
		Short: "Print which solver the graph would be queried with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := input.loadGraph(cmd.Context(), input.logger(cmd))
			if err != nil {
				return err
			}

			out := algorithmResult{
				Algorithm:  shortest.Select(g).String(),
				Vertices:   g.VertexCount(),
				Edges:      g.EdgeCount(),
				Weighted:   g.Weighted(),
				Negative:   g.HasNegativeWeight(),
				Undirected: g.Undirected(),
			}
			if input.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Algorithm)
			return err
		},
	}
}

func newConvertCommand(input *Input) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Rewrite the graph file in another format on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := graphfile.ParseFormat(target)
			if err != nil {
				return err
			}
			g, err := input.loadGraph(cmd.Context(), input.logger(cmd))
			if err != nil {
				return err
			}

			return graphfile.FromGraph(g).Encode(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVar(&target, "to-format", "yaml", "output document format: yaml, toml or json")

	return cmd
}
