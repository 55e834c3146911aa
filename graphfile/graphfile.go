// Package graphfile reads graph documents from disk into a *graph.Graph[string].
//
// A document lists optional isolated vertices and a sequence of edges; an edge
// without a weight is added unweighted, so a document with no weights at all
// is solved by breadth-first search:
//
//	undirected: false
//	vertices: [Z]
//	edges:
//	  - {from: A, to: B, weight: 4}
//	  - {from: B, to: C}
//
// The same shape is accepted as TOML (one [[edges]] table per edge) and JSON.
package graphfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/graph"
)

// Sentinel errors for loading graph documents.
var (
	// ErrUnknownFormat is returned when a format name or file extension is not recognised.
	ErrUnknownFormat = errors.New("graphfile: unknown format")
	// ErrEdge is returned when an edge entry is missing an endpoint.
	ErrEdge = errors.New("graphfile: invalid edge")
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Document is the decoded form of a graph file.
type Document struct {
	Undirected bool     `yaml:"undirected" toml:"undirected" json:"undirected"`
	Vertices   []string `yaml:"vertices" toml:"vertices" json:"vertices,omitempty"`
	Edges      []Edge   `yaml:"edges" toml:"edges" json:"edges"`
}

// Edge is one edge entry. A nil Weight means the edge carries no weight.
type Edge struct {
	From   string   `yaml:"from" toml:"from" json:"from"`
	To     string   `yaml:"to" toml:"to" json:"to"`
	Weight *float64 `yaml:"weight,omitempty" toml:"weight,omitempty" json:"weight,omitempty"`
}

// ParseFormat maps a user-supplied name ("yml", "TOML", ...) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Load reads the graph document at path, choosing the format by extension.
func Load(path string) (*graph.Graph[string], error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return LoadAs(path, f)
}

// LoadAs reads the graph document at path in the given format.
func LoadAs(path string, f Format) (*graph.Graph[string], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load graph file %q: %w", path, err)
	}
	defer file.Close()

	g, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("load graph file %q: %w", path, err)
	}

	return g, nil
}

// Decode reads one document from r and builds the graph it describes.
func Decode(r io.Reader, f Format) (*graph.Graph[string], error) {
	doc, err := DecodeDocument(r, f)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// DecodeDocument reads one document from r without building a graph.
func DecodeDocument(r io.Reader, f Format) (*Document, error) {
	doc := new(Document)
	switch f {
	case YAML:
		// an empty stream decodes to an empty document
		if err := yaml.NewDecoder(r).Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(doc); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case JSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	return doc, nil
}

// Build turns the document into a graph. Vertices are registered first, then
// edges in document order.
func (d *Document) Build() (*graph.Graph[string], error) {
	var opts []graph.Option
	if d.Undirected {
		opts = append(opts, graph.WithUndirected())
	}
	g := graph.New[string](opts...)

	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: entry %d needs both from and to", ErrEdge, i)
		}
		if e.Weight == nil {
			g.AddEdge(e.From, e.To)
			continue
		}
		g.AddEdge(e.From, e.To, *e.Weight)
	}

	return g, nil
}

// Encode writes the document to w in the given format.
func (d *Document) Encode(w io.Writer, f Format) error {
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case TOML:
		return toml.NewEncoder(w).Encode(d)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// FromGraph captures g as a document. Edge weights are written only when g is
// weighted; undirected graphs list each mirrored pair once.
func FromGraph(g *graph.Graph[string]) *Document {
	d := &Document{Undirected: g.Undirected()}

	linked := make(map[string]bool, g.VertexCount())
	seen := make(map[[2]string]int)
	for _, e := range g.Edges() {
		linked[e.From], linked[e.To] = true, true
		if g.Undirected() && e.From != e.To {
			// mirrored entries come in pairs; keep the first of each
			key := [2]string{e.From, e.To}
			if e.To < e.From {
				key = [2]string{e.To, e.From}
			}
			seen[key]++
			if seen[key]%2 == 0 {
				continue
			}
		}
		out := Edge{From: e.From, To: e.To}
		if g.Weighted() {
			w := e.Weight
			out.Weight = &w
		}
		d.Edges = append(d.Edges, out)
	}
	for _, v := range g.Vertices() {
		if !linked[v] {
			d.Vertices = append(d.Vertices, v)
		}
	}

	return d
}
