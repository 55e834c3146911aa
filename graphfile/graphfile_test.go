package graphfile_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/graph"
	"github.com/katalvlaran/shortpath/graphfile"
)

const yamlDoc = `
undirected: false
vertices: [Z]
edges:
  - {from: S, to: A, weight: 4}
  - {from: S, to: B, weight: 2}
  - {from: B, to: A, weight: -1}
  - {from: A, to: C, weight: 2}
  - {from: B, to: C, weight: 5}
`

const tomlDoc = `
undirected = false
vertices = ["Z"]

[[edges]]
from = "S"
to = "A"
weight = 4.0

[[edges]]
from = "S"
to = "B"
weight = 2.0

[[edges]]
from = "B"
to = "A"
weight = -1.0

[[edges]]
from = "A"
to = "C"
weight = 2.0

[[edges]]
from = "B"
to = "C"
weight = 5.0
`

const jsonDoc = `{
  "vertices": ["Z"],
  "edges": [
    {"from": "S", "to": "A", "weight": 4},
    {"from": "S", "to": "B", "weight": 2},
    {"from": "B", "to": "A", "weight": -1},
    {"from": "A", "to": "C", "weight": 2},
    {"from": "B", "to": "C", "weight": 5}
  ]
}`

// writeFile drops content into a temp file named name and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func assertRebateGraph(t *testing.T, g *graph.Graph[string]) {
	t.Helper()
	assert.Equal(t, []string{"Z", "S", "A", "B", "C"}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.Weighted())
	assert.True(t, g.HasNegativeWeight())
	assert.Equal(t, -1.0, g.Weight("B", "A"))
	assert.Equal(t, []string{"A", "B"}, g.Neighbors("S"))
}

func TestLoad_EachFormat(t *testing.T) {
	for name, content := range map[string]string{
		"g.yaml": yamlDoc,
		"g.yml":  yamlDoc,
		"g.toml": tomlDoc,
		"g.json": jsonDoc,
	} {
		t.Run(name, func(t *testing.T) {
			g, err := graphfile.Load(writeFile(t, name, content))
			require.NoError(t, err)
			assertRebateGraph(t, g)
		})
	}
}

func TestLoadAs_IgnoresExtension(t *testing.T) {
	g, err := graphfile.LoadAs(writeFile(t, "graph.txt", jsonDoc), graphfile.JSON)
	require.NoError(t, err)
	assertRebateGraph(t, g)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := graphfile.Load(writeFile(t, "graph.txt", yamlDoc))
	assert.True(t, errors.Is(err, graphfile.ErrUnknownFormat))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphfile.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDecode_UnweightedAndUndirected(t *testing.T) {
	g, err := graphfile.Decode(strings.NewReader(`
undirected: true
edges:
  - {from: "1", to: "2"}
  - {from: "2", to: "4"}
`), graphfile.YAML)
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.True(t, g.Undirected())
	assert.Equal(t, []string{"1", "4"}, g.Neighbors("2"))
}

func TestDecode_EmptyDocument(t *testing.T) {
	for _, f := range []graphfile.Format{graphfile.YAML, graphfile.TOML, graphfile.JSON} {
		g, err := graphfile.Decode(strings.NewReader(""), f)
		require.NoError(t, err, f)
		assert.Zero(t, g.VertexCount(), f)
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := graphfile.Decode(strings.NewReader(`edges: [{from: A}]`), graphfile.YAML)
	assert.True(t, errors.Is(err, graphfile.ErrEdge))

	_, err = graphfile.Decode(strings.NewReader(`{"edges": [`), graphfile.JSON)
	assert.Error(t, err)

	_, err = graphfile.Decode(strings.NewReader(`edges = [`), graphfile.TOML)
	assert.Error(t, err)

	_, err = graphfile.Decode(strings.NewReader(""), graphfile.Format("xml"))
	assert.True(t, errors.Is(err, graphfile.ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]graphfile.Format{
		"yaml": graphfile.YAML, "YML": graphfile.YAML, ".toml": graphfile.TOML, "json": graphfile.JSON,
	} {
		got, err := graphfile.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := graphfile.ParseFormat("csv")
	assert.True(t, errors.Is(err, graphfile.ErrUnknownFormat))
}

func TestEncode_RoundTrip(t *testing.T) {
	src, err := graphfile.Decode(strings.NewReader(yamlDoc), graphfile.YAML)
	require.NoError(t, err)

	for _, f := range []graphfile.Format{graphfile.YAML, graphfile.TOML, graphfile.JSON} {
		var buf bytes.Buffer
		require.NoError(t, graphfile.FromGraph(src).Encode(&buf, f), f)

		got, err := graphfile.Decode(&buf, f)
		require.NoError(t, err, f)
		assert.ElementsMatch(t, src.Vertices(), got.Vertices(), f)
		assert.Equal(t, src.Edges(), got.Edges(), f)
	}
}

func TestFromGraph_Undirected(t *testing.T) {
	g := graph.New[string](graph.WithUndirected())
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddVertex("D")

	doc := graphfile.FromGraph(g)
	assert.True(t, doc.Undirected)
	assert.Equal(t, []string{"D"}, doc.Vertices)
	assert.Equal(t, []graphfile.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}}, doc.Edges)
}
