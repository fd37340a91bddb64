package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gotruss/internal/loads"
	"github.com/alexiusacademia/gotruss/internal/truss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const triangleJSON = `{
  "name": "Right triangle",
  "nodes": [
    {"index": 0, "x": 0, "y": 0, "constraint": "pin"},
    {"index": 2, "x": 0, "y": 3, "fy": -10},
    {"index": 1, "x": 4, "y": 0, "constraint": "roller_no_ydisp"}
  ],
  "bars": [
    {"index": 0, "init": 0, "end": 1},
    {"index": 1, "init": 0, "end": 2},
    {"index": 2, "init": 1, "end": 2}
  ],
  "loads": [
    {"node": 2, "case": "L", "fx": 0, "fy": -5}
  ]
}`

const triangleYAML = `
name: Right triangle
nodes:
  - {index: 0, x: 0, y: 0, constraint: pin}
  - {index: 1, x: 4, y: 0, constraint: roller_no_ydisp}
  - {index: 2, x: 0, y: 3, fy: -10}
bars:
  - {index: 0, init: 0, end: 1}
  - {index: 1, init: 0, end: 2}
  - {index: 2, init: 1, end: 2}
loads:
  - {node: 2, case: l, fy: -5}
`

const triangleCSV = `# right triangle
type,index,a,b,c,d,e
name,Right triangle
node,0,0,0,0,0,pin
node,1,4,0,0,0,roller_no_ydisp
node,2,0,3,0,-10

bar,0,0,1
bar,1,0,2
bar,2,1,2
load,2,L,0,-5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileFormatsAgree(t *testing.T) {
	files := map[string]string{
		"triangle.json": triangleJSON,
		"triangle.yaml": triangleYAML,
		"triangle.csv":  triangleCSV,
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			doc, err := LoadFromFile(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "Right triangle", doc.Name)

			tr, err := doc.Build()
			require.NoError(t, err)
			require.Len(t, tr.Nodes, 3)
			require.Len(t, tr.Bars, 3)

			assert.Equal(t, truss.Pin, tr.Nodes[0].Constraint)
			assert.Equal(t, truss.RollerNoY, tr.Nodes[1].Constraint)
			assert.Equal(t, truss.Free, tr.Nodes[2].Constraint)
			assert.Equal(t, 4.0, tr.Nodes[1].X)
			assert.Equal(t, -10.0, tr.Nodes[2].YLoad)
			assert.Equal(t, []int{1, 2}, tr.Nodes[2].Bars)

			require.Len(t, doc.CaseLoads(), 1)
			assert.Equal(t, loads.Live, doc.CaseLoads()[0].Case)

			combo, err := loads.Lookup("2", loads.SimplifiedCombinations)
			require.NoError(t, err)
			factored, err := doc.BuildFor(combo)
			require.NoError(t, err)
			assert.InDelta(t, -18, factored.Nodes[2].YLoad, 1e-12)
		})
	}
}

func TestLoadFromFileDefaultsName(t *testing.T) {
	path := writeFile(t, "warren.json", `{"nodes":[{"index":0,"x":0,"y":0},{"index":1,"x":1,"y":0}],"bars":[{"index":0,"init":0,"end":1}]}`)
	doc, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "warren", doc.Name)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{"a.json": JSON, "b.YML": YAML, "c.yaml": YAML, "d.csv": CSV} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := FormatFromPath("truss.txt")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		msg  string
	}{
		{"too few nodes", "node,0,0,0\nbar,0,0,1\n", "at least 2 nodes"},
		{"no bars", "node,0,0,0\nnode,1,1,0\n", "at least one bar"},
		{"gap", "node,0,0,0\nnode,2,1,0\nbar,0,0,1\n", "node index 2 out of range"},
		{"duplicate", "node,0,0,0\nnode,0,1,0\nbar,0,0,1\n", "duplicate node index 0"},
		{"bad case", "node,0,0,0\nnode,1,1,0\nbar,0,0,1\nload,1,S,0,1\n", "unknown load case"},
		{"row type", "joint,0,0,0\n", `line 1: unknown row type "joint"`},
		{"missing column", "node,0,0\n", "line 1: missing column 4"},
		{"not a number", "node,0,zero,0\n", `"zero" is not a number`},
		{"not an integer", "bar,a,0,1\n", `"a" is not an integer`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.csv), CSV)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestBuildRejectsGeometry(t *testing.T) {
	doc, err := Decode([]byte("node,0,1,1\nnode,1,1,1\nbar,0,0,1\n"), CSV)
	require.NoError(t, err)

	_, err = doc.Build()
	require.ErrorIs(t, err, truss.ErrInput)
	assert.Contains(t, err.Error(), "zero length")
}

func TestBuildRejectsNonFiniteValues(t *testing.T) {
	docs := map[string]struct {
		data   string
		format Format
	}{
		"csv NaN x":    {"node,0,0,0,0,0,pin\nnode,1,4,0,0,0,roller_no_ydisp\nnode,2,NaN,3,0,-10\nbar,0,0,1\nbar,1,0,2\nbar,2,1,2\n", CSV},
		"csv Inf load": {"node,0,0,0\nnode,1,4,0,Inf,0\nbar,0,0,1\n", CSV},
		"yaml .nan":    {"nodes:\n  - {index: 0, x: 0, y: .nan}\n  - {index: 1, x: 1, y: 0}\nbars:\n  - {index: 0, init: 0, end: 1}\n", YAML},
	}
	for name, tt := range docs {
		t.Run(name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)

			_, err = doc.Build()
			require.ErrorIs(t, err, truss.ErrInput)
			assert.Contains(t, err.Error(), "non-finite")
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("{"), JSON)
	assert.Error(t, err)

	_, err = Decode([]byte("nodes: [\n"), YAML)
	assert.Error(t, err)

	_, err = Decode(nil, "toml")
	assert.Error(t, err)
}
