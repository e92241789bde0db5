package request_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/internal/request"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Document(t *testing.T) {
	doc, err := request.ParseJSON([]byte(`{
		"algorithm": "knapsack_2d",
		"params": {
			"capacity": 10,
			"capacity2": 4,
			"items": [
				{"weight": 2, "value": 3, "volume": 1},
				{"weight": 5, "value": 9, "volume": 0, "note": "ignored"}
			]
		}
	}`))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	p, err := doc.Problem()
	require.NoError(t, err)
	assert.Equal(t, knapsack.Problem{
		Variant:  knapsack.TwoDimensional,
		Capacity: knapsack.Capacity{Weight: 10, Volume: 4},
		Items:    []catalog.Item{{Weight: 2, Value: 3, Volume: 1}, {Weight: 5, Value: 9}},
	}, p)
}

func TestParseJSON_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"not json":            `{"algorithm":`,
		"not an object":       `[1, 2]`,
		"string capacity":     `{"algorithm":"01","params":{"capacity":"ten"}}`,
		"items not array":     `{"algorithm":"01","params":{"capacity":1,"items":{}}}`,
		"string item field":   `{"algorithm":"01","params":{"capacity":1,"items":[{"weight":"1","value":1}]}}`,
		"fractional capacity": `{"algorithm":"01","params":{"capacity":2.5,"items":[]}}`,
		"fractional weight":   `{"algorithm":"01","params":{"capacity":3,"items":[{"weight":1.5,"value":1}]}}`,
		"huge capacity":       `{"algorithm":"01","params":{"capacity":1e300,"items":[]}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := request.ParseJSON([]byte(body))
			assert.ErrorIs(t, err, request.ErrMalformedDocument)
		})
	}
}

func TestParseYAML_Document(t *testing.T) {
	doc, err := request.ParseYAML([]byte(`
algorithm: mixed
params:
  capacity: 8
  items:
    - {weight: 1, value: 2, type: 2}
    - {weight: 3, value: 5, type: 1}
    - {weight: 2, value: 1}
`))
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	p, err := doc.Problem()
	require.NoError(t, err)
	assert.Equal(t, knapsack.Mixed, p.Variant)
	assert.Equal(t, []catalog.Item{
		{Weight: 1, Value: 2, Kind: catalog.Multiple},
		{Weight: 3, Value: 5, Kind: catalog.Unbounded},
		{Weight: 2, Value: 1, Kind: catalog.Once},
	}, p.Items)
}

func TestDocument_Validate(t *testing.T) {
	neg := -1
	cases := map[string]request.Document{
		"no algorithm":    {Params: request.Params{Capacity: 1}},
		"negative cap":    {Algorithm: "01", Params: request.Params{Capacity: -1}},
		"zero weight":     {Algorithm: "01", Params: request.Params{Items: []request.Item{{Weight: 0}}}},
		"negative volume": {Algorithm: "2d", Params: request.Params{Items: []request.Item{{Weight: 1, Volume: &neg}}}},
		"k below one":     {Algorithm: "kth", Params: request.Params{K: new(int)}},
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, doc.Validate())
		})
	}
}

func TestDocument_Problem_MissingParams(t *testing.T) {
	_, err := (&request.Document{Algorithm: "2d"}).Problem()
	assert.ErrorIs(t, err, request.ErrMissingParam)

	_, err = (&request.Document{Algorithm: "knapsack_kth"}).Problem()
	assert.ErrorIs(t, err, request.ErrMissingParam)

	_, err = (&request.Document{Algorithm: "knapsack_nope"}).Problem()
	assert.ErrorIs(t, err, knapsack.ErrUnknownVariant)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
algorithm: knapsack_tree
params:
  capacity: 5
  items:
    - {weight: 2, value: 3, parent: 0}
    - {weight: 1, value: 4, parent: 1}
`), 0o600))

	doc, err := request.ReadFile(path)
	require.NoError(t, err)
	p, err := doc.Problem()
	require.NoError(t, err)
	assert.Equal(t, 1, p.Items[1].Parent)

	_, err = request.ReadFile(filepath.Join(dir, "x.toml"))
	assert.ErrorIs(t, err, request.ErrUnknownFormat)
}

func TestReadBatchFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"workers": 2,
		"requests": [
			{"algorithm": "01", "params": {"capacity": 3, "items": [{"weight": 1, "value": 1}]}},
			{"algorithm": "kth", "params": {"capacity": 3, "k": 2, "items": [{"weight": 1, "value": 1}]}}
		]
	}`), 0o600))

	b, err := request.ReadBatchFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Workers)
	require.Len(t, b.Requests, 2)
	assert.Equal(t, 2, *b.Requests[1].Params.K)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("requests: []\n"), 0o600))
	_, err = request.ReadBatchFile(empty)
	assert.Error(t, err)
}

// TestParseJSON_IntegralExponent accepts numbers that are whole despite
// their notation.
func TestParseJSON_IntegralExponent(t *testing.T) {
	doc, err := request.ParseJSON([]byte(`{"algorithm":"01","params":{"capacity":1e1,"items":[{"weight":2.0,"value":3}]}}`))
	require.NoError(t, err)
	assert.Equal(t, 10, doc.Params.Capacity)
	assert.Equal(t, 2, doc.Params.Items[0].Weight)
}

func TestParseBatch_JSONMalformed(t *testing.T) {
	for name, body := range map[string]string{
		"requests not array": `{"requests":{"a":{"algorithm":"01","params":{"capacity":1,"items":[]}}}}`,
		"fractional workers": `{"workers":1.5,"requests":[]}`,
		"bad request":        `{"requests":[{"algorithm":"01","params":{"capacity":0.5}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := request.ParseBatch([]byte(body), request.JSON)
			assert.ErrorIs(t, err, request.ErrMalformedDocument)
		})
	}
}

func TestFormatOf(t *testing.T) {
	f, err := request.FormatOf("a/b.JSON")
	require.NoError(t, err)
	assert.Equal(t, request.JSON, f)

	f, err = request.FormatOf("b.yaml")
	require.NoError(t, err)
	assert.Equal(t, request.YAML, f)
}
