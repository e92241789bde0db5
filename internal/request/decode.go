// Package request reads solve requests from JSON and YAML documents and
// turns them into knapsack.Problem values.
package request

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf maps a file name to its Format by extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseJSON reads a Document with gjson. Unknown keys are ignored; numeric
// fields that are present but not numbers are rejected.
func ParseJSON(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformedDocument)
	}

	doc := &Document{Algorithm: root.Get("algorithm").String()}
	params := root.Get("params")

	var err error
	if doc.Params.Capacity, err = intField(params, "capacity"); err != nil {
		return nil, err
	}
	if doc.Params.Capacity2, err = optInt(params, "capacity2"); err != nil {
		return nil, err
	}
	if doc.Params.K, err = optInt(params, "k"); err != nil {
		return nil, err
	}

	items := params.Get("items")
	if items.Exists() && !items.IsArray() {
		return nil, fmt.Errorf("%w: params.items is not an array", ErrMalformedDocument)
	}
	items.ForEach(func(_, v gjson.Result) bool {
		var it Item
		if it, err = parseItem(v); err != nil {
			return false
		}
		doc.Params.Items = append(doc.Params.Items, it)
		return true
	})
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func parseItem(v gjson.Result) (Item, error) {
	var (
		it  Item
		err error
	)
	if it.Weight, err = intField(v, "weight"); err != nil {
		return Item{}, err
	}
	if it.Value, err = intField(v, "value"); err != nil {
		return Item{}, err
	}
	for _, f := range []struct {
		key string
		dst **int
	}{
		{"count", &it.Count},
		{"type", &it.Type},
		{"volume", &it.Volume},
		{"group", &it.Group},
		{"parent", &it.Parent},
	} {
		if *f.dst, err = optInt(v, f.key); err != nil {
			return Item{}, err
		}
	}

	return it, nil
}

func intField(r gjson.Result, key string) (int, error) {
	p, err := optInt(r, key)
	if err != nil || p == nil {
		return 0, err
	}

	return *p, nil
}

func optInt(r gjson.Result, key string) (*int, error) {
	f := r.Get(key)
	if !f.Exists() || f.Type == gjson.Null {
		return nil, nil
	}
	if f.Type != gjson.Number {
		return nil, fmt.Errorf("%w: %s is %s, want a number", ErrMalformedDocument, key, f.Type)
	}
	if f.Num != math.Trunc(f.Num) {
		return nil, fmt.Errorf("%w: %s is %s, want an integer", ErrMalformedDocument, key, f.Raw)
	}
	if f.Num > math.MaxInt || f.Num < math.MinInt {
		return nil, fmt.Errorf("%w: %s is %s, out of range", ErrMalformedDocument, key, f.Raw)
	}
	n := int(f.Int())

	return &n, nil
}

// ParseYAML reads a Document with yaml.v3.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	return &doc, nil
}

// Parse dispatches on f.
func Parse(data []byte, f Format) (*Document, error) {
	switch f {
	case JSON:
		return ParseJSON(data)
	case YAML:
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile parses and validates the document at path.
func ReadFile(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("request: read %s: %w", path, err)
	}
	doc, err := Parse(data, f)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// ParseBatch reads a batch in format f.
func ParseBatch(data []byte, f Format) (*Batch, error) {
	switch f {
	case YAML:
		var b Batch
		if err := yaml.Unmarshal(data, &b); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		return &b, nil
	case JSON:
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
		}
		root := gjson.ParseBytes(data)
		workers, err := intField(root, "workers")
		if err != nil {
			return nil, err
		}
		b := &Batch{Workers: workers}
		requests := root.Get("requests")
		if requests.Exists() && !requests.IsArray() {
			return nil, fmt.Errorf("%w: requests is not an array", ErrMalformedDocument)
		}
		requests.ForEach(func(_, v gjson.Result) bool {
			var doc *Document
			if doc, err = ParseJSON([]byte(v.Raw)); err != nil {
				return false
			}
			b.Requests = append(b.Requests, *doc)
			return true
		})
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadBatchFile parses and validates the batch file at path.
func ReadBatchFile(path string) (*Batch, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("request: read %s: %w", path, err)
	}
	b, err := ParseBatch(data, f)
	if err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Variant resolves the algorithm name.
func (d *Document) Variant() (knapsack.Variant, error) {
	return knapsack.ParseVariant(strings.TrimPrefix(d.Algorithm, "knapsack_"))
}

// Problem converts the document. Missing capacity2 (2d) or k (kth) is an
// error; optional item fields default to zero, which for a mixed item
// means kind 0/1.
func (d *Document) Problem() (knapsack.Problem, error) {
	v, err := d.Variant()
	if err != nil {
		return knapsack.Problem{}, err
	}

	p := knapsack.Problem{Variant: v, Capacity: knapsack.Capacity{Weight: d.Params.Capacity}}
	switch v {
	case knapsack.TwoDimensional:
		if d.Params.Capacity2 == nil {
			return knapsack.Problem{}, fmt.Errorf("%w: capacity2 for %s", ErrMissingParam, v)
		}
		p.Capacity.Volume = *d.Params.Capacity2
	case knapsack.Kth:
		if d.Params.K == nil {
			return knapsack.Problem{}, fmt.Errorf("%w: k for %s", ErrMissingParam, v)
		}
		p.K = *d.Params.K
	}

	p.Items = make([]catalog.Item, len(d.Params.Items))
	for i, it := range d.Params.Items {
		p.Items[i] = catalog.Item{
			Weight: it.Weight,
			Value:  it.Value,
			Count:  deref(it.Count),
			Kind:   catalog.Kind(deref(it.Type)),
			Volume: deref(it.Volume),
			Group:  deref(it.Group),
			Parent: deref(it.Parent),
		}
	}

	return p, nil
}

func deref(p *int) int {
	if p == nil {
		return 0
	}

	return *p
}
