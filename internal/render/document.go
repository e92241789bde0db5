// Package render turns a knapsack.Result into the JSON document the desktop
// front-end consumes and into a terminal table view.
package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/knapsack/catalog"
	"github.com/katalvlaran/knapsack/knapsack"
	"github.com/katalvlaran/knapsack/trace"
)

// Document is the solve output. Keys and nesting follow the front-end's
// historical wire format; variant-specific keys are omitted when empty.
type Document struct {
	ID         string      `json:"id,omitempty"`
	Code       int         `json:"code"`
	Type       string      `json:"type"`
	Capacity   int         `json:"capacity"`
	Capacity2  *int        `json:"capacity2,omitempty"`
	K          *int        `json:"k,omitempty"`
	Items      []Item      `json:"items"`
	Packages   []Package   `json:"packages,omitempty"`
	SplitItems []Split     `json:"splitItems,omitempty"`
	Groups     []Group     `json:"groups,omitempty"`
	Tree       *Tree       `json:"tree,omitempty"`
	Steps      []Step      `json:"steps"`
	Path       []PathEntry `json:"path"`
	MaxValue   int         `json:"max_value"`
	TopK       []int       `json:"topK,omitempty"`
	KthValue   *int        `json:"kth_value,omitempty"`
	Quantities []int       `json:"quantities,omitempty"`
	TimeMS     float64     `json:"time_ms"`
	Complexity Complexity  `json:"complexity"`
}

// Item echoes one input item. Only the variant's own attribute is set.
type Item struct {
	W int  `json:"w"`
	M *int `json:"m,omitempty"`
	V int  `json:"v"`
	C *int `json:"c,omitempty"`
	T *int `json:"t,omitempty"`
	G *int `json:"g,omitempty"`
	P *int `json:"p,omitempty"`
}

type Package struct {
	W     int    `json:"w"`
	V     int    `json:"v"`
	Desc  string `json:"desc"`
	Items []int  `json:"items"`
}

type Split struct {
	W    int `json:"w"`
	V    int `json:"v"`
	Orig int `json:"orig"`
	Cnt  int `json:"cnt"`
}

type Group struct {
	ID    int   `json:"id"`
	Items []int `json:"items"`
}

type Tree struct {
	Roots    []int   `json:"roots"`
	Children [][]int `json:"children"`
}

// Step is one trace entry. Cell steps carry row/col; tree steps carry
// node/action instead.
type Step struct {
	Row        *int        `json:"row,omitempty"`
	Col        *int        `json:"col,omitempty"`
	Vol        *int        `json:"vol,omitempty"`
	Node       *int        `json:"node,omitempty"`
	ChildNode  *int        `json:"childNode,omitempty"`
	Action     string      `json:"action,omitempty"`
	W          *int        `json:"w,omitempty"`
	V          *int        `json:"v,omitempty"`
	OrigItem   *int        `json:"origItem,omitempty"`
	Package    string      `json:"package,omitempty"`
	GroupID    *int        `json:"groupId,omitempty"`
	TryItems   []TryItem   `json:"tryItems,omitempty"`
	ItemType   *int        `json:"itemType,omitempty"`
	TypeStr    string      `json:"typeStr,omitempty"`
	NotTake    *int        `json:"notTake,omitempty"`
	Take       *int        `json:"take,omitempty"`
	Vals       []int       `json:"vals,omitempty"`
	Val        *int        `json:"val,omitempty"`
	BestChoice *int        `json:"bestChoice,omitempty"`
	DPValues   []int       `json:"dpValues,omitempty"`
	ParentNode *int        `json:"parentNode,omitempty"`
	Highlight  []Highlight `json:"highlight,omitempty"`
	Decision   string      `json:"decision,omitempty"`
}

// Highlight marks a cell a step read from. Tree highlights name a node
// instead of a row.
type Highlight struct {
	R    *int   `json:"r,omitempty"`
	Node *int   `json:"node,omitempty"`
	C    *int   `json:"c,omitempty"`
	V    *int   `json:"v,omitempty"`
	Type string `json:"type"`
}

type TryItem struct {
	ItemIdx int `json:"itemIdx"`
	W       int `json:"w"`
	V       int `json:"v"`
	CanTake int `json:"canTake"`
	NewVal  int `json:"newVal"`
}

// PathEntry is one backtracked pick.
type PathEntry struct {
	R        *int   `json:"r,omitempty"`
	Node     *int   `json:"node,omitempty"`
	C        int    `json:"c"`
	V        *int   `json:"v,omitempty"`
	Item     int    `json:"item"`
	SplitCnt *int   `json:"splitCnt,omitempty"`
	Package  string `json:"package,omitempty"`
	Items    []int  `json:"items,omitempty"`
	Group    *int   `json:"group,omitempty"`
	Val      *int   `json:"val,omitempty"`
}

type Complexity struct {
	Time        string `json:"time"`
	Space       string `json:"space"`
	Operations  int    `json:"operations"`
	MemoryBytes int    `json:"memory_bytes"`
}

// ErrorDocument is the failure shape, e.g.
// {"code":400,"error":"Insufficient parameters"}.
type ErrorDocument struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// BatchDocument holds one entry per batch request, in request order: a
// *Document on success, an ErrorDocument otherwise.
type BatchDocument struct {
	ID      string `json:"id"`
	Results []any  `json:"results"`
}

func ptr(n int) *int { return &n }

// Build converts res. The document gets a fresh random ID.
func Build(res *knapsack.Result) *Document {
	v := res.Variant
	cx := res.Complexity()
	doc := &Document{
		ID:         uuid.NewString(),
		Code:       200,
		Type:       v.Title(),
		Capacity:   res.Capacity.Weight,
		Items:      items(v, res.Items),
		Steps:      make([]Step, 0, len(res.Steps)),
		Path:       make([]PathEntry, 0, len(res.Path)),
		MaxValue:   res.Value,
		Quantities: res.Quantities,
		TimeMS:     float64(res.Elapsed) / float64(time.Millisecond),
		Complexity: Complexity{cx.Time, cx.Space, cx.Operations, cx.MemoryBytes},
	}

	switch v {
	case knapsack.TwoDimensional:
		doc.Capacity2 = ptr(res.Capacity.Volume)
	case knapsack.Kth:
		doc.K = ptr(res.K)
		doc.TopK = res.TopK.TopK
		doc.KthValue = ptr(res.Kth)
	case knapsack.Multiple:
		for _, s := range res.Splits {
			doc.SplitItems = append(doc.SplitItems, Split{W: s.Weight, V: s.Value, Orig: s.Origin, Cnt: s.Multiplier})
		}
	case knapsack.Dependency:
		for _, p := range res.Packages {
			doc.Packages = append(doc.Packages, Package{W: p.Weight, V: p.Value, Desc: p.Label, Items: p.Members})
		}
	case knapsack.Group:
		for _, g := range res.Groups {
			doc.Groups = append(doc.Groups, Group{ID: g.ID, Items: g.Members})
		}
	case knapsack.Tree:
		doc.Tree = adjacency(res.Tree.Roots, res.Tree.Children)
	}

	for _, st := range res.Steps {
		doc.Steps = append(doc.Steps, step(res, st))
	}
	for _, p := range res.Path {
		doc.Path = append(doc.Path, pathEntry(res, p))
	}

	return doc
}

// adjacency echoes the forest with empty lists in place of nil ones.
func adjacency(roots []int, children [][]int) *Tree {
	t := &Tree{Roots: append(make([]int, 0, len(roots)), roots...), Children: make([][]int, len(children))}
	for i, ch := range children {
		t.Children[i] = append(make([]int, 0, len(ch)), ch...)
	}

	return t
}

func items(v knapsack.Variant, in []catalog.Item) []Item {
	out := make([]Item, len(in))
	for i, it := range in {
		o := Item{W: it.Weight, V: it.Value}
		switch v {
		case knapsack.TwoDimensional:
			o.M = ptr(it.Volume)
		case knapsack.Multiple:
			o.C = ptr(it.Count)
		case knapsack.Mixed:
			o.T = ptr(int(it.Kind))
			if it.Kind == catalog.Multiple {
				o.C = ptr(it.Count)
			}
		case knapsack.Group:
			o.G = ptr(it.Group)
		case knapsack.Dependency, knapsack.Tree:
			o.P = ptr(it.Parent)
		}
		out[i] = o
	}

	return out
}

func step(res *knapsack.Result, st trace.Step) Step {
	if res.Variant == knapsack.Tree {
		return treeStep(res, st)
	}

	o := Step{
		Row:      ptr(st.Row),
		Col:      ptr(st.Col),
		Val:      ptr(st.Value),
		Decision: string(st.Decision),
	}
	for _, src := range st.Sources {
		h := Highlight{R: ptr(src.Row), C: ptr(src.Col), Type: string(src.Role)}
		if src.Vol != trace.NoVol {
			h.V = ptr(src.Vol)
		}
		o.Highlight = append(o.Highlight, h)
	}

	switch res.Variant {
	case knapsack.TwoDimensional:
		o.Vol = ptr(st.Vol)
	case knapsack.Multiple:
		o.OrigItem = ptr(st.Origin)
	case knapsack.Dependency:
		o.Package = st.Label
	case knapsack.Mixed:
		o.ItemType = ptr(st.ItemKind)
		o.TypeStr = catalog.Kind(st.ItemKind).String()
	case knapsack.Count:
		o.NotTake, o.Take = ptr(st.Addends[0]), ptr(st.Addends[1])
	case knapsack.Kth:
		o.Vals = st.Values
	case knapsack.Group:
		o.GroupID = ptr(st.Group)
		o.BestChoice = ptr(st.Choice)
		for _, c := range st.Candidates {
			t := TryItem{ItemIdx: c.Item, W: c.Weight, V: c.Value}
			if c.Fits {
				t.CanTake, t.NewVal = 1, c.Result
			}
			o.TryItems = append(o.TryItems, t)
		}
		o.Decision = string(trace.Skip)
		if st.Choice >= 0 {
			o.Decision = string(trace.Take)
		}
	}

	return o
}

func treeStep(res *knapsack.Result, st trace.Step) Step {
	o := Step{Node: ptr(st.Node)}
	switch st.Kind {
	case trace.KindMerge:
		o.Action = st.Kind.String()
		if st.Child >= 0 {
			o.ChildNode = ptr(st.Child)
		}
		o.DPValues = st.Snapshot
	case trace.KindComplete:
		o.Action = st.Kind.String()
		o.W, o.V = ptr(st.Weight), ptr(res.Items[st.Node].Value)
		o.Col, o.Val = ptr(st.Col), ptr(st.Value)
		o.Decision = string(st.Decision)
		o.DPValues = st.Snapshot
		if st.Parent >= 0 {
			o.ParentNode = ptr(st.Parent)
			o.Highlight = []Highlight{{Node: ptr(st.Parent), Type: "parent"}}
		}
	default:
		o.ChildNode = ptr(st.Child)
		o.Col, o.Val = ptr(st.Col), ptr(st.Value)
		o.Decision = string(st.Decision)
		for _, src := range st.Sources {
			o.Highlight = append(o.Highlight, Highlight{Node: ptr(src.Row), C: ptr(src.Col), Type: string(src.Role)})
		}
	}

	return o
}

func pathEntry(res *knapsack.Result, p knapsack.Pick) PathEntry {
	o := PathEntry{C: p.Col, Item: p.Item}
	switch res.Variant {
	case knapsack.Tree:
		o.Node = ptr(p.Item)
		o.Val = ptr(res.Tree.Nodes[p.Item][p.Col])
		return o
	case knapsack.TwoDimensional:
		o.V = ptr(p.Vol)
	case knapsack.Multiple:
		o.SplitCnt = ptr(p.Multiplier)
	case knapsack.Dependency:
		o.Package = p.Label
		o.Items = p.Members
	case knapsack.Group:
		o.Group = ptr(p.Group)
	}
	o.R = ptr(p.Row)

	return o
}

// Write encodes doc as one line of JSON.
func Write(w io.Writer, doc any) error {
	return json.NewEncoder(w).Encode(doc)
}

// WriteIndent encodes doc with two-space indentation.
func WriteIndent(w io.Writer, doc any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}
