package request

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedDocument indicates input that is not valid JSON or YAML.
	ErrMalformedDocument = errors.New("request: malformed document")

	// ErrMissingParam indicates a parameter the chosen algorithm requires.
	ErrMissingParam = errors.New("request: missing parameter")

	// ErrUnknownFormat indicates a file extension other than .json, .yaml
	// or .yml.
	ErrUnknownFormat = errors.New("request: unknown document format")
)

// validate is shared by every document type in the package.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Document is one solve request in the desktop front-end's IPC shape:
//
//	{"algorithm": "knapsack_01", "params": {"capacity": 10, "items": [...]}}
//
// Algorithm accepts the binary name ("knapsack_2d") or the bare variant
// name ("2d").
type Document struct {
	Algorithm string `json:"algorithm" yaml:"algorithm" validate:"required"`
	Params    Params `json:"params" yaml:"params"`
}

// Params are the numeric inputs. Optional fields are pointers so that an
// explicit zero stays distinguishable from an absent key.
type Params struct {
	Capacity  int    `json:"capacity" yaml:"capacity" validate:"gte=0"`
	Capacity2 *int   `json:"capacity2,omitempty" yaml:"capacity2,omitempty" validate:"omitempty,gte=0"`
	K         *int   `json:"k,omitempty" yaml:"k,omitempty" validate:"omitempty,gte=1"`
	Items     []Item `json:"items" yaml:"items" validate:"dive"`
}

// Item is one item entry. Which optional field is read depends on the
// algorithm: count (multiple, mixed), type (mixed), volume (2d), group,
// parent (depend, tree).
type Item struct {
	Weight int  `json:"weight" yaml:"weight" validate:"gt=0"`
	Value  int  `json:"value" yaml:"value" validate:"gte=0"`
	Count  *int `json:"count,omitempty" yaml:"count,omitempty" validate:"omitempty,gte=0"`
	Type   *int `json:"type,omitempty" yaml:"type,omitempty" validate:"omitempty,gte=0,lte=2"`
	Volume *int `json:"volume,omitempty" yaml:"volume,omitempty" validate:"omitempty,gte=0"`
	Group  *int `json:"group,omitempty" yaml:"group,omitempty"`
	Parent *int `json:"parent,omitempty" yaml:"parent,omitempty" validate:"omitempty,gte=0"`
}

// Batch is a list of documents solved together, optionally overriding the
// configured worker count.
type Batch struct {
	Workers  int        `json:"workers,omitempty" yaml:"workers,omitempty" validate:"gte=0"`
	Requests []Document `json:"requests" yaml:"requests" validate:"required,min=1,dive"`
}

// Validate checks the struct tags of the document.
func (d *Document) Validate() error {
	return validate.Struct(d)
}

// Validate checks the batch and every document in it.
func (b *Batch) Validate() error {
	return validate.Struct(b)
}
