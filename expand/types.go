package expand

import "errors"

// DefaultMaxAttachments is the attachment ceiling Packages applies when
// the caller passes a non-positive limit.
const DefaultMaxAttachments = 16

// MaxSubsetBits is the largest set size Subsets accepts.
const MaxSubsetBits = 30

var (
	// ErrTooManyAttachments indicates a main item whose attachment count
	// exceeds the enumeration ceiling.
	ErrTooManyAttachments = errors.New("expand: too many attachments on one main item")

	// ErrWrongAttribute indicates a catalog built for a different attribute
	// than the rewrite needs.
	ErrWrongAttribute = errors.New("expand: catalog attribute does not match")
)

// Split is one binary-decomposition pseudo-item.
type Split struct {
	Origin     int // 0-based index of the original item
	Multiplier int // copies of the original this split stands for
	Weight     int // original weight × Multiplier
	Value      int // original value × Multiplier
}

// Package is a main item bundled with a subset of its attachments.
type Package struct {
	Main    int   // 0-based index of the main item
	Mask    int   // attachment subset; bit b = b-th attachment of Main
	Members []int // 0-based item indices, main first then attachments in order
	Weight  int
	Value   int
	Label   string // "Main<i>+Attachment<j>..." with 1-based indices
}
