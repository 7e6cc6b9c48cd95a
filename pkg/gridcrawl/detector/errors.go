package detector

import (
	"errors"
	"fmt"
)

// ErrNotLoaded indicates Crawl was called before Load.
var ErrNotLoaded = errors.New("no cell source loaded")

// ErrNotScanned indicates the result was requested before a successful Crawl.
var ErrNotScanned = errors.New("sheet has not been crawled")

// ErrUnsupportedWidth indicates a row extends past column Z.
var ErrUnsupportedWidth = errors.New("unsupported sheet width")

// ErrUnresolvedStagger indicates a stair-step layout deeper than one row.
var ErrUnresolvedStagger = errors.New("unresolved stair-step layout")

// WidthError reports the row whose highest column cannot be addressed by a
// single letter.
type WidthError struct {
	Row    int
	Column string
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("%v: row %d extends to column %s, only A-Z are supported", ErrUnsupportedWidth, e.Row, e.Column)
}

func (e *WidthError) Unwrap() error {
	return ErrUnsupportedWidth
}

// StaggerError reports the cell at which an unresolved stair-step was found.
type StaggerError struct {
	// Cell is the address being classified.
	Cell string
	// Diagonal is the populated cell above and to the right of Cell.
	Diagonal string
}

func (e *StaggerError) Error() string {
	return fmt.Sprintf("%v at %s: %s is populated but does not anchor a grid", ErrUnresolvedStagger, e.Cell, e.Diagonal)
}

func (e *StaggerError) Unwrap() error {
	return ErrUnresolvedStagger
}
