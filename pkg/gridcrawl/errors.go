package gridcrawl

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates a requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// CrawlError represents an error while crawling one sheet.
type CrawlError struct {
	SheetName string
	Err       error
}

func (e *CrawlError) Error() string {
	return fmt.Sprintf("crawl error in sheet %q: %v", e.SheetName, e.Err)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

// NewCrawlError creates a new CrawlError.
func NewCrawlError(sheetName string, err error) *CrawlError {
	return &CrawlError{
		SheetName: sheetName,
		Err:       err,
	}
}
