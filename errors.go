package labelgen

import (
	"errors"
	"fmt"
)

// Sentinel errors for document-level failure conditions. Element-level
// problems never surface here; they become Warnings and the page renders
// without the offending element.
var (
	ErrNilTemplate   = errors.New("labelgen: template is nil")
	ErrEmptyTemplate = errors.New("labelgen: template has no pages")
	ErrPageSize      = errors.New("labelgen: page size must be positive")
)

// RenderError represents a failure of a specific rendering operation.
// It wraps an underlying error and includes the operation name for context.
type RenderError struct {
	Op  string // operation name, e.g. "Render", "Output"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("labelgen.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("labelgen.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Warning records one element that could not be rendered as specified.
// The page it belongs to was still produced; barcode and QR failures leave
// a textual placeholder in the element's box.
type Warning struct {
	Page  int    // zero-based page index within the generated document
	Field string // template field name
	Kind  string // element kind, e.g. "ean13", "image"
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d field %q (%s): %v", w.Page, w.Field, w.Kind, w.Err)
}
