package pagination

import "errors"

// ErrInvalidLimit indicates a non-positive page size.
var ErrInvalidLimit = errors.New("limit must be positive")

// Paginate slices an already-loaded, ordered collection into the requested
// page. Pages are 1-indexed; an out-of-range page yields an empty page, not
// an error. A limit below 1 is a validation error.
func Paginate[T any](items []T, page, limit int) (PageResult[T], error) {
	if limit < 1 {
		return PageResult[T]{}, ErrInvalidLimit
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * limit
	end := start + limit

	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return NewPageResult(items[start:end], len(items), page, limit), nil
}
