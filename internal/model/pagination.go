package model

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination selects one page of a listing. Page is 1-based.
type Pagination struct {
	Page  int
	Limit int
}

// DefaultPagination is the canonical first page.
func DefaultPagination() Pagination {
	return Pagination{Page: DefaultPage, Limit: DefaultLimit}
}

// IsDefault reports whether p is the canonical first page, the only page
// listings are cached for.
func (p Pagination) IsDefault() bool {
	return p.Page == DefaultPage && p.Limit == DefaultLimit
}

// Skip is the number of rows before the page.
func (p Pagination) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Take is the page size.
func (p Pagination) Take() int {
	return p.Limit
}
