package content

// PagedResult is one page of a collection listing as returned by the backend.
// PrevPage and NextPage are nil when the backend sends null.
type PagedResult[T any] struct {
	Docs          []T  `json:"docs"`
	TotalDocs     int  `json:"totalDocs"`
	Limit         int  `json:"limit"`
	TotalPages    int  `json:"totalPages"`
	Page          int  `json:"page"`
	PagingCounter int  `json:"pagingCounter"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
	PrevPage      *int `json:"prevPage"`
	NextPage      *int `json:"nextPage"`
}

// EmptyPage returns a first page with no documents. Callers use it as a
// fallback when a listing fails.
func EmptyPage[T any](limit int) *PagedResult[T] {
	return &PagedResult[T]{
		Docs:          []T{},
		Limit:         limit,
		Page:          1,
		PagingCounter: 1,
	}
}

// Len returns the number of documents on this page.
func (p *PagedResult[T]) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Docs)
}

// Empty reports whether the page holds no documents.
func (p *PagedResult[T]) Empty() bool {
	return p.Len() == 0
}
