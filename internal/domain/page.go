package domain

// Pageable describes a page request: zero-based page number, page size and an
// optional sort expression (e.g. "date" or "-date"). The services only guard
// the maximum size; interpreting the sort belongs to the persistence adapter.
type Pageable struct {
	Page int
	Size int
	Sort string
}

// Page is one page of results together with the total number of matching
// records in the store.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
}

// Offset returns the number of records to skip for this request.
func (p Pageable) Offset() int64 {
	if p.Page <= 0 {
		return 0
	}
	return int64(p.Page) * int64(p.Size)
}
