package dto

// MaxPage bounds the page number so offsets stay within int range
const MaxPage = 100000

// PageQuery holds pagination parameters
type PageQuery struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Normalize applies defaults to out of range values
func (q PageQuery) Normalize(defaultSize int) PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.PageSize < 1 {
		q.PageSize = defaultSize
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}
	return q
}

// PageResponse represents a paginated list response
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// TotalPages returns the number of pages for count rows
func TotalPages(count int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(count) / pageSize
	if int(count)%pageSize > 0 {
		pages++
	}
	return pages
}
