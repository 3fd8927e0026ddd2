// Package pagination holds the paging metadata returned by windowed list
// endpoints and the page arithmetic shared by every store-backed search.
package pagination

// Paging describes one window of a result set.
type Paging struct {
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
	CurrentPage int `json:"current_page"`
}

// New computes paging metadata for a result set of totalItems records windowed
// into pages of the requested size. TotalPage is ceil(totalItems/size).
func New(totalItems, page, size int) Paging {
	totalPage := 0
	if size > 0 {
		totalPage = (totalItems + size - 1) / size
	}
	return Paging{
		Size:        size,
		TotalPage:   totalPage,
		CurrentPage: page,
	}
}

// Offset returns the number of records to skip for the given page.
func Offset(page, size int) int {
	return (page - 1) * size
}
