package catalog

// Page is one window over a filtered list.
type Page[T any] struct {
	Items    []T `json:"items"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	Total    int `json:"total"`
	Pages    int `json:"pages"`
}

// Paginate cuts items into pages of size and returns the requested one (1-based).
// page < 1 is treated as 1; size <= 0 puts everything in a single page.
// Pages past the end are empty but still report the totals.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = total
	}

	p := Page[T]{Page: page, PageSize: size, Total: total, Items: []T{}}
	if size == 0 {
		return p
	}
	if total > 0 {
		p.Pages = (total-1)/size + 1
	}
	if page > p.Pages {
		return p
	}

	start := (page - 1) * size
	end := total
	if size < total-start {
		end = start + size
	}
	p.Items = items[start:end]
	return p
}
