package response

// PaginationMeta describes the position of a page within the full result
// set, in the shape the frontend has always consumed.
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Counts carries the per-role event totals shown as tab badges: how many
// events the current user organizes vs. merely attends.
type Counts struct {
	Author int `json:"author"`
	Member int `json:"member"`
}

// PageResponse is the standard wrapper for list endpoints.
type PageResponse[T any] struct {
	Data   []T            `json:"data"`
	Meta   PaginationMeta `json:"meta"`
	Counts *Counts        `json:"counts,omitempty"`
}

// NewPageResponse is a helper to quickly create a response.
func NewPageResponse[T any](data []T, page, limit, total int) PageResponse[T] {
	// Handle empty slice to avoid JSON outputting null
	if data == nil {
		data = make([]T, 0)
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return PageResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
	}
}

// WithCounts attaches role counts to the page.
func (p PageResponse[T]) WithCounts(author, member int) PageResponse[T] {
	p.Counts = &Counts{Author: author, Member: member}
	return p
}
