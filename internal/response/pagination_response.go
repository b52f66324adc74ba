package response

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int64 `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	HasMore    bool  `json:"has_more"`
	From       int   `json:"from"`
	To         int   `json:"to"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps user-supplied paging parameters.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func NewPagination(page, pageSize int, totalItems int64, itemsOnPage int) *Pagination {
	totalPages := (totalItems + int64(pageSize) - 1) / int64(pageSize)
	from, to := 0, 0
	if itemsOnPage > 0 {
		from = (page-1)*pageSize + 1
		to = from + itemsOnPage - 1
	}
	return &Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}

