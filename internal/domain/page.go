package domain

// Paginate converts an offset/limit window over total rows into 1-based page
// metadata. Current is the page the window starts in; TotalCount is the
// number of pages needed to cover every row. Limit must be positive; request
// validation rejects zero before this point.
func Paginate(total, offset, limit int) Page {
	return Page{
		Current:    offset/limit + 1,
		TotalCount: (total + limit - 1) / limit,
	}
}
