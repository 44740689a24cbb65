package search

// TotalPages returns ceil(rows/size), with a floor of 1 so that page 1 is
// always valid, even for an empty result. A non-positive size yields 1.
func TotalPages(rows, size int) int {
	if size <= 0 || rows <= 0 {
		return 1
	}
	return (rows + size - 1) / size
}

// ClampPage limits page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the page of filtered selected by req. totalRows is the
// row count of the unfiltered source table.
//
// Callers are expected to clamp req.Number with ClampPage first. An
// out-of-range page, or a non-positive page size, yields a well-formed result
// with no rows.
func Paginate(filtered Table, totalRows int, req PageRequest) PageResult {
	n := len(filtered)
	res := PageResult{
		Page:         req.Number,
		PageSize:     req.Size,
		TotalPages:   TotalPages(n, req.Size),
		FilteredRows: n,
		TotalRows:    totalRows,
		Rows:         []Record{},
	}
	if req.Size <= 0 || req.Number < 1 || req.Number > res.TotalPages {
		return res
	}

	start := (req.Number - 1) * req.Size
	end := min(start+req.Size, n)
	res.Start = start
	res.End = end
	if start < end {
		res.Rows = filtered[start:end:end]
	}
	return res
}
