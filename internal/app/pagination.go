package app

// TotalPages returns the number of pages needed for total items at the given
// page size, rounding up. Zero items means zero pages.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	return (total + pageSize - 1) / pageSize
}

// PageBounds returns the half-open slice range [lo, hi) for the 1-based page
// over count items. Pages past the end yield an empty range.
func PageBounds(count, page, pageSize int) (lo, hi int) {
	if page < 1 {
		page = 1
	}

	lo = (page - 1) * pageSize
	if lo > count {
		lo = count
	}

	hi = lo + pageSize
	if hi > count {
		hi = count
	}

	return lo, hi
}
