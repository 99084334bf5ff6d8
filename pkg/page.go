package pkg

// Paginate returns page (1-based) of items, clipped to bounds. Pages past
// the end and invalid arguments yield an empty slice, never an error.
func Paginate[T any](items []T, page int, pageSize int) []T {
	if page < 1 || pageSize <= 0 {
		return []T{}
	}

	// Checking against the page count before multiplying keeps huge page
	// numbers from overflowing the slice bounds.
	if page > PageCount(items, pageSize) {
		return []T{}
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// PageCount is ceil(len(items)/pageSize); 0 for empty input, which means
// "do not render pagination controls".
func PageCount[T any](items []T, pageSize int) int {
	if pageSize <= 0 || len(items) == 0 {
		return 0
	}
	count := len(items) / pageSize
	if len(items)%pageSize != 0 {
		count++
	}
	return count
}
