package services

// DefaultLimit is the page size used when the caller does not supply one.
const DefaultLimit = 10

// ListOptions carries the public pagination parameters.
type ListOptions struct {
	Sort   string
	Limit  int
	Offset int
}

// Page is the envelope returned by paginated listings. Total is the full
// unfiltered row count, not the number of rows in Data.
type Page struct {
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
	Data   interface{} `json:"data"`
}

func (o ListOptions) normalize() (limit, offset int) {
	limit = o.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset = o.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// sortColumn checks the requested sort against the resource's allow-list.
// Anything else silently falls back to id, so the sort parameter can never
// inject SQL.
func sortColumn(requested string, allowed ...string) string {
	for _, col := range allowed {
		if requested == col {
			return col
		}
	}
	return "id"
}
