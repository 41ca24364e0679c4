package query

import "github.com/JorgeJ97/task-management-backend/domain/models"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ClampPage forces page into [1, ∞).
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampLimit forces limit into [1, MaxLimit].
func ClampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// Offset returns the number of rows to skip for page.
func Offset(page, limit int) int {
	return (ClampPage(page) - 1) * ClampLimit(limit)
}

// Paginate builds the page descriptor. A page past the last one is legal.
func Paginate(page, limit int, total int64) models.PaginationInfo {
	page = ClampPage(page)
	limit = ClampLimit(limit)
	if total < 0 {
		total = 0
	}

	pages := int((total + int64(limit) - 1) / int64(limit))

	return models.PaginationInfo{
		Page:    page,
		Limit:   limit,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}
