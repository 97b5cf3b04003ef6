package service

import log "github.com/sirupsen/logrus"

// ListQuery selects one page of tasks.
type ListQuery struct {
	// Page is 1-based.
	Page int

	// PageSize is the number of tasks per page.
	PageSize int

	// SortBy is a domain.SortKey name. Empty means created_at.
	SortBy string

	// Order is asc or desc. Empty means asc.
	Order string
}

// Option configures a TaskService.
type Option func(*TaskService)

// WithLogger sets the logger mutations are reported to.
func WithLogger(l log.FieldLogger) Option {
	return func(s *TaskService) {
		if l != nil {
			s.log = l
		}
	}
}

// pageBounds returns the slice range of a 1-based page within total items.
// Pages past the end, however large, give an empty range.
func pageBounds(page, size, total int) (start, end int) {
	if total <= 0 || page < 1 || size < 1 || page-1 > (total-1)/size {
		return total, total
	}
	start = (page - 1) * size
	if size > total-start {
		return start, total
	}
	return start, start + size
}
