package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yuzuhara/survey-admin-api/internal/constants"
)

// PageOptions controls sorting and paging for list queries.
//
// SortBy takes the form "field:asc" or "field:desc"; an empty SortBy
// keeps insertion order. Limit and Page fall back to their defaults when
// out of range, so callers can pass query parameters through unchecked.
type PageOptions struct {
	SortBy string
	Limit  int
	Page   int
}

// Page is one page of results plus the metadata needed to walk the rest.
type Page[T any] struct {
	Results      []T
	Page         int
	Limit        int
	TotalPages   int
	TotalResults int64
}

// Paginate runs a filtered, sorted, paged query over the table mapped by
// T. Filters are exact-match column comparisons. Requesting a page past
// the end is not an error; it yields empty results with correct metadata.
func Paginate[T any](db *gorm.DB, filter map[string]any, opts PageOptions) (*Page[T], error) {
	limit := opts.Limit
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}
	page := opts.Page
	if page < constants.MinPage {
		page = constants.MinPage
	}

	query := db.Model(new(T))
	for field, value := range filter {
		query = query.Where(fmt.Sprintf("%s = ?", field), value)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	order, err := parseSort(opts.SortBy)
	if err != nil {
		return nil, err
	}
	if order != "" {
		query = query.Order(order)
	}

	var results []T
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &Page[T]{
		Results:      results,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalResults: total,
	}, nil
}

var ErrInvalidSort = fmt.Errorf("sortBy must be of the form field:asc or field:desc")

func parseSort(sortBy string) (string, error) {
	if sortBy == "" {
		return "", nil
	}

	parts := strings.SplitN(sortBy, ":", 2)
	field := strings.TrimSpace(parts[0])
	if field == "" || !isColumnName(field) {
		return "", ErrInvalidSort
	}

	direction := "asc"
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
		case "desc":
			direction = "desc"
		default:
			return "", ErrInvalidSort
		}
	}

	return field + " " + direction, nil
}

// isColumnName keeps user-supplied sort fields from reaching the ORDER BY
// clause as anything but a bare identifier.
func isColumnName(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}
