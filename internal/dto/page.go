package dto

import "github.com/yuzuhara/survey-admin-api/internal/repository"

// PageDTO is the paginated response envelope shared by every listing
// endpoint.
type PageDTO[T any] struct {
	Results      []T   `json:"results"`
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalPages   int   `json:"totalPages"`
	TotalResults int64 `json:"totalResults"`
}

// ToPageDTO converts a repository page, mapping each result through conv.
func ToPageDTO[M any, T any](page *repository.Page[M], conv func(M) T) PageDTO[T] {
	results := make([]T, len(page.Results))
	for i, item := range page.Results {
		results[i] = conv(item)
	}

	return PageDTO[T]{
		Results:      results,
		Page:         page.Page,
		Limit:        page.Limit,
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
}
