package constants

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
)

// Pagination bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	MinPage         = 1
)
