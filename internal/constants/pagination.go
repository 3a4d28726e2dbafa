package constants

// Default Pagination Values
const (
	DefaultLimit = 10
)
