package constants

// HTTP Header Names
const (
	HeaderUserAgent  = "User-Agent"
	HeaderXRequestID = "X-Request-ID"
)

// Common HTTP Error Messages
const (
	MsgInternalError = "Internal server error"
	MsgRateLimited   = "Rate limit exceeded"
)
