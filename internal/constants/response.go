package constants

// Standard Response Field Keys
const (
	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
	ResponseFieldCode    = "code"
	ResponseFieldURL     = "url"
)

// BuildDomainErrorResponse builds the error body with the machine-readable
// code. Nil details are omitted.
func BuildDomainErrorResponse(code, message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldCode:    code,
		ResponseFieldMessage: message,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

func BuildMediaResponse(url string) map[string]any {
	return map[string]any{
		ResponseFieldURL: url,
	}
}
