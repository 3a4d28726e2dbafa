package validation

func CustomMessage(field string) map[string]string {
	var customValidationMessages = map[string]map[string]string{
		"Collection": {
			"required": "collection must not be empty",
			"max":      "collection name is too long",
		},
		"ID": {
			"required": "document id must not be empty",
			"max":      "document id is too long",
		},
		"Filename": {
			"required": "filename must not be empty",
			"max":      "filename is too long",
		},
		"Format": {
			"oneof": "format must be json or redirect",
		},
	}
	return customValidationMessages[field]
}
