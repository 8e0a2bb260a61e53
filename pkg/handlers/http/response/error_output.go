package response

import "time"

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidImage       = "INVALID_IMAGE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeSearch             = "SEARCH_ERROR"
	CodeClassification     = "CLASSIFICATION_ERROR"
	CodeInternal           = "INTERNAL_ERROR"
	CodeNotFound           = "NOT_FOUND"
)

type ErrorOutput struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	ErrorCode string    `json:"error_code,omitempty"`
}

func NewErrorOutput(message, detail, code string) ErrorOutput {
	return ErrorOutput{
		Success:   false,
		Error:     message,
		Detail:    detail,
		Timestamp: time.Now(),
		ErrorCode: code,
	}
}
