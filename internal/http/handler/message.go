package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

const (
	CodeValidationFailed = "validation_failed"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeStoreUnavailable = "store_unavailable"
	CodeInternal         = "internal"
)

type Response struct {
	Code    string      `json:"code,omitempty"`    // machine readable error code
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}
