package constvars

// Client-facing messages. These are the only error strings that leave the
// service in production.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientDocumentTooLarge              = "The document is too large to process"
)

// Developer messages, logged and surfaced outside production.
const (
	ErrDevValidationFailed       = "Request validation failed"
	ErrDevCannotParseJSON        = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "Failed to marshal JSON response body"
	ErrDevServerDeadlineExceeded = "Server deadline exceeded while processing the request"
	ErrDevDocumentTooLarge       = "Document text exceeds the configured size limit"
	ErrDevReadBody               = "Failed to read request body"
)

var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"max":      "must be at most %s characters",
	"oneof":    "must be one of: %s",
}

var TagsWithParams = map[string]bool{
	"max":   true,
	"oneof": true,
}
