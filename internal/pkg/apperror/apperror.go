package apperror

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeValidation    = "VALIDATION_ERROR"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeGateway       = "GATEWAY_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// AppError is a coded error that survives to the handler boundary, where it
// is mapped onto an HTTP status and a response envelope.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	cause      error
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches on the code and message, so a copy made by WithCause still
// compares equal to its sentinel under errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// WithCause returns a copy carrying the underlying error for logging;
// the code, message, and status shown to clients are unchanged.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}
