package apperror

// Stable machine-readable codes carried in every error envelope. Clients
// branch on these, so they never change once published.
const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"

	// CodeConflict covers version conflicts and duplicate payslips;
	// CodeInvalidState covers run lifecycle guard rejections.
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
