package response

// Error codes double as HTTP status codes: the envelope always rides on the
// real status, never a flat 200.
const (
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
