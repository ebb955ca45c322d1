package bootstrap

import "context"

// AuditLog is a single operational audit entry, distinct from the request
// logs emitted by the middleware.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
