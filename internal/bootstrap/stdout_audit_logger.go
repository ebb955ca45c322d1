package bootstrap

import (
	"context"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/contextutil"

	"go.uber.org/zap"
)

// StdoutAuditLogger writes audit entries through the global zap logger.
// Good enough for a single process; an aggregating sink can replace it
// behind the AuditLogger interface.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info("audit event",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
