package middleware

import (
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger assigns a request ID and a request-scoped logger, and
// propagates both into the standard context so services and repos never
// depend on gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set("request_id", rid)
		c.Header("X-Request-ID", rid)

		actorID := c.GetString("employee_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("actor_id", actorID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithActorID(ctx, actorID)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
