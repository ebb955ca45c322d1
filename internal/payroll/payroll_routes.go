package payroll

import (
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/middleware"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	runs := r.Group("/payroll-runs")
	runs.Use(middleware.AuthMiddleware())
	{
		runs.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAllRuns)
		runs.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRunByID)
		runs.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetRunBreakdown)
		runs.GET("/:id/payslips/:payslipId/download", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.DownloadPayslip)

		if redisClient != nil {
			runs.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "payroll", "create"),
				handler.CreateRun,
			)
		} else {
			runs.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.CreateRun)
		}

		runs.PUT("/:id/payslips", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.UpsertPayslip)
		runs.POST("/:id/populate", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.PopulateRun)
		runs.POST("/:id/calculate", middleware.RBACAuthorize(rbacService, "payroll", "update"), handler.CalculateRun)
		runs.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "payroll", "approve"), handler.ApproveRun)
		runs.POST("/:id/pay", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkRunPaid)
		runs.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.DeleteRun)
	}
}
