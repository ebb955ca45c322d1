package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/directory"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/messaging/kafka"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/rbac"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/rbac/infra"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	directoryRepo := directory.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	directoryService := directory.NewService(directoryRepo, rdb)
	documentStore := payroll.NewFileDocumentStore(
		envOrDefault("PAYSLIP_DOC_DIR", "data/payslips"),
		envOrDefault("PAYSLIP_DOC_BASE_URL", "http://localhost:3000/static/payslips"),
	)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		directoryService,
		counterRepo,
		documentStore,
		outboxRepo,
	)

	// --- Handlers ---
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
