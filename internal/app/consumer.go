package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/directory"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/events"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/messaging/kafka"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/messaging/kafka/consumer"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/connection"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/shared/counter"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders payslip documents in response to run approval events.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	directoryRepo := directory.NewRepository(gormDB)
	directoryService := directory.NewService(directoryRepo, nil)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	payrollRepo := payroll.NewRepository(gormDB)
	documentStore := payroll.NewFileDocumentStore(
		envOrDefault("PAYSLIP_DOC_DIR", "data/payslips"),
		envOrDefault("PAYSLIP_DOC_BASE_URL", "http://localhost:3000/static/payslips"),
	)
	payrollService := payroll.NewServiceWithOutbox(
		sqlDB,
		payrollRepo,
		directoryService,
		counterRepo,
		documentStore,
		outboxRepo,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{kafkaBroker},
		Topic:       events.PayrollRunApprovedTopic,
		GroupID:     "talentx-payroll-documents",
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeRunApproved(ctx, reader, payrollService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
