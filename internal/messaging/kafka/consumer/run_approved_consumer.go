package consumer

import (
	"context"
	"encoding/json"

	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/events"
	"github.com/Ashishbhardwajofficial/TalentX-HRMS-sub003/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeRunApproved renders payslip documents for every payslip in an
// approved run. Rendering is recoverable, so a failed message is left
// uncommitted and redelivered.
func ConsumeRunApproved(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.run_approved")
	log.Info("payroll run approved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll run approved consumer stopped")
				return
			}
			log.Error("fetch run approved message failed", zap.Error(err))
			continue
		}

		var event events.PayrollRunApprovedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode run approved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		rendered, err := payrollService.GeneratePayslipDocuments(ctx, event.OrgID, event.RunID)
		if err != nil {
			log.Error("generate payslip documents failed",
				zap.String("run_id", event.RunID),
				zap.String("org_id", event.OrgID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit run approved message failed", zap.Error(err))
			continue
		}

		log.Info("payslip documents generated",
			zap.String("run_id", event.RunID),
			zap.String("org_id", event.OrgID),
			zap.Int("rendered", rendered),
		)
	}
}
